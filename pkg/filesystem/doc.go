// Package filesystem reads templates and commits generated files.
//
// All access goes through an afero.Fs so tests can run against an in-memory
// filesystem or inject faults. Writes are atomic: the new content is written
// to a temporary file next to the target, synced, and renamed over the
// target. Readers see either the old file or the new one, never a mix.
package filesystem
