// Package paths resolves the project root and the directory paths that
// installation steps embed into generated code.
package paths
