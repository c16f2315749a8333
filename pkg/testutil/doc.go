// Package testutil provides fixtures for testing wpconf components.
//
// Key components:
//   - Project: a temporary project root with template, config and .env files
//   - RenameFailFs, CrashFs: afero wrappers that fail during an atomic commit
//   - WPStarterTemplate: a representative wp-config.php template
//
// Tests that do not need a real directory (everything except watch mode and
// the CLI) should use afero.NewMemMapFs instead of a Project.
package testutil
