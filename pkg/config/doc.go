// Package config loads wpconf configuration.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults
//  2. wpconf.toml or .wpconf.toml in the project root (or an explicit file)
//  3. WPCONF_* entries of the project's .env file
//  4. WPCONF_* process environment variables
//
// Nested keys use a double underscore in variable names, so
// WPCONF_PATHS__ENV_DIR sets paths.env_dir.
package config
