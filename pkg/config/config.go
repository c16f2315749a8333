package config

import "time"

// Config is the effective wpconf configuration
type Config struct {
	Root     string      `koanf:"root" toml:"root"`
	Template string      `koanf:"template" toml:"template"`
	Target   string      `koanf:"target" toml:"target"`
	Syntax   string      `koanf:"syntax" toml:"syntax"`
	Paths    PathsConfig `koanf:"paths" toml:"paths"`
	Steps    StepsConfig `koanf:"steps" toml:"steps"`
	Watch    WatchConfig `koanf:"watch" toml:"watch"`

	// Source lists the configuration files that were loaded
	Source []string `koanf:"-" toml:"-"`
}

// PathsConfig holds directories embedded into generated payloads
type PathsConfig struct {
	WpParent        string `koanf:"wp_parent" toml:"wp_parent"`
	EnvDir          string `koanf:"env_dir" toml:"env_dir"`
	EnvFile         string `koanf:"env_file" toml:"env_file"`
	EnvBootstrapDir string `koanf:"env_bootstrap_dir" toml:"env_bootstrap_dir"`
}

// StepsConfig selects installation steps
type StepsConfig struct {
	Enabled []string `koanf:"enabled" toml:"enabled"`
}

// WatchConfig tunes watch mode
type WatchConfig struct {
	Debounce time.Duration `koanf:"debounce" toml:"debounce"`
}
