package config

import (
	"bytes"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent returns a starter wpconf.toml with every value commented out
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// configView is the printable form of Config; durations render as strings
type configView struct {
	Root     string      `toml:"root"`
	Template string      `toml:"template"`
	Target   string      `toml:"target"`
	Syntax   string      `toml:"syntax"`
	Paths    PathsConfig `toml:"paths"`
	Steps    StepsConfig `toml:"steps"`
	Watch    struct {
		Debounce string `toml:"debounce"`
	} `toml:"watch"`
}

// Marshal renders cfg as TOML
func Marshal(cfg *Config) (string, error) {
	view := configView{
		Root:     cfg.Root,
		Template: cfg.Template,
		Target:   cfg.Target,
		Syntax:   cfg.Syntax,
		Paths:    cfg.Paths,
		Steps:    cfg.Steps,
	}
	view.Watch.Debounce = cfg.Watch.Debounce.String()

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [paths], [steps]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
