package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpconf/pkg/config"
)

// Default layout paths, relative to the project root
const (
	TemplateRel = "templates/wp-config.php"
	TargetRel   = "public/wp-config.php"
)

// Project is a temporary project root. Creating one isolates the test from
// the caller's WPCONF_ environment and log file.
type Project struct {
	t    *testing.T
	Root string
}

// NewProject creates an empty project
func NewProject(t *testing.T) *Project {
	t.Helper()

	t.Setenv("WPCONF_LOG_FILE", filepath.Join(t.TempDir(), "wpconf.log"))
	t.Setenv("WPCONF_ROOT", "")
	return &Project{t: t, Root: t.TempDir()}
}

// Path joins rel onto the project root
func (p *Project) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// TemplatePath is the default template location
func (p *Project) TemplatePath() string {
	return p.Path(TemplateRel)
}

// TargetPath is the default target location
func (p *Project) TargetPath() string {
	return p.Path(TargetRel)
}

// WithTemplate writes the template at its default location
func (p *Project) WithTemplate(content string) *Project {
	p.t.Helper()
	CreateFile(p.t, p.Root, TemplateRel, content)
	return p
}

// WithConfig writes wpconf.toml
func (p *Project) WithConfig(content string) *Project {
	p.t.Helper()
	CreateFile(p.t, p.Root, "wpconf.toml", content)
	return p
}

// WithDotenv writes the project .env file
func (p *Project) WithDotenv(content string) *Project {
	p.t.Helper()
	CreateFile(p.t, p.Root, ".env", content)
	return p
}

// ReadTarget returns the generated file
func (p *Project) ReadTarget() string {
	p.t.Helper()
	return ReadFile(p.t, p.TargetPath())
}

// TargetExists reports whether the generated file exists
func (p *Project) TargetExists() bool {
	p.t.Helper()
	return FileExists(p.t, p.TargetPath())
}

// Config loads the project's effective configuration
func (p *Project) Config() *config.Config {
	p.t.Helper()
	cfg, err := config.Load(config.Options{Root: p.Root})
	if err != nil {
		p.t.Fatalf("Failed to load config for %s: %v", p.Root, err)
	}
	return cfg
}
