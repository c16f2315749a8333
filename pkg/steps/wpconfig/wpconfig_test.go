// Test Type: Unit Test
// Description: Tests for the wp-config step plan, payloads and replay

package wpconfig_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/arthur-debert/wpconf/pkg/sections"
	"github.com/arthur-debert/wpconf/pkg/steps"
	"github.com/arthur-debert/wpconf/pkg/steps/wpconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(root string) *config.Config {
	return &config.Config{
		Root:   root,
		Target: filepath.Join(root, "public", "wp-config.php"),
		Paths: config.PathsConfig{
			WpParent: filepath.Join(root, "public"),
			EnvDir:   root,
			EnvFile:  ".env",
		},
	}
}

func loadTemplate(t *testing.T) *sections.Editor {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "wp-config.php"))
	require.NoError(t, err)
	e, err := sections.Load(string(data), markers.Default)
	require.NoError(t, err)
	return e
}

func TestOptionsFrom(t *testing.T) {
	root := filepath.FromSlash("/srv/site")

	tests := []struct {
		name      string
		mutate    func(*config.Config)
		envRel    string
		constants string
		envFile   string
	}{
		{
			name:      "defaults",
			mutate:    func(*config.Config) {},
			envRel:    "/..",
			constants: "/..",
			envFile:   ".env",
		},
		{
			name: "env dir is wp parent",
			mutate: func(c *config.Config) {
				c.Paths.EnvDir = c.Paths.WpParent
			},
			envRel:    "",
			constants: "",
			envFile:   ".env",
		},
		{
			name: "bootstrap dir configured",
			mutate: func(c *config.Config) {
				c.Paths.EnvBootstrapDir = "env/constants"
				c.Paths.EnvFile = ".env.local"
			},
			envRel:    "/..",
			constants: "/../env/constants",
			envFile:   ".env.local",
		},
		{
			name: "empty env file",
			mutate: func(c *config.Config) {
				c.Paths.EnvFile = ""
			},
			envRel:    "/..",
			constants: "/..",
			envFile:   ".env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(root)
			tt.mutate(cfg)

			opts, err := wpconfig.OptionsFrom(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.envRel, opts.EnvRelDir)
			assert.Equal(t, tt.constants, opts.ConstantsDir)
			assert.Equal(t, tt.envFile, opts.EnvFile)
		})
	}
}

func TestPayloads(t *testing.T) {
	opts := wpconfig.Options{EnvFile: ".env", EnvRelDir: "/..", ConstantsDir: "/../env"}

	dotenv, err := wpconfig.DotenvPayload(opts)
	require.NoError(t, err)
	assert.Contains(t, dotenv, "$_ENV['WPSTARTER_ENV_LOADED'] = true;")
	assert.Contains(t, dotenv, "->bootEnv(realpath(__DIR__ . '/../.env'), 'development');")

	constants, err := wpconfig.ConstantsPayload(opts)
	require.NoError(t, err)
	assert.Contains(t, constants, "realpath(__DIR__ . '/../env/all.php')")

	assert.Contains(t, wpconfig.SkipCachePayload(), "wpstarter.skip-cache-env")
}

func TestPayloads_EscapeQuotes(t *testing.T) {
	opts := wpconfig.Options{EnvFile: "o'brien.env", EnvRelDir: `/a\b`}

	dotenv, err := wpconfig.DotenvPayload(opts)
	require.NoError(t, err)
	assert.Contains(t, dotenv, `'/a\\b/o\'brien.env'`)
}

func TestPlan_Order(t *testing.T) {
	ops, err := wpconfig.Plan(wpconfig.Options{EnvFile: ".env", EnvRelDir: "/.."})
	require.NoError(t, err)

	var got []string
	for _, op := range ops {
		got = append(got, op.String())
	}
	assert.Equal(t, []string{
		"append(AUTOLOAD)",
		"prepend(ENV_VARIABLES)",
		"append(BEFORE_BOOTSTRAP)",
		"delete-if-present(THEMES_REGISTER)",
		"delete-if-present(ADMIN_COLOR)",
	}, got)
}

func TestStep_Run(t *testing.T) {
	step := wpconfig.New()
	assert.Equal(t, "wp-config", step.Name())
	assert.True(t, step.Allowed(nil))
	assert.Equal(t, "wp-config applied successfully.", step.Success())

	doc := loadTemplate(t)
	status, err := step.Run(context.Background(), testConfig(t.TempDir()), doc)
	require.NoError(t, err)
	assert.Equal(t, steps.Success, status)

	assert.Equal(t, []string{"AUTOLOAD", "ENV_VARIABLES", "KEYS", "BEFORE_BOOTSTRAP"}, doc.Sections())
	assert.Equal(t, sections.Stats{Inserted: 3, Deleted: 2}, doc.Stats())

	out := doc.Render()
	assert.NotContains(t, out, "register_theme_directory")
	assert.NotContains(t, out, "coffee")
	assert.Contains(t, out, "bootEnv(realpath(__DIR__ . '/../.env')")
}

func TestStep_ReplayIsByteIdentical(t *testing.T) {
	cfg := testConfig(t.TempDir())
	step := wpconfig.New()

	first := loadTemplate(t)
	_, err := step.Run(context.Background(), cfg, first)
	require.NoError(t, err)
	rendered := first.Render()

	second, err := sections.Load(rendered, markers.Default)
	require.NoError(t, err)
	status, err := step.Run(context.Background(), cfg, second)
	require.NoError(t, err)
	assert.Equal(t, steps.Success, status)

	assert.False(t, second.Changed())
	assert.Equal(t, sections.Stats{Skipped: 3}, second.Stats())
	assert.Equal(t, rendered, second.Render())
}

func TestStep_MissingSectionFails(t *testing.T) {
	doc, err := sections.Load("<?php\nAUTOLOAD: {\n} #@@/AUTOLOAD\n", markers.Default)
	require.NoError(t, err)

	status, err := wpconfig.New().Run(context.Background(), testConfig(t.TempDir()), doc)
	require.Error(t, err)
	assert.Equal(t, steps.Failure, status)
}
