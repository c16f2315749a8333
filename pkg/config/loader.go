package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/arthur-debert/wpconf/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every configuration environment variable
const EnvPrefix = "WPCONF_"

// ConfigFileNames are looked up in the project root, in order
var ConfigFileNames = []string{"wpconf.toml", ".wpconf.toml"}

// Options controls where configuration is loaded from
type Options struct {
	// Root is the project root; discovered when empty
	Root string
	// File is an explicit configuration file; must exist when set
	File string
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}

	// 2. Config file
	var sources []string
	configPath, err := findConfigFile(root, opts.File)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", configPath).
				WithDetail("path", configPath)
		}
		sources = append(sources, configPath)
	}

	// 3. Project .env file
	envFile := filepath.Join(root, ".env")
	if _, err := os.Stat(envFile); err == nil {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", envFile).
				WithDetail("path", envFile)
		}
		if err := k.Load(confmap.Provider(dotenvValues(values), "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load .env values")
		}
		sources = append(sources, envFile)
	}

	// 4. Process environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	cfg.Root = root
	cfg.Source = sources

	// 6. Post-process
	if err := postProcessConfig(&cfg); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("root", cfg.Root).
		Strs("sources", cfg.Source).
		Str("template", cfg.Template).
		Str("target", cfg.Target).
		Msg("Configuration loaded")

	return &cfg, nil
}

func resolveRoot(root string) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(paths.ExpandHome(root))
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigValid, "invalid root %s", root)
		}
		return abs, nil
	}
	found, _, err := paths.FindProjectRoot("")
	return found, err
}

func findConfigFile(root, explicit string) (string, error) {
	if explicit != "" {
		path := paths.Resolve(root, explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", nil
}

// envKey maps WPCONF_PATHS__ENV_DIR to paths.env_dir
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// dotenvValues keeps the WPCONF_ entries of a .env file, keyed like envKey
func dotenvValues(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for k, v := range values {
		if !strings.HasPrefix(k, EnvPrefix) {
			continue
		}
		out[envKey(k)] = v
	}
	return out
}

func postProcessConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.Template) == "" {
		return errors.New(errors.ErrConfigValid, "template must be set")
	}
	if strings.TrimSpace(cfg.Target) == "" {
		return errors.New(errors.ErrConfigValid, "target must be set")
	}
	if _, err := markers.SyntaxByName(cfg.Syntax); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid syntax").WithDetail("syntax", cfg.Syntax)
	}
	if cfg.Watch.Debounce < 0 {
		return errors.New(errors.ErrConfigValid, "watch.debounce must not be negative")
	}

	cfg.Template = paths.Resolve(cfg.Root, cfg.Template)
	cfg.Target = paths.Resolve(cfg.Root, cfg.Target)
	cfg.Paths.WpParent = paths.Resolve(cfg.Root, cfg.Paths.WpParent)
	if cfg.Paths.WpParent == "" {
		cfg.Paths.WpParent = filepath.Dir(cfg.Target)
	}
	cfg.Paths.EnvDir = paths.Resolve(cfg.Root, cfg.Paths.EnvDir)
	if cfg.Paths.EnvDir == "" {
		cfg.Paths.EnvDir = cfg.Root
	}
	if cfg.Paths.EnvFile == "" {
		cfg.Paths.EnvFile = ".env"
	}

	return nil
}
