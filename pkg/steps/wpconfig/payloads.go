package wpconfig

import (
	"strings"
	"text/template"

	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/paths"
)

// Options is everything the payload builders need
type Options struct {
	// EnvFile is the env file name, e.g. ".env"
	EnvFile string
	// EnvRelDir is the env dir relative to the wp parent dir, "/"-prefixed or empty
	EnvRelDir string
	// ConstantsDir is where all.php lives, relative to the wp parent dir
	ConstantsDir string
}

// OptionsFrom derives payload options from the configuration
func OptionsFrom(cfg *config.Config) (Options, error) {
	envRel, err := paths.RelDir(cfg.Paths.WpParent, cfg.Paths.EnvDir)
	if err != nil {
		return Options{}, err
	}

	constantsDir := envRel
	if cfg.Paths.EnvBootstrapDir != "" {
		constantsDir, err = paths.RelDir(cfg.Paths.WpParent, paths.Resolve(cfg.Root, cfg.Paths.EnvBootstrapDir))
		if err != nil {
			return Options{}, err
		}
	}

	envFile := cfg.Paths.EnvFile
	if envFile == "" {
		envFile = ".env"
	}

	return Options{
		EnvFile:      envFile,
		EnvRelDir:    envRel,
		ConstantsDir: constantsDir,
	}, nil
}

var funcs = template.FuncMap{
	// php escapes a value for a single-quoted PHP string
	"php": func(s string) string {
		return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
	},
}

var (
	dotenvTemplate = template.Must(template.New("dotenv").Funcs(funcs).Parse(`// Prevent WP Starter to load from {{.EnvFile}} file
$_ENV['WPSTARTER_ENV_LOADED'] = true;

// Only boot from {{.EnvFile}} files if not cached
if (!is_file(WPSTARTER_PATH . WordPressEnvBridge::CACHE_DUMP_FILE)) {
    try {
        (new \Symfony\Component\Dotenv\Dotenv('WP_ENVIRONMENT_TYPE', 'WP_DEBUG'))
            ->setProdEnvs(['production'])
            ->usePutenv()
            ->bootEnv(realpath(__DIR__ . '{{php .EnvRelDir}}/{{php .EnvFile}}'), 'development');
    } catch (\Symfony\Component\Dotenv\Exception\PathException $e) {
        http_response_code(500);
        exit('Could not find a {{php .EnvFile}} file. Please copy .env.example to {{php .EnvFile}} and fill in the correct values.');
    }
}
`))

	constantsTemplate = template.Must(template.New("constants").Funcs(funcs).Parse(`$alwaysIncludedConstants = realpath(__DIR__ . '{{php .ConstantsDir}}/all.php');
$hasAlwaysIncludedConstants = $alwaysIncludedConstants && file_exists($alwaysIncludedConstants) && is_readable($alwaysIncludedConstants);
if ($hasAlwaysIncludedConstants) {
    require_once $alwaysIncludedConstants;
}
unset($alwaysIncludedConstants, $hasAlwaysIncludedConstants);
`))
)

const skipCachePayload = `add_filter('wpstarter.skip-cache-env', function ($skip, $envName) {
    return $skip || $envName === 'development';
}, 10, 2);
`

// DotenvPayload replaces WP Starter's env loading with Symfony Dotenv
func DotenvPayload(opts Options) (string, error) {
	return execute(dotenvTemplate, opts)
}

// ConstantsPayload loads all.php on every environment when it is readable
func ConstantsPayload(opts Options) (string, error) {
	return execute(constantsTemplate, opts)
}

// SkipCachePayload skips the env cache in development
func SkipCachePayload() string {
	return skipCachePayload
}

func execute(t *template.Template, opts Options) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, opts); err != nil {
		return "", errors.Wrapf(err, errors.ErrInternal, "failed to build %s payload", t.Name())
	}
	return b.String(), nil
}
