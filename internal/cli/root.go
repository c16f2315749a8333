// Package cli wires the wpconf commands
package cli

import (
	"github.com/arthur-debert/wpconf/internal/version"
	"github.com/arthur-debert/wpconf/pkg/config"
	"github.com/arthur-debert/wpconf/pkg/errors"
	"github.com/arthur-debert/wpconf/pkg/filesystem"
	"github.com/arthur-debert/wpconf/pkg/install"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/arthur-debert/wpconf/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globals holds the persistent flags shared by every command
type globals struct {
	verbosity  int
	configFile string
	root       string
	format     string
}

func (g *globals) loadConfig() (*config.Config, error) {
	return config.Load(config.Options{Root: g.root, File: g.configFile})
}

func (g *globals) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(g.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}

func newRunner() (*install.Runner, error) {
	registry, err := install.DefaultRegistry()
	if err != nil {
		return nil, err
	}
	return install.NewRunner(filesystem.NewOS(), registry), nil
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:     "wpconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(g.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&g.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&g.configFile, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&g.root, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().StringVarP(&g.format, "format", "f", "auto", MsgFlagFormat)

	rootCmd.AddCommand(newBuildCmd(g))
	rootCmd.AddCommand(newRenderCmd(g))
	rootCmd.AddCommand(newSectionsCmd(g))
	rootCmd.AddCommand(newConfigCmd(g))
	rootCmd.AddCommand(newWatchCmd(g))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// Execute runs the root command and renders any error to stderr.
// It returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}

	r, rerr := ui.NewRenderer(ui.FormatAuto, cmd.ErrOrStderr())
	if rerr != nil {
		log.Error().Err(err).Msg("Command failed")
		return 1
	}
	if rerr := r.RenderError(err); rerr != nil {
		log.Error().Err(err).Msg("Command failed")
	}
	return 1
}
