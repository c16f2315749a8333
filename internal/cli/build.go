package cli

import (
	"io"

	"github.com/arthur-debert/wpconf/pkg/install"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/spf13/cobra"
)

func newBuildCmd(g *globals) *cobra.Command {
	var opts install.Options

	cmd := &cobra.Command{
		Use:     "build",
		Short:   MsgBuildShort,
		Long:    MsgBuildLong,
		Example: MsgBuildExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.build")

			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			runner, err := newRunner()
			if err != nil {
				return err
			}

			logger.Info().
				Bool("dryRun", opts.DryRun).
				Bool("fromTarget", opts.FromTarget).
				Str("target", cfg.Target).
				Msg("Starting build")

			report, err := runner.Run(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			return r.RenderResult(report)
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&opts.FromTarget, "from-target", false, MsgFlagFromTarget)
	return cmd
}

func newRenderCmd(g *globals) *cobra.Command {
	var fromTarget bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: MsgRenderShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			runner, err := newRunner()
			if err != nil {
				return err
			}

			report, err := runner.Run(cmd.Context(), cfg, install.Options{DryRun: true, FromTarget: fromTarget})
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), report.Output)
			return err
		},
	}

	cmd.Flags().BoolVar(&fromTarget, "from-target", false, MsgFlagFromTarget)
	return cmd
}
