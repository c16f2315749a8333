package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/wpconf/pkg/install"
	"github.com/arthur-debert/wpconf/pkg/logging"
	"github.com/spf13/cobra"
)

func newWatchCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: MsgWatchShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.watch")

			r, err := g.renderer(cmd)
			if err != nil {
				return err
			}
			runner, err := newRunner()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := r.RenderMessage(MsgWatching); err != nil {
				return err
			}
			return runner.Watch(ctx, g.loadConfig, install.Options{}, func(report *install.Report, err error) {
				if err != nil {
					if rerr := r.RenderError(err); rerr != nil {
						logger.Error().Err(rerr).Msg("Failed to render error")
					}
					return
				}
				if rerr := r.RenderResult(report); rerr != nil {
					logger.Error().Err(rerr).Msg("Failed to render report")
				}
			})
		},
	}

	return cmd
}
