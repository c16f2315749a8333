package cli

import (
	"github.com/arthur-debert/wpconf/pkg/filesystem"
	"github.com/arthur-debert/wpconf/pkg/markers"
	"github.com/arthur-debert/wpconf/pkg/paths"
	"github.com/spf13/cobra"
)

func newSectionsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "sections [file]",
		Short: MsgSectionsShort,
		Long:  MsgSectionsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			syntax, err := markers.SyntaxByName(cfg.Syntax)
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

			path := cfg.Template
			if len(args) == 1 {
				path = paths.Resolve(cfg.Root, args[0])
			} else if exists, _ := filesystem.NewOS().Exists(cfg.Target); exists {
				path = cfg.Target
			}

			listing, err := runner.ListSections(path, syntax)
			if err != nil {
				return err
			}
			return r.RenderResult(listing)
		},
	}
}
