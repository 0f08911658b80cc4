package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/equatix/internal/model"
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout [name]",
		Short: "Show a board layout and its bonus cells",
		Long: `Show the board for a layout, marking bonus cells.
Without a name, the layout from --layout is shown.

Available layouts: standard, legacy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Layout
			if len(args) == 1 {
				name = args[0]
			}
			layout, err := model.LayoutByName(name)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cfg.Color, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(newLayoutInfo(layout))
			return nil
		},
	}
}
