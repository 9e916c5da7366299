package root

import (
	"context"

	"github.com/spf13/cobra"

	"planetpal/internal/tui"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the game screen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := actingProfile(svc)
			if err != nil {
				return err
			}
			return tui.RunApp(ctx, svc, p.ID, cmd.OutOrStdout())
		},
	}

	return cmd
}
