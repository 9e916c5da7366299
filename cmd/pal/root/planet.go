package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newPlanetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "planet",
		Short: "Show everything placed on the planet",
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

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlanet, p.Name+"'s Planet"))
			if len(p.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing placed yet — visit the shop!"))
				return nil
			}

			items := make([]int, len(p.Items))
			for i := range items {
				items[i] = i
			}
			sort.Slice(items, func(a, b int) bool {
				return p.Items[items[a]].PlacedAt.Before(p.Items[items[b]].PlacedAt)
			})

			for _, i := range items {
				it := p.Items[i]
				icon := ui.CategoryIcon(it.Category)
				if ci := engine.CatalogItem(engine.ItemCategory(it.Category), it.Kind); ci != nil {
					icon = ci.Icon
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s at (%.0f, %.0f) %s\n",
					icon, ui.Key.Render(it.Kind), ui.Muted.Render(it.Category),
					it.X, it.Y, ui.Muted.Render(it.PlacedAt.Format("2006-01-02")))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Total decorations", len(p.Items)))
			return nil
		},
	}

	return cmd
}
