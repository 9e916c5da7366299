package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop [biome|structure|creature]",
		Short: "Browse the decoration catalog",
		Args:  cobra.MaximumNArgs(1),
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

			categories := []engine.ItemCategory{engine.CategoryBiome, engine.CategoryStructure, engine.CategoryCreature}
			if len(args) == 1 {
				cat := engine.ItemCategory(args[0])
				if !cat.IsValid() {
					return fmt.Errorf("unknown category %q", args[0])
				}
				categories = []engine.ItemCategory{cat}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Planet Shop"))
			for _, cat := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.CategoryIcon(string(cat))+" "+titleCase(string(cat))+"s"))
				for _, item := range engine.Catalog(cat) {
					marker := ui.Good.Render("✔ affordable")
					if err := engine.CanAfford(p, item); err != nil {
						marker = ui.Muted.Render(err.Error())
					}
					if cat == engine.CategoryBiome && containsKey(p.UnlockedBiomes, item.Key) {
						marker = ui.Gold.Render("owned")
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s — %s  %s\n",
						item.Icon, ui.Key.Render(item.Key), ui.Muted.Render("("+item.Name+")"),
						costString(item), marker)
				}
			}
			return nil
		},
	}

	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <biome|structure|creature> <key>",
		Short: "Buy and place a decoration",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("category and item key are required")
			}
			if !engine.ItemCategory(args[0]).IsValid() {
				return fmt.Errorf("unknown category %q", args[0])
			}
			return nil
		},
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

			res, err := svc.Purchase(ctx, p.ID, engine.ItemCategory(args[0]), args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s placed at (%.0f, %.0f)\n",
				ui.Good.Render(ui.IconDone+" Bought"), res.Item.Icon, ui.Key.Render(res.Item.Name),
				res.Placed.X, res.Placed.Y)
			if res.NewlyUnlocked {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s unlocked!\n", ui.Gold.Render("🔓"), res.Item.Key)
			}
			return nil
		},
	}

	return cmd
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func costString(item engine.ShopItem) string {
	order := []engine.Resource{engine.ResourceCrystals, engine.ResourceStardust, engine.ResourceWater, engine.ResourceSolar}
	parts := make([]string, 0, len(item.Cost))
	for _, r := range order {
		if n, ok := item.Cost[r]; ok {
			parts = append(parts, fmt.Sprintf("%s%d", ui.ResourceIcon(string(r)), n))
		}
	}
	return strings.Join(parts, " ")
}

func containsKey(set []string, key string) bool {
	for _, s := range set {
		if s == key {
			return true
		}
	}
	return false
}
