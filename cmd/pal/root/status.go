package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show player stats, resources and badges",
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

			nextAt := engine.XPForNextLevel(p.Level)
			toNext := nextAt - p.XP
			if toNext < 0 {
				toNext = 0
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPlanet, p.Name+"'s Planet"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("XP", fmt.Sprintf("%d (next level at %d, %d to go)", p.XP, nextAt, toNext)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, p.StreakDays)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("💰 Resources"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Crystals: %d\n", ui.IconCrystal, p.Crystals)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Stardust: %d\n", ui.IconStardust, p.Stardust)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Water: %d\n", ui.IconWater, p.Water)
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Solar: %d\n", ui.IconSolar, p.Solar)
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("🔓 Unlocks"))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Biomes: %s\n", ui.CategoryIcon("biome"), unlockList(p.UnlockedBiomes))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Structures: %s\n", ui.CategoryIcon("structure"), unlockList(p.UnlockedStructures))
			fmt.Fprintf(cmd.OutOrStdout(), "- %s Creatures: %s\n", ui.CategoryIcon("creature"), unlockList(p.UnlockedCreatures))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			checker := engine.NewBadgeChecker(p)
			badges := checker.Badges()
			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(fmt.Sprintf("%s Badges (%d/%d)", ui.IconTrophy, checker.CountEarned(), len(badges))))
			for _, b := range badges {
				if !b.Earned {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s\n", b.Icon, ui.Good.Render(b.Name), ui.Muted.Render(b.Description))
			}

			return nil
		},
	}

	return cmd
}

func unlockList(set []string) string {
	if len(set) == 0 {
		return ui.Muted.Render("none yet")
	}
	out := ""
	for i, k := range set {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
