package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage player profiles",
	}
	cmd.AddCommand(newProfileAddCmd(), newProfileListCmd())
	return cmd
}

func newProfileAddCmd() *cobra.Command {
	var age int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a player profile",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			p, err := svc.CreateProfile(ctx, args[0], age)
			if err != nil {
				return err
			}
			tier := engine.TierForAge(p.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Welcome, %s! (age %d, tier %d)\n",
				ui.Good.Render(ui.IconPlanet+" Profile created."), ui.Key.Render(p.Name), p.Age, tier)
			return nil
		},
	}

	cmd.Flags().IntVarP(&age, "age", "a", 0, "Player age (3-12)")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func newProfileListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			profiles := svc.Profiles()
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No profiles yet."))
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Key.Render(p.Name),
					fmt.Sprintf("(age %d, level %d)", p.Age, p.Level),
					ui.Muted.Render(p.ID[:8]))
			}
			return nil
		},
	}

	return cmd
}
