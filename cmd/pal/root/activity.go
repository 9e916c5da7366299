package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Log offline activities and approve their rewards",
	}
	cmd.AddCommand(
		newActivityLogCmd(),
		newActivityPendingCmd(),
		newActivityApproveCmd(),
		newActivityRejectCmd(),
	)
	return cmd
}

func newActivityLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log <reading|exercise|chores|creative> <minutes>",
		Short: "Log an offline activity (waits for a grown-up's approval)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("activity type and minutes are required")
			}
			if !engine.ActivityType(args[0]).IsValid() {
				return fmt.Errorf("unknown activity type %q", args[0])
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("minutes must be a number")
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

			minutes, _ := strconv.Atoi(args[1])
			entry, err := svc.SubmitActivity(ctx, p.ID, engine.ActivityType(args[0]), minutes)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s for %d min → %d %s solar once approved (id %s)\n",
				ui.Good.Render(ui.IconDone+" Logged"), entry.Type, entry.Minutes,
				entry.Reward, ui.IconSolar, ui.Muted.Render(entry.ID[:8]))
			return nil
		},
	}

	return cmd
}

func newActivityPendingCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List activities waiting for approval",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ref := ""
			if !all {
				p, err := actingProfile(svc)
				if err != nil {
					return err
				}
				ref = p.ID
			}

			pending := svc.PendingActivities(ref)
			if len(pending) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing waiting for approval."))
				return nil
			}
			for _, a := range pending {
				name := a.ProfileID
				if p, err := svc.Profile(a.ProfileID); err == nil {
					name = p.Name
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s: %s %d min → %d %s %s\n",
					ui.Muted.Render(a.ID[:8]), ui.Key.Render(name), a.Type, a.Minutes,
					a.Reward, ui.IconSolar, ui.Muted.Render(a.SubmittedAt.Format("Jan 2 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Show every profile's pending activities")

	return cmd
}

func newActivityApproveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a pending activity and grant its solar reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.ApproveActivity(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d min → +%d %s solar\n",
				ui.Good.Render(ui.IconDone+" Approved"), res.Activity.Type,
				res.Activity.Minutes, res.Solar, ui.IconSolar)
			return nil
		},
	}

	return cmd
}

func newActivityRejectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a pending activity (no reward)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.RejectActivity(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("Rejected — no reward granted."))
			return nil
		},
	}

	return cmd
}
