package root

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"planetpal/internal/engine"
	"planetpal/internal/ui"
)

func newQuizCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "quiz <maths|spelling|science>",
		Short: "Answer quiz questions and earn resources",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("subject is required (maths|spelling|science)")
			}
			if !engine.Subject(args[0]).IsValid() {
				return fmt.Errorf("unknown subject %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			subject := engine.Subject(args[0])

			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := actingProfile(svc)
			if err != nil {
				return err
			}
			tier := engine.TierForAge(p.Age)

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())
			fmt.Fprintln(out, ui.Heading(ui.IconQuiz, fmt.Sprintf("%s quiz for %s (tier %d)", subject, p.Name, tier)))
			fmt.Fprintln(out, ui.Muted.Render("Answer with 1-4, or q to stop."))
			fmt.Fprintln(out, "")

			for i := 0; i < count; i++ {
				q := svc.Generator().Generate(subject, tier)
				fmt.Fprintf(out, "%s %s\n", ui.Key.Render(fmt.Sprintf("Q%d:", i+1)), q.Prompt)
				for j, opt := range q.Options {
					fmt.Fprintf(out, "  %d) %s\n", j+1, opt)
				}

				choice, quit := readChoice(out, scanner, len(q.Options))
				if quit {
					break
				}

				res, err := svc.SubmitAnswer(ctx, p.ID, q, choice)
				if err != nil {
					return err
				}
				printAnswerResult(out, q, res)
				fmt.Fprintln(out, "")
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of questions")

	return cmd
}

func readChoice(w io.Writer, scanner *bufio.Scanner, options int) (choice int, quit bool) {
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			return 0, true
		}
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "q") {
			return 0, true
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > options {
			fmt.Fprintln(w, ui.Warn.Render(fmt.Sprintf("Pick a number from 1 to %d.", options)))
			continue
		}
		return n - 1, false
	}
}

func printAnswerResult(w io.Writer, q engine.Question, res *engine.AnswerResult) {
	if !res.Correct {
		fmt.Fprintf(w, "%s The answer was %s. Combo reset.\n",
			ui.Bad.Render(ui.IconWrong+" Not quite!"), ui.Key.Render(q.Options[q.Answer]))
		return
	}
	fmt.Fprintf(w, "%s +%d %s %s (combo %d, ×%.1f), +%d XP\n",
		ui.Good.Render(ui.IconDone+" Correct!"),
		res.Reward, ui.ResourceIcon(string(res.Resource)), res.Resource,
		res.Combo, res.Multiplier, res.XPAwarded)
	if res.LevelUp {
		fmt.Fprintf(w, "%s Level %d → %d, bonus +%d %s crystals!\n",
			ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter, res.BonusCrystals, ui.IconCrystal)
	}
}
