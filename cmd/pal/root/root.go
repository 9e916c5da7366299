package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planetpal/internal/ui"
)

const Version = "0.1.0"

var profileFlag string

var rootCmd = &cobra.Command{
	Use:           "pal",
	Short:         "Planet Pal — learn, earn, and grow your own planet",
	Long:          "Planet Pal is a children's educational game: answer maths, spelling and science questions or log offline activities to earn resources, then spend them decorating your planet.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Acting profile (name or ID, default: first profile)")

	rootCmd.AddCommand(
		newProfileCmd(),
		newStatusCmd(),
		newQuizCmd(),
		newShopCmd(),
		newBuyCmd(),
		newPlanetCmd(),
		newActivityCmd(),
		newPlayCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
