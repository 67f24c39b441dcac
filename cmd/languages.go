package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Outputs the user's language share as JSON",
	Long: `Weights the primary language of every repository owned by the user by the
number of commits the user authored in it, and prints the percentages as a
JSON object ordered by descending weight.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd)
		exitOnError("Error", err)

		printJSON(a.aggregator.LanguageStats(context.Background(), a.cfg.User))
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
