package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Outputs the user's monthly commit timeline as JSON",
	Long: `Buckets the commits the user authored in each of their repositories into
calendar months and prints the timeline together with the total stars and
release downloads in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp(cmd)
		exitOnError("Error", err)

		printJSON(a.aggregator.Timeline(context.Background(), a.cfg.User))
	},
}

// printJSON prints v as pretty-printed JSON to standard output.
func printJSON(v interface{}) {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	exitOnError("Failed to marshal results to JSON", err)
	fmt.Println(string(jsonData))
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}
