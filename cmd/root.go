// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "github-resume",
	Short: "A CLI resume backed by a user's GitHub activity.",
	Long: `github-resume prints a resume whose coding experience section is built
from a GitHub user's public repositories: the share of each language weighted
by commits, a monthly commit timeline, total stars and release downloads.
The charts are written as image files into the output directory.

Running it without a subcommand is the same as running "github-resume resume".`,
	Run: runResume,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// addGlobalFlags defines the flags shared by every command.
// Unset flags fall back to the environment.
func addGlobalFlags(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	flags.StringP("user", "u", "", "Target GitHub user name (defaults to $GITHUB_USER)")
	flags.String("token", "", "GitHub token (defaults to $GITHUB_TOKEN, optional)")
	flags.Int("concurrency", 0, "Repositories fetched in parallel (defaults to $RESUME_CONCURRENCY or 4)")
	flags.String("api-url", "", "GitHub API base URL (defaults to $GITHUB_API_URL or the public API)")
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	addResumeFlags(rootCmd)
}
