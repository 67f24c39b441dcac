package cmd

import (
	"context"
	"os"

	"github.com/naka-gawa/github-resume/internal/render"
	"github.com/naka-gawa/github-resume/internal/resume"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Prints the resume and writes the activity charts",
	Long: `Prints the biography followed by the coding experience aggregated from
the user's GitHub repositories, then writes the language pie chart, the commit
timeline and the repository word cloud into the output directory.`,
	Run: runResume,
}

func runResume(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	bioPath, _ := cmd.Flags().GetString("bio")
	bio, err := resume.LoadBiography(bioPath)
	exitOnError("Failed to load biography", err)

	a, err := newApp(cmd)
	exitOnError("Error", err)

	report := a.aggregator.Report(ctx, a.cfg.User)

	exitOnError("Failed to create output directory", os.MkdirAll(a.cfg.OutputDir, 0o755))
	charts, err := render.WriteCharts(a.cfg.OutputDir, report.Languages, report.Timeline)
	if err != nil {
		// The resume is still printed with the charts that were written.
		a.logger.WithError(err).Warn("Failed to write some charts")
	}

	exitOnError("Failed to print resume", resume.NewPrinter(os.Stdout).Display(bio, report, charts))
}

func addResumeFlags(cmd *cobra.Command) {
	cmd.Flags().String("bio", "", "Biography YAML file (defaults to the built-in biography)")
	cmd.Flags().StringP("out", "o", "", "Directory the charts are written to (defaults to $RESUME_OUTPUT_DIR or .)")
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	addResumeFlags(resumeCmd)
}
