package usecase

import (
	"context"

	"github.com/naka-gawa/github-resume/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Report gathers the language stats, the timeline and the contribution summary
// concurrently. Like the methods it calls, it never fails.
func (a *Aggregator) Report(ctx context.Context, user string) *domain.Report {
	a.logger.Debug("Usecase: Starting report aggregation...")
	report := &domain.Report{User: user}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		report.Languages = a.LanguageStats(egCtx, user)
		return nil
	})
	eg.Go(func() error {
		report.Timeline = a.Timeline(egCtx, user)
		return nil
	})
	eg.Go(func() error {
		report.Contributions = a.Contributions(egCtx, user)
		return nil
	})
	_ = eg.Wait()

	report.Summary = Summarize(report.Timeline)
	a.logger.Debug("Usecase: Report aggregation complete.")
	return report
}
