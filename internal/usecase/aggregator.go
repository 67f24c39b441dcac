// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"errors"

	"github.com/naka-gawa/github-resume/internal/domain"
	"github.com/naka-gawa/github-resume/internal/gateway"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Aggregator is the use case for aggregating GitHub activity.
// It orchestrates the fetching and combining of data. None of its public
// methods fail: errors are logged and the result degrades to an empty value.
type Aggregator struct {
	fetcher     gateway.Fetcher
	logger      logrus.FieldLogger
	concurrency int
}

// NewAggregator creates a new Aggregator instance.
// concurrency bounds the number of repositories fetched in parallel.
func NewAggregator(fetcher gateway.Fetcher, logger logrus.FieldLogger, concurrency int) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		fetcher:     fetcher,
		logger:      logger,
		concurrency: concurrency,
	}
}

// forEachRepo calls fn for every repository with at most a.concurrency calls in flight.
// fn writes its result into slot i of a caller-owned slice so that merging
// afterwards happens in repository order regardless of completion order.
func (a *Aggregator) forEachRepo(ctx context.Context, repos []*domain.Repository, fn func(ctx context.Context, i int, repo *domain.Repository)) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(a.concurrency)
	for i, repo := range repos {
		eg.Go(func() error {
			fn(egCtx, i, repo)
			return nil
		})
	}
	_ = eg.Wait()
}

// partialFailure logs a per-repository failure and returns it.
func (a *Aggregator) partialFailure(repo, resource string, err error) *domain.PartialDataFailure {
	failure := &domain.PartialDataFailure{Repository: repo, Resource: resource, Err: err}
	a.logger.WithFields(logrus.Fields{"repo": repo, "resource": resource}).
		WithError(err).Warn("Skipping repository data")
	return failure
}

// Contributions returns last year's contribution totals, or nil when they are unavailable.
func (a *Aggregator) Contributions(ctx context.Context, user string) *domain.Contributions {
	contributions, err := a.fetcher.FetchContributions(ctx, user)
	if err != nil {
		if errors.Is(err, gateway.ErrTokenRequired) {
			a.logger.Debug("No token configured, skipping contribution summary")
		} else {
			a.logger.WithError(err).Warn("Error fetching contribution summary")
		}
		return nil
	}
	return contributions
}
