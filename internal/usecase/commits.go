package usecase

import (
	"context"

	"github.com/naka-gawa/github-resume/internal/domain"
)

// CountCommits returns the number of commits user authored in their repository repo.
// Any failure, including one in the middle of pagination, yields 0 rather than a
// partial count, so callers cannot tell an error from inactivity. Use tallyCommits
// internally where the difference matters for diagnostics.
func (a *Aggregator) CountCommits(ctx context.Context, user, repo string) int {
	return a.countCommits(ctx, user, repo).Count
}

func (a *Aggregator) countCommits(ctx context.Context, user, repo string) domain.CommitTally {
	count, err := a.fetcher.CountCommits(ctx, user, repo, user)
	if err != nil {
		return domain.CommitTally{Repository: repo, Err: a.partialFailure(repo, "commits", err)}
	}
	return domain.CommitTally{Repository: repo, Count: count}
}

// tallyCommits counts commits for every repository, in repository order.
func (a *Aggregator) tallyCommits(ctx context.Context, user string, repos []*domain.Repository) []domain.CommitTally {
	tallies := make([]domain.CommitTally, len(repos))
	a.forEachRepo(ctx, repos, func(ctx context.Context, i int, repo *domain.Repository) {
		tallies[i] = a.countCommits(ctx, user, repo.Name)
	})
	return tallies
}
