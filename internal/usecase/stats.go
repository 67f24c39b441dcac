package usecase

import (
	"context"

	"github.com/naka-gawa/github-resume/internal/domain"
)

// RepoStats sums the stars of the user's repositories and the download counts of
// every asset of every release. A repository whose releases cannot be fetched
// contributes no downloads. It returns zeros when the repositories cannot be listed.
func (a *Aggregator) RepoStats(ctx context.Context, user string) domain.RepoStats {
	repos, err := a.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		a.logger.WithError(err).Warn("Error fetching repo stats")
		return domain.RepoStats{}
	}
	return a.repoStats(ctx, user, repos)
}

func (a *Aggregator) repoStats(ctx context.Context, user string, repos []*domain.Repository) domain.RepoStats {
	var result domain.RepoStats
	for _, r := range repos {
		result.TotalStars += r.StarCount
	}

	downloads := make([]int, len(repos))
	a.forEachRepo(ctx, repos, func(ctx context.Context, i int, repo *domain.Repository) {
		releases, err := a.fetcher.FetchReleases(ctx, user, repo.Name)
		if err != nil {
			a.logger.WithField("repo", repo.Name).WithError(err).Debug("Skipping releases")
			return
		}
		for _, release := range releases {
			downloads[i] += release.Downloads()
		}
	})
	for _, d := range downloads {
		result.TotalDownloads += d
	}
	return result
}
