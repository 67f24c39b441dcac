package usecase

import (
	"context"
	"sort"

	"github.com/naka-gawa/github-resume/internal/domain"
)

// Timeline builds the monthly commit timeline of the user's repositories and
// wraps it with the star and download totals. A repository whose commits cannot
// be fetched is skipped; if the account or its repositories cannot be fetched
// the result is domain.EmptyEnvelope().
func (a *Aggregator) Timeline(ctx context.Context, user string) domain.TimelineEnvelope {
	a.logger.Debug("Usecase: Starting timeline aggregation...")
	account, err := a.fetcher.FetchAccount(ctx, user)
	if err != nil {
		a.logger.WithError(err).Warn("Error fetching timeline data")
		return domain.EmptyEnvelope()
	}
	repos, err := a.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		a.logger.WithError(err).Warn("Error fetching timeline data")
		return domain.EmptyEnvelope()
	}

	repoStats := a.repoStats(ctx, user, repos)

	commits := make([][]domain.Commit, len(repos))
	a.forEachRepo(ctx, repos, func(ctx context.Context, i int, repo *domain.Repository) {
		cs, err := a.fetcher.FetchCommits(ctx, user, repo.Name, user)
		if err != nil {
			a.partialFailure(repo.Name, "commits", err)
			return
		}
		commits[i] = cs
	})

	envelope := domain.TimelineEnvelope{
		Timeline:       BuildTimeline(repos, commits),
		TotalStars:     repoStats.TotalStars,
		TotalDownloads: repoStats.TotalDownloads,
		AccountCreated: account.CreatedAt,
	}
	a.logger.Debugf("Usecase: Timeline aggregation complete, %d periods.", len(envelope.Timeline))
	return envelope
}

// monthBucket holds at most one entry per repository.
type monthBucket struct {
	entries []domain.RepoActivity
	index   map[string]int
}

func (b *monthBucket) add(repo *domain.Repository) {
	i, ok := b.index[repo.Name]
	if !ok {
		b.entries = append(b.entries, domain.RepoActivity{Name: repo.Name, Language: repo.TimelineLanguage()})
		i = len(b.entries) - 1
		b.index[repo.Name] = i
	}
	b.entries[i].Commits++
}

// BuildTimeline buckets commits into calendar months. commits[i] holds the commits
// of repos[i]. Periods are sorted chronologically; entries within a period keep
// repository order.
func BuildTimeline(repos []*domain.Repository, commits [][]domain.Commit) []domain.TimelinePeriod {
	buckets := make(map[string]*monthBucket)
	for i, repo := range repos {
		for _, c := range commits[i] {
			key := c.Period()
			b, ok := buckets[key]
			if !ok {
				b = &monthBucket{index: make(map[string]int)}
				buckets[key] = b
			}
			b.add(repo)
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// "YYYY-MM" sorts chronologically as a string.
	sort.Strings(keys)

	timeline := make([]domain.TimelinePeriod, 0, len(keys))
	for _, key := range keys {
		entries := buckets[key].entries
		if len(entries) == 0 {
			continue
		}
		period := domain.TimelinePeriod{Period: key, Repos: entries, Languages: []string{}}
		seen := make(map[string]bool)
		for _, e := range entries {
			period.TotalCommits += e.Commits
			if !seen[e.Language] {
				seen[e.Language] = true
				period.Languages = append(period.Languages, e.Language)
			}
		}
		timeline = append(timeline, period)
	}
	return timeline
}
