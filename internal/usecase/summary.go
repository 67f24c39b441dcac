package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-resume/internal/domain"
)

// topRepositoryCount limits ActivitySummary.TopRepositories.
const topRepositoryCount = 5

// Summarize describes the distribution of monthly commits in a timeline.
func Summarize(envelope domain.TimelineEnvelope) domain.ActivitySummary {
	if len(envelope.Timeline) == 0 {
		return domain.ActivitySummary{}
	}

	monthly := make([]float64, len(envelope.Timeline))
	for i, p := range envelope.Timeline {
		monthly[i] = float64(p.TotalCommits)
	}

	// The input is non-empty, so these cannot fail.
	total, _ := stats.Sum(monthly)
	mean, _ := stats.Mean(monthly)
	median, _ := stats.Median(monthly)
	peak, _ := stats.Max(monthly)
	mean, _ = stats.Round(mean, 2)

	summary := domain.ActivitySummary{
		TotalCommits:   int(total),
		ActiveMonths:   len(monthly),
		MeanPerMonth:   mean,
		MedianPerMonth: median,
		MaxPerMonth:    int(peak),
	}
	for _, p := range envelope.Timeline {
		if p.TotalCommits == summary.MaxPerMonth {
			summary.MostActivePeriod = p.Period
			break
		}
	}

	repos := envelope.RepoTotals()
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Commits > repos[j].Commits
	})
	if len(repos) > topRepositoryCount {
		repos = repos[:topRepositoryCount]
	}
	summary.TopRepositories = repos
	return summary
}
