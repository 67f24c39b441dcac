package usecase

import (
	"context"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/naka-gawa/github-resume/internal/domain"
)

// LanguageStats weights each repository's primary language by the user's commit
// count in it and returns the share of every language, in percent with two decimals.
// Repositories without a primary language are ignored. It returns empty stats
// when the repositories cannot be listed.
func (a *Aggregator) LanguageStats(ctx context.Context, user string) domain.LanguageStats {
	a.logger.Debug("Usecase: Starting language aggregation...")
	repos, err := a.fetcher.FetchRepositories(ctx, user)
	if err != nil {
		a.logger.WithError(err).Warn("Error fetching repositories for language stats")
		return domain.LanguageStats{}
	}

	var withLanguage []*domain.Repository
	for _, r := range repos {
		if r.HasLanguage() {
			withLanguage = append(withLanguage, r)
		}
	}
	tallies := a.tallyCommits(ctx, user, withLanguage)

	languageStats := computeLanguageShares(withLanguage, tallies)
	a.logger.Debugf("Usecase: Language aggregation complete, %d languages.", len(languageStats))
	return languageStats
}

// computeLanguageShares expects repos and tallies to be index-aligned.
// Languages with zero weight are left out, so all-zero input yields empty stats.
func computeLanguageShares(repos []*domain.Repository, tallies []domain.CommitTally) domain.LanguageStats {
	weights := make(map[string]int)
	var order []string
	var total int
	for i, r := range repos {
		if _, ok := weights[r.Language]; !ok {
			order = append(order, r.Language)
		}
		weights[r.Language] += tallies[i].Count
		total += tallies[i].Count
	}
	if total == 0 {
		total = 1
	}

	shares := make(domain.LanguageStats, 0, len(order))
	for _, language := range order {
		weight := weights[language]
		if weight == 0 {
			continue
		}
		percent, err := stats.Round(100*float64(weight)/float64(total), 2)
		if err != nil {
			continue
		}
		shares = append(shares, domain.LanguageShare{Language: language, Percent: percent, Weight: weight})
	}

	// Order by the raw weight; ties keep first-seen order.
	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Weight > shares[j].Weight
	})
	return shares
}
