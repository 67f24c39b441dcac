package domain

import "time"

// RepoActivity is one repository's commit count within a period.
type RepoActivity struct {
	Name     string `json:"name"`
	Commits  int    `json:"commits"`
	Language string `json:"language"`
}

// TimelinePeriod is the commit activity of one calendar month.
// TotalCommits always equals the sum of Repos[].Commits.
type TimelinePeriod struct {
	Period       string         `json:"period"`
	Repos        []RepoActivity `json:"repos"`
	TotalCommits int            `json:"total_commits"`
	Languages    []string       `json:"languages"`
}

// TimelineEnvelope bundles the timeline with aggregate totals.
type TimelineEnvelope struct {
	Timeline       []TimelinePeriod `json:"timeline"`
	TotalStars     int              `json:"total_stars"`
	TotalDownloads int              `json:"total_downloads"`
	// AccountCreated is zero when the account lookup failed.
	AccountCreated time.Time `json:"account_created,omitzero"`
}

// EmptyEnvelope is returned when the timeline cannot be built at all.
func EmptyEnvelope() TimelineEnvelope {
	return TimelineEnvelope{Timeline: []TimelinePeriod{}}
}

// RepoTotals returns the commits per repository across all periods,
// in first-seen order.
func (e TimelineEnvelope) RepoTotals() []RepoActivity {
	index := make(map[string]int)
	var totals []RepoActivity
	for _, p := range e.Timeline {
		for _, r := range p.Repos {
			i, ok := index[r.Name]
			if !ok {
				index[r.Name] = len(totals)
				totals = append(totals, RepoActivity{Name: r.Name, Language: r.Language})
				i = len(totals) - 1
			}
			totals[i].Commits += r.Commits
		}
	}
	return totals
}

// RepoStats holds the summed stars and release downloads across repositories.
type RepoStats struct {
	TotalStars     int `json:"total_stars"`
	TotalDownloads int `json:"total_downloads"`
}

// ActivitySummary describes the monthly commit distribution of a timeline.
type ActivitySummary struct {
	TotalCommits     int
	ActiveMonths     int
	MeanPerMonth     float64
	MedianPerMonth   float64
	MaxPerMonth      int
	MostActivePeriod string
	TopRepositories  []RepoActivity
}
