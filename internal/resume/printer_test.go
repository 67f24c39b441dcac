package resume

import (
	"bytes"
	"testing"
	"time"

	"github.com/naka-gawa/github-resume/internal/domain"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	m.Run()
}

func testBiography() *Biography {
	return &Biography{
		Name:         "Test User",
		Age:          30,
		Emails:       []string{"a@example.com", "b@example.com"},
		Education:    Education{HighSchool: "Some High", University: "Some University"},
		Competitions: []string{"Local Contest"},
		Skills:       []SkillSet{{Category: "Go", Items: []string{"CLI", "gRPC"}}},
		Strengths:    []string{"Cycling"},
	}
}

func testReport() *domain.Report {
	return &domain.Report{
		User: "octocat",
		Languages: domain.LanguageStats{
			{Language: "Go", Percent: 75, Weight: 3},
			{Language: "Python", Percent: 25, Weight: 1},
		},
		Timeline: domain.TimelineEnvelope{
			Timeline: []domain.TimelinePeriod{
				{
					Period:       "2024-01",
					Repos:        []domain.RepoActivity{{Name: "alpha", Commits: 3, Language: "Go"}},
					TotalCommits: 3,
					Languages:    []string{"Go"},
				},
			},
			TotalStars:     12,
			TotalDownloads: 40,
			AccountCreated: time.Date(2015, time.March, 4, 0, 0, 0, 0, time.UTC),
		},
		Summary: domain.ActivitySummary{
			TotalCommits:     3,
			ActiveMonths:     1,
			MeanPerMonth:     3,
			MedianPerMonth:   3,
			MaxPerMonth:      3,
			MostActivePeriod: "2024-01",
			TopRepositories:  []domain.RepoActivity{{Name: "alpha", Commits: 3, Language: "Go"}},
		},
		Contributions: &domain.Contributions{TotalCommits: 120, TotalPullRequests: 8, TotalReviews: 5, TotalIssues: 2},
	}
}

func TestPrinter_Display(t *testing.T) {
	var buf bytes.Buffer
	err := NewPrinter(&buf).Display(testBiography(), testReport(), []string{"out/language_distribution.png"})
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"Identity", "Test User", "a@example.com, b@example.com",
		"Education", "Some University",
		"Competitions", "Local Contest",
		"Skills", "CLI, gRPC",
		"75.00%", "25.00%",
		"2024-01", "alpha(3)",
		"Total stars: 12", "Total downloads: 40",
		"Member since: March 2015",
		"Most active repositories: alpha (3)",
		"Last year: 120 commits, 8 pull requests, 5 reviews, 2 issues",
		"Chart written: out/language_distribution.png",
		"https://github.com/octocat",
		"Cycling",
	} {
		assert.Contains(t, out, want)
	}

	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Identity")), bytes.Index(buf.Bytes(), []byte("Education")))
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Skills")), bytes.Index(buf.Bytes(), []byte("GitHub Repository Timeline")))
}

func TestPrinter_CodingExperience_NoData(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{User: "ghost", Timeline: domain.EmptyEnvelope()}

	require.NoError(t, NewPrinter(&buf).CodingExperience(report, nil))

	out := buf.String()
	assert.Contains(t, out, "No language data available.")
	assert.Contains(t, out, "No commit activity available.")
	assert.Contains(t, out, "Total stars: 0")
	assert.NotContains(t, out, "Member since")
	assert.NotContains(t, out, "Last year")
}
