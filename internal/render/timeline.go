package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/naka-gawa/github-resume/internal/domain"
	chart "github.com/wcharczuk/go-chart"
	"github.com/wcharczuk/go-chart/drawing"
)

const (
	barWidth     = 40
	barSpacing   = 20
	minChartSize = 800
)

// CommitTimeline draws one stacked bar per period as a PNG. Each segment is a
// repository, filled with its language color and outlined with a color that
// identifies the repository across periods.
func CommitTimeline(w io.Writer, timeline []domain.TimelinePeriod) error {
	if len(timeline) == 0 {
		return ErrNoData
	}

	outlines := repositoryOutlines(timeline)
	bars := make([]chart.StackedBar, 0, len(timeline))
	for _, period := range timeline {
		repos := append([]domain.RepoActivity(nil), period.Repos...)
		sort.SliceStable(repos, func(i, j int) bool {
			return repos[i].Commits > repos[j].Commits
		})
		bar := chart.StackedBar{Name: period.Period, Width: barWidth}
		for _, r := range repos {
			bar.Values = append(bar.Values, chart.Value{
				Label: r.Name,
				Value: float64(r.Commits),
				Style: chart.Style{
					Show:        true,
					FillColor:   languageDrawingColor(r.Language),
					StrokeColor: outlines[r.Name],
					StrokeWidth: 2,
				},
			})
		}
		bars = append(bars, bar)
	}

	width := len(bars) * (barWidth + barSpacing)
	if width < minChartSize {
		width = minChartSize
	}
	graph := chart.StackedBarChart{
		Title:      "Monthly Commit Activity",
		TitleStyle: chart.StyleShow(),
		Width:      width,
		Height:     minChartSize / 2,
		BarSpacing: barSpacing,
		XAxis:      chart.StyleShow(),
		YAxis:      chart.StyleShow(),
		Bars:       bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render timeline chart: %w", err)
	}
	return nil
}

// repositoryOutlines assigns every repository an outline color, in name order.
func repositoryOutlines(timeline []domain.TimelinePeriod) map[string]drawing.Color {
	seen := make(map[string]bool)
	var names []string
	for _, period := range timeline {
		for _, r := range period.Repos {
			if !seen[r.Name] {
				seen[r.Name] = true
				names = append(names, r.Name)
			}
		}
	}
	sort.Strings(names)

	outlines := make(map[string]drawing.Color, len(names))
	for i, name := range names {
		outlines[name] = chart.GetAlternateColor(i)
	}
	return outlines
}
