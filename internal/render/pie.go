package render

import (
	"fmt"
	"io"

	"github.com/naka-gawa/github-resume/internal/domain"
	chart "github.com/wcharczuk/go-chart"
)

// smallSliceThreshold is the percentage under which a pie slice is left unlabeled.
const smallSliceThreshold = 5.0

// LanguagePie draws the language share as a PNG pie chart.
func LanguagePie(w io.Writer, languages domain.LanguageStats) error {
	values := pieValues(languages)
	if len(values) == 0 {
		return ErrNoData
	}

	pie := chart.PieChart{
		Title:      "GitHub Repository Language Distribution",
		TitleStyle: chart.StyleShow(),
		Width:      1024,
		Height:     1024,
		Values:     values,
	}
	if err := pie.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	return nil
}

func pieValues(languages domain.LanguageStats) []chart.Value {
	var values []chart.Value
	for _, share := range languages {
		if share.Percent <= 0 {
			continue
		}
		label := ""
		if share.Percent >= smallSliceThreshold {
			label = fmt.Sprintf("%s %.1f%%", share.Language, share.Percent)
		}
		values = append(values, chart.Value{
			Label: label,
			Value: share.Percent,
			Style: chart.Style{
				Show:        true,
				FillColor:   languageDrawingColor(share.Language),
				StrokeColor: chart.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	return values
}
