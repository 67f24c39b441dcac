// Package render draws the resume charts from the aggregated GitHub activity.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/naka-gawa/github-resume/internal/domain"
)

// Chart file names written by WriteCharts.
const (
	LanguagePieFile = "language_distribution.png"
	TimelineFile    = "repo_timeline.png"
	WordCloudFile   = "repo_wordcloud.png"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no data to render")

// WriteCharts writes the language pie, the commit timeline and the word cloud
// into dir. Charts without data are skipped. A failing chart does not stop the
// others; the paths of the files written are returned with the joined errors.
func WriteCharts(dir string, languages domain.LanguageStats, envelope domain.TimelineEnvelope) ([]string, error) {
	charts := []struct {
		file string
		draw func(w io.Writer) error
	}{
		{LanguagePieFile, func(w io.Writer) error { return LanguagePie(w, languages) }},
		{TimelineFile, func(w io.Writer) error { return CommitTimeline(w, envelope.Timeline) }},
		{WordCloudFile, func(w io.Writer) error { return WordCloud(w, envelope.RepoTotals()) }},
	}

	var written []string
	var errs []error
	for _, c := range charts {
		path := filepath.Join(dir, c.file)
		err := writeChart(path, c.draw)
		switch {
		case errors.Is(err, ErrNoData):
			continue
		case err != nil:
			errs = append(errs, fmt.Errorf("render %s: %w", c.file, err))
		default:
			written = append(written, path)
		}
	}
	return written, errors.Join(errs...)
}

// writeChart renders into path, removing the file again if drawing fails.
func writeChart(path string, draw func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	return draw(f)
}
