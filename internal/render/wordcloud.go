package render

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/naka-gawa/github-resume/internal/domain"
	"github.com/psykhi/wordclouds"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cloudWidth  = 1200
	cloudHeight = 800
	minFontSize = 10
	maxFontSize = 100
)

// WordCloud draws repository names as a PNG word cloud, sized by commits and
// colored from the languages present. Repositories without commits are left out.
func WordCloud(w io.Writer, repos []domain.RepoActivity) error {
	weights, palette := cloudWords(repos)
	if len(weights) == 0 {
		return ErrNoData
	}

	fontFile, err := goFontFile()
	if err != nil {
		return err
	}
	defer os.Remove(fontFile)

	cloud := wordclouds.NewWordcloud(weights,
		wordclouds.FontFile(fontFile),
		wordclouds.FontMinSize(minFontSize),
		wordclouds.FontMaxSize(maxFontSize),
		wordclouds.Width(cloudWidth),
		wordclouds.Height(cloudHeight),
		wordclouds.Colors(palette),
		wordclouds.BackgroundColor(color.White),
	)
	if err := png.Encode(w, cloud.Draw()); err != nil {
		return fmt.Errorf("encode word cloud: %w", err)
	}
	return nil
}

// cloudWords returns the commit weight of every repository with commits and one
// color per language, in first-seen order.
func cloudWords(repos []domain.RepoActivity) (map[string]int, []color.Color) {
	weights := make(map[string]int)
	var palette []color.Color
	seen := make(map[string]bool)
	for _, r := range repos {
		if r.Commits <= 0 {
			continue
		}
		weights[r.Name] += r.Commits
		if !seen[r.Language] {
			seen[r.Language] = true
			palette = append(palette, languageDrawingColor(r.Language))
		}
	}
	return weights, palette
}

// goFontFile writes the Go Regular font to a temporary file; wordclouds loads
// its font face from a path.
func goFontFile() (string, error) {
	f, err := os.CreateTemp("", "wordcloud-*.ttf")
	if err != nil {
		return "", fmt.Errorf("create font file: %w", err)
	}
	if _, err := f.Write(goregular.TTF); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("write font file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("write font file: %w", err)
	}
	return f.Name(), nil
}
