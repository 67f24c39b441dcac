package render

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/wcharczuk/go-chart/drawing"
)

// languageColors are the brand colors of common languages.
var languageColors = map[string]string{
	"Python":           "#3776AB",
	"JavaScript":       "#F7DF1E",
	"Java":             "#007396",
	"C++":              "#00599C",
	"HTML":             "#E34F26",
	"CSS":              "#1572B6",
	"TypeScript":       "#3178C6",
	"C#":               "#239120",
	"Ruby":             "#CC342D",
	"Swift":            "#FA7343",
	"Go":               "#00ADD8",
	"Rust":             "#DEA584",
	"PHP":              "#777BB4",
	"R":                "#276DC3",
	"Shell":            "#89E051",
	"Jupyter Notebook": "#DA5B0B",
	"Vue":              "#4FC08D",
	"React":            "#61DAFB",
	"Kotlin":           "#A97BFF",
	"Dart":             "#00B4AB",
}

// LanguageColor returns a "#RRGGBB" color for a language. Languages outside the
// table get a color derived from an FNV-1a hash of the name, stable across runs.
func LanguageColor(language string) string {
	if c, ok := languageColors[language]; ok {
		return c
	}
	h := fnv.New32a()
	h.Write([]byte(language))
	sum := h.Sum32()
	return fmt.Sprintf("#%02X%02X%02X", (sum>>16)&0xFF, (sum>>8)&0xFF, sum&0xFF)
}

func languageDrawingColor(language string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(LanguageColor(language), "#"))
}
