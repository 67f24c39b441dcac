package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLanguageStats_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		stats LanguageStats
		want  string
	}{
		{
			name: "keeps descending weight order",
			stats: LanguageStats{
				{Language: "Python", Percent: 66.67, Weight: 20},
				{Language: "Go", Percent: 33.33, Weight: 10},
			},
			want: `{"Python":66.67,"Go":33.33}`,
		},
		{
			name: "ties keep their given order",
			stats: LanguageStats{
				{Language: "Rust", Percent: 50, Weight: 5},
				{Language: "Go", Percent: 50, Weight: 5},
			},
			want: `{"Rust":50,"Go":50}`,
		},
		{
			name:  "empty stats",
			stats: LanguageStats{},
			want:  `{}`,
		},
		{
			name:  "nil stats",
			stats: nil,
			want:  `{}`,
		},
		{
			name:  "escapes language names",
			stats: LanguageStats{{Language: `Q"uote`, Percent: 100, Weight: 1}},
			want:  `{"Q\"uote":100}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.stats)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.True(t, json.Valid(got))
		})
	}
}

func TestLanguageStats_MarshalJSON_Nested(t *testing.T) {
	report := Report{User: "octocat", Languages: LanguageStats{{Language: "Go", Percent: 100, Weight: 3}}, Timeline: EmptyEnvelope()}

	got, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{"user":"octocat","languages":{"Go":100},"timeline":{"timeline":[],"total_stars":0,"total_downloads":0}}`, string(got))
}

func TestLanguageStats_Lookup(t *testing.T) {
	stats := LanguageStats{
		{Language: "Go", Percent: 75, Weight: 3},
		{Language: "Python", Percent: 25, Weight: 1},
	}

	percent, ok := stats.Percent("Go")
	assert.True(t, ok)
	assert.Equal(t, 75.0, percent)
	_, ok = stats.Percent("Rust")
	assert.False(t, ok)
	assert.Equal(t, 100.0, stats.Total())
}
