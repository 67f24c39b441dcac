package domain

import (
	"bytes"
	"encoding/json"
)

// LanguageShare is the share of commit activity attributed to one language.
type LanguageShare struct {
	Language string  `json:"language"`
	Percent  float64 `json:"percent"`
	// Weight is the summed commit count behind Percent.
	Weight int `json:"-"`
}

// LanguageStats maps language names to percentages, ordered by descending weight.
// It marshals as a JSON object preserving that order.
type LanguageStats []LanguageShare

// Percent returns the percentage for a language and whether it is present.
func (s LanguageStats) Percent(language string) (float64, bool) {
	for _, share := range s {
		if share.Language == language {
			return share.Percent, true
		}
	}
	return 0, false
}

// Total sums all percentages.
func (s LanguageStats) Total() float64 {
	var total float64
	for _, share := range s {
		total += share.Percent
	}
	return total
}

// MarshalJSON encodes the stats as an ordered JSON object.
func (s LanguageStats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, share := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(share.Language)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(share.Percent)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
