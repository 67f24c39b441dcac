package domain

// Report is everything the resume shows about a user's GitHub activity.
type Report struct {
	User      string           `json:"user"`
	Languages LanguageStats    `json:"languages"`
	Timeline  TimelineEnvelope `json:"timeline"`
	Summary   ActivitySummary  `json:"-"`
	// Contributions is nil when the GraphQL summary is unavailable.
	Contributions *Contributions `json:"contributions,omitempty"`
}
