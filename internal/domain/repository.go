// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// UnknownLanguage is the language tag used for repositories GitHub assigns no primary language to.
const UnknownLanguage = "Unknown"

// Account holds the profile fields of a GitHub user that the resume needs.
type Account struct {
	Login     string
	Name      string
	CreatedAt time.Time
	Followers int
	HTMLURL   string
}

// Repository is a repository owned by the target user.
// Identity is the name, scoped to one user.
type Repository struct {
	Name string
	// Language is empty when GitHub assigns no primary language.
	Language  string
	StarCount int
}

// HasLanguage reports whether the repository has a primary language.
func (r *Repository) HasLanguage() bool {
	return r.Language != ""
}

// TimelineLanguage returns the language tag used in timeline entries.
func (r *Repository) TimelineLanguage() string {
	if r.Language == "" {
		return UnknownLanguage
	}
	return r.Language
}

// Release is a published release and the download counts of its assets.
type Release struct {
	Name   string
	Assets []Asset
}

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name          string
	DownloadCount int
}

// Downloads sums the download counts of every asset of the release.
func (r Release) Downloads() int {
	var total int
	for _, a := range r.Assets {
		total += a.DownloadCount
	}
	return total
}

// Contributions is the GraphQL contribution summary for a user over the last year.
type Contributions struct {
	TotalCommits       int
	TotalPullRequests  int
	TotalIssues        int
	TotalReviews       int
	RestrictedOrHidden int
}
