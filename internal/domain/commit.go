package domain

import "time"

// PeriodLayout is the time layout of a period key ("YYYY-MM").
const PeriodLayout = "2006-01"

// Commit is a commit authored by the target user.
type Commit struct {
	Repository string
	AuthorDate time.Time
}

// Period returns the calendar month key the commit falls into, in UTC.
func (c Commit) Period() string {
	return c.AuthorDate.UTC().Format(PeriodLayout)
}

// CommitTally is the outcome of counting one repository's commits.
// A failed tally keeps Count at zero and records the cause in Err.
type CommitTally struct {
	Repository string
	Count      int
	Err        error
}

// Failed reports whether counting failed.
func (t CommitTally) Failed() bool {
	return t.Err != nil
}
