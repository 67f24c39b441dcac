package domain

import "fmt"

// RequestFailure is a transport or HTTP-level failure talking to the GitHub API.
type RequestFailure struct {
	Endpoint string
	// StatusCode is zero when no response was received.
	StatusCode int
	Err        error
}

func (e *RequestFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed with status %d: %v", e.Endpoint, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s failed: %v", e.Endpoint, e.Err)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// PartialDataFailure is a failure of one repository's sub-fetch that does not
// abort the aggregation over the other repositories.
type PartialDataFailure struct {
	Repository string
	Resource   string
	Err        error
}

func (e *PartialDataFailure) Error() string {
	return fmt.Sprintf("fetching %s for %s: %v", e.Resource, e.Repository, e.Err)
}

func (e *PartialDataFailure) Unwrap() error {
	return e.Err
}
