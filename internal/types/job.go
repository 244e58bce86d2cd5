// Package types provides type definitions for structured data used throughout the job-relevance engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// JobPosting represents a scraped job posting under evaluation.
// The struct is treated as immutable for the duration of filtering.
type JobPosting struct {
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Description string  `json:"description"`
	Profile     Profile `json:"profile,omitempty"` // search profile the posting was scraped for
}

// FilterVerdict is the outcome of running a job through a filter or the full chain.
// Reason is empty exactly when Blocked is false.
type FilterVerdict struct {
	Blocked bool   `json:"blocked"`
	Reason  string `json:"reason,omitempty"`
}

// Allow returns a non-blocking verdict.
func Allow() FilterVerdict {
	return FilterVerdict{}
}

// Block returns a blocking verdict with a human-readable reason.
func Block(reason string) FilterVerdict {
	return FilterVerdict{Blocked: true, Reason: reason}
}
