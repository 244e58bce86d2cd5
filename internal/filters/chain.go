// Package filters implements the static disqualification rules a job posting
// must pass before it is scored. Filters are pure predicates over posting text:
// same inputs always yield the same verdict, and a missing description is
// treated as "no signal found" rather than a block.
package filters

import (
	"github.com/jonathan/job-relevance/internal/types"
)

// Filter evaluates one disqualification rule against a job posting.
type Filter interface {
	// Name identifies the filter type in verdicts and rejection stats.
	Name() string
	// Evaluate inspects the posting text and the active search profile.
	// It never errors: ambiguous or empty input allows.
	Evaluate(job types.JobPosting, profile types.Profile) types.FilterVerdict
}

// Chain is an ordered list of filters evaluated short-circuit-first.
type Chain struct {
	filters []Filter
}

// NewChain builds a chain with the given filters in priority order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// DefaultChain returns the standard chain in its fixed priority order:
// location requirements, education requirements, cloud provider bias.
func DefaultChain() *Chain {
	return NewChain(
		NewLocationRequirementFilter(),
		NewEducationRequirementFilter(),
		NewCloudProviderBiasFilter(AzureFavoringProfiles...),
	)
}

// Apply runs the job through every filter in order and returns the first
// blocking verdict, or an allow if no filter blocks. The name of the filter
// that blocked is returned alongside the verdict for stats attribution.
func (c *Chain) Apply(job types.JobPosting, profile types.Profile) (types.FilterVerdict, string) {
	for _, f := range c.filters {
		if verdict := f.Evaluate(job, profile); verdict.Blocked {
			return verdict, f.Name()
		}
	}
	return types.Allow(), ""
}

// Filters returns the chain's filters in evaluation order.
func (c *Chain) Filters() []Filter {
	return c.filters
}
