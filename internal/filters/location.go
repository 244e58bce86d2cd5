package filters

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-relevance/internal/types"
)

// onsitePhrases are strong signals that the role requires physical presence.
var onsitePhrases = []string{
	"hybrid",
	"100% onsite",
	"100% on-site",
	"fully onsite",
	"fully on-site",
	"onsite only",
	"on-site only",
	"in office",
	"in-office",
	"must relocate",
	"relocation required",
	"must be local",
	"local candidates only",
	"local to",
}

// remotePhrases override an onsite signal when the posting is explicit about
// being remote-first.
var remotePhrases = []string{
	"100% remote",
	"fully remote",
	"remote, work from anywhere",
	"work from anywhere",
	"remote-first",
}

// daysInOfficePattern matches phrasings like "3 days a week in office",
// "2 days/week onsite", "3x a week". A match only counts as an onsite signal
// when an office token appears nearby, so compressed-schedule phrasing like
// "32 hours over 4 days a week" stays neutral.
var daysInOfficePattern = regexp.MustCompile(`\b\d+\s*(?:days?\s*(?:a|per|/)\s*week|x\s*(?:a|per)\s*week)\b`)

// officeTokens give a days-a-week match its onsite meaning.
var officeTokens = []string{
	"office",
	"onsite",
	"on-site",
	"on site",
	"in person",
	"in-person",
	"headquarters",
	"campus",
}

// daysInOfficeSignal reports whether a days-a-week phrase appears with an
// office token within 40 characters on either side.
func daysInOfficeSignal(text string) bool {
	for _, loc := range daysInOfficePattern.FindAllStringIndex(text, -1) {
		windowStart := loc[0] - 40
		if windowStart < 0 {
			windowStart = 0
		}
		windowEnd := loc[1] + 40
		if windowEnd > len(text) {
			windowEnd = len(text)
		}
		if containsAny(text[windowStart:windowEnd], officeTokens) {
			return true
		}
	}
	return false
}

// LocationRequirementFilter blocks postings that require onsite or hybrid
// presence unless the description signals the role is fully remote.
type LocationRequirementFilter struct{}

// NewLocationRequirementFilter constructs the filter.
func NewLocationRequirementFilter() *LocationRequirementFilter {
	return &LocationRequirementFilter{}
}

// Name identifies the filter in verdicts and stats.
func (f *LocationRequirementFilter) Name() string {
	return "location_requirement"
}

// Evaluate blocks when an onsite/hybrid signal is present and no remote
// override dominates. Pure remote phrasing without an onsite signal allows.
func (f *LocationRequirementFilter) Evaluate(job types.JobPosting, _ types.Profile) types.FilterVerdict {
	text := strings.ToLower(job.Title + " " + job.Description)
	if strings.TrimSpace(text) == "" {
		return types.Allow()
	}

	hasOnsite := containsAny(text, onsitePhrases) || daysInOfficeSignal(text)
	if !hasOnsite {
		return types.Allow()
	}

	if containsAny(text, remotePhrases) {
		return types.Allow()
	}

	return types.Block("requires onsite or hybrid presence")
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
