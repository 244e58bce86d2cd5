package filters

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-relevance/internal/types"
)

// hardDegreePatterns match mandatory Computer Science degree requirements.
// Soft phrasing ("preferred", "or equivalent experience") must not match.
var hardDegreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:bachelor'?s?\b|bs\b|b\.s\.)\s+(?:degree\s+)?in\s+computer\s+science`),
	regexp.MustCompile(`computer\s+science\s+degree\s+(?:is\s+)?required`),
	regexp.MustCompile(`must\s+have\s+(?:a\s+)?(?:cs|computer\s+science)\s+degree`),
	// unqualified "degree in Computer Science" counts as mandatory
	regexp.MustCompile(`degree\s+in\s+computer\s+science`),
	regexp.MustCompile(`\bcs\s+degree\s+required`),
}

// softDegreePhrases signal the degree is a preference, not a requirement.
var softDegreePhrases = []string{
	"preferred",
	"a plus",
	"nice to have",
	"or equivalent experience",
	"equivalent experience accepted",
	"equivalent practical experience",
}

// EducationRequirementFilter blocks postings with a hard Computer Science
// degree requirement. Preference phrasing never triggers it.
type EducationRequirementFilter struct{}

// NewEducationRequirementFilter constructs the filter.
func NewEducationRequirementFilter() *EducationRequirementFilter {
	return &EducationRequirementFilter{}
}

// Name identifies the filter in verdicts and stats.
func (f *EducationRequirementFilter) Name() string {
	return "education_requirement"
}

// Evaluate blocks on a hard degree requirement unless soft language appears
// near the degree mention.
func (f *EducationRequirementFilter) Evaluate(job types.JobPosting, _ types.Profile) types.FilterVerdict {
	text := strings.ToLower(job.Description)
	if strings.TrimSpace(text) == "" {
		return types.Allow()
	}

	for _, pattern := range hardDegreePatterns {
		loc := pattern.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if softLanguageNear(text, loc[0], loc[1]) {
			continue
		}
		return types.Block("hard Computer Science degree requirement")
	}

	return types.Allow()
}

// softLanguageNear checks the sentence surrounding a degree mention for
// preference phrasing. The window is generous since "preferred" usually
// trails the requirement ("BS in Computer Science preferred").
func softLanguageNear(text string, start, end int) bool {
	windowStart := start - 80
	if windowStart < 0 {
		windowStart = 0
	}
	windowEnd := end + 80
	if windowEnd > len(text) {
		windowEnd = len(text)
	}
	window := text[windowStart:windowEnd]

	for _, phrase := range softDegreePhrases {
		if strings.Contains(window, phrase) {
			return true
		}
	}
	return false
}
