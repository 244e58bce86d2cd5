// Package labels classifies free-text application-form field labels into the
// closed canonical key vocabulary. Resolution is two-tier: deterministic
// keyword heuristics first, an injected fallback classifier for anything the
// heuristics cannot confidently resolve.
package labels

import (
	"strings"

	"github.com/jonathan/job-relevance/internal/types"
)

// HeuristicConfidenceFloor is the minimum confidence a heuristic match
// reports. Anything below this came from the fallback tier.
const HeuristicConfidenceFloor = 0.95

// heuristicRule resolves a label to a key when the label contains at least one
// phrase from every group. Rules are evaluated in order; more specific rules
// come first so "Full Name" style catch-alls cannot shadow them.
type heuristicRule struct {
	key        types.CanonicalKey
	confidence float64
	groups     [][]string
}

var heuristicRules = []heuristicRule{
	{types.KeyLinkedinURL, 0.98, [][]string{{"linkedin"}}},
	{types.KeyWorkAuthorization, 0.98, [][]string{{"authorized to work", "work authorization", "legally authorized", "right to work"}}},
	{types.KeyRequiresSponsorship, 0.98, [][]string{{"sponsorship", "require sponsor", "visa sponsor"}}},
	{types.KeyYearsDotnet, 0.95, [][]string{{".net", "dotnet", "c#"}, {"experience", "years"}}},
	{types.KeyYearsAzure, 0.95, [][]string{{"azure"}, {"experience", "years"}}},
	{types.KeySalaryExpectation, 0.95, [][]string{{"salary", "compensation", "pay expectation", "desired pay"}}},
	{types.KeyWhyFit, 0.95, [][]string{{"why"}, {"fit", "interested", "join", "good match", "this role", "this company"}}},
	{types.KeyWhyFit, 0.95, [][]string{{"cover letter", "motivation"}}},
	{types.KeyUSTimezone, 0.95, [][]string{{"timezone", "time zone"}}},
	{types.KeyEmail, 0.98, [][]string{{"email", "e-mail"}}},
	{types.KeyPhone, 0.98, [][]string{{"phone", "mobile", "telephone"}}},
	{types.KeyCity, 0.95, [][]string{{"city", "location", "where are you based", "where do you live"}}},
	{types.KeyFullName, 0.95, [][]string{{"name"}}},
}

// resolveHeuristic tries the deterministic rule table. The bool reports
// whether any rule matched.
func resolveHeuristic(label string) (types.LabelMapping, bool) {
	text := strings.ToLower(strings.TrimSpace(label))
	if text == "" {
		return types.LabelMapping{Label: label, Key: types.KeyUnknown}, false
	}

	for _, rule := range heuristicRules {
		if matchesRule(text, rule) {
			return types.LabelMapping{
				Label:      label,
				Key:        rule.key,
				Confidence: rule.confidence,
			}, true
		}
	}

	return types.LabelMapping{Label: label, Key: types.KeyUnknown}, false
}

func matchesRule(text string, rule heuristicRule) bool {
	for _, group := range rule.groups {
		if !containsAnyPhrase(text, group) {
			return false
		}
	}
	return true
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
