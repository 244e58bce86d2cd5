package learning

import (
	"regexp"
	"sort"
	"strings"
)

// patternKeywords maps each pattern type to the phrases that signal it in a
// rejection reason, in the display form the dashboard shows. Phrases are
// matched case-insensitively against the raw reason text.
var patternKeywords = map[string]map[string]string{
	"tech_stack": {
		"react":      "React",
		"angular":    "Angular",
		"vue":        "Vue",
		"frontend":   "frontend",
		"front-end":  "frontend",
		"javascript": "JavaScript",
		"typescript": "TypeScript",
		"node":       "Node.js",
		"java":       "Java",
		"python":     "Python",
		"php":        "PHP",
		"ruby":       "Ruby",
		"golang":     "Go",
		"aws":        "AWS",
		"gcp":        "GCP",
	},
	"location": {
		"onsite":     "onsite",
		"on-site":    "onsite",
		"hybrid":     "hybrid",
		"relocate":   "relocation",
		"relocation": "relocation",
		"commute":    "commute",
	},
	"seniority": {
		"junior":      "junior",
		"entry level": "entry level",
		"entry-level": "entry level",
		"intern":      "intern",
		"too senior":  "too senior",
		"principal":   "principal",
		"staff":       "staff",
	},
	"compensation": {
		"salary":       "salary",
		"pay":          "pay",
		"underpaid":    "underpaid",
		"compensation": "compensation",
		"low ball":     "lowball",
		"lowball":      "lowball",
	},
	"education": {
		"degree":        "degree",
		"phd":           "PhD",
		"certification": "certification",
	},
	"company": {
		"startup":     "startup",
		"agency":      "agency",
		"consultancy": "consultancy",
		"contract":    "contract",
	},
}

// wordOnlyPhrases are matched on word boundaries. "java" inside "javascript"
// must not count as a Java rejection.
var wordOnlyPhrases = map[string]*regexp.Regexp{
	"java": regexp.MustCompile(`\bjava\b`),
}

// patternTypes fixes iteration order so category derivation is deterministic.
var patternTypes = []string{"tech_stack", "location", "seniority", "compensation", "education", "company"}

// extractedPattern is one pattern hit found in a single rejection reason.
type extractedPattern struct {
	Type  string
	Value string
}

// extractPatterns scans a rejection reason for known pattern phrases.
// Each (type, value) pair is reported at most once per reason; a reason
// mentioning "React" three times still counts as one React rejection.
func extractPatterns(reason string) []extractedPattern {
	text := strings.ToLower(reason)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []extractedPattern
	seen := make(map[extractedPattern]bool)
	for _, ptype := range patternTypes {
		for _, phrase := range sortedPhrases(patternKeywords[ptype]) {
			if !phraseInText(text, phrase) {
				continue
			}
			p := extractedPattern{Type: ptype, Value: patternKeywords[ptype][phrase]}
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}

// phraseInText matches a phrase against the lowered reason text, using word
// boundaries for phrases that are prefixes of other phrases.
func phraseInText(text, phrase string) bool {
	if re, ok := wordOnlyPhrases[phrase]; ok {
		return re.MatchString(text)
	}
	return strings.Contains(text, phrase)
}

// sortedPhrases returns map keys in sorted order so extraction is deterministic.
func sortedPhrases(m map[string]string) []string {
	phrases := make([]string, 0, len(m))
	for phrase := range m {
		phrases = append(phrases, phrase)
	}
	sort.Strings(phrases)
	return phrases
}
