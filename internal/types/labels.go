package types

// CanonicalKey is one semantic field key from the closed application-form vocabulary.
// Adding a key is a vocabulary change, not a runtime concept.
type CanonicalKey string

// Canonical field keys
const (
	KeyFullName            CanonicalKey = "full_name"
	KeyEmail               CanonicalKey = "email"
	KeyPhone               CanonicalKey = "phone"
	KeyCity                CanonicalKey = "city"
	KeyWorkAuthorization   CanonicalKey = "work_authorization"
	KeyRequiresSponsorship CanonicalKey = "requires_sponsorship"
	KeyYearsDotnet         CanonicalKey = "years_dotnet"
	KeyYearsAzure          CanonicalKey = "years_azure"
	KeyLinkedinURL         CanonicalKey = "linkedin_url"
	KeySalaryExpectation   CanonicalKey = "salary_expectation"
	KeyWhyFit              CanonicalKey = "why_fit"
	KeyUSTimezone          CanonicalKey = "us_timezone"
	KeyUnknown             CanonicalKey = "unknown"
)

// AllCanonicalKeys lists every key in the vocabulary except KeyUnknown.
var AllCanonicalKeys = []CanonicalKey{
	KeyFullName,
	KeyEmail,
	KeyPhone,
	KeyCity,
	KeyWorkAuthorization,
	KeyRequiresSponsorship,
	KeyYearsDotnet,
	KeyYearsAzure,
	KeyLinkedinURL,
	KeySalaryExpectation,
	KeyWhyFit,
	KeyUSTimezone,
}

// ValidCanonicalKey reports whether s names a key in the vocabulary (including unknown).
func ValidCanonicalKey(s string) bool {
	if CanonicalKey(s) == KeyUnknown {
		return true
	}
	for _, k := range AllCanonicalKeys {
		if CanonicalKey(s) == k {
			return true
		}
	}
	return false
}

// LabelMapping is the classification of one free-text form label into a canonical key.
// Confidence >= 0.95 means the mapping came from a deterministic heuristic rule;
// anything lower is a fallback best-guess.
type LabelMapping struct {
	Label      string       `json:"label"`
	Key        CanonicalKey `json:"key"`
	Confidence float64      `json:"confidence"`
}
