package types

import "strings"

// Profile identifies which of the user's search profiles a job posting belongs to.
// The set is closed: filters key their applicability off these values, so an
// unrecognized tag parses to ProfileUnknown and is treated as "no filter applies".
type Profile string

// Known search profiles
const (
	ProfileCore        Profile = "core"
	ProfileBackend     Profile = "backend"
	ProfileCSharpAzure Profile = "csharp-azure-no-frontend"
	ProfileLegacyWeb   Profile = "legacy-web"
	ProfileUnknown     Profile = ""
)

// knownProfiles is the closed set of valid profile tags
var knownProfiles = map[Profile]bool{
	ProfileCore:        true,
	ProfileBackend:     true,
	ProfileCSharpAzure: true,
	ProfileLegacyWeb:   true,
}

// ParseProfile maps a raw profile tag to a known Profile.
// Unrecognized tags map to ProfileUnknown rather than erroring, since an
// unknown profile just means no profile-scoped filter applies.
func ParseProfile(tag string) Profile {
	p := Profile(strings.ToLower(strings.TrimSpace(tag)))
	if knownProfiles[p] {
		return p
	}
	return ProfileUnknown
}

// Known reports whether p is one of the recognized profile tags.
func (p Profile) Known() bool {
	return knownProfiles[p]
}

func (p Profile) String() string {
	return string(p)
}
