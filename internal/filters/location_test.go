package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-relevance/internal/types"
)

func TestLocationFilter_BlocksDaysInOffice(t *testing.T) {
	f := NewLocationRequirementFilter()

	job := types.JobPosting{
		Title:       "Senior Engineer",
		Description: "3 days a week in office in Phoenix, AZ",
	}

	verdict := f.Evaluate(job, types.ProfileCore)

	assert.True(t, verdict.Blocked)
	assert.Contains(t, verdict.Reason, "onsite or hybrid")
}

func TestLocationFilter_BlocksHybrid(t *testing.T) {
	f := NewLocationRequirementFilter()

	tests := []struct {
		name        string
		description string
	}{
		{"hybrid keyword", "We offer a hybrid schedule with great benefits"},
		{"fully onsite", "This position is 100% onsite at our Dallas campus"},
		{"relocation", "Candidates must relocate to Austin, TX"},
		{"local only", "Must be local to the Seattle area"},
		{"nx a week", "Team meets 2x a week at headquarters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := f.Evaluate(types.JobPosting{Description: tt.description}, types.ProfileCore)
			assert.True(t, verdict.Blocked)
			assert.Contains(t, verdict.Reason, "onsite or hybrid")
		})
	}
}

func TestLocationFilter_RemoteOverridesAmbiguousPhrasing(t *testing.T) {
	f := NewLocationRequirementFilter()

	tests := []struct {
		name        string
		description string
	}{
		{"fully remote with hybrid mention", "Fully remote role. We previously offered hybrid but are now remote-first."},
		{"100 percent remote", "100% remote, though some teams used to work in office"},
		{"work from anywhere", "Remote, work from anywhere. No in office days."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := f.Evaluate(types.JobPosting{Description: tt.description}, types.ProfileCore)
			assert.False(t, verdict.Blocked)
			assert.Empty(t, verdict.Reason)
		})
	}
}

func TestLocationFilter_NoSignalAllows(t *testing.T) {
	f := NewLocationRequirementFilter()

	tests := []struct {
		name        string
		description string
	}{
		{"no location mention", "Build APIs with Go and PostgreSQL. Competitive salary."},
		{"compressed schedule", "Flexible scheduling: 32 hours over 4 days a week"},
		{"days a week workload", "Expect on-call rotation about 2 days per week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := f.Evaluate(types.JobPosting{
				Title:       "Backend Developer",
				Description: tt.description,
			}, types.ProfileCore)
			assert.False(t, verdict.Blocked, "must not block: %s", tt.description)
		})
	}
}

func TestLocationFilter_EmptyDescriptionAllows(t *testing.T) {
	f := NewLocationRequirementFilter()

	verdict := f.Evaluate(types.JobPosting{}, types.ProfileCore)

	assert.False(t, verdict.Blocked)
	assert.Empty(t, verdict.Reason)
}
