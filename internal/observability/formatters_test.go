package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/job-relevance/internal/types"
)

func TestPrintVerdict_Blocked(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict(types.JobPosting{Title: "Engineer", Company: "Acme"}, types.Block("requires onsite or hybrid presence"))

	out := buf.String()
	assert.Contains(t, out, "FILTER VERDICT")
	assert.Contains(t, out, "BLOCKED")
	assert.Contains(t, out, "onsite or hybrid")
}

func TestPrintVerdict_Allowed(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintVerdict(types.JobPosting{Title: "Engineer"}, types.Allow())

	assert.Contains(t, buf.String(), "ALLOWED")
}

func TestPrintAdjustments(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAdjustments([]types.WeightAdjustment{
		{Category: "tech_stack", Delta: -15},
		{Category: "location", Delta: -5},
	})

	out := buf.String()
	assert.Contains(t, out, "tech_stack")
	assert.Contains(t, out, "-15.0%")
	assert.Contains(t, out, "location")
}

func TestPrintAdjustments_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAdjustments(nil)

	assert.Contains(t, buf.String(), "(none)")
}

func TestPrintTopPatterns_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	patterns := make([]types.RejectionPattern, 8)
	for i := range patterns {
		patterns[i] = types.RejectionPattern{Type: "tech_stack", Value: "React", Count: 8 - i}
	}

	p.PrintTopPatterns(patterns)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintRecentLearnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecentLearnings([]types.RejectionLearningEvent{
		{Timestamp: time.Now(), Category: "tech_stack", Adjustment: -5, Reason: "too much React"},
	})

	out := buf.String()
	assert.Contains(t, out, "tech_stack")
	assert.Contains(t, out, "too much React")
}

func TestPrintFilterStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFilterStats([]types.FilterStat{
		{Type: "location_requirement", Count: 4},
	})

	out := buf.String()
	assert.Contains(t, out, "location_requirement")
	assert.Contains(t, out, "4")
}

func TestPrintLabelMappings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLabelMappings([]types.LabelMapping{
		{Label: "Email Address", Key: types.KeyEmail, Confidence: 0.98},
	})

	out := buf.String()
	assert.Contains(t, out, "Email Address")
	assert.Contains(t, out, "email")
}
