package types

import (
	"time"

	"github.com/google/uuid"
)

// WeightAdjustment is a signed percentage nudge applied on top of the baseline
// score for one scoring category. Deltas are created at zero, mutated only by
// the rejection learning engine, and clamped to a configured bound.
type WeightAdjustment struct {
	Category string  `json:"category"`
	Delta    float64 `json:"delta"`
}

// RejectionPattern is a recurring token or phrase extracted from user rejection
// reasons, counted over time. Count grows monotonically until explicitly cleared.
type RejectionPattern struct {
	Type     string    `json:"type"`  // e.g. "tech_stack", "location"
	Value    string    `json:"value"` // e.g. "React", "onsite"
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// RejectionLearningEvent is an immutable audit record of one weight mutation.
type RejectionLearningEvent struct {
	ID         uuid.UUID `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Category   string    `json:"category"`
	Adjustment float64   `json:"adjustment"`
	Reason     string    `json:"reason"`
}

// FilterStat counts how many rejections a static filter type accounts for.
type FilterStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
