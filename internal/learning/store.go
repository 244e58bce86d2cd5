// Package learning maintains the per-category scoring weight adjustments that
// are learned from the user's rejection feedback, along with the pattern
// counters and audit trail behind them.
package learning

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jonathan/job-relevance/internal/types"
)

// now is swapped out in tests that need deterministic timestamps.
var now = time.Now

// Store is the persistence contract for weight adjustments, rejection
// patterns, learning events, and filter rejection counters. Implementations:
// db.LearningStore (PostgreSQL) and MemoryStore (in-process).
type Store interface {
	// GetAdjustment returns the current delta for a category (zero if absent).
	GetAdjustment(ctx context.Context, category string) (float64, error)
	// SetAdjustment writes the delta for a category, creating the row if needed.
	SetAdjustment(ctx context.Context, category string, delta float64) error
	// ListAdjustments returns every persisted adjustment, including zeros.
	ListAdjustments(ctx context.Context) ([]types.WeightAdjustment, error)
	// ResetAdjustments zeroes every category. Idempotent.
	ResetAdjustments(ctx context.Context) error

	// IncrementPattern bumps the counter for a (type, value) pattern and
	// records when it was last seen.
	IncrementPattern(ctx context.Context, patternType, value string) error
	// TopPatterns returns the highest-count patterns, ties broken by most
	// recently seen.
	TopPatterns(ctx context.Context, limit int) ([]types.RejectionPattern, error)
	// ClearPatterns removes all pattern counters. Idempotent.
	ClearPatterns(ctx context.Context) error

	// AppendEvent stores one immutable learning event.
	AppendEvent(ctx context.Context, event types.RejectionLearningEvent) error
	// RecentEvents returns the newest events first.
	RecentEvents(ctx context.Context, limit int) ([]types.RejectionLearningEvent, error)

	// IncrementFilterCount bumps the rejection counter for a static filter type.
	IncrementFilterCount(ctx context.Context, filterType string) error
	// FilterStats returns per-filter rejection counts, highest first.
	FilterStats(ctx context.Context) ([]types.FilterStat, error)
	// ResetFilterCounts zeroes the filter counters. Idempotent.
	ResetFilterCounts(ctx context.Context) error
}

// MemoryStore is an in-process Store used by tests and database-less CLI runs.
// All methods are safe for concurrent use.
type MemoryStore struct {
	mu           sync.Mutex
	adjustments  map[string]float64
	patterns     map[patternKey]*types.RejectionPattern
	events       []types.RejectionLearningEvent
	filterCounts map[string]int
}

type patternKey struct {
	ptype string
	value string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		adjustments:  make(map[string]float64),
		patterns:     make(map[patternKey]*types.RejectionPattern),
		filterCounts: make(map[string]int),
	}
}

// GetAdjustment returns the current delta for a category.
func (s *MemoryStore) GetAdjustment(_ context.Context, category string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustments[category], nil
}

// SetAdjustment writes the delta for a category.
func (s *MemoryStore) SetAdjustment(_ context.Context, category string, delta float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments[category] = delta
	return nil
}

// ListAdjustments returns every stored adjustment.
func (s *MemoryStore) ListAdjustments(_ context.Context) ([]types.WeightAdjustment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.WeightAdjustment, 0, len(s.adjustments))
	for category, delta := range s.adjustments {
		out = append(out, types.WeightAdjustment{Category: category, Delta: delta})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// ResetAdjustments zeroes every category.
func (s *MemoryStore) ResetAdjustments(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adjustments = make(map[string]float64)
	return nil
}

// IncrementPattern bumps a pattern counter.
func (s *MemoryStore) IncrementPattern(_ context.Context, patternType, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := patternKey{ptype: patternType, value: value}
	p, ok := s.patterns[key]
	if !ok {
		p = &types.RejectionPattern{Type: patternType, Value: value}
		s.patterns[key] = p
	}
	p.Count++
	p.LastSeen = now()
	return nil
}

// TopPatterns returns the highest-count patterns, ties broken by recency.
func (s *MemoryStore) TopPatterns(_ context.Context, limit int) ([]types.RejectionPattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.RejectionPattern, 0, len(s.patterns))
	for _, p := range s.patterns {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].LastSeen.After(out[j].LastSeen)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ClearPatterns removes all pattern counters.
func (s *MemoryStore) ClearPatterns(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns = make(map[patternKey]*types.RejectionPattern)
	return nil
}

// AppendEvent stores one learning event.
func (s *MemoryStore) AppendEvent(_ context.Context, event types.RejectionLearningEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// RecentEvents returns the newest events first.
func (s *MemoryStore) RecentEvents(_ context.Context, limit int) ([]types.RejectionLearningEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.RejectionLearningEvent, len(s.events))
	copy(out, s.events)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// IncrementFilterCount bumps the rejection counter for a filter type.
func (s *MemoryStore) IncrementFilterCount(_ context.Context, filterType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterCounts[filterType]++
	return nil
}

// FilterStats returns per-filter rejection counts, highest first.
func (s *MemoryStore) FilterStats(_ context.Context) ([]types.FilterStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.FilterStat, 0, len(s.filterCounts))
	for filterType, count := range s.filterCounts {
		out = append(out, types.FilterStat{Type: filterType, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

// ResetFilterCounts zeroes the filter counters.
func (s *MemoryStore) ResetFilterCounts(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filterCounts = make(map[string]int)
	return nil
}
