package learning

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/job-relevance/internal/types"
)

// Tuning defaults. The learning curve is an internal tuning parameter: each
// rejection nudges the category delta down by a fixed step and saturates at
// the clamp instead of diverging.
const (
	// DefaultStep is the (negative) percentage applied per rejection.
	DefaultStep = -5.0
	// DefaultClamp bounds |delta| for every category.
	DefaultClamp = 50.0
	// fallbackCategory is used when no pattern can be extracted from a reason.
	fallbackCategory = "general"
)

// Engine ingests rejection events, maintains the weight store, and exposes
// the aggregate views the dashboard displays. All weight mutation goes through
// the engine; readers only ever see snapshots.
type Engine struct {
	store Store
	step  float64
	clamp float64

	// mu serializes the read-modify-write of a category's delta so concurrent
	// rejections are applied as if sequential (no lost updates).
	mu sync.Mutex
}

// Option customizes an Engine.
type Option func(*Engine)

// WithStep overrides the per-rejection delta step.
func WithStep(step float64) Option {
	return func(e *Engine) { e.step = step }
}

// WithClamp overrides the bound on |delta|.
func WithClamp(clamp float64) Option {
	return func(e *Engine) {
		if clamp > 0 {
			e.clamp = clamp
		}
	}
}

// NewEngine creates an engine over the given store.
func NewEngine(store Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		step:  DefaultStep,
		clamp: DefaultClamp,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordRejection ingests one user rejection: extracts recurring patterns from
// the free-text reason, derives a category when none is supplied, applies a
// clamped delta to that category's weight, and appends an audit event.
// Storage failures propagate; a dropped rejection would corrupt the learning
// signal.
func (e *Engine) RecordRejection(ctx context.Context, job types.JobPosting, reason, category string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	patterns := extractPatterns(reason)
	for _, p := range patterns {
		if err := e.store.IncrementPattern(ctx, p.Type, p.Value); err != nil {
			return fmt.Errorf("failed to record pattern %s/%s: %w", p.Type, p.Value, err)
		}
	}

	if category == "" {
		category = deriveCategory(patterns)
	}

	current, err := e.store.GetAdjustment(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to read adjustment for %s: %w", category, err)
	}

	updated := clamp(current+e.step, e.clamp)
	if err := e.store.SetAdjustment(ctx, category, updated); err != nil {
		return fmt.Errorf("failed to write adjustment for %s: %w", category, err)
	}

	event := types.RejectionLearningEvent{
		ID:         uuid.New(),
		Timestamp:  now(),
		Category:   category,
		Adjustment: updated - current,
		Reason:     reason,
	}
	if err := e.store.AppendEvent(ctx, event); err != nil {
		return fmt.Errorf("failed to append learning event: %w", err)
	}

	return nil
}

// RecordFilterBlock attributes one rejection to a static filter type so the
// dashboard can show which filters are doing the work. Distinct from
// weight-based learning.
func (e *Engine) RecordFilterBlock(ctx context.Context, filterType string) error {
	if filterType == "" {
		return nil
	}
	if err := e.store.IncrementFilterCount(ctx, filterType); err != nil {
		return fmt.Errorf("failed to record filter block: %w", err)
	}
	return nil
}

// GetActiveAdjustments returns only the categories with a non-zero delta.
func (e *Engine) GetActiveAdjustments(ctx context.Context) ([]types.WeightAdjustment, error) {
	all, err := e.store.ListAdjustments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	active := make([]types.WeightAdjustment, 0, len(all))
	for _, adj := range all {
		if adj.Delta != 0 {
			active = append(active, adj)
		}
	}
	return active, nil
}

// GetTopPatterns returns the highest-count rejection patterns.
func (e *Engine) GetTopPatterns(ctx context.Context, limit int) ([]types.RejectionPattern, error) {
	patterns, err := e.store.TopPatterns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read top patterns: %w", err)
	}
	return patterns, nil
}

// GetRecentLearnings returns the most recent learning events, newest first.
func (e *Engine) GetRecentLearnings(ctx context.Context, limit int) ([]types.RejectionLearningEvent, error) {
	events, err := e.store.RecentEvents(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read recent learnings: %w", err)
	}
	return events, nil
}

// GetFilterStats returns per-filter rejection counts for the dashboard.
func (e *Engine) GetFilterStats(ctx context.Context) ([]types.FilterStat, error) {
	stats, err := e.store.FilterStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter stats: %w", err)
	}
	return stats, nil
}

// ResetWeightAdjustments zeroes every category delta.
func (e *Engine) ResetWeightAdjustments(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.ResetAdjustments(ctx); err != nil {
		return fmt.Errorf("failed to reset adjustments: %w", err)
	}
	return nil
}

// ClearAllFilters zeroes the per-filter rejection counters.
func (e *Engine) ClearAllFilters(ctx context.Context) error {
	if err := e.store.ResetFilterCounts(ctx); err != nil {
		return fmt.Errorf("failed to clear filter counts: %w", err)
	}
	return nil
}

// ClearAllCaches clears the accumulated pattern counters.
func (e *Engine) ClearAllCaches(ctx context.Context) error {
	if err := e.store.ClearPatterns(ctx); err != nil {
		return fmt.Errorf("failed to clear patterns: %w", err)
	}
	return nil
}

// deriveCategory picks the category for an uncategorized rejection: the type
// of the first extracted pattern in extraction order, or "general" when the
// reason matched nothing.
func deriveCategory(patterns []extractedPattern) string {
	if len(patterns) == 0 {
		return fallbackCategory
	}
	return patterns[0].Type
}

// clamp bounds delta to [-limit, limit].
func clamp(delta, limit float64) float64 {
	if delta > limit {
		return limit
	}
	if delta < -limit {
		return -limit
	}
	return delta
}
