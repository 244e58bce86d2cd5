package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-relevance/internal/types"
)

// LearningStore implements learning.Store on PostgreSQL. Schema lives in
// schemas/learning.sql.
type LearningStore struct {
	db *DB
}

// NewLearningStore creates a store over an open connection pool.
func NewLearningStore(db *DB) *LearningStore {
	return &LearningStore{db: db}
}

// GetAdjustment returns the current delta for a category, zero if absent.
func (s *LearningStore) GetAdjustment(ctx context.Context, category string) (float64, error) {
	var delta float64
	err := s.db.pool.QueryRow(ctx,
		`SELECT delta FROM weight_adjustments WHERE category = $1`,
		category,
	).Scan(&delta)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get adjustment for %s: %w", category, err)
	}
	return delta, nil
}

// SetAdjustment upserts the delta for a category.
func (s *LearningStore) SetAdjustment(ctx context.Context, category string, delta float64) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO weight_adjustments (category, delta, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (category) DO UPDATE SET delta = $2, updated_at = NOW()`,
		category, delta,
	)
	if err != nil {
		return fmt.Errorf("failed to set adjustment for %s: %w", category, err)
	}
	return nil
}

// ListAdjustments returns every stored adjustment.
func (s *LearningStore) ListAdjustments(ctx context.Context) ([]types.WeightAdjustment, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT category, delta FROM weight_adjustments ORDER BY category`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var out []types.WeightAdjustment
	for rows.Next() {
		var adj types.WeightAdjustment
		if err := rows.Scan(&adj.Category, &adj.Delta); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		out = append(out, adj)
	}
	return out, nil
}

// ResetAdjustments zeroes every category.
func (s *LearningStore) ResetAdjustments(ctx context.Context) error {
	_, err := s.db.pool.Exec(ctx, `DELETE FROM weight_adjustments`)
	if err != nil {
		return fmt.Errorf("failed to reset adjustments: %w", err)
	}
	return nil
}

// IncrementPattern bumps a pattern counter and refreshes last_seen.
func (s *LearningStore) IncrementPattern(ctx context.Context, patternType, value string) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO rejection_patterns (pattern_type, pattern_value, count, last_seen)
		 VALUES ($1, $2, 1, NOW())
		 ON CONFLICT (pattern_type, pattern_value)
		 DO UPDATE SET count = rejection_patterns.count + 1, last_seen = NOW()`,
		patternType, value,
	)
	if err != nil {
		return fmt.Errorf("failed to increment pattern %s/%s: %w", patternType, value, err)
	}
	return nil
}

// TopPatterns returns the highest-count patterns, ties broken by recency.
func (s *LearningStore) TopPatterns(ctx context.Context, limit int) ([]types.RejectionPattern, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.pool.Query(ctx,
		`SELECT pattern_type, pattern_value, count, last_seen
		 FROM rejection_patterns
		 ORDER BY count DESC, last_seen DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list top patterns: %w", err)
	}
	defer rows.Close()

	var out []types.RejectionPattern
	for rows.Next() {
		var p types.RejectionPattern
		if err := rows.Scan(&p.Type, &p.Value, &p.Count, &p.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan pattern: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ClearPatterns removes all pattern counters.
func (s *LearningStore) ClearPatterns(ctx context.Context) error {
	_, err := s.db.pool.Exec(ctx, `DELETE FROM rejection_patterns`)
	if err != nil {
		return fmt.Errorf("failed to clear patterns: %w", err)
	}
	return nil
}

// AppendEvent stores one immutable learning event.
func (s *LearningStore) AppendEvent(ctx context.Context, event types.RejectionLearningEvent) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO learning_events (id, created_at, category, adjustment, reason)
		 VALUES ($1, $2, $3, $4, $5)`,
		event.ID, event.Timestamp, event.Category, event.Adjustment, event.Reason,
	)
	if err != nil {
		return fmt.Errorf("failed to append learning event: %w", err)
	}
	return nil
}

// RecentEvents returns the newest events first.
func (s *LearningStore) RecentEvents(ctx context.Context, limit int) ([]types.RejectionLearningEvent, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.pool.Query(ctx,
		`SELECT id, created_at, category, adjustment, reason
		 FROM learning_events
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent events: %w", err)
	}
	defer rows.Close()

	var out []types.RejectionLearningEvent
	for rows.Next() {
		var e types.RejectionLearningEvent
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.Category, &e.Adjustment, &e.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan learning event: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

// IncrementFilterCount bumps the rejection counter for a filter type.
func (s *LearningStore) IncrementFilterCount(ctx context.Context, filterType string) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO filter_rejections (filter_type, count)
		 VALUES ($1, 1)
		 ON CONFLICT (filter_type) DO UPDATE SET count = filter_rejections.count + 1`,
		filterType,
	)
	if err != nil {
		return fmt.Errorf("failed to increment filter count for %s: %w", filterType, err)
	}
	return nil
}

// FilterStats returns per-filter rejection counts, highest first.
func (s *LearningStore) FilterStats(ctx context.Context) ([]types.FilterStat, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT filter_type, count FROM filter_rejections ORDER BY count DESC, filter_type`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list filter stats: %w", err)
	}
	defer rows.Close()

	var out []types.FilterStat
	for rows.Next() {
		var stat types.FilterStat
		if err := rows.Scan(&stat.Type, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan filter stat: %w", err)
		}
		out = append(out, stat)
	}
	return out, nil
}

// ResetFilterCounts zeroes the filter counters.
func (s *LearningStore) ResetFilterCounts(ctx context.Context) error {
	_, err := s.db.pool.Exec(ctx, `DELETE FROM filter_rejections`)
	if err != nil {
		return fmt.Errorf("failed to reset filter counts: %w", err)
	}
	return nil
}
