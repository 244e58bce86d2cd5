package labels

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-relevance/internal/types"
)

const (
	// DefaultFallbackTimeout bounds each fallback classifier call so an
	// unresponsive classifier cannot stall a form fill.
	DefaultFallbackTimeout = 10 * time.Second
	// maxConcurrentFallbacks bounds in-flight classifier calls per batch.
	maxConcurrentFallbacks = 4
)

// Classifier is the fallback tier: a best-guess resolver for labels the
// heuristics could not place. Implementations may call out of process.
type Classifier interface {
	ClassifyLabel(ctx context.Context, label string) (types.LabelMapping, error)
}

// Mapper resolves form labels to canonical keys, heuristics first.
type Mapper struct {
	classifier Classifier
	timeout    time.Duration
}

// MapperOption customizes a Mapper.
type MapperOption func(*Mapper)

// WithFallbackTimeout overrides the per-label fallback timeout.
func WithFallbackTimeout(d time.Duration) MapperOption {
	return func(m *Mapper) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// NewMapper creates a Mapper. A nil classifier disables the fallback tier;
// unresolved labels then map to unknown with zero confidence.
func NewMapper(classifier Classifier, opts ...MapperOption) *Mapper {
	m := &Mapper{
		classifier: classifier,
		timeout:    DefaultFallbackTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// MapLabelsSmart classifies every label, order-preserving, duplicates kept.
// Heuristic matches resolve immediately; the rest fan out to the fallback
// classifier concurrently, each under its own timeout. Fallback failures
// degrade to {unknown, 0}; label mapping never aborts a form fill.
func (m *Mapper) MapLabelsSmart(ctx context.Context, labelList []string) []types.LabelMapping {
	if len(labelList) == 0 {
		return []types.LabelMapping{}
	}

	mappings := make([]types.LabelMapping, len(labelList))
	var pending []int

	for i, label := range labelList {
		if mapping, ok := resolveHeuristic(label); ok {
			mappings[i] = mapping
			continue
		}
		mappings[i] = types.LabelMapping{Label: label, Key: types.KeyUnknown}
		pending = append(pending, i)
	}

	if m.classifier == nil || len(pending) == 0 {
		return mappings
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFallbacks)
	for _, idx := range pending {
		g.Go(func() error {
			mappings[idx] = m.classifyWithTimeout(gctx, labelList[idx])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures degrade per label

	return mappings
}

// classifyWithTimeout runs one fallback lookup under the mapper's timeout and
// sanitizes the result so the fallback tier can never outrank a heuristic.
func (m *Mapper) classifyWithTimeout(ctx context.Context, label string) types.LabelMapping {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	mapping, err := m.classifier.ClassifyLabel(ctx, label)
	if err != nil {
		return types.LabelMapping{Label: label, Key: types.KeyUnknown}
	}

	mapping.Label = label
	if !types.ValidCanonicalKey(string(mapping.Key)) {
		return types.LabelMapping{Label: label, Key: types.KeyUnknown}
	}
	if mapping.Confidence < 0 {
		mapping.Confidence = 0
	}
	if mapping.Confidence >= HeuristicConfidenceFloor {
		mapping.Confidence = HeuristicConfidenceFloor - 0.01
	}
	return mapping
}
