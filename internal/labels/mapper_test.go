package labels

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-relevance/internal/types"
)

// stubClassifier returns canned answers per label.
type stubClassifier struct {
	answers map[string]types.LabelMapping
	err     error
	delay   time.Duration
}

func (s *stubClassifier) ClassifyLabel(ctx context.Context, label string) (types.LabelMapping, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return types.LabelMapping{}, ctx.Err()
		}
	}
	if s.err != nil {
		return types.LabelMapping{}, s.err
	}
	if mapping, ok := s.answers[label]; ok {
		return mapping, nil
	}
	return types.LabelMapping{Label: label, Key: types.KeyUnknown}, nil
}

func TestMapLabelsSmart_HeuristicsResolveWithoutFallback(t *testing.T) {
	// A nil classifier proves heuristic labels never reach the fallback tier.
	mapper := NewMapper(nil)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{
		"Email Address",
		"Are you authorized to work in the US?",
	})

	require.Len(t, mappings, 2)
	assert.Equal(t, types.KeyEmail, mappings[0].Key)
	assert.Equal(t, types.KeyWorkAuthorization, mappings[1].Key)
	for _, m := range mappings {
		assert.GreaterOrEqual(t, m.Confidence, 0.95)
	}
}

func TestMapLabelsSmart_PreservesOrderAndDuplicates(t *testing.T) {
	mapper := NewMapper(nil)

	labelList := []string{"Email", "Phone", "Email"}
	mappings := mapper.MapLabelsSmart(context.Background(), labelList)

	require.Len(t, mappings, 3)
	assert.Equal(t, "Email", mappings[0].Label)
	assert.Equal(t, "Phone", mappings[1].Label)
	assert.Equal(t, "Email", mappings[2].Label)
}

func TestMapLabelsSmart_FallbackResolvesUnmatchedLabels(t *testing.T) {
	classifier := &stubClassifier{
		answers: map[string]types.LabelMapping{
			"Preferred start date":         {Key: types.KeyUnknown, Confidence: 0.3},
			".NET proficiency self-rating": {Key: types.KeyYearsDotnet, Confidence: 0.7},
		},
	}
	mapper := NewMapper(classifier)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{
		"Email",
		".NET proficiency self-rating",
	})

	require.Len(t, mappings, 2)
	assert.Equal(t, types.KeyEmail, mappings[0].Key)
	assert.Equal(t, types.KeyYearsDotnet, mappings[1].Key)
	assert.Less(t, mappings[1].Confidence, 0.95, "fallback results stay below the heuristic floor")
}

func TestMapLabelsSmart_FallbackConfidenceCapped(t *testing.T) {
	classifier := &stubClassifier{
		answers: map[string]types.LabelMapping{
			"Mystery Field": {Key: types.KeyCity, Confidence: 0.99},
		},
	}
	mapper := NewMapper(classifier)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{"Mystery Field"})

	require.Len(t, mappings, 1)
	assert.Equal(t, types.KeyCity, mappings[0].Key)
	assert.Less(t, mappings[0].Confidence, 0.95,
		"a fallback guess must never look like a deterministic match")
}

func TestMapLabelsSmart_ClassifierErrorDegradesToUnknown(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("model unavailable")}
	mapper := NewMapper(classifier)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{"Random Field XYZ", "Email"})

	require.Len(t, mappings, 2)
	assert.Equal(t, types.KeyUnknown, mappings[0].Key)
	assert.Equal(t, 0.0, mappings[0].Confidence)
	assert.Equal(t, types.KeyEmail, mappings[1].Key, "one bad label never aborts the batch")
}

func TestMapLabelsSmart_ClassifierTimeoutDegradesToUnknown(t *testing.T) {
	classifier := &stubClassifier{delay: 200 * time.Millisecond}
	mapper := NewMapper(classifier, WithFallbackTimeout(10*time.Millisecond))

	start := time.Now()
	mappings := mapper.MapLabelsSmart(context.Background(), []string{"Random Field XYZ"})
	elapsed := time.Since(start)

	require.Len(t, mappings, 1)
	assert.Equal(t, types.KeyUnknown, mappings[0].Key)
	assert.Less(t, elapsed, 150*time.Millisecond, "timeout must bound the lookup")
}

func TestMapLabelsSmart_InvalidKeyFromClassifierDegradesToUnknown(t *testing.T) {
	classifier := &stubClassifier{
		answers: map[string]types.LabelMapping{
			"Weird Field": {Key: types.CanonicalKey("made_up_key"), Confidence: 0.9},
		},
	}
	mapper := NewMapper(classifier)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{"Weird Field"})

	require.Len(t, mappings, 1)
	assert.Equal(t, types.KeyUnknown, mappings[0].Key)
}

func TestMapLabelsSmart_EmptyInput(t *testing.T) {
	mapper := NewMapper(nil)

	mappings := mapper.MapLabelsSmart(context.Background(), nil)

	assert.Empty(t, mappings)
	assert.NotNil(t, mappings)
}

func TestMapLabelsSmart_NoClassifierLeavesUnknown(t *testing.T) {
	mapper := NewMapper(nil)

	mappings := mapper.MapLabelsSmart(context.Background(), []string{"Random Field XYZ"})

	require.Len(t, mappings, 1)
	assert.Equal(t, types.KeyUnknown, mappings[0].Key)
	assert.Equal(t, 0.0, mappings[0].Confidence)
}
