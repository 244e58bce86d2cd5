package labels

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/job-relevance/internal/llm"
	"github.com/jonathan/job-relevance/internal/prompts"
	"github.com/jonathan/job-relevance/internal/schemas"
	"github.com/jonathan/job-relevance/internal/types"
)

// classifyResponseSchema validates the classifier's JSON reply before it is
// trusted. The key enum mirrors the canonical vocabulary.
var classifyResponseSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["key", "confidence"],
	"properties": {
		"key": {"type": "string", "enum": [%s]},
		"confidence": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`, canonicalKeyEnum())

func canonicalKeyEnum() string {
	keys := make([]string, 0, len(types.AllCanonicalKeys)+1)
	for _, k := range types.AllCanonicalKeys {
		keys = append(keys, fmt.Sprintf("%q", string(k)))
	}
	keys = append(keys, fmt.Sprintf("%q", string(types.KeyUnknown)))
	return strings.Join(keys, ", ")
}

// LLMClassifier is the production fallback tier: a lite-tier model call that
// returns a best-guess canonical key with a confidence.
type LLMClassifier struct {
	client llm.Client
}

// NewLLMClassifier wraps an LLM client as a Classifier.
func NewLLMClassifier(client llm.Client) *LLMClassifier {
	return &LLMClassifier{client: client}
}

type classifyResponse struct {
	Key        string  `json:"key"`
	Confidence float64 `json:"confidence"`
}

// ClassifyLabel asks the model for the best canonical key for one label.
// The reply is schema-validated; anything malformed is an error so the mapper
// can degrade to unknown.
func (c *LLMClassifier) ClassifyLabel(ctx context.Context, label string) (types.LabelMapping, error) {
	template := prompts.MustGet("labels.json", "classify-field-label")
	prompt := prompts.Format(template, map[string]string{
		"Label": label,
		"Keys":  keyVocabulary(),
	})

	reply, err := c.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return types.LabelMapping{}, fmt.Errorf("classifier call failed: %w", err)
	}

	if err := schemas.ValidateJSONString(classifyResponseSchema, reply); err != nil {
		return types.LabelMapping{}, fmt.Errorf("classifier reply rejected: %w", err)
	}

	var resp classifyResponse
	if err := json.Unmarshal([]byte(reply), &resp); err != nil {
		return types.LabelMapping{}, fmt.Errorf("failed to parse classifier reply: %w", err)
	}

	return types.LabelMapping{
		Label:      label,
		Key:        types.CanonicalKey(resp.Key),
		Confidence: resp.Confidence,
	}, nil
}

// keyVocabulary renders the canonical keys for the prompt, one per line.
func keyVocabulary() string {
	var sb strings.Builder
	for _, k := range types.AllCanonicalKeys {
		sb.WriteString("- ")
		sb.WriteString(string(k))
		sb.WriteString("\n")
	}
	sb.WriteString("- ")
	sb.WriteString(string(types.KeyUnknown))
	return sb.String()
}
