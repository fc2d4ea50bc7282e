// Package classify assigns a problem type and confidence to a submitted
// problem. It asks the LLM for a schema-constrained verdict and falls
// back to catalog pattern matching when the provider is unavailable, so
// a session can always start.
package classify

import (
	"context"
	"encoding/json"

	"github.com/abhisek/tutoriz/internal/catalog"
	"github.com/abhisek/tutoriz/internal/llm"
	"github.com/abhisek/tutoriz/internal/logger"
)

// GeneralType is assigned when nothing more specific can be determined.
const GeneralType = "general"

// Confidence levels for the fallback paths. The LLM reports its own.
const (
	fallbackMatchConfidence = 0.4
	fallbackNoneConfidence  = 0.2
)

// Result is a classified problem.
type Result struct {
	Type       string  `json:"problem_type"`
	Confidence float64 `json:"confidence"`
}

// Classifier determines the problem type of submitted text.
type Classifier struct {
	provider llm.Provider
}

// New creates a Classifier backed by the given provider.
func New(p llm.Provider) *Classifier {
	return &Classifier{provider: p}
}

const classifyPrompt = `You are a math problem classifier. Given a math problem, ` +
	`identify the single concept that best describes it and your confidence ` +
	`in that judgment. Use "general" only when no listed concept fits.`

// Classify returns the problem type and confidence for the given text.
// Provider failures degrade to pattern matching against the concept
// catalog rather than surfacing an error: classification is advisory and
// must never block a session.
func (c *Classifier) Classify(ctx context.Context, problemText string) Result {
	ctx = llm.WithPurpose(ctx, "classify")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: classifyPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: problemText},
		},
		Schema:    classificationSchema(),
		MaxTokens: 256,
	})
	if err != nil {
		logger.FromContext(ctx).Debug("classifier falling back to patterns: %v", err)
		return c.fallback(problemText)
	}

	var res Result
	if err := json.Unmarshal([]byte(resp.Content), &res); err != nil {
		return c.fallback(problemText)
	}
	if res.Type == "" {
		res.Type = GeneralType
	}
	if res.Confidence < 0 {
		res.Confidence = 0
	}
	if res.Confidence > 1 {
		res.Confidence = 1
	}
	return res
}

// fallback classifies by catalog detection patterns alone. The first
// match in catalog order wins, mirroring concept extraction.
func (c *Classifier) fallback(problemText string) Result {
	if ids := catalog.Detect(problemText, ""); len(ids) > 0 {
		return Result{Type: ids[0], Confidence: fallbackMatchConfidence}
	}
	return Result{Type: GeneralType, Confidence: fallbackNoneConfidence}
}

// classificationSchema constrains the LLM verdict to known concept IDs.
func classificationSchema() *llm.Schema {
	ids := make([]any, 0, len(catalog.All())+1)
	for _, concept := range catalog.All() {
		ids = append(ids, concept.ID)
	}
	ids = append(ids, GeneralType)

	return &llm.Schema{
		Name:        "problem-classification",
		Description: "The concept a math problem exercises and the classifier's confidence",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem_type": map[string]any{
					"type": "string",
					"enum": ids,
				},
				"confidence": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
			},
			"required": []any{"problem_type", "confidence"},
		},
	}
}
