package classify

import (
	"context"
	"testing"

	"github.com/abhisek/tutoriz/internal/llm"
)

func TestClassifyUsesProviderVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"problem_type":"linear_equations","confidence":0.93}`,
	})
	c := New(mock)

	res := c.Classify(context.Background(), "Solve for x: 2x + 3 = 11")
	if res.Type != "linear_equations" {
		t.Errorf("Type = %q", res.Type)
	}
	if res.Confidence != 0.93 {
		t.Errorf("Confidence = %v", res.Confidence)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d", mock.CallCount())
	}
}

func TestClassifySendsSchema(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"problem_type":"fractions","confidence":0.8}`,
	})
	New(mock).Classify(context.Background(), "What is 1/2 + 1/3?")

	if len(mock.Calls) != 1 || mock.Calls[0].Schema == nil {
		t.Fatal("expected a schema-constrained request")
	}
	if mock.Calls[0].Schema.Name != "problem-classification" {
		t.Errorf("schema name = %q", mock.Calls[0].Schema.Name)
	}
}

func TestClassifyFallsBackOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := New(mock)

	res := c.Classify(context.Background(), "Solve for x: 2x + 3 = 11")
	if res.Type != "linear_equations" {
		t.Errorf("fallback Type = %q, want linear_equations via catalog patterns", res.Type)
	}
	if res.Confidence >= 0.5 {
		t.Errorf("fallback Confidence = %v, want low", res.Confidence)
	}
}

func TestClassifyFallbackWithoutMatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := New(mock)

	res := c.Classify(context.Background(), "no recognizable content here")
	if res.Type != GeneralType {
		t.Errorf("Type = %q, want %q", res.Type, GeneralType)
	}
}

func TestClassifyClampsConfidence(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: `{"problem_type":"fractions","confidence":1.7}`,
	})
	res := New(mock).Classify(context.Background(), "1/2 + 1/3")
	if res.Confidence != 1 {
		t.Errorf("Confidence = %v, want clamped to 1", res.Confidence)
	}
}
