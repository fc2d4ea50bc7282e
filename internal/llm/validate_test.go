package llm

import (
	"errors"
	"testing"
)

func classificationSchema() *Schema {
	return &Schema{
		Name:        "turn-classification",
		Description: "A classified problem turn",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem_type": map[string]any{"type": "string"},
				"confidence":   map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"hint_level":   map[string]any{"type": "string", "enum": []any{"nudge", "guided", "worked"}},
			},
			"required": []any{"problem_type", "confidence"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	content := `{"problem_type":"linear_equation","confidence":0.92,"hint_level":"nudge"}`
	if err := validateResponse(classificationSchema(), content); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	content := `{"problem_type":"fraction","confidence":0.5}`
	if err := validateResponse(classificationSchema(), content); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	err := validateResponse(classificationSchema(), `{"problem_type":"fraction"}`)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(classificationSchema(), `{"problem_type":"fraction","confidence":"high"}`)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	err := validateResponse(classificationSchema(), `{"problem_type":"fraction","confidence":0.5,"hint_level":"shout"}`)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(classificationSchema(), `{not json}`)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(classificationSchema(), ""); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, `{"anything":"goes"}`); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"problem": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
					"required": []any{"text"},
				},
				"concepts": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"problem", "concepts"},
		},
	}

	valid := `{"problem":{"text":"2x + 3 = 11"},"concepts":["linear_equations"]}`
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := `{"problem":{"text":"2x + 3 = 11"},"concepts":[1,2]}`
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
