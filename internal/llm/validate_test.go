package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// questionSchema mirrors the shape the question generator requests:
// text, four choices, the answer, an explanation, and a 1..5 difficulty.
func questionSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A single multiple-choice quiz question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question_text": map[string]any{"type": "string"},
				"choices": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
				"answer":      map[string]any{"type": "string"},
				"explanation": map[string]any{"type": "string"},
				"difficulty":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"required":             []any{"question_text", "choices", "answer", "explanation", "difficulty"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_ValidDraft(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Which planet has the shortest day?",
		"choices": ["Jupiter", "Mercury", "Earth", "Neptune"],
		"answer": "Jupiter",
		"explanation": "Jupiter rotates once in just under ten hours.",
		"difficulty": 3
	}`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingExplanation(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "Which planet has the shortest day?",
		"choices": ["Jupiter", "Mercury", "Earth", "Neptune"],
		"answer": "Jupiter",
		"difficulty": 3
	}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_DifficultyAsString(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "q",
		"choices": ["a", "b", "c", "d"],
		"answer": "a",
		"explanation": "e",
		"difficulty": "hard"
	}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_DifficultyOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "q",
		"choices": ["a", "b", "c", "d"],
		"answer": "a",
		"explanation": "e",
		"difficulty": 9
	}`)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for difficulty above maximum")
	}
}

func TestValidateResponse_ChoicesNotStrings(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "q",
		"choices": [1, 2, 3, 4],
		"answer": "a",
		"explanation": "e",
		"difficulty": 2
	}`)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}

func TestValidateResponse_ExtraField(t *testing.T) {
	raw := json.RawMessage(`{
		"question_text": "q",
		"choices": ["a", "b", "c", "d"],
		"answer": "a",
		"explanation": "e",
		"difficulty": 2,
		"hint": "not in the schema"
	}`)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for additional property")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(questionSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(questionSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
