package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema_QuestionShape(t *testing.T) {
	schema := buildGeminiSchema(questionSchema().Definition)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question_text"].Type != "STRING" {
		t.Fatalf("expected STRING for question_text, got %s", schema.Properties["question_text"].Type)
	}
	if schema.Properties["choices"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for choices, got %s", schema.Properties["choices"].Type)
	}
	if schema.Properties["choices"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for choices items, got %s", schema.Properties["choices"].Items.Type)
	}
	if len(schema.Required) != 5 {
		t.Fatalf("expected 5 required fields, got %d", len(schema.Required))
	}

	diff := schema.Properties["difficulty"]
	if diff.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for difficulty, got %s", diff.Type)
	}
	if diff.Minimum == nil || *diff.Minimum != 1 {
		t.Fatalf("expected difficulty minimum 1, got %v", diff.Minimum)
	}
	if diff.Maximum == nil || *diff.Maximum != 5 {
		t.Fatalf("expected difficulty maximum 5, got %v", diff.Maximum)
	}
}

func TestBuildGeminiSchema_StringEnum(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"kind": map[string]any{
				"type": "string",
				"enum": []any{"multiple_choice", "true_false", "short_answer"},
			},
		},
		"required": []any{"kind"},
	}

	schema := buildGeminiSchema(def)
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["kind"].Enum))
	}
}
