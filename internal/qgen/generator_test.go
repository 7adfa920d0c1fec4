package qgen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/haxx0rman/qBank/internal/llm"
)

func validQuestionJSON() json.RawMessage {
	return json.RawMessage(`{
		"question_text": "Which planet has the most moons?",
		"choices": ["Saturn", "Jupiter", "Uranus", "Neptune"],
		"answer": "Saturn",
		"explanation": "Saturn leads the moon count with well over a hundred confirmed moons.",
		"difficulty": 3
	}`)
}

func testInput() GenerateInput {
	return GenerateInput{
		Topic:        "astronomy",
		TargetRating: 1400,
		Tags:         []string{"astronomy", "space"},
	}
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "Which planet has the most moons?" {
		t.Errorf("unexpected text: %q", q.Text)
	}
	if q.Answer != "Saturn" {
		t.Errorf("answer = %q, want Saturn", q.Answer)
	}
	if len(q.Choices) != 4 {
		t.Errorf("choices = %d, want 4", len(q.Choices))
	}
	if q.Topic != "astronomy" {
		t.Errorf("topic = %q, want astronomy", q.Topic)
	}
}

func TestGenerate_PromptIncludesDifficultyAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionJSON()})
	gen := New(mock, DefaultConfig())

	input := testInput()
	input.PriorQuestions = []string{"What is the largest planet?"}

	if _, err := gen.Generate(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	msg := mock.Calls[0].Prompt
	if !strings.Contains(msg, "Topic: astronomy") {
		t.Errorf("prompt missing topic:\n%s", msg)
	}
	if !strings.Contains(msg, "1400") {
		t.Errorf("prompt missing target rating:\n%s", msg)
	}
	if !strings.Contains(msg, "What is the largest planet?") {
		t.Errorf("prompt missing dedup list:\n%s", msg)
	}
	if mock.Calls[0].Schema != QuestionSchema {
		t.Error("request missing question schema")
	}
}

func TestGenerate_RetriesOnValidationFailure(t *testing.T) {
	bad := json.RawMessage(`{
		"question_text": "Which planet has the most moons?",
		"choices": ["Saturn", "Jupiter"],
		"answer": "Saturn",
		"explanation": "Too few choices.",
		"difficulty": 3
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: validQuestionJSON()},
	)
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Answer != "Saturn" {
		t.Errorf("answer = %q", q.Answer)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry)", mock.CallCount())
	}
}

func TestGenerate_ExhaustsRetries(t *testing.T) {
	bad := json.RawMessage(`{
		"question_text": "",
		"choices": ["a", "b", "c", "d"],
		"answer": "a",
		"explanation": "x",
		"difficulty": 3
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
		llm.MockResponse{Content: bad},
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestGenerateBatch(t *testing.T) {
	second := json.RawMessage(`{
		"question_text": "Which planet is closest to the sun?",
		"choices": ["Mercury", "Venus", "Mars", "Earth"],
		"answer": "Mercury",
		"explanation": "Mercury orbits closest to the sun.",
		"difficulty": 2
	}`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validQuestionJSON()},
		llm.MockResponse{Content: second},
	)
	gen := New(mock, DefaultConfig())

	qs, err := gen.GenerateBatch(context.Background(), testInput(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("questions = %d, want 2", len(qs))
	}

	// The second prompt should list the first question for dedup.
	msg := mock.Calls[1].Prompt
	if !strings.Contains(msg, "Which planet has the most moons?") {
		t.Errorf("second prompt missing first question:\n%s", msg)
	}

	// Bank conversion: rating from target, explanation on correct option.
	bq := qs[0]
	if bq.Rating != 1400 {
		t.Errorf("rating = %v, want 1400", bq.Rating)
	}
	ca := bq.CorrectAnswer()
	if ca == nil || ca.Text != "Saturn" {
		t.Fatalf("correct answer = %+v", ca)
	}
	if ca.Explanation == "" {
		t.Error("explanation lost in conversion")
	}
	if !bq.HasTag("astronomy") {
		t.Error("tags lost in conversion")
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}
	base := Question{
		Text:        "q",
		Choices:     []string{"a", "b", "c", "d"},
		Answer:      "a",
		Explanation: "because",
		Difficulty:  3,
	}

	if err := v.Validate(&base, GenerateInput{}); err != nil {
		t.Fatalf("valid question rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty text", func(q *Question) { q.Text = "" }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
		{"difficulty out of range", func(q *Question) { q.Difficulty = 6 }},
		{"wrong choice count", func(q *Question) { q.Choices = q.Choices[:3] }},
		{"duplicate choices", func(q *Question) { q.Choices = []string{"a", "a", "c", "d"} }},
		{"answer not in choices", func(q *Question) { q.Answer = "z" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			q.Choices = append([]string(nil), base.Choices...)
			tt.mutate(&q)
			if err := v.Validate(&q, GenerateInput{}); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestDedupValidator(t *testing.T) {
	v := &DedupValidator{}
	q := Question{Text: "What is the capital of France?"}

	input := GenerateInput{PriorQuestions: []string{"  what is the capital of france? "}}
	if err := v.Validate(&q, input); err == nil {
		t.Error("expected dedup rejection for case-insensitive match")
	}

	input = GenerateInput{PriorQuestions: []string{"What is the capital of Spain?"}}
	if err := v.Validate(&q, input); err != nil {
		t.Errorf("unexpected rejection: %v", err)
	}
}
