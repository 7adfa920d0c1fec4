package qgen

import (
	"fmt"
	"strings"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, e.g.
	// "structural", "dedup".
	Name() string

	// Validate checks the question and returns nil if it passes.
	// The validator receives the full GenerateInput for context.
	Validate(q *Question, input GenerateInput) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that required fields are present, within
// length limits, and mutually consistent.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if q.Explanation == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if q.Difficulty < 1 || q.Difficulty > 5 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "difficulty must be between 1 and 5",
			Retryable: true,
		}
	}
	if len(q.Choices) != 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected exactly 4 choices, got %d", len(q.Choices)),
			Retryable: true,
		}
	}
	matches := 0
	seen := make(map[string]bool, len(q.Choices))
	for _, c := range q.Choices {
		if c == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "empty choice",
				Retryable: true,
			}
		}
		if seen[c] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate choice %q", c),
				Retryable: true,
			}
		}
		seen[c] = true
		if c == q.Answer {
			matches++
		}
	}
	if matches != 1 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "answer must match exactly one choice verbatim",
			Retryable: true,
		}
	}
	return nil
}

// DedupValidator rejects questions whose text duplicates one already in
// the bank. The prompt asks the model not to repeat; this guards against
// it doing so anyway.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	normalized := strings.ToLower(strings.TrimSpace(q.Text))
	for _, prior := range input.PriorQuestions {
		if strings.ToLower(strings.TrimSpace(prior)) == normalized {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "question duplicates one already in the bank",
				Retryable: true,
			}
		}
	}
	return nil
}
