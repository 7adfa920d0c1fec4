// Package qgen generates multiple-choice quiz questions with an LLM,
// validating the structured output before it enters the bank.
package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/llm"
)

// Generator produces quiz questions for a topic.
type Generator interface {
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText string   `json:"question_text"`
	Choices      []string `json:"choices"`
	Answer       string   `json:"answer"`
	Explanation  string   `json:"explanation"`
	Difficulty   int      `json:"difficulty"`
}

// Generate produces a single question for the given input context,
// regenerating up to MaxAttempts times on retryable validation failures.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		q, err := g.generateOnce(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var verr *ValidationError
		if !errors.As(err, &verr) || !verr.Retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)

	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input, g.config),
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:        raw.QuestionText,
		Choices:     raw.Choices,
		Answer:      raw.Answer,
		Explanation: raw.Explanation,
		Difficulty:  raw.Difficulty,
		Topic:       input.Topic,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}

// GenerateBatch produces up to count bank questions, extending the
// dedup list as it goes. Questions that still fail validation after
// retries are skipped rather than aborting the batch.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, input GenerateInput, count int) ([]*bank.Question, error) {
	prior := append([]string(nil), input.PriorQuestions...)
	out := make([]*bank.Question, 0, count)

	for i := 0; i < count; i++ {
		in := input
		in.PriorQuestions = prior

		q, err := g.Generate(ctx, in)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				continue
			}
			return out, err
		}
		prior = append(prior, q.Text)
		out = append(out, q.ToBankQuestion(in))
	}
	return out, nil
}
