package qgen

import (
	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/elo"
)

// Question represents a generated multiple-choice quiz question before it
// enters the bank.
type Question struct {
	// Text is the question prompt displayed to the user.
	Text string

	// Choices contains exactly 4 options, one of which matches Answer.
	Choices []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is a brief justification shown after answering.
	// Always present.
	Explanation string

	// Difficulty is the LLM's self-assessed difficulty (1-5).
	// Used for analytics, not for gating.
	Difficulty int

	// Topic is the topic this question was generated for.
	Topic string
}

// GenerateInput holds all context needed to generate a question.
type GenerateInput struct {
	// Topic is the subject the question should cover.
	Topic string

	// TargetRating positions the question on the ELO difficulty scale.
	// Zero means "no preference".
	TargetRating float64

	// Tags are attached to the resulting bank question.
	Tags []string

	// PriorQuestions contains the text of questions already in the bank
	// for this topic. Used for deduplication in the prompt.
	PriorQuestions []string
}

// ToBankQuestion converts a generated question into a bank question,
// carrying the explanation on the correct option and seeding the
// question's rating from the requested difficulty.
func (q *Question) ToBankQuestion(input GenerateInput) *bank.Question {
	var wrong []string
	for _, c := range q.Choices {
		if c != q.Answer {
			wrong = append(wrong, c)
		}
	}

	tags := input.Tags
	if len(tags) == 0 && input.Topic != "" {
		tags = []string{input.Topic}
	}

	bq := bank.NewMultipleChoice(q.Text, q.Answer, wrong, bank.Options{
		Tags:         tags,
		Objective:    input.Topic,
		Explanations: map[string]string{q.Answer: q.Explanation},
	})
	if input.TargetRating > 0 {
		bq.Rating = input.TargetRating
	}
	return bq
}

// difficultyLabel maps a target rating to the prompt's difficulty
// wording.
func difficultyLabel(rating float64) string {
	if rating <= 0 {
		return "Medium"
	}
	return elo.DifficultyCategory(rating)
}
