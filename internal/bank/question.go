// Package bank holds the question collection: questions, their answer
// options, tags, study sessions, and the serializable bank state.
package bank

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/haxx0rman/qBank/internal/srs"
)

// Kind describes how a question is answered.
type Kind string

const (
	KindMultipleChoice Kind = "multiple_choice"
	KindTrueFalse      Kind = "true_false"
	KindShortAnswer    Kind = "short_answer"
)

// Answer is a single answer option for a choice question.
type Answer struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Correct     bool   `json:"is_correct"`
	Explanation string `json:"explanation,omitempty"`
}

// Question is a single quiz question. It owns exactly one scheduling
// state and one difficulty rating.
type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"question_text"`
	Kind      Kind      `json:"kind"`
	Answers   []Answer  `json:"answers,omitempty"`
	Objective string    `json:"objective,omitempty"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`

	// Acceptable holds the accepted answers for short-answer questions.
	Acceptable []string `json:"acceptable_answers,omitempty"`

	// Rating is the question's ELO difficulty rating.
	Rating float64 `json:"elo_rating"`

	// Schedule is the spaced repetition state.
	Schedule srs.State `json:"schedule"`

	// LastStudied is the time of the most recent attempt (zero = never).
	LastStudied time.Time `json:"last_studied,omitempty"`
}

// NewMultipleChoice builds a multiple-choice question. The correct answer
// comes first in the option list; callers shuffle for display.
func NewMultipleChoice(text, correct string, wrong []string, opts Options) *Question {
	q := newQuestion(text, KindMultipleChoice, opts)
	q.Answers = append(q.Answers, Answer{
		ID:          uuid.New().String(),
		Text:        correct,
		Correct:     true,
		Explanation: opts.Explanations[correct],
	})
	for _, w := range wrong {
		q.Answers = append(q.Answers, Answer{
			ID:          uuid.New().String(),
			Text:        w,
			Correct:     false,
			Explanation: opts.Explanations[w],
		})
	}
	return q
}

// NewTrueFalse builds a true/false question.
func NewTrueFalse(text string, answerIsTrue bool, opts Options) *Question {
	q := newQuestion(text, KindTrueFalse, opts)
	q.Answers = []Answer{
		{ID: uuid.New().String(), Text: "True", Correct: answerIsTrue},
		{ID: uuid.New().String(), Text: "False", Correct: !answerIsTrue},
	}
	return q
}

// NewShortAnswer builds a short-answer question with one or more accepted
// answer strings.
func NewShortAnswer(text string, acceptable []string, opts Options) *Question {
	q := newQuestion(text, KindShortAnswer, opts)
	q.Acceptable = acceptable
	return q
}

// Options carries the optional question fields shared by all factories.
type Options struct {
	Tags         []string
	Objective    string
	Explanations map[string]string
}

func newQuestion(text string, kind Kind, opts Options) *Question {
	q := &Question{
		ID:        uuid.New().String(),
		Text:      text,
		Kind:      kind,
		Objective: opts.Objective,
	}
	for _, t := range opts.Tags {
		q.AddTag(t)
	}
	return q
}

// CorrectAnswer returns the correct answer option, or nil for
// short-answer questions.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].Correct {
			return &q.Answers[i]
		}
	}
	return nil
}

// AnswerByID returns the answer option with the given id, or nil.
func (q *Question) AnswerByID(id string) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}

// Accuracy returns the lifetime fraction of correct attempts.
func (q *Question) Accuracy() float64 {
	return q.Schedule.Accuracy()
}

// AddTag adds a normalized tag, ignoring duplicates.
func (q *Question) AddTag(tag string) {
	tag = normalizeTag(tag)
	if tag == "" || q.HasTag(tag) {
		return
	}
	q.Tags = append(q.Tags, tag)
}

// RemoveTag removes a tag if present.
func (q *Question) RemoveTag(tag string) {
	tag = normalizeTag(tag)
	for i, t := range q.Tags {
		if t == tag {
			q.Tags = append(q.Tags[:i], q.Tags[i+1:]...)
			return
		}
	}
}

// HasTag reports whether the question carries the tag.
func (q *Question) HasTag(tag string) bool {
	tag = normalizeTag(tag)
	for _, t := range q.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}
