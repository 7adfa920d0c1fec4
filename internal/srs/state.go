package srs

import (
	"fmt"
	"math"
	"time"
)

// State holds the spaced repetition scheduling state for a single question.
type State struct {
	IntervalDays  float64   `json:"interval_days"`
	EaseFactor    float64   `json:"ease_factor"`
	NextReview    time.Time `json:"next_review"`
	TimesAnswered int       `json:"times_answered"`
	TimesCorrect  int       `json:"times_correct"`
}

// Outcome describes a single answered attempt. ResponseTimeSeconds is
// recorded for analytics but does not influence scheduling.
type Outcome struct {
	Correct             bool
	ResponseTimeSeconds float64
}

// Unseen returns true if the question has never been answered.
func (s State) Unseen() bool {
	return s.TimesAnswered == 0
}

// Accuracy returns the fraction of correct answers, or 0 for an unseen state.
func (s State) Accuracy() float64 {
	if s.TimesAnswered == 0 {
		return 0
	}
	return float64(s.TimesCorrect) / float64(s.TimesAnswered)
}

// OverdueDays returns how many days past due the question is.
// Returns 0 if not yet due or never answered.
func (s State) OverdueDays(now time.Time) float64 {
	if s.Unseen() || now.Before(s.NextReview) {
		return 0
	}
	return now.Sub(s.NextReview).Hours() / 24.0
}

// validate checks the State invariants. The scheduler never repairs
// corrupted state; callers get ErrInvalidState and must decide themselves.
func (s State) validate() error {
	if s.TimesAnswered < 0 {
		return fmt.Errorf("%w: times_answered %d < 0", ErrInvalidState, s.TimesAnswered)
	}
	if s.TimesCorrect < 0 {
		return fmt.Errorf("%w: times_correct %d < 0", ErrInvalidState, s.TimesCorrect)
	}
	if s.TimesCorrect > s.TimesAnswered {
		return fmt.Errorf("%w: times_correct %d > times_answered %d",
			ErrInvalidState, s.TimesCorrect, s.TimesAnswered)
	}
	if s.IntervalDays < 0 || math.IsNaN(s.IntervalDays) || math.IsInf(s.IntervalDays, 0) {
		return fmt.Errorf("%w: interval_days %f", ErrInvalidState, s.IntervalDays)
	}
	if math.IsNaN(s.EaseFactor) || math.IsInf(s.EaseFactor, 0) {
		return fmt.Errorf("%w: ease_factor %f", ErrInvalidState, s.EaseFactor)
	}
	return nil
}
