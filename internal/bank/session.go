package bank

import (
	"time"

	"github.com/google/uuid"
)

// Result is the outcome of one question within a session.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
	ResultSkipped   Result = "skipped"
)

// StudySession records one sitting: which questions were served and how
// each went.
type StudySession struct {
	ID          string            `json:"session_id"`
	QuestionIDs []string          `json:"questions_studied"`
	Results     map[string]Result `json:"results"`
	StartTime   time.Time         `json:"start_time"`
	EndTime     time.Time         `json:"end_time,omitempty"`
}

// NewStudySession creates a session over the given questions.
func NewStudySession(questionIDs []string, start time.Time) *StudySession {
	return &StudySession{
		ID:          uuid.New().String(),
		QuestionIDs: questionIDs,
		Results:     make(map[string]Result),
		StartTime:   start,
	}
}

// CorrectCount returns how many questions were answered correctly.
func (s *StudySession) CorrectCount() int { return s.count(ResultCorrect) }

// IncorrectCount returns how many questions were answered incorrectly.
func (s *StudySession) IncorrectCount() int { return s.count(ResultIncorrect) }

// SkippedCount returns how many questions were skipped.
func (s *StudySession) SkippedCount() int { return s.count(ResultSkipped) }

func (s *StudySession) count(r Result) int {
	n := 0
	for _, v := range s.Results {
		if v == r {
			n++
		}
	}
	return n
}

// Accuracy returns the fraction of answered (non-skipped) questions that
// were correct, or 0 if nothing was answered.
func (s *StudySession) Accuracy() float64 {
	answered := s.CorrectCount() + s.IncorrectCount()
	if answered == 0 {
		return 0
	}
	return float64(s.CorrectCount()) / float64(answered)
}

// Duration returns the session length, or 0 while still open.
func (s *StudySession) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return 0
	}
	return s.EndTime.Sub(s.StartTime)
}
