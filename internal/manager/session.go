package manager

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/srs"
	"github.com/haxx0rman/qBank/internal/store"
)

// defaultRatingSpread is the half-width of the adaptive difficulty band
// around the user's rating.
const defaultRatingSpread = 200

// SessionOptions filters and sizes a study session.
type SessionOptions struct {
	MaxQuestions int      // 0 = all due questions
	Tags         []string // keep questions carrying any of these tags
	Adaptive     bool     // restrict to the rating band around the user
	RatingSpread float64  // band half-width; 0 = defaultRatingSpread
	Shuffle      bool     // randomize order after priority selection
}

// AnswerReport describes the effect of a single attempt.
type AnswerReport struct {
	Correct        bool
	CorrectAnswer  *bank.Answer
	Explanation    string
	UserRating     float64
	UserDelta      float64
	QuestionRating float64
	QuestionDelta  float64
	IntervalDays   float64
	EaseFactor     float64
	NextReview     time.Time
}

// StartSession opens a study session over the due questions matching
// opts, in review-priority order. Returns the selected questions.
func (m *Manager) StartSession(ctx context.Context, opts SessionOptions) ([]*bank.Question, error) {
	if m.active != nil {
		return nil, ErrSessionActive
	}

	now := m.now()
	selected := m.selectDue(now, opts)
	if opts.MaxQuestions > 0 && len(selected) > opts.MaxQuestions {
		selected = selected[:opts.MaxQuestions]
	}
	if opts.Shuffle {
		rand.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}

	ids := make([]string, len(selected))
	for i, q := range selected {
		ids[i] = q.ID
	}
	m.active = bank.NewStudySession(ids, now)

	m.recordSession(ctx, store.SessionEventData{
		SessionID: m.active.ID,
		Action:    "start",
		Tags:      opts.Tags,
	})
	return selected, nil
}

// ActiveSession returns the open session, or nil.
func (m *Manager) ActiveSession() *bank.StudySession {
	return m.active
}

// Answer grades a multiple-choice or true/false attempt by answer ID,
// updates ratings and scheduling, and records the attempt.
func (m *Manager) Answer(ctx context.Context, questionID, answerID string, responseTime float64) (*AnswerReport, error) {
	q := m.bank.Get(questionID)
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}
	ans := q.AnswerByID(answerID)
	if ans == nil {
		return nil, fmt.Errorf("%w: %s", ErrAnswerNotFound, answerID)
	}
	return m.apply(ctx, q, ans.Correct, responseTime)
}

// AnswerText grades a short-answer attempt against the question's
// acceptable answers using normalized fuzzy matching.
func (m *Manager) AnswerText(ctx context.Context, questionID, text string, responseTime float64) (*AnswerReport, error) {
	q := m.bank.Get(questionID)
	if q == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}
	correct := bank.MatchShortAnswer(text, q.Acceptable)
	return m.apply(ctx, q, correct, responseTime)
}

// Skip postpones a question at half its interval without touching its
// ease factor or either rating.
func (m *Manager) Skip(ctx context.Context, questionID string) error {
	q := m.bank.Get(questionID)
	if q == nil {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	now := m.now()
	next, err := m.scheduler.Postpone(q.Schedule, now)
	if err != nil {
		return err
	}
	q.Schedule = next

	if m.active != nil {
		m.active.Results[q.ID] = bank.ResultSkipped
	}

	m.recordAttempt(ctx, store.AttemptEventData{
		SessionID:            m.sessionID(),
		QuestionID:           q.ID,
		QuestionKind:         string(q.Kind),
		Result:               string(bank.ResultSkipped),
		UserRatingBefore:     m.userRating,
		UserRatingAfter:      m.userRating,
		QuestionRatingBefore: q.Rating,
		QuestionRatingAfter:  q.Rating,
		IntervalDays:         next.IntervalDays,
		EaseFactor:           next.EaseFactor,
	})
	return nil
}

// EndSession closes the open session, appends it to the bank's history,
// and returns it.
func (m *Manager) EndSession(ctx context.Context) (*bank.StudySession, error) {
	if m.active == nil {
		return nil, ErrNoSession
	}

	sess := m.active
	sess.EndTime = m.now()
	m.bank.Sessions = append(m.bank.Sessions, sess)
	m.active = nil

	m.recordSession(ctx, store.SessionEventData{
		SessionID:       sess.ID,
		Action:          "end",
		QuestionsServed: len(sess.QuestionIDs),
		CorrectAnswers:  sess.CorrectCount(),
		Skipped:         sess.SkippedCount(),
		DurationSecs:    int(sess.Duration().Seconds()),
	})
	return sess, nil
}

// apply runs one attempt through both engines. The rating update and the
// schedule update read the same prior state, so their order is
// immaterial.
func (m *Manager) apply(ctx context.Context, q *bank.Question, correct bool, responseTime float64) (*AnswerReport, error) {
	now := m.now()

	next, err := m.scheduler.Advance(q.Schedule, srs.Outcome{
		Correct:             correct,
		ResponseTimeSeconds: responseTime,
	}, now)
	if err != nil {
		return nil, err
	}
	newUser, newQuestion := m.engine.Update(m.userRating, q.Rating, correct)

	userBefore, questionBefore := m.userRating, q.Rating
	q.Schedule = next
	q.Rating = newQuestion
	q.LastStudied = now
	m.userRating = newUser

	result := bank.ResultIncorrect
	if correct {
		result = bank.ResultCorrect
	}
	if m.active != nil {
		m.active.Results[q.ID] = result
	}

	var explanation string
	ca := q.CorrectAnswer()
	if ca != nil {
		explanation = ca.Explanation
	}

	m.recordAttempt(ctx, store.AttemptEventData{
		SessionID:            m.sessionID(),
		QuestionID:           q.ID,
		QuestionKind:         string(q.Kind),
		Result:               string(result),
		ResponseTimeMs:       int64(responseTime * 1000),
		UserRatingBefore:     userBefore,
		UserRatingAfter:      newUser,
		QuestionRatingBefore: questionBefore,
		QuestionRatingAfter:  newQuestion,
		IntervalDays:         next.IntervalDays,
		EaseFactor:           next.EaseFactor,
	})

	return &AnswerReport{
		Correct:        correct,
		CorrectAnswer:  ca,
		Explanation:    explanation,
		UserRating:     newUser,
		UserDelta:      newUser - userBefore,
		QuestionRating: newQuestion,
		QuestionDelta:  newQuestion - questionBefore,
		IntervalDays:   next.IntervalDays,
		EaseFactor:     next.EaseFactor,
		NextReview:     next.NextReview,
	}, nil
}

// selectDue returns the due questions matching opts in review-priority
// order.
func (m *Manager) selectDue(now time.Time, opts SessionOptions) []*bank.Question {
	var pool []*bank.Question
	for _, q := range m.bank.All() {
		if !m.scheduler.IsDue(q.Schedule, now) {
			continue
		}
		if len(opts.Tags) > 0 && !hasAnyTag(q, opts.Tags) {
			continue
		}
		if opts.Adaptive {
			spread := opts.RatingSpread
			if spread <= 0 {
				spread = defaultRatingSpread
			}
			low, high := m.engine.RecommendedRange(m.userRating, spread)
			if q.Rating < low || q.Rating > high {
				continue
			}
		}
		pool = append(pool, q)
	}

	states := make([]srs.State, len(pool))
	for i, q := range pool {
		states[i] = q.Schedule
	}
	order := m.scheduler.SortDue(states, now)

	selected := make([]*bank.Question, len(order))
	for i, idx := range order {
		selected[i] = pool[idx]
	}
	return selected
}

func (m *Manager) sessionID() string {
	if m.active == nil {
		return ""
	}
	return m.active.ID
}

func (m *Manager) recordAttempt(ctx context.Context, data store.AttemptEventData) {
	if m.events == nil {
		return
	}
	if err := m.events.AppendAttempt(ctx, data); err != nil {
		warn("record attempt event", err)
	}
}

func (m *Manager) recordSession(ctx context.Context, data store.SessionEventData) {
	if m.events == nil {
		return
	}
	if err := m.events.AppendSession(ctx, data); err != nil {
		warn("record session event", err)
	}
}

func hasAnyTag(q *bank.Question, tags []string) bool {
	for _, t := range tags {
		if q.HasTag(t) {
			return true
		}
	}
	return false
}
