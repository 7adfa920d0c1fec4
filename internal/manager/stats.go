package manager

import (
	"sort"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/elo"
	"github.com/haxx0rman/qBank/internal/srs"
)

// UserStatistics summarizes the state of the bank and the user.
type UserStatistics struct {
	TotalQuestions   int
	DueCount         int
	UnseenCount      int
	TotalAttempts    int
	OverallAccuracy  float64
	UserRating       float64
	UserLevel        string
	AverageEase      float64
	AverageRetention float64
	SessionCount     int
}

// Statistics computes an aggregate view of the user and the bank.
func (m *Manager) Statistics() UserStatistics {
	now := m.now()
	stats := UserStatistics{
		TotalQuestions: len(m.bank.Questions),
		UserRating:     m.userRating,
		UserLevel:      elo.UserLevel(m.userRating),
		SessionCount:   len(m.bank.Sessions),
	}

	var answered, correct int
	var easeSum, retentionSum float64
	for _, q := range m.bank.Questions {
		if m.scheduler.IsDue(q.Schedule, now) {
			stats.DueCount++
		}
		if q.Schedule.Unseen() {
			stats.UnseenCount++
		}
		answered += q.Schedule.TimesAnswered
		correct += q.Schedule.TimesCorrect
		easeSum += q.Schedule.EaseFactor
		retentionSum += m.scheduler.Retention(q.Schedule)
	}

	stats.TotalAttempts = answered
	if answered > 0 {
		stats.OverallAccuracy = float64(correct) / float64(answered)
	}
	if n := len(m.bank.Questions); n > 0 {
		stats.AverageEase = easeSum / float64(n)
		stats.AverageRetention = retentionSum / float64(n)
	}
	return stats
}

// DueQuestions returns all currently due questions in review-priority
// order.
func (m *Manager) DueQuestions() []*bank.Question {
	return m.selectDue(m.now(), SessionOptions{})
}

// Forecast projects review load per calendar day over the horizon.
func (m *Manager) Forecast(horizonDays int) []srs.ForecastEntry {
	all := m.bank.All()
	states := make([]srs.State, len(all))
	for i, q := range all {
		states[i] = q.Schedule
	}
	return m.scheduler.Forecast(states, m.now(), horizonDays)
}

// DifficultQuestions returns up to limit questions the user struggles
// with: answered at least twice, lowest accuracy first, higher rating
// breaking ties.
func (m *Manager) DifficultQuestions(limit int) []*bank.Question {
	var hard []*bank.Question
	for _, q := range m.bank.All() {
		if q.Schedule.TimesAnswered >= 2 {
			hard = append(hard, q)
		}
	}
	sort.SliceStable(hard, func(i, j int) bool {
		ai, aj := hard[i].Schedule.Accuracy(), hard[j].Schedule.Accuracy()
		if ai != aj {
			return ai < aj
		}
		return hard[i].Rating > hard[j].Rating
	})
	if limit > 0 && len(hard) > limit {
		hard = hard[:limit]
	}
	return hard
}

// SuggestSessionSize recommends a session length for the target study
// time, assuming avgSecondsPerQuestion per question.
func (m *Manager) SuggestSessionSize(targetMinutes int, avgSecondsPerQuestion float64) int {
	return m.scheduler.SuggestSessionSize(len(m.DueQuestions()), targetMinutes, avgSecondsPerQuestion)
}
