// Package analytics derives learning insights from session history and
// the attempt event log: performance trends, study patterns, and
// personalized recommendations.
package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/store"
)

// Trend labels.
const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// trendWindow is how many recent sessions the trend compares against the
// window before them.
const trendWindow = 5

// TrendReport compares recent session accuracy against the preceding
// window.
type TrendReport struct {
	Trend          string
	AccuracyChange float64 // recent minus older, as a fraction
	RecentAccuracy float64
	TotalSessions  int
}

// Trend analyzes accuracy movement across the session history.
func Trend(sessions []*bank.StudySession) TrendReport {
	report := TrendReport{TotalSessions: len(sessions)}
	if len(sessions) < 2 {
		report.Trend = TrendInsufficientData
		return report
	}

	sorted := make([]*bank.StudySession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	recent := sorted
	if len(sorted) > trendWindow {
		recent = sorted[len(sorted)-trendWindow:]
	}
	older := sorted[:len(sorted)-len(recent)]
	if len(older) > trendWindow {
		older = older[len(older)-trendWindow:]
	}

	report.RecentAccuracy = meanAccuracy(recent)
	if len(older) > 0 {
		report.AccuracyChange = report.RecentAccuracy - meanAccuracy(older)
	}

	switch {
	case report.AccuracyChange > 0.05:
		report.Trend = TrendImproving
	case report.AccuracyChange < -0.05:
		report.Trend = TrendDeclining
	default:
		report.Trend = TrendStable
	}
	return report
}

// StudyPatterns describes when and what the user studies.
type StudyPatterns struct {
	DaysStudied           int
	AverageSessionMinutes float64
	PreferredHour         int
	TopTags               []string
}

// Patterns summarizes study habits across the session history. Tags are
// resolved through the bank's questions.
func Patterns(b *bank.Bank, sessions []*bank.StudySession) StudyPatterns {
	if len(sessions) == 0 {
		return StudyPatterns{PreferredHour: 12}
	}

	days := make(map[string]bool)
	hours := make(map[int]int)
	tagCounts := make(map[string]int)
	var totalMinutes float64

	for _, s := range sessions {
		days[s.StartTime.Format("2006-01-02")] = true
		hours[s.StartTime.Hour()]++
		totalMinutes += s.Duration().Minutes()
		for _, id := range s.QuestionIDs {
			if q := b.Get(id); q != nil {
				for _, tag := range q.Tags {
					tagCounts[tag]++
				}
			}
		}
	}

	preferred, best := 12, 0
	for h, n := range hours {
		if n > best || (n == best && h < preferred) {
			preferred, best = h, n
		}
	}

	tags := make([]string, 0, len(tagCounts))
	for t := range tagCounts {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tagCounts[tags[i]] != tagCounts[tags[j]] {
			return tagCounts[tags[i]] > tagCounts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > 5 {
		tags = tags[:5]
	}

	return StudyPatterns{
		DaysStudied:           len(days),
		AverageSessionMinutes: totalMinutes / float64(len(sessions)),
		PreferredHour:         preferred,
		TopTags:               tags,
	}
}

// Recommend produces up to five study recommendations from recent
// performance.
func Recommend(b *bank.Bank, sessions []*bank.StudySession) []string {
	if len(sessions) == 0 {
		return []string{"Start with a practice session to establish your baseline."}
	}

	sorted := make([]*bank.StudySession, len(sessions))
	copy(sorted, sessions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	recent := sorted
	if len(sorted) > trendWindow {
		recent = sorted[len(sorted)-trendWindow:]
	}

	var recs []string

	acc := meanAccuracy(recent)
	switch {
	case acc < 0.6:
		recs = append(recs,
			"Focus on reviewing incorrect answers and their explanations.",
			"Consider shorter sessions with immediate feedback.")
	case acc > 0.85:
		recs = append(recs,
			"Great accuracy. Try raising the difficulty band.",
			"Mix in unseen questions to keep the challenge up.")
	}

	if len(sessions) < 7 {
		recs = append(recs, "Establish a consistent daily study routine.")
	}

	recentTags := make(map[string]bool)
	for _, s := range recent {
		for _, id := range s.QuestionIDs {
			if q := b.Get(id); q != nil {
				for _, tag := range q.Tags {
					recentTags[tag] = true
				}
			}
		}
	}
	if len(recentTags) == 1 {
		recs = append(recs, "Try studying different topics to broaden your coverage.")
	}

	if weak := weakTags(b); len(weak) > 0 {
		recs = append(recs, fmt.Sprintf("Focus on improving: %s.", strings.Join(weak, ", ")))
	}

	var avgMinutes float64
	for _, s := range recent {
		avgMinutes += s.Duration().Minutes()
	}
	avgMinutes /= float64(len(recent))
	switch {
	case avgMinutes < 5:
		recs = append(recs, "Consider longer study sessions for better retention.")
	case avgMinutes > 30:
		recs = append(recs, "Try shorter, more frequent sessions to avoid fatigue.")
	}

	if len(recs) > 5 {
		recs = recs[:5]
	}
	return recs
}

// AverageResponseTime computes the mean response time in seconds across
// attempt events, ignoring events with no measurement.
func AverageResponseTime(events []store.AttemptEvent) float64 {
	var sum float64
	var n int
	for _, e := range events {
		if e.ResponseTimeMs > 0 {
			sum += float64(e.ResponseTimeMs) / 1000
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// weakTags returns up to three tags whose questions average below 70%
// accuracy, weakest first. Only questions answered at least once count.
func weakTags(b *bank.Bank) []string {
	type agg struct{ answered, correct int }
	byTag := make(map[string]*agg)

	for _, q := range b.Questions {
		if q.Schedule.TimesAnswered == 0 {
			continue
		}
		for _, tag := range q.Tags {
			a := byTag[tag]
			if a == nil {
				a = &agg{}
				byTag[tag] = a
			}
			a.answered += q.Schedule.TimesAnswered
			a.correct += q.Schedule.TimesCorrect
		}
	}

	type scored struct {
		tag string
		acc float64
	}
	var weak []scored
	for tag, a := range byTag {
		acc := float64(a.correct) / float64(a.answered)
		if acc < 0.7 {
			weak = append(weak, scored{tag, acc})
		}
	}
	sort.Slice(weak, func(i, j int) bool {
		if weak[i].acc != weak[j].acc {
			return weak[i].acc < weak[j].acc
		}
		return weak[i].tag < weak[j].tag
	})

	out := make([]string, 0, 3)
	for i := 0; i < len(weak) && i < 3; i++ {
		out = append(out, weak[i].tag)
	}
	return out
}

func meanAccuracy(sessions []*bank.StudySession) float64 {
	if len(sessions) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sessions {
		sum += s.Accuracy()
	}
	return sum / float64(len(sessions))
}

// DaysSince returns whole days elapsed since t, never negative.
func DaysSince(t, now time.Time) float64 {
	if t.IsZero() || now.Before(t) {
		return 0
	}
	return now.Sub(t).Hours() / 24
}
