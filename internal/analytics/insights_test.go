package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/store"
)

var base = time.Date(2025, 4, 1, 19, 0, 0, 0, time.UTC)

// sessionAt builds a finished session with the given accuracy out of ten
// questions.
func sessionAt(start time.Time, correct int, minutes float64) *bank.StudySession {
	ids := make([]string, 10)
	for i := range ids {
		ids[i] = "q" + string(rune('a'+i))
	}
	s := bank.NewStudySession(ids, start)
	for i, id := range ids {
		if i < correct {
			s.Results[id] = bank.ResultCorrect
		} else {
			s.Results[id] = bank.ResultIncorrect
		}
	}
	s.EndTime = start.Add(time.Duration(minutes * float64(time.Minute)))
	return s
}

func TestTrendInsufficientData(t *testing.T) {
	got := Trend([]*bank.StudySession{sessionAt(base, 5, 10)})
	if got.Trend != TrendInsufficientData {
		t.Errorf("trend = %q, want %q", got.Trend, TrendInsufficientData)
	}
}

func TestTrendImproving(t *testing.T) {
	var sessions []*bank.StudySession
	// Five poor sessions, then five strong ones.
	for i := 0; i < 5; i++ {
		sessions = append(sessions, sessionAt(base.AddDate(0, 0, i), 4, 10))
	}
	for i := 5; i < 10; i++ {
		sessions = append(sessions, sessionAt(base.AddDate(0, 0, i), 9, 10))
	}

	got := Trend(sessions)
	if got.Trend != TrendImproving {
		t.Errorf("trend = %q, want %q", got.Trend, TrendImproving)
	}
	if math.Abs(got.AccuracyChange-0.5) > 1e-9 {
		t.Errorf("change = %v, want 0.5", got.AccuracyChange)
	}
	if math.Abs(got.RecentAccuracy-0.9) > 1e-9 {
		t.Errorf("recent = %v, want 0.9", got.RecentAccuracy)
	}
}

func TestTrendStable(t *testing.T) {
	var sessions []*bank.StudySession
	for i := 0; i < 10; i++ {
		sessions = append(sessions, sessionAt(base.AddDate(0, 0, i), 7, 10))
	}
	if got := Trend(sessions); got.Trend != TrendStable {
		t.Errorf("trend = %q, want %q", got.Trend, TrendStable)
	}
}

func TestPatterns(t *testing.T) {
	b := bank.New("test", base)
	q := bank.NewTrueFalse("q", true, bank.Options{Tags: []string{"history"}})
	b.Add(q)

	s1 := bank.NewStudySession([]string{q.ID}, base) // 19:00
	s1.EndTime = base.Add(10 * time.Minute)
	s2 := bank.NewStudySession([]string{q.ID}, base.AddDate(0, 0, 1)) // next day 19:00
	s2.EndTime = s2.StartTime.Add(20 * time.Minute)

	p := Patterns(b, []*bank.StudySession{s1, s2})
	if p.DaysStudied != 2 {
		t.Errorf("days = %d, want 2", p.DaysStudied)
	}
	if p.PreferredHour != 19 {
		t.Errorf("hour = %d, want 19", p.PreferredHour)
	}
	if p.AverageSessionMinutes != 15 {
		t.Errorf("avg minutes = %v, want 15", p.AverageSessionMinutes)
	}
	if len(p.TopTags) != 1 || p.TopTags[0] != "history" {
		t.Errorf("tags = %v, want [history]", p.TopTags)
	}
}

func TestRecommendEmptyHistory(t *testing.T) {
	b := bank.New("test", base)
	recs := Recommend(b, nil)
	if len(recs) != 1 {
		t.Fatalf("recs = %v, want single baseline suggestion", recs)
	}
}

func TestRecommendLowAccuracy(t *testing.T) {
	b := bank.New("test", base)
	sessions := []*bank.StudySession{sessionAt(base, 3, 10)}

	recs := Recommend(b, sessions)
	if len(recs) == 0 {
		t.Fatal("expected recommendations")
	}
	if recs[0] != "Focus on reviewing incorrect answers and their explanations." {
		t.Errorf("recs[0] = %q", recs[0])
	}
	if len(recs) > 5 {
		t.Errorf("recs = %d, want at most 5", len(recs))
	}
}

func TestAverageResponseTime(t *testing.T) {
	events := []store.AttemptEvent{
		{AttemptEventData: store.AttemptEventData{ResponseTimeMs: 2000}},
		{AttemptEventData: store.AttemptEventData{ResponseTimeMs: 4000}},
		{AttemptEventData: store.AttemptEventData{ResponseTimeMs: 0}}, // unmeasured
	}
	if got := AverageResponseTime(events); got != 3 {
		t.Errorf("avg = %v, want 3", got)
	}
	if got := AverageResponseTime(nil); got != 0 {
		t.Errorf("avg of none = %v, want 0", got)
	}
}

func TestMasteryTimeline(t *testing.T) {
	got := MasteryTimeline(0.95, 0.9, 5)
	if !got.Achieved {
		t.Error("target already met should report achieved")
	}

	got = MasteryTimeline(0.7, 0.9, 5)
	if got.Achieved {
		t.Error("unmet target reported achieved")
	}
	// (0.9 - 0.7) / 0.02 = 10 weeks.
	if got.WeeksToTarget != 10 {
		t.Errorf("weeks = %d, want 10", got.WeeksToTarget)
	}

	// Intensive practice speeds it up: 10 * 0.8 = 8.
	got = MasteryTimeline(0.7, 0.9, 10)
	if got.WeeksToTarget != 8 {
		t.Errorf("weeks = %d, want 8", got.WeeksToTarget)
	}
}

func TestRetentionProbability(t *testing.T) {
	if got := RetentionProbability(0, 0.8); got != 0.8 {
		t.Errorf("same-day retention = %v, want 0.8", got)
	}

	// Decays with time but floors at 0.1.
	day1 := RetentionProbability(1, 0.8)
	day30 := RetentionProbability(30, 0.8)
	if day1 <= day30 {
		t.Errorf("retention should decay: day1=%v day30=%v", day1, day30)
	}
	if got := RetentionProbability(1000, 0.8); got != 0.1 {
		t.Errorf("long-gap retention = %v, want floor 0.1", got)
	}
	if got := RetentionProbability(5, 0); got != 0.1 {
		t.Errorf("zero-accuracy retention = %v, want 0.1", got)
	}
}

func TestDaysSince(t *testing.T) {
	if got := DaysSince(base, base.AddDate(0, 0, 3)); got != 3 {
		t.Errorf("days = %v, want 3", got)
	}
	if got := DaysSince(time.Time{}, base); got != 0 {
		t.Errorf("zero time days = %v, want 0", got)
	}
	if got := DaysSince(base.AddDate(0, 0, 1), base); got != 0 {
		t.Errorf("future time days = %v, want 0", got)
	}
}
