package srs

import (
	"errors"
	"math"
	"testing"
	"time"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	s, err := NewScheduler(DefaultConfig())
	if err != nil {
		t.Fatalf("NewScheduler: %v", err)
	}
	return s
}

func TestNewScheduler_RejectsInvertedEaseBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinEaseFactor = 3.5
	_, err := NewScheduler(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewScheduler_RejectsInvertedIntervalBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinInterval = 400
	_, err := NewScheduler(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestNewScheduler_RejectsNonFinite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EaseBonus = math.NaN()
	_, err := NewScheduler(cfg)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestAdvance_CorrectAnswer(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	state := State{IntervalDays: 6, EaseFactor: 2.5, TimesAnswered: 3, TimesCorrect: 2}
	next, err := s.Advance(state, Outcome{Correct: true}, now)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if math.Abs(next.EaseFactor-2.65) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.65", next.EaseFactor)
	}
	if math.Abs(next.IntervalDays-15.9) > 1e-9 {
		t.Errorf("IntervalDays = %v, want 15.9", next.IntervalDays)
	}
	if next.TimesAnswered != 4 || next.TimesCorrect != 3 {
		t.Errorf("counters = %d/%d, want 4/3", next.TimesCorrect, next.TimesAnswered)
	}
	wantReview := now.Add(time.Duration(15.9 * 24 * float64(time.Hour)))
	if !next.NextReview.Equal(wantReview) {
		t.Errorf("NextReview = %v, want %v", next.NextReview, wantReview)
	}
}

func TestAdvance_IncorrectAnswer(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	state := State{IntervalDays: 6, EaseFactor: 2.5, TimesAnswered: 3, TimesCorrect: 2}
	next, err := s.Advance(state, Outcome{Correct: false}, now)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if math.Abs(next.EaseFactor-2.3) > 1e-9 {
		t.Errorf("EaseFactor = %v, want 2.3", next.EaseFactor)
	}
	if next.IntervalDays != 1.0 {
		t.Errorf("IntervalDays = %v, want 1.0", next.IntervalDays)
	}
	if next.TimesAnswered != 4 || next.TimesCorrect != 2 {
		t.Errorf("counters = %d/%d, want 4/2", next.TimesCorrect, next.TimesAnswered)
	}
}

func TestAdvance_FirstCorrectUsesMinInterval(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	next, err := s.Advance(s.Seed(), Outcome{Correct: true}, now)
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if next.IntervalDays != s.Config().MinInterval {
		t.Errorf("IntervalDays = %v, want MinInterval %v", next.IntervalDays, s.Config().MinInterval)
	}
}

func TestAdvance_RepeatedIncorrectStaysAtMinInterval(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	state := State{IntervalDays: 120, EaseFactor: 2.8}
	var err error
	for i := 0; i < 10; i++ {
		state, err = s.Advance(state, Outcome{Correct: false}, now)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if state.IntervalDays != s.Config().MinInterval {
			t.Fatalf("IntervalDays = %v after %d incorrect, want exactly MinInterval", state.IntervalDays, i+1)
		}
	}
	if state.EaseFactor != s.Config().MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", state.EaseFactor, s.Config().MinEaseFactor)
	}
}

func TestAdvance_MonotoneGrowthToCap(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	state := s.Seed()
	prev := 0.0
	var err error
	for i := 0; i < 30; i++ {
		state, err = s.Advance(state, Outcome{Correct: true}, now)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if state.IntervalDays < prev {
			t.Fatalf("interval decreased: %v -> %v on step %d", prev, state.IntervalDays, i)
		}
		prev = state.IntervalDays
	}
	if state.IntervalDays != s.Config().MaxInterval {
		t.Errorf("IntervalDays = %v after 30 correct, want cap %v", state.IntervalDays, s.Config().MaxInterval)
	}
	if state.EaseFactor != s.Config().MaxEaseFactor {
		t.Errorf("EaseFactor = %v, want ceiling %v", state.EaseFactor, s.Config().MaxEaseFactor)
	}
}

func TestAdvance_BoundsAlwaysHold(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	cfg := s.Config()

	// Alternate correct and incorrect; every output must stay in bounds.
	state := s.Seed()
	var err error
	for i := 0; i < 50; i++ {
		state, err = s.Advance(state, Outcome{Correct: i%3 != 0}, now)
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		if state.IntervalDays < cfg.MinInterval || state.IntervalDays > cfg.MaxInterval {
			t.Fatalf("IntervalDays %v out of [%v, %v]", state.IntervalDays, cfg.MinInterval, cfg.MaxInterval)
		}
		if state.EaseFactor < cfg.MinEaseFactor || state.EaseFactor > cfg.MaxEaseFactor {
			t.Fatalf("EaseFactor %v out of [%v, %v]", state.EaseFactor, cfg.MinEaseFactor, cfg.MaxEaseFactor)
		}
	}
}

func TestAdvance_ResponseTimeDoesNotChangeSchedule(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	state := State{IntervalDays: 6, EaseFactor: 2.5, TimesAnswered: 2, TimesCorrect: 1}

	fast, err := s.Advance(state, Outcome{Correct: true, ResponseTimeSeconds: 1.2}, now)
	if err != nil {
		t.Fatal(err)
	}
	slow, err := s.Advance(state, Outcome{Correct: true, ResponseTimeSeconds: 90}, now)
	if err != nil {
		t.Fatal(err)
	}
	if fast != slow {
		t.Errorf("response time changed schedule: fast=%+v slow=%+v", fast, slow)
	}
}

func TestAdvance_RejectsMalformedState(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Now()

	tests := []struct {
		name  string
		state State
	}{
		{"negative times_answered", State{EaseFactor: 2.5, TimesAnswered: -1}},
		{"negative times_correct", State{EaseFactor: 2.5, TimesCorrect: -2}},
		{"correct exceeds answered", State{EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 3}},
		{"negative interval", State{EaseFactor: 2.5, IntervalDays: -4}},
		{"NaN ease", State{EaseFactor: math.NaN()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Advance(tt.state, Outcome{Correct: true}, now)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("err = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestPostpone_HalvesIntervalWithFloor(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	state := State{IntervalDays: 10, EaseFactor: 2.5, TimesAnswered: 4, TimesCorrect: 3}
	next, err := s.Postpone(state, now)
	if err != nil {
		t.Fatal(err)
	}
	if next.IntervalDays != 5 {
		t.Errorf("IntervalDays = %v, want 5", next.IntervalDays)
	}
	if next.EaseFactor != state.EaseFactor || next.TimesAnswered != state.TimesAnswered {
		t.Error("Postpone must not touch ease or counters")
	}

	short := State{IntervalDays: 1, EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 1}
	next, err = s.Postpone(short, now)
	if err != nil {
		t.Fatal(err)
	}
	if next.IntervalDays != s.Config().MinInterval {
		t.Errorf("IntervalDays = %v, want MinInterval", next.IntervalDays)
	}
}

func TestIsDue_UnseenAlwaysDue(t *testing.T) {
	s := newTestScheduler(t)
	if !s.IsDue(s.Seed(), time.Now()) {
		t.Error("unseen state should be due")
	}
}

func TestIsDue_ComparesNextReview(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	past := State{IntervalDays: 1, EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 1, NextReview: now.Add(-time.Hour)}
	if !s.IsDue(past, now) {
		t.Error("past NextReview should be due")
	}
	exact := past
	exact.NextReview = now
	if !s.IsDue(exact, now) {
		t.Error("NextReview == now should be due")
	}
	future := past
	future.NextReview = now.Add(time.Hour)
	if s.IsDue(future, now) {
		t.Error("future NextReview should not be due")
	}
}

func TestForecast_OneEntryPerDay(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	entries := s.Forecast(nil, now, 7)
	if len(entries) != 7 {
		t.Fatalf("len = %d, want 7", len(entries))
	}
	for i, e := range entries {
		if e.Count != 0 {
			t.Errorf("entry %d count = %d, want 0", i, e.Count)
		}
		want := time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC)
		if !e.Date.Equal(want) {
			t.Errorf("entry %d date = %v, want %v", i, e.Date, want)
		}
	}
}

func TestForecast_CountsByCalendarDay(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	states := []State{
		{TimesAnswered: 1, TimesCorrect: 1, EaseFactor: 2.5, NextReview: now.AddDate(0, 0, 2)},
		{TimesAnswered: 2, TimesCorrect: 1, EaseFactor: 2.3, NextReview: now.AddDate(0, 0, 2).Add(5 * time.Hour)},
		{TimesAnswered: 1, TimesCorrect: 0, EaseFactor: 2.3, NextReview: now.AddDate(0, 0, 5)},
		{}, // unseen, no scheduled review
	}
	entries := s.Forecast(states, now, 7)
	if entries[2].Count != 2 {
		t.Errorf("day 2 count = %d, want 2", entries[2].Count)
	}
	if entries[5].Count != 1 {
		t.Errorf("day 5 count = %d, want 1", entries[5].Count)
	}
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
}

func TestRetention(t *testing.T) {
	s := newTestScheduler(t)

	if got := s.Retention(s.Seed()); got != 0.5 {
		t.Errorf("unseen retention = %v, want 0.5", got)
	}

	// Perfect accuracy at max ease.
	state := State{IntervalDays: 30, EaseFactor: 3.0, TimesAnswered: 10, TimesCorrect: 10}
	if got := s.Retention(state); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("retention = %v, want 1.0", got)
	}

	// Zero accuracy at min ease.
	state = State{IntervalDays: 1, EaseFactor: 1.3, TimesAnswered: 5, TimesCorrect: 0}
	if got := s.Retention(state); got != 0 {
		t.Errorf("retention = %v, want 0", got)
	}
}

func TestSuggestSessionSize(t *testing.T) {
	s := newTestScheduler(t)

	if got := s.SuggestSessionSize(100, 30, 45); got != 40 {
		t.Errorf("size = %d, want 40", got)
	}
	if got := s.SuggestSessionSize(10, 30, 45); got != 10 {
		t.Errorf("size = %d, want 10 (capped by due count)", got)
	}
	if got := s.SuggestSessionSize(10, 0, 45); got != 0 {
		t.Errorf("size = %d, want 0", got)
	}
}

func TestSortDue_MostOverdueFirst(t *testing.T) {
	s := newTestScheduler(t)
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	states := []State{
		{IntervalDays: 1, EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 1, NextReview: now.AddDate(0, 0, -2)},
		{IntervalDays: 1, EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 1, NextReview: now.AddDate(0, 0, 3)}, // not due
		{IntervalDays: 1, EaseFactor: 2.5, TimesAnswered: 1, TimesCorrect: 1, NextReview: now.AddDate(0, 0, -7)},
		{}, // unseen
	}
	order := s.SortDue(states, now)
	if len(order) != 3 {
		t.Fatalf("len = %d, want 3", len(order))
	}
	if order[0] != 3 {
		t.Errorf("order[0] = %d, want unseen (3) first", order[0])
	}
	if order[1] != 2 || order[2] != 0 {
		t.Errorf("order = %v, want [3 2 0]", order)
	}
}
