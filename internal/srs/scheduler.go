package srs

import (
	"sort"
	"time"
)

const hoursPerDay = 24

// Scheduler computes review schedules using a modified SM-2 algorithm.
// It is stateless: every method is a pure function over its inputs, with
// the current time supplied by the caller.
type Scheduler struct {
	cfg Config
}

// NewScheduler creates a Scheduler, validating the configuration.
func NewScheduler(cfg Config) (*Scheduler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Scheduler{cfg: cfg}, nil
}

// Config returns the scheduler's configuration.
func (s *Scheduler) Config() Config {
	return s.cfg
}

// Seed returns the scheduling state for a newly added, never-answered
// question. The zero interval is a sentinel for "unseen", below MinInterval.
func (s *Scheduler) Seed() State {
	return State{
		IntervalDays: 0,
		EaseFactor:   s.cfg.InitialEaseFactor,
	}
}

// Advance computes the next scheduling state from the current one and an
// answer outcome. The ease factor is updated before it scales the interval,
// so a bonus or penalty takes effect in the same step.
func (s *Scheduler) Advance(state State, outcome Outcome, now time.Time) (State, error) {
	if err := state.validate(); err != nil {
		return State{}, err
	}

	next := state
	if outcome.Correct {
		next.EaseFactor = clamp(state.EaseFactor+s.cfg.EaseBonus, s.cfg.MinEaseFactor, s.cfg.MaxEaseFactor)
		if state.IntervalDays == 0 {
			// First correct answer: zero is the unseen sentinel, not a spacing.
			next.IntervalDays = s.cfg.MinInterval
		} else {
			next.IntervalDays = clamp(state.IntervalDays*next.EaseFactor, s.cfg.MinInterval, s.cfg.MaxInterval)
		}
		next.TimesCorrect++
	} else {
		next.EaseFactor = clamp(state.EaseFactor-s.cfg.EasePenalty, s.cfg.MinEaseFactor, s.cfg.MaxEaseFactor)
		next.IntervalDays = s.cfg.MinInterval
	}

	next.TimesAnswered++
	next.NextReview = addDays(now, next.IntervalDays)
	return next, nil
}

// Postpone reschedules a skipped question at half its current interval,
// floored at MinInterval. Ease and counters are untouched.
func (s *Scheduler) Postpone(state State, now time.Time) (State, error) {
	if err := state.validate(); err != nil {
		return State{}, err
	}
	next := state
	next.IntervalDays = clamp(state.IntervalDays*0.5, s.cfg.MinInterval, s.cfg.MaxInterval)
	next.NextReview = addDays(now, next.IntervalDays)
	return next, nil
}

// IsDue returns true if the question should be reviewed now: either its
// next review time has passed, or it has never been answered.
func (s *Scheduler) IsDue(state State, now time.Time) bool {
	if state.Unseen() {
		return true
	}
	return !now.Before(state.NextReview)
}

// Retention estimates how well a question is retained, from 0 to 1.
// Unseen questions score 0.5 (unknown). Otherwise accuracy contributes
// 70% and the ease factor's position within its bounds 30%.
func (s *Scheduler) Retention(state State) float64 {
	if state.Unseen() {
		return 0.5
	}
	easeSpan := s.cfg.MaxEaseFactor - s.cfg.MinEaseFactor
	easePos := 0.0
	if easeSpan > 0 {
		easePos = (state.EaseFactor - s.cfg.MinEaseFactor) / easeSpan
	}
	return clamp(state.Accuracy()*0.7+easePos*0.3, 0, 1)
}

// ForecastEntry is the review load for a single calendar day.
type ForecastEntry struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

// Forecast counts, for each of the next horizonDays calendar days starting
// at now's date, how many states come due on that day. The result has
// exactly one entry per day, in order, including zero-count days.
func (s *Scheduler) Forecast(states []State, now time.Time, horizonDays int) []ForecastEntry {
	entries := make([]ForecastEntry, 0, horizonDays)
	for i := 0; i < horizonDays; i++ {
		day := now.AddDate(0, 0, i)
		count := 0
		for _, st := range states {
			if !st.Unseen() && sameDay(st.NextReview, day) {
				count++
			}
		}
		entries = append(entries, ForecastEntry{Date: startOfDay(day), Count: count})
	}
	return entries
}

// SuggestSessionSize recommends how many of the due questions fit in a
// session of targetMinutes, assuming avgSecondsPerQuestion each.
func (s *Scheduler) SuggestSessionSize(dueCount, targetMinutes int, avgSecondsPerQuestion float64) int {
	if avgSecondsPerQuestion <= 0 || targetMinutes <= 0 {
		return 0
	}
	max := int(float64(targetMinutes*60) / avgSecondsPerQuestion)
	if max > dueCount {
		return dueCount
	}
	return max
}

// SortDue orders indexes of due states by review priority: most overdue
// first, ties broken by lower ease factor (shakier questions first).
// Unseen states sort ahead of everything.
func (s *Scheduler) SortDue(states []State, now time.Time) []int {
	idx := make([]int, 0, len(states))
	for i, st := range states {
		if s.IsDue(st, now) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		sa, sb := states[idx[a]], states[idx[b]]
		if sa.Unseen() != sb.Unseen() {
			return sa.Unseen()
		}
		oa, ob := sa.OverdueDays(now), sb.OverdueDays(now)
		if oa != ob {
			return oa > ob
		}
		return sa.EaseFactor < sb.EaseFactor
	})
	return idx
}

// addDays offsets t by a fractional number of days.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * hoursPerDay * float64(time.Hour)))
}

// sameDay reports whether a and b fall on the same calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// startOfDay truncates t to midnight.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
