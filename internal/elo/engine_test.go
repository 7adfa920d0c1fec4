package elo

import (
	"errors"
	"math"
	"testing"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestNewEngine_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero k", Config{KFactor: 0, InitialRating: 1200}},
		{"negative k", Config{KFactor: -10, InitialRating: 1200}},
		{"NaN initial rating", Config{KFactor: 32, InitialRating: math.NaN()}},
		{"infinite initial rating", Config{KFactor: 32, InitialRating: math.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEngine(tt.cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestExpectedScore_EqualRatings(t *testing.T) {
	e := newTestEngine(t)
	if got := e.ExpectedScore(1200, 1200); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("ExpectedScore(1200,1200) = %v, want 0.5", got)
	}
}

func TestExpectedScore_400PointGap(t *testing.T) {
	e := newTestEngine(t)
	// A 400-point favorite expects 10:1 odds.
	got := e.ExpectedScore(1600, 1200)
	if math.Abs(got-10.0/11.0) > 1e-9 {
		t.Errorf("ExpectedScore(1600,1200) = %v, want %v", got, 10.0/11.0)
	}
}

func TestUpdate_EqualRatingsCorrect(t *testing.T) {
	e := newTestEngine(t)
	user, question := e.Update(1200, 1200, true)
	if user != 1216.0 {
		t.Errorf("user = %v, want 1216.0", user)
	}
	if question != 1184.0 {
		t.Errorf("question = %v, want 1184.0", question)
	}
}

func TestUpdate_EqualRatingsIncorrect(t *testing.T) {
	e := newTestEngine(t)
	user, question := e.Update(1200, 1200, false)
	if user != 1184.0 {
		t.Errorf("user = %v, want 1184.0", user)
	}
	if question != 1216.0 {
		t.Errorf("question = %v, want 1216.0", question)
	}
}

func TestUpdate_ZeroSum(t *testing.T) {
	e := newTestEngine(t)
	cases := []struct {
		user, question float64
		correct        bool
	}{
		{1200, 1200, true},
		{1450, 1100, false},
		{900, 1700, true},
		{1333.5, 1287.25, false},
	}
	for _, c := range cases {
		nu, nq := e.Update(c.user, c.question, c.correct)
		userDelta := nu - c.user
		questionDelta := nq - c.question
		if math.Abs(userDelta+questionDelta) > 1e-9 {
			t.Errorf("Update(%v, %v, %v): deltas %v and %v not zero-sum",
				c.user, c.question, c.correct, userDelta, questionDelta)
		}
	}
}

func TestUpdate_UpsetMovesMorePoints(t *testing.T) {
	e := newTestEngine(t)

	// Beating a harder question earns more than beating an easier one.
	hardUser, _ := e.Update(1200, 1500, true)
	easyUser, _ := e.Update(1200, 900, true)
	if hardUser-1200 <= easyUser-1200 {
		t.Errorf("beating hard question earned %v, easy earned %v", hardUser-1200, easyUser-1200)
	}

	// Losing to an easy question costs more than losing to a hard one.
	easyLoss, _ := e.Update(1200, 900, false)
	hardLoss, _ := e.Update(1200, 1500, false)
	if 1200-easyLoss <= 1200-hardLoss {
		t.Errorf("losing to easy cost %v, to hard cost %v", 1200-easyLoss, 1200-hardLoss)
	}
}

func TestUpdate_NoClamping(t *testing.T) {
	e := newTestEngine(t)
	user := 1200.0
	question := 1200.0
	for i := 0; i < 500; i++ {
		user, question = e.Update(user, question, true)
	}
	if user <= 1300 {
		t.Errorf("user rating should drift unbounded upward, got %v", user)
	}
	if question >= 1100 {
		t.Errorf("question rating should drift unbounded downward, got %v", question)
	}
}

func TestRecommendedRange(t *testing.T) {
	e := newTestEngine(t)
	low, high := e.RecommendedRange(1350, 200)
	if low != 1150 || high != 1550 {
		t.Errorf("range = (%v, %v), want (1150, 1550)", low, high)
	}
}

func TestLabels(t *testing.T) {
	if got := DifficultyCategory(1250); got != "Medium" {
		t.Errorf("DifficultyCategory(1250) = %q", got)
	}
	if got := DifficultyCategory(2000); got != "Expert" {
		t.Errorf("DifficultyCategory(2000) = %q", got)
	}
	if got := UserLevel(999); got != "Beginner" {
		t.Errorf("UserLevel(999) = %q", got)
	}
	if got := UserLevel(1500); got != "Advanced" {
		t.Errorf("UserLevel(1500) = %q", got)
	}
}
