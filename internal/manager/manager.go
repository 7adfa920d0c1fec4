package manager

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/elo"
	"github.com/haxx0rman/qBank/internal/srs"
	"github.com/haxx0rman/qBank/internal/store"
)

var (
	// ErrSessionActive is returned when starting a session while one is open.
	ErrSessionActive = errors.New("manager: session already active")

	// ErrNoSession is returned by session operations with no open session.
	ErrNoSession = errors.New("manager: no active session")

	// ErrQuestionNotFound is returned for unknown question IDs.
	ErrQuestionNotFound = errors.New("manager: question not found")

	// ErrAnswerNotFound is returned for unknown answer IDs.
	ErrAnswerNotFound = errors.New("manager: answer not found")
)

// Manager orchestrates the question bank: it owns the scheduling and
// rating engines, tracks the user's skill rating, and runs study
// sessions. All state mutation flows through it.
type Manager struct {
	bank       *bank.Bank
	scheduler  *srs.Scheduler
	engine     *elo.Engine
	userRating float64
	events     store.EventRepo
	now        func() time.Time

	active *bank.StudySession
}

// Options configures a Manager. Zero-value engine configs fall back to
// the defaults; Bank and Events are optional.
type Options struct {
	SRS        srs.Config
	Rating     elo.Config
	Bank       *bank.Bank
	UserRating *float64 // nil means "use the engine's initial rating"
	Events     store.EventRepo
	Now        func() time.Time
}

// New builds a Manager, validating both engine configurations up front.
func New(opts Options) (*Manager, error) {
	if opts.SRS == (srs.Config{}) {
		opts.SRS = srs.DefaultConfig()
	}
	if opts.Rating == (elo.Config{}) {
		opts.Rating = elo.DefaultConfig()
	}
	scheduler, err := srs.NewScheduler(opts.SRS)
	if err != nil {
		return nil, err
	}
	engine, err := elo.NewEngine(opts.Rating)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	b := opts.Bank
	if b == nil {
		b = bank.New("qbank", now())
	}

	rating := engine.InitialRating()
	if opts.UserRating != nil {
		rating = *opts.UserRating
	}

	return &Manager{
		bank:       b,
		scheduler:  scheduler,
		engine:     engine,
		userRating: rating,
		events:     opts.Events,
		now:        now,
	}, nil
}

// Bank exposes the underlying question bank.
func (m *Manager) Bank() *bank.Bank {
	return m.bank
}

// UserRating returns the user's current skill rating.
func (m *Manager) UserRating() float64 {
	return m.userRating
}

// AddQuestion seeds a question's scheduling state and rating and adds it
// to the bank.
func (m *Manager) AddQuestion(q *bank.Question) {
	q.Schedule = m.scheduler.Seed()
	if q.Rating == 0 {
		q.Rating = m.engine.InitialRating()
	}
	m.bank.Add(q)
}

// RemoveQuestion deletes a question from the bank.
func (m *Manager) RemoveQuestion(id string) error {
	if !m.bank.Remove(id) {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	return nil
}

// warn reports a non-fatal infrastructure failure without aborting the
// study flow.
func warn(op string, err error) {
	fmt.Fprintf(os.Stderr, "warning: %s: %v\n", op, err)
}
