// Package elo maintains paired skill ratings between the user and the
// questions they answer. Each answered question is scored as a match:
// a correct answer is a win for the user, an incorrect one a win for
// the question.
package elo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates a malformed engine configuration.
// Use errors.Is to check.
var ErrInvalidConfig = errors.New("elo: invalid configuration")

// Config holds the rating parameters.
type Config struct {
	// KFactor is the maximum rating points exchanged per attempt.
	KFactor float64
	// InitialRating is the starting rating for new questions and users.
	InitialRating float64
}

// DefaultConfig returns the conventional chess-style parameters.
func DefaultConfig() Config {
	return Config{
		KFactor:       32,
		InitialRating: 1200,
	}
}

// Validate checks the configuration. Fails fast at construction.
func (c Config) Validate() error {
	if c.KFactor <= 0 || math.IsNaN(c.KFactor) || math.IsInf(c.KFactor, 0) {
		return fmt.Errorf("%w: k_factor %f must be > 0", ErrInvalidConfig, c.KFactor)
	}
	if math.IsNaN(c.InitialRating) || math.IsInf(c.InitialRating, 0) {
		return fmt.Errorf("%w: initial_rating is not finite", ErrInvalidConfig)
	}
	return nil
}

// Engine computes ELO rating updates. Stateless; ratings live with their
// owning entities and are passed in per call.
type Engine struct {
	cfg Config
}

// NewEngine creates an Engine, validating the configuration.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// InitialRating returns the configured starting rating.
func (e *Engine) InitialRating() float64 {
	return e.cfg.InitialRating
}

// ExpectedScore returns the logistic expected score for a player rated a
// against one rated b: 1 / (1 + 10^((b-a)/400)).
func (e *Engine) ExpectedScore(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// Update applies one match result. correct means the user beat the
// question. The same K factor is applied symmetrically, so rating mass is
// conserved per match. No clamping: ratings are unbounded, as in
// conventional ELO systems.
func (e *Engine) Update(userRating, questionRating float64, correct bool) (newUser, newQuestion float64) {
	expUser := e.ExpectedScore(userRating, questionRating)
	expQuestion := 1 - expUser

	var scoreUser, scoreQuestion float64
	if correct {
		scoreUser = 1
	} else {
		scoreQuestion = 1
	}

	newUser = userRating + e.cfg.KFactor*(scoreUser-expUser)
	newQuestion = questionRating + e.cfg.KFactor*(scoreQuestion-expQuestion)
	return newUser, newQuestion
}

// PredictSuccess returns the probability that a user answers a question
// correctly, from their respective ratings.
func (e *Engine) PredictSuccess(userRating, questionRating float64) float64 {
	return e.ExpectedScore(userRating, questionRating)
}

// RecommendedRange returns the symmetric rating band around the user's
// rating from which appropriately challenging questions should be drawn.
// The spread is chosen by the caller.
func (e *Engine) RecommendedRange(userRating, spread float64) (low, high float64) {
	return userRating - spread, userRating + spread
}
