package srs

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for the srs package.
// Use errors.Is to check: errors.Is(err, srs.ErrInvalidState)
var (
	ErrInvalidConfig = errors.New("srs: invalid configuration")
	ErrInvalidState  = errors.New("srs: invalid scheduling state")
)

// Config holds the SM-2 scheduling parameters. All fields are required;
// DefaultConfig returns the recommended values.
type Config struct {
	MinEaseFactor     float64
	MaxEaseFactor     float64
	InitialEaseFactor float64
	EaseBonus         float64
	EasePenalty       float64
	MinInterval       float64 // days
	MaxInterval       float64 // days
}

// DefaultConfig returns the recommended scheduling parameters.
func DefaultConfig() Config {
	return Config{
		MinEaseFactor:     1.3,
		MaxEaseFactor:     3.0,
		InitialEaseFactor: 2.5,
		EaseBonus:         0.15,
		EasePenalty:       0.2,
		MinInterval:       1.0,
		MaxInterval:       365.0,
	}
}

// Validate checks that the configured bounds are coherent.
// A bad Config is a programming error; fail fast at construction.
func (c Config) Validate() error {
	for name, v := range map[string]float64{
		"min_ease_factor":     c.MinEaseFactor,
		"max_ease_factor":     c.MaxEaseFactor,
		"initial_ease_factor": c.InitialEaseFactor,
		"ease_bonus":          c.EaseBonus,
		"ease_penalty":        c.EasePenalty,
		"min_interval":        c.MinInterval,
		"max_interval":        c.MaxInterval,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfig, name)
		}
	}
	if c.MinEaseFactor > c.MaxEaseFactor {
		return fmt.Errorf("%w: min_ease_factor %.2f > max_ease_factor %.2f",
			ErrInvalidConfig, c.MinEaseFactor, c.MaxEaseFactor)
	}
	if c.MinInterval > c.MaxInterval {
		return fmt.Errorf("%w: min_interval %.1f > max_interval %.1f",
			ErrInvalidConfig, c.MinInterval, c.MaxInterval)
	}
	return nil
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
