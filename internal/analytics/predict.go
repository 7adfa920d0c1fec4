package analytics

import "math"

// weeklyImprovementRate is the assumed accuracy gain per week of regular
// practice, as a fraction. Learning curves are not linear; this is a
// deliberate simplification.
const weeklyImprovementRate = 0.02

// Timeline predicts how long reaching a target accuracy will take.
type Timeline struct {
	Achieved        bool
	WeeksToTarget   int
	TargetAccuracy  float64
	CurrentAccuracy float64
	SessionsPerWeek int
}

// MasteryTimeline estimates weeks to reach targetAccuracy from
// currentAccuracy (both fractions), given a study cadence. Infrequent
// practice slows the estimate and intensive practice speeds it up.
func MasteryTimeline(currentAccuracy, targetAccuracy float64, sessionsPerWeek int) Timeline {
	t := Timeline{
		TargetAccuracy:  targetAccuracy,
		CurrentAccuracy: currentAccuracy,
		SessionsPerWeek: sessionsPerWeek,
	}
	if sessionsPerWeek < 3 {
		t.SessionsPerWeek = 3
	}
	if currentAccuracy >= targetAccuracy {
		t.Achieved = true
		return t
	}

	weeks := (targetAccuracy - currentAccuracy) / weeklyImprovementRate
	if sessionsPerWeek < 3 {
		weeks *= 1.5
	} else if sessionsPerWeek > 7 {
		weeks *= 0.8
	}
	t.WeeksToTarget = int(math.Ceil(weeks))
	return t
}

// RetentionProbability estimates how much is still retained after
// daysSinceLastStudy, following an exponential forgetting curve whose
// stability grows with the original accuracy (a fraction). Floors at 10%.
func RetentionProbability(daysSinceLastStudy, originalAccuracy float64) float64 {
	if daysSinceLastStudy <= 0 {
		return originalAccuracy
	}
	stability := originalAccuracy * 10
	if stability <= 0 {
		return 0.1
	}
	retention := math.Exp(-daysSinceLastStudy / stability)
	return math.Max(0.1, retention)
}
