// internal/assessment/scorecalc/scorecalc.go

// Package scorecalc is the single implementation of the scoring arithmetic
// shared by the calculators and the progress tracker. The EI formula in
// particular must never be duplicated: the score surface and the progress
// surface both call EffectiveImplementation so the two cannot disagree.
package scorecalc

import (
	"math"

	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

// Round2 rounds to 2 decimal places, half away from zero. All reported
// percentages and averages go through this so score comparisons are stable.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Percent returns part/whole as a percentage rounded to 2 decimal places.
// A zero denominator yields 0, never NaN.
func Percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return Round2(float64(part) / float64(whole) * 100)
}

// PercentInt returns part/whole as a whole-number percentage, 0 when the
// denominator is 0.
func PercentInt(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// EffectiveImplementation computes the USOAP CMA EI percentage over the
// applicable responses only. NOT_APPLICABLE and NOT_REVIEWED must already be
// excluded from both counts; an empty applicable set scores 0.
func EffectiveImplementation(satisfactory, notSatisfactory int) float64 {
	return Percent(satisfactory, satisfactory+notSatisfactory)
}

// ScoreForLevel maps a maturity letter to its numeric score (A=1..E=5).
// Unknown letters report ok=false and must be excluded by callers.
func ScoreForLevel(level models.MaturityLevel) (int, bool) {
	score, ok := taxonomy.MaturityScores[level]
	return score, ok
}

// AverageMaturity returns the mean of the given numeric scores rounded to 2
// decimal places, 0 for an empty set.
func AverageMaturity(scoreSum, answered int) float64 {
	if answered == 0 {
		return 0
	}
	return Round2(float64(scoreSum) / float64(answered))
}

// LevelForScore buckets a numeric maturity score into a letter level using
// the fixed thresholds (>=4.5 E, >=3.5 D, >=2.5 C, >=1.5 B, else A).
func LevelForScore(score float64) models.MaturityLevel {
	for _, t := range taxonomy.LevelThresholds {
		if score >= t.Min {
			return t.Level
		}
	}
	return models.MaturityA
}
