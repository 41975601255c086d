// internal/assessment/sms-maturity/calculator.go

// Package smsmaturity implements CANSO Standard of Excellence maturity
// scoring: per-component averages bucketed into letter levels, a weighted
// overall score renormalized over the components actually answered, and the
// weakest-link overall level.
package smsmaturity

import (
	"math"
	"sort"

	"assessment-engine/internal/assessment/scorecalc"
	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

const distributionNullKey = "null"

type bucket struct {
	scoreSum int
	answered int
	total    int
}

// Calculate computes the maturity score over the given SMS responses.
// Responses without a valid maturity level count toward totals and the null
// distribution bucket but are excluded from every average.
func Calculate(responses []models.ResponseRecord) *Result {
	byComponent := make(map[string]*bucket)
	byStudyArea := make(map[string]*bucket)
	distribution := newDistribution()

	for i := range responses {
		r := &responses[i]
		score, answered := scorecalc.ScoreForLevel(r.MaturityLevel)

		if answered {
			distribution[string(r.MaturityLevel)]++
		} else {
			distribution[distributionNullKey]++
		}

		if _, ok := taxonomy.SMSComponents[r.SMSComponent]; ok {
			fill(byComponent, r.SMSComponent, score, answered)
		}
		if _, ok := taxonomy.StudyAreas[r.StudyArea]; ok {
			fill(byStudyArea, r.StudyArea, score, answered)
		}
	}

	componentScores, gapAreas := componentBreakdown(byComponent)

	result := &Result{
		ComponentScores:      componentScores,
		StudyAreaScores:      studyAreaBreakdown(byStudyArea),
		MaturityDistribution: distribution,
		GapAreas:             gapAreas,
	}

	// Roll up only the components that have at least one answered question;
	// weights are renormalized so a partially scoped assessment is not
	// penalized for components it has not started.
	var weightedSum, activeWeight float64
	for _, cs := range componentScores {
		if cs.Answered == 0 {
			continue
		}
		weightedSum += cs.WeightedScore
		activeWeight += cs.Weight
	}
	if activeWeight > 0 {
		result.OverallScore = scorecalc.Round2(weightedSum / activeWeight)
	}
	result.OverallPercentage = overallPercentage(result.OverallScore)
	result.OverallLevel = lowestLevel(componentScores)

	return result
}

func newDistribution() map[string]int {
	d := make(map[string]int, len(taxonomy.MaturityLevelOrder)+1)
	for _, level := range taxonomy.MaturityLevelOrder {
		d[string(level)] = 0
	}
	d[distributionNullKey] = 0
	return d
}

func fill(buckets map[string]*bucket, key string, score int, answered bool) {
	b := buckets[key]
	if b == nil {
		b = &bucket{}
		buckets[key] = b
	}
	b.total++
	if answered {
		b.scoreSum += score
		b.answered++
	}
}

func componentBreakdown(byComponent map[string]*bucket) ([]ComponentScore, []string) {
	scores := make([]ComponentScore, 0, len(byComponent))
	gapAreas := []string{}

	// Canonical CANSO component order, not alphabetical.
	for _, code := range taxonomy.ComponentOrder {
		b := byComponent[code]
		if b == nil {
			continue
		}
		component := taxonomy.SMSComponents[code]
		avg := scorecalc.AverageMaturity(b.scoreSum, b.answered)
		cs := ComponentScore{
			Component:     code,
			AverageScore:  avg,
			Weight:        component.Weight,
			WeightedScore: scorecalc.Round2(avg * component.Weight),
			Answered:      b.answered,
			Total:         b.total,
		}
		if b.answered > 0 {
			cs.Level = scorecalc.LevelForScore(avg)
			// Below "Managed": flag for remediation focus.
			if cs.Level == models.MaturityA || cs.Level == models.MaturityB {
				gapAreas = append(gapAreas, code)
			}
		}
		scores = append(scores, cs)
	}

	return scores, gapAreas
}

func studyAreaBreakdown(byStudyArea map[string]*bucket) []StudyAreaScore {
	scores := make([]StudyAreaScore, 0, len(byStudyArea))
	for code, b := range byStudyArea {
		sa := taxonomy.StudyAreas[code]
		avg := scorecalc.AverageMaturity(b.scoreSum, b.answered)
		score := StudyAreaScore{
			StudyArea:    code,
			Component:    sa.Component,
			AverageScore: avg,
			Answered:     b.answered,
		}
		if b.answered > 0 {
			score.Level = scorecalc.LevelForScore(avg)
		}
		scores = append(scores, score)
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].StudyArea < scores[j].StudyArea })
	return scores
}

// lowestLevel scans levels from A upward and returns the first one held by a
// component with at least one answered question. Components that have not
// been started contribute nothing; they must not drag the overall level to A.
func lowestLevel(componentScores []ComponentScore) models.MaturityLevel {
	present := make(map[models.MaturityLevel]bool, len(componentScores))
	for _, cs := range componentScores {
		if cs.Answered > 0 {
			present[cs.Level] = true
		}
	}
	for _, level := range taxonomy.MaturityLevelOrder {
		if present[level] {
			return level
		}
	}
	return ""
}

func overallPercentage(overallScore float64) int {
	return int(math.Round(overallScore / 5 * 100))
}
