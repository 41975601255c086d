// internal/assessment/ei-score/calculator.go

// Package eiscore implements USOAP CMA Effective-Implementation scoring:
// the percentage of applicable Protocol Questions rated satisfactory,
// broken down by audit area and critical element.
package eiscore

import (
	"sort"

	"assessment-engine/internal/assessment/scorecalc"
	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

type counts struct {
	satisfactory    int
	notSatisfactory int
	notApplicable   int
	notReviewed     int
}

func (c *counts) add(value models.ResponseValue) {
	switch value {
	case models.ResponseSatisfactory:
		c.satisfactory++
	case models.ResponseNotSatisfactory:
		c.notSatisfactory++
	case models.ResponseNotApplicable:
		c.notApplicable++
	case models.ResponseNotReviewed:
		c.notReviewed++
	}
}

func isKnownValue(value models.ResponseValue) bool {
	switch value {
	case models.ResponseSatisfactory, models.ResponseNotSatisfactory,
		models.ResponseNotApplicable, models.ResponseNotReviewed:
		return true
	}
	return false
}

// Calculate computes the EI score over the given USOAP responses. It never
// fails: malformed responses are excluded, an assessment with no applicable
// questions scores 0.
func Calculate(responses []models.ResponseRecord) *Result {
	var global counts
	byArea := make(map[string]*counts)
	byElement := make(map[string]*counts)
	var priority counts
	hasPriority := false

	for i := range responses {
		r := &responses[i]

		// Unclassified values are excluded from every bucket.
		if !isKnownValue(r.ResponseValue) {
			continue
		}
		global.add(r.ResponseValue)

		if _, ok := taxonomy.AuditAreas[r.AuditArea]; ok {
			c := byArea[r.AuditArea]
			if c == nil {
				c = &counts{}
				byArea[r.AuditArea] = c
			}
			c.add(r.ResponseValue)
		}

		if _, ok := taxonomy.CriticalElements[r.CriticalElement]; ok {
			c := byElement[r.CriticalElement]
			if c == nil {
				c = &counts{}
				byElement[r.CriticalElement] = c
			}
			c.add(r.ResponseValue)
		}

		if r.IsPriorityPQ {
			hasPriority = true
			priority.add(r.ResponseValue)
		}
	}

	result := &Result{
		OverallEI:            scorecalc.EffectiveImplementation(global.satisfactory, global.notSatisfactory),
		AreaScores:           areaScores(byArea),
		ElementScores:        elementScores(byElement),
		SatisfactoryCount:    global.satisfactory,
		NotSatisfactoryCount: global.notSatisfactory,
		NotApplicableCount:   global.notApplicable,
		NotReviewedCount:     global.notReviewed,
		TotalApplicable:      global.satisfactory + global.notSatisfactory,
	}

	if hasPriority {
		score := scorecalc.EffectiveImplementation(priority.satisfactory, priority.notSatisfactory)
		result.PriorityPQScore = &score
	}

	return result
}

func areaScores(byArea map[string]*counts) []AreaScore {
	scores := make([]AreaScore, 0, len(byArea))
	for area, c := range byArea {
		scores = append(scores, AreaScore{
			AuditArea:       area,
			EIScore:         scorecalc.EffectiveImplementation(c.satisfactory, c.notSatisfactory),
			Satisfactory:    c.satisfactory,
			NotSatisfactory: c.notSatisfactory,
			NotApplicable:   c.notApplicable,
			Total:           c.satisfactory + c.notSatisfactory + c.notApplicable + c.notReviewed,
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].AuditArea < scores[j].AuditArea })
	return scores
}

func elementScores(byElement map[string]*counts) []ElementScore {
	scores := make([]ElementScore, 0, len(byElement))
	for element, c := range byElement {
		scores = append(scores, ElementScore{
			CriticalElement: element,
			EIScore:         scorecalc.EffectiveImplementation(c.satisfactory, c.notSatisfactory),
			Satisfactory:    c.satisfactory,
			NotSatisfactory: c.notSatisfactory,
			Total:           c.satisfactory + c.notSatisfactory,
		})
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].CriticalElement < scores[j].CriticalElement })
	return scores
}
