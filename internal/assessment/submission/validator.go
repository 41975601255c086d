// internal/assessment/submission/validator.go

// Package submission applies the methodology-specific gates that decide
// whether an assessment may move to SUBMITTED: every question answered, no
// NOT_REVIEWED left, every category complete, and an evidence-coverage
// warning floor.
package submission

import (
	"fmt"
	"sort"

	"assessment-engine/internal/assessment/scorecalc"
	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

type groupCount struct {
	total    int
	answered int
}

// Validate decides submit-eligibility from the raw responses. It never fails;
// a malformed response simply does not count as answered, which surfaces as a
// blocker rather than an error.
func Validate(responses []models.ResponseRecord, totalQuestions int, qt models.QuestionnaireType) *Result {
	var answered, withEvidence, notReviewed int
	groups := make(map[string]*groupCount)

	for i := range responses {
		r := &responses[i]

		isAnswered := r.IsAnswered(qt)
		if isAnswered {
			answered++
			if r.HasEvidence() {
				withEvidence++
			}
		}
		if qt == models.QuestionnaireUSOAP && r.ResponseValue == models.ResponseNotReviewed {
			notReviewed++
		}

		key := groupKey(r, qt)
		if key == "" {
			continue
		}
		g := groups[key]
		if g == nil {
			g = &groupCount{}
			groups[key] = g
		}
		g.total++
		if isAnswered {
			g.answered++
		}
	}

	blockers := []string{}
	warnings := []string{}

	if answered < totalQuestions {
		remaining := totalQuestions - answered
		blockers = append(blockers, fmt.Sprintf(
			"%d of %d questions remain unanswered", remaining, totalQuestions))
	}

	if notReviewed > 0 {
		blockers = append(blockers, fmt.Sprintf(
			"%d responses are still marked NOT_REVIEWED", notReviewed))
	}

	// Category-level incompleteness is reported per group so the caller can
	// surface exactly which group is holding up submission.
	for _, key := range sortedKeys(groups) {
		g := groups[key]
		if g.answered < g.total {
			blockers = append(blockers, fmt.Sprintf(
				"%s %s: %d of %d questions unanswered",
				groupNoun(qt), key, g.total-g.answered, g.total))
		}
	}

	coverage := scorecalc.Percent(withEvidence, totalQuestions)
	if floor := evidenceFloor(qt); coverage < floor {
		warnings = append(warnings, fmt.Sprintf(
			"evidence coverage %.2f%% is below the recommended %.0f%%", coverage, floor))
	}

	return &Result{
		CanSubmit: len(blockers) == 0,
		Blockers:  blockers,
		Warnings:  warnings,
	}
}

func groupKey(r *models.ResponseRecord, qt models.QuestionnaireType) string {
	switch qt {
	case models.QuestionnaireUSOAP:
		if _, ok := taxonomy.AuditAreas[r.AuditArea]; ok {
			return r.AuditArea
		}
	case models.QuestionnaireSMS:
		if _, ok := taxonomy.SMSComponents[r.SMSComponent]; ok {
			return r.SMSComponent
		}
	}
	return ""
}

func groupNoun(qt models.QuestionnaireType) string {
	if qt == models.QuestionnaireSMS {
		return "component"
	}
	return "audit area"
}

func evidenceFloor(qt models.QuestionnaireType) float64 {
	if qt == models.QuestionnaireSMS {
		return SMSEvidenceFloor
	}
	return USOAPEvidenceFloor
}

func sortedKeys(groups map[string]*groupCount) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
