// internal/assessment/progress/tracker.go

// Package progress computes completion metrics for one assessment: answered,
// completed and skipped counts overall, per category and per element.
package progress

import (
	"sort"
	"time"

	"assessment-engine/internal/assessment/scorecalc"
	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

const distributionNullKey = "null"

type elementBucket struct {
	total            int
	answered         int
	completed        int
	satisfactory     int
	notSatisfactory  int
	notApplicable    int
	maturitySum      int
	maturityAnswered int
	distribution     map[string]int
}

// Track computes the progress picture over all responses of one assessment.
// Responses are bucketed in one pass; the per-area EI score reuses the shared
// formula so progress and scoring can never disagree on it.
func Track(responses []models.ResponseRecord, totalQuestions int, qt models.QuestionnaireType) *AssessmentProgress {
	var answered, completed, skipped int
	var lastActivity *time.Time
	buckets := make(map[string]*elementBucket)

	for i := range responses {
		r := &responses[i]

		isAnswered := r.IsAnswered(qt)
		if isAnswered {
			answered++
			if r.HasEvidence() {
				completed++
			}
		}
		if qt == models.QuestionnaireUSOAP && r.ResponseValue == models.ResponseNotApplicable {
			skipped++
		}
		if r.RespondedAt != nil && (lastActivity == nil || r.RespondedAt.After(*lastActivity)) {
			t := *r.RespondedAt
			lastActivity = &t
		}

		key := categoryKey(r, qt)
		if key == "" {
			continue
		}
		b := buckets[key]
		if b == nil {
			b = &elementBucket{distribution: newDistribution()}
			buckets[key] = b
		}
		b.total++
		if isAnswered {
			b.answered++
			if r.HasEvidence() {
				b.completed++
			}
		}

		switch qt {
		case models.QuestionnaireUSOAP:
			switch r.ResponseValue {
			case models.ResponseSatisfactory:
				b.satisfactory++
			case models.ResponseNotSatisfactory:
				b.notSatisfactory++
			case models.ResponseNotApplicable:
				b.notApplicable++
			}
		case models.QuestionnaireSMS:
			if score, ok := scorecalc.ScoreForLevel(r.MaturityLevel); ok {
				b.maturitySum += score
				b.maturityAnswered++
				b.distribution[string(r.MaturityLevel)]++
			} else {
				b.distribution[distributionNullKey]++
			}
		}
	}

	result := &AssessmentProgress{
		TotalQuestions:     totalQuestions,
		AnsweredQuestions:  answered,
		CompletedQuestions: completed,
		SkippedQuestions:   skipped,
		PercentComplete:    scorecalc.PercentInt(completed, totalQuestions),
		PercentAnswered:    scorecalc.PercentInt(answered, totalQuestions),
		Categories:         categoryProgress(buckets),
		LastActivityAt:     lastActivity,
	}

	switch qt {
	case models.QuestionnaireUSOAP:
		result.USOAPElements = usoapElements(buckets)
	case models.QuestionnaireSMS:
		result.SMSElements = smsElements(buckets)
	}

	return result
}

// categoryKey returns the grouping code for a response, or "" when the
// response carries no known classification for the methodology.
func categoryKey(r *models.ResponseRecord, qt models.QuestionnaireType) string {
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

func newDistribution() map[string]int {
	d := make(map[string]int, len(taxonomy.MaturityLevelOrder)+1)
	for _, level := range taxonomy.MaturityLevelOrder {
		d[string(level)] = 0
	}
	d[distributionNullKey] = 0
	return d
}

func categoryProgress(buckets map[string]*elementBucket) []CategoryProgress {
	categories := make([]CategoryProgress, 0, len(buckets))
	for code, b := range buckets {
		categories = append(categories, CategoryProgress{
			Category:        code,
			Total:           b.total,
			Answered:        b.answered,
			Completed:       b.completed,
			PercentComplete: scorecalc.PercentInt(b.completed, b.total),
		})
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })
	return categories
}

func usoapElements(buckets map[string]*elementBucket) []USOAPElementProgress {
	elements := make([]USOAPElementProgress, 0, len(buckets))
	for area, b := range buckets {
		elements = append(elements, USOAPElementProgress{
			AuditArea:       area,
			Total:           b.total,
			Answered:        b.answered,
			Satisfactory:    b.satisfactory,
			NotSatisfactory: b.notSatisfactory,
			NotApplicable:   b.notApplicable,
			EIScore:         scorecalc.EffectiveImplementation(b.satisfactory, b.notSatisfactory),
		})
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i].AuditArea < elements[j].AuditArea })
	return elements
}

// smsElements reports components in the fixed canonical order, not
// alphabetically.
func smsElements(buckets map[string]*elementBucket) []SMSElementProgress {
	elements := make([]SMSElementProgress, 0, len(buckets))
	for _, code := range taxonomy.ComponentOrder {
		b := buckets[code]
		if b == nil {
			continue
		}
		avg := scorecalc.AverageMaturity(b.maturitySum, b.maturityAnswered)
		e := SMSElementProgress{
			Component:            code,
			Total:                b.total,
			Answered:             b.answered,
			MaturityDistribution: b.distribution,
			AverageMaturity:      avg,
		}
		if b.maturityAnswered > 0 {
			e.Level = scorecalc.LevelForScore(avg)
		}
		elements = append(elements, e)
	}
	return elements
}
