// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AssessmentsScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessments_scored_total",
			Help: "Total number of assessments scored by questionnaire type",
		},
		[]string{"questionnaire_type"},
	)

	ScoringDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "assessment_scoring_duration_seconds",
			Help: "Duration of one full assessment evaluation in seconds",
		},
		[]string{"questionnaire_type"},
	)

	SubmissionChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assessment_submission_checks_total",
			Help: "Total number of submission gate checks by outcome",
		},
		[]string{"questionnaire_type", "outcome"},
	)
)
