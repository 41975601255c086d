// internal/assessment/engine.go

// Package assessment is the library boundary of the scoring engine. It
// dispatches one assessment's responses to the calculators matching its
// questionnaire type and assembles the combined report the caller persists
// or displays.
package assessment

import (
	"context"
	"time"

	"github.com/google/uuid"

	eiscore "assessment-engine/internal/assessment/ei-score"
	"assessment-engine/internal/assessment/progress"
	smsmaturity "assessment-engine/internal/assessment/sms-maturity"
	"assessment-engine/internal/assessment/submission"
	commonerrors "assessment-engine/internal/common/errors"
	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/common/metrics"
	"assessment-engine/internal/common/observability"
	"assessment-engine/internal/models"
	"assessment-engine/internal/taxonomy"
)

// Report is the combined evaluation result for one assessment. Exactly one of
// EIScore / SMSMaturity is set, matching the questionnaire type.
type Report struct {
	ReportID          string                       `json:"reportId"`
	AssessmentID      string                       `json:"assessmentId,omitempty"`
	QuestionnaireType models.QuestionnaireType     `json:"questionnaireType"`
	GeneratedAt       time.Time                    `json:"generatedAt"`
	EIScore           *eiscore.Result              `json:"eiScore,omitempty"`
	SMSMaturity       *smsmaturity.Result          `json:"smsMaturity,omitempty"`
	Progress          *progress.AssessmentProgress `json:"progress"`
	Submission        *submission.Result           `json:"submission"`
}

// Engine runs the calculators. It is stateless and safe for concurrent use;
// every Evaluate call is a pure function of its input.
type Engine struct {
	logger logger.Logger
	obs    *observability.Observability
}

// New verifies the fixed methodology tables before returning an engine.
// A verification failure is a configuration error and the engine refuses to
// operate.
func New(log logger.Logger, obs *observability.Observability) (*Engine, error) {
	if err := taxonomy.Verify(); err != nil {
		return nil, err
	}
	return &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "assessment-engine"}),
		obs:    obs,
	}, nil
}

// Evaluate scores one assessment: the methodology calculator, the progress
// tracker and the submission validator, in one report.
func (e *Engine) Evaluate(ctx context.Context, input *models.AssessmentInput) (*Report, error) {
	start := time.Now()

	switch input.QuestionnaireType {
	case models.QuestionnaireUSOAP, models.QuestionnaireSMS:
	default:
		return nil, commonerrors.NewUnknownQuestionnaireError(string(input.QuestionnaireType))
	}

	report := &Report{
		ReportID:          uuid.NewString(),
		AssessmentID:      input.AssessmentID,
		QuestionnaireType: input.QuestionnaireType,
		GeneratedAt:       time.Now().UTC(),
	}

	switch input.QuestionnaireType {
	case models.QuestionnaireUSOAP:
		report.EIScore = eiscore.Calculate(input.Responses)
	case models.QuestionnaireSMS:
		report.SMSMaturity = smsmaturity.Calculate(input.Responses)
	}

	report.Progress = progress.Track(input.Responses, input.TotalQuestions, input.QuestionnaireType)
	report.Submission = submission.Validate(input.Responses, input.TotalQuestions, input.QuestionnaireType)

	e.record(ctx, input, report, time.Since(start))

	return report, nil
}

func (e *Engine) record(ctx context.Context, input *models.AssessmentInput, report *Report, elapsed time.Duration) {
	qt := string(input.QuestionnaireType)

	metrics.AssessmentsScored.WithLabelValues(qt).Inc()
	metrics.ScoringDuration.WithLabelValues(qt).Observe(elapsed.Seconds())

	outcome := "blocked"
	if report.Submission.CanSubmit {
		outcome = "eligible"
	}
	metrics.SubmissionChecks.WithLabelValues(qt, outcome).Inc()

	if e.obs != nil {
		e.obs.RecordEvaluation(ctx, qt)
		e.obs.RecordEvaluationDuration(ctx, elapsed, qt)
	}

	e.logger.Info("assessment evaluated", map[string]interface{}{
		"assessmentId":      input.AssessmentID,
		"questionnaireType": qt,
		"totalQuestions":    input.TotalQuestions,
		"responses":         len(input.Responses),
		"percentAnswered":   report.Progress.PercentAnswered,
		"canSubmit":         report.Submission.CanSubmit,
		"durationMs":        elapsed.Milliseconds(),
	})
}
