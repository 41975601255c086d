// internal/assessment/engine_test.go
package assessment

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/common/logger"
	"assessment-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestEngine(t *testing.T) *Engine {
	engine, err := New(logger.NewTestLogger(t), nil)
	require.NoError(t, err)
	return engine
}

func createUSOAPInput() *models.AssessmentInput {
	return &models.AssessmentInput{
		AssessmentID:      "assessment-42",
		QuestionnaireType: models.QuestionnaireUSOAP,
		TotalQuestions:    3,
		Responses: []models.ResponseRecord{
			{QuestionID: "pq-1", AuditArea: "LEG", CriticalElement: "CE-1", ResponseValue: models.ResponseSatisfactory, IsComplete: true},
			{QuestionID: "pq-2", AuditArea: "LEG", CriticalElement: "CE-2", ResponseValue: models.ResponseNotSatisfactory, IsComplete: true},
			{QuestionID: "pq-3", AuditArea: "ORG", CriticalElement: "CE-1", ResponseValue: models.ResponseNotApplicable, IsComplete: true},
		},
	}
}

func createSMSInput() *models.AssessmentInput {
	return &models.AssessmentInput{
		AssessmentID:      "assessment-43",
		QuestionnaireType: models.QuestionnaireSMS,
		TotalQuestions:    2,
		Responses: []models.ResponseRecord{
			{QuestionID: "sms-1", SMSComponent: "POLICY", StudyArea: "SA-01", MaturityLevel: models.MaturityC, IsComplete: true},
			{QuestionID: "sms-2", SMSComponent: "PROMOTION", StudyArea: "SA-12", MaturityLevel: models.MaturityD, IsComplete: true},
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestEngine_Evaluate_USOAP(t *testing.T) {
	engine := createTestEngine(t)

	report, err := engine.Evaluate(context.Background(), createUSOAPInput())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ReportID)
	assert.Equal(t, "assessment-42", report.AssessmentID)
	assert.Equal(t, models.QuestionnaireUSOAP, report.QuestionnaireType)

	require.NotNil(t, report.EIScore)
	assert.Nil(t, report.SMSMaturity)
	assert.Equal(t, 50.0, report.EIScore.OverallEI)

	require.NotNil(t, report.Progress)
	assert.Equal(t, 100, report.Progress.PercentAnswered)

	require.NotNil(t, report.Submission)
	assert.True(t, report.Submission.CanSubmit)
}

func TestEngine_Evaluate_SMS(t *testing.T) {
	engine := createTestEngine(t)

	report, err := engine.Evaluate(context.Background(), createSMSInput())
	require.NoError(t, err)

	require.NotNil(t, report.SMSMaturity)
	assert.Nil(t, report.EIScore)
	assert.Equal(t, models.MaturityC, report.SMSMaturity.OverallLevel)
	assert.True(t, report.Submission.CanSubmit)
}

func TestEngine_Evaluate_UnknownQuestionnaireType(t *testing.T) {
	engine := createTestEngine(t)

	_, err := engine.Evaluate(context.Background(), &models.AssessmentInput{
		QuestionnaireType: "ICAO_ANNEX_19",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNKNOWN_QUESTIONNAIRE_TYPE")
}

func TestEngine_Evaluate_Deterministic(t *testing.T) {
	engine := createTestEngine(t)
	input := createUSOAPInput()

	first, err := engine.Evaluate(context.Background(), input)
	require.NoError(t, err)
	second, err := engine.Evaluate(context.Background(), input)
	require.NoError(t, err)

	// Report envelope fields differ per invocation; the computed payloads
	// must be byte-identical.
	firstJSON, err := json.Marshal(struct {
		EI         interface{}
		Progress   interface{}
		Submission interface{}
	}{first.EIScore, first.Progress, first.Submission})
	require.NoError(t, err)

	secondJSON, err := json.Marshal(struct {
		EI         interface{}
		Progress   interface{}
		Submission interface{}
	}{second.EIScore, second.Progress, second.Submission})
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestEngine_Evaluate_DoesNotMutateInput(t *testing.T) {
	engine := createTestEngine(t)
	input := createUSOAPInput()

	snapshot, err := json.Marshal(input)
	require.NoError(t, err)

	_, err = engine.Evaluate(context.Background(), input)
	require.NoError(t, err)

	after, err := json.Marshal(input)
	require.NoError(t, err)
	assert.Equal(t, snapshot, after)
}
