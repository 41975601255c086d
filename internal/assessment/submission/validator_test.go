// internal/assessment/submission/validator_test.go
package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assessment-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createUSOAPResponse(area string, value models.ResponseValue, withEvidence bool) models.ResponseRecord {
	return models.ResponseRecord{
		QuestionID:    "pq-" + area,
		AuditArea:     area,
		ResponseValue: value,
		IsComplete:    withEvidence,
	}
}

func createSMSResponse(component string, level models.MaturityLevel, withEvidence bool) models.ResponseRecord {
	return models.ResponseRecord{
		QuestionID:    "sms-" + component,
		SMSComponent:  component,
		MaturityLevel: level,
		IsComplete:    withEvidence,
	}
}

func usoapSet(area string, n int, value models.ResponseValue, withEvidence bool) []models.ResponseRecord {
	responses := make([]models.ResponseRecord, n)
	for i := range responses {
		responses[i] = createUSOAPResponse(area, value, withEvidence)
	}
	return responses
}

// ==========================
// Core Functionality Tests
// ==========================

func TestValidate_OneNotReviewedBlocksSubmission(t *testing.T) {
	responses := append(
		usoapSet("LEG", 99, models.ResponseSatisfactory, true),
		createUSOAPResponse("LEG", models.ResponseNotReviewed, false))

	result := Validate(responses, 100, models.QuestionnaireUSOAP)

	assert.False(t, result.CanSubmit)
	require.NotEmpty(t, result.Blockers)
	assert.Contains(t, result.Blockers, "1 of 100 questions remain unanswered")
	assert.Contains(t, result.Blockers, "1 responses are still marked NOT_REVIEWED")
	assert.Contains(t, result.Blockers, "audit area LEG: 1 of 100 questions unanswered")
}

func TestValidate_EvidenceWarningDoesNotBlock(t *testing.T) {
	// 100% answered, 60% evidence: eligible with one warning.
	responses := append(
		usoapSet("LEG", 6, models.ResponseSatisfactory, true),
		usoapSet("ORG", 4, models.ResponseSatisfactory, false)...)

	result := Validate(responses, 10, models.QuestionnaireUSOAP)

	assert.True(t, result.CanSubmit)
	assert.Empty(t, result.Blockers)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "60.00%")
	assert.Contains(t, result.Warnings[0], "80%")
}

func TestValidate_FullyComplete(t *testing.T) {
	responses := append(
		usoapSet("LEG", 5, models.ResponseSatisfactory, true),
		usoapSet("ANS", 5, models.ResponseNotApplicable, true)...)

	result := Validate(responses, 10, models.QuestionnaireUSOAP)

	assert.True(t, result.CanSubmit)
	assert.Empty(t, result.Blockers)
	assert.Empty(t, result.Warnings)
}

func TestValidate_CategoryBlockerNamesGroup(t *testing.T) {
	// The global percentage can look fine while a single group is incomplete
	// when totalQuestions undercounts; the group blocker surfaces which one.
	responses := append(
		usoapSet("LEG", 4, models.ResponseSatisfactory, true),
		createUSOAPResponse("ORG", models.ResponseNotReviewed, false))

	result := Validate(responses, 5, models.QuestionnaireUSOAP)

	assert.False(t, result.CanSubmit)
	assert.Contains(t, result.Blockers, "audit area ORG: 1 of 1 questions unanswered")
}

func TestValidate_SMSGates(t *testing.T) {
	t.Run("unanswered component blocks", func(t *testing.T) {
		responses := []models.ResponseRecord{
			createSMSResponse("POLICY", models.MaturityC, true),
			createSMSResponse("RISK_MANAGEMENT", "", false),
		}

		result := Validate(responses, 2, models.QuestionnaireSMS)
		assert.False(t, result.CanSubmit)
		assert.Contains(t, result.Blockers, "1 of 2 questions remain unanswered")
		assert.Contains(t, result.Blockers, "component RISK_MANAGEMENT: 1 of 1 questions unanswered")
	})

	t.Run("75 percent evidence floor", func(t *testing.T) {
		responses := []models.ResponseRecord{
			createSMSResponse("POLICY", models.MaturityC, true),
			createSMSResponse("RISK_MANAGEMENT", models.MaturityC, true),
			createSMSResponse("ASSURANCE", models.MaturityC, true),
			createSMSResponse("PROMOTION", models.MaturityC, false),
		}

		// Exactly at the floor: no warning.
		result := Validate(responses, 4, models.QuestionnaireSMS)
		assert.True(t, result.CanSubmit)
		assert.Empty(t, result.Warnings)

		// One short of the floor: warning, still eligible.
		responses[2].IsComplete = false
		result = Validate(responses, 4, models.QuestionnaireSMS)
		assert.True(t, result.CanSubmit)
		require.Len(t, result.Warnings, 1)
		assert.Contains(t, result.Warnings[0], "75%")
	})
}

// ==========================
// Edge Case Tests
// ==========================

func TestValidate_MissingResponsesCountAsUnanswered(t *testing.T) {
	// Only 3 response records exist for a 5-question assessment.
	responses := usoapSet("LEG", 3, models.ResponseSatisfactory, true)

	result := Validate(responses, 5, models.QuestionnaireUSOAP)
	assert.False(t, result.CanSubmit)
	assert.Contains(t, result.Blockers, "2 of 5 questions remain unanswered")
}

func TestValidate_WarningsNeverAffectEligibility(t *testing.T) {
	responses := usoapSet("LEG", 4, models.ResponseSatisfactory, false)

	result := Validate(responses, 4, models.QuestionnaireUSOAP)
	assert.True(t, result.CanSubmit)
	assert.NotEmpty(t, result.Warnings)
}
