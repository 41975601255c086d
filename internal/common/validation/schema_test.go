package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAssessmentInput(t *testing.T) {
	tests := []struct {
		name     string
		document string
		valid    bool
	}{
		{
			name: "valid USOAP document",
			document: `{
				"assessmentId": "a-1",
				"questionnaireType": "ANS_USOAP_CMA",
				"totalQuestions": 2,
				"responses": [
					{"questionId": "pq-1", "auditArea": "LEG", "responseValue": "SATISFACTORY", "isComplete": true},
					{"questionId": "pq-2", "auditArea": "ORG", "responseValue": "NOT_REVIEWED", "isComplete": false}
				]
			}`,
			valid: true,
		},
		{
			name: "valid SMS document with empty responses",
			document: `{
				"questionnaireType": "SMS_CANSO_SOE",
				"totalQuestions": 0,
				"responses": []
			}`,
			valid: true,
		},
		{
			name:     "missing questionnaire type",
			document: `{"totalQuestions": 1, "responses": []}`,
			valid:    false,
		},
		{
			name: "unknown questionnaire type",
			document: `{
				"questionnaireType": "ISO_9001",
				"totalQuestions": 1,
				"responses": []
			}`,
			valid: false,
		},
		{
			name: "negative total questions",
			document: `{
				"questionnaireType": "ANS_USOAP_CMA",
				"totalQuestions": -1,
				"responses": []
			}`,
			valid: false,
		},
		{
			name: "response missing question id",
			document: `{
				"questionnaireType": "ANS_USOAP_CMA",
				"totalQuestions": 1,
				"responses": [{"responseValue": "SATISFACTORY"}]
			}`,
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateAssessmentInput([]byte(tt.document))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.NotEmpty(t, result.GetErrorMessages())
			}
		})
	}
}

func TestValidateAssessmentInput_MalformedJSON(t *testing.T) {
	_, err := ValidateAssessmentInput([]byte(`{not json`))
	assert.Error(t, err)
}
