package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// assessmentInputSchema is the input contract for one engine invocation: a
// list of response records joined to their question classification, plus the
// assessment's questionnaire type and total question count.
const assessmentInputSchema = `{
	"type": "object",
	"required": ["questionnaireType", "totalQuestions", "responses"],
	"properties": {
		"assessmentId": {"type": "string"},
		"questionnaireType": {
			"type": "string",
			"enum": ["ANS_USOAP_CMA", "SMS_CANSO_SOE"]
		},
		"totalQuestions": {"type": "integer", "minimum": 0},
		"responses": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["questionId"],
				"properties": {
					"questionId": {"type": "string"},
					"auditArea": {"type": "string"},
					"criticalElement": {"type": "string"},
					"smsComponent": {"type": "string"},
					"studyArea": {"type": "string"},
					"isPriorityPq": {"type": "boolean"},
					"weight": {"type": "number", "minimum": 0},
					"responseValue": {"type": "string"},
					"maturityLevel": {"type": "string"},
					"evidenceDescription": {"type": "string"},
					"evidenceUrls": {"type": "array", "items": {"type": "string"}},
					"isComplete": {"type": "boolean"},
					"respondedAt": {"type": "string", "format": "date-time"}
				}
			}
		}
	}
}`

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateAssessmentInput checks a raw input document against the input
// contract schema before the engine parses it.
func ValidateAssessmentInput(document []byte) (*ValidationResult, error) {
	schemaLoader := gojsonschema.NewStringLoader(assessmentInputSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vr := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		vr.Errors = append(vr.Errors, ValidationError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return vr, nil
}

// GetErrorMessages returns a simple list of error messages
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}
