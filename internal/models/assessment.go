// internal/models/assessment.go
package models

import "time"

// QuestionnaireType identifies which external methodology an assessment follows.
type QuestionnaireType string

const (
	QuestionnaireUSOAP QuestionnaireType = "ANS_USOAP_CMA"
	QuestionnaireSMS   QuestionnaireType = "SMS_CANSO_SOE"
)

// ResponseValue is the USOAP CMA answer for one Protocol Question.
type ResponseValue string

const (
	ResponseSatisfactory    ResponseValue = "SATISFACTORY"
	ResponseNotSatisfactory ResponseValue = "NOT_SATISFACTORY"
	ResponseNotApplicable   ResponseValue = "NOT_APPLICABLE"
	ResponseNotReviewed     ResponseValue = "NOT_REVIEWED"
)

// MaturityLevel is the CANSO SoE five-point answer for one SMS question.
// The empty string means the question has not been answered.
type MaturityLevel string

const (
	MaturityA MaturityLevel = "A"
	MaturityB MaturityLevel = "B"
	MaturityC MaturityLevel = "C"
	MaturityD MaturityLevel = "D"
	MaturityE MaturityLevel = "E"
)

// AssessmentStatus is the caller-owned assessment lifecycle. The engine only
// gates the IN_PROGRESS -> SUBMITTED transition via the submission validator.
type AssessmentStatus string

const (
	StatusDraft       AssessmentStatus = "DRAFT"
	StatusInProgress  AssessmentStatus = "IN_PROGRESS"
	StatusSubmitted   AssessmentStatus = "SUBMITTED"
	StatusUnderReview AssessmentStatus = "UNDER_REVIEW"
	StatusCompleted   AssessmentStatus = "COMPLETED"
	StatusArchived    AssessmentStatus = "ARCHIVED"
)

// ResponseRecord is one response already joined to its question's
// classification metadata by the persistence layer. USOAP questions carry
// auditArea/criticalElement/responseValue; SMS questions carry
// smsComponent/studyArea/maturityLevel.
type ResponseRecord struct {
	QuestionID          string        `json:"questionId"`
	AuditArea           string        `json:"auditArea,omitempty"`
	CriticalElement     string        `json:"criticalElement,omitempty"`
	SMSComponent        string        `json:"smsComponent,omitempty"`
	StudyArea           string        `json:"studyArea,omitempty"`
	IsPriorityPQ        bool          `json:"isPriorityPq,omitempty"`
	Weight              float64       `json:"weight,omitempty"`
	ResponseValue       ResponseValue `json:"responseValue,omitempty"`
	MaturityLevel       MaturityLevel `json:"maturityLevel,omitempty"`
	EvidenceDescription string        `json:"evidenceDescription,omitempty"`
	EvidenceURLs        []string      `json:"evidenceUrls,omitempty"`
	IsComplete          bool          `json:"isComplete"`
	RespondedAt         *time.Time    `json:"respondedAt,omitempty"`
}

// HasEvidence reports whether the response satisfies the completeness rule:
// the explicit flag, or any non-empty evidence attachment.
func (r *ResponseRecord) HasEvidence() bool {
	return r.IsComplete || r.EvidenceDescription != "" || len(r.EvidenceURLs) > 0
}

// IsAnswered reports whether the response carries a meaningful value under
// the given methodology. NOT_APPLICABLE counts as answered for progress even
// though scoring excludes it; unknown codes do not count at all.
func (r *ResponseRecord) IsAnswered(qt QuestionnaireType) bool {
	switch qt {
	case QuestionnaireUSOAP:
		switch r.ResponseValue {
		case ResponseSatisfactory, ResponseNotSatisfactory, ResponseNotApplicable:
			return true
		}
		return false
	case QuestionnaireSMS:
		switch r.MaturityLevel {
		case MaturityA, MaturityB, MaturityC, MaturityD, MaturityE:
			return true
		}
		return false
	}
	return false
}

// AssessmentInput is the full input contract for one engine invocation.
type AssessmentInput struct {
	AssessmentID      string            `json:"assessmentId"`
	QuestionnaireType QuestionnaireType `json:"questionnaireType"`
	TotalQuestions    int               `json:"totalQuestions"`
	Responses         []ResponseRecord  `json:"responses"`
}
