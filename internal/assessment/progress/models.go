// internal/assessment/progress/models.go
package progress

import (
	"time"

	"assessment-engine/internal/models"
)

// CategoryProgress is the completion summary for one audit area (USOAP) or
// one SMS component.
type CategoryProgress struct {
	Category        string `json:"category"`
	Total           int    `json:"total"`
	Answered        int    `json:"answered"`
	Completed       int    `json:"completed"`
	PercentComplete int    `json:"percentComplete"`
}

// USOAPElementProgress is the richer per-audit-area breakdown, including a
// locally computed EI score.
type USOAPElementProgress struct {
	AuditArea       string  `json:"auditArea"`
	Total           int     `json:"total"`
	Answered        int     `json:"answered"`
	Satisfactory    int     `json:"satisfactory"`
	NotSatisfactory int     `json:"notSatisfactory"`
	NotApplicable   int     `json:"notApplicable"`
	EIScore         float64 `json:"eiScore"`
}

// SMSElementProgress is the richer per-component breakdown, reported in the
// fixed canonical component order.
type SMSElementProgress struct {
	Component            string               `json:"component"`
	Total                int                  `json:"total"`
	Answered             int                  `json:"answered"`
	MaturityDistribution map[string]int       `json:"maturityDistribution"`
	AverageMaturity      float64              `json:"averageMaturity"`
	Level                models.MaturityLevel `json:"level,omitempty"`
}

// AssessmentProgress is the completion picture for one assessment. Progress
// counts NOT_APPLICABLE as answered even though scoring excludes it; the two
// surfaces deliberately use different inclusion rules.
type AssessmentProgress struct {
	TotalQuestions     int                    `json:"totalQuestions"`
	AnsweredQuestions  int                    `json:"answeredQuestions"`
	CompletedQuestions int                    `json:"completedQuestions"`
	SkippedQuestions   int                    `json:"skippedQuestions"`
	PercentComplete    int                    `json:"percentComplete"`
	PercentAnswered    int                    `json:"percentAnswered"`
	Categories         []CategoryProgress     `json:"categories"`
	USOAPElements      []USOAPElementProgress `json:"usoapElements,omitempty"`
	SMSElements        []SMSElementProgress   `json:"smsElements,omitempty"`
	LastActivityAt     *time.Time             `json:"lastActivityAt,omitempty"`
}
