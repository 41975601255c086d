// internal/assessment/ei-score/models.go
package eiscore

// AreaScore is the EI breakdown for one audit area.
type AreaScore struct {
	AuditArea       string  `json:"auditArea"`
	EIScore         float64 `json:"eiScore"`
	Satisfactory    int     `json:"satisfactory"`
	NotSatisfactory int     `json:"notSatisfactory"`
	NotApplicable   int     `json:"notApplicable"`
	Total           int     `json:"total"`
}

// ElementScore is the EI breakdown for one critical element. The methodology
// does not report N/A counts at this level.
type ElementScore struct {
	CriticalElement string  `json:"criticalElement"`
	EIScore         float64 `json:"eiScore"`
	Satisfactory    int     `json:"satisfactory"`
	NotSatisfactory int     `json:"notSatisfactory"`
	Total           int     `json:"total"`
}

// Result is the full Effective-Implementation score for one USOAP assessment.
// PriorityPQScore is nil when the assessment has no priority Protocol
// Questions at all, which is distinct from a priority score of 0.
type Result struct {
	OverallEI            float64        `json:"overallEi"`
	AreaScores           []AreaScore    `json:"areaScores"`
	ElementScores        []ElementScore `json:"elementScores"`
	PriorityPQScore      *float64       `json:"priorityPqScore,omitempty"`
	SatisfactoryCount    int            `json:"satisfactoryCount"`
	NotSatisfactoryCount int            `json:"notSatisfactoryCount"`
	NotApplicableCount   int            `json:"notApplicableCount"`
	NotReviewedCount     int            `json:"notReviewedCount"`
	TotalApplicable      int            `json:"totalApplicable"`
}
