// internal/assessment/sms-maturity/models.go
package smsmaturity

import "assessment-engine/internal/models"

// ComponentScore is the maturity breakdown for one SMS component.
type ComponentScore struct {
	Component     string               `json:"component"`
	AverageScore  float64              `json:"averageScore"`
	Level         models.MaturityLevel `json:"level"`
	Weight        float64              `json:"weight"`
	WeightedScore float64              `json:"weightedScore"`
	Answered      int                  `json:"answered"`
	Total         int                  `json:"total"`
}

// StudyAreaScore is the informational per-study-area breakdown. Study areas
// are unweighted and do not participate in the overall roll-up.
type StudyAreaScore struct {
	StudyArea    string               `json:"studyArea"`
	Component    string               `json:"component"`
	AverageScore float64              `json:"averageScore"`
	Level        models.MaturityLevel `json:"level"`
	Answered     int                  `json:"answered"`
}

// Result is the full CANSO SoE maturity score for one SMS assessment.
// OverallLevel follows the weakest-link rule: the lowest level among
// components that have at least one answered question. It is empty when no
// component has been answered at all.
type Result struct {
	OverallScore         float64              `json:"overallScore"`
	OverallLevel         models.MaturityLevel `json:"overallLevel,omitempty"`
	OverallPercentage    int                  `json:"overallPercentage"`
	ComponentScores      []ComponentScore     `json:"componentScores"`
	StudyAreaScores      []StudyAreaScore     `json:"studyAreaScores"`
	MaturityDistribution map[string]int       `json:"maturityDistribution"`
	GapAreas             []string             `json:"gapAreas"`
}
