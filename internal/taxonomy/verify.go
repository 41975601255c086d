// internal/taxonomy/verify.go
package taxonomy

import (
	"fmt"
	"math"

	commonerrors "assessment-engine/internal/common/errors"
)

// Verify checks the fixed tables for internal consistency. It is called once
// at startup; any error is a configuration error and the engine must not
// score with the tables in this state.
func Verify() error {
	sum := TotalComponentWeight()
	if math.Abs(sum-1.0) > weightTolerance {
		return commonerrors.NewWeightTableInvalidError(sum)
	}

	for code, c := range SMSComponents {
		if c.Code != code {
			return commonerrors.NewTaxonomyInvalidError(
				fmt.Sprintf("component %s carries mismatched code %s", code, c.Code))
		}
		if c.Weight <= 0 {
			return commonerrors.NewTaxonomyInvalidError(
				fmt.Sprintf("component %s has non-positive weight %v", code, c.Weight))
		}
	}

	if len(ComponentOrder) != len(SMSComponents) {
		return commonerrors.NewTaxonomyInvalidError("canonical component order does not cover every component")
	}
	for _, code := range ComponentOrder {
		if _, ok := SMSComponents[code]; !ok {
			return commonerrors.NewTaxonomyInvalidError(
				fmt.Sprintf("canonical order references unknown component %s", code))
		}
	}

	for code, sa := range StudyAreas {
		if _, ok := SMSComponents[sa.Component]; !ok {
			return commonerrors.NewTaxonomyInvalidError(
				fmt.Sprintf("study area %s references unknown component %s", code, sa.Component))
		}
	}

	for _, level := range MaturityLevelOrder {
		if _, ok := MaturityScores[level]; !ok {
			return commonerrors.NewTaxonomyInvalidError(
				fmt.Sprintf("maturity level %s has no numeric score", level))
		}
	}

	return nil
}
