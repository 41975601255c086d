// internal/assessment/submission/models.go
package submission

// Result is the submit-eligibility decision. CanSubmit is true iff Blockers
// is empty; warnings never affect eligibility. The message strings are part
// of the output contract for display layers and carry exact counts.
type Result struct {
	CanSubmit bool     `json:"canSubmit"`
	Blockers  []string `json:"blockers"`
	Warnings  []string `json:"warnings"`
}
