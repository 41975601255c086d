// internal/assessment/submission/config.go
package submission

// Evidence coverage floors below which a submission gets a non-blocking
// warning. These are methodology constants, not tunables.
const (
	USOAPEvidenceFloor = 80.0
	SMSEvidenceFloor   = 75.0
)
