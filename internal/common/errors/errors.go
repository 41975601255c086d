// Package errors provides standardized error handling for the assessment engine.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Configuration errors are fatal at startup: the engine refuses to operate
// rather than silently mis-score against a corrupted methodology table.
const (
	ErrCodeWeightTableInvalid   ErrorCode = "WEIGHT_TABLE_INVALID"
	ErrCodeTaxonomyInvalid      ErrorCode = "TAXONOMY_INVALID"
	ErrCodeUnknownQuestionnaire ErrorCode = "UNKNOWN_QUESTIONNAIRE_TYPE"

	ErrCodeInputParseFailed  ErrorCode = "INPUT_PARSE_FAILED"
	ErrCodeInputSchemaFailed ErrorCode = "INPUT_SCHEMA_FAILED"

	ErrCodeConfigLoadFailed  ErrorCode = "CONFIG_LOAD_FAILED"
	ErrCodeReportWriteFailed ErrorCode = "REPORT_WRITE_FAILED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewWeightTableInvalidError reports an SMS component weight table whose
// weights do not sum to 1.0. Non-retryable: the binary itself is mis-built.
func NewWeightTableInvalidError(sum float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeightTableInvalid,
		Message:   "SMS component weights do not sum to 1.0",
		Details:   fmt.Sprintf("weight sum: %v", sum),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTaxonomyInvalidError reports an inconsistency in a fixed classification
// table, such as a study area referencing an unknown component.
func NewTaxonomyInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeTaxonomyInvalid,
		Message:   "classification table inconsistency",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownQuestionnaireError reports an assessment whose questionnaire type
// matches neither supported methodology.
func NewUnknownQuestionnaireError(questionnaireType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownQuestionnaire,
		Message:   "unsupported questionnaire type",
		Details:   fmt.Sprintf("questionnaireType: %s", questionnaireType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputParseFailedError reports an input document that is not valid JSON.
func NewInputParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputParseFailed,
		Message:   "failed to parse assessment input document",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInputSchemaFailedError reports an input document that parsed but violates
// the input contract schema.
func NewInputSchemaFailedError(violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInputSchemaFailed,
		Message:   "assessment input document violates the input contract",
		Details:   fmt.Sprintf("violations: %v", violations),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfigLoadFailedError reports a configuration file or environment that
// could not be loaded.
func NewConfigLoadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfigLoadFailed,
		Message:   "configuration load failed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReportWriteFailedError reports a report that could not be written to its
// output destination.
func NewReportWriteFailedError(path string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReportWriteFailed,
		Message:   "failed to write assessment report",
		Details:   fmt.Sprintf("path: %s, error: %s", path, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
