package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Timestamp errors

// InvalidTimestampError signals that a journal wire timestamp failed to
// parse. Distinct from a valid-but-epoch timestamp: callers must treat it
// as a hard failure, never as time zero.
type InvalidTimestampError struct {
	*DomainError
	Timestamp string
	Cause     error
}

func NewInvalidTimestampError(timestamp string, cause error) *InvalidTimestampError {
	return &InvalidTimestampError{
		DomainError: &DomainError{Message: fmt.Sprintf("invalid journal timestamp %q: %v", timestamp, cause)},
		Timestamp:   timestamp,
		Cause:       cause,
	}
}

func (e *InvalidTimestampError) Unwrap() error {
	return e.Cause
}

// Commander errors

type CommanderError struct {
	*DomainError
	Commander string
}

func NewCommanderError(commander, message string) *CommanderError {
	return &CommanderError{
		DomainError: &DomainError{Message: fmt.Sprintf("commander %s: %s", commander, message)},
		Commander:   commander,
	}
}
