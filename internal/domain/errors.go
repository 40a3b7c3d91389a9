package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDiagramNotFound    = errors.New("diagram not found")
	ErrNothingRendered    = errors.New("no diagram is currently rendered")
	ErrNothingToCopy      = errors.New("no diagram definition to copy")
	ErrStaleResult        = errors.New("result discarded: session changed while the request was in flight")
	ErrSubmitInFlight     = errors.New("a generation request is already in flight")
	ErrUnknownDiagramType = errors.New("unknown diagram type")
)

// ValidationError reports user input that blocks a submission.
// It is never sent to the generation service.
type ValidationError struct {
	Err    error // Optional sentinel, e.g. ErrUnknownDiagramType
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// RequestError means the generation service answered, but with an error
// payload or an empty definition.
type RequestError struct {
	Details    string
	Message    string
	StatusCode int
}

func (e *RequestError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("diagram service returned an error: %s (%s)", e.Message, e.Details)
	}
	return "diagram service returned an error: " + e.Message
}

// TransportError means the generation service could not be reached
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not reach the diagram service: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ExportError is a failed image export or clipboard copy.
// It is local to that action and never changes generation state.
type ExportError struct {
	Err error
	Op  string // "export" or "copy"
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is (or wraps) a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsRequestError reports whether err is (or wraps) a RequestError
func IsRequestError(err error) bool {
	var re *RequestError
	return errors.As(err, &re)
}

// IsTransportError reports whether err is (or wraps) a TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
