package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNormalizationGap = errors.New("normalization gap")
	ErrExhausted        = errors.New("orchestration exhausted")
	ErrNotConfigured    = errors.New("source not configured")
	ErrNoRecords        = errors.New("source returned no usable records")
	ErrInvalidQuery     = errors.New("invalid trip query")
)

// AdapterFailure reasons.
const (
	ReasonTimeout = "timeout"
	ReasonPanic   = "panic"
	ReasonError   = "error"
	ReasonEmpty   = "empty"
)

// AdapterFailure is a recoverable failure of one Source call.
type AdapterFailure struct {
	Source string
	Reason string
	Err    error
}

func (e *AdapterFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("adapter %s: %s", e.Source, e.Reason)
	}
	return fmt.Sprintf("adapter %s: %s: %v", e.Source, e.Reason, e.Err)
}

func (e *AdapterFailure) Unwrap() error { return e.Err }

// CollaboratorFailure wraps a failed or malformed text-generation call.
type CollaboratorFailure struct {
	Op  string
	Err error
}

func (e *CollaboratorFailure) Error() string { return fmt.Sprintf("collaborator %s: %v", e.Op, e.Err) }
func (e *CollaboratorFailure) Unwrap() error { return e.Err }

// ValidationFailure names one invalid itinerary section.
type ValidationFailure struct {
	Section string
	Reason  string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("itinerary section %s: %s", e.Section, e.Reason)
}

// QueryError is returned for an invalid TripQuery.
type QueryError struct {
	Field string
	Msg   string
	Err   error
}

func (e *QueryError) Error() string { return e.Field + " " + e.Msg }
func (e *QueryError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidQuery
}

func (e *QueryError) Is(target error) bool { return target == ErrInvalidQuery }
