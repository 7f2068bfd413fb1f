package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the error taxonomy. Every typed error below matches
// exactly one of these through errors.Is.
var (
	ErrInvalid  = errors.New("invalid value")
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrFormat   = errors.New("invalid format")
	ErrIO       = errors.New("i/o failure")
)

// ValidationError represents malformed or out-of-range scalar input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// NotFoundError is returned when an operation references a missing track or keyframe
type NotFoundError struct {
	Kind string // "track" or "keyframe"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError is returned when an operation would duplicate a track or keyframe identity
type ConflictError struct {
	Kind string
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Kind, e.Name)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// FormatError reports a malformed keyframe document
type FormatError struct {
	Path   string // empty when decoding from a stream
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("invalid keyframe file %s: %s", e.Path, msg)
	}
	return fmt.Sprintf("invalid keyframe data: %s", msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IOError wraps a filesystem failure with the operation and path involved
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

func formatErrorf(format string, args ...any) *FormatError {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
