package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for every error type in this package.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrCapacityExceeded  = errors.New("trip capacity exceeded")
	ErrUploadFailed      = errors.New("upload failed")
)

// sanitize strips newlines from values before they are embedded in error messages,
// keeping log lines single-line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// unwrapWithCause exposes both the classifying sentinel and the underlying
// cause (when present) to errors.Is and errors.As.
func unwrapWithCause(sentinel, cause error) []error {
	if cause != nil {
		return []error{sentinel, cause}
	}
	return []error{sentinel}
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without an underlying cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() []error {
	return unwrapWithCause(ErrObjectNotFound, e.Cause)
}

// ValueIsInvalidError indicates that a supplied value is malformed or otherwise
// unacceptable for the named parameter.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without an underlying cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// specific validation failure.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError indicates that a value falls outside its allowed range.
// Min and Max describe the inclusive bounds communicated back to the caller.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without an underlying cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping an
// underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is invalid: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsOutOfRange, e.Cause)
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without an underlying cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsRequired, e.Cause)
}

// InvalidTransitionError indicates that a state machine was asked to move along an
// edge its transition table does not define. Current and Requested carry the states
// involved so the caller can decide whether to retry with a different target.
// The entity is never mutated when this error is returned.
type InvalidTransitionError struct {
	Entity    string
	Current   string
	Requested string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the named entity kind.
func NewInvalidTransitionError(entity, current, requested string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, Current: current, Requested: requested}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s",
		ErrInvalidTransition, e.Entity, e.Current, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CapacityExceededError indicates that binding one more delivery to a trip would
// exceed the trip's parcel capacity. Current is the count of non-canceled deliveries
// already bound to the trip.
type CapacityExceededError struct {
	TripID  string
	Current int
	Max     int
}

// NewCapacityExceededError creates a CapacityExceededError for the given trip.
func NewCapacityExceededError(tripID string, current, maxParcels int) *CapacityExceededError {
	return &CapacityExceededError{TripID: tripID, Current: current, Max: maxParcels}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: trip %s holds %d of %d deliveries",
		ErrCapacityExceeded, e.TripID, e.Current, e.Max)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// UploadFailedError indicates that a single file could not be stored, either because
// it exceeds the size ceiling or because the media store rejected it. Upload failures
// are reported per file, never aggregated, so callers can surface partial results.
type UploadFailedError struct {
	FileName string
	Size     int64
	Ceiling  int64
	Cause    error
}

// NewUploadFailedError creates an UploadFailedError for a file over the size ceiling.
func NewUploadFailedError(fileName string, size, ceiling int64) *UploadFailedError {
	return &UploadFailedError{FileName: fileName, Size: size, Ceiling: ceiling}
}

// NewUploadFailedErrorWithCause creates an UploadFailedError wrapping a storage failure.
func NewUploadFailedErrorWithCause(fileName string, size, ceiling int64, cause error) *UploadFailedError {
	return &UploadFailedError{FileName: fileName, Size: size, Ceiling: ceiling, Cause: cause}
}

func (e *UploadFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUploadFailed, e.FileName, e.Cause)
	}
	return fmt.Sprintf("%s: %s is %d bytes, ceiling is %d bytes",
		ErrUploadFailed, e.FileName, e.Size, e.Ceiling)
}

func (e *UploadFailedError) Unwrap() []error {
	return unwrapWithCause(ErrUploadFailed, e.Cause)
}
