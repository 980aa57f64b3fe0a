package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is.
var (
	// ErrValueIsRequired indicates that a required value was not provided.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid indicates that a provided value failed validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange indicates that a value falls outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrObjectNotFound indicates that a referenced object does not exist
	// in the current snapshot.
	ErrObjectNotFound = errors.New("object not found")

	// ErrInvalidTransition indicates that a command was attempted against
	// a state that forbids it (e.g., shipping an already shipped order).
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrPreconditionFailed indicates that a command's preconditions are unmet
	// (e.g., marking an order delivered before a delivery employee is assigned).
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrMalformedAllocation indicates that a warehouse allocation is missing
	// required fields and was skipped during classification.
	ErrMalformedAllocation = errors.New("malformed allocation")
)

// sanitize flattens multi-line values into a single log-friendly line.
func sanitize(value any) string {
	return strings.ReplaceAll(fmt.Sprint(value), "\n", " ")
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value fails validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value falls outside allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf(
		"%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max),
	)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError is returned when a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given parameter and id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(
			"%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause,
		)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidTransitionError is returned when a state-changing command is attempted
// against a state that forbids it. Operation names the attempted transition and
// ID identifies the order or allocation it targeted.
type InvalidTransitionError struct {
	Operation string
	ID        any
	Cause     error
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given operation and id.
func NewInvalidTransitionError(operation string, id any) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, ID: id}
}

// NewInvalidTransitionErrorWithCause creates an InvalidTransitionError wrapping a cause.
func NewInvalidTransitionErrorWithCause(operation string, id any, cause error) *InvalidTransitionError {
	return &InvalidTransitionError{Operation: operation, ID: id, Cause: cause}
}

func (e *InvalidTransitionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf(
			"%s: %s, ID is: %s (cause: %s)",
			ErrInvalidTransition, e.Operation, sanitize(e.ID), e.Cause,
		)
	}
	return fmt.Sprintf("%s: %s, ID is: %s", ErrInvalidTransition, e.Operation, sanitize(e.ID))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PreconditionFailedError is returned when a command's preconditions are unmet.
// Precondition names the specific unmet requirement so callers can display or
// log it without re-deriving the business rule.
type PreconditionFailedError struct {
	Operation    string
	Precondition string
	ID           any
}

// NewPreconditionFailedError creates a PreconditionFailedError naming the unmet precondition.
func NewPreconditionFailedError(operation, precondition string, id any) *PreconditionFailedError {
	return &PreconditionFailedError{Operation: operation, Precondition: precondition, ID: id}
}

func (e *PreconditionFailedError) Error() string {
	return fmt.Sprintf(
		"%s: %s requires %s, ID is: %s",
		ErrPreconditionFailed, e.Operation, e.Precondition, sanitize(e.ID),
	)
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// MalformedAllocationError is returned when a warehouse allocation is missing
// required fields. Classification skips the allocation but keeps the owning
// line item visible, so this error is reported rather than propagated.
type MalformedAllocationError struct {
	ParamName  string
	LineItemID any
}

// NewMalformedAllocationError creates a MalformedAllocationError for the missing
// parameter on the given line item.
func NewMalformedAllocationError(paramName string, lineItemID any) *MalformedAllocationError {
	return &MalformedAllocationError{ParamName: paramName, LineItemID: lineItemID}
}

func (e *MalformedAllocationError) Error() string {
	return fmt.Sprintf(
		"%s: %s, line item is: %s",
		ErrMalformedAllocation, e.ParamName, sanitize(e.LineItemID),
	)
}

func (e *MalformedAllocationError) Unwrap() error {
	return ErrMalformedAllocation
}
