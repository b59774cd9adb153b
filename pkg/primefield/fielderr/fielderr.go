// Package fielderr defines the typed error taxonomy shared by every layer of
// the primefield module, grounded on the teacher's bfieldcodec error type
// (a Code-plus-Message struct) but generalized to the handful of failure
// modes spec.md's error handling design section enumerates, and wrapped
// with github.com/pkg/errors so callers get a stack trace at the point of
// construction rather than just at the point the error surfaces.
package fielderr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Code identifies the class of failure, matching spec.md's error taxonomy.
type Code string

const (
	// InvalidArgument marks an argument outside an operation's domain (e.g.
	// exp(0, 0), a zero divisor polynomial or one of higher degree than the
	// dividend, a negative PRNG length); Field.Rand also uses it to wrap a
	// failed random-byte read.
	InvalidArgument Code = "INVALID_ARGUMENT"
	// DimensionMismatch marks array/vector/matrix operations where operand
	// shapes do not agree (e.g. mismatched slice lengths, incompatible
	// matrix inner dimensions).
	DimensionMismatch Code = "DIMENSION_MISMATCH"
	// InvalidDomain marks an evaluation domain or subgroup order that fails
	// a precondition (non-power-of-two FFT domain or root-of-unity order,
	// polynomial longer than its FFT domain).
	InvalidDomain Code = "INVALID_DOMAIN"
	// OutOfRange marks an index outside a buffer, vector or matrix, or a
	// raw value that does not fit in 128 bits. Raw values in [p, 2^128) are
	// accepted and reduced mod p.
	OutOfRange Code = "OUT_OF_RANGE"
	// NotFound marks a lookup that found no matching resource (e.g. no
	// generator of the requested subgroup order).
	NotFound Code = "NOT_FOUND"
)

// Error is the concrete error type returned by every exported function in
// this module that can fail validation.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// New constructs a new Error of the given code with a stack trace attached
// via pkg/errors, so that logging the error (see cmd/fieldctl) can print
// "where", not just "what".
func New(code Code, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Code:    code,
		Message: msg,
		cause:   errors.New(msg),
	}
}

// Wrap attaches code and message context to an existing error, preserving
// it as the unwrap target.
func Wrap(cause error, code Code, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Code:    code,
		Message: msg,
		cause:   errors.Wrap(cause, msg),
	}
}

// Is reports whether err is a *Error carrying the given code.
func Is(err error, code Code) bool {
	fe, ok := err.(*Error)
	if !ok {
		return false
	}
	return fe.Code == code
}
