package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var _ ClassError = (*DetailedError)(nil)

// DetailedError is a classified error with a unique instance ID and the
// operation that created it. It may wrap the error that caused it.
type DetailedError struct {
	ID             uuid.UUID
	Classification Class
	// Message is returned by Error.
	Message string
	// Details are the optional human readable hints.
	Details string
	// Operation is the 'function#file:line' location where the error got created.
	Operation string

	cause error
}

// NewDet creates a DetailedError of class 'c'.
func NewDet(c Class, message string) *DetailedError {
	return newDetailed(c, nil, message)
}

// NewDetf creates a DetailedError of class 'c' with the formatted message.
func NewDetf(c Class, format string, args ...interface{}) *DetailedError {
	return newDetailed(c, nil, fmt.Sprintf(format, args...))
}

// WrapDet creates a DetailedError of class 'c' caused by 'cause'.
// The cause message is appended after a colon.
func WrapDet(cause error, c Class, message string) *DetailedError {
	return newDetailed(c, cause, message)
}

// WrapDetf is WrapDet with the formatted message.
func WrapDetf(cause error, c Class, format string, args ...interface{}) *DetailedError {
	return newDetailed(c, cause, fmt.Sprintf(format, args...))
}

func (e *DetailedError) Class() Class {
	return e.Classification
}

func (e *DetailedError) Error() string {
	return e.Message
}

func (e *DetailedError) Unwrap() error {
	return e.cause
}

// WithDetail replaces the error details.
func (e *DetailedError) WithDetail(detail string) *DetailedError {
	e.Details = detail
	return e
}

// WithDetailf replaces the error details with the formatted text.
func (e *DetailedError) WithDetailf(format string, args ...interface{}) *DetailedError {
	return e.WithDetail(fmt.Sprintf(format, args...))
}

// WrapDetail puts 'detail' in front of the current details.
func (e *DetailedError) WrapDetail(detail string) *DetailedError {
	e.Details = strings.TrimSpace(detail + " " + e.Details)
	return e
}

// newDetailed must be called directly by the exported constructors so that the caller frame is the operation.
func newDetailed(c Class, cause error, message string) *DetailedError {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &DetailedError{
		ID:             uuid.New(),
		Classification: c,
		Message:        message,
		Operation:      callerOperation(3),
		cause:          cause,
	}
}

func callerOperation(skip int) string {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	name := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return name + "#" + filepath.Base(file) + ":" + strconv.Itoa(line)
}

// MultiError groups errors reported together, i.e. all invalid config fields.
type MultiError []error

func (m MultiError) Error() string {
	return strings.Join(lo.Map(m, func(err error, _ int) string { return err.Error() }), ",")
}

// Unwrap exposes the grouped errors to Is and As.
func (m MultiError) Unwrap() []error {
	return m
}
