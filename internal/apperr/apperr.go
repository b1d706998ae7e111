// Package apperr carries the stable error codes the services hand to the
// transport layer. Every failure path in a service returns one of these;
// nothing is reported as raw driver or context errors.
package apperr

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeCustomerNotFound Code = "customer_not_found"
	CodeProductNotFound  Code = "product_not_found"
	CodeOrderNotFound    Code = "order_not_found"
	CodeNoLineItems      Code = "no_line_items"
	CodeValidation       Code = "validation_failed"
	CodeConflict         Code = "conflict"
	CodeCancelled        Code = "cancelled"
	CodePersistence      Code = "persistence_error"
	CodeUnexpected       Code = "unexpected_error"
)

// Status is the outward result classification, independent of the HTTP
// layer. The handlers translate it to a wire status.
type Status int

const (
	StatusOK Status = iota
	StatusCreated
	StatusBadRequest
	StatusNotFound
	StatusConflict
	StatusInternal
)

// Status maps each code to its outward result. Cancellation counts as a
// bad request: the caller withdrew interest and nothing was committed.
func (c Code) Status() Status {
	switch c {
	case CodeCustomerNotFound, CodeOrderNotFound:
		return StatusNotFound
	case CodeProductNotFound, CodeNoLineItems, CodeValidation, CodeCancelled:
		return StatusBadRequest
	case CodeConflict:
		return StatusConflict
	default:
		return StatusInternal
	}
}

// Error is a typed service failure: a stable code, a human-readable
// message safe to show callers, and the wrapped cause for logs.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf extracts the stable code from err, or CodeUnexpected when err
// is not an apperr.Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnexpected
}

// StatusOf is CodeOf(err).Status().
func StatusOf(err error) Status {
	return CodeOf(err).Status()
}
