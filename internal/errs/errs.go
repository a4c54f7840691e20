// Package errs defines the error kinds the API reports to clients.
//
// Service operations return *Error values tagged with a Kind; the HTTP layer
// maps the kind to a status code and renders the standard error envelope.
package errs

import (
	"errors"
	"net/http"
)

// Kind classifies an error by how the client should treat it.
type Kind int

const (
	// KindUnknown is any error that was not classified. Reported as 500.
	KindUnknown Kind = iota
	// KindBadRequest is a malformed request. Reported as 400.
	KindBadRequest
	// KindNotFound is an absent resource, empty result or page past the end. Reported as 404.
	KindNotFound
	// KindValidation is a well-formed request with invalid field values. Reported as 422.
	KindValidation
	// KindStore is a failed store mutation that was rolled back. Reported as 422.
	KindStore
	// KindTooManyRequests is a rate limited request. Reported as 429.
	KindTooManyRequests
)

// Default client-facing messages.
const (
	MsgBadRequest       = "bad request"
	MsgNotFound         = "resource not found"
	MsgMethodNotAllowed = "method not allowed"
	MsgUnprocessable    = "unprocessable"
	MsgTooManyRequests  = "too many requests"
	MsgInternal         = "Internal Server Error"
)

var statuses = map[Kind]int{
	KindUnknown:         http.StatusInternalServerError,
	KindBadRequest:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindValidation:      http.StatusUnprocessableEntity,
	KindStore:           http.StatusUnprocessableEntity,
	KindTooManyRequests: http.StatusTooManyRequests,
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	if s, ok := statuses[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Error is a classified error. Message is safe to show to clients; Err is the
// underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status code for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// NewBadRequestError creates a 400 error.
func NewBadRequestError(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// NewNotFoundError creates a 404 error with the default message.
func NewNotFoundError(cause error) *Error {
	return &Error{Kind: KindNotFound, Message: MsgNotFound, Err: cause}
}

// NewValidationError creates a 422 error carrying a correction message.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewStoreError creates a 422 error for a failed, rolled back mutation.
func NewStoreError(cause error) *Error {
	return &Error{Kind: KindStore, Message: MsgUnprocessable, Err: cause}
}

// NewTooManyRequestsError creates a 429 error.
func NewTooManyRequestsError() *Error {
	return &Error{Kind: KindTooManyRequests, Message: MsgTooManyRequests}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
