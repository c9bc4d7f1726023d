// Package apperrors defines the error taxonomy shared by services and HTTP
// handlers. Every failure that crosses a service boundary is an *Error with a
// Kind, so handlers can pick a status code without inspecting messages.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for programmatic handling.
type Kind string

const (
	KindValidation        Kind = "VALIDATION_ERROR"
	KindAuth              Kind = "AUTH_ERROR"
	KindNotFound          Kind = "NOT_FOUND"
	KindConflict          Kind = "CONFLICT"
	KindRateLimited       Kind = "RATE_LIMITED"
	KindUpstreamModel     Kind = "UPSTREAM_MODEL_ERROR"
	KindUpstreamRecipeAPI Kind = "UPSTREAM_RECIPE_API_ERROR"
	KindInternal          Kind = "INTERNAL"
)

// Error carries a kind, a client-safe message, the underlying cause and
// optional diagnostic context. Only Message is ever shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, apperrors.ErrNotFound).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == "" && t.Cause == nil
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrAuth              = &Error{Kind: KindAuth}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrConflict          = &Error{Kind: KindConflict}
	ErrRateLimited       = &Error{Kind: KindRateLimited}
	ErrUpstreamModel     = &Error{Kind: KindUpstreamModel}
	ErrUpstreamRecipeAPI = &Error{Kind: KindUpstreamRecipeAPI}
	ErrInternal          = &Error{Kind: KindInternal}
)

// New creates an error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error with the given kind around an existing cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithContext attaches diagnostic key/values. They are logged, never rendered.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

func Validation(message string) *Error { return New(KindValidation, message) }

func Auth(message string) *Error { return New(KindAuth, message) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Conflict(message string) *Error { return New(KindConflict, message) }

func UpstreamModel(cause error) *Error {
	return Wrap(KindUpstreamModel, "ingredient identification failed", cause)
}

func UpstreamRecipeAPI(cause error) *Error {
	return Wrap(KindUpstreamRecipeAPI, "recipe search failed", cause)
}

func Internal(message string, cause error) *Error {
	return Wrap(KindInternal, message, cause)
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that may be shown to a client. Upstream and
// internal failures always get a generic message.
func PublicMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Server error"
	}
	switch e.Kind {
	case KindUpstreamModel, KindUpstreamRecipeAPI, KindInternal:
		return "An error occurred"
	}
	if e.Message == "" {
		return "Request failed"
	}
	return e.Message
}
