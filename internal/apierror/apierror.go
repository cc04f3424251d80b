// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "net/http"

// Kind classifies an expected, caller-recoverable failure. Anything that is
// not one of these kinds is treated as a store failure: logged with full
// context and surfaced as a generic 500.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindReferential
	KindUnauthorized
	KindForbidden
)

// HTTPStatus maps a kind to its client-facing response code. Unauthorized and
// Forbidden must stay distinguishable; referential failures read as a bad
// request because the caller named a row that does not exist.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation, KindReferential:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Error is a domain outcome carrying its taxonomy kind.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func Validation(msg string) *Error   { return &Error{Kind: KindValidation, Detail: msg} }
func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Detail: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, Detail: msg} }
func Referential(msg string) *Error  { return &Error{Kind: KindReferential, Detail: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Detail: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Detail: msg} }

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "validation error", Fields: fields}
}
