package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCategory string

const (
	CategoryValidation ErrorCategory = "VALIDATION"
	CategoryNotFound   ErrorCategory = "NOT_FOUND"
	CategoryConflict   ErrorCategory = "CONFLICT"
	CategoryInternal   ErrorCategory = "INTERNAL"
	CategoryExternal   ErrorCategory = "EXTERNAL"
)

type DomainError interface {
	error
	Code() string
	Category() ErrorCategory
	HTTPStatus() int
	Message() string
	TraceID() string
	Unwrap() error
	WithCause(cause error) DomainError
	WithTraceID(traceID string) DomainError
}

type domainError struct {
	code     string
	category ErrorCategory
	status   int
	message  string
	traceID  string
	cause    error
}

func (e *domainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *domainError) Code() string {
	return e.code
}

func (e *domainError) Category() ErrorCategory {
	return e.category
}

func (e *domainError) HTTPStatus() int {
	return e.status
}

func (e *domainError) Message() string {
	return e.message
}

func (e *domainError) TraceID() string {
	return e.traceID
}

func (e *domainError) Unwrap() error {
	return e.cause
}

func (e *domainError) Is(target error) bool {
	t, ok := target.(*domainError)
	if !ok {
		return false
	}
	return e.code == t.code
}

func (e *domainError) WithCause(cause error) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		traceID:  e.traceID,
		cause:    cause,
	}
}

func (e *domainError) WithTraceID(traceID string) DomainError {
	return &domainError{
		code:     e.code,
		category: e.category,
		status:   e.status,
		message:  e.message,
		traceID:  traceID,
		cause:    e.cause,
	}
}

func NewDomainError(code string, category ErrorCategory, status int, message string) DomainError {
	return &domainError{
		code:     code,
		category: category,
		status:   status,
		message:  message,
	}
}

func AsDomainError(err error) (DomainError, bool) {
	var de DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

var (
	ErrMissingRequiredEnv = NewDomainError(
		"MISSING_REQUIRED_ENV",
		CategoryValidation,
		http.StatusInternalServerError,
		"missing required environment variable",
	)

	ErrInvalidPersonPayload = NewDomainError(
		"INVALID_PERSON_PAYLOAD",
		CategoryValidation,
		http.StatusBadRequest,
		"request body is not a valid person document",
	)

	ErrMissingUsername = NewDomainError(
		"MISSING_USERNAME",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"apelido is required",
	)

	ErrMissingName = NewDomainError(
		"MISSING_NAME",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"nome is required",
	)

	ErrMissingBirthdate = NewDomainError(
		"MISSING_BIRTHDATE",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"nascimento is required",
	)

	ErrUsernameTooLong = NewDomainError(
		"USERNAME_TOO_LONG",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"apelido must be at most 32 characters",
	)

	ErrNameTooLong = NewDomainError(
		"NAME_TOO_LONG",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"nome must be at most 100 characters",
	)

	ErrInvalidStack = NewDomainError(
		"INVALID_STACK",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"stack must be an array of strings",
	)

	ErrStackTagTooLong = NewDomainError(
		"STACK_TAG_TOO_LONG",
		CategoryValidation,
		http.StatusUnprocessableEntity,
		"stack entries must be at most 32 characters",
	)

	ErrInvalidStoredRow = NewDomainError(
		"INVALID_STORED_ROW",
		CategoryInternal,
		http.StatusInternalServerError,
		"stored row violates person invariants",
	)

	ErrPersonNotFound = NewDomainError(
		"PERSON_NOT_FOUND",
		CategoryNotFound,
		http.StatusNotFound,
		"person not found",
	)

	ErrUsernameTaken = NewDomainError(
		"USERNAME_TAKEN",
		CategoryConflict,
		http.StatusUnprocessableEntity,
		"apelido already taken",
	)

	ErrEmptySearchTerm = NewDomainError(
		"EMPTY_SEARCH_TERM",
		CategoryValidation,
		http.StatusBadRequest,
		"search term is required",
	)

	ErrEmptyUUID = NewDomainError(
		"EMPTY_UUID",
		CategoryValidation,
		http.StatusBadRequest,
		"uuid cannot be empty",
	)

	ErrInvalidUUIDFormat = NewDomainError(
		"INVALID_UUID_FORMAT",
		CategoryValidation,
		http.StatusBadRequest,
		"id must be a valid UUID",
	)

	ErrCircuitOpen = NewDomainError(
		"CIRCUIT_OPEN",
		CategoryExternal,
		http.StatusServiceUnavailable,
		"circuit breaker is open",
	)

	ErrDatabaseError = NewDomainError(
		"DATABASE_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"database operation failed",
	)

	ErrInternalError = NewDomainError(
		"INTERNAL_ERROR",
		CategoryInternal,
		http.StatusInternalServerError,
		"internal server error",
	)
)
