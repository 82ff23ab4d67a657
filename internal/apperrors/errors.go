package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Token verification failures. All of them are classified as KindUnauthorized.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenWrongClass       = errors.New("token class mismatch")
)

// ErrRefreshTokenReused is returned when a refresh token has been superseded by a later
// login or refresh.
var ErrRefreshTokenReused = errors.New("refresh token is expired or used")

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal"
	}
}

// HTTPStatus maps a Kind to its HTTP status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// AppError is a classified error carrying a client-facing message and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NewBadRequest(message string) *AppError {
	return NewAppError(KindBadRequest, message, ErrValidation)
}

func NewUnauthorized(message string, err error) *AppError {
	if err == nil {
		err = ErrUnauthorized
	}
	return NewAppError(KindUnauthorized, message, err)
}

func NewNotFound(message string) *AppError {
	return NewAppError(KindNotFound, message, ErrNotFound)
}

func NewConflict(message string) *AppError {
	return NewAppError(KindConflict, message, ErrDuplicate)
}

func NewInternal(message string, err error) *AppError {
	return NewAppError(KindInternal, message, err)
}

// KindOf classifies any error. AppErrors keep their own kind; bare sentinels are mapped;
// everything else is Internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindInternal
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindBadRequest
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrTokenMalformed),
		errors.Is(err, ErrTokenInvalidSignature),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenWrongClass),
		errors.Is(err, ErrRefreshTokenReused):
		return KindUnauthorized
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate):
		return KindConflict
	default:
		return KindInternal
	}
}

// MessageOf returns the client-facing message for err. Internal errors never leak their cause.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	switch KindOf(err) {
	case KindBadRequest:
		return "Invalid request"
	case KindUnauthorized:
		return "Unauthorized request"
	case KindNotFound:
		return "Resource not found"
	case KindConflict:
		return "Resource already exists"
	default:
		return "Something went wrong"
	}
}
