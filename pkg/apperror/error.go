package apperror

import (
	"errors"
	"net/http"
)

// Kind is the machine-readable error classification. Handlers and middleware
// branch on Kind, never on message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindUnsupportedEntity
)

// AppError carries the error kind independently of its display message.
type AppError struct {
	Kind    Kind        `json:"-"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	Err     error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the kind to its response status code.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound, KindUnsupportedEntity:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(KindValidation, message, nil)
}

// BadRequestWithDetails attaches per-field validation details.
func BadRequestWithDetails(message string, details interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func Unauthorized(message string) *AppError {
	return New(KindAuthentication, message, nil)
}

func Forbidden(message string) *AppError {
	return New(KindAuthorization, message, nil)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message, nil)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message, nil)
}

func UnsupportedEntity(entity string) *AppError {
	return New(KindUnsupportedEntity, "Entidade não suportada: "+entity, nil)
}

func Internal(err error) *AppError {
	return New(KindInternal, "", err)
}

// From returns err as an AppError, wrapping unknown errors as internal.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(KindInternal, "", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
