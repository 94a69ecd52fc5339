package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeBadRequest        = "BAD_REQUEST"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeInternal          = "INTERNAL_ERROR"
	ErrCodeTooManyRequests   = "TOO_MANY_REQUESTS"
	ErrCodeUpstream          = "UPSTREAM_ERROR"
	ErrCodeNetwork           = "NETWORK_ERROR"
	ErrCodeTokenExpired      = "TOKEN_EXPIRED"
	ErrCodeSizeStockMismatch = "SIZE_STOCK_MISMATCH"
	ErrCodeStorage           = "STORAGE_ERROR"
)

// Shown when the server gives no usable "error" field.
const GenericFailureMessage = "Something went wrong. Please try again."

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

func InternalError(message string) *AppError {
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError)
}

func TooManyRequestsError(message string) *AppError {
	return NewAppError(ErrCodeTooManyRequests, message, http.StatusTooManyRequests)
}

func NetworkError(message string) *AppError {
	return NewAppError(ErrCodeNetwork, message, http.StatusBadGateway)
}

func TokenExpiredError(message string) *AppError {
	return NewAppError(ErrCodeTokenExpired, message, http.StatusUnauthorized)
}

func StorageError(message string) *AppError {
	return NewAppError(ErrCodeStorage, message, http.StatusInternalServerError)
}

func SizeStockMismatchError(message string) *AppError {
	return NewAppError(ErrCodeSizeStockMismatch, message, http.StatusUnprocessableEntity)
}

// FromResponse maps a non-2xx API response onto an AppError. The server's own
// message wins when it sent one.
func FromResponse(statusCode int, serverMessage string) *AppError {
	message := strings.TrimSpace(serverMessage)
	if message == "" {
		message = GenericFailureMessage
	}

	var code string

	switch {
	case statusCode == http.StatusBadRequest || statusCode == http.StatusUnprocessableEntity:
		code = ErrCodeValidation
	case statusCode == http.StatusUnauthorized:
		code = ErrCodeUnauthorized
	case statusCode == http.StatusForbidden:
		code = ErrCodeForbidden
	case statusCode == http.StatusNotFound:
		code = ErrCodeNotFound
	case statusCode == http.StatusTooManyRequests:
		code = ErrCodeTooManyRequests
	default:
		code = ErrCodeUpstream
	}

	return NewAppError(code, message, statusCode)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// UserMessage returns what a failed mutation should show the operator.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if appErr, ok := IsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}

	return GenericFailureMessage
}

// field validation error.
func AddValidationError(field, reason string) *AppError {
	return ValidationError(fmt.Sprintf("Invalid field '%s': %s", field, reason))
}
