package internal

import (
	"encoding/json"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingField     ErrorCode = "MISSING_FIELD"
	ErrCodePasswordMismatch ErrorCode = "PASSWORD_MISMATCH"
	ErrCodeManagerRequired  ErrorCode = "MANAGER_REQUIRED"

	ErrCodeTokenMissing       ErrorCode = "TOKEN_MISSING"
	ErrCodeTokenInvalid       ErrorCode = "TOKEN_INVALID"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"

	ErrCodeUserNotFound   ErrorCode = "USER_NOT_FOUND"
	ErrCodeTenantNotFound ErrorCode = "TENANT_NOT_FOUND"
	ErrCodeRecordNotFound ErrorCode = "RECORD_NOT_FOUND"

	ErrCodeUserExists       ErrorCode = "USER_ALREADY_EXISTS"
	ErrCodeInsufficientRole ErrorCode = "INSUFFICIENT_ROLE"
)

// InternalServerErrorMessage is the only message ever surfaced for unexpected
// failures; internals must not leak to the client.
const InternalServerErrorMessage = "Something went wrong. Please try again later."

type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

// NewRequiredFieldError builds the "<field> is required." validation error
// shared by every entity service.
func NewRequiredFieldError(field string) *AppError {
	return NewValidationError(field+" is required.", ErrCodeMissingField)
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewInternalError(cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    InternalServerErrorMessage,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrTokenMissing = NewUnauthorizedError("Token is required.", ErrCodeTokenMissing)
	ErrTokenInvalid = NewUnauthorizedError("Invalid token.", ErrCodeTokenInvalid)
	ErrTokenExpired = NewUnauthorizedError("Token has expired.", ErrCodeTokenExpired)

	ErrUserNotFound   = NewUnauthorizedError("User not found.", ErrCodeUserNotFound)
	ErrTenantNotFound = NewNotFoundError("Tenant does not exist.", ErrCodeTenantNotFound)
	ErrRecordNotFound = NewNotFoundError("Record not found.", ErrCodeRecordNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
