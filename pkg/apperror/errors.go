package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// Error codes.
const (
	CodeValidation    = "VAL_001"
	CodeInvalidState  = "VAL_002"
	CodeNotFound      = "NF_001"
	CodeUnauthorized  = "AUTH_001"
	CodeUnknownSeller = "AUTH_002"
	CodeInvalidCode   = "OTP_001"
	CodeRateLimited   = "RATE_001"
	CodeDownstream    = "SYS_001"
	CodeInternal      = "SYS_000"
)

// ---- Validation (VAL) ----

// Validation returns a VAL_001 error for missing or malformed input.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ErrInvalidState is returned when an operation does not match the transfer's current step.
func ErrInvalidState(status string) *AppError {
	return New(CodeInvalidState, fmt.Sprintf("Transaction is not awaiting this step (status %s)", status), http.StatusBadRequest)
}

// ---- Lookup (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Party authorization (AUTH) ----

// ErrUnauthorized is returned when the caller does not match the party bound to the step.
func ErrUnauthorized(party string) *AppError {
	return New(CodeUnauthorized, fmt.Sprintf("Unauthorized %s", party), http.StatusForbidden)
}

func ErrUnknownSeller() *AppError {
	return New(CodeUnknownSeller, "Unknown seller", http.StatusForbidden)
}

// ---- One-time codes (OTP) ----

func ErrInvalidCode() *AppError {
	return New(CodeInvalidCode, "Invalid OTP", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// ErrDownstream wraps a store or directory failure. It is the only retryable class.
func ErrDownstream(err error) *AppError {
	return Wrap(CodeDownstream, "Upstream record store unavailable, retry later", http.StatusServiceUnavailable, err)
}

// InternalError wraps an unexpected internal error as SYS_000.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsRetryable reports whether err belongs to the downstream failure class.
func IsRetryable(err error) bool {
	return HasCode(err, CodeDownstream)
}
