package apperror

import (
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

// ---- Validation (VAL) ----

// ErrInvalidInput reports malformed amounts, percentages or currency mismatches.
func ErrInvalidInput(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Domain Rules (DOM) ----

// ErrDomainRuleViolation reports a business-rule breach: ownership cap,
// fee exceeding amount, distribution percentages over 100.
func ErrDomainRuleViolation(message string) *AppError {
	return New("DOM_001", message, http.StatusUnprocessableEntity)
}

// ErrInvalidState reports an operation that is illegal for the current status.
func ErrInvalidState(message string) *AppError {
	return New("DOM_002", message, http.StatusConflict)
}

// ---- Resources (RES) ----

func ErrNotFound(entity string) *AppError {
	return New("RES_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Concurrency (CON) ----

// ErrConcurrencyConflict reports an optimistic-version mismatch on save.
func ErrConcurrencyConflict(entity string) *AppError {
	return New("CON_001", fmt.Sprintf("%s was modified concurrently", entity), http.StatusConflict)
}

// ---- Fraud Gate (FRD) ----

func ErrFraudDetected() *AppError {
	return New("FRD_001", "Payment blocked by fraud detection", http.StatusForbidden)
}

func ErrAdditionalVerificationRequired() *AppError {
	return New("FRD_002", "Additional verification required before payment can proceed", http.StatusForbidden)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrSerializationError(err error) *AppError {
	return Wrap("SYS_002", "Serialization failure", http.StatusInternalServerError, err)
}

func ErrNetworkError(err error) *AppError {
	return Wrap("SYS_003", "Upstream network failure", http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
