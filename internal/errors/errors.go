// Package errors provides custom error types for the fintrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEntry = &AppError{Code: "DUPLICATE_ENTRY", Message: "Resource already exists", StatusCode: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Payment method and billing cycle errors.
var (
	ErrPaymentMethodNotFound = &AppError{Code: "NOT_FOUND", Message: "Payment method not found", StatusCode: http.StatusNotFound}
	ErrNotCreditCard         = &AppError{Code: "VALIDATION_ERROR", Message: "Payment method is not a credit card", StatusCode: http.StatusBadRequest}
	ErrNoBillingCycleDay     = &AppError{Code: "VALIDATION_ERROR", Message: "Payment method has no billing cycle day configured", StatusCode: http.StatusBadRequest}
	ErrBillingCycleNotFound  = &AppError{Code: "NOT_FOUND", Message: "Billing cycle not found", StatusCode: http.StatusNotFound}
	ErrDuplicateBillingCycle = &AppError{Code: "DUPLICATE_ENTRY", Message: "A billing cycle already exists for this period", StatusCode: http.StatusConflict}
	ErrPaymentNotFound       = &AppError{Code: "NOT_FOUND", Message: "Credit card payment not found", StatusCode: http.StatusNotFound}
	ErrStatementNotFound     = &AppError{Code: "NOT_FOUND", Message: "Statement not found", StatusCode: http.StatusNotFound}
)

// Loan errors.
var (
	ErrLoanNotFound        = &AppError{Code: "NOT_FOUND", Message: "Loan not found", StatusCode: http.StatusNotFound}
	ErrLoanBalanceNotFound = &AppError{Code: "NOT_FOUND", Message: "Loan balance not found", StatusCode: http.StatusNotFound}
	ErrRateRequired        = &AppError{Code: "VALIDATION_ERROR", Message: "Interest rate is required for loans without a fixed interest rate", StatusCode: http.StatusBadRequest}
)

// Expense, person and invoice errors.
var (
	ErrExpenseNotFound = &AppError{Code: "NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrPersonNotFound  = &AppError{Code: "NOT_FOUND", Message: "Person not found", StatusCode: http.StatusNotFound}
	ErrInvoiceNotFound = &AppError{Code: "NOT_FOUND", Message: "Invoice not found", StatusCode: http.StatusNotFound}
	ErrInvoiceFileGone = &AppError{Code: "NOT_FOUND", Message: "Invoice file is missing from storage", StatusCode: http.StatusNotFound}
)

// File storage errors.
var (
	ErrInvalidPDF          = &AppError{Code: "VALIDATION_ERROR", Message: "File validation failed: not a valid PDF document", StatusCode: http.StatusBadRequest}
	ErrFileTooLarge        = &AppError{Code: "FILE_TOO_LARGE", Message: "File too large: maximum size is 10MB", StatusCode: http.StatusRequestEntityTooLarge}
	ErrInsufficientStorage = &AppError{Code: "INSUFFICIENT_STORAGE", Message: "Not enough storage space to save the file", StatusCode: http.StatusInsufficientStorage}
)
