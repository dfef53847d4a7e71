// Package errors provides custom error types for the Frota API.
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

// Is reports whether target is an AppError with the same code, so callers can
// compare against sentinels even after Wrap or WithMessage copied them.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

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

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAccountLocked      = &AppError{Code: "ACCOUNT_LOCKED", Message: "Account is temporarily locked", StatusCode: http.StatusLocked}
)

// General errors.
var (
	ErrInvalidInput        = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound            = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer      = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
	ErrRealtimeUnavailable = &AppError{Code: "REALTIME_UNAVAILABLE", Message: "Realtime change feed is not configured", StatusCode: http.StatusServiceUnavailable}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Recurring expense errors.
var (
	ErrRecurringExpenseNotFound = &AppError{Code: "RECURRING_EXPENSE_NOT_FOUND", Message: "Recurring expense not found", StatusCode: http.StatusNotFound}
)

// Accounts payable errors.
var (
	ErrPayableNotFound         = &AppError{Code: "PAYABLE_NOT_FOUND", Message: "Accounts payable entry not found", StatusCode: http.StatusNotFound}
	ErrInvalidStatusTransition = &AppError{Code: "INVALID_STATUS_TRANSITION", Message: "Status transition not allowed", StatusCode: http.StatusConflict}
)

// Cost errors.
var (
	ErrCostNotFound        = &AppError{Code: "COST_NOT_FOUND", Message: "Cost not found", StatusCode: http.StatusNotFound}
	ErrVirtualCostReadOnly = &AppError{Code: "VIRTUAL_COST_READ_ONLY", Message: "Costs projected from fines, damages or fuel notes can only have their estimate updated", StatusCode: http.StatusBadRequest}
	ErrUnknownCostSource   = &AppError{Code: "UNKNOWN_COST_SOURCE", Message: "Unknown cost source", StatusCode: http.StatusBadRequest}
)

// Salary errors.
var (
	ErrSalaryNotFound  = &AppError{Code: "SALARY_NOT_FOUND", Message: "Salary not found", StatusCode: http.StatusNotFound}
	ErrDuplicateSalary = &AppError{Code: "DUPLICATE_SALARY", Message: "A salary for this employee and month already exists", StatusCode: http.StatusConflict}
)

// Fleet errors.
var (
	ErrVehicleNotFound     = &AppError{Code: "VEHICLE_NOT_FOUND", Message: "Vehicle not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePlate      = &AppError{Code: "DUPLICATE_PLATE", Message: "A vehicle with this plate already exists", StatusCode: http.StatusConflict}
	ErrCustomerNotFound    = &AppError{Code: "CUSTOMER_NOT_FOUND", Message: "Customer not found", StatusCode: http.StatusNotFound}
	ErrDriverNotFound      = &AppError{Code: "DRIVER_NOT_FOUND", Message: "Driver not found", StatusCode: http.StatusNotFound}
	ErrDriverInactive      = &AppError{Code: "DRIVER_INACTIVE", Message: "Driver is inactive", StatusCode: http.StatusConflict}
	ErrNoOpenAssignment    = &AppError{Code: "NO_OPEN_ASSIGNMENT", Message: "Driver has no vehicle assigned", StatusCode: http.StatusConflict}
	ErrFineNotFound        = &AppError{Code: "FINE_NOT_FOUND", Message: "Fine not found", StatusCode: http.StatusNotFound}
	ErrDamageNotFound      = &AppError{Code: "DAMAGE_NOT_FOUND", Message: "Inspection damage not found", StatusCode: http.StatusNotFound}
	ErrServiceNoteNotFound = &AppError{Code: "SERVICE_NOTE_NOT_FOUND", Message: "Service note not found", StatusCode: http.StatusNotFound}
)

// Notification errors.
var (
	ErrNotificationNotFound = &AppError{Code: "NOTIFICATION_NOT_FOUND", Message: "Notification not found", StatusCode: http.StatusNotFound}
	ErrNotificationClosed   = &AppError{Code: "NOTIFICATION_CLOSED", Message: "Notification is no longer pending", StatusCode: http.StatusConflict}
)
