// Package errors defines the application error taxonomy: typed errors
// carrying an HTTP status, a business code, and a user-facing message.
package errors

import (
	"net/http"

	"wayfare/internal/errors"
)

// AppError is implemented by every application-specific error the delivery
// layer knows how to render.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error with detailed information attached.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Routing and geocoding errors
	ErrStartUnresolved = NewBaseError(
		http.StatusUnprocessableEntity,
		"START_UNRESOLVED",
		"无法识别起点",
		"",
	)

	ErrEndUnresolved = NewBaseError(
		http.StatusUnprocessableEntity,
		"END_UNRESOLVED",
		"无法识别终点",
		"",
	)

	ErrViaUnresolved = NewBaseError(
		http.StatusUnprocessableEntity,
		"VIA_UNRESOLVED",
		"无法识别途经点",
		"",
	)

	ErrRouteRequestFailed = NewBaseError(
		http.StatusBadGateway,
		"ROUTE_REQUEST_FAILED",
		"路线请求失败",
		"",
	)

	// Place search errors
	ErrPlaceNotFound = NewBaseError(
		http.StatusNotFound,
		"PLACE_NOT_FOUND",
		"暂无此景点",
		"",
	)

	ErrPlaceSearchFailed = NewBaseError(
		http.StatusBadGateway,
		"PLACE_SEARCH_FAILED",
		"景点查询失败",
		"",
	)

	// Favorite errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"找不到该收藏",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"输入数据验证失败",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"未登录或会话已过期",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系统内部错误",
		"",
	)
)

// DatabaseExecuteError represents a database execution error.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message.
func (e *DatabaseExecuteError) Message() string {
	return "数据库执行失败"
}

// Details returns detailed error information.
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
