package errors

import (
	"errors"
	"fmt"
)

// ErrorCode defines application error codes
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Lookup errors
	ErrCodeHotelNotFound   ErrorCode = "HOTEL_NOT_FOUND"
	ErrCodeRoomNotFound    ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeGuestNotFound   ErrorCode = "GUEST_NOT_FOUND"
	ErrCodeServiceNotFound ErrorCode = "SERVICE_NOT_FOUND"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidInput  ErrorCode = "INVALID_INPUT"

	// Booking errors
	ErrCodeCapacityExceeded   ErrorCode = "CAPACITY_EXCEEDED"
	ErrCodeOverlappingBooking ErrorCode = "OVERLAPPING_BOOKING"
)

// AppError is the application error type
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
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

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

var (
	// Lookup errors
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrGuestNotFound   = errors.New("guest not found")
	ErrServiceNotFound = errors.New("service not found")

	// Booking errors. ErrRoomFull and ErrOverlappingBooking are soft:
	// the admission engine records them per item instead of failing the batch.
	ErrRoomFull           = errors.New("room is full")
	ErrOverlappingBooking = errors.New("overlapping booking for the same room and guest")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")

	// Auth errors
	ErrUnauthorized = errors.New("unauthorized")
)
