package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of application error
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"
	ErrCodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	ErrCodeUserExists   ErrorCode = "USER_EXISTS"
	ErrCodeInvalidEmail ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"

	// Business errors
	ErrCodeInvalidOperation  ErrorCode = "INVALID_OPERATION"
	ErrCodeHasActiveBooking  ErrorCode = "HAS_ACTIVE_BOOKING"
	ErrCodeRoomOccupied      ErrorCode = "ROOM_OCCUPIED"
	ErrCodeMinOrderNotMet    ErrorCode = "MIN_ORDER_NOT_MET"
	ErrCodeStatusRegression  ErrorCode = "STATUS_REGRESSION"
	ErrCodeDuplicateOrderNum ErrorCode = "DUPLICATE_ORDER_NUMBER"
)

// AppError carries an error code alongside a human-readable message
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

// NewAppError builds an AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError reports whether err is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts the AppError from err, or nil
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return nil
}

var (
	// Auth errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrUnauthorized      = errors.New("unauthorized")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingCheckedOut = errors.New("booking already checked out")
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomOccupied      = errors.New("room already has an active booking")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderInvalid      = errors.New("invalid order")
	ErrOrderCancelled    = errors.New("order already cancelled")
	ErrStatusRegression  = errors.New("item sync cannot regress order status")
	ErrOrderNumberTaken  = errors.New("order number already exists")
	ErrMinOrderNotMet    = errors.New("cart subtotal below promotion minimum")
	ErrEmptyCart         = errors.New("order must contain at least one item")

	// Promotion errors
	ErrPromotionNotFound = errors.New("promotion not found")

	// Data request errors
	ErrHasActiveBooking = errors.New("has_active_booking")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidFormat   = errors.New("invalid format")
)
