package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Reference resolution errors
	ErrInvalidConversion     ErrorCode = "INVALID_CONVERSION"
	ErrUnresolvableReference ErrorCode = "UNRESOLVABLE_REFERENCE"
	ErrInvalidTarget         ErrorCode = "INVALID_TARGET"
	ErrFontRead              ErrorCode = "FONT_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Store and filesystem errors
	ErrStoreRead  ErrorCode = "STORE_READ"
	ErrStoreWrite ErrorCode = "STORE_WRITE"
	ErrFileCopy   ErrorCode = "FILE_COPY"
)

// FontProxyError represents a structured error with code and details
type FontProxyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FontProxyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FontProxyError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FontProxyError with the same code
func (e *FontProxyError) Is(target error) bool {
	var targetErr *FontProxyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

func build(wrapped error, code ErrorCode, message string) *FontProxyError {
	return &FontProxyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: wrapped,
	}
}

// New creates a FontProxyError with the given code and message
func New(code ErrorCode, message string) *FontProxyError {
	return build(nil, code, message)
}

// Newf is New with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FontProxyError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *FontProxyError {
	if err == nil {
		return nil
	}
	return build(err, code, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FontProxyError {
	if err == nil {
		return nil
	}
	return build(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *FontProxyError) WithDetail(key string, value interface{}) *FontProxyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode reports whether the outermost FontProxyError in err's chain
// carries one of codes.
func IsErrorCode(err error, codes ...ErrorCode) bool {
	var fpErr *FontProxyError
	if !errors.As(err, &fpErr) {
		return false
	}
	for _, code := range codes {
		if fpErr.Code == code {
			return true
		}
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FontProxyError
func GetErrorCode(err error) ErrorCode {
	var fpErr *FontProxyError
	if errors.As(err, &fpErr) {
		return fpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FontProxyError
func GetErrorDetails(err error) map[string]interface{} {
	var fpErr *FontProxyError
	if errors.As(err, &fpErr) {
		return fpErr.Details
	}
	return nil
}
