package errors

import (
	"errors"
	"fmt"
)

// Run-level sentinels. ErrReconnectRequired is the only error that aborts a
// sync run outright: the provider token is invalid or expired and the merchant
// has to go through the connect flow again.
var (
	ErrReconnectRequired = errors.New("provider token rejected, reconnect required")
	ErrShopNotConnected  = errors.New("shop has no connection record")
	ErrThrottled         = errors.New("store throttled the request")
)

// Error is a message-first error that can carry a machine code and a cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message.
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithCode wraps an error with a code and message.
func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetCode returns the error code if it exists.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the error message.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsReconnectRequired reports whether the run failed on provider auth.
func IsReconnectRequired(err error) bool {
	return errors.Is(err, ErrReconnectRequired)
}

// IsShopNotConnected reports whether no connection record exists for the shop.
func IsShopNotConnected(err error) bool {
	return errors.Is(err, ErrShopNotConnected)
}

// IsThrottled reports whether the store flow-controlled the call.
func IsThrottled(err error) bool {
	return errors.Is(err, ErrThrottled)
}
