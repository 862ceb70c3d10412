package docsite

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error. Err holds the underlying
// cause, if any, and is exposed through Unwrap.
type Error struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("docsite error: code=%s message=%s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("docsite error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// DocumentNotFound returns the error reported when the resource for a
// document could not be retrieved. The message names the attempted path.
func DocumentNotFound(name, path string, cause error) *Error {
	msg := fmt.Sprintf("failed to load %s", path)
	var e *Error
	if errors.As(cause, &e) {
		msg += ": " + e.Message
	} else if cause != nil {
		msg += ": " + cause.Error()
	}
	return &Error{Code: ENOTFOUND, Message: msg, Err: cause}
}

// RendererUnavailable returns the error reported when a rendering
// capability is missing at call time.
func RendererUnavailable(capability string) *Error {
	return Errorf(EUNAVAILABLE, "renderer unavailable: no %s configured", capability)
}
