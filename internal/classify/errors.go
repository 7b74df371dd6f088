package classify

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes classification failures
type ErrorKind string

const (
	// KindEmptyInput indicates a blank headline, rejected before any request
	KindEmptyInput ErrorKind = "empty_input"

	// KindTooLong indicates a headline above MaxTextLength, rejected before any request
	KindTooLong ErrorKind = "too_long"

	// KindTransport indicates a network failure or an unreadable response
	KindTransport ErrorKind = "transport"

	// KindBackendRejection indicates a non-2xx status or success:false
	KindBackendRejection ErrorKind = "backend_rejection"

	// KindClipboard indicates the copy action could not reach the clipboard
	KindClipboard ErrorKind = "clipboard"
)

// User-facing messages
const (
	MsgEmptyInput       = "Please enter a headline to classify"
	MsgPredictFailed    = "Failed to classify headline. Please try again."
	MsgPredictRejected  = "Prediction failed"
	MsgUnknownError     = "Unknown error"
	MsgModelInfoFailed  = "Failed to load model information"
	MsgClipboardFailure = "Failed to copy to clipboard"
)

// MsgTooLong is shown when a headline exceeds MaxTextLength
var MsgTooLong = fmt.Sprintf("Text exceeds maximum length of %d characters", MaxTextLength)

// Error is the single error type surfaced by classification operations.
// Message is always safe to show to the user verbatim.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("kind=%s", e.Kind)}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is
var (
	ErrEmptyInput       = &Error{Kind: KindEmptyInput}
	ErrTooLong          = &Error{Kind: KindTooLong}
	ErrTransport        = &Error{Kind: KindTransport}
	ErrBackendRejection = &Error{Kind: KindBackendRejection}
	ErrClipboard        = &Error{Kind: KindClipboard}
)

// NewError creates an error of the given kind
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewErrorWithCause creates an error of the given kind wrapping cause
func NewErrorWithCause(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// NewRejection creates a backend rejection, preferring the backend's own message
func NewRejection(statusCode int, backendMessage, fallback string) *Error {
	msg := strings.TrimSpace(backendMessage)
	if msg == "" {
		msg = fallback
	}
	return &Error{Kind: KindBackendRejection, Message: msg, StatusCode: statusCode}
}

// UserMessage extracts the message to display for err. Errors that are not
// *Error fall back to fallback so internal details never reach the screen.
func UserMessage(err error, fallback string) string {
	var ce *Error
	if errors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}

// KindOf returns the kind of err, or "" if err is not a classification error
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// IsLocal reports whether err was raised before any request was made
func IsLocal(err error) bool {
	switch KindOf(err) {
	case KindEmptyInput, KindTooLong:
		return true
	default:
		return false
	}
}
