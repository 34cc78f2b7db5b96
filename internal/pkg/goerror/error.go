// Package goerror carries the structured error returned by usecases: a
// stable message key for clients, a user-facing message, and the HTTP class.
package goerror

import (
	"errors"
	"log/slog"
	"net/http"
)

var (
	// ErrNotFound is returned by stores when no active row matches.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned by stores on a unique or state conflict.
	ErrConflict = errors.New("resource conflict")
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeServer Type = iota
	TypeBusiness
	TypeValidation
)

var typeNames = [...]string{
	TypeServer:     "ERROR_TYPE_SERVER",
	TypeBusiness:   "ERROR_TYPE_BUSINESS",
	TypeValidation: "ERROR_TYPE_VALIDATION",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "ERROR_TYPE_UNKNOWN"
	}
	return typeNames[t]
}

// Code selects the HTTP status of an error response.
type Code int

const (
	CodeInternal Code = iota
	CodeInvalidFormat
	CodeBadRequest
)

var codeNames = [...]string{
	CodeInternal:      "ERROR_CODE_INTERNAL",
	CodeInvalidFormat: "ERROR_CODE_INVALID_FORMAT",
	CodeBadRequest:    "ERROR_CODE_BAD_REQUEST",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return codeNames[CodeInternal]
	}
	return codeNames[c]
}

// Error is a structured error used across the application.
type Error struct {
	err     error
	msg     string
	key     string
	errType Type
	code    Code
	fields  map[string]string
}

// Error prefers the wrapped cause, then the key, then the message.
func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return e.err.Error()
	case e.key != "":
		return e.key
	case e.msg != "":
		return e.msg
	default:
		return e.errType.String()
	}
}

// LogValue renders every attribute, including the cause hidden from clients.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.errType.String()),
		slog.String("code", e.code.String()),
	}
	if e.key != "" {
		attrs = append(attrs, slog.String("key", e.key))
	}
	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}
	return slog.GroupValue(attrs...)
}

func (e *Error) Msg() string               { return e.msg }
func (e *Error) Key() string               { return e.key }
func (e *Error) Type() Type                { return e.errType }
func (e *Error) Code() Code                { return e.code }
func (e *Error) Fields() map[string]string { return e.fields }
func (e *Error) Unwrap() error             { return e.err }

func (e *Error) StatusCode() int {
	switch e.code {
	case CodeInvalidFormat, CodeBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewServer wraps err for logging; clients only ever see the generic message.
func NewServer(err error) error {
	return &Error{err: err, msg: "Internal server error", errType: TypeServer, code: CodeInternal}
}

func NewBusiness(key, msg string, code Code) error {
	return &Error{key: key, msg: msg, errType: TypeBusiness, code: code}
}

// NewInvalidInput creates a bad-request validation error carrying the
// validator's field map when err exposes one.
func NewInvalidInput(key, msg string, err error) error {
	e := &Error{err: err, key: key, msg: msg, errType: TypeValidation, code: CodeBadRequest}

	var fielder interface{ Values() map[string]string }
	if errors.As(err, &fielder) {
		e.fields = fielder.Values()
	}

	return e
}

// NewInvalidFormat is returned for bodies that are not a single JSON object.
func NewInvalidFormat(msgs ...string) error {
	msg := "Invalid request body"
	if len(msgs) > 0 {
		msg = msgs[0]
	}
	return &Error{msg: msg, errType: TypeValidation, code: CodeInvalidFormat}
}

// KeyOf returns the stable message key carried by err, or "" when err is not
// a keyed *Error.
func KeyOf(err error) string {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.key
	}
	return ""
}
