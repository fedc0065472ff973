package errdef

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeUnknown     Code = "unknown"
	CodeColorSyntax Code = "color_syntax"
	CodeFieldValue  Code = "field_value"
	CodeDecode      Code = "decode"
	CodeIO          Code = "io"
)

// Error carries a stable code alongside the message so callers can branch
// on the failure class without string matching.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code Code, format string, args ...interface{}) error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func Wrap(code Code, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf walks the chain and returns the first code it finds.
func CodeOf(err error) Code {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}

func IsCode(err error, code Code) bool {
	return CodeOf(err) == code
}
