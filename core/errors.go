/*
Package core holds functionality shared by all packages of fontrun.

Errors of fontrun carry a code and a message suitable for end users. Font
lookup fails in a small number of ways: a font file or family is missing, a
CSS value or font file is malformed, a webfont cannot be downloaded, or a
font format is not supported. Clients switch on the code:

	if core.Code(err) == core.EMISSING {
	    // try the next catalog
	}

Functions returning errors from this package never return a typed nil.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package core

import (
	"errors"
	"fmt"
	"os"
)

// Error codes
const (
	NOERROR      int = 0
	EMISSING     int = 122 // font file, family, stylesheet or cache folder not found
	EINVALID     int = 123 // malformed CSS value, font data or argument
	ECONNECTION  int = 124 // webfont service or font URL not reachable
	EINTERNAL    int = 125 // errors without a code of their own
	EUNSUPPORTED int = 126 // font format (e.g. WOFF) or platform not supported
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case ECONNECTION:
		return "cannot connect"
	case EINTERNAL:
		return "internal error"
	case EUNSUPPORTED:
		return "unsupported"
	}
	return "undefined error"
}

// AppError is an error with an error code and a message for end users.
// All errors created by WrapError, ErrorWithCode and Error are AppErrors.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %v", e.code, e.error)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain, using the code's
// standard text as user message. A nil err is replaced by that text.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError adds an error code and a user message to err, e.g.
//
//	core.WrapError(err, core.EMISSING, "cannot read font file %s", filename)
//
// A nil err is replaced by the code's standard text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the outermost error code in err's chain, EINTERNAL for errors
// without a code and NOERROR for nil.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the outermost user message in err's chain. For errors
// without a message it returns the text of their code, for nil "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with a code and a user message. Code NOERROR
// results in a nil error.
func Error(code int, format string, v ...interface{}) error {
	if code == NOERROR {
		return nil
	}
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints an error's user message to stderr. It is used by
// loaders which cannot propagate an error to a caller, e.g. when running
// within a sync.Once.
func UserError(err error) {
	if e, ok := err.(AppError); ok {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
