package errors

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/neuronlabs/xgraph/errors/class"
)

// compile time check for the ClassError interface.
var _ ClassError = &Error{}

// Location is the position in the source document where an error occurred.
type Location struct {
	File   string
	Line   int
	Column int
}

// IsZero checks if the location is not set.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String implements fmt.Stringer interface.
func (l Location) String() string {
	var sb strings.Builder
	if l.File != "" {
		sb.WriteString(l.File)
	}
	if l.Line > 0 {
		if sb.Len() > 0 {
			sb.WriteRune(':')
		}
		sb.WriteString(strconv.Itoa(l.Line))
		sb.WriteRune(':')
		sb.WriteString(strconv.Itoa(l.Column))
	}
	return sb.String()
}

// Error is the common error definition used in the xgraph project.
type Error struct {
	// ID is a unique error instance identification number.
	ID uuid.UUID
	// Classification defines the error classification.
	Classification class.Class
	// Detail contains the detailed information.
	Detail string
	// Message is a message used as a string for the
	// golang error interface implementation.
	Message string
	// Location is the source document position related with the error.
	Location Location
	// Operation is the operation name when the error occurred.
	Operation string
	// Err is the wrapped cause of the error.
	Err error
}

// New creates new error with given 'class' and message 'message'.
func New(c class.Class, message string) *Error {
	err := newError(c)
	err.Message = message
	return err
}

// Newf creates new error instance with provided 'class' with formatted message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	err := newError(c)
	err.Message = fmt.Sprintf(format, args...)
	return err
}

// Wrap creates new error of given 'class' that wraps the 'cause' error.
func Wrap(c class.Class, cause error, message string) *Error {
	err := newError(c)
	err.Message = message
	err.Err = cause
	return err
}

// Wrapf creates new error of given 'class' that wraps the 'cause' error with the formatted message.
func Wrapf(c class.Class, cause error, format string, args ...interface{}) *Error {
	err := newError(c)
	err.Message = fmt.Sprintf(format, args...)
	err.Err = cause
	return err
}

// Class implements ClassError.
func (e *Error) Class() class.Class {
	return e.Classification
}

// Error implements error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	if !e.Location.IsZero() {
		sb.WriteString(e.Location.String())
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// SetLocation sets the source location of the error and returns itself.
func (e *Error) SetLocation(loc Location) *Error {
	e.Location = loc
	return e
}

// SetDetail sets the error 'detail' and returns itself.
func (e *Error) SetDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// SetDetailf sets the error's formatted detail with provided and returns itself.
func (e *Error) SetDetailf(format string, args ...interface{}) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WrapDetail wraps the 'detail' for given error. Wrapping appends the new detail
// to the front of error detail message.
func (e *Error) WrapDetail(detail string) *Error {
	if e.Detail == "" {
		e.Detail = detail
	} else {
		e.Detail = detail + " " + e.Detail
	}
	return e
}

func newError(c class.Class) *Error {
	err := &Error{
		ID:             uuid.New(),
		Classification: c,
	}
	pc, _, _, ok := runtime.Caller(2)
	details := runtime.FuncForPC(pc)
	if ok && details != nil {
		file, line := details.FileLine(pc)
		_, singleFile := filepath.Split(file)
		err.Operation = details.Name() + "#" + singleFile + ":" + strconv.Itoa(line)
	}
	return err
}
