package errors

import (
	"strings"

	"github.com/neuronlabs/xgraph/errors/class"
)

// MultiError is the slice of errors parsable into a single error.
type MultiError []*Error

// Error implements error interface.
func (m MultiError) Error() string {
	sb := &strings.Builder{}

	for i, e := range m {
		sb.WriteString(e.Error())
		if i != len(m)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// ByClass returns the errors of given class.
func (m MultiError) ByClass(c class.Class) MultiError {
	var result MultiError
	for _, e := range m {
		if e.Classification == c {
			result = append(result, e)
		}
	}
	return result
}

// OrNil returns nil if the multi error is empty, otherwise the multi error itself.
// It prevents from returning non nil error interface with empty slice.
func (m MultiError) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}
