package errors

import (
	"errors"

	"github.com/neuronlabs/xgraph/errors/class"
)

// IsClass checks if given error is of given 'class'.
// Wrapped errors and MultiError are checked as well.
func IsClass(err error, c class.Class) bool {
	if multi, ok := err.(MultiError); ok {
		for _, e := range multi {
			if IsClass(e, c) {
				return true
			}
		}
		return false
	}
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class() == c
}

// HasMajor checks if given error is classified with the major 'm'.
func HasMajor(err error, m class.Major) bool {
	var classError ClassError
	if !errors.As(err, &classError) {
		return false
	}
	return classError.Class().IsMajor(m)
}
