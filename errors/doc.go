// Package errors provides lightweight error handling and classification primitives.
//
// The errors are classified using the 'class' subpackage. Each error instance
// has it's own trackable ID, an optional source location pointing into the document
// that caused it and the operation where it was created.
package errors
