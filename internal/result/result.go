// Package result provides the success/failure envelope returned by every
// fallible operation in the repository and service layers. Expected failures
// (validation violations, missing rows, storage faults) travel as data inside
// a Result instead of as returned errors or panics, so callers branch on
// IsSuccess rather than using error control flow.
package result

import "fmt"

// Result carries either one value of type T or a non-empty ordered list of
// error messages, never both. Instances are immutable once constructed; the
// only way to build one is through Success, Failure, or Failuref.
type Result[T any] struct {
	value T
	errs  []string
	ok    bool
}

// Success returns a successful Result wrapping the given value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure returns a failed Result carrying the given error messages.
// Message order and duplicates are preserved exactly as passed. The input
// slice is copied, so later mutation by the caller cannot affect the Result.
func Failure[T any](errs ...string) Result[T] {
	copied := make([]string, len(errs))
	copy(copied, errs)
	return Result[T]{errs: copied}
}

// Failuref returns a failed Result with a single fmt.Sprintf-formatted
// message.
func Failuref[T any](format string, args ...any) Result[T] {
	return Result[T]{errs: []string{fmt.Sprintf(format, args...)}}
}

// IsSuccess reports whether the Result was constructed via Success.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// Value returns the wrapped value. It is only meaningful when IsSuccess is
// true; on a failed Result it returns the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Errors returns a copy of the error messages, in the order they were given
// to Failure. The copy keeps the Result immutable. Empty on success.
func (r Result[T]) Errors() []string {
	if len(r.errs) == 0 {
		return nil
	}
	copied := make([]string, len(r.errs))
	copy(copied, r.errs)
	return copied
}

// FirstError returns the first error message, or "" for a successful Result.
// Handy for logs where a single line is enough.
func (r Result[T]) FirstError() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}
