package parser

import (
	"github.com/mholloway/ptr-tracker/constants"
	"github.com/mholloway/ptr-tracker/internal/entity"
)

type state int

const (
	stateSuccess state = iota
	stateWarnings
	stateError
)

// Result is the tri-state outcome every extraction stage returns: a clean
// success, a success carrying warnings, or a fatal error. An error result
// never carries data and its issues are all ERROR severity.
type Result[T any] struct {
	state  state
	data   T
	issues []entity.ParseIssue
}

// Ok wraps data with no diagnostics.
func Ok[T any](data T) Result[T] {
	return Result[T]{state: stateSuccess, data: data}
}

// OkWarn wraps data with warnings; with an empty list it degrades to Ok.
func OkWarn[T any](data T, warnings []entity.ParseIssue) Result[T] {
	if len(warnings) == 0 {
		return Ok(data)
	}
	return Result[T]{state: stateWarnings, data: data, issues: warnings}
}

// Fail produces a fatal outcome from the given issues.
func Fail[T any](issues ...entity.ParseIssue) Result[T] {
	return Result[T]{state: stateError, issues: issues}
}

// FromIssues builds the outcome implied by a combined issue set: any ERROR
// issue makes the whole result an error (keeping only the error issues), any
// remaining issue yields a success with warnings, and an empty set is a clean
// success.
func FromIssues[T any](data T, issues []entity.ParseIssue) Result[T] {
	var errs []entity.ParseIssue
	for _, issue := range issues {
		if issue.IsError() {
			errs = append(errs, issue)
		}
	}
	if len(errs) > 0 {
		return Fail[T](errs...)
	}
	return OkWarn(data, issues)
}

func (r Result[T]) IsSuccess() bool { return r.state != stateError }

func (r Result[T]) IsError() bool { return r.state == stateError }

func (r Result[T]) HasWarnings() bool { return r.state == stateWarnings }

// Data returns the payload and whether one is present.
func (r Result[T]) Data() (T, bool) {
	if r.state == stateError {
		var zero T
		return zero, false
	}
	return r.data, true
}

// AllIssues returns every diagnostic the result carries, warnings and errors
// alike.
func (r Result[T]) AllIssues() []entity.ParseIssue {
	return r.issues
}

// Warnings returns the warning-severity issues on a non-error result.
func (r Result[T]) Warnings() []entity.ParseIssue {
	if r.state != stateWarnings {
		return nil
	}
	return r.issues
}

// Errors returns the issues on an error result.
func (r Result[T]) Errors() []entity.ParseIssue {
	if r.state != stateError {
		return nil
	}
	return r.issues
}

// ErrorCount counts ERROR-severity issues.
func (r Result[T]) ErrorCount() int {
	n := 0
	for _, issue := range r.issues {
		if issue.Severity == constants.SeverityError {
			n++
		}
	}
	return n
}

// Map transforms the success payload, preserving the diagnostic state.
func Map[T, R any](r Result[T], f func(T) R) Result[R] {
	switch r.state {
	case stateError:
		return Result[R]{state: stateError, issues: r.issues}
	case stateWarnings:
		return Result[R]{state: stateWarnings, data: f(r.data), issues: r.issues}
	default:
		return Ok(f(r.data))
	}
}
