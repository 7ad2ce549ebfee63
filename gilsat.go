// Package gilsat defines the GIL program logic: typed literals, symbolic
// variables, expressions and assertions, together with the formula sets and
// type environments that the smt subpackage turns into solver queries.
package gilsat

import (
	"errors"
	"fmt"
)

var (
	// ErrSolverUnknown is returned when the solver cannot decide a query
	// and the session is configured for under-approximate reasoning.
	ErrSolverUnknown = errors.New("solver returned unknown")

	// ErrSolverProtocol is returned when the solver responds outside the
	// command protocol the session expects.
	ErrSolverProtocol = errors.New("solver protocol violation")
)

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
