// Package smt is the satisfiability bridge between the GIL program logic and
// an SMT solver spoken to over the textual SMT-LIB command protocol. It
// encodes dynamically-typed GIL values into statically-sorted solver terms,
// translates formula sets into incremental queries, caches translations and
// verdicts, and lifts counter-models back into concrete GIL literals.
package smt

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Verdict is a solver answer to check-sat.
type Verdict int

const (
	VerdictUnknown = Verdict(iota)
	VerdictSat
	VerdictUnsat
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictSat:
		return "sat"
	case VerdictUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// UnsupportedError is returned when an operator has no encoding rule. It
// carries the operator's display name so callers can report or fall back.
type UnsupportedError struct {
	Op string
}

// Error returns the error as a string.
func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported construct: %s", e.Op)
}

// precondViolation marks an internal representation mismatch: wrong encoding
// kind for an accessor, a non-boolean quantifier body, a program variable in
// a logic context. These indicate upstream bugs, never solver conditions, and
// abort the query rather than propagating as errors.
type precondViolation struct {
	msg string
}

func (v *precondViolation) Error() string { return v.msg }

// violate panics with a precondition violation.
func violate(format string, args ...interface{}) {
	panic(&precondViolation{msg: fmt.Sprintf(format, args...)})
}

// Config holds the solver-session configuration. The zero value is unusable;
// start from DefaultConfig.
type Config struct {
	// SolverPath and SolverArgs name the solver binary and the arguments
	// that put it into incremental SMT-LIB mode on stdin.
	SolverPath string   `toml:"solver_path"`
	SolverArgs []string `toml:"solver_args"`

	// TimeoutMS is the per-query solver-side budget in milliseconds. The
	// solver reports an exceeded budget as an unknown verdict.
	TimeoutMS int `toml:"timeout_ms"`

	// UnderApprox selects under-approximate reasoning: solver-unknown
	// verdicts surface as ErrSolverUnknown instead of aborting the process.
	UnderApprox bool `toml:"under_approximation"`

	// QueryLogDir, when set, receives one replayable artifact per fresh
	// query. Write-only; debugging aid with no effect on results.
	QueryLogDir string `toml:"query_log_dir"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		SolverPath: "z3",
		SolverArgs: []string{"-in", "-smt2"},
		TimeoutMS:  30000,
	}
}

// LoadConfig reads a TOML configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return config, errors.Wrap(err, "smt: load config")
	}
	return config, nil
}
