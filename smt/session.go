package smt

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/immutable"
	"github.com/davecgh/go-spew/spew"
	"github.com/gilsat/gilsat"
	"github.com/pkg/errors"
)

// Stats counts session activity. SolverCalls is the probe that makes cache
// hits observable: a repeated query must not move it.
type Stats struct {
	CheckN      int
	CacheHits   int
	SolverCalls int
	SolveTime   time.Duration
}

// satResult is a satisfiability cache entry. A nil model means unsat.
type satResult struct {
	model *Model
}

// Session owns every mutable registry of the bridge: the declaration
// registry, the string-interning table, the repetition memo with its
// fresh-name counter, and the translation and satisfiability caches. It is
// constructed once per process and logically reset, never destroyed,
// between queries.
//
// Both caches key on the formula set only, not on the type environment; a
// formula set must always be checked under a consistent gamma within one
// process run.
//
// The push/pop scoping protocol is inherently sequential, so a single mutex
// keeps one query in flight at a time.
type Session struct {
	mu      sync.Mutex
	config  Config
	backend Backend

	registry *Registry
	theory   *theory
	strings  *StringTable
	memo     *repeatMemo

	transCache *immutable.SortedMap // formula-set key -> []string
	satCache   *immutable.SortedMap // formula-set key -> *satResult

	pushed bool
	queryN int
	stats  Stats

	logger *slog.Logger
	exit   func(int) // overridden in tests
}

// stringComparer compares two string keys. Implements immutable.Comparer.
type stringComparer struct{}

func (c *stringComparer) Compare(a, b interface{}) int {
	return strings.Compare(a.(string), b.(string))
}

// NewSession spawns the configured solver and returns a session bound to it.
func NewSession(config Config) (*Session, error) {
	backend, err := StartSolver(config)
	if err != nil {
		return nil, err
	}
	return NewSessionWith(config, backend), nil
}

// NewSessionWith returns a session over an already running backend.
func NewSessionWith(config Config, backend Backend) *Session {
	s := &Session{
		config:     config,
		backend:    backend,
		registry:   NewRegistry(),
		strings:    NewStringTable(),
		memo:       newRepeatMemo(),
		transCache: immutable.NewSortedMap(&stringComparer{}),
		satCache:   immutable.NewSortedMap(&stringComparer{}),
		logger:     slog.Default(),
		exit:       os.Exit,
	}
	s.theory = newTheory(s.registry, s.strings)
	return s
}

// Close shuts the backend down.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Close()
}

// Stats returns a copy of the session counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Strings returns the session's interning table.
func (s *Session) Strings() *StringTable { return s.strings }

// IsSat reports whether the formula set is satisfiable under gamma.
func (s *Session) IsSat(fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv) (bool, error) {
	sat, _, err := s.CheckSat(fs, gamma)
	return sat, err
}

// CheckSat decides the formula set under gamma, returning the counter-model
// on satisfiability. Results are cached by formula-set value: a repeated
// query performs no solver interaction at all.
func (s *Session) CheckSat(fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv) (sat bool, model *Model, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.CheckN++
	key := fs.Key()

	if v, ok := s.satCache.Get(key); ok {
		s.stats.CacheHits++
		result := v.(*satResult)
		return result.model != nil, result.model, nil
	}

	// Representation preconditions are upstream bugs: abort with full
	// reproduction context instead of propagating them as errors.
	defer func() {
		if r := recover(); r != nil {
			pv, ok := r.(*precondViolation)
			if !ok {
				panic(r)
			}
			s.fatal(pv.msg, fs, gamma, nil)
		}
	}()

	commands, err := s.translation(key, fs, gamma)
	if err != nil {
		return false, nil, err
	}

	verdict, err := s.solve(fs, gamma, commands)
	if err != nil {
		return false, nil, err
	}

	switch verdict {
	case VerdictUnsat:
		s.satCache = s.satCache.Set(key, &satResult{})
		return false, nil, nil

	case VerdictSat:
		raw, err := s.backend.Model()
		if err != nil {
			s.fatal(err.Error(), fs, gamma, commands)
			return false, nil, err
		}
		model, err := ParseModel(raw)
		if err != nil {
			s.fatal(err.Error(), fs, gamma, commands)
			return false, nil, err
		}
		s.satCache = s.satCache.Set(key, &satResult{model: model})
		return true, model, nil

	default:
		// Never silently treated as either answer. Under-approximate
		// callers handle the typed failure; a precise engine cannot
		// continue past solver indecision.
		if s.config.UnderApprox {
			return false, nil, gilsat.ErrSolverUnknown
		}
		s.fatal("solver returned unknown", fs, gamma, commands)
		return false, nil, gilsat.ErrSolverUnknown
	}
}

// translation returns the cached command list for the key, translating and
// caching on first sight. The repetition memo is cleared first so fresh
// names restart per query.
func (s *Session) translation(key string, fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv) ([]string, error) {
	if v, ok := s.transCache.Get(key); ok {
		return v.([]string), nil
	}
	s.memo.reset()
	commands, err := translateFormulas(s.theory, s.memo, fs, gamma)
	if err != nil {
		return nil, err
	}
	s.transCache = s.transCache.Set(key, commands)
	return commands, nil
}

// solve runs the incremental reset protocol and submits the query: pop the
// previous scope, push a fresh one, replay every declaration issued so far
// in first-declaration order, then assert the query.
func (s *Session) solve(fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv, commands []string) (Verdict, error) {
	var reset []string
	if s.pushed {
		reset = append(reset, "(pop 1)")
	}
	reset = append(reset, "(push 1)")
	s.pushed = true

	emitted := make([]string, 0, len(reset)+len(s.registry.Replay())+len(commands))
	emitted = append(emitted, reset...)
	emitted = append(emitted, s.registry.Replay()...)
	emitted = append(emitted, commands...)

	s.queryN++
	s.dumpQuery(fs, gamma, emitted)

	if err := s.backend.Send(emitted); err != nil {
		s.fatal(err.Error(), fs, gamma, commands)
		return VerdictUnknown, err
	}

	s.stats.SolverCalls++
	t := time.Now()
	verdict, err := s.backend.CheckSat()
	s.stats.SolveTime += time.Since(t)
	if err != nil {
		if errors.Is(err, gilsat.ErrSolverProtocol) {
			s.fatal(err.Error(), fs, gamma, commands)
		}
		return VerdictUnknown, err
	}

	s.logger.Debug("smt query",
		slog.Int("query", s.queryN),
		slog.Int("formulas", fs.Len()),
		slog.String("verdict", verdict.String()))
	return verdict, nil
}

// dumpQuery persists a fresh query as a self-contained replayable artifact.
// Write-only debugging aid; failures only warn.
func (s *Session) dumpQuery(fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv, emitted []string) {
	if s.config.QueryLogDir == "" {
		return
	}
	if err := os.MkdirAll(s.config.QueryLogDir, 0o755); err != nil {
		s.logger.Warn("smt query log", slog.String("error", err.Error()))
		return
	}

	path := filepath.Join(s.config.QueryLogDir, fmt.Sprintf("query-%04d.smt2", s.queryN))
	if err := os.WriteFile(path, []byte(s.renderQuery(fs, gamma, emitted)), 0o644); err != nil {
		s.logger.Warn("smt query log", slog.String("error", err.Error()))
	}
}

func (s *Session) renderQuery(fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv, emitted []string) string {
	var sb strings.Builder
	sb.WriteString("; formulas: " + fs.String() + "\n")
	sb.WriteString("; gamma:\n")
	for _, name := range gamma.Names() {
		typ, _ := gamma.Lookup(name)
		fmt.Fprintf(&sb, ";   %s: %s\n", name, spew.Sprintf("%v", typ))
	}
	for _, command := range emitted {
		sb.WriteString(command + "\n")
	}
	sb.WriteString("(check-sat)\n")
	return sb.String()
}

// fatal prints full reproduction context to the diagnostic sink and
// terminates the process. There is no silent continuation past an unsound
// state.
func (s *Session) fatal(msg string, fs *gilsat.FormulaSet, gamma *gilsat.TypeEnv, commands []string) {
	s.logger.Error("smt fatal",
		slog.String("error", msg),
		slog.String("formulas", fs.String()))
	fmt.Fprintf(os.Stderr, "smt: fatal: %s\n%s", msg, s.renderQuery(fs, gamma, commands))
	s.exit(1)
}
