package smt

import (
	"os/exec"
	"testing"

	"github.com/gilsat/gilsat"
	"github.com/stretchr/testify/require"
)

// newZ3Session spawns a real solver, skipping when none is installed.
func newZ3Session(t *testing.T) *Session {
	t.Helper()
	if _, err := exec.LookPath("z3"); err != nil {
		t.Skip("z3 not installed")
	}
	s, err := NewSession(DefaultConfig())
	require.NoError(t, err)
	s.exit = func(code int) { t.Fatalf("session aborted with exit %d", code) }
	t.Cleanup(func() { s.Close() })
	return s
}

func TestZ3Satisfiable(t *testing.T) {
	s := newZ3Session(t)
	gamma := intEnv("x")

	sat, model, err := s.CheckSat(gilsat.NewFormulaSet(eqInt("x", 3)), gamma)
	require.NoError(t, err)
	require.True(t, sat)

	bound := make(map[string]gilsat.Literal)
	s.LiftModel(model, gamma, []string{"x"}, func(name string, lit gilsat.Literal) {
		bound[name] = lit
	})
	require.Equal(t, "3", bound["x"].String())
}

func TestZ3Unsatisfiable(t *testing.T) {
	s := newZ3Session(t)

	sat, err := s.IsSat(gilsat.NewFormulaSet(eqInt("x", 3), eqInt("x", 4)), intEnv("x"))
	require.NoError(t, err)
	require.False(t, sat)
}

func TestZ3UninterpretedLength(t *testing.T) {
	s := newZ3Session(t)
	llenX := gilsat.NewUnaryExpr(gilsat.LSTLEN, &gilsat.LVar{Name: "x"})

	// llen x == 3 together with llen x < 2 has no model.
	fs := gilsat.NewFormulaSet(
		&gilsat.Eq{X: llenX, Y: gilsat.NewLitExpr(gilsat.NewInt(3))},
		&gilsat.Less{X: llenX, Y: gilsat.NewLitExpr(gilsat.NewInt(2))},
	)
	sat, err := s.IsSat(fs, gilsat.NewTypeEnv())
	require.NoError(t, err)
	require.False(t, sat)
}

func TestZ3StringCodes(t *testing.T) {
	s := newZ3Session(t)
	gamma := gilsat.NewTypeEnv()
	gamma.Set("s", gilsat.TString)

	fs := gilsat.NewFormulaSet(&gilsat.Eq{
		X: &gilsat.LVar{Name: "s"},
		Y: gilsat.NewLitExpr(&gilsat.Str{Value: "hello"}),
	})
	sat, model, err := s.CheckSat(fs, gamma)
	require.NoError(t, err)
	require.True(t, sat)

	bound := make(map[string]gilsat.Literal)
	s.LiftModel(model, gamma, []string{"s"}, func(name string, lit gilsat.Literal) {
		bound[name] = lit
	})
	require.Equal(t, `"hello"`, bound["s"].String())
}

func TestZ3SequentialQueries(t *testing.T) {
	s := newZ3Session(t)
	gamma := intEnv("x")

	sat, err := s.IsSat(gilsat.NewFormulaSet(eqInt("x", 1)), gamma)
	require.NoError(t, err)
	require.True(t, sat)

	sat, err = s.IsSat(gilsat.NewFormulaSet(eqInt("x", 1), eqInt("x", 2)), gamma)
	require.NoError(t, err)
	require.False(t, sat)

	// The earlier query's assertions were popped, not accumulated.
	sat, err = s.IsSat(gilsat.NewFormulaSet(eqInt("x", 2)), gamma)
	require.NoError(t, err)
	require.True(t, sat)

	require.Equal(t, 3, s.Stats().SolverCalls)
	sat, err = s.IsSat(gilsat.NewFormulaSet(eqInt("x", 2)), gamma)
	require.NoError(t, err)
	require.True(t, sat)
	require.Equal(t, 3, s.Stats().SolverCalls)
}
