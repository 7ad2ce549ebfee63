package smt

import (
	"strings"
	"testing"

	"github.com/gilsat/gilsat"
	"github.com/stretchr/testify/require"
)

func newTestTheory() *theory {
	return newTheory(NewRegistry(), NewStringTable())
}

func TestTheoryDeclarations(t *testing.T) {
	th := newTestTheory()
	replay := th.registry.Replay()

	require.Contains(t, replay,
		"(define-sort GList () (Seq GLit))")
	require.Contains(t, replay,
		"(define-sort GSet () (Array GLit Bool))")
	require.Contains(t, replay,
		"(declare-fun llen (GList) Int)")
	require.Contains(t, replay,
		"(declare-fun sless (Int Int) Bool)")

	var sawLit, sawExt bool
	for _, cmd := range replay {
		switch {
		case cmd == "(declare-datatype GExt ((Sing (singValue GLit)) (SetOf (setValue GSet))))":
			sawExt = true
		case strings.HasPrefix(cmd, "(declare-datatype GLit ("):
			sawLit = true
		}
	}
	require.True(t, sawLit, "GLit datatype not declared")
	require.True(t, sawExt, "GExt datatype not declared")
}

func TestSimpleWrap(t *testing.T) {
	th := newTestTheory()

	t.Run("IntRoundTrip", func(t *testing.T) {
		w := th.SimpleWrap(th.native(gilsat.TInt, "42"))
		require.Equal(t, KindSimple, w.Kind())
		require.Equal(t, "(IntV 42)", w.Term())
		require.Equal(t, "(intValue (IntV 42))", th.Int(w))
	})

	t.Run("SingletonStaysBare", func(t *testing.T) {
		w := th.SimpleWrap(th.native(gilsat.TUndefined, "Undef"))
		require.Equal(t, "Undef", w.Term())
	})

	t.Run("ListWraps", func(t *testing.T) {
		w := th.SimpleWrap(th.native(gilsat.TList, "l"))
		require.Equal(t, "(ListV l)", w.Term())
		require.Equal(t, "(listValue (ListV l))", th.List(w))
	})

	t.Run("BitvectorWrapsThroughWidth", func(t *testing.T) {
		w := th.SimpleWrap(th.native(gilsat.TBitvector(8), "b"))
		require.Equal(t, "(bvWrap8 b)", w.Term())
		require.Contains(t, th.registry.Replay(),
			"(define-fun bvWrap8 ((x (_ BitVec 8))) GLit (BvV 8 (bv2nat x)))")
		require.Contains(t, th.registry.Replay(),
			"(define-fun bvUnwrap8 ((x GLit)) (_ BitVec 8) ((_ int2bv 8) (bvValue x)))")
	})

	t.Run("SetCannotBeSimplyWrapped", func(t *testing.T) {
		require.Panics(t, func() {
			th.SimpleWrap(th.native(gilsat.TSet, "s"))
		})
	})

	t.Run("AlreadySimpleIsIdentity", func(t *testing.T) {
		w := th.SimpleWrap(th.native(gilsat.TBool, "p"))
		require.Same(t, w, th.SimpleWrap(w))
	})
}

func TestExtendWrap(t *testing.T) {
	th := newTestTheory()

	t.Run("Scalar", func(t *testing.T) {
		w := th.ExtendWrap(th.native(gilsat.TInt, "42"))
		require.Equal(t, KindExtended, w.Kind())
		require.Equal(t, "(Sing (IntV 42))", w.Term())
		require.Equal(t, "(intValue (singValue (Sing (IntV 42))))", th.Int(w))
	})

	t.Run("Set", func(t *testing.T) {
		w := th.ExtendWrap(th.native(gilsat.TSet, "s"))
		require.Equal(t, "(SetOf s)", w.Term())
		require.Equal(t, "(setValue (SetOf s))", th.Set(w))
	})
}

func TestAccessors(t *testing.T) {
	th := newTestTheory()

	t.Run("NativeMismatchIsFatal", func(t *testing.T) {
		require.Panics(t, func() { th.Int(th.native(gilsat.TBool, "p")) })
		require.Panics(t, func() { th.Set(th.native(gilsat.TInt, "1")) })
	})

	t.Run("SetOfSimpleIsFatal", func(t *testing.T) {
		simple := th.SimpleWrap(th.native(gilsat.TInt, "1"))
		require.Panics(t, func() { th.Set(simple) })
	})

	t.Run("BvUnwrapsSimple", func(t *testing.T) {
		simple := newEncoding(KindSimple, nil, "x")
		require.Equal(t, "(bvUnwrap16 x)", th.Bv(simple, 16))
	})

	t.Run("BvWidthMismatchIsFatal", func(t *testing.T) {
		require.Panics(t, func() { th.Bv(th.native(gilsat.TBitvector(8), "b"), 16) })
	})
}

func TestTypeOf(t *testing.T) {
	th := newTestTheory()

	t.Run("NativeIsConstant", func(t *testing.T) {
		enc := th.TypeOf(th.native(gilsat.TInt, "x"))
		require.Equal(t, KindNative, enc.Kind())
		require.Equal(t, gilsat.TType, enc.Type())
		require.Equal(t, "IntT", enc.Term())
	})

	t.Run("BitvectorCarriesWidth", func(t *testing.T) {
		enc := th.TypeOf(th.native(gilsat.TBitvector(32), "b"))
		require.Equal(t, "(BvT 32)", enc.Term())
	})

	t.Run("SimpleUsesRecognizerCascade", func(t *testing.T) {
		enc := th.TypeOf(newEncoding(KindSimple, nil, "v"))
		require.Contains(t, enc.Term(), "(ite (isNull v) NullT")
		require.Contains(t, enc.Term(), "(ite (isBvV v) (BvT (bvWidth v))")
		require.Contains(t, enc.Term(), "UndefinedT")
	})

	t.Run("ExtendedTestsSetFirst", func(t *testing.T) {
		enc := th.TypeOf(newEncoding(KindExtended, nil, "e"))
		require.Contains(t, enc.Term(), "(ite (isSetOf e) SetT")
		require.Contains(t, enc.Term(), "(singValue e)")
	})
}

func TestEq(t *testing.T) {
	th := newTestTheory()

	t.Run("SameNativeType", func(t *testing.T) {
		enc := th.Eq(th.native(gilsat.TInt, "x"), th.native(gilsat.TInt, "3"))
		require.Equal(t, "(= x 3)", enc.Term())
		require.Equal(t, gilsat.TBool, enc.Type())
	})

	t.Run("BoolLiteralCollapses", func(t *testing.T) {
		p := th.native(gilsat.TBool, "(p)")
		require.Equal(t, "(p)", th.Eq(th.native(gilsat.TBool, "true"), p).Term())
		require.Equal(t, "(p)", th.Eq(p, th.native(gilsat.TBool, "true")).Term())
		require.Equal(t, "(not (p))", th.Eq(th.native(gilsat.TBool, "false"), p).Term())
		require.Equal(t, "(not (p))", th.Eq(p, th.native(gilsat.TBool, "false")).Term())
	})

	t.Run("NativeTypeMismatchIsFatal", func(t *testing.T) {
		require.Panics(t, func() {
			th.Eq(th.native(gilsat.TInt, "x"), th.native(gilsat.TNumber, "y"))
		})
	})

	t.Run("MixedKindsSimplyWrap", func(t *testing.T) {
		enc := th.Eq(th.native(gilsat.TInt, "5"), newEncoding(KindSimple, nil, "v"))
		require.Equal(t, "(= (IntV 5) v)", enc.Term())
	})

	t.Run("SetLikeSideForcesExtendedWrap", func(t *testing.T) {
		enc := th.Eq(th.native(gilsat.TSet, "s"), newEncoding(KindExtended, nil, "e"))
		require.Equal(t, "(= (SetOf s) e)", enc.Term())

		enc = th.Eq(newEncoding(KindSimple, nil, "v"), newEncoding(KindExtended, nil, "e"))
		require.Equal(t, "(= (Sing v) e)", enc.Term())
	})

	t.Run("SameKindComparesDirectly", func(t *testing.T) {
		enc := th.Eq(newEncoding(KindExtended, nil, "a"), newEncoding(KindExtended, nil, "b"))
		require.Equal(t, "(= a b)", enc.Term())
	})
}

func TestEncodingMerge(t *testing.T) {
	a := newEncoding(KindNative, gilsat.TInt, "a")
	a.addConst(ConstDecl{Name: "a", Sort: "Int"})
	a.addExtra("(<= 0 a)")

	b := newEncoding(KindNative, gilsat.TInt, "b")
	b.addConst(ConstDecl{Name: "b", Sort: "Int"})
	b.addConst(ConstDecl{Name: "a", Sort: "Int"})

	merged := newEncoding(KindNative, gilsat.TInt, "(+ a b)", a, b)
	require.Len(t, merged.Consts(), 2)
	require.Equal(t, []string{"(<= 0 a)"}, merged.Extra())
}
