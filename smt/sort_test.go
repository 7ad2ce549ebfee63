package smt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryDeclareDatatype(t *testing.T) {
	r := NewRegistry()
	d := r.DeclareDatatype("Pair", []ConstructorSpec{
		{Name: "Nil"},
		{Name: "Cons", Fields: []Field{
			{Name: "head", Sort: "Int"},
			{Name: "tail", Sort: "Int"},
		}},
	})

	require.Equal(t, []string{
		"(declare-datatype Pair ((Nil) (Cons (head Int) (tail Int))))",
		"(define-fun isNil ((x Pair)) Bool ((_ is Nil) x))",
		"(define-fun isCons ((x Pair)) Bool ((_ is Cons) x))",
	}, r.Replay())

	require.Equal(t, "Nil", d.Construct("Nil"))
	require.Equal(t, "(Cons 1 2)", d.Construct("Cons", "1", "2"))
	require.Equal(t, "(isCons p)", d.Recognize("Cons", "p"))
	require.Equal(t, "(head p)", d.AccessAt("Cons", 0, "p"))
	require.Equal(t, "(tail p)", d.AccessAt("Cons", 1, "p"))

	require.Panics(t, func() { d.Construct("Cons", "1") })
	require.Panics(t, func() { d.Construct("Snoc") })
	require.Panics(t, func() { d.Access("Cons", "p") })
}

func TestRegistryDeclareDatatypeIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.DeclareDatatype("T", []ConstructorSpec{{Name: "A"}})
	b := r.DeclareDatatype("T", []ConstructorSpec{{Name: "B"}})
	require.Same(t, a, b)
	require.Len(t, r.Replay(), 2) // declaration plus one recognizer
}

func TestRegistryRecognizerOverride(t *testing.T) {
	r := NewRegistry()
	d := r.DeclareDatatype("V", []ConstructorSpec{
		{Name: "Undef", Recognizer: "isUndefined"},
	})
	require.Equal(t, "(isUndefined v)", d.Recognize("Undef", "v"))
	require.Contains(t, r.Replay(), "(define-fun isUndefined ((x V)) Bool ((_ is Undef) x))")
}

func TestRegistryFunctions(t *testing.T) {
	r := NewRegistry()
	r.DefineSort("GList", "(Seq GLit)")
	r.DefineSort("GList", "(Seq Other)") // dropped
	r.DeclareFun("llen", []string{"GList"}, "Int")
	r.DeclareFun("llen", []string{"Int"}, "Int") // dropped
	r.DefineFun("inc", []Field{{Name: "x", Sort: "Int"}}, "Int", "(+ x 1)")

	require.Equal(t, []string{
		"(define-sort GList () (Seq GLit))",
		"(declare-fun llen (GList) Int)",
		"(define-fun inc ((x Int)) Int (+ x 1))",
	}, r.Replay())
	require.True(t, r.Declared("llen"))
	require.False(t, r.Declared("slen"))
}
