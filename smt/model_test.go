package smt

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseModel(t *testing.T) {
	t.Run("BareList", func(t *testing.T) {
		model, err := ParseModel("((define-fun x () Int 3) (define-fun y () Real 1.5))")
		require.NoError(t, err)
		require.Equal(t, 2, model.Len())

		node, ok := model.Value("x")
		require.True(t, ok)
		require.Equal(t, "3", node.Atom)
	})

	t.Run("ModelKeyword", func(t *testing.T) {
		model, err := ParseModel("(model (define-fun x () Int (- 3)))")
		require.NoError(t, err)

		node, ok := model.Value("x")
		require.True(t, ok)
		require.Equal(t, "(- 3)", node.String())
	})

	t.Run("SkipsFunctionDefinitions", func(t *testing.T) {
		model, err := ParseModel("((define-fun f ((a Int)) Int 0) (define-fun x () Int 1))")
		require.NoError(t, err)
		require.Equal(t, 1, model.Len())

		_, ok := model.Value("f")
		require.False(t, ok)
	})

	t.Run("QuotedNamesAreBare", func(t *testing.T) {
		model, err := ParseModel("((define-fun |#x| () Int 9))")
		require.NoError(t, err)

		node, ok := model.Value("#x")
		require.True(t, ok)
		require.Equal(t, "9", node.Atom)
	})

	t.Run("MalformedInput", func(t *testing.T) {
		_, err := ParseModel("((define-fun x () Int")
		require.Error(t, err)
	})
}

func TestDecodeInt(t *testing.T) {
	parse := func(t *testing.T, s string) *SExpr {
		nodes, err := ParseSExprs(s)
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		return nodes[0]
	}

	v, err := decodeInt(parse(t, "42"))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), v)

	v, err = decodeInt(parse(t, "(- 42)"))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(-42), v)

	_, err = decodeInt(parse(t, "abc"))
	require.Error(t, err)

	_, err = decodeInt(parse(t, "(+ 1 2)"))
	require.Error(t, err)
}

func TestDecodeNum(t *testing.T) {
	parse := func(t *testing.T, s string) *SExpr {
		nodes, err := ParseSExprs(s)
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		return nodes[0]
	}

	v, err := decodeNum(parse(t, "1.5"))
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	v, err = decodeNum(parse(t, "(/ 3.0 2.0)"))
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	v, err = decodeNum(parse(t, "(- (/ 1.0 4.0))"))
	require.NoError(t, err)
	require.Equal(t, -0.25, v)

	_, err = decodeNum(parse(t, "(root-obj x 2)"))
	require.Error(t, err)
}
