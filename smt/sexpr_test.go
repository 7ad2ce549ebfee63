package smt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSExprs(t *testing.T) {
	t.Run("Nested", func(t *testing.T) {
		nodes, err := ParseSExprs("(a (b c) ())")
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		require.Equal(t, "(a (b c) ())", nodes[0].String())
	})

	t.Run("MultipleTopLevel", func(t *testing.T) {
		nodes, err := ParseSExprs("sat (model)")
		require.NoError(t, err)
		require.Len(t, nodes, 2)
		require.True(t, nodes[0].IsAtom())
		require.Equal(t, "sat", nodes[0].Atom)
	})

	t.Run("QuotedSymbolStripsPipes", func(t *testing.T) {
		nodes, err := ParseSExprs("(|#lvar| 1)")
		require.NoError(t, err)
		require.Equal(t, "#lvar", nodes[0].List[0].Atom)
	})

	t.Run("StringLiteralKeepsQuotes", func(t *testing.T) {
		nodes, err := ParseSExprs(`(x "a b")`)
		require.NoError(t, err)
		require.Equal(t, `"a b"`, nodes[0].List[1].Atom)
	})

	t.Run("CommentsIgnored", func(t *testing.T) {
		nodes, err := ParseSExprs("; cardinality\n(a b)")
		require.NoError(t, err)
		require.Len(t, nodes, 1)
		require.Len(t, nodes[0].List, 2)
	})

	t.Run("Unbalanced", func(t *testing.T) {
		_, err := ParseSExprs("(a (b)")
		require.Error(t, err)

		_, err = ParseSExprs(")")
		require.Error(t, err)
	})
}
