package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilegraph/boggle/pkg/alphabet"
)

func TestAddChildCreatesOnce(t *testing.T) {
	root := New()
	a := root.AddChild(alphabet.Index('A'))
	require.True(t, root.HasChild(alphabet.Index('A')))
	again := root.AddChild(alphabet.Index('A'))
	require.Same(t, a, again)
}

func TestHasChildIgnoresPadding(t *testing.T) {
	root := New()
	root.AddChild(alphabet.Index('A'))
	require.False(t, root.HasChild(alphabet.Padding))
}

func TestVoidAndWordPredicates(t *testing.T) {
	root := New()
	require.True(t, root.IsVoid())
	child := root.AddChild(alphabet.Index('Z'))
	require.False(t, root.IsVoid(), "a node with a live child is not void")
	require.False(t, child.IsWord())
	child.WordID = 7
	require.True(t, child.IsWord())
	require.False(t, child.IsVoid())
	child.ClearWord()
	require.True(t, child.IsVoid())
}

func TestRemoveChildPrunesEdgeOnly(t *testing.T) {
	root := New()
	idx := alphabet.Index('Q')
	root.AddChild(idx)
	require.True(t, root.HasChild(idx))
	root.RemoveChild(idx)
	require.False(t, root.HasChild(idx))
	require.True(t, root.IsVoid())
}

func TestDeepCopyIsIndependent(t *testing.T) {
	root := New()
	path := root
	for _, c := range "CAT" {
		path = path.AddChild(alphabet.Index(byte(c)))
	}
	path.WordID = 3

	clone := root.DeepCopy()
	cIdx := alphabet.Index('C')
	require.NotSame(t, root.Child(cIdx), clone.Child(cIdx))

	// Mutating the clone must not affect the original.
	clone.RemoveChild(cIdx)
	require.False(t, clone.HasChild(cIdx))
	require.True(t, root.HasChild(cIdx))

	// A second, untouched clone still has the full CAT path.
	fresh := root.DeepCopy()
	walk := fresh
	for _, c := range "CAT" {
		idx := alphabet.Index(byte(c))
		require.True(t, walk.HasChild(idx))
		walk = walk.Child(idx)
	}
	require.Equal(t, 3, walk.WordID)
}
