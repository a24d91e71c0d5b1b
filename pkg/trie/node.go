/*
Package trie implements the dictionary's prefix tree: a dense, bitmask-indexed
node shardable by root letter and cheap to deep-copy per query worker.

Unlike a general-purpose string trie (compare Zubayear-ryushin/trie, which
keys children by a map[rune]*Node for an arbitrary alphabet), this trie is
specialized for the fixed 26-letter tile alphabet: each node carries a 26-bit
child mask plus a dense [alphabet.Size]*Node slot table. Membership tests and
child lookups are then a single mask bit test instead of a map probe, which
matters because the solver's DFS calls HasChild/Child at every grid step.

A node also never repeats a word: once emitted during a query it clears its
own WordID so a second path to the same node is not reported again. Because
each query worker runs its own deep copy of the shard's trie (see DeepCopy),
this mutation is invisible to other workers and to the next query, which
starts from a fresh copy of the untouched master root.
*/
package trie

import (
	"math/bits"

	"github.com/tilegraph/boggle/pkg/alphabet"
)

// NoWord is the sentinel WordID meaning "this node does not terminate a word".
const NoWord = -1

// Node is one position in the trie: the path from a shard root to this node
// spells some prefix (or, with WordID != NoWord, a complete word).
type Node struct {
	children [alphabet.Size]*Node
	mask     uint32 // bit i set iff children[i] != nil
	WordID   int    // index into the dictionary word list, or NoWord
}

// New returns an empty node: no children, not a word.
func New() *Node {
	return &Node{WordID: NoWord}
}

// HasChild reports whether idx names a populated child slot. Indices at or
// above alphabet.Size (notably alphabet.Padding) always report false: the
// mask is only 26 bits wide, so the bit test below is zero for them without
// needing an explicit bounds check.
func (n *Node) HasChild(idx byte) bool {
	return n.mask&(1<<idx) != 0
}

// Child returns the child at idx. Callers must check HasChild first; Child
// does not itself guard against a nil slot.
func (n *Node) Child(idx byte) *Node {
	return n.children[idx]
}

// AddChild returns the existing child at idx, creating and linking a fresh
// one if absent. Only the dictionary builder calls this — the trie is
// read-only (mask-wise) once a query begins, aside from the worker's private
// copy pruning its own edges.
func (n *Node) AddChild(idx byte) *Node {
	if n.HasChild(idx) {
		return n.children[idx]
	}
	child := New()
	n.children[idx] = child
	n.mask |= 1 << idx
	return child
}

// RemoveChild clears the edge to idx. The slot pointer is left as-is — safe
// because the caller only ever owns a private, query-scoped deep copy that
// is discarded in full at the end of the query; nothing else can observe the
// dangling pointer through the cleared mask bit.
func (n *Node) RemoveChild(idx byte) {
	n.mask &^= 1 << idx
}

// HasChildren reports whether any edge is still live.
func (n *Node) HasChildren() bool {
	return n.mask != 0
}

// IsWord reports whether this node terminates an unreported word.
func (n *Node) IsWord() bool {
	return n.WordID != NoWord
}

// IsVoid reports whether this node is a dead end: no children and no word
// left to report. A void node's parent edge can be pruned.
func (n *Node) IsVoid() bool {
	return n.mask == 0 && n.WordID == NoWord
}

// ClearWord marks this node's word as already reported, so a second path
// through it during the same query is not reported again.
func (n *Node) ClearWord() {
	n.WordID = NoWord
}

// DeepCopy returns a structurally identical tree reachable only from the
// returned root: every node is freshly allocated, with mask and WordID
// copied and every present child recursively copied. The result may be
// mutated (RemoveChild, ClearWord) without the master tree — or any other
// worker's copy — ever observing the change.
func (n *Node) DeepCopy() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{mask: n.mask, WordID: n.WordID}
	m := n.mask
	for m != 0 {
		idx := byte(bits.TrailingZeros32(m))
		clone.children[idx] = n.children[idx].DeepCopy()
		m &^= 1 << idx
	}
	return clone
}
