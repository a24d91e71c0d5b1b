package dictionary

import (
	"bufio"
	"io"

	"github.com/tilegraph/boggle/pkg/alphabet"
	"github.com/tilegraph/boggle/pkg/trie"
)

// MinWordLength is the shortest word the solver will ever report — the
// scoring table starts at length 3, so anything shorter is rejected at
// build time instead of filtered on every query.
const MinWordLength = 3

// Builder accumulates words into shard tries before they're installed into a
// Store. Kept separate from Store itself so Load can build off-lock and swap
// the result in under a single write lock (see Load below), rather than
// mutating a live, query-visible Store word by word.
type Builder struct {
	shards []*trie.Node
	words  []string
	loads  []int
}

// NewBuilder returns an empty Builder targeting the given shard count.
func NewBuilder(shards int) *Builder {
	if shards < 1 {
		shards = 1
	}
	b := &Builder{
		shards: make([]*trie.Node, shards),
		loads:  make([]int, shards),
	}
	for i := range b.shards {
		b.shards[i] = trie.New()
	}
	return b
}

// shardOf picks which shard a word belongs to, by its first letter. Letters
// hash onto shards round-robin rather than 1:1 so the builder still spreads
// load evenly when the shard count doesn't evenly divide the alphabet.
func shardOf(word string, shardCount int) int {
	first := alphabet.Index(word[0])
	return int(first) % shardCount
}

// AddWord inserts word into its shard trie, rejecting it (returning false)
// if it's shorter than MinWordLength or fails the Qu digraph rule: every 'Q'
// in the word must be immediately followed by 'U'. Words are case-folded to
// uppercase. Duplicate insertions are idempotent — a repeat still returns
// true, but the word is recorded once and the trie node's WordID is left as
// assigned by the first insertion.
func (b *Builder) AddWord(word string) bool {
	if len(word) < MinWordLength {
		return false
	}
	upper := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := alphabet.ToUpper(word[i])
		if !alphabet.IsASCIILetter(c) {
			return false
		}
		upper = append(upper, c)
	}
	for i := 0; i < len(upper); i++ {
		if upper[i] == 'Q' {
			if i+1 >= len(upper) || upper[i+1] != 'U' {
				return false
			}
		}
	}

	shardIdx := shardOf(string(upper), len(b.shards))
	node := b.shards[shardIdx]
	i := 0
	for i < len(upper) {
		idx := alphabet.Index(upper[i])
		node = node.AddChild(idx)
		if upper[i] == 'Q' {
			// The Qu edge consumes both letters of the source word but is a
			// single trie step, matching the single grid step a Q tile
			// represents on the board.
			i += 2
			continue
		}
		i++
	}

	if node.IsWord() {
		return true // already present; nothing new to record
	}
	node.WordID = len(b.words)
	b.words = append(b.words, string(upper))
	b.loads[shardIdx]++
	return true
}

// AddWords feeds every word from r (one token per maximal run of ASCII
// letters — any separator, not just newlines, breaks a word) through
// AddWord, returning the number accepted.
func (b *Builder) AddWords(r io.Reader) (accepted int, err error) {
	br := bufio.NewReaderSize(r, 64*1024)
	var cur []byte
	flush := func() {
		if len(cur) == 0 {
			return
		}
		if b.AddWord(string(cur)) {
			accepted++
		}
		cur = cur[:0]
	}
	for {
		c, readErr := br.ReadByte()
		if readErr != nil {
			flush()
			if readErr == io.EOF {
				return accepted, nil
			}
			return accepted, readErr
		}
		if alphabet.IsASCIILetter(c) {
			cur = append(cur, c)
		} else {
			flush()
		}
	}
}

// Build finalizes the builder into an immutable snapshot ready to be
// installed into a Store.
func (b *Builder) Build() (shards []*trie.Node, words []string, loads []int) {
	return b.shards, b.words, b.loads
}
