/*
Package dictionary owns the compiled word list: S shard tries plus the flat,
append-only vector of canonical word strings each trie node's WordID points
into.

Words are sharded by first letter so one worker goroutine can own one
shard's root for the duration of a query. There is no lazy loading, no chunk
files, no frequency ranking here: the dictionary is simply built in full on
Load and torn down in full on Free, under a single sync.RWMutex.
*/
package dictionary

import (
	"io"
	"sync"

	"github.com/tilegraph/boggle/internal/logger"
	"github.com/tilegraph/boggle/pkg/trie"
)

var log = logger.Default("dictionary")

// Store is the dictionary: one trie root per shard, plus the canonical word
// list every WordID indexes into. The zero Store is valid and empty.
type Store struct {
	mu     sync.RWMutex
	shards []*trie.Node
	words  []string
	loads  []int // words inserted per shard, parallel to shards
}

// NewStore returns an empty store with the given shard count. A count below
// 1 is raised to 1. pkg/solver runs one worker goroutine per shard.
func NewStore(shards int) *Store {
	if shards < 1 {
		shards = 1
	}
	s := &Store{
		shards: make([]*trie.Node, shards),
		loads:  make([]int, shards),
	}
	for i := range s.shards {
		s.shards[i] = trie.New()
	}
	return s
}

// ShardCount returns the number of shards this store was built with.
func (s *Store) ShardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shards)
}

// Shard returns shard i's root. Callers must deep-copy before mutating it
// (see pkg/solver's worker setup) — the returned root is shared across
// concurrent readers.
func (s *Store) Shard(i int) *trie.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.shards[i]
}

// Word returns the canonical word string for a word id. Ids are only valid
// against the Store generation that produced them — a Load in between
// invalidates them.
func (s *Store) Word(id int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words[id]
}

// WordCount returns the total number of accepted words across all shards.
func (s *Store) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// ShardLoads returns a copy of the per-shard accepted-word counts. Their sum
// always equals WordCount(), however many shards the store was built with.
func (s *Store) ShardLoads() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]int, len(s.loads))
	copy(out, s.loads)
	return out
}

// RLock/RUnlock let pkg/solver hold the store open (read-locked) for exactly
// the deep-copy phase of worker setup, then release it before traversal
// begins.
func (s *Store) RLock()   { s.mu.RLock() }
func (s *Store) RUnlock() { s.mu.RUnlock() }

// ShardCountLocked and ShardLocked are bare accessors with no locking of
// their own. They exist for callers already holding the store open via
// RLock/Lock — ShardCount and Shard lock internally, so calling them while
// already holding s.mu would recursively read-lock the same sync.RWMutex,
// which deadlocks as soon as a writer (Load/Free) is also waiting.
func (s *Store) ShardCountLocked() int        { return len(s.shards) }
func (s *Store) ShardLocked(i int) *trie.Node { return s.shards[i] }

// reset clears the store back to empty with the given shard count. Callers
// must hold s.mu for writing.
func (s *Store) reset(shards int) {
	if shards < 1 {
		shards = 1
	}
	s.shards = make([]*trie.Node, shards)
	for i := range s.shards {
		s.shards[i] = trie.New()
	}
	s.words = nil
	s.loads = make([]int, shards)
}

// Load reads words from r and replaces the store's contents with them,
// sharded across shardCount shards. The builder does its work off to the
// side; the store is swapped to the new state under a single write lock, so
// any query already in flight keeps running against the old dictionary
// instead of observing a half-built one.
func (s *Store) Load(r io.Reader, shardCount int) (accepted int, err error) {
	b := NewBuilder(shardCount)
	accepted, err = b.AddWords(r)
	if err != nil {
		log.Errorf("loading dictionary: %v", err)
		return accepted, err
	}
	shards, words, loads := b.Build()

	s.mu.Lock()
	s.shards = shards
	s.words = words
	s.loads = loads
	s.mu.Unlock()

	log.Infof("loaded %d words across %d shards", len(words), len(shards))
	return accepted, nil
}

// Free drops the dictionary's contents, releasing every trie node and the
// word list for garbage collection. The store remains valid and empty
// afterward — Load can be called again.
func (s *Store) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()
	shardCount := len(s.shards)
	s.reset(shardCount)
	log.Debug("dictionary freed")
}
