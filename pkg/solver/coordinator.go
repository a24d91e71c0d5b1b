/*
Package solver runs the concurrent word search: one goroutine per dictionary
shard, each holding a private deep-copied trie and a private visited bitmap,
fanned out and joined with a sync.WaitGroup rather than an errgroup, since no
worker here can meaningfully fail — a shard with zero matching words just
returns an empty slice.
*/
package solver

import (
	"sync"

	"github.com/tilegraph/boggle/internal/logger"
	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/dictionary"
)

var log = logger.Default("solver")

// FindWords searches b against every shard of store concurrently and
// returns the distinct words found, their count, and their total score.
// Callers must release the returned Result with FreeWords once done with
// it. b may be nil — e.g. if pkg/board.Prepare rejected the raw board —
// in which case FindWords returns an empty Result and no error: an invalid
// board aborts the query, not the process.
func FindWords(store *dictionary.Store, b *board.Board) (*Result, error) {
	result := newResult()
	if b == nil {
		return result, nil
	}

	store.RLock()
	shardCount := store.ShardCountLocked()
	workers := make([]*worker, shardCount)
	for i := 0; i < shardCount; i++ {
		workers[i] = newWorker(store.ShardLocked(i), b)
	}
	store.RUnlock()

	var wg sync.WaitGroup
	wg.Add(shardCount)
	for i := 0; i < shardCount; i++ {
		w := workers[i]
		go func() {
			defer wg.Done()
			w.run()
		}()
	}
	wg.Wait()

	for _, w := range workers {
		result.Words = append(result.Words, w.found...)
		result.Count += w.count
		result.Score += w.score
	}

	log.Debugf("query found %d words across %d shards, score %d", result.Count, shardCount, result.Score)
	return result, nil
}
