//go:build test

package mem

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/dictionary"
	"github.com/tilegraph/boggle/pkg/solver"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

var testWords = "CAT DOG RAT TAR ART CARD DRAT TRAD QUAD QUIT ANNA AAA CARDS DRATS"

var testBoards = []struct {
	raw           string
	width, height int
}{
	{"DZXEAIQUT", 3, 3},
	{"AAAA", 2, 2},
	{"QADU", 2, 2},
	{"CATDOGRATTARARTC", 4, 4},
}

func newTestStore(tb testing.TB, shards int) *dictionary.Store {
	tb.Helper()
	s := dictionary.NewStore(shards)
	if _, err := s.Load(strings.NewReader(testWords), shards); err != nil {
		tb.Fatalf("load: %v", err)
	}
	return s
}

// TestLoadQueryFreeCycleDoesNotLeakGoroutines drives many load/query/free
// cycles — dictionary.Store.Load, solver.FindWords, solver.FreeWords,
// dictionary.Store.Free — and asserts the goroutine count returns to its
// baseline afterward.
func TestLoadQueryFreeCycleDoesNotLeakGoroutines(t *testing.T) {
	runtime.GC()
	baseline := runtime.NumGoroutine()

	for cycle := 0; cycle < 50; cycle++ {
		store := newTestStore(t, 8)
		for _, tb := range testBoards {
			b, err := board.Prepare([]byte(tb.raw), tb.width, tb.height)
			if err != nil {
				t.Fatalf("prepare board %q: %v", tb.raw, err)
			}
			result, err := solver.FindWords(store, b)
			if err != nil {
				t.Fatalf("find words: %v", err)
			}
			solver.FreeWords(result)
		}
		store.Free()
	}

	runtime.GC()
	after := runtime.NumGoroutine()
	if after > baseline+2 {
		t.Errorf("goroutine leak: baseline=%d after=%d", baseline, after)
	}
}

// TestConcurrentQueriesDoNotLeakMemory runs many concurrent FindWords calls
// against a shared, already-loaded store and writes a heap profile so a
// human reviewer can diff it against a baseline.
func TestConcurrentQueriesDoNotLeakMemory(t *testing.T) {
	store := newTestStore(t, 16)
	defer store.Free()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		tb := testBoards[i%len(testBoards)]
		go func() {
			defer wg.Done()
			b, err := board.Prepare([]byte(tb.raw), tb.width, tb.height)
			if err != nil {
				return
			}
			result, err := solver.FindWords(store, b)
			if err != nil {
				return
			}
			solver.FreeWords(result)
		}()
	}
	wg.Wait()

	runtime.GC()
	f, err := os.CreateTemp("", "boggle-heap-*.pprof")
	if err != nil {
		t.Fatalf("create heap profile: %v", err)
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		t.Fatalf("write heap profile: %v", err)
	}
	fmt.Fprintf(os.Stderr, "heap profile written to %s\n", f.Name())
}
