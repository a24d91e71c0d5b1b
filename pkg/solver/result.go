package solver

import "sync"

// ScoreForLength returns the point value of a found word by its length:
// 3-4 letters score 1, 5 scores 2, 6 scores 3, 7 scores 5, and 8 or more
// scores 11. Lengths below 3 never reach this function — pkg/dictionary's
// Builder rejects them at load time.
func ScoreForLength(length int) int {
	switch {
	case length <= 4:
		return 1
	case length == 5:
		return 2
	case length == 6:
		return 3
	case length == 7:
		return 5
	default:
		return 11
	}
}

// Result is the outcome of one FindWords query: every distinct word found on
// the board, and the aggregate score/count a caller can report without
// re-walking Words.
type Result struct {
	Words []string
	Count int
	Score int
}

var resultPool = sync.Pool{
	New: func() any { return &Result{} },
}

func newResult() *Result {
	r := resultPool.Get().(*Result)
	r.Words = r.Words[:0]
	r.Count = 0
	r.Score = 0
	return r
}

// FreeWords returns r's backing storage to the internal pool. Callers must
// not use r (or any string obtained from r.Words) after calling FreeWords —
// mirrors the load/query/free discipline pkg/dictionary's Store uses for the
// dictionary itself.
func FreeWords(r *Result) {
	if r == nil {
		return
	}
	resultPool.Put(r)
}
