package solver

import (
	"sort"

	"github.com/tilegraph/boggle/pkg/alphabet"
	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/trie"
)

// worker owns one shard's private trie copy and visited bitmap for the
// duration of a single query. Constructed fresh per FindWords call by the
// coordinator (see coordinator.go) and discarded afterward — nothing here
// outlives one query.
type worker struct {
	root  *trie.Node
	brd   *board.Board
	vis   *visited
	path  []byte
	found []string
	count int
	score int
}

func newWorker(shardRoot *trie.Node, b *board.Board) *worker {
	return &worker{
		root: shardRoot.DeepCopy(),
		brd:  b,
		vis:  newVisited(b.Size()),
		path: make([]byte, 0, 32),
	}
}

// run scans every cell of the board in Morton order and starts a DFS from
// each one whose letter has a matching edge at the shard root. A cell
// outside the logical board reads as alphabet.Padding, which no trie edge
// ever matches, so the scan naturally skips padding without a separate
// bounds check. Once the scan is done the found words are sorted, so a
// shard's words come back in a deterministic order.
func (w *worker) run() {
	ph := w.brd.PaddedHeight()
	pw := w.brd.PaddedWidth()
	rowStart := board.Encode(0, 0)
	for y := uint32(0); y < ph; y++ {
		code := rowStart
		for x := uint32(0); x < pw; x++ {
			w.startAt(code)
			code = board.StepX(code)
		}
		rowStart = board.StepY(rowStart)
	}
	sort.Strings(w.found)
}

// pushLetter appends tile's spelling to the in-progress word and returns how
// many bytes it added, so the caller can pop the same amount back off. A Q
// tile spells "QU" — two letters — even though it is a single trie edge and
// a single grid step.
func (w *worker) pushLetter(tile byte) int {
	if tile == alphabet.QIndex {
		w.path = append(w.path, 'Q', 'U')
		return 2
	}
	w.path = append(w.path, alphabet.Letter(tile))
	return 1
}

func (w *worker) popLetter(n int) {
	w.path = w.path[:len(w.path)-n]
}

func (w *worker) startAt(code uint32) {
	tile := w.brd.Tile(code)
	if tile == alphabet.Padding || !w.root.HasChild(tile) {
		return
	}
	child := w.root.Child(tile)
	w.vis.set(code)
	n := w.pushLetter(tile)
	w.descend(child, code)
	w.popLetter(n)
	w.vis.clear(code)
	if child.IsVoid() {
		w.root.RemoveChild(tile)
	}
}

// descend reports node's word (if any) first, then explores every unvisited
// neighbor of code that extends the current trie path. After each recursive
// call the child's edge is pruned from node if the child is now a dead end,
// so a shard's trie shrinks as the query progresses; once node has no edges
// left, the remaining neighbors are skipped.
func (w *worker) descend(node *trie.Node, code uint32) {
	if node.IsWord() {
		w.found = append(w.found, string(w.path))
		w.count++
		w.score += ScoreForLength(len(w.path))
		node.ClearWord()
	}

	var neighbors [8]uint32
	board.Neighbors8(code, &neighbors)
	for _, nCode := range neighbors {
		if nCode >= w.brd.Size() {
			// xMinus1/yMinus1 underflow the Morton code at the grid's x=0 or
			// y=0 edge, producing a huge out-of-range code. w.vis is only
			// sized to the padded board, so this must be caught before any
			// bitmap lookup.
			continue
		}
		if w.vis.isSet(nCode) {
			continue
		}
		tile := w.brd.Tile(nCode)
		if tile == alphabet.Padding || !node.HasChild(tile) {
			continue
		}
		child := node.Child(tile)
		w.vis.set(nCode)
		n := w.pushLetter(tile)
		w.descend(child, nCode)
		w.popLetter(n)
		w.vis.clear(nCode)
		if child.IsVoid() {
			node.RemoveChild(tile)
			if !node.HasChildren() {
				break
			}
		}
	}
}
