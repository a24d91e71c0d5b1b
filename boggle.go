/*
Package boggle re-exports the solver's public surface from the module root,
so a caller can import a single package instead of reaching into pkg/board,
pkg/dictionary, and pkg/solver directly.
*/
package boggle

import (
	"io"

	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/dictionary"
	"github.com/tilegraph/boggle/pkg/solver"
)

// Dictionary is a loaded word list, sharded and ready to be searched.
type Dictionary = dictionary.Store

// Result is the outcome of a FindWords query: the distinct words found, a
// count, and an aggregate score.
type Result = solver.Result

// NewDictionary returns an empty dictionary with the given shard count.
func NewDictionary(shards int) *Dictionary {
	return dictionary.NewStore(shards)
}

// LoadDictionary reads words from r into dict, replacing its prior contents.
// It returns how many word tokens were accepted by validation (duplicates
// count once each time they're accepted; see pkg/dictionary for the exact
// rule).
func LoadDictionary(dict *Dictionary, r io.Reader, shards int) (int, error) {
	return dict.Load(r, shards)
}

// FreeDictionary releases dict's contents. dict remains valid and empty —
// LoadDictionary may be called again.
func FreeDictionary(dict *Dictionary) {
	dict.Free()
}

// FindWords searches a width×height letter grid (row-major, top-left first)
// against dict and returns every distinct word found. It returns
// board.ErrInvalidBoard if raw cannot be sanitized into a playable board.
// The caller must release a non-nil result with FreeWords.
func FindWords(dict *Dictionary, raw []byte, width, height int) (*Result, error) {
	b, err := board.Prepare(raw, width, height)
	if err != nil {
		return nil, err
	}
	return solver.FindWords(dict, b)
}

// FreeWords releases a Result returned by FindWords.
func FreeWords(r *Result) {
	solver.FreeWords(r)
}

// ScoreForLength returns the point value of a word of the given length.
func ScoreForLength(length int) int {
	return solver.ScoreForLength(length)
}
