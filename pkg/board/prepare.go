// Package board turns a raw, row-major letter grid into the padded,
// Morton-ordered tile array the solver traverses.
package board

import (
	"fmt"

	"github.com/tilegraph/boggle/internal/logger"
	"github.com/tilegraph/boggle/pkg/alphabet"
)

var log = logger.Default("board")

// ErrInvalidBoard is returned by Prepare when the input cannot be sanitized
// into a playable board: a non-letter byte, a nil board, or a zero
// dimension all abort the whole query rather than producing a partial one.
var ErrInvalidBoard = fmt.Errorf("board: invalid board input")

// Board is a sanitized, padded, Morton-ordered tile grid ready for
// traversal. Tile(code) is alphabet.Padding for any code outside the
// logical board; otherwise it is a 0-25 letter index.
type Board struct {
	tiles            []byte
	width, height    uint32 // logical dimensions, pre-padding
	paddedW, paddedH uint32
	size             uint32 // Encode(paddedW-1, paddedH-1)+1 == len(tiles)
}

// Prepare sanitizes raw (width*height row-major ASCII letters, top-left
// first) into a Board. Any non-letter byte, a nil/empty raw slice, or a zero
// dimension invalidates the whole query: Prepare returns ErrInvalidBoard and
// a nil Board.
func Prepare(raw []byte, width, height int) (*Board, error) {
	if raw == nil || width <= 0 || height <= 0 {
		log.Warnf("rejecting board: nil or zero-dimension input (w=%d h=%d)", width, height)
		return nil, ErrInvalidBoard
	}
	if len(raw) != width*height {
		log.Warnf("rejecting board: length %d does not match %d*%d", len(raw), width, height)
		return nil, ErrInvalidBoard
	}

	pw := NextPow2(uint32(width))
	ph := NextPow2(uint32(height))
	// The largest Morton code inside the padded grid is that of its far
	// corner. For a square grid this is pw*ph cells; when one side is more
	// than twice the other, the codes are sparse and run past pw*ph.
	size := Encode(pw-1, ph-1) + 1

	tiles := make([]byte, size)
	for i := range tiles {
		tiles[i] = alphabet.Padding
	}

	mortonY := Encode(0, 0)
	cursor := 0
	for y := 0; y < height; y++ {
		code := mortonY
		for x := 0; x < width; x++ {
			c := raw[cursor]
			cursor++
			if !alphabet.IsASCIILetter(c) {
				log.Warnf("rejecting board: non-letter byte %q at (%d,%d)", c, x, y)
				return nil, ErrInvalidBoard
			}
			tiles[code] = alphabet.Index(alphabet.ToUpper(c))
			code = xPlus1(code)
		}
		mortonY = yPlus1(mortonY)
	}

	return &Board{
		tiles:   tiles,
		width:   uint32(width),
		height:  uint32(height),
		paddedW: pw,
		paddedH: ph,
		size:    size,
	}, nil
}

// Size returns the number of Morton codes spanned by the padded grid (its
// cell count when the grid is square) — the length the caller should size a
// visited bitmap to.
func (b *Board) Size() uint32 { return b.size }

// Tile returns the tile stored at a Morton code, or alphabet.Padding if code
// is outside the padded grid entirely.
func (b *Board) Tile(code uint32) byte {
	if code >= b.size {
		return alphabet.Padding
	}
	return b.tiles[code]
}

// PaddedWidth and PaddedHeight return the power-of-two padded dimensions,
// used by the worker's outer scan to walk the grid in Morton-increasing
// (x fastest, then y) order.
func (b *Board) PaddedWidth() uint32  { return b.paddedW }
func (b *Board) PaddedHeight() uint32 { return b.paddedH }
