package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilegraph/boggle/pkg/alphabet"
)

func TestPrepareRejectsInvalidInput(t *testing.T) {
	_, err := Prepare(nil, 3, 3)
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = Prepare([]byte("ABC"), 0, 3)
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = Prepare([]byte("A1B"), 1, 3)
	require.ErrorIs(t, err, ErrInvalidBoard)
}

func TestPreparePadsToPowerOfTwo(t *testing.T) {
	b, err := Prepare([]byte("DZXEAIQUT"), 3, 3)
	require.NoError(t, err)
	require.EqualValues(t, 4, b.PaddedWidth())
	require.EqualValues(t, 4, b.PaddedHeight())
	require.EqualValues(t, 16, b.Size())
}

func TestPrepareStoresLettersAtMortonCodes(t *testing.T) {
	b, err := Prepare([]byte("AB"), 2, 1)
	require.NoError(t, err)
	require.Equal(t, alphabet.Index('A'), b.Tile(Encode(0, 0)))
	require.Equal(t, alphabet.Index('B'), b.Tile(Encode(1, 0)))
}

func TestPrepareUppercasesLowercaseInput(t *testing.T) {
	b, err := Prepare([]byte("ab"), 2, 1)
	require.NoError(t, err)
	require.Equal(t, alphabet.Index('A'), b.Tile(Encode(0, 0)))
	require.Equal(t, alphabet.Index('B'), b.Tile(Encode(1, 0)))
}

func TestTileOutsidePaddedGridIsPadding(t *testing.T) {
	b, err := Prepare([]byte("A"), 1, 1)
	require.NoError(t, err)
	require.Equal(t, alphabet.Padding, b.Tile(b.Size()+1))
}

func TestNeighbors8Adjacency(t *testing.T) {
	var nb [8]uint32
	center := Encode(4, 4)
	Neighbors8(center, &nb)
	seen := make(map[uint32]bool, 8)
	for _, c := range nb {
		seen[c] = true
	}
	require.True(t, seen[Encode(3, 4)])
	require.True(t, seen[Encode(5, 4)])
	require.True(t, seen[Encode(4, 3)])
	require.True(t, seen[Encode(4, 5)])
	require.True(t, seen[Encode(3, 3)])
	require.True(t, seen[Encode(5, 5)])
}

func TestNextPow2(t *testing.T) {
	cases := map[uint32]uint32{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 9: 16}
	for in, want := range cases {
		require.Equal(t, want, NextPow2(in), "NextPow2(%d)", in)
	}
}
