package solver

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/dictionary"
)

func loadStore(t *testing.T, shards int, words string) *dictionary.Store {
	t.Helper()
	s := dictionary.NewStore(shards)
	_, err := s.Load(strings.NewReader(words), shards)
	require.NoError(t, err)
	return s
}

func TestScoreForLengthTable(t *testing.T) {
	cases := map[int]int{3: 1, 4: 1, 5: 2, 6: 3, 7: 5, 8: 11, 12: 11}
	for length, want := range cases {
		require.Equal(t, want, ScoreForLength(length), "length %d", length)
	}
}

func TestFindWordsOnSampleBoard(t *testing.T) {
	// 3x3 board: D Z X / E A I / Q U T
	s := loadStore(t, 4, "DEQ ADZ EAT ZAX")
	b, err := board.Prepare([]byte("DZXEAIQUT"), 3, 3)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	require.Contains(t, result.Words, "EAT")
	require.Equal(t, len(result.Words), result.Count)
}

func TestFindWordsAllSameLetterBoard(t *testing.T) {
	s := loadStore(t, 2, "AAA")
	b, err := board.Prepare([]byte("AAAA"), 2, 2)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	require.Equal(t, []string{"AAA"}, result.Words)
	require.Equal(t, 1, result.Count)
	require.Equal(t, 1, result.Score)
}

func TestFindWordsQuDigraphBoard(t *testing.T) {
	s := loadStore(t, 2, "QUAD")
	b, err := board.Prepare([]byte("QADU"), 2, 2)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	require.Contains(t, result.Words, "QUAD")
}

func TestFindWordsEmptyDictionary(t *testing.T) {
	s := dictionary.NewStore(4)
	b, err := board.Prepare([]byte("DZXEAIQUT"), 3, 3)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	require.Empty(t, result.Words)
	require.Equal(t, 0, result.Count)
	require.Equal(t, 0, result.Score)
}

func TestFindWordsNilBoardIsEmptyNotError(t *testing.T) {
	s := loadStore(t, 2, "cat dog")
	result, err := FindWords(s, nil)
	require.NoError(t, err)
	defer FreeWords(result)
	require.Empty(t, result.Words)
}

func TestFindWordsDoesNotDuplicateAWordFoundTwice(t *testing.T) {
	// "ANNA" dictionary word findable via two distinct paths on a board
	// with a repeated letter — must be reported once.
	s := loadStore(t, 4, "ANNA")
	b, err := board.Prepare([]byte("ANNA"), 2, 2)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	count := 0
	for _, w := range result.Words {
		if w == "ANNA" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestFindWordsAgainstRandomBoard(t *testing.T) {
	s := loadStore(t, 8, "CAT DOG RAT TAR ART CARD DRAT TRAD")
	b, err := board.Prepare([]byte(
		"CATDOGRATTARARTCARDDRATTRADXXXXY",
	)[:16], 4, 4)
	require.NoError(t, err)

	result, err := FindWords(s, b)
	require.NoError(t, err)
	defer FreeWords(result)

	sort.Strings(result.Words)
	require.Equal(t, result.Count, len(result.Words))
}
