package dictionary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddWordRejectsShortWords(t *testing.T) {
	b := NewBuilder(4)
	require.False(t, b.AddWord("AT"))
	require.True(t, b.AddWord("CAT"))
}

func TestAddWordEnforcesQuRule(t *testing.T) {
	b := NewBuilder(4)
	require.False(t, b.AddWord("QAT"))
	require.True(t, b.AddWord("QUAD"))
}

func TestAddWordRejectsNonLetters(t *testing.T) {
	b := NewBuilder(4)
	require.False(t, b.AddWord("CA7"))
}

func TestAddWordIsCaseInsensitiveAndIdempotent(t *testing.T) {
	b := NewBuilder(4)
	require.True(t, b.AddWord("cat"))
	require.True(t, b.AddWord("CAT"))
	_, words, loads := b.Build()
	require.Len(t, words, 1)
	total := 0
	for _, l := range loads {
		total += l
	}
	require.Equal(t, 1, total)
}

func TestStoreLoadOnlyShortWordsIsEmpty(t *testing.T) {
	s := NewStore(4)
	n, err := s.Load(strings.NewReader("at an if"), 4)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, 0, s.WordCount())
}

func TestStoreLoadShardLoadsSumToWordCount(t *testing.T) {
	s := NewStore(4)
	_, err := s.Load(strings.NewReader("cat dog ant bee cow fly ray sun tap urn vet wig"), 4)
	require.NoError(t, err)

	sum := 0
	for _, l := range s.ShardLoads() {
		sum += l
	}
	require.Equal(t, s.WordCount(), sum)
}

func TestStoreLoadThenFreeIsEmptyAgain(t *testing.T) {
	s := NewStore(2)
	_, err := s.Load(strings.NewReader("cat dog"), 2)
	require.NoError(t, err)
	require.Greater(t, s.WordCount(), 0)

	s.Free()
	require.Equal(t, 0, s.WordCount())
	require.Equal(t, 2, s.ShardCount())
}

func TestStoreLoadAcceptsDuplicateWordOnce(t *testing.T) {
	s := NewStore(1)
	n, err := s.Load(strings.NewReader("cat cat cat"), 1)
	require.NoError(t, err)
	require.Equal(t, 3, n) // each occurrence is "accepted" by validation...
	require.Equal(t, 1, s.WordCount()) // ...but only inserted once
}
