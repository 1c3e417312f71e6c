package louds

import (
	"bytes"
	"errors"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWords() []string {
	return []string{"aaa", "aab", "ab", "ba", "bb"}
}

func bitString(bv *BitVector) string {
	var sb strings.Builder
	for i := uint32(0); i < bv.Len(); i++ {
		if bv.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// randomDictionary returns sorted words over a small alphabet so that
// prefixes are shared, with some words repeated.
func randomDictionary(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := make([]byte, 1+rng.Intn(6))
		for j := range b {
			b[j] = "abcd"[rng.Intn(4)]
		}
		words = append(words, string(b))
		if rng.Intn(10) == 0 {
			words = append(words, string(b))
		}
	}
	sort.Strings(words)
	return words
}

func unique(words []string) []string {
	var out []string
	for i, word := range words {
		if i == 0 || word != words[i-1] {
			out = append(out, word)
		}
	}
	return out
}

func TestBuild(t *testing.T) {
	trie := Build(testWords())

	assert.Equal(t, "abababab", trie.Labels())
	assert.Equal(t, "101101101101100000", bitString(&trie.louds))
	assert.Equal(t, "000011111", bitString(&trie.terminal))
	assert.Equal(t, 5, trie.NumWords())
	assert.Equal(t, 8, trie.NumNodes())
	assert.Equal(t, 8+12+12, trie.Size())
}

func TestLookup(t *testing.T) {
	trie := Build(testWords())

	tests := map[string]int{
		"a":    0,
		"abb":  0,
		"aaaa": 0,
		"aabz": 0,
		"c":    0,
		"":     0,
		"ab":   1,
		"ba":   2,
		"bb":   3,
		"aaa":  4,
		"aab":  5,
	}
	for query, want := range tests {
		assert.Equal(t, want, trie.Lookup(query), "Lookup(%q)", query)
		assert.Equal(t, want != 0, trie.Contains(query), "Contains(%q)", query)
	}
}

func TestLookupPrefixWords(t *testing.T) {
	trie := Build([]string{"a", "ab", "abc", "b"})

	assert.Equal(t, 1, trie.Lookup("a"))
	assert.Equal(t, 2, trie.Lookup("b"))
	assert.Equal(t, 3, trie.Lookup("ab"))
	assert.Equal(t, 4, trie.Lookup("abc"))
	assert.Equal(t, 0, trie.Lookup("abcd"))
	assert.Equal(t, []string{"a", "ab", "abc", "b"}, trie.Words())
}

func TestEmptyTrie(t *testing.T) {
	for _, words := range [][]string{nil, {""}} {
		trie := Build(words)
		assert.Equal(t, "", trie.Labels())
		assert.Equal(t, "10", bitString(&trie.louds))
		assert.Equal(t, 0, trie.NumWords())
		assert.Equal(t, 0, trie.Lookup("a"))
		assert.Equal(t, 0, trie.Lookup(""))
		assert.Empty(t, trie.Words())
	}
}

func TestSingleWord(t *testing.T) {
	trie := Build([]string{"hello"})
	assert.Equal(t, 1, trie.Lookup("hello"))
	assert.Equal(t, 0, trie.Lookup("hell"))
	assert.Equal(t, 0, trie.Lookup("hellos"))
	assert.Equal(t, []string{"hello"}, trie.Words())
}

func TestRandomDictionary(t *testing.T) {
	words := randomDictionary(2000, 42)
	want := unique(words)
	trie := Build(words)

	require.Equal(t, len(want), trie.NumWords())
	require.Equal(t, want, trie.Words())

	seen := make(map[int]string)
	for _, word := range want {
		ordinal := trie.Lookup(word)
		require.Positive(t, ordinal, word)
		require.LessOrEqual(t, ordinal, len(want))
		if other, ok := seen[ordinal]; ok {
			t.Fatalf("%q and %q share ordinal %d", word, other, ordinal)
		}
		seen[ordinal] = word
	}

	stored := make(map[string]bool)
	for _, word := range want {
		stored[word] = true
	}
	for _, word := range randomDictionary(2000, 7) {
		if !stored[word] {
			require.Equal(t, 0, trie.Lookup(word), word)
		}
		require.Equal(t, 0, trie.Lookup(word+"e"), word)
	}
}

func TestEnumerate(t *testing.T) {
	trie := Build(testWords())

	var words []string
	trie.Enumerate(func(ordinal int, word []byte, terminal bool) EnumerationResult {
		assert.Equal(t, terminal, ordinal != 0)
		assert.Equal(t, trie.Lookup(string(word)), ordinal)
		words = append(words, string(word))
		return Continue
	})
	assert.Equal(t, []string{"a", "aa", "aaa", "aab", "ab", "b", "ba", "bb"}, words)
}

func TestEnumerateSkipStop(t *testing.T) {
	trie := Build(testWords())

	collect := func(control func(word string) EnumerationResult) []string {
		var words []string
		trie.Enumerate(func(_ int, word []byte, terminal bool) EnumerationResult {
			if terminal {
				words = append(words, string(word))
			}
			return control(string(word))
		})
		return words
	}

	skipA := collect(func(word string) EnumerationResult {
		if word == "a" {
			return Skip
		}
		return Continue
	})
	assert.Equal(t, []string{"ba", "bb"}, skipA)

	stopAtAB := collect(func(word string) EnumerationResult {
		if word == "ab" {
			return Stop
		}
		return Continue
	})
	assert.Equal(t, []string{"aaa", "aab", "ab"}, stopAtAB)
}

func TestTraverse(t *testing.T) {
	trie := Build(testWords())

	var buf bytes.Buffer
	require.NoError(t, trie.Traverse(&buf))
	assert.Equal(t, "aaa\naab\nab\nba\nbb\n", buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestTraverseWriteError(t *testing.T) {
	trie := Build(randomDictionary(5000, 1))
	require.ErrorIs(t, trie.Traverse(failingWriter{}), errWrite)
}

func TestEqual(t *testing.T) {
	assert.True(t, Build(testWords()).Equal(Build(testWords())))
	assert.False(t, Build(testWords()).Equal(Build([]string{"aaa", "aab", "ab", "ba"})))
	assert.False(t, Build([]string{"ab"}).Equal(Build([]string{"ac"})))
}

func TestString(t *testing.T) {
	s := Build(testWords()).String()
	assert.Contains(t, s, "labels: abababab\n")
	assert.Contains(t, s, "louds: \nsize: 18\n")
	assert.Contains(t, s, "terminal: \nsize: 9\n")
}

func TestConcurrentLookup(t *testing.T) {
	words := unique(randomDictionary(1000, 3))
	trie := Build(words)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, word := range words {
				assert.Positive(t, trie.Lookup(word))
			}
			assert.Equal(t, words, trie.Words())
		}()
	}
	wg.Wait()
}

func TestNodeIDOffsets(t *testing.T) {
	trie := Build(testWords())

	// position 2 is the first labeled node
	id := trie.nodeAt(firstNode)
	assert.Equal(t, nodeID(2), id)
	assert.Equal(t, uint32(0), id.labelIndex())
	assert.Equal(t, uint32(1), id.terminalIndex())

	// the root's children start right after the super-root
	assert.Equal(t, uint32(firstNode), trie.firstChild(trie.nodeAt(superRoot)))
}
