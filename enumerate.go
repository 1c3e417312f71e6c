package louds

import (
	"bufio"
	"io"
)

// EnumFn is called by Enumerate for every node. word is the path to the
// node; it is reused between calls and must be copied to be retained.
// ordinal is the word's Lookup result when terminal is set, else 0.
type EnumFn = func(ordinal int, word []byte, terminal bool) EnumerationResult

// EnumerationResult is returned by the enumeration function to indicate whether
// enumeration should continue below this node or stop altogether.
type EnumerationResult = int

const (
	// Continue enumerating the children of this node
	Continue EnumerationResult = iota

	// Skip the children of this node, carrying on with its siblings
	Skip

	// Stop will immediately stop enumerating
	Stop
)

type frame struct {
	index uint32 // louds position of the node
	depth int    // length of the path above the node
}

// Enumerate visits every node depth first, children in label order, so
// terminal nodes are reported in lexicographic order of their words.
func (t *Trie) Enumerate(fn EnumFn) {
	if len(t.labels) == 0 {
		return
	}

	var word []byte
	stack := []frame{{index: firstNode}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		id := t.nodeAt(f.index)
		word = append(word[:f.depth], t.labels[id.labelIndex()])

		ordinal := 0
		terminal := t.terminal.Get(id.terminalIndex())
		if terminal {
			ordinal = int(t.terminal.Rank1(uint32(id)))
		}

		result := fn(ordinal, word, terminal)
		if result == Stop {
			return
		}

		// the sibling goes under the child so the child's subtree comes first
		if next := f.index + 1; t.hasNode(next) {
			stack = append(stack, frame{index: next, depth: f.depth})
		}
		if result == Continue {
			if child := t.firstChild(id); t.hasNode(child) {
				stack = append(stack, frame{index: child, depth: f.depth + 1})
			}
		}
	}
}

// Traverse writes every stored word to w in lexicographic order, one per
// line.
func (t *Trie) Traverse(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var err error
	t.Enumerate(func(_ int, word []byte, terminal bool) EnumerationResult {
		if !terminal {
			return Continue
		}
		if _, err = bw.Write(word); err == nil {
			err = bw.WriteByte('\n')
		}
		if err != nil {
			return Stop
		}
		return Continue
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// Words returns every stored word in lexicographic order.
func (t *Trie) Words() []string {
	words := make([]string, 0, t.NumWords())
	t.Enumerate(func(_ int, word []byte, terminal bool) EnumerationResult {
		if terminal {
			words = append(words, string(word))
		}
		return Continue
	})
	return words
}
