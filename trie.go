package louds

import (
	"fmt"
	"strings"
)

// superRoot is the louds position of the super-root's only 1 bit. Its one
// child is the root, whose children are the first characters of all words.
const superRoot = 0

// firstNode is the louds position of the first labeled node.
const firstNode = 2

// Trie is a LOUDS encoded trie over byte strings.
//
// Three parallel structures describe it. louds holds the tree shape: every
// node is written, breadth first, as one 1 bit per child followed by a 0
// bit, after a "10" super-root. terminal holds one bit per node telling
// whether the path to it spells a stored word. labels holds the byte on the
// edge into every node but the super-root and the root.
//
// A Trie is immutable once built or loaded and is safe for concurrent use.
type Trie struct {
	louds    BitVector
	terminal BitVector
	labels   []byte
}

// nodeID is the 1-based number of a node in breadth first order. The root
// is 1 and the first labeled node is 2.
type nodeID uint32

// labelIndex returns the offset of the node's label in labels.
func (id nodeID) labelIndex() uint32 {
	return uint32(id) - 2
}

// terminalIndex returns the position of the node's bit in terminal.
func (id nodeID) terminalIndex() uint32 {
	return uint32(id) - 1
}

// nodeAt returns the id of the node whose 1 bit is at louds position index.
func (t *Trie) nodeAt(index uint32) nodeID {
	return nodeID(t.louds.Rank1(index + 1))
}

// firstChild returns the louds position where the node's child run starts.
// The run is empty when the bit there is 0 or the position is past the end.
func (t *Trie) firstChild(id nodeID) uint32 {
	return t.louds.Select0(uint32(id))
}

// hasNode reports whether a node's 1 bit is at louds position index.
func (t *Trie) hasNode(index uint32) bool {
	return index < t.louds.Len() && t.louds.Get(index)
}

// workItem is an entry of the level order construction queue: either the
// remaining text of a word or a marker closing a child run.
type workItem struct {
	suffix   string
	closeRun bool
}

// workQueue is a FIFO of work items.
type workQueue struct {
	items []workItem
	head  int
}

func (q *workQueue) push(item workItem) {
	q.items = append(q.items, item)
}

func (q *workQueue) pop() workItem {
	item := q.items[q.head]
	q.head++
	if q.head > 1024 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item
}

func (q *workQueue) empty() bool {
	return q.head == len(q.items)
}

// Build creates a trie from words. Words sharing a prefix must be adjacent,
// which holds when words are sorted; this is not checked. Use a Builder to
// have the order validated. Empty words are skipped.
func Build(words []string) *Trie {
	t := &Trie{}

	// super-root
	t.louds.PushBack(true)
	t.louds.PushBack(false)
	t.terminal.PushBack(false)

	q := &workQueue{items: make([]workItem, 0, 2*len(words))}
	for _, word := range words {
		if word != "" {
			q.push(workItem{suffix: word})
		}
	}

	var prev byte
	var hasPrev bool
	for !q.empty() {
		item := q.pop()
		if item.closeRun {
			t.louds.PushBack(false)
			hasPrev = false
			continue
		}

		s := item.suffix
		if !hasPrev || s[0] != prev {
			// new child of the node whose run is open
			t.labels = append(t.labels, s[0])
			t.louds.PushBack(true)
			t.terminal.PushBack(len(s) == 1)
			prev, hasPrev = s[0], true
			q.push(workItem{closeRun: true})
		}
		if len(s) > 1 {
			q.push(workItem{suffix: s[1:]})
		}
	}

	t.louds.Build()
	t.terminal.Build()
	return t
}

// linearSearch returns the louds position of the child of the node at index
// whose label is c.
func (t *Trie) linearSearch(index uint32, c byte) (uint32, bool) {
	child := t.firstChild(t.nodeAt(index))
	id := nodeID(t.louds.Rank1(child) + 1)
	for ; t.hasNode(child); child++ {
		if t.labels[id.labelIndex()] == c {
			return child, true
		}
		id++
	}
	return 0, false
}

// Lookup returns the ordinal of query, a number unique among stored words
// counting from 1 in breadth first order, or 0 if query is not stored.
func (t *Trie) Lookup(query string) int {
	index := uint32(superRoot)
	for i := 0; i < len(query); i++ {
		var ok bool
		if index, ok = t.linearSearch(index, query[i]); !ok {
			return 0
		}
	}

	id := t.nodeAt(index)
	if !t.terminal.Get(id.terminalIndex()) {
		return 0
	}
	return int(t.terminal.Rank1(uint32(id)))
}

// Contains reports whether query is a stored word.
func (t *Trie) Contains(query string) bool {
	return t.Lookup(query) != 0
}

// NumWords returns the number of distinct words stored.
func (t *Trie) NumWords() int {
	return int(t.terminal.Ones())
}

// NumNodes returns the number of labeled nodes, which is also the number of
// edges.
func (t *Trie) NumNodes() int {
	return len(t.labels)
}

// Labels returns the edge labels in breadth first order.
func (t *Trie) Labels() string {
	return string(t.labels)
}

// LabelsSize returns the bytes used by the labels.
func (t *Trie) LabelsSize() int {
	return len(t.labels)
}

// LOUDSSize returns the bytes used by the shape bit vector.
func (t *Trie) LOUDSSize() int {
	return t.louds.SizeInBytes()
}

// TerminalSize returns the bytes used by the terminal bit vector.
func (t *Trie) TerminalSize() int {
	return t.terminal.SizeInBytes()
}

// Size returns the total bytes used by the trie.
func (t *Trie) Size() int {
	return t.LabelsSize() + t.LOUDSSize() + t.TerminalSize()
}

// Equal reports whether both tries have identical labels and bit vectors.
func (t *Trie) Equal(other *Trie) bool {
	return string(t.labels) == string(other.labels) &&
		t.louds.Equal(&other.louds) &&
		t.terminal.Equal(&other.terminal)
}

func (t *Trie) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "labels: %s\n", t.labels)
	fmt.Fprintf(&sb, "louds: \n%s\n", t.louds.String())
	fmt.Fprintf(&sb, "terminal: \n%s\n", t.terminal.String())
	return sb.String()
}
