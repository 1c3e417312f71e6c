package louds

import (
	"github.com/pkg/errors"
)

// Builder collects words in lexicographic order and builds a Trie from them.
// Unlike Build it rejects input that would produce a malformed trie.
type Builder struct {
	words    []string
	finished bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// CanAdd will return true if the word can be added next.
func (b *Builder) CanAdd(word string) bool {
	return b.check(word) == nil
}

func (b *Builder) check(word string) error {
	switch {
	case b.finished:
		return ErrFinished
	case word == "":
		return ErrEmptyWord
	case len(b.words) > 0 && word < b.words[len(b.words)-1]:
		return errors.Wrapf(ErrUnsorted, "%q after %q", word, b.words[len(b.words)-1])
	}
	return nil
}

// Add appends a word. Words must not decrease; repeating the previous word
// is allowed and has no effect on the trie.
func (b *Builder) Add(word string) error {
	if err := b.check(word); err != nil {
		return err
	}
	b.words = append(b.words, word)
	return nil
}

// NumAdded returns the number of words added, repetitions included.
func (b *Builder) NumAdded() int {
	return len(b.words)
}

// Finish builds the trie. The builder cannot be added to afterwards.
func (b *Builder) Finish() *Trie {
	b.finished = true
	t := Build(b.words)
	b.words = nil
	return t
}
