package louds

import (
	"io"
	"os"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
)

/* FILE FORMAT

All words are 32 bit little-endian.

bit vector:
- 1 word: size, the number of bits
- ceil(size/32) words: bits, least significant bit first
- ceil(size/32)+1 words: rank blocks

trie:
- bit vector: louds
- bit vector: terminal
- louds.size/2 - 1 bytes: labels

The number of label bytes is never stored. Every node but the super-root
contributes one label, one 1 bit and one 0 bit to louds, and the super-root
contributes "10".
*/

// WriteTo writes the vector to w. It implements io.WriterTo.
func (b *BitVector) WriteTo(w io.Writer) (int64, error) {
	b.checkBuilt("WriteTo")

	ww := newWordWriter(w)
	ww.WriteWord(b.size)
	ww.WriteWords(b.bits)
	ww.WriteWords(b.blocks)
	return ww.n, ww.err
}

// ReadFrom replaces the vector with one read from r. It implements
// io.ReaderFrom. The stored rank blocks are checked against the words.
func (b *BitVector) ReadFrom(r io.Reader) (int64, error) {
	wr := newWordReader(r)
	_, err := b.readFrom(wr)
	return wr.n, err
}

func (b *BitVector) readFrom(r *wordReader) (int64, error) {
	start := r.n
	size, err := r.ReadWord("bit vector size")
	if err != nil {
		return r.n - start, err
	}

	words := numWords(size)
	bits, err := r.ReadWords(words, "bit vector words")
	if err != nil {
		return r.n - start, err
	}
	blocks, err := r.ReadWords(words+1, "bit vector blocks")
	if err != nil {
		return r.n - start, err
	}

	if rem := size % WordSize; rem != 0 && bits[words-1]>>rem != 0 {
		return r.n - start, errors.Wrap(ErrCorrupt, "bits set past the end of the vector")
	}
	if !slices.Equal(blocks, computeBlocks(bits, nil)) {
		return r.n - start, errors.Wrap(ErrCorrupt, "rank blocks do not match bits")
	}

	b.size, b.bits, b.blocks = size, bits, blocks
	return r.n - start, nil
}

// Write writes the trie to w. Returns the number of bytes written.
func (t *Trie) Write(w io.Writer) (int64, error) {
	ww := newWordWriter(w)
	if _, err := t.louds.WriteTo(ww); err != nil {
		return ww.n, errors.Wrap(err, "writing louds")
	}
	if _, err := t.terminal.WriteTo(ww); err != nil {
		return ww.n, errors.Wrap(err, "writing terminal")
	}
	ww.WriteBytes(t.labels)
	return ww.n, errors.Wrap(ww.err, "writing labels")
}

// Save writes the trie to a file. Returns the number of bytes written.
func (t *Trie) Save(filename string) (int64, error) {
	f, err := os.Create(filename)
	if err != nil {
		return 0, err
	}

	n, err := t.Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

// Read decodes a trie from r.
func Read(r io.Reader) (*Trie, error) {
	t, _, err := read(newWordReader(r))
	return t, err
}

func read(r *wordReader) (*Trie, int64, error) {
	t := &Trie{}
	if _, err := t.louds.readFrom(r); err != nil {
		return nil, r.n, errors.Wrap(err, "reading louds")
	}
	if _, err := t.terminal.readFrom(r); err != nil {
		return nil, r.n, errors.Wrap(err, "reading terminal")
	}

	size := t.louds.Len()
	if size < 2 || size%2 != 0 {
		return nil, r.n, errors.Wrapf(ErrCorrupt, "louds has %d bits", size)
	}
	if !t.louds.Get(0) || t.louds.Get(1) {
		return nil, r.n, errors.Wrap(ErrCorrupt, "louds does not start with the super-root")
	}
	if t.louds.Ones() != size/2 {
		return nil, r.n, errors.Wrapf(ErrCorrupt, "louds has %d ones in %d bits", t.louds.Ones(), size)
	}
	if !validShape(&t.louds) {
		return nil, r.n, errors.Wrap(ErrCorrupt, "louds is not a valid level order sequence")
	}
	if t.terminal.Len() != size/2 {
		return nil, r.n, errors.Wrapf(ErrCorrupt, "terminal has %d bits, louds has %d nodes", t.terminal.Len(), size/2)
	}

	t.labels = make([]byte, size/2-1)
	if err := r.ReadBytes(t.labels, "labels"); err != nil {
		return nil, r.n, err
	}
	return t, r.n, nil
}

// validShape reports whether every 0 bit closes the run of a node that has
// already appeared, so the k-th zero is preceded by at least k ones. This
// keeps every node id reached by a walk at 2 or more, with a label.
func validShape(louds *BitVector) bool {
	var ones, zeros uint32
	for i := uint32(0); i < louds.Len(); i++ {
		if louds.Get(i) {
			ones++
			continue
		}
		zeros++
		if ones < zeros {
			return false
		}
	}
	return true
}

// Load reads a trie file. The file is memory mapped while it is decoded and
// released before Load returns.
func Load(filename string) (*Trie, error) {
	f, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, n, err := read(newWordReader(io.NewSectionReader(f, 0, int64(f.Len()))))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", filename)
	}
	if n != int64(f.Len()) {
		return nil, errors.Wrapf(ErrCorrupt, "loading %s: %d trailing bytes", filename, int64(f.Len())-n)
	}
	return t, nil
}
