package louds

import (
	"fmt"
	"math/bits"
	"slices"
	"sort"
	"strings"
)

// WordSize is the number of bits packed into each storage word. The on-disk
// layout depends on it.
const WordSize = 32

// BitVector is an append-only sequence of bits with a rank cache.
//
// Bits are added with PushBack and the vector is then frozen with Build.
// Rank and select queries are only valid after Build and must not be mixed
// with further appends. Once built, a BitVector is safe for concurrent reads.
type BitVector struct {
	size   uint32
	bits   []uint32
	blocks []uint32 // blocks[i] = number of ones before word i
}

// NewBitVector returns an empty bit vector.
func NewBitVector() *BitVector {
	return &BitVector{}
}

// numWords returns ceil(size / WordSize).
func numWords(size uint32) uint32 {
	return uint32((uint64(size) + WordSize - 1) / WordSize)
}

// Len returns the number of bits stored.
func (b *BitVector) Len() uint32 {
	return b.size
}

// Ones returns the total number of set bits. It needs Build.
func (b *BitVector) Ones() uint32 {
	b.checkBuilt("Ones")
	return b.blocks[len(b.blocks)-1]
}

// Zeros returns the total number of unset bits. It needs Build.
func (b *BitVector) Zeros() uint32 {
	return b.size - b.Ones()
}

// SizeInBytes returns the memory used by the words and the rank blocks.
func (b *BitVector) SizeInBytes() int {
	return (len(b.bits) + len(b.blocks)) * 4
}

// Clear empties the vector.
func (b *BitVector) Clear() {
	b.size = 0
	b.bits = b.bits[:0]
	b.blocks = b.blocks[:0]
}

// PushBack appends one bit.
func (b *BitVector) PushBack(bit bool) {
	if uint32(len(b.bits)) != numWords(b.size) {
		invariant("PushBack", "%d words for %d bits", len(b.bits), b.size)
	}

	if uint32(len(b.bits))*WordSize == b.size {
		b.bits = append(b.bits, 0)
	}
	if bit {
		b.bits[len(b.bits)-1] |= 1 << (b.size % WordSize)
	}
	b.size++
}

// Get returns the bit at position.
func (b *BitVector) Get(position uint32) bool {
	if position >= b.size {
		invariant("Get", "position %d out of range [0, %d)", position, b.size)
	}
	return (b.bits[position/WordSize]>>(position%WordSize))&1 == 1
}

// Build computes the rank blocks. It must be called after the last PushBack.
func (b *BitVector) Build() {
	if uint32(len(b.bits)) != numWords(b.size) {
		invariant("Build", "%d words for %d bits", len(b.bits), b.size)
	}
	b.blocks = computeBlocks(b.bits, b.blocks[:0])
}

// computeBlocks appends the cumulative popcount at each word boundary, and
// the grand total, to dst.
func computeBlocks(words []uint32, dst []uint32) []uint32 {
	var count uint32
	for _, w := range words {
		dst = append(dst, count)
		count += uint32(bits.OnesCount32(w))
	}
	return append(dst, count)
}

func (b *BitVector) checkBuilt(op string) {
	if len(b.blocks) != len(b.bits)+1 {
		invariant(op, "rank blocks not built")
	}
}

// Rank1 returns the number of set bits in [0, position).
func (b *BitVector) Rank1(position uint32) uint32 {
	b.checkBuilt("Rank1")
	if position > b.size {
		invariant("Rank1", "position %d out of range [0, %d]", position, b.size)
	}

	division := position / WordSize
	absolute := b.blocks[division]
	remainder := position % WordSize
	if remainder == 0 {
		return absolute
	}

	shifted := b.bits[division] << (WordSize - remainder)
	return absolute + uint32(bits.OnesCount32(shifted))
}

// Rank0 returns the number of unset bits in [0, position).
func (b *BitVector) Rank0(position uint32) uint32 {
	return position - b.Rank1(position)
}

// Select1 returns one plus the position of the count-th set bit, so that
// Rank1(Select1(count)) == count. Select1(0) is 0.
func (b *BitVector) Select1(count uint32) uint32 {
	if count == 0 {
		return 0
	}
	if count > b.Ones() {
		invariant("Select1", "count %d exceeds %d ones", count, b.Ones())
	}

	// last word whose preceding ones are fewer than count
	index := sort.Search(len(b.blocks), func(i int) bool {
		return b.blocks[i] >= count
	}) - 1

	word := b.bits[index]
	relative := b.blocks[index]
	for i := uint32(0); i < WordSize; i++ {
		relative += (word >> i) & 1
		if relative == count {
			return uint32(index)*WordSize + i + 1
		}
	}

	invariant("Select1", "count %d not found in word %d", count, index)
	return 0
}

// Select0 returns one plus the position of the count-th unset bit, so that
// Rank0(Select0(count)) == count. Select0(0) is 0.
func (b *BitVector) Select0(count uint32) uint32 {
	if count == 0 {
		return 0
	}
	if count > b.Zeros() {
		invariant("Select0", "count %d exceeds %d zeros", count, b.Zeros())
	}

	// zeros before word i, padding of the last word excluded
	zerosBefore := func(i int) uint32 {
		return uint32(i)*WordSize - b.blocks[i]
	}

	index := sort.Search(len(b.blocks)-1, func(i int) bool {
		return zerosBefore(i) >= count
	}) - 1

	word := b.bits[index]
	relative := zerosBefore(index)
	for i := uint32(0); i < WordSize; i++ {
		relative += ^(word >> i) & 1
		if relative == count {
			return uint32(index)*WordSize + i + 1
		}
	}

	invariant("Select0", "count %d not found in word %d", count, index)
	return 0
}

// Equal reports whether both vectors hold the same bits and rank blocks.
func (b *BitVector) Equal(other *BitVector) bool {
	return b.size == other.size &&
		slices.Equal(b.bits, other.bits) &&
		slices.Equal(b.blocks, other.blocks)
}

// String formats the bits in groups of 8, 16 per line, followed by the
// blocks.
func (b *BitVector) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size: %d\n", b.size)
	for i := uint32(0); i < b.size; i++ {
		if b.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		if i%8 == 7 {
			sb.WriteByte(' ')
		}
		if i%16 == 15 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("\nblock:")
	for _, block := range b.blocks {
		fmt.Fprintf(&sb, " %d", block)
	}
	sb.WriteByte('\n')
	return sb.String()
}
