/*
Package louds is an implementation of a succinct trie using the Level-Order
Unary Degree Sequence to encode the tree shape.

A trie stores a static set of byte strings in little more than two bits per
node plus one byte per edge label. Lookups and enumeration run directly on
the compressed form; nothing is decompressed.

The building block is BitVector, a packed sequence of bits with a rank cache
that answers rank in constant time and select with a binary search over the
cache followed by a scan of one word.

In general, to use it you build a trie from a word list with Build, or with a
Builder if you want the input order to be checked. Words must be sorted, or at
least words sharing a prefix must be adjacent. Lookup returns an ordinal that
is unique among stored words, or 0 if the word is not stored. Enumerate and
Traverse walk all words in lexicographic order.

After building, a trie may be written to disk using Save, and opened again
later using Load. The format is described at the top of disk.go.

Positions, counts and sizes outside a structure's range are programming or
data corruption errors. They panic with an *InvariantError, which matches
ErrInvariant. Damaged files are reported by Load and Read as errors wrapping
ErrCorrupt.
*/
package louds
