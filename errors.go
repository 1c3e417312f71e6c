package louds

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is matched by every *InvariantError. Invariant violations are
	// raised by panicking, never returned from a query.
	ErrInvariant = errors.New("louds: invariant violation")

	// ErrCorrupt is wrapped by errors returned when serialized data is
	// truncated or internally inconsistent.
	ErrCorrupt = errors.New("louds: corrupt data")

	// ErrUnsorted is returned when a word sorts before its predecessor.
	ErrUnsorted = errors.New("louds: words not in lexicographic order")

	// ErrEmptyWord is returned when adding the empty string, which a trie
	// cannot represent.
	ErrEmptyWord = errors.New("louds: empty word")

	// ErrFinished is returned when adding to a Builder after Finish.
	ErrFinished = errors.New("louds: builder already finished")
)

// InvariantError describes a programming or data-corruption error: an out of
// range position, a select past the population, or parallel structures that
// disagree in size.
type InvariantError struct {
	Op  string
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("louds: %s: %s", e.Op, e.Msg)
}

// Is reports whether target is ErrInvariant.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func invariant(op string, format string, args ...any) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
