package louds

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxWordLength bounds a single line of a word list.
const maxWordLength = 1 << 20

// ReadWords reads a newline delimited word list. A trailing carriage return
// is removed from each line and empty lines are dropped.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxWordLength)
	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading word list")
	}
	return words, nil
}

// ReadWordFile reads a word list from a file.
func ReadWordFile(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := ReadWords(f)
	return words, errors.Wrap(err, filename)
}

// CheckOrder returns an error wrapping ErrUnsorted for the first word that
// sorts before its predecessor. Words are numbered from 1.
func CheckOrder(words []string) error {
	for i := 1; i < len(words); i++ {
		if words[i] < words[i-1] {
			return errors.Wrapf(ErrUnsorted, "word %d %q after %q", i+1, words[i], words[i-1])
		}
	}
	return nil
}
