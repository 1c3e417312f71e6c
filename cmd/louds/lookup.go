package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/milden6/louds"
	"github.com/spf13/cobra"
)

// maxQueryLength bounds a single query read from standard input.
const maxQueryLength = 1 << 20

func LookupCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup trie",
		Short: "Look up words read from standard input",
		Long: `This command loads a trie and prints, for every whitespace delimited query read
from standard input, the word's ordinal or 0 if it is not stored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shown, err := usage(cmd, args, 1); shown || err != nil {
				return err
			}
			return e.lookup(cmd.InOrStdin(), cmd.OutOrStdout(), args[0])
		},
	}
}

func (e *env) lookup(in io.Reader, out io.Writer, filename string) error {
	trie, err := louds.Load(filename)
	if err != nil {
		return err
	}
	e.log.Debugw("Loaded trie", "file", filename, "words", trie.NumWords())

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxQueryLength)
	scanner.Split(bufio.ScanWords)
	w := bufio.NewWriter(out)

	queries, hits := 0, 0
	for scanner.Scan() {
		ordinal := trie.Lookup(scanner.Text())
		queries++
		if ordinal != 0 {
			hits++
		}
		if _, err := w.WriteString(strconv.Itoa(ordinal)); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	e.log.Debugw("Answered queries", "queries", queries, "hits", hits)
	return w.Flush()
}
