package main

import (
	"io"
	"strconv"

	"github.com/milden6/louds"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func TraverseCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "traverse trie [times]",
		Short: "Print every word of a trie",
		Long: `This command loads a trie and prints all of its words in lexicographic order,
repeated times times (default 1).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shown, err := usage(cmd, args, 1); shown || err != nil {
				return err
			}

			times := 1
			if len(args) > 1 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return errors.Wrapf(err, "invalid times %q", args[1])
				}
				times = n
			}
			return e.traverse(cmd.OutOrStdout(), args[0], times)
		},
	}
}

func (e *env) traverse(out io.Writer, filename string, times int) error {
	trie, err := louds.Load(filename)
	if err != nil {
		return err
	}
	e.log.Debugw("Loaded trie", "file", filename, "words", trie.NumWords(), "times", times)

	for i := 0; i < times; i++ {
		if err := trie.Traverse(out); err != nil {
			return err
		}
	}
	return nil
}
