package main

import (
	"fmt"
	"io"
	"time"

	"github.com/milden6/louds"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func BuildCmd(e *env) *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build input output",
		Short: "Build a trie from a word list",
		Long: `This command reads a newline delimited word list, builds a trie from it and
writes the trie to output. Words must be sorted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if shown, err := usage(cmd, args, 2); shown || err != nil {
				return err
			}
			return e.build(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	buildCmd.Flags().Bool(strictF, defaultStrict, strictUsage)
	return buildCmd
}

func (e *env) build(out io.Writer, input, output string) error {
	start := time.Now()
	words, err := louds.ReadWordFile(input)
	if err != nil {
		return err
	}
	e.log.Debugw("Read word list", "file", input, "words", len(words))

	var trie *louds.Trie
	if e.cfg.Strict {
		b := louds.NewBuilder()
		for _, word := range words {
			if err := b.Add(word); err != nil {
				return err
			}
		}
		trie = b.Finish()
	} else {
		trie = louds.Build(words)
	}

	n, err := trie.Save(output)
	if err != nil {
		return err
	}
	e.log.Infow("Built trie", "file", output, "words", trie.NumWords(),
		"nodes", trie.NumNodes(), "bytes", n, "elapsed", time.Since(start))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Structure", "Size"})
	table.Append([]string{"labels", fmt.Sprintf("%d", trie.LabelsSize())})
	table.Append([]string{"louds", fmt.Sprintf("%d", trie.LOUDSSize())})
	table.Append([]string{"terminal", fmt.Sprintf("%d", trie.TerminalSize())})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d", trie.Size())})
	table.Render()
	return nil
}
