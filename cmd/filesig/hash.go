package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tridgewood/filesig/fuzzy"
)

func newHashCmd() *cobra.Command {
	var noTrunc bool
	var elimSeq bool

	cmd := &cobra.Command{
		Use:   "hash <file>",
		Short: "Compute the fuzzy (ssdeep/spamsum) signature of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := 0
			if noTrunc {
				flags |= fuzzy.FlagNoTruncate
			}
			if elimSeq {
				flags |= fuzzy.FlagEliminateSequences
			}

			sig, err := fuzzy.HashFile(args[0], flags, fuzzy.WithLogger(logger))
			if err != nil {
				return errors.Wrap(err, "filesig: hash file")
			}
			fmt.Printf("%s,%s\n", sig, args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&noTrunc, "no-trunc", false, "do not truncate the second digest field")
	cmd.Flags().BoolVar(&elimSeq, "eliminate-sequences", false, "collapse runs of four or more identical characters")

	return cmd
}

func newCmpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp <signature1> <signature2>",
		Short: "Score the similarity of two fuzzy signatures (0-100)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := fuzzy.Compare(args[0], args[1])
			if err != nil {
				return errors.Wrap(err, "filesig: compare signatures")
			}
			fmt.Println(score)
			return nil
		},
	}

	return cmd
}
