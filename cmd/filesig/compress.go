package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/tridgewood/filesig/lzw"
)

func newCompressCmd() *cobra.Command {
	var maxbits int
	var blockMode bool

	cmd := &cobra.Command{
		Use:   "compress <input> <output>",
		Short: "Compress a file into the historical `.Z` LZW format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "filesig: open input")
			}
			defer in.Close()

			out, err := os.Create(args[1])
			if err != nil {
				return errors.Wrap(err, "filesig: create output")
			}
			defer out.Close()

			enc := lzw.NewEncoder(maxbits, blockMode, lzw.WithLogger(logger))
			return enc.Encode(out, in)
		},
	}

	cmd.Flags().IntVar(&maxbits, "bits", 16, "maximum code width (9-16)")
	cmd.Flags().BoolVar(&blockMode, "block-mode", true, "enable the adaptive ratio monitor")

	return cmd
}

func newUncompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncompress <input> <output>",
		Short: "Decompress a `.Z` LZW stream",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "filesig: open input")
			}
			defer in.Close()

			out, err := os.Create(args[1])
			if err != nil {
				return errors.Wrap(err, "filesig: create output")
			}
			defer out.Close()

			dec := lzw.NewDecoder(lzw.WithLogger(logger))
			return dec.Decode(out, in)
		},
	}

	return cmd
}
