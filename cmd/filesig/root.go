package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "filesig",
		Short:         "LZW `.Z` compression and ssdeep-style fuzzy hashing",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var cfg zap.Config
			if verbose {
				cfg = zap.NewDevelopmentConfig()
			} else {
				cfg = zap.NewProductionConfig()
				cfg.OutputPaths = []string{"stderr"}
			}
			z, err := cfg.Build()
			if err != nil {
				return err
			}
			logger = z.Sugar()
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCompressCmd())
	root.AddCommand(newUncompressCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newCmpCmd())

	return root
}
