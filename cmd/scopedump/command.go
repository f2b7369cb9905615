package main

import (
	"github.com/spf13/cobra"
	"github.com/viant/scopology"
	"github.com/viant/scopology/inventory"
	"go.uber.org/zap"
	"io"
)

type dumpOptions struct {
	file       string
	maxDepth   int
	verbose    bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	options := &dumpOptions{}
	cmd := &cobra.Command{
		Use:          "scopedump",
		Short:        "Dump registry entities of a scope chain as JSON lines",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(out, options)
		},
	}
	cmd.Flags().StringVarP(&options.file, "file", "f", "", "scope hierarchy YAML file")
	cmd.Flags().IntVar(&options.maxDepth, "max-depth", 0, "fail when chain exceeds depth (0 = unlimited)")
	cmd.Flags().BoolVarP(&options.verbose, "verbose", "v", false, "enable debug logging")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runDump(out io.Writer, options *dumpOptions) error {
	logger, err := newLogger(options.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	aHierarchy, err := loadHierarchy(options.file)
	if err != nil {
		return err
	}
	start, err := aHierarchy.build()
	if err != nil {
		return err
	}
	opts := []scopology.Option{scopology.WithLogger(logger), scopology.WithMaxDepth(options.maxDepth)}
	count, err := inventory.Write(out, start, opts...)
	if err != nil {
		logger.Error("dump failed", zap.String("file", options.file), zap.Error(err))
		return err
	}
	logger.Info("dump completed", zap.String("file", options.file), zap.Int("entities", count))
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	config.OutputPaths = []string{"stderr"}
	return config.Build()
}
