// Package cli provides the command-line interface of lenso.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/lenso/compiler"
	"github.com/syssam/lenso/compiler/gen"
	"github.com/syssam/lenso/internal/cli/config"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lenso < models.json > lenso.go",
		Short: "Generate Go lenses for data models",
		Long: `lenso reads a model description on standard input and writes a Go
source file to standard output holding, for every model, a value struct,
its lenses, its bound lens type and a ThroughLens accessor.

The description is JSON (or the equivalent YAML):

  {"models": [{"name": "Person", "properties": [{"name": "name", "type": "string"}]}]}

Configuration is read from lenso.yaml (or the file named by LENSO_CONFIG)
and LENSO_PACKAGE, LENSO_HEADER, LENSO_RESOLVE_IMPORTS, LENSO_LOG_LEVEL.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, ok := loggerFrom(cmd.Context())
	if !ok {
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		logger = NewLogger(cmd.ErrOrStderr(), level)
	}
	if cfg.ConfigFile != "" {
		logger.Debug("config file loaded", "path", cfg.ConfigFile)
	}

	gcfg, err := gen.NewConfig(cfg.Options()...)
	if err != nil {
		return err
	}
	graph, err := compiler.LoadGraph(cmd.InOrStdin(), gcfg)
	if err != nil {
		return err
	}
	logger.Debug("models loaded", "count", len(graph.Models))
	out, err := gen.Generate(graph)
	if err != nil {
		return err
	}
	if _, err := cmd.OutOrStdout().Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("document generated", "package", gcfg.Package, "bytes", len(out))
	return nil
}

// Execute runs the root command with the process arguments and standard
// streams.
func Execute() error {
	cmd := NewRootCmd()
	cmd.SetArgs(os.Args[1:])
	return execute(cmd)
}

// execute runs cmd and reports its error on the command's stderr.
func execute(cmd *cobra.Command) error {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
