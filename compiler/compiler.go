// Package compiler provides an API for loading model descriptions and
// generating lenses from them.
package compiler

import (
	"fmt"
	"io"
	"os"

	"github.com/syssam/lenso/compiler/gen"
	"github.com/syssam/lenso/compiler/load"
)

// LoadGraph reads the model description from r and returns its graph.
func LoadGraph(r io.Reader, cfg *gen.Config) (*gen.Graph, error) {
	schema, err := load.Read(r)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, schema.Models...)
}

// Generate reads the model description from r and returns the generated
// document.
//
//	out, err := compiler.Generate(os.Stdin, gen.WithPackage("models"))
func Generate(r io.Reader, opts ...gen.Option) ([]byte, error) {
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	graph, err := LoadGraph(r, cfg)
	if err != nil {
		return nil, err
	}
	return gen.Generate(graph)
}

// GenerateFile generates the document of the description stored in the
// input file and writes it to the output file.
func GenerateFile(input, output string, opts ...gen.Option) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open models: %w", err)
	}
	defer f.Close()
	out, err := Generate(f, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
