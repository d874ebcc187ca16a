package gen

import (
	"bytes"
	"io"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"
)

// Section comments of the generated document, in output order.
const (
	sectionModels      = "// Models"
	sectionLensAPI     = "// Lenses API"
	sectionBoundAPI    = "// Bound lenses API"
	sectionLenses      = "// Generated lenses"
	sectionBoundLenses = "// Generated bound lenses"
	sectionAccessors   = "// Generated root accessors"
)

// Phases reported by GenerationError.
const (
	PhaseStruct    = "struct"
	PhaseLenses    = "lenses"
	PhaseBoundLens = "bound-lens"
	PhaseAccessor  = "accessor"
	PhaseImports   = "imports"
)

// Generator assembles the generated document of a graph.
//
// Example:
//
//	g, err := gen.NewGraph(cfg, schema.Models...)
//	if err != nil {
//		return err
//	}
//	return gen.NewGenerator(g).Generate(os.Stdout)
type Generator struct {
	graph *Graph
}

// NewGenerator creates a new generator for the given graph.
func NewGenerator(g *Graph) *Generator {
	return &Generator{graph: g}
}

// Graph returns the graph of the generator.
func (g *Generator) Graph() *Graph {
	return g.graph
}

// Generate writes the generated document to w.
func (g *Generator) Generate(w io.Writer) error {
	b, err := g.Bytes()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Bytes returns the generated document. The document holds, in order
// and under their section comments: the model structs, the lens
// library, the bound lens library, the lens collections, the bound
// lens types and the root accessors.
func (g *Generator) Bytes() ([]byte, error) {
	if g.graph == nil || g.graph.Config == nil {
		return nil, NewConfigError("Config", nil, "missing config in graph")
	}
	var (
		buf    bytes.Buffer
		models = g.graph.Models
	)
	buf.WriteString(g.graph.Header)
	buf.WriteString("\n\npackage ")
	buf.WriteString(g.graph.Package)
	buf.WriteString("\n")

	section(&buf, sectionModels)
	for _, m := range models {
		if err := render(&buf, PhaseStruct, m, genStruct(m)); err != nil {
			return nil, err
		}
	}
	section(&buf, sectionLensAPI)
	buf.WriteString("\n")
	buf.WriteString(LensLibrary)
	section(&buf, sectionBoundAPI)
	buf.WriteString("\n")
	buf.WriteString(BoundLensLibrary)
	section(&buf, sectionLenses)
	for _, m := range models {
		if err := render(&buf, PhaseLenses, m, genLenses(m)); err != nil {
			return nil, err
		}
	}
	section(&buf, sectionBoundLenses)
	for _, m := range models {
		if err := render(&buf, PhaseBoundLens, m, genBoundLens(m, g.graph.Set)); err != nil {
			return nil, err
		}
	}
	section(&buf, sectionAccessors)
	for _, m := range models {
		if err := render(&buf, PhaseAccessor, m, genRootAccessor(m)); err != nil {
			return nil, err
		}
	}

	if !g.graph.ResolveImports {
		return buf.Bytes(), nil
	}
	out, err := imports.Process(g.graph.Package+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, NewGenerationError(PhaseImports, "", "resolve imports", err)
	}
	return out, nil
}

func section(buf *bytes.Buffer, comment string) {
	buf.WriteString("\n")
	buf.WriteString(comment)
	buf.WriteString("\n")
}

// render formats the declarations of a single emitter and appends them
// to buf, preceded by a blank line.
func render(buf *bytes.Buffer, phase string, m *Model, decl *jen.Statement) error {
	var b bytes.Buffer
	if err := decl.Render(&b); err != nil {
		return NewGenerationError(phase, m.Name, "render declaration", err)
	}
	buf.WriteString("\n")
	buf.Write(bytes.TrimSpace(b.Bytes()))
	buf.WriteString("\n")
	return nil
}

// Generate is the convenience function that assembles the document of
// the given graph.
func Generate(g *Graph) ([]byte, error) {
	return NewGenerator(g).Bytes()
}
