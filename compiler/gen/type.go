package gen

import (
	"fmt"
	"go/token"
	"go/types"
	"unicode"
	"unicode/utf8"

	"github.com/syssam/lenso/compiler/load"
)

// The following types and their exported methods are used by the
// emitters to generate the output document.
type (
	// Model represents one record type of the graph and the
	// properties it holds.
	Model struct {
		cfg *Config
		// Name holds the model name, used verbatim as the Go type name.
		Name string
		// Properties holds the properties of the model in declaration order.
		Properties []*Property
		props      map[string]*Property
	}

	// Property holds the information of a model property used by the emitters.
	Property struct {
		model *Model
		// Name is the property name as written in the input.
		Name string
		// Type is the Go type expression of the property, used verbatim.
		Type string
	}

	// TypeKind classifies a property type string.
	TypeKind uint8

	// TypeRef is the result of classifying a property type against the
	// set of known models.
	TypeRef struct {
		Kind TypeKind
		// Model is set when Kind is KindModel.
		Model *Model
	}

	// ModelSet indexes the models of a generation run by name.
	ModelSet map[string]*Model
)

// List of type kinds.
const (
	// KindOpaque is a type expression that does not name a known model.
	KindOpaque TypeKind = iota
	// KindModel is a type expression equal to the name of a known model.
	KindModel
)

// String returns the kind name.
func (k TypeKind) String() string {
	switch k {
	case KindOpaque:
		return "opaque"
	case KindModel:
		return "model"
	default:
		return fmt.Sprintf("TypeKind(%d)", k)
	}
}

// NewModelSet indexes the given models by name.
// If two models share a name, the last one wins.
func NewModelSet(models ...*Model) ModelSet {
	set := make(ModelSet, len(models))
	for _, m := range models {
		set[m.Name] = m
	}
	return set
}

// Classify reports whether the type of p names a known model. The match
// is exact: "[]Address" or "*Address" are opaque even if Address is a
// model.
func (s ModelSet) Classify(p *Property) TypeRef {
	if m, ok := s[p.Type]; ok {
		return TypeRef{Kind: KindModel, Model: m}
	}
	return TypeRef{Kind: KindOpaque}
}

// Has reports if the set holds a model with the given name.
func (s ModelSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// NewModel creates a new model and its properties from the given
// description.
func NewModel(c *Config, lm *load.Model) (*Model, error) {
	if err := ValidModelName(lm.Name); err != nil {
		return nil, err
	}
	m := &Model{
		cfg:        c,
		Name:       lm.Name,
		Properties: make([]*Property, 0, len(lm.Properties)),
		props:      make(map[string]*Property, len(lm.Properties)),
	}
	for _, lp := range lm.Properties {
		p := &Property{model: m, Name: lp.Name, Type: lp.Type}
		if err := m.checkProperty(p); err != nil {
			return nil, err
		}
		m.Properties = append(m.Properties, p)
		m.props[p.StructField()] = p
	}
	return m, nil
}

// ValidModelName will determine if a name is going to conflict with any
// pre-defined names or is not usable as an exported Go type name.
func ValidModelName(name string) error {
	if name == "" {
		return NewValidationError("", "", nil, "model name cannot be empty")
	}
	if !token.IsIdentifier(name) {
		return NewValidationError(name, "", name, "model name is not a valid Go identifier")
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return NewValidationError(name, "", name, "model name must start with an upper-case letter")
	}
	if types.Universe.Lookup(name) != nil {
		return NewValidationError(name, "", name, "model name conflicts with Go predeclared identifier")
	}
	if _, ok := globalIdent[name]; ok {
		return NewValidationError(name, "", name, "model name conflicts with lens library identifier")
	}
	return nil
}

// checkProperty checks the model property.
func (m *Model) checkProperty(p *Property) (err error) {
	field := p.StructField()
	switch {
	case p.Name == "":
		err = NewValidationError(m.Name, "", nil, "property name cannot be empty")
	case !token.IsIdentifier(field) || token.Lookup(field).IsKeyword():
		err = NewValidationError(m.Name, p.Name, field, "property name does not map to a valid Go identifier")
	case p.Type == "":
		err = NewValidationError(m.Name, p.Name, nil, "property type cannot be empty")
	case m.props[field] != nil:
		err = NewSchemaError(m.Name, p.Name, fmt.Sprintf("property %q redeclared (as %s)", p.Name, field), nil)
	default:
		if _, ok := memberIdent[field]; ok {
			err = NewValidationError(m.Name, p.Name, field, "property name conflicts with generated member")
		}
	}
	return err
}

// =============================================================================
// Model methods
// =============================================================================

// Receiver returns the receiver and instance name used in the code
// generated for this model: the model name with a lower-cased initial.
func (m Model) Receiver() string {
	return localIdent(lowerInitial(m.Name))
}

// LensesName returns the name of the lens collection variable.
func (m Model) LensesName() string { return m.Name + "Lenses" }

// BoundLensName returns the name of the bound lens type of the model.
func (m Model) BoundLensName() string { return "BoundLensTo" + m.Name }

// Property returns the property with the given struct field name.
func (m Model) Property(field string) (*Property, bool) {
	p, ok := m.props[field]
	return p, ok
}

// =============================================================================
// Property methods
// =============================================================================

// StructField returns the struct field name of the property, which is
// also the member name used in the lens collection and the bound lens
// accessor.
func (p Property) StructField() string { return pascal(p.Name) }

// NewValueName returns the parameter name of the new value in the
// property setter.
func (p Property) NewValueName() string { return "new" + p.StructField() }

// Receiver returns the name of the instance parameter in the property
// setter. It never clashes with the new value parameter.
func (p Property) Receiver() string {
	recv := p.model.Receiver()
	if recv == p.NewValueName() {
		recv = "_" + recv
	}
	return recv
}

// Graph holds the models of a generation run.
type Graph struct {
	*Config
	// Models holds the models in declaration order.
	Models []*Model
	// Set indexes Models by name.
	Set ModelSet
}

// NewGraph creates a new graph for the given models. Generation fails
// fast: the first invalid model or collision is returned as an error.
func NewGraph(c *Config, models ...*load.Model) (g *Graph, err error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	g = &Graph{Config: c, Models: make([]*Model, 0, len(models))}
	for i, lm := range models {
		if lm == nil {
			return nil, NewSchemaError("", "", fmt.Sprintf("models[%d] cannot be nil", i), nil)
		}
		m, err := NewModel(c, lm)
		if err != nil {
			return nil, err
		}
		g.Models = append(g.Models, m)
	}
	g.Set = NewModelSet(g.Models...)
	if err := g.checkNames(); err != nil {
		return nil, err
	}
	return g, nil
}

// checkNames checks that the top-level identifiers declared for the
// models do not clash with each other.
func (g *Graph) checkNames() error {
	decl := make(map[string]string, len(g.Models)*3)
	for _, m := range g.Models {
		for _, name := range []string{m.Name, m.LensesName(), m.BoundLensName()} {
			owner, ok := decl[name]
			switch {
			case !ok:
				decl[name] = m.Name
			case owner == name && name == m.Name:
				return NewSchemaError(m.Name, "", "model redeclared", nil)
			default:
				return NewSchemaError(m.Name, "", fmt.Sprintf("identifier %q clashes with one declared for model %q", name, owner), nil)
			}
		}
	}
	return nil
}
