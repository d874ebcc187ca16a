package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/lenso/compiler/load"
)

var (
	person = &load.Model{
		Name: "Person",
		Properties: []*load.Property{
			{Name: "name", Type: "string"},
			{Name: "address", Type: "Address"},
		},
	}
	address = &load.Model{
		Name: "Address",
		Properties: []*load.Property{
			{Name: "street", Type: "string"},
		},
	}
	node = &load.Model{
		Name: "Node",
		Properties: []*load.Property{
			{Name: "value", Type: "string"},
			{Name: "next", Type: "Node"},
		},
	}
	empty = &load.Model{Name: "Empty", Properties: []*load.Property{}}
)

func TestModel(t *testing.T) {
	require := require.New(t)
	m, err := NewModel(MustNewConfig(), person)
	require.NoError(err)
	require.Equal("Person", m.Name)
	require.Equal("person", m.Receiver())
	require.Equal("PersonLenses", m.LensesName())
	require.Equal("BoundLensToPerson", m.BoundLensName())
	require.Len(m.Properties, 2)

	p := m.Properties[1]
	require.Equal("address", p.Name)
	require.Equal("Address", p.Type)
	require.Equal("Address", p.StructField())
	require.Equal("newAddress", p.NewValueName())
	require.Equal("person", p.Receiver())

	found, ok := m.Property("Name")
	require.True(ok)
	require.Equal(m.Properties[0], found)
	_, ok = m.Property("name")
	require.False(ok)
}

func TestModelReceiver(t *testing.T) {
	tests := []struct {
		name     string
		prop     string
		model    string
		property string
	}{
		{name: "Person", prop: "name", model: "person", property: "person"},
		{name: "String", prop: "value", model: "_string", property: "_string"},
		{name: "Type", prop: "value", model: "_type", property: "_type"},
		{name: "NewName", prop: "name", model: "newName", property: "_newName"},
		{name: "X", prop: "x", model: "x", property: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewModel(MustNewConfig(), &load.Model{
				Name:       tt.name,
				Properties: []*load.Property{{Name: tt.prop, Type: "string"}},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.model, m.Receiver())
			assert.Equal(t, tt.property, m.Properties[0].Receiver())
		})
	}
}

func TestValidModelName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"Person", true},
		{"HTTPRequest", true},
		{"Model2", true},
		{"Ünicode", true},
		{"", false},
		{"person", false},
		{"_Person", false},
		{"Per son", false},
		{"1Person", false},
		{"Person.Name", false},
		{"Lens", false},
		{"BoundLens", false},
		{"BoundLensStorage", false},
		{"BoundLensType", false},
		{"Compose", false},
		{"IdentityLens", false},
		{"NewBoundLensStorage", false},
		{"DescendBoundLens", false},
		{"Whole", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidModelName(tt.name)
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestCheckProperty(t *testing.T) {
	tests := []struct {
		name  string
		props []*load.Property
		msg   string
	}{
		{
			name:  "empty name",
			props: []*load.Property{{Name: "", Type: "string"}},
			msg:   "property name cannot be empty",
		},
		{
			name:  "empty type",
			props: []*load.Property{{Name: "name", Type: ""}},
			msg:   "property type cannot be empty",
		},
		{
			name:  "invalid identifier",
			props: []*load.Property{{Name: "first name", Type: "string"}},
			msg:   "does not map to a valid Go identifier",
		},
		{
			name:  "leading digit",
			props: []*load.Property{{Name: "2fa", Type: "bool"}},
			msg:   "does not map to a valid Go identifier",
		},
		{
			name:  "generated member",
			props: []*load.Property{{Name: "get", Type: "string"}},
			msg:   "conflicts with generated member",
		},
		{
			name:  "through lens member",
			props: []*load.Property{{Name: "through_lens", Type: "string"}},
			msg:   "conflicts with generated member",
		},
		{
			name:  "storage member",
			props: []*load.Property{{Name: "storage", Type: "string"}},
			msg:   "conflicts with generated member",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModel(MustNewConfig(), &load.Model{Name: "T", Properties: tt.props})
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	t.Run("redeclared", func(t *testing.T) {
		_, err := NewModel(MustNewConfig(), &load.Model{
			Name: "T",
			Properties: []*load.Property{
				{Name: "user_id", Type: "int"},
				{Name: "userID", Type: "int"},
			},
		})
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
		assert.EqualError(t, err, `lenso: schema error on model T property userID: property "userID" redeclared (as UserID)`)
	})
}

func TestTypeKind(t *testing.T) {
	assert.Equal(t, "opaque", KindOpaque.String())
	assert.Equal(t, "model", KindModel.String())
	assert.Equal(t, "TypeKind(7)", TypeKind(7).String())
}

func TestModelSet(t *testing.T) {
	g, err := NewGraph(MustNewConfig(), person, address)
	require.NoError(t, err)

	set := g.Set
	assert.True(t, set.Has("Person"))
	assert.True(t, set.Has("Address"))
	assert.False(t, set.Has("address"))

	ref := set.Classify(g.Models[0].Properties[0])
	assert.Equal(t, TypeRef{Kind: KindOpaque}, ref)

	ref = set.Classify(g.Models[0].Properties[1])
	assert.Equal(t, KindModel, ref.Kind)
	assert.Same(t, g.Models[1], ref.Model)

	for _, typ := range []string{"[]Address", "*Address", "map[string]Address", "address", "pkg.Address"} {
		t.Run(typ, func(t *testing.T) {
			ref := set.Classify(&Property{Name: "x", Type: typ})
			assert.Equal(t, KindOpaque, ref.Kind)
			assert.Nil(t, ref.Model)
		})
	}
}

func TestNewModelSetLastWins(t *testing.T) {
	first := &Model{Name: "A"}
	second := &Model{Name: "A"}
	set := NewModelSet(first, second)
	assert.Len(t, set, 1)
	assert.Same(t, second, set["A"])
}

func TestNewGraph(t *testing.T) {
	t.Run("keeps input order", func(t *testing.T) {
		g, err := NewGraph(MustNewConfig(), node, address, person)
		require.NoError(t, err)
		require.Len(t, g.Models, 3)
		assert.Equal(t, "Node", g.Models[0].Name)
		assert.Equal(t, "Address", g.Models[1].Name)
		assert.Equal(t, "Person", g.Models[2].Name)
		assert.Len(t, g.Set, 3)
	})

	t.Run("empty batch", func(t *testing.T) {
		g, err := NewGraph(MustNewConfig())
		require.NoError(t, err)
		assert.Empty(t, g.Models)
		assert.Empty(t, g.Set)
	})

	t.Run("nil config", func(t *testing.T) {
		_, err := NewGraph(nil, person)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})

	t.Run("nil model", func(t *testing.T) {
		_, err := NewGraph(MustNewConfig(), person, nil)
		require.Error(t, err)
		assert.True(t, IsSchemaError(err))
		assert.Contains(t, err.Error(), "models[1] cannot be nil")
	})

	t.Run("invalid model", func(t *testing.T) {
		_, err := NewGraph(MustNewConfig(), person, &load.Model{Name: "Lens", Properties: []*load.Property{}})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestNewGraphCollisions(t *testing.T) {
	tests := []struct {
		name   string
		models []*load.Model
		msg    string
	}{
		{
			name:   "duplicate model",
			models: []*load.Model{person, address, {Name: "Person", Properties: []*load.Property{}}},
			msg:    "lenso: schema error on model Person: model redeclared",
		},
		{
			name:   "model named like a lens collection",
			models: []*load.Model{person, {Name: "PersonLenses", Properties: []*load.Property{}}},
			msg:    `lenso: schema error on model PersonLenses: identifier "PersonLenses" clashes with one declared for model "Person"`,
		},
		{
			name:   "lens collection named like a model",
			models: []*load.Model{{Name: "PersonLenses", Properties: []*load.Property{}}, person},
			msg:    `lenso: schema error on model Person: identifier "PersonLenses" clashes with one declared for model "PersonLenses"`,
		},
		{
			name:   "model named like a bound lens",
			models: []*load.Model{address, {Name: "BoundLensToAddress", Properties: []*load.Property{}}},
			msg:    `lenso: schema error on model BoundLensToAddress: identifier "BoundLensToAddress" clashes with one declared for model "Address"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraph(MustNewConfig(), tt.models...)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, ErrInvalidSchema))
			assert.EqualError(t, err, tt.msg)
		})
	}
}
