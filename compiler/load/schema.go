// Package load reads the model description consumed by the generator.
//
// The description is an object with a "models" key holding an ordered
// list of models, each with a "name" and an ordered list of
// "properties" ({"name", "type"} pairs). It may be written as JSON or
// as the equivalent YAML document.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrMalformedInput is wrapped by every error caused by the shape of
// the input document.
var ErrMalformedInput = errors.New("load: malformed input")

// Schema represents the whole input document.
type Schema struct {
	Models []*Model `json:"models"`
}

// Model represents a named record type with ordered properties.
type Model struct {
	Name       string      `json:"name"`
	Properties []*Property `json:"properties"`
}

// Property represents one typed property of a model.
type Property struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// The raw* types mirror the document with pointers so missing keys
// can be told apart from empty values.
type (
	rawSchema struct {
		Models *[]*rawModel `json:"models" yaml:"models"`
	}
	rawModel struct {
		Name       *string         `json:"name" yaml:"name"`
		Properties *[]*rawProperty `json:"properties" yaml:"properties"`
	}
	rawProperty struct {
		Name *string `json:"name" yaml:"name"`
		Type *string `json:"type" yaml:"type"`
	}
)

// Read reads the whole document from r and parses it.
func Read(r io.Reader) (*Schema, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("load: read input: %w", err)
	}
	return Parse(buf)
}

// Parse decodes the given buffer. Documents starting with '{' are
// decoded as JSON, anything else as YAML.
func Parse(buf []byte) (*Schema, error) {
	raw := &rawSchema{}
	if trimmed := bytes.TrimSpace(buf); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(trimmed, raw); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrMalformedInput, err)
		}
	} else if err := yaml.Unmarshal(buf, raw); err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrMalformedInput, err)
	}
	return raw.schema()
}

func (r *rawSchema) schema() (*Schema, error) {
	if r.Models == nil {
		return nil, malformed("", "missing %q", "models")
	}
	s := &Schema{Models: make([]*Model, 0, len(*r.Models))}
	for i, rm := range *r.Models {
		path := fmt.Sprintf("models[%d]", i)
		m, err := rm.model(path)
		if err != nil {
			return nil, err
		}
		s.Models = append(s.Models, m)
	}
	return s, nil
}

func (r *rawModel) model(path string) (*Model, error) {
	switch {
	case r == nil:
		return nil, malformed(path, "model cannot be null")
	case r.Name == nil:
		return nil, malformed(path, "missing %q", "name")
	case r.Properties == nil:
		return nil, malformed(path, "missing %q", "properties")
	}
	m := &Model{Name: *r.Name, Properties: make([]*Property, 0, len(*r.Properties))}
	for i, rp := range *r.Properties {
		ppath := fmt.Sprintf("%s.properties[%d]", path, i)
		switch {
		case rp == nil:
			return nil, malformed(ppath, "property cannot be null")
		case rp.Name == nil:
			return nil, malformed(ppath, "missing %q", "name")
		case rp.Type == nil:
			return nil, malformed(ppath, "missing %q", "type")
		}
		m.Properties = append(m.Properties, &Property{Name: *rp.Name, Type: *rp.Type})
	}
	return m, nil
}

func malformed(path, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if path != "" {
		msg = path + ": " + msg
	}
	return fmt.Errorf("%w: %s", ErrMalformedInput, msg)
}
