// Package gen provides code generation of functional lenses for data models.
//
// For every model of a description it generates a plain value struct, a
// collection of lenses (one getter/setter pair per property), a bound lens
// type navigating from a root value into nested models, and a ThroughLens
// accessor rooting a bound lens at a value.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Model description (load.Schema)
//	        ↓
//	   Graph (validated models + ModelSet)
//	        ↓
//	   Emitters (struct, lenses, bound lens, root accessor)
//	        ↓
//	   Generator (single Go source document)
//
// # Key Types
//
//   - Graph: Holds all Model definitions with validation
//   - Model: A named record type with ordered properties
//   - Property: A property name and its Go type expression
//   - ModelSet: Classifies property types as model references or opaque types
//   - Config: Global configuration for code generation
//
// # Generated Document
//
// The document is written in a fixed order, each part under its own
// section comment:
//
//	// Models
//	// Lenses API
//	// Bound lenses API
//	// Generated lenses
//	// Generated bound lenses
//	// Generated root accessors
//
// The two API sections hold LensLibrary and BoundLensLibrary verbatim.
//
// Given the models Person{name string, address Address} and
// Address{street string}, the generated code is used as follows:
//
//	p := Person{Name: "Ann", Address: Address{Street: "Main St"}}
//	street := p.ThroughLens().Address().Street().Get()
//	moved := p.ThroughLens().Address().Street().Set("High St")
//
// # Error Handling
//
// The package uses structured error types for better error handling:
//
//   - SchemaError: Duplicate or clashing declarations
//   - ValidationError: Invalid model or property names and types
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//
// Example error handling:
//
//	g, err := gen.NewGraph(cfg, schema.Models...)
//	if err != nil {
//		if errors.Is(err, gen.ErrInvalidSchema) {
//			// Handle duplicate declarations
//		}
//		var verr *gen.ValidationError
//		if errors.As(err, &verr) {
//			log.Printf("model %s property %s: %s", verr.Model, verr.Property, verr.Message)
//		}
//		return err
//	}
package gen
