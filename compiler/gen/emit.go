package gen

import (
	"github.com/dave/jennifer/jen"
)

// Identifiers declared by LensLibrary and BoundLensLibrary.
const (
	lensIdent        = "Lens"
	identityIdent    = "IdentityLens"
	storageIdent     = "BoundLensStorage"
	newStorageIdent  = "NewBoundLensStorage"
	descendIdent     = "DescendBoundLens"
	boundLensIdent   = "BoundLens"
	wholeIdent       = "Whole"
	throughLensIdent = "ThroughLens"
	// boundRecv is the receiver name of the bound lens navigation methods.
	boundRecv = "b"
)

// literal renders a multi-line composite literal body, keeping the
// order of its elements. jen.Dict sorts its keys, which would break the
// property order of the generated code.
var literal = jen.Options{
	Open:      "{",
	Close:     "}",
	Separator: ",",
	Multi:     true,
}

// typeExpr returns the Go type expression of the property. Types are
// opaque strings and are rendered verbatim.
func typeExpr(p *Property) *jen.Statement {
	return jen.Id(p.Type)
}

// whole returns the Whole type parameter.
func whole() *jen.Statement {
	return jen.Id(wholeIdent)
}

// genStruct generates the value struct of the model.
//
//	type Person struct {
//		Name    string
//		Address Address
//	}
func genStruct(m *Model) *jen.Statement {
	return jen.Type().Id(m.Name).StructFunc(func(group *jen.Group) {
		for _, p := range m.Properties {
			group.Id(p.StructField()).Add(typeExpr(p))
		}
	})
}

// genLenses generates the lens collection of the model: a variable
// holding one Lens[Model, Type] per property.
func genLenses(m *Model) *jen.Statement {
	fields := make([]jen.Code, 0, len(m.Properties))
	values := make([]jen.Code, 0, len(m.Properties))
	for _, p := range m.Properties {
		fields = append(fields, jen.Id(p.StructField()).Add(lensType(m, p)))
		values = append(values, jen.Id(p.StructField()).Op(":").Add(genPropertyLens(m, p)))
	}
	return jen.Var().Id(m.LensesName()).Op("=").Struct(fields...).Custom(literal, values...)
}

func lensType(m *Model, p *Property) *jen.Statement {
	return jen.Id(lensIdent).Types(jen.Id(m.Name), typeExpr(p))
}

// genPropertyLens generates the lens value of a single property. The
// setter returns a new value with the property replaced and every other
// property copied, in declaration order.
func genPropertyLens(m *Model, p *Property) *jen.Statement {
	recv, newValue := p.Receiver(), p.NewValueName()
	copied := make([]jen.Code, 0, len(m.Properties))
	for _, sibling := range m.Properties {
		value := jen.Id(recv).Dot(sibling.StructField())
		if sibling == p {
			value = jen.Id(newValue)
		}
		copied = append(copied, jen.Id(sibling.StructField()).Op(":").Add(value))
	}
	return lensType(m, p).Custom(literal,
		jen.Id("Get").Op(":").Func().
			Params(jen.Id(recv).Id(m.Name)).
			Add(typeExpr(p)).
			Block(jen.Return(jen.Id(recv).Dot(p.StructField()))),
		jen.Id("Set").Op(":").Func().
			Params(jen.Id(newValue).Add(typeExpr(p)), jen.Id(recv).Id(m.Name)).
			Id(m.Name).
			Block(jen.Return(jen.Id(m.Name).Custom(literal, copied...))),
	)
}

// genBoundLens generates the bound lens type of the model and one
// navigation method per property. Properties typed with a model of the
// set return the bound lens of that model, others a terminal BoundLens.
//
//	type BoundLensToPerson[Whole any] struct {
//		BoundLensStorage[Whole, Person]
//	}
func genBoundLens(m *Model, set ModelSet) *jen.Statement {
	stmt := jen.Type().Id(m.BoundLensName()).Types(whole().Any()).Struct(
		jen.Id(storageIdent).Types(whole(), jen.Id(m.Name)),
	)
	for _, p := range m.Properties {
		stmt.Line().Line().Add(genBoundLensMethod(m, p, set.Classify(p)))
	}
	return stmt
}

func genBoundLensMethod(m *Model, p *Property, ref TypeRef) *jen.Statement {
	result := func() *jen.Statement {
		if ref.Kind == KindModel {
			return jen.Id(ref.Model.BoundLensName()).Types(whole())
		}
		return jen.Id(boundLensIdent).Types(whole(), typeExpr(p))
	}
	descend := jen.Id(descendIdent).
		Types(whole(), jen.Id(m.Name), typeExpr(p)).
		Call(jen.Id(boundRecv), jen.Id(m.LensesName()).Dot(p.StructField()))
	return jen.Func().
		Params(jen.Id(boundRecv).Id(m.BoundLensName()).Types(whole())).
		Id(p.StructField()).
		Params().
		Add(result()).
		Block(jen.Return(result().Values(descend)))
}

// genRootAccessor generates the ThroughLens method of the model, the
// entry point from a plain value to its bound lens.
//
//	func (person Person) ThroughLens() BoundLensToPerson[Person] {
//		return BoundLensToPerson[Person]{NewBoundLensStorage(person, IdentityLens[Person]())}
//	}
func genRootAccessor(m *Model) *jen.Statement {
	recv := m.Receiver()
	result := func() *jen.Statement {
		return jen.Id(m.BoundLensName()).Types(jen.Id(m.Name))
	}
	return jen.Func().
		Params(jen.Id(recv).Id(m.Name)).
		Id(throughLensIdent).
		Params().
		Add(result()).
		Block(jen.Return(result().Values(
			jen.Id(newStorageIdent).Call(jen.Id(recv), jen.Id(identityIdent).Types(jen.Id(m.Name)).Call()),
		)))
}
