package gen

// LensLibrary is the lens composition API written into every generated
// document. It does not depend on the input models.
const LensLibrary = `// Lens is a functional getter/setter pair focusing on a Part of a Whole.
// Set never mutates its argument; it returns a new Whole.
type Lens[Whole, Part any] struct {
	Get func(Whole) Part
	Set func(Part, Whole) Whole
}

// Compose returns a lens from Whole to Subpart that reads through outer
// and then inner, and writes the updated Part back through outer.
func Compose[Whole, Part, Subpart any](outer Lens[Whole, Part], inner Lens[Part, Subpart]) Lens[Whole, Subpart] {
	return Lens[Whole, Subpart]{
		Get: func(whole Whole) Subpart {
			return inner.Get(outer.Get(whole))
		},
		Set: func(newSubpart Subpart, whole Whole) Whole {
			return outer.Set(inner.Set(newSubpart, outer.Get(whole)), whole)
		},
	}
}

// IdentityLens returns the lens focusing on the whole value.
func IdentityLens[Whole any]() Lens[Whole, Whole] {
	return Lens[Whole, Whole]{
		Get: func(whole Whole) Whole {
			return whole
		},
		Set: func(newWhole Whole, _ Whole) Whole {
			return newWhole
		},
	}
}
`

// BoundLensLibrary is the bound lens storage and protocol API written
// into every generated document. It does not depend on the input models.
const BoundLensLibrary = `// BoundLensStorage binds a lens to the root instance it operates on.
type BoundLensStorage[Whole, Part any] struct {
	Instance Whole
	Lens     Lens[Whole, Part]
}

// Storage returns the bound instance and lens.
func (s BoundLensStorage[Whole, Part]) Storage() BoundLensStorage[Whole, Part] {
	return s
}

// Get returns the focused part of the bound instance.
func (s BoundLensStorage[Whole, Part]) Get() Part {
	return s.Lens.Get(s.Instance)
}

// Set returns a copy of the bound instance with the focused part replaced.
func (s BoundLensStorage[Whole, Part]) Set(newPart Part) Whole {
	return s.Lens.Set(newPart, s.Instance)
}

// BoundLensType is implemented by every bound lens.
type BoundLensType[Whole, Part any] interface {
	Storage() BoundLensStorage[Whole, Part]
	Get() Part
	Set(newPart Part) Whole
}

// NewBoundLensStorage binds lens to instance.
func NewBoundLensStorage[Whole, Part any](instance Whole, lens Lens[Whole, Part]) BoundLensStorage[Whole, Part] {
	return BoundLensStorage[Whole, Part]{Instance: instance, Lens: lens}
}

// DescendBoundLens narrows parent with sublens, keeping the root instance.
func DescendBoundLens[Whole, Parent, Part any](parent BoundLensType[Whole, Parent], sublens Lens[Parent, Part]) BoundLensStorage[Whole, Part] {
	storage := parent.Storage()
	return NewBoundLensStorage(storage.Instance, Compose(storage.Lens, sublens))
}

// BoundLens is a terminal bound lens focusing on a value that is not a model.
type BoundLens[Whole, Part any] struct {
	BoundLensStorage[Whole, Part]
}
`
