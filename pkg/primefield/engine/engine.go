package engine

import (
	"github.com/vybium/primefield/pkg/primefield/array"
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// FieldEngine is the capability-typed abstraction spec.md §9 calls for:
// "one operation contract with two variants", generalized from the
// teacher's per-element traits.FiniteField family to whole-array
// operations. Both concrete engines (core and accelerated) implement this
// contract identically in terms of output values — they differ only in how
// a vector-scalar broadcast routes the scalar operand internally.
type FieldEngine interface {
	AddVV(a, b []field.Element) ([]field.Element, error)
	SubVV(a, b []field.Element) ([]field.Element, error)
	MulVV(a, b []field.Element) ([]field.Element, error)
	DivVV(a, b []field.Element) ([]field.Element, error)

	AddVS(a []field.Element, s field.Element) []field.Element
	SubVS(a []field.Element, s field.Element) []field.Element
	MulVS(a []field.Element, s field.Element) []field.Element
	DivVS(a []field.Element, s field.Element) []field.Element

	InvVector(v []field.Element) []field.Element
	PowerSeries(seed field.Element, length int) []field.Element
	MatMul(a []field.Element, aRows, aCols int, b []field.Element, bRows, bCols int) ([]field.Element, error)
	CombineVectors(a, b []field.Element) (field.Element, error)
}

// coreEngine executes directly over Go slices: the straightforward
// in-process implementation.
type coreEngine struct {
	f *field.Field
}

func newCoreEngine(f *field.Field) *coreEngine {
	return &coreEngine{f: f}
}

func (e *coreEngine) AddVV(a, b []field.Element) ([]field.Element, error) { return array.AddVV(e.f, a, b) }
func (e *coreEngine) SubVV(a, b []field.Element) ([]field.Element, error) { return array.SubVV(e.f, a, b) }
func (e *coreEngine) MulVV(a, b []field.Element) ([]field.Element, error) { return array.MulVV(e.f, a, b) }
func (e *coreEngine) DivVV(a, b []field.Element) ([]field.Element, error) { return array.DivVV(e.f, a, b) }

func (e *coreEngine) AddVS(a []field.Element, s field.Element) []field.Element { return array.AddVS(e.f, a, s) }
func (e *coreEngine) SubVS(a []field.Element, s field.Element) []field.Element { return array.SubVS(e.f, a, s) }
func (e *coreEngine) MulVS(a []field.Element, s field.Element) []field.Element { return array.MulVS(e.f, a, s) }
func (e *coreEngine) DivVS(a []field.Element, s field.Element) []field.Element { return array.DivVS(e.f, a, s) }

func (e *coreEngine) InvVector(v []field.Element) []field.Element {
	return array.InvVectorElements(e.f, v)
}

func (e *coreEngine) PowerSeries(seed field.Element, length int) []field.Element {
	return array.GetPowerSeries(e.f, seed, length)
}

func (e *coreEngine) MatMul(a []field.Element, aRows, aCols int, b []field.Element, bRows, bCols int) ([]field.Element, error) {
	return array.MatMul(e.f, a, aRows, aCols, b, bRows, bCols)
}

func (e *coreEngine) CombineVectors(a, b []field.Element) (field.Element, error) {
	return array.CombineVectors(e.f, a, b)
}

// acceleratedEngine simulates the off-host "linear memory" target named by
// spec.md §4.5: every vector-scalar broadcast routes through a single
// shared scratch slot on a Buffer, serialized with a sync.Mutex, exactly as
// spec.md §9 describes ("the off-host engine writes a scalar operand into
// a dedicated scratch location ... serialize access to the scratch region
// per engine instance"). It calls the same array functions underneath as
// coreEngine, so outputs are bit-identical by construction — there is no
// separate "accelerated" arithmetic algorithm, only a different dispatch
// path for the scalar operand.
type acceleratedEngine struct {
	f      *field.Field
	scratch *Buffer
}

func newAcceleratedEngine(f *field.Field, scratch *Buffer) *acceleratedEngine {
	return &acceleratedEngine{f: f, scratch: scratch}
}

func (e *acceleratedEngine) AddVV(a, b []field.Element) ([]field.Element, error) { return array.AddVV(e.f, a, b) }
func (e *acceleratedEngine) SubVV(a, b []field.Element) ([]field.Element, error) { return array.SubVV(e.f, a, b) }
func (e *acceleratedEngine) MulVV(a, b []field.Element) ([]field.Element, error) { return array.MulVV(e.f, a, b) }
func (e *acceleratedEngine) DivVV(a, b []field.Element) ([]field.Element, error) { return array.DivVV(e.f, a, b) }

func (e *acceleratedEngine) AddVS(a []field.Element, s field.Element) []field.Element {
	return e.scratch.broadcastScalar(s, func(scalar field.Element) []field.Element {
		return array.AddVS(e.f, a, scalar)
	})
}

func (e *acceleratedEngine) SubVS(a []field.Element, s field.Element) []field.Element {
	return e.scratch.broadcastScalar(s, func(scalar field.Element) []field.Element {
		return array.SubVS(e.f, a, scalar)
	})
}

func (e *acceleratedEngine) MulVS(a []field.Element, s field.Element) []field.Element {
	return e.scratch.broadcastScalar(s, func(scalar field.Element) []field.Element {
		return array.MulVS(e.f, a, scalar)
	})
}

func (e *acceleratedEngine) DivVS(a []field.Element, s field.Element) []field.Element {
	return e.scratch.broadcastScalar(s, func(scalar field.Element) []field.Element {
		return array.DivVS(e.f, a, scalar)
	})
}

func (e *acceleratedEngine) InvVector(v []field.Element) []field.Element {
	return array.InvVectorElements(e.f, v)
}

func (e *acceleratedEngine) PowerSeries(seed field.Element, length int) []field.Element {
	return array.GetPowerSeries(e.f, seed, length)
}

func (e *acceleratedEngine) MatMul(a []field.Element, aRows, aCols int, b []field.Element, bRows, bCols int) ([]field.Element, error) {
	return array.MatMul(e.f, a, aRows, aCols, b, bRows, bCols)
}

func (e *acceleratedEngine) CombineVectors(a, b []field.Element) (field.Element, error) {
	return array.CombineVectors(e.f, a, b)
}

// Options configures Facade construction, per spec.md §6's
// create_prime_field(modulus, options) contract.
type Options struct {
	// UseAccelerated selects the simulated off-host engine instead of the
	// direct in-process one.
	UseAccelerated bool
	// SharedMemory is an opaque handle to externally managed linear memory,
	// named by spec.md §6 but ignored by NewField in this in-process
	// simulation; it exists for API parity.
	SharedMemory interface{}
}

// Facade is spec.md §4.5's public dispatch façade: it never performs
// arithmetic itself, only routing to the selected FieldEngine.
type Facade struct {
	Field  *field.Field
	engine FieldEngine
	scratch *Buffer
}

// NewField implements spec.md §6's create_prime_field: constructs a Field
// over modulus and a Facade dispatching to the engine Options selects.
func NewField(modulus wideint.Uint128, opts Options) *Facade {
	f := field.New(modulus)
	scratch := NewBuffer(f, 0)
	var e FieldEngine
	if opts.UseAccelerated {
		e = newAcceleratedEngine(f, scratch)
	} else {
		e = newCoreEngine(f)
	}
	return &Facade{Field: f, engine: e, scratch: scratch}
}
