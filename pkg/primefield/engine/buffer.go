// Package engine implements spec.md §4.5's dispatch façade: the
// FieldEngine capability interface with two variants (an in-process "core"
// engine and a simulated off-host "accelerated" engine sharing a
// mutex-guarded scalar broadcast scratch slot), plus the VectorHandle/
// MatrixHandle types spec.md §6 describes. It is grounded on the teacher's
// traits.FiniteField/traits.Inverse/traits.PrimitiveRootOfUnity capability
// interface family (pkg/vybium-crypto/traits/traits.go), generalized from a
// per-element trait to a whole-array operation contract, per spec.md §9's
// explicit guidance to avoid virtual dispatch on the hot path.
package engine

import (
	"sync"

	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// Buffer is the flat backing store for vector/matrix handles: a contiguous
// slice of field.Element values (encoded little-endian, element-size bytes
// each, only when a handle's ToBuffer/RowsToBuffers is called), plus the
// reserved scalar-broadcast scratch region spec.md §9 describes as
// "process-wide mutable state for the duration of a call" that the façade
// must serialize access to.
type Buffer struct {
	f    *field.Field
	data []field.Element

	scratchMu sync.Mutex
	scratch   field.Element
}

// NewBuffer allocates a fresh buffer of length n, all elements zero.
func NewBuffer(f *field.Field, n int) *Buffer {
	data := make([]field.Element, n)
	for i := range data {
		data[i] = f.Zero()
	}
	return &Buffer{f: f, data: data}
}

// NewBufferFromValues allocates a buffer copying the given values.
func NewBufferFromValues(f *field.Field, values []field.Element) *Buffer {
	data := make([]field.Element, len(values))
	copy(data, values)
	return &Buffer{f: f, data: data}
}

// Len returns the number of elements the buffer holds.
func (b *Buffer) Len() int {
	return len(b.data)
}

// GetValue returns the element at idx.
func (b *Buffer) GetValue(idx int) (field.Element, error) {
	if idx < 0 || idx >= len(b.data) {
		return field.Element{}, fielderr.New(fielderr.OutOfRange, "index %d out of range [0,%d)", idx, len(b.data))
	}
	return b.data[idx], nil
}

// SetValue writes raw to idx after checking idx. raw is a Uint128 and so
// always < 2^128; the >= 2^128 rejection for wider inputs is done by
// setValueOverflowCheck128 before a caller reaches here. Note this does not require
// raw < p: writers of raw values are responsible for reducing first, per
// spec.md §3's vector mutation invariant; raw is reduced mod p here only to
// give the backing element a canonical internal representation, not as a
// silent acceptance of out-of-field values.
func (b *Buffer) SetValue(idx int, raw wideint.Uint128) error {
	if idx < 0 || idx >= len(b.data) {
		return fielderr.New(fielderr.OutOfRange, "index %d out of range [0,%d)", idx, len(b.data))
	}
	b.data[idx] = b.f.NewElement(raw)
	return nil
}

// setValueOverflowCheck128 reports whether raw represents a value that
// does not fit in 128 bits. Since wideint.Uint128 is structurally two
// uint64 limbs, it can never itself hold a value >= 2^128; this hook exists
// for callers that parse a wider raw representation (e.g. a byte slice
// longer than 16 bytes, or a *big.Int) before handing it to SetValue.
func setValueOverflowCheck128(bitLen int) error {
	if bitLen > 128 {
		return fielderr.New(fielderr.OutOfRange, "value requires %d bits, exceeds 128", bitLen)
	}
	return nil
}

// ToValues returns a copy of the buffer's full backing slice.
func (b *Buffer) ToValues() []field.Element {
	out := make([]field.Element, len(b.data))
	copy(out, b.data)
	return out
}

// Slice returns a copy of [start, start+count).
func (b *Buffer) Slice(start, count int) ([]field.Element, error) {
	if start < 0 || count < 0 || start+count > len(b.data) {
		return nil, fielderr.New(fielderr.OutOfRange, "slice [%d,%d) out of range [0,%d)", start, start+count, len(b.data))
	}
	out := make([]field.Element, count)
	copy(out, b.data[start:start+count])
	return out, nil
}

// broadcastScalar serializes a vector-scalar broadcast through the shared
// scratch slot, simulating the off-host engine's dedicated scratch
// location for scalar operands (spec.md §9). The core engine does not need
// this indirection (it passes scalars directly), but the accelerated
// engine routes every VS call through here to exercise the same contract a
// true off-host linear-memory target would.
func (b *Buffer) broadcastScalar(s field.Element, fn func(scalar field.Element) []field.Element) []field.Element {
	b.scratchMu.Lock()
	b.scratch = s
	scalar := b.scratch
	result := fn(scalar)
	b.scratchMu.Unlock()
	return result
}

// Release zeroes the backing store and truncates it to length zero,
// simulating reclaiming an off-host linear-memory allocation (spec.md §9's
// Open Question on destroyVector/destroyMatrix). For the core engine this
// is a courtesy, not a necessity: Go's GC reclaims the slice regardless
// once the handle is no longer reachable.
func (b *Buffer) Release() {
	b.scratchMu.Lock()
	defer b.scratchMu.Unlock()
	for i := range b.data {
		b.data[i] = b.f.Zero()
	}
	b.data = b.data[:0]
}
