package engine

import (
	"math/big"

	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// VectorHandle is spec.md §3's vector: an ordered sequence of field
// elements stored contiguously in a flat buffer, plus a base offset and
// length. Operation results are always fresh handles; operands are never
// aliased with results, per spec.md §3's invariant.
type VectorHandle struct {
	facade *Facade
	buffer *Buffer
	offset int
	length int
}

// NewVector allocates a fresh VectorHandle over a new buffer holding
// values.
func (fc *Facade) NewVector(values []field.Element) *VectorHandle {
	buf := NewBufferFromValues(fc.Field, values)
	return &VectorHandle{facade: fc, buffer: buf, offset: 0, length: len(values)}
}

// NewVectorOfLength allocates a fresh all-zero VectorHandle of length n.
func (fc *Facade) NewVectorOfLength(n int) *VectorHandle {
	buf := NewBuffer(fc.Field, n)
	return &VectorHandle{facade: fc, buffer: buf, offset: 0, length: n}
}

// Length returns the vector's element count.
func (v *VectorHandle) Length() int {
	return v.length
}

// GetValue returns the element at idx, per spec.md §6's get_value(idx).
func (v *VectorHandle) GetValue(idx int) (field.Element, error) {
	if idx < 0 || idx >= v.length {
		return field.Element{}, fielderr.New(fielderr.OutOfRange, "index %d out of range [0,%d)", idx, v.length)
	}
	return v.buffer.GetValue(v.offset + idx)
}

// SetValue writes raw to idx, rejecting raw >= 2^128 with OUT_OF_RANGE per
// spec.md §6 and §7. Since wideint.Uint128 cannot itself represent a value
// that large, this path always succeeds for a direct Uint128 argument; the
// OUT_OF_RANGE check has teeth at the SetValueFromBigInt boundary below,
// which accepts a less-constrained representation.
func (v *VectorHandle) SetValue(idx int, raw wideint.Uint128) error {
	if idx < 0 || idx >= v.length {
		return fielderr.New(fielderr.OutOfRange, "index %d out of range [0,%d)", idx, v.length)
	}
	return v.buffer.SetValue(v.offset+idx, raw)
}

// SetValueFromBigInt writes v after validating it fits in 128 bits,
// rejecting values >= 2^128 with OUT_OF_RANGE. This is the API boundary
// spec.md §6's setter contract is actually validating against: a *big.Int
// is not structurally bounded to 128 bits the way wideint.Uint128 is.
func (v *VectorHandle) SetValueFromBigInt(idx int, raw *big.Int) error {
	if raw.Sign() < 0 {
		return fielderr.New(fielderr.OutOfRange, "value must be non-negative")
	}
	if err := setValueOverflowCheck128(raw.BitLen()); err != nil {
		return err
	}
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(raw, mask64).Uint64()
	hi := new(big.Int).Rsh(raw, 64).Uint64()
	return v.SetValue(idx, wideint.Uint128{Lo: lo, Hi: hi})
}

// ToValues returns a copy of this handle's elements (spec.md §6's
// to_values()).
func (v *VectorHandle) ToValues() []field.Element {
	out, _ := v.buffer.Slice(v.offset, v.length)
	return out
}

// ToBuffer returns the little-endian wire encoding of [start, start+count)
// (spec.md §6's to_buffer([start,count])).
func (v *VectorHandle) ToBuffer(start, count int) ([]byte, error) {
	if start < 0 || count < 0 || start+count > v.length {
		return nil, fielderr.New(fielderr.OutOfRange, "range [%d,%d) out of vector bounds [0,%d)", start, start+count, v.length)
	}
	vals, err := v.buffer.Slice(v.offset+start, count)
	if err != nil {
		return nil, err
	}
	size := v.facade.Field.ElementSize()
	out := make([]byte, 0, count*size)
	for _, e := range vals {
		b := e.Bytes16()
		out = append(out, b[:size]...)
	}
	return out, nil
}

// Close releases this handle's backing buffer. For the core engine this is
// a courtesy (Go's GC reclaims the slice once unreachable); it matters for
// parity with an off-host buffer, whose scratch/backing region must be
// explicitly reclaimed (spec.md §9's destroyVector Open Question).
func (v *VectorHandle) Close() {
	v.buffer.Release()
	v.length = 0
}

func (fc *Facade) result(values []field.Element) *VectorHandle {
	return fc.NewVector(values)
}

// Add returns a+b elementwise (vv form).
func (v *VectorHandle) Add(other *VectorHandle) (*VectorHandle, error) {
	out, err := v.facade.engine.AddVV(v.ToValues(), other.ToValues())
	if err != nil {
		return nil, err
	}
	return v.facade.result(out), nil
}

// Sub returns a-b elementwise (vv form).
func (v *VectorHandle) Sub(other *VectorHandle) (*VectorHandle, error) {
	out, err := v.facade.engine.SubVV(v.ToValues(), other.ToValues())
	if err != nil {
		return nil, err
	}
	return v.facade.result(out), nil
}

// Mul returns a*b elementwise (vv form).
func (v *VectorHandle) Mul(other *VectorHandle) (*VectorHandle, error) {
	out, err := v.facade.engine.MulVV(v.ToValues(), other.ToValues())
	if err != nil {
		return nil, err
	}
	return v.facade.result(out), nil
}

// Div returns a/b elementwise (vv form).
func (v *VectorHandle) Div(other *VectorHandle) (*VectorHandle, error) {
	out, err := v.facade.engine.DivVV(v.ToValues(), other.ToValues())
	if err != nil {
		return nil, err
	}
	return v.facade.result(out), nil
}

// AddScalar broadcasts s against every lane (vs form).
func (v *VectorHandle) AddScalar(s field.Element) *VectorHandle {
	return v.facade.result(v.facade.engine.AddVS(v.ToValues(), s))
}

// SubScalar broadcasts s against every lane (vs form).
func (v *VectorHandle) SubScalar(s field.Element) *VectorHandle {
	return v.facade.result(v.facade.engine.SubVS(v.ToValues(), s))
}

// MulScalar broadcasts s against every lane (vs form).
func (v *VectorHandle) MulScalar(s field.Element) *VectorHandle {
	return v.facade.result(v.facade.engine.MulVS(v.ToValues(), s))
}

// DivScalar broadcasts s against every lane (vs form).
func (v *VectorHandle) DivScalar(s field.Element) *VectorHandle {
	return v.facade.result(v.facade.engine.DivVS(v.ToValues(), s))
}

// Inverse returns the Montgomery batch inverse of every lane.
func (v *VectorHandle) Inverse() *VectorHandle {
	return v.facade.result(v.facade.engine.InvVector(v.ToValues()))
}

// Combine computes the dot product of this vector and other.
func (v *VectorHandle) Combine(other *VectorHandle) (field.Element, error) {
	return v.facade.engine.CombineVectors(v.ToValues(), other.ToValues())
}

// PowerSeries allocates a new vector [1, seed, seed^2, ..., seed^(n-1)].
func (fc *Facade) PowerSeries(seed field.Element, n int) *VectorHandle {
	return fc.NewVector(fc.engine.PowerSeries(seed, n))
}
