// Package array implements the bulk-operation engine (spec.md §4.3): the
// elementwise vector-vector/vector-scalar operation pair, Montgomery batch
// inversion, power series generation, matrix multiply and linear
// combination. The teacher has no equivalent package (its Polynomial type
// operates element-by-element in Go slices directly); the elementwise ops
// are grounded on the general vv/vs broadcast shape spec.md §4.3 describes,
// and the batch-inversion forward/backward structure is grounded directly
// on madars-zkdilithium-signer's BatchInvMontParallel, generalized from its
// branchless uint32/Montgomery-uint64 lanes to arbitrary-modulus
// field.Element lanes (the ILP pairing in that source is dropped here since
// it is a micro-optimization immaterial at this element width).
package array

import (
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
)

// AddVV computes elementwise a[i]+b[i]; a and b must have equal length.
func AddVV(f *field.Field, a, b []field.Element) ([]field.Element, error) {
	return binaryVV(f, a, b, f.Add)
}

// SubVV computes elementwise a[i]-b[i].
func SubVV(f *field.Field, a, b []field.Element) ([]field.Element, error) {
	return binaryVV(f, a, b, f.Sub)
}

// MulVV computes elementwise a[i]*b[i].
func MulVV(f *field.Field, a, b []field.Element) ([]field.Element, error) {
	return binaryVV(f, a, b, f.Mul)
}

// DivVV computes elementwise a[i]/b[i].
func DivVV(f *field.Field, a, b []field.Element) ([]field.Element, error) {
	return binaryVV(f, a, b, f.Div)
}

func binaryVV(f *field.Field, a, b []field.Element, op func(field.Element, field.Element) field.Element) ([]field.Element, error) {
	if len(a) != len(b) {
		return nil, fielderr.New(fielderr.DimensionMismatch, "vector lengths differ: %d != %d", len(a), len(b))
	}
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// AddVS broadcasts scalar s against every lane of a: out[i] = a[i] + s.
// This is the "vs form" of spec.md §4.3, sharing the same scalar-broadcast
// contract the scratch-slot-backed engine.acceleratedEngine also uses, but
// expressed here as a direct loop since array has no off-host buffer of its
// own.
func AddVS(f *field.Field, a []field.Element, s field.Element) []field.Element {
	return binaryVS(a, s, f.Add)
}

// SubVS broadcasts: out[i] = a[i] - s.
func SubVS(f *field.Field, a []field.Element, s field.Element) []field.Element {
	return binaryVS(a, s, f.Sub)
}

// MulVS broadcasts: out[i] = a[i] * s.
func MulVS(f *field.Field, a []field.Element, s field.Element) []field.Element {
	return binaryVS(a, s, f.Mul)
}

// DivVS broadcasts: out[i] = a[i] / s.
func DivVS(f *field.Field, a []field.Element, s field.Element) []field.Element {
	return binaryVS(a, s, f.Div)
}

func binaryVS(a []field.Element, s field.Element, op func(field.Element, field.Element) field.Element) []field.Element {
	out := make([]field.Element, len(a))
	for i := range a {
		out[i] = op(a[i], s)
	}
	return out
}

// InvVectorElements implements spec.md §4.3's Montgomery batch inversion:
// out[i] = inv(v[i]), with inv(0) := 0, using exactly one field inversion
// plus O(n) multiplies.
//
// Algorithm (forward prefix-product pass, single inverse, backward pass):
//  1. pre[0] = 1; pre[i] = pre[i-1] * (v[i-1] or 1 if zero).
//  2. k = inv(last running product, accumulated through index n-1).
//  3. Backward: for i = n-1..0, w[i] = (v[i]==0) ? 0 : pre[i]*k; then
//     k *= (v[i] or 1).
func InvVectorElements(f *field.Field, v []field.Element) []field.Element {
	n := len(v)
	out := make([]field.Element, n)
	if n == 0 {
		return out
	}

	pre := make([]field.Element, n)
	pre[0] = f.One()
	running := f.One()
	for i := 0; i < n; i++ {
		pre[i] = running
		lane := v[i]
		if lane.IsZero() {
			lane = f.One()
		}
		running = f.Mul(running, lane)
	}

	k := f.Inv(running)

	for i := n - 1; i >= 0; i-- {
		if v[i].IsZero() {
			out[i] = f.Zero()
		} else {
			out[i] = f.Mul(pre[i], k)
		}
		lane := v[i]
		if lane.IsZero() {
			lane = f.One()
		}
		k = f.Mul(k, lane)
	}

	return out
}

// GetPowerSeries computes out[0]=1, out[i]=out[i-1]*seed, sequentially, per
// spec.md §4.3.
func GetPowerSeries(f *field.Field, seed field.Element, length int) []field.Element {
	out := make([]field.Element, length)
	if length == 0 {
		return out
	}
	out[0] = f.One()
	for i := 1; i < length; i++ {
		out[i] = f.Mul(out[i-1], seed)
	}
	return out
}

// CombineVectors computes the dot product Σ a[i]*b[i] mod p, per spec.md
// §4.3. a and b must have equal length.
func CombineVectors(f *field.Field, a, b []field.Element) (field.Element, error) {
	if len(a) != len(b) {
		return field.Element{}, fielderr.New(fielderr.DimensionMismatch, "vector lengths differ: %d != %d", len(a), len(b))
	}
	acc := f.Zero()
	for i := range a {
		acc = f.Add(acc, f.Mul(a[i], b[i]))
	}
	return acc, nil
}

// MatMul computes A (n x m) * B (m x p) -> C (n x p), all row-major, per
// spec.md §4.3: the natural triple loop, DIMENSION_MISMATCH on inner
// dimension mismatch.
func MatMul(f *field.Field, a []field.Element, aRows, aCols int, b []field.Element, bRows, bCols int) ([]field.Element, error) {
	if aCols != bRows {
		return nil, fielderr.New(fielderr.DimensionMismatch, "inner dimensions differ: %d != %d", aCols, bRows)
	}
	if len(a) != aRows*aCols {
		return nil, fielderr.New(fielderr.DimensionMismatch, "matrix A length %d does not match %dx%d", len(a), aRows, aCols)
	}
	if len(b) != bRows*bCols {
		return nil, fielderr.New(fielderr.DimensionMismatch, "matrix B length %d does not match %dx%d", len(b), bRows, bCols)
	}

	c := make([]field.Element, aRows*bCols)
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc := f.Zero()
			for k := 0; k < aCols; k++ {
				acc = f.Add(acc, f.Mul(a[i*aCols+k], b[k*bCols+j]))
			}
			c[i*bCols+j] = acc
		}
	}
	return c, nil
}

// MatVecMul is the p=1 specialization of MatMul: A (n x m) * x (length m)
// -> y (length n).
func MatVecMul(f *field.Field, a []field.Element, aRows, aCols int, x []field.Element) ([]field.Element, error) {
	if len(x) != aCols {
		return nil, fielderr.New(fielderr.DimensionMismatch, "vector length %d does not match matrix cols %d", len(x), aCols)
	}
	out, err := MatMul(f, a, aRows, aCols, x, aCols, 1)
	if err != nil {
		return nil, err
	}
	return out, nil
}
