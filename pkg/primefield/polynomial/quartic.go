package polynomial

import (
	"github.com/vybium/primefield/pkg/primefield/array"
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
)

// InterpolateQuarticBatch implements spec.md §4.4's specialized degree-3
// batch interpolator: each row of xSets/ySets holds exactly 4 x-coordinates
// and 4 y-coordinates. For each row, four cubic polynomials
// eq_k(x) = Π_{j!=k}(x - x_j) are built in expanded coefficient form from
// the elementary symmetric functions of the other three x-coordinates;
// eq_k(x_k) gives the row's four denominators. Every row's denominators are
// collected into one flat vector and inverted with a single call into
// array.InvVectorElements — the batching is the entire point, amortizing
// one inversion across all rows — then each row's result is accumulated as
// Σ_k y_k * inv_k * eq_k in coefficient form.
func InterpolateQuarticBatch(f *field.Field, xSets, ySets [][]field.Element) ([]*Polynomial, error) {
	if len(xSets) != len(ySets) {
		return nil, fielderr.New(fielderr.DimensionMismatch, "xSets and ySets row counts differ: %d != %d", len(xSets), len(ySets))
	}
	for i := range xSets {
		if len(xSets[i]) != 4 || len(ySets[i]) != 4 {
			return nil, fielderr.New(fielderr.DimensionMismatch, "row %d must have exactly 4 points, got xs=%d ys=%d", i, len(xSets[i]), len(ySets[i]))
		}
	}

	batch := len(xSets)
	// eqCoeffs[row][k] holds eq_k's 4 increasing-degree coefficients.
	eqCoeffs := make([][4][4]field.Element, batch)
	denominators := make([]field.Element, 0, 4*batch)

	for row := 0; row < batch; row++ {
		xs := xSets[row]
		for k := 0; k < 4; k++ {
			others := otherThree(xs, k)
			a, b, c := others[0], others[1], others[2]

			ab := f.Mul(a, b)
			ac := f.Mul(a, c)
			bc := f.Mul(b, c)
			abc := f.Mul(ab, c)

			// eq_k(x) = x^3 - (a+b+c)x^2 + (ab+ac+bc)x - abc, in
			// increasing-degree order.
			coeffs := [4]field.Element{
				f.Neg(abc),
				f.Add(f.Add(ab, ac), bc),
				f.Neg(f.Add(f.Add(a, b), c)),
				f.One(),
			}
			eqCoeffs[row][k] = coeffs

			// den_k = eq_k(x_k) = (x_k-a)(x_k-b)(x_k-c), computed
			// directly rather than via Horner on coeffs above (same
			// value, fewer operations).
			xk := xs[k]
			den := f.Mul(f.Mul(f.Sub(xk, a), f.Sub(xk, b)), f.Sub(xk, c))
			denominators = append(denominators, den)
		}
	}

	invDen := array.InvVectorElements(f, denominators)

	results := make([]*Polynomial, batch)
	for row := 0; row < batch; row++ {
		acc := [4]field.Element{f.Zero(), f.Zero(), f.Zero(), f.Zero()}
		for k := 0; k < 4; k++ {
			inv := invDen[row*4+k]
			weight := f.Mul(ySets[row][k], inv)
			coeffs := eqCoeffs[row][k]
			for d := 0; d < 4; d++ {
				acc[d] = f.Add(acc[d], f.Mul(weight, coeffs[d]))
			}
		}
		results[row] = New(f, acc[:])
	}

	return results, nil
}

// otherThree returns the three elements of xs other than index k.
func otherThree(xs []field.Element, k int) [3]field.Element {
	var out [3]field.Element
	idx := 0
	for j := 0; j < 4; j++ {
		if j == k {
			continue
		}
		out[idx] = xs[j]
		idx++
	}
	return out
}
