package polynomial

import (
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// EvalPolyAtRoots implements spec.md §4.4's radix-2 FFT evaluator: a
// recursive decimation-in-time transform driven by a (values, roots,
// depth, offset) recursion rather than a Cooley-Tukey iterative butterfly
// network. The domain (roots) length must be a power of two and at least
// the polynomial's coefficient count; the polynomial is zero-padded to
// domain length if shorter.
//
// This literal recursive form is chosen over adapting the teacher's
// iterative ntt.nttUnchecked (cached twiddle tables + bit-reversal
// permutation) because the external contract here is an explicit
// roots []field.Element domain array consumed directly, with no separate
// twiddle-cache derivation step — the lower-risk shape for code that
// cannot be executed before delivery.
func EvalPolyAtRoots(f *field.Field, p *Polynomial, roots []field.Element) ([]field.Element, error) {
	n := len(roots)
	if !isPowerOfTwo(n) {
		return nil, fielderr.New(fielderr.InvalidDomain, "domain length %d is not a power of two", n)
	}
	coeffs := p.Coefficients()
	if len(coeffs) > n {
		return nil, fielderr.New(fielderr.InvalidDomain, "polynomial length %d exceeds domain length %d", len(coeffs), n)
	}

	values := make([]field.Element, n)
	copy(values, coeffs)
	for i := len(coeffs); i < n; i++ {
		values[i] = f.Zero()
	}

	if n == 1 {
		return values, nil
	}

	return fftRecurse(f, values, roots, 0, 0), nil
}

// fftRecurse evaluates the subset of values at stride 1<<depth starting at
// offset, against the domain roots, per spec.md §4.4's exact recursion.
func fftRecurse(f *field.Field, values, roots []field.Element, depth, offset int) []field.Element {
	n := len(values)
	step := 1 << depth
	resultLength := n / step

	if resultLength == 1 {
		return []field.Element{values[offset]}
	}
	if resultLength == 2 {
		a, b := values[offset], values[offset+step]
		return []field.Element{f.Add(a, b), f.Sub(a, b)}
	}

	if resultLength == 4 {
		out := make([]field.Element, 4)
		for i := 0; i < 4; i++ {
			acc := f.Zero()
			for k := 0; k < 4; k++ {
				twiddleIdx := ((i * k) % 4) * step
				acc = f.Add(acc, f.Mul(values[offset+k*step], roots[twiddleIdx]))
			}
			out[i] = acc
		}
		return out
	}

	even := fftRecurse(f, values, roots, depth+1, offset)
	odd := fftRecurse(f, values, roots, depth+1, offset+step)

	half := resultLength / 2
	out := make([]field.Element, resultLength)
	for i := 0; i < half; i++ {
		twiddle := f.Mul(odd[i], roots[i*step])
		out[i] = f.Add(even[i], twiddle)
		out[i+half] = f.Sub(even[i], twiddle)
	}
	return out
}

// InterpolateRoots implements spec.md §4.4's inverse FFT: build the
// reversed-roots cycle (reversed_roots[0]=1; reversed_roots[j]=roots[n-j]
// for j=1..n-1), run the same evaluator on ys against it, and scale every
// output by inv(n) = n^(p-2) mod p (Fermat's little theorem, since p is
// prime).
func InterpolateRoots(f *field.Field, roots, ys []field.Element) ([]field.Element, error) {
	n := len(roots)
	if n != len(ys) {
		return nil, fielderr.New(fielderr.DimensionMismatch, "roots and values lengths differ: %d != %d", n, len(ys))
	}
	if !isPowerOfTwo(n) {
		return nil, fielderr.New(fielderr.InvalidDomain, "domain length %d is not a power of two", n)
	}

	reversed := make([]field.Element, n)
	reversed[0] = f.One()
	for j := 1; j < n; j++ {
		reversed[j] = roots[n-j]
	}

	asPoly := New(f, ys)
	values, err := EvalPolyAtRoots(f, asPoly, reversed)
	if err != nil {
		return nil, err
	}

	pMinusTwo, _ := wideint.Sub128(f.PMinusOne(), wideint.FromUint64(1))
	invN := f.ExpU128(f.NewElementFromUint64(uint64(n)), pMinusTwo)

	out := make([]field.Element, n)
	for i, v := range values {
		out[i] = f.Mul(v, invN)
	}
	return out, nil
}
