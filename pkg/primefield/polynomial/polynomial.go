// Package polynomial implements the dense polynomial kernels of spec.md
// §4.4: add/sub/mul/div, Horner evaluation, FFT over roots of unity,
// generic Lagrange interpolation and a zerofier-tree-backed vanishing
// polynomial, and quartic batch interpolation. The Polynomial type and its
// elementary operations generalize the teacher's
// pkg/vybium-crypto/polynomial/polynomial.go from a Goldilocks-only field
// to a *field.Field-parameterized one, keeping the teacher's
// increasing-degree ("reverse-coefficient form" per spec.md's glossary)
// representation and its Horner/naive-convolution shape.
package polynomial

import (
	"github.com/vybium/primefield/pkg/primefield/array"
	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
)

// Polynomial holds coefficients in increasing-degree order: index i is the
// coefficient of x^i. Trailing zero coefficients are normalized away by
// New, but Degree is still computed defensively rather than assuming the
// backing slice is always trimmed by every caller.
type Polynomial struct {
	field        *field.Field
	coefficients []field.Element
}

// New builds a Polynomial from coefficients in increasing-degree order,
// trimming trailing zero coefficients.
func New(f *field.Field, coefficients []field.Element) *Polynomial {
	c := make([]field.Element, len(coefficients))
	copy(c, coefficients)
	return &Polynomial{field: f, coefficients: normalize(f, c)}
}

func normalize(f *field.Field, c []field.Element) []field.Element {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	return c[:n]
}

// Zero returns the zero polynomial.
func Zero(f *field.Field) *Polynomial {
	return &Polynomial{field: f, coefficients: nil}
}

// One returns the constant polynomial 1.
func One(f *field.Field) *Polynomial {
	return New(f, []field.Element{f.One()})
}

// X returns the polynomial "x".
func X(f *field.Field) *Polynomial {
	return New(f, []field.Element{f.Zero(), f.One()})
}

// Coefficients returns the backing coefficient slice in increasing-degree
// order. Callers must not mutate the returned slice.
func (p *Polynomial) Coefficients() []field.Element {
	return p.coefficients
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p *Polynomial) Degree() int {
	n := len(p.coefficients)
	for n > 0 && p.coefficients[n-1].IsZero() {
		n--
	}
	return n - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return p.Degree() < 0
}

// LeadingCoefficient returns the coefficient of the highest-degree term, or
// the field's zero for the zero polynomial.
func (p *Polynomial) LeadingCoefficient() field.Element {
	d := p.Degree()
	if d < 0 {
		return p.field.Zero()
	}
	return p.coefficients[d]
}

// Clone returns a deep copy.
func (p *Polynomial) Clone() *Polynomial {
	c := make([]field.Element, len(p.coefficients))
	copy(c, p.coefficients)
	return &Polynomial{field: p.field, coefficients: c}
}

// Equal reports whether p and other have identical normalized coefficients.
func (p *Polynomial) Equal(other *Polynomial) bool {
	pd, od := p.Degree(), other.Degree()
	if pd != od {
		return false
	}
	for i := 0; i <= pd; i++ {
		if !p.coefficients[i].Equal(other.coefficients[i]) {
			return false
		}
	}
	return true
}

// Add returns p+q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	n := len(p.coefficients)
	if len(q.coefficients) > n {
		n = len(q.coefficients)
	}
	out := make([]field.Element, n)
	for i := 0; i < n; i++ {
		var a, b field.Element
		if i < len(p.coefficients) {
			a = p.coefficients[i]
		} else {
			a = p.field.Zero()
		}
		if i < len(q.coefficients) {
			b = q.coefficients[i]
		} else {
			b = p.field.Zero()
		}
		out[i] = p.field.Add(a, b)
	}
	return New(p.field, out)
}

// Sub returns p-q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]field.Element, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = p.field.Neg(c)
	}
	return New(p.field, out)
}

// ScalarMul returns p scaled by s.
func (p *Polynomial) ScalarMul(s field.Element) *Polynomial {
	out := make([]field.Element, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = p.field.Mul(c, s)
	}
	return New(p.field, out)
}

// Mul returns p*q via schoolbook convolution; result length is
// p.len+q.len-1 before normalization, per spec.md §4.4.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero(p.field)
	}
	out := make([]field.Element, len(p.coefficients)+len(q.coefficients)-1)
	for i := range out {
		out[i] = p.field.Zero()
	}
	for i, a := range p.coefficients {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coefficients {
			out[i+j] = p.field.Add(out[i+j], p.field.Mul(a, b))
		}
	}
	return New(p.field, out)
}

// Evaluate evaluates p at x via Horner's rule from high to low coefficient.
func (p *Polynomial) Evaluate(x field.Element) field.Element {
	acc := p.field.Zero()
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		acc = p.field.Add(p.field.Mul(acc, x), p.coefficients[i])
	}
	return acc
}

// BatchEvaluate evaluates p at every point in xs.
func (p *Polynomial) BatchEvaluate(xs []field.Element) []field.Element {
	out := make([]field.Element, len(xs))
	for i, x := range xs {
		out[i] = p.Evaluate(x)
	}
	return out
}

// FormalDerivative returns p', the formal derivative.
func (p *Polynomial) FormalDerivative() *Polynomial {
	d := p.Degree()
	if d <= 0 {
		return Zero(p.field)
	}
	out := make([]field.Element, d)
	for i := 1; i <= d; i++ {
		out[i-1] = p.field.Mul(p.coefficients[i], p.field.NewElementFromUint64(uint64(i)))
	}
	return New(p.field, out)
}

// Monic returns p scaled so its leading coefficient is 1; the zero
// polynomial is returned unchanged.
func (p *Polynomial) Monic() *Polynomial {
	if p.IsZero() {
		return Zero(p.field)
	}
	lc := p.LeadingCoefficient()
	return p.ScalarMul(p.field.Inv(lc))
}

// Divide implements spec.md §4.4's divPolys: precondition len(a) >=
// len(b); all-zero divisor fails INVALID_ARGUMENT (per spec.md §9's design
// note converting the teacher's undefined-behavior panic into a typed
// error). Returns (quotient, remainder).
func Divide(a, b *Polynomial) (quotient, remainder *Polynomial, err error) {
	f := a.field
	bpos := b.Degree()
	if bpos < 0 {
		return nil, nil, fielderr.New(fielderr.InvalidArgument, "division by the zero polynomial")
	}
	apos := a.Degree()
	if apos < bpos {
		return nil, nil, fielderr.New(fielderr.InvalidArgument, "dividend degree %d is smaller than divisor degree %d", apos, bpos)
	}

	diff := apos - bpos
	work := make([]field.Element, apos+1)
	copy(work, a.coefficients)

	q := make([]field.Element, diff+1)
	leadInv := f.Inv(b.coefficients[bpos])

	for pos := apos; pos >= bpos; pos-- {
		if work[pos].IsZero() {
			q[pos-bpos] = f.Zero()
			continue
		}
		qCoef := f.Mul(work[pos], leadInv)
		q[pos-bpos] = qCoef
		for k := 0; k <= bpos; k++ {
			work[pos-bpos+k] = f.Sub(work[pos-bpos+k], f.Mul(qCoef, b.coefficients[k]))
		}
	}

	return New(f, q), New(f, work[:bpos]), nil
}

// Mod returns a mod b (the remainder of Divide).
func Mod(a, b *Polynomial) (*Polynomial, error) {
	_, r, err := Divide(a, b)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Zerofier builds z(x) = Π(x - x_i) for the given points, via spec.md
// §4.4's incremental right-to-left coefficient-update construction: start
// from [1] and, for each root r, multiply the running polynomial by (x-r)
// in place by updating coefficients from high to low.
func Zerofier(f *field.Field, points []field.Element) *Polynomial {
	coeffs := make([]field.Element, len(points)+1)
	coeffs[0] = f.One()
	for i := 1; i < len(coeffs); i++ {
		coeffs[i] = f.Zero()
	}
	degree := 0
	for _, r := range points {
		for i := degree + 1; i >= 1; i-- {
			coeffs[i] = f.Sub(coeffs[i-1], f.Mul(r, coeffs[i]))
		}
		coeffs[0] = f.Neg(f.Mul(r, coeffs[0]))
		degree++
	}
	return New(f, coeffs)
}

// Interpolate implements spec.md §4.4's generic Lagrange interpolation:
//  1. root = Zerofier(xs).
//  2. For each i, num_i(x) = root(x) / (x - x_i), degree k-1.
//  3. den_i = num_i(x_i).
//  4. Batch-invert {den_i}.
//  5. L(x) = Σ (y_i * inv_i) * num_i(x).
//
// For point sets larger than the zerofier tree's recursion cutoff, the
// vanishing polynomial step is built via the product tree in
// zerofier_tree.go instead of the incremental Zerofier, matching the
// teacher's own RecursionCutoffThreshold-gated strategy.
func Interpolate(f *field.Field, xs, ys []field.Element) (*Polynomial, error) {
	if len(xs) != len(ys) {
		return nil, fielderr.New(fielderr.DimensionMismatch, "xs and ys lengths differ: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return Zero(f), nil
	}

	root := zerofierViaBestStrategy(f, xs)

	numerators := make([]*Polynomial, len(xs))
	denominators := make([]field.Element, len(xs))
	for i, xi := range xs {
		linear := New(f, []field.Element{f.Neg(xi), f.One()})
		num, _, err := Divide(root, linear)
		if err != nil {
			return nil, err
		}
		numerators[i] = num
		denominators[i] = num.Evaluate(xi)
	}

	invDen := array.InvVectorElements(f, denominators)

	result := Zero(f)
	for i := range xs {
		weight := f.Mul(ys[i], invDen[i])
		result = result.Add(numerators[i].ScalarMul(weight))
	}
	return result, nil
}
