package field

import (
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n uint64) bool {
	return n != 0 && n&(n-1) == 0
}

// GetRootOfUnity searches for a generator of the multiplicative subgroup of
// the given order, following spec.md §6's algorithm exactly: for candidates
// i = 2, 3, ..., compute g = i^((p-1)/order), and accept the first g with
// g^order = 1 and g^(order/2) != 1. order must be a power of two.
//
// order = 1 is special-cased to return 1 directly: the general search loop
// can never find a value satisfying "g^(order/2) != 1" when order/2 = 0,
// since any nonzero g raised to the zero power is 1 — this matches the
// boundary behavior spec.md §8 names explicitly ("get_root_of_unity(1) =
// 1").
func (f *Field) GetRootOfUnity(order uint64) (Element, error) {
	if order == 0 || !isPowerOfTwo(order) {
		return Element{}, fielderr.New(fielderr.InvalidDomain, "order %d is not a power of two", order)
	}
	if order == 1 {
		return f.one, nil
	}
	exponent := wideint.DivSmall(f.pMinusOne, order)
	halfOrder := order / 2

	for i := uint64(2); ; i++ {
		cand := f.NewElementFromUint64(i)
		if cand.IsZero() {
			continue
		}
		g := f.expU128(cand, exponent)
		if g.IsZero() {
			continue
		}
		if !f.expU128(g, wideint.FromUint64(order)).Equal(f.one) {
			continue
		}
		if !f.expU128(g, wideint.FromUint64(halfOrder)).Equal(f.one) {
			return g, nil
		}
		// i exhausted the field with no root found; this only happens if
		// order does not divide p-1, in which case every candidate fails
		// forever. Bound the search to avoid spinning past the modulus.
		if wideint.Cmp(wideint.FromUint64(i), f.modulus) >= 0 {
			return Element{}, fielderr.New(fielderr.NotFound, "no root of unity of order %d", order)
		}
	}
}

// GetPowerCycle returns [1, w, w^2, ...] up to (but not including) the
// point where the sequence loops back to 1, per spec.md §6.
func (f *Field) GetPowerCycle(w Element) []Element {
	cycle := []Element{f.one}
	cur := w
	for !cur.Equal(f.one) {
		cycle = append(cycle, cur)
		cur = f.Mul(cur, w)
	}
	return cycle
}
