// Package field implements GF(p) arithmetic for an arbitrary 128-bit prime
// modulus chosen at construction time. It generalizes the teacher's
// Goldilocks-fixed Element/Field pair (pkg/vybium-crypto/field/element.go) to
// a runtime modulus carried on a *Field value, trading the teacher's
// Montgomery representation for schoolbook reduction over wideint.Uint128/
// Uint256 — Montgomery-form representation is explicitly out of scope for
// this core (see SPEC_FULL.md §1).
package field

import (
	"math/big"

	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// Element is a canonical residue in [0, p). It is always fully reduced once
// returned from a Field operation or constructor; NewElement and its
// variants (which the handle setters use) reduce their raw input mod p.
type Element struct {
	v wideint.Uint128
}

// Raw exposes the underlying 128-bit value.
func (e Element) Raw() wideint.Uint128 {
	return e.v
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v.IsZero()
}

// Equal reports whether e and other carry the same residue.
func (e Element) Equal(other Element) bool {
	return e.v == other.v
}

// Bytes16 returns the little-endian 16-byte wire encoding, per spec.md §6.
func (e Element) Bytes16() [16]byte {
	return e.v.Bytes16()
}

// String renders the element's decimal value.
func (e Element) String() string {
	return e.v.ToBigInt().String()
}

// Field is the immutable configuration shared read-only by every operation:
// the modulus, its bit width, and the element byte size, matching spec.md
// §3's "Field instance" data model.
type Field struct {
	modulus      wideint.Uint128
	pMinusOne    wideint.Uint128
	bitWidth     int
	elementSize  int
	zero         Element
	one          Element
}

// New constructs a Field over the given 128-bit prime modulus. The caller
// is responsible for p being prime; no primality test is performed (none is
// named by spec.md's construction contract).
func New(p wideint.Uint128) *Field {
	pMinusOne, _ := wideint.Sub128(p, wideint.FromUint64(1))
	return &Field{
		modulus:     p,
		pMinusOne:   pMinusOne,
		bitWidth:    p.BitLen(),
		elementSize: (p.BitLen() + 7) / 8,
		zero:        Element{},
		one:         Element{v: wideint.FromUint64(1)},
	}
}

// NewFromBigInt constructs a Field from a big.Int modulus, for callers
// working with arbitrary-precision values (CLI flags, test fixtures). p
// must be positive and fit in 128 bits.
func NewFromBigInt(p *big.Int) *Field {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(p, mask64).Uint64()
	hi := new(big.Int).Rsh(p, 64).Uint64()
	return New(wideint.Uint128{Lo: lo, Hi: hi})
}

// Modulus returns the field's prime modulus.
func (f *Field) Modulus() wideint.Uint128 {
	return f.modulus
}

// BitWidth returns the number of bits needed to represent the modulus.
func (f *Field) BitWidth() int {
	return f.bitWidth
}

// ElementSize returns ceil(bit_width(p)/8), the wire size of one element.
func (f *Field) ElementSize() int {
	return f.elementSize
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return f.zero
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.one
}

// NewElement reduces an arbitrary 128-bit value modulo p and returns the
// canonical Element. Use this at API boundaries that accept raw values
// (e.g. a handle setter after its own >= 2^128 range check).
func (f *Field) NewElement(raw wideint.Uint128) Element {
	return Element{v: wideint.Mod256By128(wideint.Uint256{W: [4]uint64{raw.Lo, raw.Hi, 0, 0}}, f.modulus)}
}

// NewElementFromUint64 reduces a machine word modulo p.
func (f *Field) NewElementFromUint64(v uint64) Element {
	return f.NewElement(wideint.FromUint64(v))
}

// NewElementFromBigInt reduces an arbitrary-sign big.Int modulo p.
func (f *Field) NewElementFromBigInt(v *big.Int) Element {
	return Element{v: wideint.FromBigInt(v, f.modulus)}
}

// Add computes (x+y) mod p: add128 then a conditional subtract when the
// carry fired or the raw sum is already >= p, matching the teacher's
// carry-trick shape in Element.Add generalized off Montgomery form.
func (f *Field) Add(x, y Element) Element {
	sum, carry := wideint.Add128(x.v, y.v)
	if carry != 0 {
		diff, _ := wideint.Sub128(sum, f.modulus)
		return Element{v: diff}
	}
	if wideint.Cmp(sum, f.modulus) >= 0 {
		diff, _ := wideint.Sub128(sum, f.modulus)
		return Element{v: diff}
	}
	return Element{v: sum}
}

// Sub computes (x-y) mod p: sub128, adding p back on borrow.
func (f *Field) Sub(x, y Element) Element {
	diff, borrow := wideint.Sub128(x.v, y.v)
	if borrow != 0 {
		sum, _ := wideint.Add128(diff, f.modulus)
		return Element{v: sum}
	}
	return Element{v: diff}
}

// Neg computes (p - x) mod p, with neg(0) = 0.
func (f *Field) Neg(x Element) Element {
	if x.v.IsZero() {
		return f.zero
	}
	diff, _ := wideint.Sub128(f.modulus, x.v)
	return Element{v: diff}
}

// Mul computes (x*y) mod p via a full 256-bit product and reduction.
func (f *Field) Mul(x, y Element) Element {
	wide := wideint.Mul128x128(x.v, y.v)
	return Element{v: wideint.Mod256By128(wide, f.modulus)}
}

// Inv returns the multiplicative inverse of x, with inv(0) := 0 per
// spec.md §4.2's load-bearing convention (Montgomery batch inversion
// depends on this exact behavior).
func (f *Field) Inv(x Element) Element {
	return Element{v: wideint.ModInv128(x.v, f.modulus)}
}

// Div computes x * inv(y).
func (f *Field) Div(x, y Element) Element {
	return f.Mul(x, f.Inv(y))
}

// Exp computes b^e mod p by right-to-left square-and-multiply, following
// spec.md §4.2's signed-exponent contract: negative e flips b to its
// inverse and negates e; exp(0,0) is INVALID_ARGUMENT; b=0,e>0 -> 0; e=0
// -> 1.
func (f *Field) Exp(b Element, e int64) (Element, error) {
	if e == 0 {
		if b.IsZero() {
			return Element{}, fielderr.New(fielderr.InvalidArgument, "exp(0, 0) is undefined")
		}
		return f.one, nil
	}
	if e < 0 {
		b = f.Inv(b)
		e = -e
	}
	if b.IsZero() {
		return f.zero, nil
	}
	return f.expU128(b, wideint.FromUint64(uint64(e))), nil
}

// expU128 performs square-and-multiply exponentiation with a full 128-bit,
// always-non-negative exponent. It backs root-of-unity search, which needs
// exponents up to p-1 that do not fit in an int64.
func (f *Field) expU128(b Element, e wideint.Uint128) Element {
	result := f.one
	base := b
	for !e.IsZero() {
		if e.Lo&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		e = shiftRight1(e)
	}
	return result
}

// shiftRight1 shifts a Uint128 right by one bit.
func shiftRight1(x wideint.Uint128) wideint.Uint128 {
	lo := (x.Lo >> 1) | (x.Hi << 63)
	hi := x.Hi >> 1
	return wideint.Uint128{Lo: lo, Hi: hi}
}

// ExpU128 is the exported form of expU128, for callers (polynomial) that
// need to raise an element to an exponent that may not fit in int64
// (e.g. computing inv(n) = n^(p-2) for FFT scaling).
func (f *Field) ExpU128(b Element, e wideint.Uint128) Element {
	return f.expU128(b, e)
}

// PMinusOne returns p-1, used by root-of-unity search and Fermat-based
// inversion exponents.
func (f *Field) PMinusOne() wideint.Uint128 {
	return f.pMinusOne
}
