// Package wideint provides 128-bit unsigned integer primitives built from
// pairs of uint64 limbs, and the 256-bit intermediate values their products
// produce.
//
// The field package builds all of its modular arithmetic on top of this
// package so that it never needs a native 128-bit integer type. Addition,
// subtraction and multiplication are expressed with math/bits
// carry-propagating limb operations, the same idiom the teacher's Montgomery reduction
// (field.montyred) and the pack's other arbitrary-modulus field code
// (Bandersnatch's uint256_modular.go, bantling-micro's one28 package) use for
// wide integers on a 64-bit host. Reduction (Mod256By128), inversion
// (ModInv128) and DivSmall go through math/big.
package wideint

import (
	"math/big"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit limbs,
// little-endian (Lo holds bits 0-63, Hi holds bits 64-127).
type Uint128 struct {
	Lo, Hi uint64
}

// Uint256 is an unsigned 256-bit integer stored as four 64-bit limbs,
// W[0] lowest, W[3] highest.
type Uint256 struct {
	W [4]uint64
}

// Zero128 is the additive identity.
var Zero128 = Uint128{}

// FromUint64 builds a Uint128 from a machine word.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// IsZero reports whether x is the zero value.
func (x Uint128) IsZero() bool {
	return x.Lo == 0 && x.Hi == 0
}

// Cmp returns -1, 0 or 1 as x is less than, equal to, or greater than y.
func Cmp(x, y Uint128) int {
	if x.Hi != y.Hi {
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	}
	if x.Lo != y.Lo {
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// Add128 computes the 2^128 modular sum of x and y, returning the carry-out
// bit (0 or 1) as described by spec.md's add128(a,b) -> (sum, carry).
func Add128(x, y Uint128) (sum Uint128, carry uint64) {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	hi, c := bits.Add64(x.Hi, y.Hi, c)
	return Uint128{Lo: lo, Hi: hi}, c
}

// Sub128 computes x-y modulo 2^128, returning the borrow-out bit.
func Sub128(x, y Uint128) (diff Uint128, borrow uint64) {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	hi, b := bits.Sub64(x.Hi, y.Hi, b)
	return Uint128{Lo: lo, Hi: hi}, b
}

// Mul128x128 computes the full 256-bit product of two 128-bit operands via
// schoolbook 2x2-limb multiplication: split each operand into its Lo/Hi
// 64-bit limbs, form the four partial products with bits.Mul64, and combine
// them with carry-propagating bits.Add64 chains.
func Mul128x128(x, y Uint128) Uint256 {
	// partial products: name ab where a is x's limb, b is y's limb
	loLoHi, loLoLo := bits.Mul64(x.Lo, y.Lo)
	loHiHi, loHiLo := bits.Mul64(x.Lo, y.Hi)
	hiLoHi, hiLoLo := bits.Mul64(x.Hi, y.Lo)
	hiHiHi, hiHiLo := bits.Mul64(x.Hi, y.Hi)

	var r Uint256
	r.W[0] = loLoLo

	mid1, c1 := bits.Add64(loLoHi, loHiLo, 0)
	mid2, c2 := bits.Add64(mid1, hiLoLo, 0)
	r.W[1] = mid2
	carryOut := c1 + c2

	hi1, c3 := bits.Add64(loHiHi, hiLoHi, 0)
	hi2, c4 := bits.Add64(hi1, hiHiLo, 0)
	hi3, c5 := bits.Add64(hi2, carryOut, 0)
	r.W[2] = hi3
	carryOut2 := c3 + c4 + c5

	r.W[3] = hiHiHi + carryOut2
	return r
}

// toBig converts a Uint256 to a big.Int.
func (x Uint256) toBig() *big.Int {
	z := new(big.Int)
	for i := 3; i >= 0; i-- {
		z.Lsh(z, 64)
		z.Or(z, new(big.Int).SetUint64(x.W[i]))
	}
	return z
}

// toBig converts a Uint128 to a big.Int.
func (x Uint128) toBig() *big.Int {
	z := new(big.Int).SetUint64(x.Hi)
	z.Lsh(z, 64)
	z.Or(z, new(big.Int).SetUint64(x.Lo))
	return z
}

// uint128FromBig converts a non-negative big.Int known to fit in 128 bits
// back to a Uint128.
func uint128FromBig(z *big.Int) Uint128 {
	mask := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(z, mask).Uint64()
	hi := new(big.Int).Rsh(z, 64).Uint64()
	return Uint128{Lo: lo, Hi: hi}
}

// Mod256By128 reduces a 256-bit dividend by a 128-bit modulus, returning
// x mod p. The reduction itself is delegated to math/big (big.Int.Mod): the
// spec only requires the result be correct, not a particular long-division
// algorithm, and the teacher already pulls in math/big for this class of
// conversion (field.NewFromBigInt/ToBigInt).
func Mod256By128(x Uint256, p Uint128) Uint128 {
	z := new(big.Int).Mod(x.toBig(), p.toBig())
	return uint128FromBig(z)
}

// Mod128 reduces a 128-bit value that is known to be less than 2p by at
// most one conditional subtraction, per spec.md's "mod128(x,p)" contract.
// For values that may exceed 2p, use Mod256By128 with W[2] and W[3] zero
// instead.
func Mod128(x, p Uint128) Uint128 {
	if Cmp(x, p) >= 0 {
		diff, _ := Sub128(x, p)
		return diff
	}
	return x
}

// ModInv128 returns the unique y in [0,p) such that a*y ≡ 1 (mod p), using
// the extended Euclidean algorithm via math/big.Int.ModInverse. By
// convention, inv(0) = 0 (ModInverse has no answer for 0, so that case is
// special-cased here rather than left to panic).
func ModInv128(a, p Uint128) Uint128 {
	if a.IsZero() {
		return Zero128
	}
	z := new(big.Int).ModInverse(a.toBig(), p.toBig())
	if z == nil {
		return Zero128
	}
	return uint128FromBig(z)
}

// BitLen returns the number of bits needed to represent x (its position of
// the highest set bit, plus one); 0 for the zero value.
func (x Uint128) BitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

// DivSmall divides a 128-bit value by a small (uint64) non-zero divisor,
// returning the quotient. Used by root-of-unity search to compute
// (p-1)/order.
func DivSmall(x Uint128, divisor uint64) Uint128 {
	z := new(big.Int).Quo(x.toBig(), new(big.Int).SetUint64(divisor))
	return uint128FromBig(z)
}

// Bytes16 returns the 16-byte little-endian encoding of x, matching
// spec.md's "128-bit wire encoding is 16 bytes little-endian (low 64 bits
// first, then high 64 bits)".
func (x Uint128) Bytes16() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(x.Lo >> (8 * i))
		b[8+i] = byte(x.Hi >> (8 * i))
	}
	return b
}

// Uint128FromBytes16 decodes the little-endian 16-byte wire encoding.
func Uint128FromBytes16(b [16]byte) Uint128 {
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(b[i]) << (8 * i)
		hi |= uint64(b[8+i]) << (8 * i)
	}
	return Uint128{Lo: lo, Hi: hi}
}

// Uint256FromBytes32 decodes a 32-byte little-endian buffer (e.g. a sha256
// digest) as an unsigned 256-bit integer, for use with Mod256By128.
func Uint256FromBytes32(b [32]byte) Uint256 {
	var r Uint256
	for limb := 0; limb < 4; limb++ {
		var w uint64
		for i := 0; i < 8; i++ {
			w |= uint64(b[limb*8+i]) << (8 * i)
		}
		r.W[limb] = w
	}
	return r
}

// FromBigInt reduces an arbitrary-sign big.Int modulo p and returns the
// canonical Uint128 representative, wrapping negative values into [0,p).
func FromBigInt(v *big.Int, p Uint128) Uint128 {
	m := new(big.Int).Mod(v, p.toBig())
	if m.Sign() < 0 {
		m.Add(m, p.toBig())
	}
	return uint128FromBig(m)
}

// ToBigInt converts x to a big.Int for interop with callers that need
// arbitrary-precision arithmetic (e.g. serialization, big.Int-based APIs).
func (x Uint128) ToBigInt() *big.Int {
	return x.toBig()
}
