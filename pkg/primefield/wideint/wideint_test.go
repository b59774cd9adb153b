package wideint

import (
	"math/big"
	"testing"
)

func TestAdd128Carry(t *testing.T) {
	x := Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}
	y := Uint128{Lo: 1, Hi: 0}
	sum, carry := Add128(x, y)
	if carry != 1 {
		t.Fatalf("expected carry=1, got %d", carry)
	}
	if !sum.IsZero() {
		t.Fatalf("expected wraparound to zero, got %+v", sum)
	}
}

func TestAdd128NoCarry(t *testing.T) {
	x := FromUint64(10)
	y := FromUint64(20)
	sum, carry := Add128(x, y)
	if carry != 0 {
		t.Fatalf("unexpected carry")
	}
	if sum.Lo != 30 || sum.Hi != 0 {
		t.Fatalf("expected 30, got %+v", sum)
	}
}

func TestSub128Borrow(t *testing.T) {
	x := FromUint64(5)
	y := FromUint64(10)
	diff, borrow := Sub128(x, y)
	if borrow != 1 {
		t.Fatalf("expected borrow=1")
	}
	want := Uint128{Lo: ^uint64(0) - 4, Hi: ^uint64(0)}
	if diff != want {
		t.Fatalf("got %+v want %+v", diff, want)
	}
}

func TestMul128x128Small(t *testing.T) {
	x := FromUint64(6)
	y := FromUint64(7)
	r := Mul128x128(x, y)
	if r.W[0] != 42 || r.W[1] != 0 || r.W[2] != 0 || r.W[3] != 0 {
		t.Fatalf("expected 42, got %+v", r)
	}
}

func TestMul128x128Big(t *testing.T) {
	x := Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}
	r := Mul128x128(x, x)
	expect := new(big.Int).Mul(x.toBig(), x.toBig())
	got := r.toBig()
	if got.Cmp(expect) != 0 {
		t.Fatalf("got %s want %s", got, expect)
	}
}

func TestMul128x128RandomAgainstBigInt(t *testing.T) {
	cases := []Uint128{
		{Lo: 123456789, Hi: 0},
		{Lo: 0xdeadbeefcafebabe, Hi: 0x1},
		{Lo: 0xffffffffffffffff, Hi: 0x0},
		{Lo: 0x1, Hi: 0xffffffffffffffff},
	}
	for _, x := range cases {
		for _, y := range cases {
			got := Mul128x128(x, y).toBig()
			want := new(big.Int).Mul(x.toBig(), y.toBig())
			if got.Cmp(want) != 0 {
				t.Fatalf("Mul128x128(%+v,%+v) = %s, want %s", x, y, got, want)
			}
		}
	}
}

func TestMod256By128(t *testing.T) {
	p := Uint128{Lo: 159, Hi: 0}
	p = Sub128AsModulus(p)
	x := Mul128x128(Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}, Uint128{Lo: ^uint64(0), Hi: ^uint64(0)})
	got := Mod256By128(x, p)
	want := new(big.Int).Mod(x.toBig(), p.toBig())
	if got.toBig().Cmp(want) != 0 {
		t.Fatalf("Mod256By128 mismatch: got %s want %s", got.toBig(), want)
	}
}

// Sub128AsModulus builds p = 2^128-159 for tests, mirroring the example
// modulus used throughout spec.md's testable-properties scenarios.
func Sub128AsModulus(offset Uint128) Uint128 {
	zero := Uint128{}
	diff, _ := Sub128(zero, offset)
	return diff
}

func TestModInv128(t *testing.T) {
	p := Sub128AsModulus(Uint128{Lo: 159})
	a := Uint128{Lo: 123456789}
	inv := ModInv128(a, p)
	prod := Mod256By128(Mul128x128(a, inv), p)
	if prod.Lo != 1 || prod.Hi != 0 {
		t.Fatalf("a*inv(a) mod p != 1, got %+v", prod)
	}
}

func TestModInv128Zero(t *testing.T) {
	p := Sub128AsModulus(Uint128{Lo: 159})
	if got := ModInv128(Uint128{}, p); !got.IsZero() {
		t.Fatalf("expected inv(0)=0, got %+v", got)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	x := Uint128{Lo: 0x0123456789abcdef, Hi: 0xfedcba9876543210}
	b := x.Bytes16()
	y := Uint128FromBytes16(b)
	if x != y {
		t.Fatalf("round trip mismatch: %+v != %+v", x, y)
	}
}

func TestCmp(t *testing.T) {
	a := Uint128{Lo: 5}
	b := Uint128{Lo: 10}
	if Cmp(a, b) >= 0 {
		t.Fatalf("expected a<b")
	}
	if Cmp(b, a) <= 0 {
		t.Fatalf("expected b>a")
	}
	if Cmp(a, a) != 0 {
		t.Fatalf("expected equal")
	}
}
