package field

import (
	"math/big"
	"testing"

	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// testField returns the concrete scenario modulus from spec.md §8:
// p = 2^128 - 159.
func testField(t *testing.T) *Field {
	t.Helper()
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	return NewFromBigInt(p)
}

func TestAddSubScenario(t *testing.T) {
	f := testField(t)
	pMinusOne := f.Sub(f.zero, f.one) // p - 1
	sum := f.Add(pMinusOne, f.one)
	if !sum.Equal(f.zero) {
		t.Fatalf("add(p-1,1) = %s, want 0", sum)
	}
	diff := f.Sub(f.zero, f.one)
	if !diff.Equal(pMinusOne) {
		t.Fatalf("sub(0,1) = %s, want p-1", diff)
	}
}

func TestMulScenario(t *testing.T) {
	f := testField(t)
	twoTo64 := f.NewElement(wideint.Uint128{Hi: 1})
	got := f.Mul(twoTo64, twoTo64)
	want := f.NewElementFromUint64(159)
	if !got.Equal(want) {
		t.Fatalf("mul(2^64,2^64) = %s, want 159", got)
	}
}

func TestInvScenario(t *testing.T) {
	f := testField(t)
	two := f.NewElementFromUint64(2)
	inv := f.Inv(two)
	got := f.Mul(two, inv)
	if !got.Equal(f.one) {
		t.Fatalf("inv(2)*2 = %s, want 1", got)
	}
}

func TestInvZero(t *testing.T) {
	f := testField(t)
	if got := f.Inv(f.zero); !got.IsZero() {
		t.Fatalf("inv(0) = %s, want 0", got)
	}
}

func TestNegAndAddInverse(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(123456789)
	if got := f.Add(x, f.Neg(x)); !got.IsZero() {
		t.Fatalf("add(x,neg(x)) = %s, want 0", got)
	}
}

func TestDistributivity(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(7)
	y := f.NewElementFromUint64(11)
	z := f.NewElementFromUint64(13)
	lhs := f.Mul(x, f.Add(y, z))
	rhs := f.Add(f.Mul(x, y), f.Mul(x, z))
	if !lhs.Equal(rhs) {
		t.Fatalf("distributivity failed: %s != %s", lhs, rhs)
	}
}

func TestExpBasic(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(5)
	a, err := f.Exp(x, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := f.Mul(f.Mul(x, x), x)
	if !a.Equal(want) {
		t.Fatalf("exp(5,3) = %s, want %s", a, want)
	}
}

func TestExpNegative(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(5)
	a, err := f.Exp(x, -1)
	if err != nil {
		t.Fatal(err)
	}
	want := f.Inv(x)
	if !a.Equal(want) {
		t.Fatalf("exp(5,-1) = %s, want inv(5) = %s", a, want)
	}
}

func TestExpZeroZeroFails(t *testing.T) {
	f := testField(t)
	_, err := f.Exp(f.zero, 0)
	if err == nil {
		t.Fatal("expected error for exp(0,0)")
	}
	if !fielderr.Is(err, fielderr.InvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestExpZeroExponent(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(42)
	a, err := f.Exp(x, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(f.one) {
		t.Fatalf("exp(x,0) = %s, want 1", a)
	}
}

func TestFermatLittleTheorem(t *testing.T) {
	f := testField(t)
	x := f.NewElementFromUint64(999983)
	exp := f.expU128(x, f.pMinusOne)
	if !exp.Equal(f.one) {
		t.Fatalf("x^(p-1) = %s, want 1", exp)
	}
}

func TestGetRootOfUnityOrderOne(t *testing.T) {
	f := testField(t)
	r, err := f.GetRootOfUnity(1)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Equal(f.one) {
		t.Fatalf("get_root_of_unity(1) = %s, want 1", r)
	}
}

func TestGetRootOfUnityOrderTwo(t *testing.T) {
	f := testField(t)
	r, err := f.GetRootOfUnity(2)
	if err != nil {
		t.Fatal(err)
	}
	want := f.Sub(f.zero, f.one)
	if !r.Equal(want) {
		t.Fatalf("get_root_of_unity(2) = %s, want p-1 = %s", r, want)
	}
}

func TestGetRootOfUnityFour(t *testing.T) {
	f := testField(t)
	w, err := f.GetRootOfUnity(4)
	if err != nil {
		t.Fatal(err)
	}
	four := f.expU128(w, wideint.FromUint64(4))
	if !four.Equal(f.one) {
		t.Fatalf("w^4 = %s, want 1", four)
	}
	two := f.expU128(w, wideint.FromUint64(2))
	if two.Equal(f.one) {
		t.Fatalf("w^2 = 1, want != 1")
	}
}

func TestGetRootOfUnityInvalidOrder(t *testing.T) {
	f := testField(t)
	_, err := f.GetRootOfUnity(3)
	if !fielderr.Is(err, fielderr.InvalidDomain) {
		t.Fatalf("expected INVALID_DOMAIN for non-power-of-two order, got %v", err)
	}
}

func TestGetPowerCycle(t *testing.T) {
	f := testField(t)
	w, err := f.GetRootOfUnity(4)
	if err != nil {
		t.Fatal(err)
	}
	cycle := f.GetPowerCycle(w)
	if len(cycle) != 4 {
		t.Fatalf("expected power cycle of length 4, got %d", len(cycle))
	}
	if !cycle[0].Equal(f.one) {
		t.Fatalf("cycle[0] should be 1")
	}
}

func TestPRNGDeterministic(t *testing.T) {
	f := testField(t)
	a := f.PRNG([]byte("seed"))
	b := f.PRNG([]byte("seed"))
	if !a.Equal(b) {
		t.Fatalf("PRNG not deterministic: %s != %s", a, b)
	}
	c := f.PRNG([]byte("other"))
	if a.Equal(c) {
		t.Fatalf("PRNG collided on different seeds (extremely unlikely): %s", a)
	}
}

func TestPRNGVector(t *testing.T) {
	f := testField(t)
	vec, err := f.PRNGVector([]byte("seed"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(vec) != 5 {
		t.Fatalf("expected length 5, got %d", len(vec))
	}
}

func TestPRNGVectorNegativeLength(t *testing.T) {
	f := testField(t)
	_, err := f.PRNGVector([]byte("seed"), -1)
	if !fielderr.Is(err, fielderr.InvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRand(t *testing.T) {
	f := testField(t)
	r, err := f.Rand()
	if err != nil {
		t.Fatal(err)
	}
	if wideint.Cmp(r.Raw(), f.modulus) >= 0 {
		t.Fatalf("rand() returned value >= modulus")
	}
}
