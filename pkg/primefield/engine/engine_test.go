package engine

import (
	"math/big"
	"testing"

	"github.com/vybium/primefield/pkg/primefield/field"
	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

func testModulus(t *testing.T) wideint.Uint128 {
	t.Helper()
	p := new(big.Int).Lsh(big.NewInt(1), 128)
	p.Sub(p, big.NewInt(159))
	mask64 := new(big.Int).SetUint64(^uint64(0))
	lo := new(big.Int).And(p, mask64).Uint64()
	hi := new(big.Int).Rsh(p, 64).Uint64()
	return wideint.Uint128{Lo: lo, Hi: hi}
}

func elems(f *field.Field, vs ...uint64) []field.Element {
	out := make([]field.Element, len(vs))
	for i, v := range vs {
		out[i] = f.NewElementFromUint64(v)
	}
	return out
}

func TestCoreAndAcceleratedAgree(t *testing.T) {
	modulus := testModulus(t)
	core := NewField(modulus, Options{})
	accel := NewField(modulus, Options{UseAccelerated: true})

	a := elems(core.Field, 1, 2, 3, 4)
	b := elems(core.Field, 5, 6, 7, 8)
	s := core.Field.NewElementFromUint64(9)

	vCore := core.NewVector(a)
	vAccel := accel.NewVector(a)
	bCore := core.NewVector(b)

	sumCore, err := vCore.Add(bCore)
	if err != nil {
		t.Fatal(err)
	}
	mulScalarCore := vCore.MulScalar(s)
	mulScalarAccel := vAccel.MulScalar(s)

	for i := 0; i < 4; i++ {
		cv, _ := mulScalarCore.GetValue(i)
		av, _ := mulScalarAccel.GetValue(i)
		if !cv.Equal(av) {
			t.Fatalf("core/accelerated disagree at %d: %s != %s", i, cv, av)
		}
	}
	if sumCore.Length() != 4 {
		t.Fatalf("expected length 4")
	}
}

func TestVectorGetSetValue(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	v := fc.NewVectorOfLength(3)
	if err := v.SetValue(1, wideint.FromUint64(42)); err != nil {
		t.Fatal(err)
	}
	got, err := v.GetValue(1)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(fc.Field.NewElementFromUint64(42)) {
		t.Fatalf("got %s want 42", got)
	}
}

func TestVectorSetValueOutOfRange(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	v := fc.NewVectorOfLength(1)
	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	err := v.SetValueFromBigInt(0, tooBig)
	if !fielderr.Is(err, fielderr.OutOfRange) {
		t.Fatalf("expected OUT_OF_RANGE, got %v", err)
	}
}

func TestVectorSetValueAtMax(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	v := fc.NewVectorOfLength(1)
	maxVal := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	if err := v.SetValueFromBigInt(0, maxVal); err != nil {
		t.Fatalf("expected success for 2^128-1, got %v", err)
	}
}

func TestVectorAddDimensionMismatch(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	a := fc.NewVector(elems(fc.Field, 1, 2))
	b := fc.NewVector(elems(fc.Field, 1))
	_, err := a.Add(b)
	if !fielderr.Is(err, fielderr.DimensionMismatch) {
		t.Fatalf("expected DIMENSION_MISMATCH, got %v", err)
	}
}

func TestVectorInverseRoundTrip(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	v := fc.NewVector(elems(fc.Field, 1, 2, 3))
	inv := v.Inverse()
	back := inv.Inverse()
	for i := 0; i < 3; i++ {
		a, _ := v.GetValue(i)
		b, _ := back.GetValue(i)
		if !a.Equal(b) {
			t.Fatalf("round trip failed at %d", i)
		}
	}
}

func TestMatrixMatMulAndGetSet(t *testing.T) {
	modulus := testModulus(t)
	fc := NewField(modulus, Options{})
	a, err := fc.NewMatrix(elems(fc.Field, 1, 2, 3, 4), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	identity, err := fc.NewMatrix(elems(fc.Field, 1, 0, 0, 1), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	product, err := a.MatMul(identity)
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			got, _ := product.GetValue(r, c)
			want, _ := a.GetValue(r, c)
			if !got.Equal(want) {
				t.Fatalf("(%d,%d): got %s want %s", r, c, got, want)
			}
		}
	}
}

func TestMatrixDimensionMismatchOnConstruct(t *testing.T) {
	fc := NewField(testModulus(t), Options{})
	_, err := fc.NewMatrix(elems(fc.Field, 1, 2, 3), 2, 2)
	if !fielderr.Is(err, fielderr.DimensionMismatch) {
		t.Fatalf("expected DIMENSION_MISMATCH, got %v", err)
	}
}

func TestMatrixRowsToBuffers(t *testing.T) {
	fc := NewField(testModulus(t), Options{})
	m, err := fc.NewMatrix(elems(fc.Field, 1, 2, 3, 4), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	buffers, err := m.RowsToBuffers([]int{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(buffers) != 2 {
		t.Fatalf("expected 2 row buffers")
	}
	if len(buffers[0]) != 2*fc.Field.ElementSize() {
		t.Fatalf("unexpected row buffer length %d", len(buffers[0]))
	}
}

func TestVectorToBuffer(t *testing.T) {
	fc := NewField(testModulus(t), Options{})
	v := fc.NewVector(elems(fc.Field, 1, 2, 3, 4))
	buf, err := v.ToBuffer(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 2*fc.Field.ElementSize() {
		t.Fatalf("unexpected buffer length %d", len(buf))
	}
}

func TestPowerSeriesHandle(t *testing.T) {
	fc := NewField(testModulus(t), Options{})
	v := fc.PowerSeries(fc.Field.NewElementFromUint64(3), 5)
	want := elems(fc.Field, 1, 3, 9, 27, 81)
	for i := 0; i < 5; i++ {
		got, _ := v.GetValue(i)
		if !got.Equal(want[i]) {
			t.Fatalf("index %d: got %s want %s", i, got, want[i])
		}
	}
}
