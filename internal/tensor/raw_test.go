package tensor

import "testing"

func TestNewRaw(t *testing.T) {
	r, err := NewRaw(Shape{2, 3}, Float64)
	if err != nil {
		t.Fatalf("NewRaw() error: %v", err)
	}
	if !r.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", r.Shape())
	}
	if r.DType() != Float64 {
		t.Errorf("DType() = %v, want float64", r.DType())
	}
	if r.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", r.NumElements())
	}
	// zero-filled
	for i := 0; i < 6; i++ {
		if r.Float64(i) != 0 {
			t.Errorf("element %d = %v, want 0", i, r.Float64(i))
		}
	}
}

func TestNewRaw_InvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{2, -1}, Float64); err == nil {
		t.Error("NewRaw() should reject a wildcard shape")
	}
	if _, err := NewRaw(Shape{0}, Float64); err == nil {
		t.Error("NewRaw() should reject a zero dimension")
	}
}

func TestFromFloat64s(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	r, err := FromFloat64s(data, Shape{2, 3})
	if err != nil {
		t.Fatalf("FromFloat64s() error: %v", err)
	}
	got := r.Float64s()
	for i, v := range data {
		if got[i] != v {
			t.Errorf("element %d = %v, want %v", i, got[i], v)
		}
	}
}

func TestFromFloat64s_LengthMismatch(t *testing.T) {
	if _, err := FromFloat64s([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("FromFloat64s() should reject mismatched data length")
	}
}

func TestRaw_Bool(t *testing.T) {
	r, err := NewRaw(Shape{3}, Bool)
	if err != nil {
		t.Fatalf("NewRaw() error: %v", err)
	}
	r.SetBool(1, true)
	if r.Bool(0) || !r.Bool(1) || r.Bool(2) {
		t.Errorf("Bool elements = [%v %v %v], want [false true false]",
			r.Bool(0), r.Bool(1), r.Bool(2))
	}
}

func TestRaw_DTypeGuard(t *testing.T) {
	r, err := NewRaw(Shape{1}, Bool)
	if err != nil {
		t.Fatalf("NewRaw() error: %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Float64() on a Bool tensor should panic")
		}
	}()
	_ = r.Float64(0)
}
