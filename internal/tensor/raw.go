package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Raw is a dense row-major in-memory tensor. It carries just enough for the
// schema layer and its producers: a shape, a data type and a flat buffer.
type Raw struct {
	shape Shape
	dtype DataType
	data  []byte
}

// NewRaw creates a zero-filled tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape %v: %w", shape, err)
	}
	return &Raw{
		shape: shape.Clone(),
		dtype: dtype,
		data:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// FromFloat64s creates a Float64 tensor from a flat slice.
func FromFloat64s(data []float64, shape Shape) (*Raw, error) {
	r, err := NewRaw(shape, Float64)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	for i, v := range data {
		r.SetFloat64(i, v)
	}
	return r, nil
}

// Shape returns the tensor dimensions.
func (r *Raw) Shape() Shape { return r.shape }

// DType returns the runtime data type.
func (r *Raw) DType() DataType { return r.dtype }

// NumElements returns the total number of elements.
func (r *Raw) NumElements() int { return r.shape.NumElements() }

// Float64 returns the element at flat index i of a Float64 tensor.
func (r *Raw) Float64(i int) float64 {
	r.mustDType(Float64)
	return math.Float64frombits(binary.LittleEndian.Uint64(r.data[i*8:]))
}

// SetFloat64 stores v at flat index i of a Float64 tensor.
func (r *Raw) SetFloat64(i int, v float64) {
	r.mustDType(Float64)
	binary.LittleEndian.PutUint64(r.data[i*8:], math.Float64bits(v))
}

// Float64s returns a copy of the buffer of a Float64 tensor as a flat slice.
func (r *Raw) Float64s() []float64 {
	r.mustDType(Float64)
	out := make([]float64, r.NumElements())
	for i := range out {
		out[i] = r.Float64(i)
	}
	return out
}

// Bool returns the element at flat index i of a Bool tensor.
func (r *Raw) Bool(i int) bool {
	r.mustDType(Bool)
	return r.data[i] != 0
}

// SetBool stores v at flat index i of a Bool tensor.
func (r *Raw) SetBool(i int, v bool) {
	r.mustDType(Bool)
	if v {
		r.data[i] = 1
	} else {
		r.data[i] = 0
	}
}

func (r *Raw) mustDType(want DataType) {
	if r.dtype != want {
		panic(fmt.Sprintf("tensor is %s, not %s", r.dtype, want))
	}
}
