// Copyright 2025 DeepForce ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// Type aliases for public API

// Shape represents the dimensions of a tensor or the declared shape of an
// output variable. Declared shapes may end in the -1 wildcard.
type Shape = tensor.Shape

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Bool    DataType = tensor.Bool
)

// Raw is a dense row-major in-memory tensor.
type Raw = tensor.Raw

// NewRaw creates a zero-filled tensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	return tensor.NewRaw(shape, dtype)
}

// FromFloat64s creates a Float64 tensor from a flat slice.
//
// Example:
//
//	x, err := tensor.FromFloat64s([]float64{1, 2, 3}, tensor.Shape{3})
func FromFloat64s(data []float64, shape Shape) (*Raw, error) {
	return tensor.FromFloat64s(data, shape)
}
