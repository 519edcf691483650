// Copyright 2025 DeepForce ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor substrate of the DeepForce framework.
//
// # Overview
//
// The schema layer of DeepForce works with named tensors: a forward pass
// returns a mapping from output-variable name to a tensor-like value, and
// the output checker inspects shapes only. This package provides:
//   - Shape: tensor dimensions, with the trailing -1 wildcard used by
//     declared variable shapes
//   - DataType: runtime type information
//   - Raw: a dense in-memory tensor sufficient for producers and tests
//
// # Basic Usage
//
//	import "github.com/deepforce-ml/deepforce/tensor"
//
//	func main() {
//	    // A per-atom scalar over 2 frames of 5 atoms
//	    x, err := tensor.NewRaw(tensor.Shape{2, 5, 1}, tensor.Float64)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Shape()) // [2 5 1]
//	}
package tensor
