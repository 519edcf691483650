// Copyright 2025 DeepForce ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package outputdef defines and validates the output schema of a DeepForce
// model.
//
// # Overview
//
// A fitting network declares the raw quantities it computes for each local
// atom as a FittingOutputDef. From that declaration, ModelOutputDef derives
// everything a full model must expose: per-system reductions, derivatives
// with respect to atomic coordinates (forces) and the cell tensor (virial),
// second derivatives (Hessian), magnetic variants and per-atom validity
// masks. The checking decorators validate every forward result against the
// schema before it reaches the caller.
//
// # Basic Usage
//
//	import (
//	    "github.com/deepforce-ml/deepforce/outputdef"
//	    "github.com/deepforce-ml/deepforce/tensor"
//	)
//
//	func main() {
//	    energy, err := outputdef.NewVarDef("energy", tensor.Shape{1},
//	        outputdef.WithReducible(true),
//	        outputdef.WithRDifferentiable(true),
//	        outputdef.WithCDifferentiable(true),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    md, err := outputdef.NewModelOutputDef(outputdef.NewFittingOutputDef(energy))
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(md.Keys())
//	    // [energy energy_redu energy_derv_c energy_derv_r energy_derv_c_redu mask]
//	}
//
// # Checked Forward Calls
//
//	checked := outputdef.CheckModel(myModel)
//	out, err := checked.Forward(in) // shapes validated before returning
package outputdef
