// Package fitting declares the output contracts of the standard DeepForce
// property heads. Each constructor returns the FittingOutputDef a fitting
// network of that kind hands to the model layer; the network's forward pass
// itself lives behind the outputdef.Fitting interface.
package fitting

import (
	"fmt"

	"github.com/deepforce-ml/deepforce/internal/outputdef"
	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// mustVar is for declarations built from compile-time constants only.
func mustVar(name string, shape tensor.Shape, opts ...outputdef.Option) *outputdef.VarDef {
	v, err := outputdef.NewVarDef(name, shape, opts...)
	if err != nil {
		panic(fmt.Sprintf("fitting: invalid built-in declaration %q: %v", name, err))
	}
	return v
}

// Energy declares a per-atom energy head: a reducible scalar,
// differentiable w.r.t. coordinates (force) and cell (virial). When hessian
// is set the second coordinate derivative is derived as well.
func Energy(hessian bool) *outputdef.FittingOutputDef {
	return outputdef.NewFittingOutputDef(
		mustVar("energy", tensor.Shape{1},
			outputdef.WithReducible(true),
			outputdef.WithRDifferentiable(true),
			outputdef.WithCDifferentiable(true),
			outputdef.WithHessian(hessian),
		),
	)
}

// SpinEnergy declares the energy head of a spin model: like Energy, with
// magnetic parts for every derivative and a magnetic validity mask.
func SpinEnergy() *outputdef.FittingOutputDef {
	return outputdef.NewFittingOutputDef(
		mustVar("energy", tensor.Shape{1},
			outputdef.WithReducible(true),
			outputdef.WithRDifferentiable(true),
			outputdef.WithCDifferentiable(true),
			outputdef.WithMagnetic(true),
		),
	)
}

// Dipole declares a per-atom dipole head: a reducible 3-vector whose
// differentiability is configurable per model.
func Dipole(rDifferentiable, cDifferentiable bool) *outputdef.FittingOutputDef {
	return outputdef.NewFittingOutputDef(
		mustVar("dipole", tensor.Shape{3},
			outputdef.WithReducible(true),
			outputdef.WithRDifferentiable(rDifferentiable),
			outputdef.WithCDifferentiable(cDifferentiable),
		),
	)
}

// Polarizability declares a per-atom polarizability head: a reducible 3x3
// tensor, not differentiated.
func Polarizability() *outputdef.FittingOutputDef {
	return outputdef.NewFittingOutputDef(
		mustVar("polarizability", tensor.Shape{3, 3},
			outputdef.WithReducible(true),
		),
	)
}

// DOS declares a density-of-states head: a reducible per-atom vector whose
// length (the number of grid points) is left unconstrained.
func DOS() *outputdef.FittingOutputDef {
	return outputdef.NewFittingOutputDef(
		mustVar("dos", tensor.Shape{-1},
			outputdef.WithReducible(true),
		),
	)
}

// Property declares a generic reducible per-atom property head of the given
// shape. Intensive properties average over atoms instead of summing.
func Property(name string, shape tensor.Shape, intensive bool) (*outputdef.FittingOutputDef, error) {
	v, err := outputdef.NewVarDef(name, shape,
		outputdef.WithReducible(true),
		outputdef.WithIntensive(intensive),
	)
	if err != nil {
		return nil, err
	}
	return outputdef.NewFittingOutputDef(v), nil
}
