// Package eval is the consumer side of the output schema: given a derived
// model schema and a base variable name, it resolves which output names the
// model exposes for the physical quantities built on that variable, so an
// evaluation caller knows which named tensors to request.
package eval

import (
	"fmt"

	"github.com/deepforce-ml/deepforce/internal/outputdef"
)

// Plan lists the output names a model exposes for one base variable. An
// empty field means the schema does not derive that quantity.
type Plan struct {
	// Value is the per-atom raw output (the base name itself).
	Value string
	// Reduced is the per-system sum, e.g. the system energy.
	Reduced string
	// Force is the negative coordinate derivative.
	Force string
	// MagForce is the magnetic part of the coordinate derivative.
	MagForce string
	// AtomVirial is the per-atom cell derivative.
	AtomVirial string
	// Virial is the per-system reduction of the cell derivative.
	Virial string
	// Hessian is the second coordinate derivative.
	Hessian string
	// Mask is the per-atom validity indicator, always present.
	Mask string
	// MagMask is the magnetic validity indicator.
	MagMask string
}

// Resolve builds the Plan for base against def. Every resolved name is
// verified to exist in the schema, so an inconsistency between the
// derivation rules and the flags surfaces here rather than at tensor
// lookup time.
func Resolve(def *outputdef.ModelOutputDef, base string) (Plan, error) {
	v, err := def.Get(base)
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Value: base, Mask: "mask"}
	nameR, nameC := outputdef.DerivNames(base)
	if v.Reducible() {
		p.Reduced = outputdef.ReduceName(base)
	}
	if v.RDifferentiable() {
		p.Force = nameR
	}
	if v.CDifferentiable() {
		p.AtomVirial = nameC
		p.Virial = outputdef.ReduceName(nameC)
	}
	if v.RHessian() {
		p.Hessian = outputdef.HessianName(base)
	}
	if v.Magnetic() {
		p.MagMask = "mask_mag"
		if v.RDifferentiable() {
			magR, _ := outputdef.MagDerivNames(base)
			p.MagForce = magR
		}
	}
	for _, name := range []string{
		p.Value, p.Reduced, p.Force, p.MagForce,
		p.AtomVirial, p.Virial, p.Hessian, p.Mask, p.MagMask,
	} {
		if name == "" {
			continue
		}
		if _, err := def.Get(name); err != nil {
			return Plan{}, fmt.Errorf("resolving %q: %w", base, err)
		}
	}
	return p, nil
}
