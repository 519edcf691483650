package outputdef

import "github.com/deepforce-ml/deepforce/internal/tensor"

// ReduceName returns the name of the reduced variant of a variable.
func ReduceName(name string) string { return name + "_redu" }

// DerivNames returns the coordinate- and cell-derivative names of a variable.
func DerivNames(name string) (r string, c string) {
	return name + "_derv_r", name + "_derv_c"
}

// MagDerivNames returns the magnetic coordinate- and cell-derivative names.
func MagDerivNames(name string) (r string, c string) {
	return name + "_derv_r_mag", name + "_derv_c_mag"
}

// HessianName returns the second-coordinate-derivative name of a variable.
func HessianName(name string) string { return name + "_derv_r_derv_r" }

// reduceDefs derives the per-system reduction of every reducible variable.
// Reduced variables are per-system and carry no further differentiability.
func reduceDefs(defs *Defs) (*Defs, error) {
	out := newDefs()
	for _, k := range defs.Keys() {
		v, err := defs.Get(k)
		if err != nil {
			return nil, err
		}
		if !v.Reducible() {
			continue
		}
		cat, err := ApplyOperation(v, OpReduce)
		if err != nil {
			return nil, err
		}
		rv, err := NewVarDef(ReduceName(k), v.Shape(),
			WithAtomic(false),
			WithCategory(cat),
		)
		if err != nil {
			return nil, err
		}
		out.put(rv)
	}
	return out, nil
}

// deriveDefs derives the coordinate and cell derivatives of every
// differentiable variable, returning them as separate mappings.
//
// A coordinate derivative appends a dimension of 3 and stays per-atom; it
// remains differentiable only when the source requested a Hessian and is
// itself a raw output, bounding the recursion at one further pass. A cell
// derivative appends a dimension of 9, stays per-atom and is reducible (the
// per-atom virial sums to the system virial). Magnetic variables get a
// magnetic twin of each derivative; the magnetic cell derivative is
// bookkept in the coordinate-derivative mapping.
func deriveDefs(defs *Defs) (dervR *Defs, dervC *Defs, err error) {
	dervR, dervC = newDefs(), newDefs()
	for _, k := range defs.Keys() {
		v, err := defs.Get(k)
		if err != nil {
			return nil, nil, err
		}
		nameR, nameC := DerivNames(k)
		nameRMag, nameCMag := MagDerivNames(k)
		if v.RDifferentiable() {
			cat, err := ApplyOperation(v, OpDervR)
			if err != nil {
				return nil, nil, err
			}
			chain := v.RHessian() && v.Category() == CategoryOut
			d, err := NewVarDef(nameR, append(v.Shape().Clone(), 3),
				WithRDifferentiable(chain),
				WithCategory(cat),
			)
			if err != nil {
				return nil, nil, err
			}
			dervR.put(d)
			if v.Magnetic() {
				dm, err := NewVarDef(nameRMag, append(v.Shape().Clone(), 3),
					WithRDifferentiable(chain),
					WithCategory(cat),
					WithMagnetic(true),
				)
				if err != nil {
					return nil, nil, err
				}
				dervR.put(dm)
			}
		}
		if v.CDifferentiable() {
			cat, err := ApplyOperation(v, OpDervC)
			if err != nil {
				return nil, nil, err
			}
			c, err := NewVarDef(nameC, append(v.Shape().Clone(), 9),
				WithReducible(true),
				WithCategory(cat),
			)
			if err != nil {
				return nil, nil, err
			}
			dervC.put(c)
			if v.Magnetic() {
				cm, err := NewVarDef(nameCMag, append(v.Shape().Clone(), 9),
					WithReducible(true),
					WithCategory(cat),
					WithMagnetic(true),
				)
				if err != nil {
					return nil, nil, err
				}
				dervR.put(cm)
			}
		}
	}
	return dervR, dervC, nil
}

// maskDefs derives the per-atom validity masks: "mask" always, "mask_mag"
// when any variable is magnetic. Evaluation consumers use them to know
// which atoms contributed valid outputs.
func maskDefs(defs *Defs) (*Defs, error) {
	out := newDefs()
	m, err := NewVarDef("mask", tensor.Shape{1})
	if err != nil {
		return nil, err
	}
	out.put(m)
	for _, k := range defs.Keys() {
		v, err := defs.Get(k)
		if err != nil {
			return nil, err
		}
		if !v.Magnetic() {
			continue
		}
		mm, err := NewVarDef("mask_mag", tensor.Shape{1})
		if err != nil {
			return nil, err
		}
		out.put(mm)
		break
	}
	return out, nil
}
