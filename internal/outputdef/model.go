package outputdef

import "fmt"

// ModelOutputDef is the complete output schema of a model, derived once
// from a fitting declaration. If a fitting variable is named foo, the
// reduced variable is foo_redu, the coordinate derivative foo_derv_r, the
// cell derivative foo_derv_c, its reduction foo_derv_c_redu and the second
// coordinate derivative foo_derv_r_derv_r.
//
// The schema is immutable after construction and safe for concurrent
// read-only use.
type ModelOutputDef struct {
	outp      *FittingOutputDef
	redu      *Defs
	dervR     *Defs
	dervC     *Defs
	hessR     *Defs
	dervCRedu *Defs
	mask      *Defs
	vars      *Defs
}

// NewModelOutputDef derives the full schema from a fitting declaration:
// reductions, coordinate and cell derivatives, the Hessian (obtained by
// feeding the coordinate derivatives through derivation a second time),
// reduced cell derivatives and masks. The sub-mappings are merged into one
// flat mapping in that fixed order; a colliding derived name is an
// ErrInvariant rather than a silent overwrite.
func NewModelOutputDef(fit *FittingOutputDef) (*ModelOutputDef, error) {
	redu, err := reduceDefs(fit.Data())
	if err != nil {
		return nil, err
	}
	dervR, dervC, err := deriveDefs(fit.Data())
	if err != nil {
		return nil, err
	}
	hessR, _, err := deriveDefs(dervR)
	if err != nil {
		return nil, err
	}
	dervCRedu, err := reduceDefs(dervC)
	if err != nil {
		return nil, err
	}
	mask, err := maskDefs(fit.Data())
	if err != nil {
		return nil, err
	}
	md := &ModelOutputDef{
		outp:      fit,
		redu:      redu,
		dervR:     dervR,
		dervC:     dervC,
		hessR:     hessR,
		dervCRedu: dervCRedu,
		mask:      mask,
		vars:      newDefs(),
	}
	for _, sub := range []*Defs{
		fit.Data(),
		redu,
		dervC,
		dervR,
		dervCRedu,
		hessR,
		mask,
	} {
		for _, k := range sub.Keys() {
			if md.vars.Has(k) {
				return nil, fmt.Errorf("%w: derived name %q collides with an earlier definition", ErrInvariant, k)
			}
			v, err := sub.Get(k)
			if err != nil {
				return nil, err
			}
			md.vars.put(v)
		}
	}
	return md, nil
}

// Get returns the definition under name from the flat mapping, or
// ErrKeyNotFound.
func (m *ModelOutputDef) Get(name string) (*VarDef, error) {
	return m.vars.Get(name)
}

// Data returns the flat merged mapping of all output variables.
func (m *ModelOutputDef) Data() *Defs { return m.vars }

// Keys returns all output names in merge order.
func (m *ModelOutputDef) Keys() []string { return m.vars.Keys() }

// KeysOutp returns the raw fitting-output names.
func (m *ModelOutputDef) KeysOutp() []string { return m.outp.Keys() }

// KeysRedu returns the reduced-output names.
func (m *ModelOutputDef) KeysRedu() []string { return m.redu.Keys() }

// KeysDervR returns the coordinate-derivative names, including magnetic
// twins.
func (m *ModelOutputDef) KeysDervR() []string { return m.dervR.Keys() }

// KeysHessR returns the second-coordinate-derivative names.
func (m *ModelOutputDef) KeysHessR() []string { return m.hessR.Keys() }

// KeysDervC returns the cell-derivative names.
func (m *ModelOutputDef) KeysDervC() []string { return m.dervC.Keys() }

// KeysDervCRedu returns the reduced cell-derivative names.
func (m *ModelOutputDef) KeysDervCRedu() []string { return m.dervCRedu.Keys() }

// KeysMask returns the validity-mask names.
func (m *ModelOutputDef) KeysMask() []string { return m.mask.Keys() }
