package outputdef

// FittingOutputDef declares the raw output variables a fitting network
// computes for each local atom. It is the contract a fitting network hands
// to the model layer, immutable after construction.
//
// Duplicate names follow declaration order: the last definition wins,
// keeping the position of the first. Callers are expected to declare unique
// names.
type FittingOutputDef struct {
	defs *Defs
}

// NewFittingOutputDef builds the declaration from a list of definitions.
func NewFittingOutputDef(vars ...*VarDef) *FittingOutputDef {
	d := newDefs()
	for _, v := range vars {
		d.put(v)
	}
	return &FittingOutputDef{defs: d}
}

// Get returns the definition under name, or ErrKeyNotFound.
func (f *FittingOutputDef) Get(name string) (*VarDef, error) {
	return f.defs.Get(name)
}

// Keys returns the declared names in declaration order.
func (f *FittingOutputDef) Keys() []string { return f.defs.Keys() }

// Len returns the number of declared variables.
func (f *FittingOutputDef) Len() int { return f.defs.Len() }

// Data returns the full ordered mapping.
func (f *FittingOutputDef) Data() *Defs { return f.defs }
