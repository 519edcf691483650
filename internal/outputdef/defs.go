package outputdef

import "fmt"

// Defs is an insertion-ordered mapping of variable name to definition.
// Ordering matters: derivation and validation walk definitions in
// declaration order, and the merged model schema must be deterministic.
type Defs struct {
	keys []string
	vars map[string]*VarDef
}

func newDefs() *Defs {
	return &Defs{vars: make(map[string]*VarDef)}
}

// put inserts v under its name. Replacing an existing name keeps its
// position (last declaration wins).
func (d *Defs) put(v *VarDef) {
	if _, ok := d.vars[v.Name()]; !ok {
		d.keys = append(d.keys, v.Name())
	}
	d.vars[v.Name()] = v
}

// Get returns the definition under name, or ErrKeyNotFound.
func (d *Defs) Get(name string) (*VarDef, error) {
	v, ok := d.vars[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return v, nil
}

// Has reports whether name is present.
func (d *Defs) Has(name string) bool {
	_, ok := d.vars[name]
	return ok
}

// Keys returns the names in insertion order.
func (d *Defs) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Len returns the number of definitions.
func (d *Defs) Len() int { return len(d.keys) }
