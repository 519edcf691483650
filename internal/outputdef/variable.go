// Package outputdef is the single source of truth for the output schema of a
// DeepForce model. A fitting network declares its raw per-atom outputs as a
// FittingOutputDef; ModelOutputDef derives from it the complete family of
// quantities a model must expose (reductions, coordinate and cell
// derivatives, the Hessian, magnetic twins and validity masks) and the
// checking decorators validate every forward result against that schema.
package outputdef

import (
	"fmt"
	"strings"

	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// Derived names are generated by appending these suffixes, so a base-level
// definition must not use them.
var reservedSuffixes = []string{
	"_redu",
	"_derv_r",
	"_derv_c",
	"_derv_r_mag",
	"_derv_c_mag",
	"_derv_r_derv_r",
}

// VarDef defines one output variable of a fitting network or model: its
// name, per-atom shape, reducibility, differentiability and derivation
// history. Fitting networks produce their variables for each local atom
// unless WithAtomic(false) marks a variable as per-system.
type VarDef struct {
	name            string
	shape           tensor.Shape
	outputSize      int
	reducible       bool
	rDifferentiable bool
	cDifferentiable bool
	atomic          bool
	category        Category
	rHessian        bool
	magnetic        bool
	intensive       bool
}

// Option configures a VarDef under construction.
type Option func(*VarDef)

// WithReducible marks the variable as summable over local atoms into a
// per-system quantity.
func WithReducible(v bool) Option { return func(d *VarDef) { d.reducible = v } }

// WithRDifferentiable marks the variable as differentiable with respect to
// atomic coordinates. The negative derivative (e.g. force) is derived.
func WithRDifferentiable(v bool) Option { return func(d *VarDef) { d.rDifferentiable = v } }

// WithCDifferentiable marks the variable as differentiable with respect to
// the cell tensor. The virial is derived. Requires WithRDifferentiable.
func WithCDifferentiable(v bool) Option { return func(d *VarDef) { d.cDifferentiable = v } }

// WithAtomic controls whether the variable is defined per local atom
// (default) or once per system.
func WithAtomic(v bool) Option { return func(d *VarDef) { d.atomic = v } }

// WithCategory sets the derivation history. Derivation rules use it when
// constructing derived definitions; base declarations leave it at
// CategoryOut.
func WithCategory(c Category) Option { return func(d *VarDef) { d.category = c } }

// WithHessian requests the second coordinate derivative of the variable.
func WithHessian(v bool) Option { return func(d *VarDef) { d.rHessian = v } }

// WithMagnetic marks the variable's derivatives as having magnetic parts.
func WithMagnetic(v bool) Option { return func(d *VarDef) { d.magnetic = v } }

// WithIntensive marks the reduced quantity as intensive rather than
// extensive.
func WithIntensive(v bool) Option { return func(d *VarDef) { d.intensive = v } }

// NewVarDef validates and constructs an output variable definition.
//
// The shape may end in the -1 wildcard, leaving the trailing dimension
// unconstrained. The structural invariants are checked here and nowhere
// else: cell differentiability requires coordinate differentiability, only
// per-atom variables are reducible, intensive and Hessian-carrying variables
// must be reducible, and a base-level name must not end in a reserved
// derivation suffix.
func NewVarDef(name string, shape tensor.Shape, opts ...Option) (*VarDef, error) {
	d := &VarDef{
		name:     name,
		shape:    shape.Clone(),
		atomic:   true,
		category: CategoryOut,
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.shape.ValidateDef(); err != nil {
		return nil, fmt.Errorf("%w: variable %q: %v", ErrInvariant, name, err)
	}
	d.outputSize = d.shape.NumElements()
	if d.cDifferentiable && !d.rDifferentiable {
		return nil, fmt.Errorf("%w: %q: c_differentiable requires r_differentiable", ErrInvariant, name)
	}
	if d.reducible && !d.atomic {
		return nil, fmt.Errorf("%w: %q: a reducible variable must be atomic", ErrInvariant, name)
	}
	if d.intensive && !d.reducible {
		return nil, fmt.Errorf("%w: %q: an intensive variable must be reducible", ErrInvariant, name)
	}
	if d.rHessian {
		if !d.reducible {
			return nil, fmt.Errorf("%w: %q: only a reducible variable can carry a hessian", ErrInvariant, name)
		}
		if !d.rDifferentiable {
			return nil, fmt.Errorf("%w: %q: only an r_differentiable variable can carry a hessian", ErrInvariant, name)
		}
	}
	if d.category == CategoryOut {
		for _, suffix := range reservedSuffixes {
			if strings.HasSuffix(name, suffix) {
				return nil, fmt.Errorf("%w: %q: name ends in reserved derivation suffix %q", ErrInvariant, name, suffix)
			}
		}
	}
	return d, nil
}

// Name returns the variable name, unique within a schema.
func (d *VarDef) Name() string { return d.name }

// Shape returns the declared per-atom (or per-system) shape.
func (d *VarDef) Shape() tensor.Shape { return d.shape }

// Size returns the element count of the declared shape, or -1 when the
// shape carries the trailing wildcard.
func (d *VarDef) Size() int { return d.outputSize }

// Reducible reports whether the variable is summed over local atoms.
func (d *VarDef) Reducible() bool { return d.reducible }

// RDifferentiable reports differentiability w.r.t. atomic coordinates.
func (d *VarDef) RDifferentiable() bool { return d.rDifferentiable }

// CDifferentiable reports differentiability w.r.t. the cell tensor.
func (d *VarDef) CDifferentiable() bool { return d.cDifferentiable }

// Atomic reports whether the variable is defined per local atom.
func (d *VarDef) Atomic() bool { return d.atomic }

// Category returns the derivation history of the variable.
func (d *VarDef) Category() Category { return d.category }

// RHessian reports whether the second coordinate derivative is requested.
func (d *VarDef) RHessian() bool { return d.rHessian }

// Magnetic reports whether derivatives of the variable have magnetic parts.
func (d *VarDef) Magnetic() bool { return d.magnetic }

// Intensive reports whether the reduced quantity is intensive.
func (d *VarDef) Intensive() bool { return d.intensive }

// Squeeze removes the dimension at dim if it exists and has size 1.
// Negative dim counts from the end. Any other dim is a no-op. The element
// count is unchanged since only unit dimensions are removed.
func (d *VarDef) Squeeze(dim int) {
	n := len(d.shape)
	if dim < 0 {
		dim += n
	}
	if dim < 0 || dim >= n || d.shape[dim] != 1 {
		return
	}
	d.shape = append(d.shape[:dim], d.shape[dim+1:]...)
}
