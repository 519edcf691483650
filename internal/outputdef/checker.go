package outputdef

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// Result is the named tensor mapping produced by one forward call.
type Result map[string]Var

// ModelInput is the argument of a model forward call.
type ModelInput struct {
	Coord *tensor.Raw // [nframes, nloc, 3]
	Atype *tensor.Raw // [nframes, nloc]
	Cell  *tensor.Raw // [nframes, 9], nil for non-periodic systems
}

// FittingInput is the argument of a fitting-network forward call.
type FittingInput struct {
	Descriptor *tensor.Raw // [nframes, nloc, dim]
	Atype      *tensor.Raw // [nframes, nloc]
}

// Model is a full model: it declares its derived output schema and produces
// every derived quantity per forward call.
type Model interface {
	OutputDef() *ModelOutputDef
	Forward(in ModelInput) (Result, error)
}

// Fitting is a fitting network: it declares and produces raw per-atom
// outputs only; derivatives are the model's concern.
type Fitting interface {
	OutputDef() *FittingOutputDef
	Forward(in FittingInput) (Result, error)
}

// CheckerOption configures a checking decorator.
type CheckerOption func(*checkerOptions)

type checkerOptions struct {
	log *zap.Logger
}

// WithLogger attaches a structured logger to the decorator. Validation
// failures are logged at error level before being returned.
func WithLogger(log *zap.Logger) CheckerOption {
	return func(o *checkerOptions) { o.log = log }
}

func newCheckerOptions(opts []CheckerOption) checkerOptions {
	o := checkerOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// CheckedModel wraps a Model so that every forward result is validated
// against the model's declared schema before being returned. For each raw
// output it checks the value itself, then its reduction, coordinate
// derivative and cell derivative where declared. A failure surfaces
// immediately; nothing is recovered or retried.
type CheckedModel struct {
	inner Model
	def   *ModelOutputDef
	log   *zap.Logger
}

// CheckModel decorates m. The schema is captured once at wrap time.
func CheckModel(m Model, opts ...CheckerOption) *CheckedModel {
	o := newCheckerOptions(opts)
	return &CheckedModel{inner: m, def: m.OutputDef(), log: o.log}
}

// OutputDef returns the wrapped model's schema.
func (c *CheckedModel) OutputDef() *ModelOutputDef { return c.def }

// Forward delegates to the wrapped model and validates the result.
func (c *CheckedModel) Forward(in ModelInput) (Result, error) {
	ret, err := c.inner.Forward(in)
	if err != nil {
		return nil, err
	}
	for _, k := range c.def.KeysOutp() {
		d, err := c.def.Get(k)
		if err != nil {
			return nil, err
		}
		if err := c.checkKey(ret, k); err != nil {
			return nil, err
		}
		if d.Reducible() {
			if err := c.checkKey(ret, ReduceName(k)); err != nil {
				return nil, err
			}
		}
		nameR, nameC := DerivNames(k)
		if d.RDifferentiable() {
			if err := c.checkKey(ret, nameR); err != nil {
				return nil, err
			}
		}
		if d.CDifferentiable() {
			if !d.RDifferentiable() {
				// NewVarDef rejects this combination; reaching it means the
				// definition was built outside the constructor.
				panic(fmt.Sprintf("outputdef: %q is c_differentiable but not r_differentiable", k))
			}
			if err := c.checkKey(ret, nameC); err != nil {
				return nil, err
			}
		}
	}
	return ret, nil
}

func (c *CheckedModel) checkKey(ret Result, name string) error {
	d, err := c.def.Get(name)
	if err != nil {
		c.log.Error("output check failed", zap.String("variable", name), zap.Error(err))
		return err
	}
	v, ok := ret[name]
	if !ok {
		err := fmt.Errorf("%w: %q missing from forward result", ErrKeyNotFound, name)
		c.log.Error("output check failed", zap.String("variable", name), zap.Error(err))
		return err
	}
	if err := CheckVar(v, d); err != nil {
		c.log.Error("output check failed", zap.String("variable", name), zap.Error(err))
		return err
	}
	return nil
}

// CheckedFitting wraps a Fitting so that every forward result is validated
// against the fitting declaration. All declared keys are checked; a fitting
// network computes no derived quantities.
type CheckedFitting struct {
	inner Fitting
	def   *FittingOutputDef
	log   *zap.Logger
}

// CheckFitting decorates f. The declaration is captured once at wrap time.
func CheckFitting(f Fitting, opts ...CheckerOption) *CheckedFitting {
	o := newCheckerOptions(opts)
	return &CheckedFitting{inner: f, def: f.OutputDef(), log: o.log}
}

// OutputDef returns the wrapped fitting network's declaration.
func (c *CheckedFitting) OutputDef() *FittingOutputDef { return c.def }

// Forward delegates to the wrapped fitting network and validates the result.
func (c *CheckedFitting) Forward(in FittingInput) (Result, error) {
	ret, err := c.inner.Forward(in)
	if err != nil {
		return nil, err
	}
	for _, k := range c.def.Keys() {
		d, err := c.def.Get(k)
		if err != nil {
			return nil, err
		}
		v, ok := ret[k]
		if !ok {
			err := fmt.Errorf("%w: %q missing from forward result", ErrKeyNotFound, k)
			c.log.Error("output check failed", zap.String("variable", k), zap.Error(err))
			return nil, err
		}
		if err := CheckVar(v, d); err != nil {
			c.log.Error("output check failed", zap.String("variable", k), zap.Error(err))
			return nil, err
		}
	}
	return ret, nil
}
