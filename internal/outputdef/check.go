package outputdef

import (
	"fmt"

	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// Var is any tensor-like value exposing its shape. *tensor.Raw satisfies it;
// so does any external backend's tensor type.
type Var interface {
	Shape() tensor.Shape
}

// CheckShape verifies a concrete shape against a declared shape. Ranks must
// match exactly; a -1 entry in the declared shape leaves that dimension
// unconstrained and every other entry must match positionally.
func CheckShape(shape, defShape tensor.Shape) error {
	if len(shape) != len(defShape) {
		return fmt.Errorf("%w: rank %d does not match definition %v", ErrShapeMismatch, len(shape), defShape)
	}
	for i := range defShape {
		if defShape[i] == -1 {
			continue
		}
		if shape[i] != defShape[i] {
			return fmt.Errorf("%w: %v does not match definition %v", ErrShapeMismatch, shape, defShape)
		}
	}
	return nil
}

// CheckVar verifies a produced value against its definition. Atomic
// variables carry leading [nframes, nloc] dimensions, per-system variables
// a leading [nframes]. A rank mismatch after stripping the leading
// dimensions fails distinctly from a dimension-content mismatch.
func CheckVar(v Var, def *VarDef) error {
	shape := v.Shape()
	lead := 1
	if def.Atomic() {
		lead = 2
	}
	if len(shape) != len(def.Shape())+lead {
		return fmt.Errorf("%w: variable %q: rank %d does not match definition %v with %d leading dimensions",
			ErrShapeMismatch, def.Name(), len(shape), def.Shape(), lead)
	}
	if err := CheckShape(shape[lead:], def.Shape()); err != nil {
		return fmt.Errorf("variable %q: %w", def.Name(), err)
	}
	return nil
}
