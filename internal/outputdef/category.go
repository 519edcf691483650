package outputdef

import (
	"fmt"
	"strings"
)

// Operation is a single derivation step applied to an output variable.
type Operation uint32

// Derivation operations. They combine by bitwise OR into a Category.
const (
	// OpNone applies no operation.
	OpNone Operation = 0
	// OpReduce sums a per-atom variable over local atoms into a per-system
	// variable.
	OpReduce Operation = 1
	// OpDervR differentiates with respect to atomic coordinates.
	OpDervR Operation = 2
	// OpDervC differentiates with respect to the cell tensor.
	OpDervC Operation = 4
	// OpSecDervR marks a second derivative with respect to coordinates. It is
	// never applied directly: applying OpDervR to an already-differentiated
	// variable promotes to it.
	OpSecDervR Operation = 8
	// OpMag marks the magnetic part of a derivative.
	OpMag Operation = 16
)

// String returns the name used in derived variable suffixes and errors.
func (op Operation) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpReduce:
		return "redu"
	case OpDervR:
		return "derv_r"
	case OpDervC:
		return "derv_c"
	case OpSecDervR:
		return "sec_derv_r"
	case OpMag:
		return "mag"
	default:
		return fmt.Sprintf("operation(%d)", uint32(op))
	}
}

// Category records the derivation history of an output variable as the set
// of operations that produced it from a raw fitting output.
type Category uint32

// Named derivation histories.
const (
	// CategoryOut is a raw fitting output, e.g. atom energy.
	CategoryOut Category = Category(OpNone)
	// CategoryRedu is a reduced output, e.g. system energy.
	CategoryRedu Category = Category(OpReduce)
	// CategoryDervR is the negative derivative w.r.t. coordinates, e.g. force.
	CategoryDervR Category = Category(OpDervR)
	// CategoryDervC is the atomic component of the virial.
	CategoryDervC Category = Category(OpDervC)
	// CategoryDervCRedu is the system virial.
	CategoryDervCRedu Category = Category(OpDervC | OpReduce)
	// CategoryHessian is the second derivative w.r.t. coordinates.
	CategoryHessian Category = Category(OpDervR | OpSecDervR)
	// CategoryDervRMag is the magnetic part of the coordinate derivative,
	// e.g. magnetic force.
	CategoryDervRMag Category = Category(OpDervR | OpMag)
	// CategoryDervCMag is the magnetic part of the atomic virial.
	CategoryDervCMag Category = Category(OpDervC | OpMag)
)

// Has reports whether every bit of op is present in the category.
func (c Category) Has(op Operation) bool {
	return Operation(c)&op == op
}

// String lists the applied operations, or "out" for a raw output.
func (c Category) String() string {
	if c == CategoryOut {
		return "out"
	}
	var parts []string
	for _, op := range []Operation{OpReduce, OpDervR, OpDervC, OpSecDervR, OpMag} {
		if c.Has(op) {
			parts = append(parts, op.String())
		}
	}
	return strings.Join(parts, "|")
}

// ApplyOperation returns the category of a variable derived from v by op.
//
// OpReduce and OpDervC may be applied at most once. Applying OpDervR to a
// variable that already carries it promotes the operation to OpSecDervR;
// applying it a third time is an error. Any other operation is unsupported.
func ApplyOperation(v *VarDef, op Operation) (Category, error) {
	switch op {
	case OpReduce, OpDervC:
		if OperationApplied(v, op) {
			return 0, fmt.Errorf("%w: %s on %q", ErrOperationApplied, op, v.Name())
		}
	case OpDervR:
		if OperationApplied(v, OpDervR) {
			op = OpSecDervR
			if OperationApplied(v, OpSecDervR) {
				return 0, fmt.Errorf("%w: %s on %q applied twice", ErrOperationApplied, op, v.Name())
			}
		}
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedOperation, op)
	}
	return v.Category() | Category(op), nil
}

// OperationApplied reports whether op has been applied to v.
func OperationApplied(v *VarDef, op Operation) bool {
	return v.Category().Has(op)
}

// IsDerivative reports whether v was obtained by differentiation.
func IsDerivative(v *VarDef) bool {
	return OperationApplied(v, OpDervR) ||
		OperationApplied(v, OpSecDervR) ||
		OperationApplied(v, OpDervC)
}
