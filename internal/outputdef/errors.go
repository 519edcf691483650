package outputdef

import "errors"

// Error taxonomy of the output-definition layer. Every failure here is
// deterministic and fatal: schema construction and output validation have no
// transient or I/O-dependent paths, so nothing is ever retried.
var (
	// ErrInvariant reports a variable definition whose flags violate a
	// structural rule, or a derived-name collision during schema merge.
	ErrInvariant = errors.New("output variable invariant violated")

	// ErrOperationApplied reports a repeated reduce or cell-derivative, or a
	// third coordinate-derivative, in the category algebra.
	ErrOperationApplied = errors.New("operation already applied")

	// ErrUnsupportedOperation reports a category operation the algebra does
	// not define a transition for.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrShapeMismatch reports a produced tensor whose shape disagrees with
	// its declared definition, in rank or in content.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrKeyNotFound reports a lookup of an undeclared variable name, or a
	// declared name missing from a forward result.
	ErrKeyNotFound = errors.New("output variable not found")
)
