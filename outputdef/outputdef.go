// Copyright 2025 DeepForce ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package outputdef

import (
	"go.uber.org/zap"

	"github.com/deepforce-ml/deepforce/internal/outputdef"
	"github.com/deepforce-ml/deepforce/internal/tensor"
)

// Type aliases for public API

// VarDef defines one output variable: name, shape, reducibility,
// differentiability and derivation history.
type VarDef = outputdef.VarDef

// Option configures a VarDef under construction.
type Option = outputdef.Option

// Defs is an insertion-ordered mapping of variable name to definition.
type Defs = outputdef.Defs

// FittingOutputDef declares the raw outputs of one fitting network.
type FittingOutputDef = outputdef.FittingOutputDef

// ModelOutputDef is the complete derived output schema of a model.
type ModelOutputDef = outputdef.ModelOutputDef

// Operation is a single derivation step.
type Operation = outputdef.Operation

// Category records the derivation history of an output variable.
type Category = outputdef.Category

// Var is any tensor-like value exposing its shape.
type Var = outputdef.Var

// Result is the named tensor mapping produced by one forward call.
type Result = outputdef.Result

// Model is a full model producing all derived quantities.
type Model = outputdef.Model

// Fitting is a fitting network producing raw per-atom outputs.
type Fitting = outputdef.Fitting

// ModelInput is the argument of a model forward call.
type ModelInput = outputdef.ModelInput

// FittingInput is the argument of a fitting-network forward call.
type FittingInput = outputdef.FittingInput

// CheckedModel validates model forward results against the schema.
type CheckedModel = outputdef.CheckedModel

// CheckedFitting validates fitting forward results against the declaration.
type CheckedFitting = outputdef.CheckedFitting

// CheckerOption configures a checking decorator.
type CheckerOption = outputdef.CheckerOption

// Derivation operations.
const (
	OpNone     Operation = outputdef.OpNone
	OpReduce   Operation = outputdef.OpReduce
	OpDervR    Operation = outputdef.OpDervR
	OpDervC    Operation = outputdef.OpDervC
	OpSecDervR Operation = outputdef.OpSecDervR
	OpMag      Operation = outputdef.OpMag
)

// Derivation-history categories.
const (
	CategoryOut       Category = outputdef.CategoryOut
	CategoryRedu      Category = outputdef.CategoryRedu
	CategoryDervR     Category = outputdef.CategoryDervR
	CategoryDervC     Category = outputdef.CategoryDervC
	CategoryDervCRedu Category = outputdef.CategoryDervCRedu
	CategoryHessian   Category = outputdef.CategoryHessian
	CategoryDervRMag  Category = outputdef.CategoryDervRMag
	CategoryDervCMag  Category = outputdef.CategoryDervCMag
)

// Error taxonomy.
var (
	ErrInvariant            = outputdef.ErrInvariant
	ErrOperationApplied     = outputdef.ErrOperationApplied
	ErrUnsupportedOperation = outputdef.ErrUnsupportedOperation
	ErrShapeMismatch        = outputdef.ErrShapeMismatch
	ErrKeyNotFound          = outputdef.ErrKeyNotFound
)

// NewVarDef validates and constructs an output variable definition.
func NewVarDef(name string, shape tensor.Shape, opts ...Option) (*VarDef, error) {
	return outputdef.NewVarDef(name, shape, opts...)
}

// VarDef construction options.

// WithReducible marks the variable as summable over local atoms.
func WithReducible(v bool) Option { return outputdef.WithReducible(v) }

// WithRDifferentiable marks differentiability w.r.t. atomic coordinates.
func WithRDifferentiable(v bool) Option { return outputdef.WithRDifferentiable(v) }

// WithCDifferentiable marks differentiability w.r.t. the cell tensor.
func WithCDifferentiable(v bool) Option { return outputdef.WithCDifferentiable(v) }

// WithAtomic controls per-atom (default) vs per-system definition.
func WithAtomic(v bool) Option { return outputdef.WithAtomic(v) }

// WithCategory sets the derivation history.
func WithCategory(c Category) Option { return outputdef.WithCategory(c) }

// WithHessian requests the second coordinate derivative.
func WithHessian(v bool) Option { return outputdef.WithHessian(v) }

// WithMagnetic marks derivatives as having magnetic parts.
func WithMagnetic(v bool) Option { return outputdef.WithMagnetic(v) }

// WithIntensive marks the reduced quantity as intensive.
func WithIntensive(v bool) Option { return outputdef.WithIntensive(v) }

// NewFittingOutputDef builds a fitting declaration from definitions.
func NewFittingOutputDef(vars ...*VarDef) *FittingOutputDef {
	return outputdef.NewFittingOutputDef(vars...)
}

// NewModelOutputDef derives the full model schema from a fitting declaration.
func NewModelOutputDef(fit *FittingOutputDef) (*ModelOutputDef, error) {
	return outputdef.NewModelOutputDef(fit)
}

// Category algebra

// ApplyOperation returns the category of a variable derived from v by op.
func ApplyOperation(v *VarDef, op Operation) (Category, error) {
	return outputdef.ApplyOperation(v, op)
}

// OperationApplied reports whether op has been applied to v.
func OperationApplied(v *VarDef, op Operation) bool {
	return outputdef.OperationApplied(v, op)
}

// IsDerivative reports whether v was obtained by differentiation.
func IsDerivative(v *VarDef) bool { return outputdef.IsDerivative(v) }

// Derived-name helpers

// ReduceName returns the name of the reduced variant of a variable.
func ReduceName(name string) string { return outputdef.ReduceName(name) }

// DerivNames returns the coordinate- and cell-derivative names.
func DerivNames(name string) (string, string) { return outputdef.DerivNames(name) }

// MagDerivNames returns the magnetic derivative names.
func MagDerivNames(name string) (string, string) { return outputdef.MagDerivNames(name) }

// HessianName returns the second-coordinate-derivative name.
func HessianName(name string) string { return outputdef.HessianName(name) }

// Validation

// CheckShape verifies a concrete shape against a declared shape.
func CheckShape(shape, defShape tensor.Shape) error {
	return outputdef.CheckShape(shape, defShape)
}

// CheckVar verifies a produced value against its definition.
func CheckVar(v Var, def *VarDef) error { return outputdef.CheckVar(v, def) }

// CheckModel decorates a model with per-call output validation.
func CheckModel(m Model, opts ...CheckerOption) *CheckedModel {
	return outputdef.CheckModel(m, opts...)
}

// CheckFitting decorates a fitting network with per-call output validation.
func CheckFitting(f Fitting, opts ...CheckerOption) *CheckedFitting {
	return outputdef.CheckFitting(f, opts...)
}

// WithLogger attaches a structured logger to a checking decorator.
func WithLogger(log *zap.Logger) CheckerOption {
	return outputdef.WithLogger(log)
}
