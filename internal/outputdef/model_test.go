package outputdef

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepforce-ml/deepforce/internal/tensor"
)

func energyFittingDef(t *testing.T, opts ...Option) *FittingOutputDef {
	t.Helper()
	base := []Option{
		WithReducible(true),
		WithRDifferentiable(true),
		WithCDifferentiable(true),
	}
	v, err := NewVarDef("energy", tensor.Shape{1}, append(base, opts...)...)
	require.NoError(t, err)
	return NewFittingOutputDef(v)
}

func TestFittingOutputDef(t *testing.T) {
	fit := energyFittingDef(t)

	assert.Equal(t, []string{"energy"}, fit.Keys())
	assert.Equal(t, 1, fit.Len())

	v, err := fit.Get("energy")
	require.NoError(t, err)
	assert.Equal(t, "energy", v.Name())

	_, err = fit.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFittingOutputDef_DuplicateLastWins(t *testing.T) {
	a, err := NewVarDef("energy", tensor.Shape{1})
	require.NoError(t, err)
	b, err := NewVarDef("energy", tensor.Shape{1}, WithReducible(true))
	require.NoError(t, err)

	fit := NewFittingOutputDef(a, b)
	assert.Equal(t, []string{"energy"}, fit.Keys())
	v, err := fit.Get("energy")
	require.NoError(t, err)
	assert.True(t, v.Reducible())
}

func TestModelOutputDef_Energy(t *testing.T) {
	md, err := NewModelOutputDef(energyFittingDef(t))
	require.NoError(t, err)

	want := []string{
		"energy",
		"energy_redu",
		"energy_derv_c",
		"energy_derv_r",
		"energy_derv_c_redu",
		"mask",
	}
	if diff := cmp.Diff(want, md.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, []string{"energy"}, md.KeysOutp())
	assert.Equal(t, []string{"energy_redu"}, md.KeysRedu())
	assert.Equal(t, []string{"energy_derv_r"}, md.KeysDervR())
	assert.Equal(t, []string{"energy_derv_c"}, md.KeysDervC())
	assert.Equal(t, []string{"energy_derv_c_redu"}, md.KeysDervCRedu())
	assert.Equal(t, []string{"mask"}, md.KeysMask())
	assert.Empty(t, md.KeysHessR(), "no hessian requested")
}

func TestModelOutputDef_DerivedProperties(t *testing.T) {
	md, err := NewModelOutputDef(energyFittingDef(t))
	require.NoError(t, err)

	redu, err := md.Get("energy_redu")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, redu.Shape())
	assert.False(t, redu.Atomic(), "reduced output is per-system")
	assert.False(t, redu.Reducible())
	assert.False(t, redu.RDifferentiable())
	assert.Equal(t, CategoryRedu, redu.Category())

	dervR, err := md.Get("energy_derv_r")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, dervR.Shape())
	assert.True(t, dervR.Atomic())
	assert.False(t, dervR.RDifferentiable(), "derivation stops without a hessian request")
	assert.Equal(t, CategoryDervR, dervR.Category())
	assert.True(t, IsDerivative(dervR))

	dervC, err := md.Get("energy_derv_c")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 9}, dervC.Shape())
	assert.True(t, dervC.Atomic())
	assert.True(t, dervC.Reducible(), "per-atom virial reduces to system virial")
	assert.Equal(t, CategoryDervC, dervC.Category())

	virial, err := md.Get("energy_derv_c_redu")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 9}, virial.Shape())
	assert.False(t, virial.Atomic())
	assert.Equal(t, CategoryDervCRedu, virial.Category())

	mask, err := md.Get("mask")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, mask.Shape())
	assert.True(t, mask.Atomic())
	assert.Equal(t, CategoryOut, mask.Category())
}

func TestModelOutputDef_Hessian(t *testing.T) {
	md, err := NewModelOutputDef(energyFittingDef(t, WithHessian(true)))
	require.NoError(t, err)

	assert.Equal(t, []string{"energy_derv_r_derv_r"}, md.KeysHessR())

	hess, err := md.Get("energy_derv_r_derv_r")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3, 3}, hess.Shape())
	assert.True(t, hess.Atomic())
	assert.Equal(t, CategoryHessian, hess.Category())
	assert.False(t, hess.RDifferentiable(), "a third derivative is never derived")

	// with a hessian requested, the first derivative stays differentiable
	dervR, err := md.Get("energy_derv_r")
	require.NoError(t, err)
	assert.True(t, dervR.RDifferentiable())
}

func TestModelOutputDef_Magnetic(t *testing.T) {
	v, err := NewVarDef("energy", tensor.Shape{1},
		WithReducible(true),
		WithRDifferentiable(true),
		WithCDifferentiable(true),
		WithMagnetic(true),
	)
	require.NoError(t, err)
	md, err := NewModelOutputDef(NewFittingOutputDef(v))
	require.NoError(t, err)

	// magnetic twins live in the coordinate-derivative mapping, including
	// the magnetic cell derivative
	assert.Equal(t, []string{
		"energy_derv_r",
		"energy_derv_r_mag",
		"energy_derv_c_mag",
	}, md.KeysDervR())
	assert.Equal(t, []string{"energy_derv_c"}, md.KeysDervC())
	assert.Equal(t, []string{"mask", "mask_mag"}, md.KeysMask())

	magR, err := md.Get("energy_derv_r_mag")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 3}, magR.Shape())
	assert.True(t, magR.Magnetic())
	assert.Equal(t, CategoryDervR, magR.Category())

	magC, err := md.Get("energy_derv_c_mag")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1, 9}, magC.Shape())
	assert.True(t, magC.Magnetic())
	assert.True(t, magC.Reducible())
}

func TestModelOutputDef_Wildcard(t *testing.T) {
	dos, err := NewVarDef("dos", tensor.Shape{-1}, WithReducible(true))
	require.NoError(t, err)
	md, err := NewModelOutputDef(NewFittingOutputDef(dos))
	require.NoError(t, err)

	want := []string{"dos", "dos_redu", "mask"}
	if diff := cmp.Diff(want, md.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
	redu, err := md.Get("dos_redu")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{-1}, redu.Shape())
	assert.Equal(t, -1, redu.Size())
}

func TestModelOutputDef_MultipleVariables(t *testing.T) {
	energy, err := NewVarDef("energy", tensor.Shape{1},
		WithReducible(true),
		WithRDifferentiable(true),
		WithCDifferentiable(true),
	)
	require.NoError(t, err)
	dipole, err := NewVarDef("dipole", tensor.Shape{3}, WithReducible(true))
	require.NoError(t, err)

	md, err := NewModelOutputDef(NewFittingOutputDef(energy, dipole))
	require.NoError(t, err)

	want := []string{
		"energy", "dipole",
		"energy_redu", "dipole_redu",
		"energy_derv_c",
		"energy_derv_r",
		"energy_derv_c_redu",
		"mask",
	}
	if diff := cmp.Diff(want, md.Keys()); diff != "" {
		t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
	}
}

func TestModelOutputDef_Deterministic(t *testing.T) {
	build := func() *ModelOutputDef {
		md, err := NewModelOutputDef(energyFittingDef(t, WithHessian(true)))
		require.NoError(t, err)
		return md
	}
	a, b := build(), build()

	require.Equal(t, a.Keys(), b.Keys())
	for _, k := range a.Keys() {
		va, err := a.Get(k)
		require.NoError(t, err)
		vb, err := b.Get(k)
		require.NoError(t, err)
		assert.Equal(t, va.Shape(), vb.Shape(), k)
		assert.Equal(t, va.Category(), vb.Category(), k)
		assert.Equal(t, va.Atomic(), vb.Atomic(), k)
	}
}

func TestModelOutputDef_InputNotMutated(t *testing.T) {
	fit := energyFittingDef(t)
	before, err := fit.Get("energy")
	require.NoError(t, err)
	cat := before.Category()

	_, err = NewModelOutputDef(fit)
	require.NoError(t, err)

	after, err := fit.Get("energy")
	require.NoError(t, err)
	assert.Equal(t, cat, after.Category(), "derivation must not mutate its input")
	assert.Equal(t, tensor.Shape{1}, after.Shape())
}
