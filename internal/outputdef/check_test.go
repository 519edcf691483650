package outputdef

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepforce-ml/deepforce/internal/tensor"
)

func TestCheckShape(t *testing.T) {
	tests := []struct {
		name     string
		shape    tensor.Shape
		defShape tensor.Shape
		wantErr  bool
	}{
		{"exact match", tensor.Shape{4, 5}, tensor.Shape{4, 5}, false},
		{"leading wildcard", tensor.Shape{4, 5}, tensor.Shape{-1, 5}, false},
		{"trailing wildcard", tensor.Shape{4, 5}, tensor.Shape{4, -1}, false},
		{"content mismatch", tensor.Shape{4, 5}, tensor.Shape{3, 5}, true},
		{"rank mismatch", tensor.Shape{4}, tensor.Shape{4, 5}, true},
		{"wildcard with mismatch elsewhere", tensor.Shape{4, 5}, tensor.Shape{-1, 6}, true},
		{"scalar", tensor.Shape{}, tensor.Shape{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckShape(tt.shape, tt.defShape)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrShapeMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func atomicEnergyDef(t *testing.T) *VarDef {
	t.Helper()
	v, err := NewVarDef("energy", tensor.Shape{1}, WithReducible(true))
	require.NoError(t, err)
	return v
}

func TestCheckVar_Atomic(t *testing.T) {
	def := atomicEnergyDef(t)

	// [nframes, nloc, 1]
	good, err := tensor.NewRaw(tensor.Shape{2, 5, 1}, tensor.Float64)
	require.NoError(t, err)
	assert.NoError(t, CheckVar(good, def))

	// missing the per-variable dimension: rank failure
	short, err := tensor.NewRaw(tensor.Shape{2, 5}, tensor.Float64)
	require.NoError(t, err)
	err = CheckVar(short, def)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.True(t, strings.Contains(err.Error(), "rank"), "rank failure should be reported as such: %v", err)

	// right rank, wrong content
	bad, err := tensor.NewRaw(tensor.Shape{2, 5, 3}, tensor.Float64)
	require.NoError(t, err)
	err = CheckVar(bad, def)
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.False(t, strings.Contains(err.Error(), "rank"), "content failure must differ from rank failure: %v", err)
}

func TestCheckVar_PerSystem(t *testing.T) {
	def, err := NewVarDef("energy_total", tensor.Shape{1}, WithAtomic(false))
	require.NoError(t, err)

	// [nframes, 1]
	good, err := tensor.NewRaw(tensor.Shape{2, 1}, tensor.Float64)
	require.NoError(t, err)
	assert.NoError(t, CheckVar(good, def))

	// atomic-style framing on a per-system variable is a rank failure
	bad, err := tensor.NewRaw(tensor.Shape{2, 5, 1}, tensor.Float64)
	require.NoError(t, err)
	assert.ErrorIs(t, CheckVar(bad, def), ErrShapeMismatch)
}

func TestCheckVar_Wildcard(t *testing.T) {
	def, err := NewVarDef("dos", tensor.Shape{-1}, WithReducible(true))
	require.NoError(t, err)

	for _, n := range []int{1, 7, 250} {
		v, err := tensor.NewRaw(tensor.Shape{2, 5, n}, tensor.Float64)
		require.NoError(t, err)
		assert.NoError(t, CheckVar(v, def))
	}
}
