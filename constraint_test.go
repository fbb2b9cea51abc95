package gurobi

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addVariables(t *testing.T, model *Model, n int) []int {
	t.Helper()

	vars := make([]int, n)
	for i := range vars {
		index, err := model.AddVariable()
		require.NoError(t, err)
		vars[i] = index
	}
	return vars
}

func TestAddConstraint(t *testing.T) {
	model := newTestModel(t, Maximize)
	vars := addVariables(t, model, 2)

	tests := []struct {
		name         string
		lower, upper Bound
	}{
		{"less", Unbounded, BoundAt(3)},
		{"greater", BoundAt(-1), Unbounded},
		{"equal", BoundAt(2), BoundAt(2)},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.AddConstraint(vars, []float64{1, 2}, tt.lower, tt.upper, tt.name)
			require.NoError(t, err)

			count, err := model.ConstraintCount()
			require.NoError(t, err)
			assert.Equal(t, i+1, count)

			lower, upper, err := model.ConstraintBounds(i)
			require.NoError(t, err)
			assert.Equal(t, tt.lower, lower)
			assert.Equal(t, tt.upper, upper)

			name, err := model.ConstraintName(i)
			require.NoError(t, err)
			assert.Equal(t, tt.name, name)

			indices, values, err := model.Row(i)
			require.NoError(t, err)
			assert.Equal(t, vars, indices)
			assert.Equal(t, []float64{1, 2}, values)
		})
	}
}

func TestAddRangeConstraint(t *testing.T) {
	model := newTestModel(t, Maximize)
	vars := addVariables(t, model, 2)

	err := model.AddConstraint(vars, []float64{1, 2}, BoundAt(1), BoundAt(4), "range")
	require.NoError(t, err)

	rows, err := model.ConstraintCount()
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	// Gurobi adds an auxiliary column for the range
	cols, err := model.VariableCount()
	require.NoError(t, err)
	assert.Equal(t, 3, cols)

	lower, upper, err := model.ConstraintBounds(0)
	require.NoError(t, err)
	assert.Equal(t, BoundAt(1), lower)
	assert.Equal(t, BoundAt(4), upper)

	indices, values, err := model.Row(0)
	require.NoError(t, err)
	assert.Equal(t, vars, indices)
	assert.Equal(t, []float64{1, 2}, values)

	// ranges survive the removal of earlier rows and cloning
	require.NoError(t, model.AddConstraint(vars, []float64{1, 1}, BoundAt(-2), BoundAt(2), "second"))
	require.NoError(t, model.RemoveConstraint(0))

	clone, err := model.Clone()
	require.NoError(t, err)
	defer clone.Close()

	for _, m := range []*Model{model, clone} {
		lower, upper, err := m.ConstraintBounds(0)
		require.NoError(t, err)
		assert.Equal(t, BoundAt(-2), lower)
		assert.Equal(t, BoundAt(2), upper)
	}
}

func TestRangeConstraintBoundsExact(t *testing.T) {
	model := newTestModel(t, Minimize)
	vars := addVariables(t, model, 1)

	tests := []struct {
		lower, upper float64
	}{
		{-3, 1e-17},
		{1e-12, 1e12},
		{0.1, 0.3},
	}

	for i, tt := range tests {
		require.NoError(t, model.AddConstraint(vars, []float64{1}, BoundAt(tt.lower), BoundAt(tt.upper), ""))

		lower, upper, err := model.ConstraintBounds(i)
		require.NoError(t, err)
		assert.Equal(t, BoundAt(tt.lower), lower)
		assert.Equal(t, BoundAt(tt.upper), upper)
	}
}

func TestConstraintUnnamed(t *testing.T) {
	model := newTestModel(t, Minimize)
	vars := addVariables(t, model, 1)

	require.NoError(t, model.AddConstraint(vars, []float64{1}, Unbounded, BoundAt(1), "named"))
	require.NoError(t, model.AddConstraint(vars, []float64{1}, Unbounded, BoundAt(2), ""))

	name, err := model.ConstraintName(1)
	require.NoError(t, err)
	assert.Equal(t, "R1", name)
}

func TestAddConstraintInvalid(t *testing.T) {
	model := newTestModel(t, Maximize)
	vars := addVariables(t, model, 2)

	err := model.AddConstraint(vars, []float64{1, 1}, Unbounded, Unbounded, "")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	err = model.AddConstraint(vars, []float64{1}, Unbounded, BoundAt(1), "")
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	count, err := model.ConstraintCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestAddEmptyConstraint(t *testing.T) {
	model := newTestModel(t, Maximize)

	require.NoError(t, model.AddConstraint(nil, nil, Unbounded, BoundAt(1), "empty"))

	indices, values, err := model.Row(0)
	require.NoError(t, err)
	assert.Empty(t, indices)
	assert.Empty(t, values)
}

func TestRemoveConstraint(t *testing.T) {
	model := newTestModel(t, Maximize)
	vars := addVariables(t, model, 3)

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("c%d", i)
		require.NoError(t, model.AddConstraint([]int{vars[i]}, []float64{float64(i + 1)}, Unbounded, BoundAt(float64(i)), name))
	}

	require.NoError(t, model.RemoveConstraint(1))

	count, err := model.ConstraintCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// the last row moved down by one
	name, err := model.ConstraintName(1)
	require.NoError(t, err)
	assert.Equal(t, "c2", name)

	indices, values, err := model.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{vars[2]}, indices)
	assert.Equal(t, []float64{3}, values)

	_, upper, err := model.ConstraintBounds(1)
	require.NoError(t, err)
	assert.Equal(t, BoundAt(2), upper)

	require.NoError(t, model.RemoveConstraints([]int{0, 1}))
	count, err = model.ConstraintCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, model.RemoveConstraints(nil))
}

func TestConstraintMatrix(t *testing.T) {
	model := newTestModel(t, Maximize)

	m, err := model.ConstraintMatrix()
	require.NoError(t, err)
	assert.Nil(t, m)

	vars := addVariables(t, model, 3)
	require.NoError(t, model.AddConstraint([]int{vars[0], vars[2]}, []float64{1, 2}, Unbounded, BoundAt(1), ""))
	require.NoError(t, model.AddConstraint([]int{vars[1]}, []float64{-3}, BoundAt(0), Unbounded, ""))

	m, err = model.ConstraintMatrix()
	require.NoError(t, err)
	require.NotNil(t, m)

	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)

	expected := [][]float64{
		{1, 0, 2},
		{0, -3, 0},
	}
	for i, row := range expected {
		assert.Equal(t, row, m.RawRowView(i))
	}
}
