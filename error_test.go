package gurobi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveError(t *testing.T) {
	assert.Equal(t, "the model was proven to be infeasible", ErrModelInfeasible.Error())
	assert.Equal(t, "unknown error, code=4242", SolveError(4242).Error())

	for code := range solveErrors {
		assert.ErrorIs(t, code, ErrSolver)
		assert.NotContains(t, code.Error(), "unknown error")
	}

	wrapped := fmt.Errorf("solving: %w", ErrTimeLimit)
	assert.ErrorIs(t, wrapped, ErrTimeLimit)
	assert.ErrorIs(t, wrapped, ErrSolver)
	assert.False(t, errors.Is(wrapped, ErrNodeLimit))
}

func TestSolveStatusString(t *testing.T) {
	assert.Equal(t, "optimal", SolutionOptimal.String())
	assert.Equal(t, "loaded", SolutionLoaded.String())
	assert.Equal(t, ErrModelInfeasible.Error(), SolveStatus(ErrModelInfeasible).String())
}

func TestNativeError(t *testing.T) {
	err := &NativeError{Op: "AddVariable", Code: 10003, Msg: "Invalid argument"}
	assert.Equal(t, "gurobi: AddVariable failed: Invalid argument (GRB_ERROR_INVALID_ARGUMENT, code=10003)", err.Error())
	assert.ErrorIs(t, err, ErrSolver)
	assert.NotErrorIs(t, err, ErrInvalidConfiguration)

	err = &NativeError{Op: "Solve", Code: 1}
	assert.Equal(t, "gurobi: Solve failed: unknown error, code=1", err.Error())
}
