package gurobi

// #include <gurobi_c.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"unsafe"

	"gonum.org/v1/gonum/mat"
)

/* Constraint-related functions */

// ConstraintCount returns the number of constraints in the model.
func (model *Model) ConstraintCount() (int, error) {
	return model.intAttr(attrNumConstrs)
}

// AddConstraint adds a linear constraint over the variables at the given
// indices, with their respective coefficients. The new constraint's index
// is the number of constraints before the call.
//
// A constraint with only an upper bound is a <= row, with only a lower
// bound a >= row and with equal bounds an = row. Distinct bounds make a
// range constraint, for which Gurobi adds an auxiliary variable to the
// model. That variable is counted by VariableCount but left out of Row.
// At least one bound is required.
func (model *Model) AddConstraint(indices []int, values []float64, lower, upper Bound, name string) error {
	if len(indices) != len(values) {
		return fmt.Errorf("%w: inconsistent number of variables and coefficients: %d != %d", ErrInvalidConfiguration, len(indices), len(values))
	}
	if !lower.IsSet() && !upper.IsSet() {
		return fmt.Errorf("%w: constraint needs a lower or an upper bound", ErrInvalidConfiguration)
	}
	if err := model.ensureOpen(); err != nil {
		return err
	}

	var c_name *C.char
	if name != "" {
		c_name = C.CString(name)
		defer C.free(unsafe.Pointer(c_name))
	}

	var cind *C.int
	var cval *C.double
	if len(indices) > 0 {
		ind := make([]C.int, len(indices))
		for i, v := range indices {
			ind[i] = C.int(v)
		}
		cind = &ind[0]
		cval = (*C.double)(&values[0])
	}
	numnz := C.int(len(indices))

	cols, err := model.VariableCount()
	if err != nil {
		return err
	}

	rng := rangeRow{col: -1}

	var ret C.int
	switch {
	case !lower.IsSet():
		ret = C.GRBaddconstr(model.prob, numnz, cind, cval, C.GRB_LESS_EQUAL, C.double(upper.value), c_name)
	case !upper.IsSet():
		ret = C.GRBaddconstr(model.prob, numnz, cind, cval, C.GRB_GREATER_EQUAL, C.double(lower.value), c_name)
	case lower.value == upper.value:
		ret = C.GRBaddconstr(model.prob, numnz, cind, cval, C.GRB_EQUAL, C.double(lower.value), c_name)
	default:
		ret = C.GRBaddrangeconstr(model.prob, numnz, cind, cval, C.double(lower.value), C.double(upper.value), c_name)
		rng = rangeRow{col: cols, lower: lower, upper: upper}
	}
	if err := model.check("AddConstraint", ret); err != nil {
		return err
	}

	if err := model.update("AddConstraint"); err != nil {
		return err
	}

	model.ranges = append(model.ranges, rng)

	return nil
}

// RemoveConstraint deletes the constraint at index. Constraints after it
// move down by one. The index is checked by the library only.
func (model *Model) RemoveConstraint(index int) error {
	return model.RemoveConstraints([]int{index})
}

// RemoveConstraints deletes the constraints at the given indices in a
// single call. The remaining constraints are renumbered contiguously.
func (model *Model) RemoveConstraints(indices []int) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}
	if len(indices) == 0 {
		return nil
	}

	ind := make([]C.int, len(indices))
	for i, v := range indices {
		ind[i] = C.int(v)
	}

	if err := model.check("RemoveConstraints", C.GRBdelconstrs(model.prob, C.int(len(ind)), &ind[0])); err != nil {
		return err
	}

	if err := model.update("RemoveConstraints"); err != nil {
		return err
	}

	removed := make(map[int]bool, len(indices))
	for _, i := range indices {
		removed[i] = true
	}
	kept := model.ranges[:0]
	for i, rng := range model.ranges {
		if !removed[i] {
			kept = append(kept, rng)
		}
	}
	model.ranges = kept

	return nil
}

// rangeRow remembers a range constraint as it was written. Gurobi keeps it
// as an equality over the auxiliary column col, bounded to
// [0, upper-lower].
type rangeRow struct {
	col          int // -1 for rows that are not ranges
	lower, upper Bound
}

// rangeVariable returns the auxiliary column of a range constraint, or -1.
func (model *Model) rangeVariable(row int) int {
	if row < 0 || row >= len(model.ranges) {
		return -1
	}
	return model.ranges[row].col
}

// Row returns the non-zero coefficients of the constraint, as parallel
// slices of variable indices and values, in the order the library keeps
// them.
func (model *Model) Row(index int) ([]int, []float64, error) {
	if err := model.ensureOpen(); err != nil {
		return nil, nil, err
	}

	// a first call without arrays only reports the number of non-zeros
	var numnz C.int
	if err := model.check("Row", C.GRBgetconstrs(model.prob, &numnz, nil, nil, nil, C.int(index), 1)); err != nil {
		return nil, nil, err
	}
	if numnz == 0 {
		return []int{}, []float64{}, nil
	}

	var beg C.int
	ind := make([]C.int, numnz)
	values := make([]float64, numnz)
	if err := model.check("Row", C.GRBgetconstrs(model.prob, &numnz, &beg, &ind[0], (*C.double)(&values[0]), C.int(index), 1)); err != nil {
		return nil, nil, err
	}

	rangeVar := model.rangeVariable(index)

	indices := make([]int, 0, numnz)
	coefs := make([]float64, 0, numnz)
	for i, v := range ind[:numnz] {
		if int(v) == rangeVar {
			continue
		}
		indices = append(indices, int(v))
		coefs = append(coefs, values[i])
	}

	return indices, coefs, nil
}

// ConstraintBounds returns the bounds of the constraint.
func (model *Model) ConstraintBounds(index int) (lower, upper Bound, err error) {
	sense, err := model.charAttrElement(attrSense, index)
	if err != nil {
		return Unbounded, Unbounded, err
	}

	rhs, err := model.dblAttrElement(attrRHS, index)
	if err != nil {
		return Unbounded, Unbounded, err
	}

	switch sense {
	case C.GRB_LESS_EQUAL:
		return Unbounded, boundFromNative(rhs), nil
	case C.GRB_GREATER_EQUAL:
		return boundFromNative(rhs), Unbounded, nil
	}

	if model.rangeVariable(index) >= 0 {
		rng := model.ranges[index]
		return rng.lower, rng.upper, nil
	}

	return boundFromNative(rhs), boundFromNative(rhs), nil
}

// ConstraintName returns the name of the constraint. Unnamed constraints
// report the default name Gurobi gives them, R followed by the index.
func (model *Model) ConstraintName(index int) (string, error) {
	return model.strAttrElement(attrConstrName, index)
}

// DualValue returns the constraint's dual value in the last solution. Only
// available for continuous models.
func (model *Model) DualValue(index int) (float64, error) {
	return model.dblAttrElement(attrPi, index)
}

// ConstraintMatrix returns a dense copy of the constraint matrix, one row
// per constraint and one column per variable. It returns nil for a model
// without constraints or variables.
func (model *Model) ConstraintMatrix() (*mat.Dense, error) {
	rows, err := model.ConstraintCount()
	if err != nil {
		return nil, err
	}
	cols, err := model.VariableCount()
	if err != nil {
		return nil, err
	}
	if rows == 0 || cols == 0 {
		return nil, nil
	}

	m := mat.NewDense(rows, cols, nil)
	for r := 0; r < rows; r++ {
		indices, values, err := model.Row(r)
		if err != nil {
			return nil, err
		}
		for i, c := range indices {
			m.Set(r, c, values[i])
		}
	}

	return m, nil
}
