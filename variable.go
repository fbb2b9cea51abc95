/*
Copyright © 2015-2024 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package gurobi

// #include <gurobi_c.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"math"
	"unsafe"
)

type VariableType C.char

const (
	ContinuousVariable = VariableType(C.GRB_CONTINUOUS)
	IntegerVariable    = VariableType(C.GRB_INTEGER)
	BinaryVariable     = VariableType(C.GRB_BINARY)
)

func (t VariableType) String() string {
	switch t {
	case ContinuousVariable:
		return "continuous"
	case IntegerVariable:
		return "integer"
	case BinaryVariable:
		return "binary"
	default:
		return fmt.Sprintf("VariableType(%c)", byte(t))
	}
}

// VariableOption configures a variable created by AddVariable.
type VariableOption func(*variableSpec)

type variableSpec struct {
	lower, upper Bound
	types        []VariableType
	coefficient  float64
	name         string
	rows         []int
	values       []float64
}

// LowerBound sets the variable's lower bound. Defaults to 0.
func LowerBound(b Bound) VariableOption {
	return func(s *variableSpec) { s.lower = b }
}

// UpperBound sets the variable's upper bound. Defaults to no bound.
func UpperBound(b Bound) VariableOption {
	return func(s *variableSpec) { s.upper = b }
}

// Continuous makes the variable continuous, which is the default.
func Continuous() VariableOption {
	return func(s *variableSpec) { s.types = append(s.types, ContinuousVariable) }
}

// Integer makes the variable integer.
func Integer() VariableOption {
	return func(s *variableSpec) { s.types = append(s.types, IntegerVariable) }
}

// Binary makes the variable binary.
func Binary() VariableOption {
	return func(s *variableSpec) { s.types = append(s.types, BinaryVariable) }
}

// ObjectiveCoefficient sets the variable's objective coefficient. Defaults
// to 0.
func ObjectiveCoefficient(coef float64) VariableOption {
	return func(s *variableSpec) { s.coefficient = coef }
}

// VariableName names the variable. Unnamed variables get Gurobi's default
// name.
func VariableName(name string) VariableOption {
	return func(s *variableSpec) { s.name = name }
}

// Column places the new variable into existing constraints, with the given
// coefficients.
func Column(rows []int, values []float64) VariableOption {
	return func(s *variableSpec) {
		s.rows = rows
		s.values = values
	}
}

/* Column-related functions */

// VariableCount returns the number of variables in the model.
func (model *Model) VariableCount() (int, error) {
	return model.intAttr(attrNumVars)
}

// AddVariable adds a variable to the model and returns its index, which is
// the number of variables before the call.
//
// A variable without options is continuous, bounded to [0, +inf) and has an
// objective coefficient of 0. Requesting more than one variable type fails
// with ErrInvalidConfiguration and adds nothing.
func (model *Model) AddVariable(opts ...VariableOption) (int, error) {
	spec := variableSpec{
		lower: BoundAt(0),
		upper: Unbounded,
	}
	for _, opt := range opts {
		opt(&spec)
	}

	vtype := ContinuousVariable
	switch len(spec.types) {
	case 0:
	case 1:
		vtype = spec.types[0]
	default:
		return 0, fmt.Errorf("%w: a variable has exactly one type, got %v", ErrInvalidConfiguration, spec.types)
	}

	if len(spec.rows) != len(spec.values) {
		return 0, fmt.Errorf("%w: inconsistent number of rows and coefficients: %d != %d", ErrInvalidConfiguration, len(spec.rows), len(spec.values))
	}

	index, err := model.VariableCount()
	if err != nil {
		return 0, err
	}

	var c_name *C.char
	if spec.name != "" {
		c_name = C.CString(spec.name)
		defer C.free(unsafe.Pointer(c_name))
	}

	var vind *C.int
	var vval *C.double
	if len(spec.rows) > 0 {
		rows := make([]C.int, len(spec.rows))
		for i, r := range spec.rows {
			rows[i] = C.int(r)
		}
		vind = &rows[0]
		vval = (*C.double)(&spec.values[0])
	}

	ret := C.GRBaddvar(model.prob,
		C.int(len(spec.rows)), vind, vval,
		C.double(spec.coefficient),
		C.double(spec.lower.native(-1)), C.double(spec.upper.native(1)),
		C.char(vtype), c_name)
	if err := model.check("AddVariable", ret); err != nil {
		return 0, err
	}

	if err := model.update("AddVariable"); err != nil {
		return 0, err
	}

	return index, nil
}

// AddBinaryVariable is a convenience function for adding a single named
// binary variable to the model.
func (model *Model) AddBinaryVariable(name string) (int, error) {
	return model.AddVariable(Binary(), VariableName(name), UpperBound(BoundAt(1)))
}

// AddIntegerVariable is a convenience function for adding a single named
// integer variable to the model, bounded to [0, +inf).
func (model *Model) AddIntegerVariable(name string) (int, error) {
	return model.AddVariable(Integer(), VariableName(name))
}

// VariableName returns the name of the variable. Unnamed variables report
// the default name Gurobi gives them, C followed by the index.
func (model *Model) VariableName(index int) (string, error) {
	return model.strAttrElement(attrVarName, index)
}

// VariableBounds returns both bounds of the variable.
func (model *Model) VariableBounds(index int) (lower, upper Bound, err error) {
	if lower, err = model.LowerBound(index); err != nil {
		return
	}
	upper, err = model.UpperBound(index)
	return
}

// LowerBound returns the variable's lower bound.
func (model *Model) LowerBound(index int) (Bound, error) {
	v, err := model.dblAttrElement(attrLB, index)
	if err != nil {
		return Unbounded, err
	}
	return boundFromNative(v), nil
}

// SetLowerBound changes the variable's lower bound. Unbounded removes it.
func (model *Model) SetLowerBound(index int, b Bound) error {
	return model.setDblAttrElement(attrLB, index, b.native(-1))
}

// UpperBound returns the variable's upper bound.
func (model *Model) UpperBound(index int) (Bound, error) {
	v, err := model.dblAttrElement(attrUB, index)
	if err != nil {
		return Unbounded, err
	}
	return boundFromNative(v), nil
}

// SetUpperBound changes the variable's upper bound. Unbounded removes it.
func (model *Model) SetUpperBound(index int, b Bound) error {
	return model.setDblAttrElement(attrUB, index, b.native(1))
}

// SetVariableType changes the type of the variable. Bounds are left as they
// are, even when they do not fit a binary variable.
func (model *Model) SetVariableType(index int, vtype VariableType) error {
	switch vtype {
	case ContinuousVariable, IntegerVariable, BinaryVariable:
	default:
		return fmt.Errorf("%w: unsupported variable type %v", ErrInvalidConfiguration, vtype)
	}
	return model.setCharAttrElement(attrVType, index, byte(vtype))
}

// VariableType returns the type of the variable.
func (model *Model) VariableType(index int) (VariableType, error) {
	v, err := model.charAttrElement(attrVType, index)
	return VariableType(v), err
}

func (model *Model) IsVariableBinary(index int) (bool, error) {
	vtype, err := model.VariableType(index)
	return vtype == BinaryVariable, err
}

func (model *Model) IsVariableInteger(index int) (bool, error) {
	vtype, err := model.VariableType(index)
	return vtype == IntegerVariable, err
}

func (model *Model) IsVariableContinuous(index int) (bool, error) {
	vtype, err := model.VariableType(index)
	return vtype == ContinuousVariable, err
}

// VariableValue returns the variable's value in the last solution. Values
// of integer and binary variables are rounded to the nearest integer.
func (model *Model) VariableValue(index int) (float64, error) {
	v, err := model.dblAttrElement(attrX, index)
	if err != nil {
		return 0, err
	}

	vtype, err := model.VariableType(index)
	if err != nil {
		return 0, err
	}
	if vtype == IntegerVariable || vtype == BinaryVariable {
		return math.Round(v), nil
	}
	return v, nil
}

// ReducedCost returns the variable's reduced cost in the last solution.
// Only available for continuous models.
func (model *Model) ReducedCost(index int) (float64, error) {
	return model.dblAttrElement(attrRC, index)
}
