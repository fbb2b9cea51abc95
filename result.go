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
import "C"

import "fmt"

/* Types */

type SolveResult struct {
	model  *Model
	status SolveStatus
}

type SolveStatus C.int

const (
	SolutionLoaded  = SolveStatus(C.GRB_LOADED)
	SolutionOptimal = SolveStatus(C.GRB_OPTIMAL)
)

func (s SolveStatus) String() string {
	switch s {
	case SolutionLoaded:
		return "loaded"
	case SolutionOptimal:
		return "optimal"
	default:
		return SolveError(s).Error()
	}
}

// SolveError is the terminal status of a solve that did not reach
// optimality.
type SolveError C.int

const (
	ErrModelInfeasible       = SolveError(C.GRB_INFEASIBLE)
	ErrInfeasibleOrUnbounded = SolveError(C.GRB_INF_OR_UNBD)
	ErrModelUnbounded        = SolveError(C.GRB_UNBOUNDED)
	ErrCutoff                = SolveError(C.GRB_CUTOFF)
	ErrIterationLimit        = SolveError(C.GRB_ITERATION_LIMIT)
	ErrNodeLimit             = SolveError(C.GRB_NODE_LIMIT)
	ErrTimeLimit             = SolveError(C.GRB_TIME_LIMIT)
	ErrSolutionLimit         = SolveError(C.GRB_SOLUTION_LIMIT)
	ErrInterrupted           = SolveError(C.GRB_INTERRUPTED)
	ErrNumerical             = SolveError(C.GRB_NUMERIC)
	ErrSuboptimal            = SolveError(C.GRB_SUBOPTIMAL)
	ErrInProgress            = SolveError(C.GRB_INPROGRESS)
	ErrUserObjectiveLimit    = SolveError(C.GRB_USER_OBJ_LIMIT)
	ErrWorkLimit             = SolveError(C.GRB_WORK_LIMIT)
	ErrMemoryLimit           = SolveError(C.GRB_MEM_LIMIT)
)

var solveErrors = map[SolveError]string{
	ErrModelInfeasible:       "the model was proven to be infeasible",
	ErrInfeasibleOrUnbounded: "the model was proven to be either infeasible or unbounded",
	ErrModelUnbounded:        "the model was proven to be unbounded",
	ErrCutoff:                "the optimal objective was proven to be worse than the Cutoff parameter",
	ErrIterationLimit:        "optimization terminated because the number of simplex or barrier iterations exceeded the limit",
	ErrNodeLimit:             "optimization terminated because the number of explored branch-and-cut nodes exceeded the limit",
	ErrTimeLimit:             "optimization terminated because the time expended exceeded the limit",
	ErrSolutionLimit:         "optimization terminated because the number of solutions found reached the limit",
	ErrInterrupted:           "optimization was terminated by the user",
	ErrNumerical:             "optimization was terminated due to unrecoverable numerical difficulties",
	ErrSuboptimal:            "unable to satisfy optimality tolerances, a sub-optimal solution is available",
	ErrInProgress:            "optimization is still in progress",
	ErrUserObjectiveLimit:    "the user-specified objective limit was reached",
	ErrWorkLimit:             "optimization terminated because the work expended exceeded the limit",
	ErrMemoryLimit:           "optimization terminated because the memory used exceeded the limit",
}

// Error returns a string representation of the given error value.
func (e SolveError) Error() string {
	if reason, ok := solveErrors[e]; ok {
		return reason
	}
	return fmt.Sprintf("unknown error, code=%d", int(e))
}

// Is makes every SolveError match ErrSolver.
func (e SolveError) Is(target error) bool {
	return target == ErrSolver
}

// Status reports the solve status, which is always SolutionOptimal for
// results returned by Solve.
func (res SolveResult) Status() SolveStatus {
	return res.status
}

// Value returns the computed value of the variable with the given index.
// This is a shorthand for PrimalValue.
func (res SolveResult) Value(index int) (float64, error) {
	return res.PrimalValue(index)
}

// PrimalValue returns the computed value of the variable with the given
// index, rounded for integer and binary variables.
func (res SolveResult) PrimalValue(index int) (float64, error) {
	return res.model.VariableValue(index)
}

// DualValue returns the dual value of the constraint with the given index.
// Only available for continuous models.
func (res SolveResult) DualValue(index int) (float64, error) {
	return res.model.DualValue(index)
}

// ReducedCost returns the reduced cost of the variable with the given
// index. Only available for continuous models.
func (res SolveResult) ReducedCost(index int) (float64, error) {
	return res.model.ReducedCost(index)
}

// ObjectiveValue returns the value of the objective function for this
// optimization result, including the objective constant.
func (res SolveResult) ObjectiveValue() (float64, error) {
	return res.model.ObjectiveValue()
}

// Runtime returns the wall-clock time of the solve, in seconds.
func (res SolveResult) Runtime() (float64, error) {
	return res.model.dblAttr(attrRuntime)
}

// MIPGap returns the relative optimality gap of a MIP solve.
func (res SolveResult) MIPGap() (float64, error) {
	return res.model.dblAttr(attrMIPGap)
}

// NodeCount returns the number of branch-and-cut nodes explored by a MIP
// solve.
func (res SolveResult) NodeCount() (float64, error) {
	return res.model.dblAttr(attrNodeCount)
}
