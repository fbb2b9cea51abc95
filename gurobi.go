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

/*
Package gurobi is a binding of a mixed-integer programming model onto the
Gurobi optimizer's C library.

Variables and constraints are addressed by dense zero-based indices, in
creation order. As an example, the model

	Maximize:
	  z = 2 x0 + 5 x1
	Subject to:
	  x0 + 2 x1 <= 3
	  x0, x1 >= 0

can be expressed and solved like this:

	package main

	import (
		"fmt"

		"github.com/costela/gurobi"
	)

	func main() {
		model, _ := gurobi.NewModel("example", gurobi.Maximize)
		defer model.Close()

		x0, _ := model.AddVariable(gurobi.ObjectiveCoefficient(2))
		x1, _ := model.AddVariable(gurobi.ObjectiveCoefficient(5))

		model.AddConstraint([]int{x0, x1}, []float64{1, 2}, gurobi.Unbounded, gurobi.BoundAt(3), "capacity")

		result, err := model.Solve()
		if err != nil {
			fmt.Println("not solved:", err)
			return
		}

		z, _ := result.ObjectiveValue()
		v, _ := result.Value(x1)
		fmt.Printf("z = %f, x1 = %f\n", z, v)
	}

Every model owns a private Gurobi environment. Models must be released with
Close; a finalizer does the same for models that are garbage-collected
before that.

A model is not safe for concurrent use.
*/
package gurobi

// #cgo linux CFLAGS: -I/opt/gurobi/linux64/include
// #cgo linux LDFLAGS: -L/opt/gurobi/linux64/lib -lgurobi110
// #cgo darwin CFLAGS: -I/Library/gurobi1100/macos_universal2/include
// #cgo darwin LDFLAGS: -L/Library/gurobi1100/macos_universal2/lib -lgurobi110
// #include <gurobi_c.h>
// #include <stdlib.h>
/*
// https://golang.org/issue/19837
extern int modelCallback(GRBmodel *model, void *cbdata, int where, void *usrdata);
*/
import "C"

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unsafe"
)

/* Types */

type Model struct {
	env         *C.GRBenv
	prob        *C.GRBmodel
	objConstant float64
	ranges      []rangeRow // one per constraint
	state       *callbackState
	ref         unsafe.Pointer
}

// Direction is the optimization sense of a model.
type Direction C.int

const (
	Minimize = Direction(C.GRB_MINIMIZE)
	Maximize = Direction(C.GRB_MAXIMIZE)
)

func (dir Direction) String() string {
	if dir == Maximize {
		return "maximize"
	}
	return "minimize"
}

/* Model related functions */

// NewModel instantiates a new, empty model with the given name and
// optimization direction.
//
// The model gets its own Gurobi environment, with solver output disabled.
// Use WithLogger to receive the solver's log instead.
func NewModel(name string, dir Direction, opts ...Option) (*Model, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var prob *C.GRBmodel
	if ret := C.GRBnewmodel(env, &prob, c_name, 0, nil, nil, nil, nil, nil); ret != 0 {
		err := newNativeError(env, "NewModel", ret)
		C.GRBfreeenv(env)
		return nil, err
	}

	model := &Model{
		env:  env,
		prob: prob,
	}

	if err := model.SetDirection(dir); err != nil {
		model.Close()
		return nil, err
	}

	if err := model.finishInitialization(opts); err != nil {
		model.Close()
		return nil, err
	}

	return model, nil
}

// ReadModel instantiates a model from a file in any of the formats
// understood by Gurobi (LP, MPS, ...), selected by the file extension.
func ReadModel(path string, opts ...Option) (*Model, error) {
	env, err := newEnv()
	if err != nil {
		return nil, err
	}

	c_path := C.CString(path)
	defer C.free(unsafe.Pointer(c_path))

	var prob *C.GRBmodel
	if ret := C.GRBreadmodel(env, c_path, &prob); ret != 0 {
		err := newNativeError(env, "ReadModel", ret)
		C.GRBfreeenv(env)
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	model := &Model{
		env:  env,
		prob: prob,
	}

	rows, err := model.ConstraintCount()
	if err != nil {
		model.Close()
		return nil, err
	}
	model.ranges = make([]rangeRow, rows)
	for i := range model.ranges {
		model.ranges[i].col = -1
	}

	if err := model.finishInitialization(opts); err != nil {
		model.Close()
		return nil, err
	}

	return model, nil
}

// newEnv creates and starts a silent master environment.
func newEnv() (*C.GRBenv, error) {
	var env *C.GRBenv
	if ret := C.GRBemptyenv(&env); ret != 0 {
		err := newNativeError(env, "NewEnv", ret)
		if env != nil {
			C.GRBfreeenv(env)
		}
		return nil, err
	}

	c_param := C.CString("OutputFlag")
	defer C.free(unsafe.Pointer(c_param))

	if ret := C.GRBsetintparam(env, c_param, 0); ret != 0 {
		err := newNativeError(env, "NewEnv", ret)
		C.GRBfreeenv(env)
		return nil, err
	}

	if ret := C.GRBstartenv(env); ret != 0 {
		err := newNativeError(env, "NewEnv", ret)
		C.GRBfreeenv(env)
		return nil, err
	}

	return env, nil
}

// finishInitialization performs steps that are common to NewModel(),
// ReadModel() and Clone().
func (model *Model) finishInitialization(opts []Option) error {
	model.state = &callbackState{logger: noopLogger{}}
	model.ref = saveRef(model.state)

	// the callback forwards log lines and watches for cancelled contexts
	if err := model.check("SetCallback", C.GRBsetcallbackfunc(model.prob, (*[0]byte)(C.modelCallback), model.ref)); err != nil {
		return err
	}

	for _, opt := range opts {
		if err := opt(model); err != nil {
			return fmt.Errorf("applying model option: %w", err)
		}
	}

	// plug the underlying C library's destructors to the instance of Model,
	// otherwise we leak the model and its environment
	runtime.SetFinalizer(model, (*Model).Close)

	return nil
}

//export modelCallback
func modelCallback(prob *C.GRBmodel, cbdata unsafe.Pointer, where C.int, usrdata unsafe.Pointer) C.int {
	state, ok := loadRef(usrdata).(*callbackState)
	if !ok {
		return 0
	}

	if where == C.GRB_CB_MESSAGE {
		var msg *C.char
		if C.GRBcbget(cbdata, where, C.GRB_CB_MSG_STRING, unsafe.Pointer(&msg)) == 0 && msg != nil {
			state.logger.Print(strings.TrimRight(C.GoString(msg), "\n"))
		}
	}

	if state.ctx != nil && state.ctx.Err() != nil {
		C.GRBterminate(prob)
	}

	return 0
}

// Close releases the model and its environment. Calling Close more than
// once is a no-op; any other method called afterwards returns ErrClosed.
func (model *Model) Close() {
	if model.prob != nil {
		C.GRBfreemodel(model.prob)
		model.prob = nil
	}
	if model.env != nil {
		C.GRBfreeenv(model.env)
		model.env = nil
	}
	if model.ref != nil {
		deleteRef(model.ref)
		model.ref = nil
	}
	runtime.SetFinalizer(model, nil)
}

// Clone returns an independent copy of the model, with its own environment.
//
// The copy has the same content, name, direction, objective constant and
// logger. Parameters set on the original are not carried over.
func (model *Model) Clone() (*Model, error) {
	if err := model.ensureOpen(); err != nil {
		return nil, err
	}

	env, err := newEnv()
	if err != nil {
		return nil, err
	}

	prob := C.GRBcopymodeltoenv(model.prob, env)
	if prob == nil {
		err := newNativeError(env, "Clone", C.GRB_ERROR_FAILED_TO_CREATE_MODEL)
		C.GRBfreeenv(env)
		return nil, err
	}

	newModel := &Model{
		env:         env,
		prob:        prob,
		objConstant: model.objConstant,
		ranges:      append([]rangeRow(nil), model.ranges...),
	}

	var opts []Option
	if _, quiet := model.state.logger.(noopLogger); !quiet {
		opts = append(opts, WithLogger(model.state.logger))
	}

	if err := newModel.finishInitialization(opts); err != nil {
		newModel.Close()
		return nil, err
	}

	return newModel, nil
}

// Name returns the name provided upon instantiation of a model
func (model *Model) Name() (string, error) {
	return model.strAttr(attrModelName)
}

// SetName renames the model.
func (model *Model) SetName(name string) error {
	return model.setStrAttr(attrModelName, name)
}

// SetDirection changes the direction of the model's optimization
func (model *Model) SetDirection(dir Direction) error {
	if err := model.setIntAttr(attrModelSense, int(dir)); err != nil {
		return err
	}
	return model.update("SetDirection")
}

// Direction returns the model's current optimization direction
func (model *Model) Direction() (Direction, error) {
	sense, err := model.intAttr(attrModelSense)
	if err != nil {
		return Minimize, err
	}
	return Direction(sense), nil
}

// SetSense sets the direction from a sign: +1 maximizes, -1 minimizes.
func (model *Model) SetSense(sense int) error {
	switch sense {
	case 1:
		return model.SetDirection(Maximize)
	case -1:
		return model.SetDirection(Minimize)
	default:
		return fmt.Errorf("%w: sense must be +1 or -1, got %d", ErrInvalidConfiguration, sense)
	}
}

// IsMaximization reports whether the model is maximized.
func (model *Model) IsMaximization() (bool, error) {
	dir, err := model.Direction()
	return dir == Maximize, err
}

/* Solving */

// Solve runs the optimizer on the model. Only an optimal outcome is a
// success; any other terminal status is returned as a SolveError.
func (model *Model) Solve() (*SolveResult, error) {
	if err := model.ensureOpen(); err != nil {
		return nil, err
	}

	if err := model.check("Solve", C.GRBoptimize(model.prob)); err != nil {
		return nil, err
	}

	status, err := model.intAttr(attrStatus)
	if err != nil {
		return nil, err
	}

	if SolveStatus(status) != SolutionOptimal {
		return nil, SolveError(status)
	}

	return &SolveResult{
		model:  model,
		status: SolutionOptimal,
	}, nil
}

// SolveWithContext wraps Solve() with a context. If the context is cancelled
// or times out, the optimization is terminated and the context error is
// returned.
func (model *Model) SolveWithContext(ctx context.Context) (*SolveResult, error) {
	if err := model.ensureOpen(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model.state.ctx = ctx
	defer func() { model.state.ctx = nil }()

	res, err := model.Solve()

	if errors.Is(err, ErrInterrupted) && ctx.Err() != nil {
		return nil, ctx.Err()
	}

	return res, err
}

// ObjectiveValue returns the objective value of the last solve, including
// the constant term given to SetObjective. It is only meaningful after a
// successful Solve.
func (model *Model) ObjectiveValue() (float64, error) {
	v, err := model.dblAttr(attrObjVal)
	if err != nil {
		return 0, err
	}
	return v + model.objConstant, nil
}

/* Serialization */

// WriteLP writes the model in LP format. The path is handed to Gurobi as
// is, which picks the format from its extension (.lp, optionally
// compressed).
func (model *Model) WriteLP(path string) error {
	return model.Write(path)
}

// WriteMPS writes the model in MPS format. The path is handed to Gurobi as
// is, which picks the format from its extension (.mps, optionally
// compressed).
func (model *Model) WriteMPS(path string) error {
	return model.Write(path)
}

// Write writes the model to path, in the format Gurobi associates with the
// path's extension.
func (model *Model) Write(path string) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	c_path := C.CString(path)
	defer C.free(unsafe.Pointer(c_path))

	return model.check("Write", C.GRBwrite(model.prob, c_path))
}
