package gurobi

// #include <gurobi_c.h>
// #include <stdlib.h>
import "C"

import (
	"unsafe"
)

// Gurobi attribute names used by the binding.
const (
	attrModelName  = "ModelName"
	attrModelSense = "ModelSense"
	attrNumVars    = "NumVars"
	attrNumConstrs = "NumConstrs"
	attrStatus     = "Status"
	attrObjVal     = "ObjVal"
	attrRuntime    = "Runtime"
	attrMIPGap     = "MIPGap"
	attrNodeCount  = "NodeCount"

	attrLB      = "LB"
	attrUB      = "UB"
	attrObj     = "Obj"
	attrVType   = "VType"
	attrVarName = "VarName"
	attrX       = "X"
	attrRC      = "RC"

	attrRHS        = "RHS"
	attrSense      = "Sense"
	attrConstrName = "ConstrName"
	attrPi         = "Pi"
)

func (model *Model) ensureOpen() error {
	if model.prob == nil {
		return ErrClosed
	}
	return nil
}

// check turns a Gurobi return code into an error, fetching the error
// message from the model's environment.
func (model *Model) check(op string, ret C.int) error {
	if ret == 0 {
		return nil
	}
	return newNativeError(C.GRBgetenv(model.prob), op, ret)
}

// update processes pending modifications, so that they are visible to
// subsequent queries.
func (model *Model) update(op string) error {
	return model.check(op, C.GRBupdatemodel(model.prob))
}

func (model *Model) intAttr(name string) (int, error) {
	if err := model.ensureOpen(); err != nil {
		return 0, err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.int
	if err := model.check("get "+name, C.GRBgetintattr(model.prob, c_name, &v)); err != nil {
		return 0, err
	}
	return int(v), nil
}

func (model *Model) setIntAttr(name string, value int) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	return model.check("set "+name, C.GRBsetintattr(model.prob, c_name, C.int(value)))
}

func (model *Model) dblAttr(name string) (float64, error) {
	if err := model.ensureOpen(); err != nil {
		return 0, err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.double
	if err := model.check("get "+name, C.GRBgetdblattr(model.prob, c_name, &v)); err != nil {
		return 0, err
	}
	return float64(v), nil
}

func (model *Model) strAttr(name string) (string, error) {
	if err := model.ensureOpen(); err != nil {
		return "", err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	// the returned string belongs to the library
	var v *C.char
	if err := model.check("get "+name, C.GRBgetstrattr(model.prob, c_name, &v)); err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return C.GoString(v), nil
}

func (model *Model) setStrAttr(name, value string) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	c_value := C.CString(value)
	defer C.free(unsafe.Pointer(c_value))

	if err := model.check("set "+name, C.GRBsetstrattr(model.prob, c_name, c_value)); err != nil {
		return err
	}
	return model.update("set " + name)
}

func (model *Model) dblAttrElement(name string, index int) (float64, error) {
	if err := model.ensureOpen(); err != nil {
		return 0, err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.double
	if err := model.check("get "+name, C.GRBgetdblattrelement(model.prob, c_name, C.int(index), &v)); err != nil {
		return 0, err
	}
	return float64(v), nil
}

func (model *Model) setDblAttrElement(name string, index int, value float64) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	if err := model.check("set "+name, C.GRBsetdblattrelement(model.prob, c_name, C.int(index), C.double(value))); err != nil {
		return err
	}
	return model.update("set " + name)
}

func (model *Model) setDblAttrArray(name string, values []float64) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	if err := model.check("set "+name, C.GRBsetdblattrarray(model.prob, c_name, 0, C.int(len(values)), (*C.double)(&values[0]))); err != nil {
		return err
	}
	return model.update("set " + name)
}

func (model *Model) charAttrElement(name string, index int) (byte, error) {
	if err := model.ensureOpen(); err != nil {
		return 0, err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v C.char
	if err := model.check("get "+name, C.GRBgetcharattrelement(model.prob, c_name, C.int(index), &v)); err != nil {
		return 0, err
	}
	return byte(v), nil
}

func (model *Model) setCharAttrElement(name string, index int, value byte) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	if err := model.check("set "+name, C.GRBsetcharattrelement(model.prob, c_name, C.int(index), C.char(value))); err != nil {
		return err
	}
	return model.update("set " + name)
}

func (model *Model) strAttrElement(name string, index int) (string, error) {
	if err := model.ensureOpen(); err != nil {
		return "", err
	}

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	var v *C.char
	if err := model.check("get "+name, C.GRBgetstrattrelement(model.prob, c_name, C.int(index), &v)); err != nil {
		return "", err
	}
	if v == nil {
		return "", nil
	}
	return C.GoString(v), nil
}
