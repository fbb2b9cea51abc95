package gurobi

// #include <gurobi_c.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/costela/gurobi/internal/param"
)

// Parameter returns the current value of the named solver parameter, as an
// int, float64 or string depending on the parameter.
//
// Unknown names fail with ErrInvalidConfiguration.
func (model *Model) Parameter(name string) (interface{}, error) {
	canonical, kind, err := param.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if err := model.ensureOpen(); err != nil {
		return nil, err
	}

	env := C.GRBgetenv(model.prob)

	c_name := C.CString(canonical)
	defer C.free(unsafe.Pointer(c_name))

	op := "get parameter " + canonical

	switch kind {
	case param.Int:
		var v C.int
		if err := model.check(op, C.GRBgetintparam(env, c_name, &v)); err != nil {
			return nil, err
		}
		return int(v), nil
	case param.Double:
		var v C.double
		if err := model.check(op, C.GRBgetdblparam(env, c_name, &v)); err != nil {
			return nil, err
		}
		return float64(v), nil
	default:
		buf := (*C.char)(C.malloc(C.GRB_MAX_STRLEN))
		defer C.free(unsafe.Pointer(buf))

		if err := model.check(op, C.GRBgetstrparam(env, c_name, buf)); err != nil {
			return nil, err
		}
		return C.GoString(buf), nil
	}
}

// SetParameter changes the named solver parameter. The value must fit the
// parameter's kind: Go integers or bools for integer parameters, numbers for
// double parameters and strings for string parameters.
//
// Unknown names and unfitting values fail with ErrInvalidConfiguration.
func (model *Model) SetParameter(name string, value interface{}) error {
	canonical, kind, err := param.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	v, err := param.Coerce(kind, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, canonical, err)
	}

	return model.setParameter(canonical, kind, v)
}

// SetParameterString changes the named solver parameter from its textual
// form, as found on command lines and in configuration files.
func (model *Model) SetParameterString(name, raw string) error {
	canonical, kind, err := param.Lookup(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	v, err := param.Parse(kind, raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfiguration, canonical, err)
	}

	return model.setParameter(canonical, kind, v)
}

func (model *Model) setParameter(name string, kind param.Kind, value interface{}) error {
	if err := model.ensureOpen(); err != nil {
		return err
	}

	env := C.GRBgetenv(model.prob)

	c_name := C.CString(name)
	defer C.free(unsafe.Pointer(c_name))

	op := "set parameter " + name

	switch kind {
	case param.Int:
		return model.check(op, C.GRBsetintparam(env, c_name, C.int(value.(int))))
	case param.Double:
		return model.check(op, C.GRBsetdblparam(env, c_name, C.double(value.(float64))))
	default:
		c_value := C.CString(value.(string))
		defer C.free(unsafe.Pointer(c_value))

		return model.check(op, C.GRBsetstrparam(env, c_name, c_value))
	}
}
