package gurobi

// #include <gurobi_c.h>
import "C"

import (
	"errors"
	"fmt"
)

var (
	// ErrSolver matches every error reported by Gurobi itself: failed
	// library calls (*NativeError) as well as non-optimal solves (SolveError).
	ErrSolver = errors.New("gurobi solver error")

	// ErrInvalidConfiguration is returned for requests rejected before
	// reaching the library.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrClosed is returned by methods called on a closed model.
	ErrClosed = errors.New("model is closed")
)

// NativeError is a nonzero return code of a Gurobi library call.
type NativeError struct {
	Op   string // operation that failed
	Code int    // Gurobi error code
	Msg  string // message reported by the environment
}

func newNativeError(env *C.GRBenv, op string, code C.int) *NativeError {
	err := &NativeError{Op: op, Code: int(code)}
	if env != nil {
		err.Msg = C.GoString(C.GRBgeterrormsg(env))
	}
	return err
}

func (e *NativeError) Error() string {
	name, ok := errorCodes[e.Code]
	if !ok {
		name = "unknown error"
	}

	if e.Msg == "" {
		return fmt.Sprintf("gurobi: %s failed: %s, code=%d", e.Op, name, e.Code)
	}
	return fmt.Sprintf("gurobi: %s failed: %s (%s, code=%d)", e.Op, e.Msg, name, e.Code)
}

// Is makes every NativeError match ErrSolver.
func (e *NativeError) Is(target error) bool {
	return target == ErrSolver
}

// errorCodes names the documented Gurobi error codes.
var errorCodes = map[int]string{
	C.GRB_ERROR_OUT_OF_MEMORY:            "GRB_ERROR_OUT_OF_MEMORY",
	C.GRB_ERROR_NULL_ARGUMENT:            "GRB_ERROR_NULL_ARGUMENT",
	C.GRB_ERROR_INVALID_ARGUMENT:         "GRB_ERROR_INVALID_ARGUMENT",
	C.GRB_ERROR_UNKNOWN_ATTRIBUTE:        "GRB_ERROR_UNKNOWN_ATTRIBUTE",
	C.GRB_ERROR_DATA_NOT_AVAILABLE:       "GRB_ERROR_DATA_NOT_AVAILABLE",
	C.GRB_ERROR_INDEX_OUT_OF_RANGE:       "GRB_ERROR_INDEX_OUT_OF_RANGE",
	C.GRB_ERROR_UNKNOWN_PARAMETER:        "GRB_ERROR_UNKNOWN_PARAMETER",
	C.GRB_ERROR_VALUE_OUT_OF_RANGE:       "GRB_ERROR_VALUE_OUT_OF_RANGE",
	C.GRB_ERROR_NO_LICENSE:               "GRB_ERROR_NO_LICENSE",
	C.GRB_ERROR_SIZE_LIMIT_EXCEEDED:      "GRB_ERROR_SIZE_LIMIT_EXCEEDED",
	C.GRB_ERROR_CALLBACK:                 "GRB_ERROR_CALLBACK",
	C.GRB_ERROR_FILE_READ:                "GRB_ERROR_FILE_READ",
	C.GRB_ERROR_FILE_WRITE:               "GRB_ERROR_FILE_WRITE",
	C.GRB_ERROR_NUMERIC:                  "GRB_ERROR_NUMERIC",
	C.GRB_ERROR_IIS_NOT_INFEASIBLE:       "GRB_ERROR_IIS_NOT_INFEASIBLE",
	C.GRB_ERROR_NOT_FOR_MIP:              "GRB_ERROR_NOT_FOR_MIP",
	C.GRB_ERROR_OPTIMIZATION_IN_PROGRESS: "GRB_ERROR_OPTIMIZATION_IN_PROGRESS",
	C.GRB_ERROR_DUPLICATES:               "GRB_ERROR_DUPLICATES",
	C.GRB_ERROR_NODEFILE:                 "GRB_ERROR_NODEFILE",
	C.GRB_ERROR_Q_NOT_PSD:                "GRB_ERROR_Q_NOT_PSD",
	C.GRB_ERROR_QCP_EQUALITY_CONSTRAINT:  "GRB_ERROR_QCP_EQUALITY_CONSTRAINT",
	C.GRB_ERROR_NETWORK:                  "GRB_ERROR_NETWORK",
	C.GRB_ERROR_JOB_REJECTED:             "GRB_ERROR_JOB_REJECTED",
	C.GRB_ERROR_NOT_SUPPORTED:            "GRB_ERROR_NOT_SUPPORTED",
	C.GRB_ERROR_EXCEED_2B_NONZEROS:       "GRB_ERROR_EXCEED_2B_NONZEROS",
	C.GRB_ERROR_INVALID_PIECEWISE_OBJ:    "GRB_ERROR_INVALID_PIECEWISE_OBJ",
	C.GRB_ERROR_UPDATEMODE_CHANGE:        "GRB_ERROR_UPDATEMODE_CHANGE",
	C.GRB_ERROR_CLOUD:                    "GRB_ERROR_CLOUD",
	C.GRB_ERROR_MODEL_MODIFICATION:       "GRB_ERROR_MODEL_MODIFICATION",
	C.GRB_ERROR_CSWORKER:                 "GRB_ERROR_CSWORKER",
	C.GRB_ERROR_TUNE_MODEL_TYPES:         "GRB_ERROR_TUNE_MODEL_TYPES",
	C.GRB_ERROR_SECURITY:                 "GRB_ERROR_SECURITY",
	C.GRB_ERROR_NOT_IN_MODEL:             "GRB_ERROR_NOT_IN_MODEL",
	C.GRB_ERROR_FAILED_TO_CREATE_MODEL:   "GRB_ERROR_FAILED_TO_CREATE_MODEL",
	C.GRB_ERROR_INTERNAL:                 "GRB_ERROR_INTERNAL",
}
