package gurobi

// #include <gurobi_c.h>
import "C"

import (
	"math"
	"strconv"
)

// Bound is an optional lower or upper bound. The zero value is no bound at
// all, stored natively as the corresponding infinity.
type Bound struct {
	value float64
	set   bool
}

// Unbounded is the absent bound.
var Unbounded = Bound{}

// BoundAt returns a bound at v. Infinite values yield Unbounded.
func BoundAt(v float64) Bound {
	if math.IsInf(v, 0) {
		return Unbounded
	}
	return Bound{value: v, set: true}
}

// Value returns the bound's value and whether it is set.
func (b Bound) Value() (float64, bool) {
	return b.value, b.set
}

// IsSet reports whether the bound is finite.
func (b Bound) IsSet() bool {
	return b.set
}

func (b Bound) String() string {
	if !b.set {
		return "none"
	}
	return strconv.FormatFloat(b.value, 'g', -1, 64)
}

// native returns the value to hand to the library; sign selects the
// infinity used for an absent bound.
func (b Bound) native(sign float64) float64 {
	if !b.set {
		return sign * C.GRB_INFINITY
	}
	return b.value
}

// boundFromNative maps the library's infinities back to Unbounded.
func boundFromNative(v float64) Bound {
	if math.Abs(v) >= C.GRB_INFINITY {
		return Unbounded
	}
	return Bound{value: v, set: true}
}
