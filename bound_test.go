package gurobi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBound(t *testing.T) {
	b := BoundAt(1.5)
	v, ok := b.Value()
	assert.True(t, ok)
	assert.Equal(t, 1.5, v)
	assert.Equal(t, "1.5", b.String())

	_, ok = Unbounded.Value()
	assert.False(t, ok)
	assert.Equal(t, "none", Unbounded.String())

	assert.Equal(t, Unbounded, BoundAt(math.Inf(1)))
	assert.Equal(t, Unbounded, BoundAt(math.Inf(-1)))
	assert.True(t, BoundAt(0).IsSet())
	assert.False(t, Bound{}.IsSet())
}

func TestBoundNative(t *testing.T) {
	assert.Equal(t, 3.0, BoundAt(3).native(1))
	assert.Equal(t, 1e100, Unbounded.native(1))
	assert.Equal(t, -1e100, Unbounded.native(-1))

	assert.Equal(t, Unbounded, boundFromNative(1e100))
	assert.Equal(t, Unbounded, boundFromNative(-1e100))
	assert.Equal(t, Unbounded, boundFromNative(math.Inf(1)))
	assert.Equal(t, BoundAt(-4), boundFromNative(-4))
}
