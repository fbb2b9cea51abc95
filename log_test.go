package gurobi

import (
	"strings"
	"sync"
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Print(v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, s := range v {
		l.lines = append(l.lines, s.(string))
	}
}

func TestFromLogr(t *testing.T) {
	var got []string
	logger := FromLogr(funcr.New(func(prefix, args string) {
		got = append(got, args)
	}, funcr.Options{}))

	logger.Print("Optimal solution found")

	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Optimal solution found")
}

func TestWithLogger(t *testing.T) {
	logger := &recordingLogger{}

	model, err := NewModel("logged", Maximize, WithLogger(logger))
	require.NoError(t, err)
	defer model.Close()

	x, err := model.AddVariable(UpperBound(BoundAt(4)))
	require.NoError(t, err)
	require.NoError(t, model.SetObjectiveCoefficient(x, 1))

	_, err = model.Solve()
	require.NoError(t, err)

	logger.mu.Lock()
	defer logger.mu.Unlock()

	require.NotEmpty(t, logger.lines)
	for _, line := range logger.lines {
		assert.False(t, strings.HasSuffix(line, "\n"))
	}

	v, err := model.Parameter("OutputFlag")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestWithLoggerClone(t *testing.T) {
	logger := &recordingLogger{}

	model, err := NewModel("logged", Maximize, WithLogger(logger))
	require.NoError(t, err)
	defer model.Close()

	clone, err := model.Clone()
	require.NoError(t, err)
	defer clone.Close()

	assert.Same(t, logger, clone.state.logger)
}

func TestQuietByDefault(t *testing.T) {
	model := newTestModel(t, Maximize)

	v, err := model.Parameter("OutputFlag")
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}
