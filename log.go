package gurobi

import (
	"fmt"

	"github.com/go-logr/logr"
)

type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// FromLogr adapts a logr.Logger, logging every solver line at info level.
func FromLogr(logger logr.Logger) Logger {
	return logrLogger{logger: logger}
}

type logrLogger struct {
	logger logr.Logger
}

func (l logrLogger) Print(v ...interface{}) {
	l.logger.Info(fmt.Sprint(v...))
}
