package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/gurobi/cmd/grbsolve/cmdutil"
)

func TestRootSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.Subset(t, names, []string{"solve", "convert", "params"})
}

func TestRunReturnCodes(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	code := cmdutil.Run(context.Background(), &bytes.Buffer{}, stdout, stderr, []string{"params", "--filter", "Threads"}, NewRootCmd())
	require.Equal(t, cmdutil.ReturnCodeSuccess, code)
	assert.Contains(t, stdout.String(), "Threads")

	code = cmdutil.Run(context.Background(), &bytes.Buffer{}, stdout, stderr, []string{"no-such-command"}, NewRootCmd())
	assert.Equal(t, cmdutil.ReturnCodeError, code)
	assert.NotEmpty(t, stderr.String())
}
