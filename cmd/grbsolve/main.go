package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/costela/gurobi/cmd/grbsolve/cmdutil"
)

func main() {
	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	os.Exit(cmdutil.Run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:], NewRootCmd()))
}
