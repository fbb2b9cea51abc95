package main

import (
	"github.com/spf13/cobra"

	"github.com/costela/gurobi/cmd/grbsolve/convertcmd"
	"github.com/costela/gurobi/cmd/grbsolve/paramscmd"
	"github.com/costela/gurobi/cmd/grbsolve/solvecmd"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "grbsolve",
		Short:        "Solve and convert optimization models with Gurobi",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		solvecmd.NewCmd(),
		convertcmd.NewCmd(),
		paramscmd.NewCmd(),
	)

	return cmd
}
