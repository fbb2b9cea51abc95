package paramscmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/costela/gurobi/cmd/grbsolve/cmdutil"
	"github.com/costela/gurobi/internal/param"
)

func NewCmd() *cobra.Command {
	const (
		paramsUse   = "params [flags]"
		paramsShort = "list the solver parameters accepted by --param and --params."
	)

	cmd := &cobra.Command{
		Use:   paramsUse,
		Short: paramsShort,
		Args:  cobra.NoArgs,
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		filter := strings.ToLower(opts.Filter)

		var rows [][]string
		for _, name := range param.Names() {
			if !strings.Contains(strings.ToLower(name), filter) {
				continue
			}
			_, kind, err := param.Lookup(name)
			if err != nil {
				return err
			}
			rows = append(rows, []string{name, kind.String()})
		}

		return cmdutil.PrintTable(cmd, []string{"PARAMETER", "TYPE"}, rows)
	}

	return cmd
}

type options struct {
	Filter string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(
		&o.Filter,
		"filter",
		o.Filter,
		"only list parameters whose name contains this text, ignoring case",
	)
}
