package solvecmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/costela/gurobi"
	"github.com/costela/gurobi/cmd/grbsolve/cmdutil"
)

func NewCmd() *cobra.Command {
	const (
		solveUse   = "solve [flags] model"
		solveShort = "solve a model file."
		solveLong  = "solve a model file in any format Gurobi reads (LP, MPS, ...). Parameters from --params are applied first, then --param and --time-limit."
	)

	cmd := &cobra.Command{
		Use:   solveUse,
		Short: solveShort,
		Long:  solveLong,
		Args:  cobra.ExactArgs(1),
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		src := args[0]
		if src == "" {
			return fmt.Errorf("%w: 'model' must not be empty", cmdutil.ErrInvalidArgs)
		}

		log := cmdutil.NewLogger(cmd, opts.Verbose)

		var modelOpts []gurobi.Option
		if opts.Verbose {
			modelOpts = append(modelOpts, gurobi.WithLogger(gurobi.FromLogr(log.WithName("gurobi"))))
		}

		log.Info("reading model", "path", src)

		model, err := gurobi.ReadModel(src, modelOpts...)
		if err != nil {
			return err
		}
		defer model.Close()

		if err := opts.Configure(model); err != nil {
			return err
		}

		if opts.Write != "" {
			log.Info("writing model", "path", opts.Write)
			if err := model.Write(opts.Write); err != nil {
				return fmt.Errorf("writing model: %w", err)
			}
		}

		res, err := model.SolveWithContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("solving %s: %w", src, err)
		}

		return printResult(cmd, model, res)
	}

	return cmd
}

type options struct {
	Params     []string
	ParamsFile string
	TimeLimit  float64
	Write      string
	Verbose    bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringArrayVar(
		&o.Params,
		"param",
		o.Params,
		"solver parameter as Name=value, may be repeated",
	)
	flags.StringVar(
		&o.ParamsFile,
		"params",
		o.ParamsFile,
		"YAML file mapping solver parameter names to values",
	)
	flags.Float64Var(
		&o.TimeLimit,
		"time-limit",
		o.TimeLimit,
		"time limit in seconds, 0 for none",
	)
	flags.StringVar(
		&o.Write,
		"write",
		o.Write,
		"write the configured model to this file before solving",
	)
	flags.BoolVarP(
		&o.Verbose,
		"verbose",
		"v",
		o.Verbose,
		"show the solver log",
	)
}

// Parameters is the subset of *gurobi.Model needed to apply solver
// parameters.
type Parameters interface {
	SetParameter(name string, value interface{}) error
	SetParameterString(name, raw string) error
}

// Configure applies the parameters given on the command line to model.
func (o *options) Configure(model Parameters) error {
	if o.ParamsFile != "" {
		values, err := loadParamsFile(o.ParamsFile)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if err := model.SetParameter(name, values[name]); err != nil {
				return fmt.Errorf("%s: %w", o.ParamsFile, err)
			}
		}
	}

	for _, assignment := range o.Params {
		name, value, err := splitAssignment(assignment)
		if err != nil {
			return err
		}
		if err := model.SetParameterString(name, value); err != nil {
			return err
		}
	}

	if o.TimeLimit > 0 {
		if err := model.SetParameter("TimeLimit", o.TimeLimit); err != nil {
			return err
		}
	}

	return nil
}

func splitAssignment(assignment string) (string, string, error) {
	name, value, ok := strings.Cut(assignment, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return "", "", fmt.Errorf("%w: parameter %q is not of the form Name=value", cmdutil.ErrInvalidArgs, assignment)
	}
	return strings.TrimSpace(name), value, nil
}

func loadParamsFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file: %w", err)
	}

	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}

	return values, nil
}

func printResult(cmd *cobra.Command, model *gurobi.Model, res *gurobi.SolveResult) error {
	obj, err := res.ObjectiveValue()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "status", res.Status())
	fmt.Fprintln(out, "objective", strconv.FormatFloat(obj, 'g', -1, 64))

	count, err := model.VariableCount()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		name, err := model.VariableName(i)
		if err != nil {
			return err
		}
		v, err := res.Value(i)
		if err != nil {
			return err
		}
		rows = append(rows, []string{name, strconv.FormatFloat(v, 'g', -1, 64)})
	}

	return cmdutil.PrintTable(cmd, []string{"VARIABLE", "VALUE"}, rows)
}
