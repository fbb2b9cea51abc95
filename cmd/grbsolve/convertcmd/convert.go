package convertcmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/costela/gurobi"
	"github.com/costela/gurobi/cmd/grbsolve/cmdutil"
)

func NewCmd() *cobra.Command {
	const (
		convertUse   = "convert [flags] source destination"
		convertShort = "convert a model file to another format."
		convertLong  = "convert a model file to another format. The formats are selected by the file extensions, e.g. model.lp to model.mps.gz."
	)

	cmd := &cobra.Command{
		Use:   convertUse,
		Short: convertShort,
		Long:  convertLong,
		Args:  cobra.ExactArgs(2),
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		if src == "" || dst == "" {
			return fmt.Errorf("%w: 'source' and 'destination' must not be empty", cmdutil.ErrInvalidArgs)
		}

		log := cmdutil.NewLogger(cmd, opts.Verbose)
		log.Info("converting model", "source", src, "destination", dst)

		model, err := gurobi.ReadModel(src)
		if err != nil {
			return err
		}
		defer model.Close()

		if opts.Name != "" {
			if err := model.SetName(opts.Name); err != nil {
				return err
			}
		}

		if err := model.Write(dst); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}

		return nil
	}

	return cmd
}

type options struct {
	Name    string
	Verbose bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVar(
		&o.Name,
		"name",
		o.Name,
		"rename the model before writing it",
	)
	flags.BoolVarP(
		&o.Verbose,
		"verbose",
		"v",
		o.Verbose,
		"log progress",
	)
}
