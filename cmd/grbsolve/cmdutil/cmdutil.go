package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command report an error.
	ReturnCodeError = 1
)

var ErrInvalidArgs = errors.New("arguments invalid")

func init() {
	pterm.DisableColor()
}

func Run(ctx context.Context, inReader io.Reader, outWriter, errWriter io.Writer, args []string, cmd *cobra.Command) int {
	cmd.SetIn(inReader)
	cmd.SetOut(outWriter)
	cmd.SetErr(errWriter)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		return ReturnCodeError
	}

	return ReturnCodeSuccess
}

// NewLogger returns a development logger writing to the command's error
// stream. Only errors are shown unless verbose is set.
func NewLogger(cmd *cobra.Command, verbose bool) logr.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cmd.ErrOrStderr()),
		level,
	)

	return zapr.NewLogger(zap.New(core))
}

// PrintTable renders rows below headers as a plain text table on the
// command's output stream.
func PrintTable(cmd *cobra.Command, headers []string, rows [][]string) error {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, headers)
	data = append(data, rows...)

	output, err := pterm.DefaultTable.WithHasHeader().WithData(data).WithSeparator("  ").Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", output); err != nil {
		return fmt.Errorf("printing table: %w", err)
	}

	return nil
}
