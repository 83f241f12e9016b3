// Command lambertw evaluates, audits and plots the Lambert W function.
//
// Usage:
//
//	lambertw eval [--branch 0|-1] [--tier accurate|fast|float32] -- z...
//	lambertw complex --k 2 --re 1 --im 2
//	lambertw audit [--tier all] [--branch all] [--samples n] [--seed s] [--compare]
//	lambertw plot [--out lambert_w_plot.png] [--steps 10000]
//	lambertw info
//
// Negative arguments to eval must follow "--" so they are not read as flags.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lambertw/pkg/errors"
	"github.com/YuminosukeSato/lambertw/pkg/log"
)

type app struct {
	logLevel string
	restore  func()
}

func (a *app) close() {
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lambertw",
		Short:         "Evaluate, audit and plot the Lambert W function",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := log.SetupLogger(cmd.ErrOrStderr(), a.logLevel); err != nil {
				return err
			}
			a.restore = log.EnableZerologWarnings(cmd.ErrOrStderr())
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newEvalCmd(),
		newComplexCmd(),
		newAuditCmd(),
		newPlotCmd(),
		newInfoCmd(),
	)
	return root
}

func run(args []string, stdout, stderr io.Writer) (err error) {
	defer errors.Recover(&err, "lambertw")

	a := &app{}
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		slog.Error("command failed", log.ErrAttr(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
