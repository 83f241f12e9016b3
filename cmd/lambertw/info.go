package main

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lambertw/core/elementary"
	"github.com/YuminosukeSato/lambertw/core/piecewise"
	"github.com/YuminosukeSato/lambertw/fukushima"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the numeric backend, CPU features and coefficient tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "backend:      %s\n", elementary.Backend)
			fmt.Fprintf(out, "arch:         %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "hardware fma: %t\n", elementary.HardwareFMA())
			fmt.Fprintf(out, "-1/e:         %v\n", fukushima.NegInvE)
			fmt.Fprintf(out, "omega:        %v\n\n", fukushima.Omega)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "TABLE\tBRANCH\tBITS\tWIDTH\tVARIABLE\tINTERVALS\tSTATUS")
			for _, ti := range fukushima.Tables() {
				width := "float64"
				if ti.Float32 {
					width = "float32"
				}
				variable := "z"
				if ti.Variable == piecewise.Shifted {
					variable = "z+1/e"
				}
				status := "ok"
				if err := ti.Validate(); err != nil {
					status = err.Error()
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%d\t%s\n",
					ti.Name, ti.Branch, ti.Bits, width, variable, ti.Intervals, status)
			}
			return tw.Flush()
		},
	}
}
