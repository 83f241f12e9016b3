package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/lambertw/internal/chart"
)

func newPlotCmd() *cobra.Command {
	var (
		out           string
		steps         int
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot W0 and W-1 to an image file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := chart.Save(out, steps, vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "lambert_w_plot.png", "output file; the extension selects the format")
	f.IntVar(&steps, "steps", chart.DefaultSteps, "samples per branch")
	f.Float64Var(&width, "width", 16, "width in inches")
	f.Float64Var(&height, "height", 9, "height in inches")
	return cmd
}
