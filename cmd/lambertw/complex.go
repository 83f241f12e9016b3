package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lambertw/complexw"
	"github.com/YuminosukeSato/lambertw/pkg/log"
)

func newComplexCmd() *cobra.Command {
	var (
		k       int32
		re, im  float64
		maxIter int
		tol     float64
		cycles  bool
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "complex",
		Short: "Evaluate branch k at a complex argument",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			solver, err := complexw.New(
				complexw.WithMaxIterations(maxIter),
				complexw.WithTolerance(tol),
				complexw.WithCycleDetection(cycles),
				complexw.WithConvergenceWarning(verbose),
			)
			if err != nil {
				return err
			}

			z := complex(re, im)
			r := solver.Solve(k, z)
			log.GetLogger().Debug("solved",
				log.BranchKey, k,
				log.ArgumentKey, fmt.Sprint(z),
				log.ResultKey, fmt.Sprint(r.W),
				log.IterationsKey, r.Iterations,
				log.ToleranceKey, tol,
				log.ConvergedKey, r.Converged,
				log.SeedKey, r.Seed.String(),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "W_%d(%v) = %v\n", k, z, r.W)
			if verbose {
				fmt.Fprintf(out, "seed=%s iterations=%d converged=%t cycled=%t step=%g\n",
					r.Seed, r.Iterations, r.Converged, r.Cycled, r.Step)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.Int32Var(&k, "k", 0, "branch index")
	f.Float64Var(&re, "re", 0, "real part of z")
	f.Float64Var(&im, "im", 0, "imaginary part of z")
	f.IntVar(&maxIter, "max-iter", complexw.DefaultMaxIterations, "Halley iteration cap")
	f.Float64Var(&tol, "tol", complexw.DefaultTolerance, "stop when a Halley step is at most this large")
	f.BoolVar(&cycles, "cycle-detection", false, "stop when the iteration oscillates between two values")
	f.BoolVarP(&verbose, "verbose", "v", false, "print solver diagnostics and warn on non-convergence")
	return cmd
}
