package main

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/YuminosukeSato/lambertw/accuracy"
	"github.com/YuminosukeSato/lambertw/pkg/errors"
	"github.com/YuminosukeSato/lambertw/pkg/log"
)

// selectTargets filters the sweep targets by tier and branch; "all" matches
// everything.
func selectTargets(tier, branch string) ([]accuracy.Target, error) {
	if tier != "all" && !lo.Contains(tiers, tier) {
		return nil, errors.NewValidationError("tier", "must be all, accurate, fast or float32", tier)
	}
	b := 0
	if branch != "all" {
		n, err := strconv.Atoi(branch)
		if err != nil || (n != 0 && n != -1) {
			return nil, errors.NewValidationError("branch", "must be all, 0 or -1", branch)
		}
		b = n
	}
	return lo.Filter(accuracy.Targets(), func(t accuracy.Target, _ int) bool {
		return (tier == "all" || t.Tier == tier) && (branch == "all" || t.Branch == b)
	}), nil
}

func newAuditCmd() *cobra.Command {
	var (
		tier, branch string
		samples      int
		seed         uint64
		compare      bool
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Measure round-trip residuals of the real-branch evaluators",
		Long: `audit draws uniformly distributed arguments over each branch's domain and
reports the relative residual |w·e^w - z| / |z|. With --compare it instead
compares every tier against the accurate tier on a grid around every interval
boundary of the coefficient tables.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := selectTargets(tier, branch)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			logger := log.GetLogger()

			var reports []accuracy.Report
			for _, t := range targets {
				var r accuracy.Report
				if compare {
					ref, _ := findTarget(t.Branch, log.TierAccurate)
					r, err = accuracy.Compare(t.Name, ref.Eval, t.Eval, t.Grid())
					if err == nil {
						logger.Info("comparison finished", r.Fields()...)
					}
				} else {
					r, err = accuracy.Sweep(t, accuracy.SweepConfig{Samples: samples, Seed: seed, Logger: logger})
				}
				if err != nil {
					return errors.Wrapf(err, "auditing %s", t.Name)
				}
				fmt.Fprintln(out, r.String())
				reports = append(reports, r)
			}

			dirty := lo.CountBy(reports, func(r accuracy.Report) bool { return !r.Clean() })
			if dirty > 0 {
				return errors.Newf("%d of %d audits produced non-finite results", dirty, len(reports))
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&tier, "tier", "all", "tier to audit: all, accurate, fast or float32")
	f.StringVar(&branch, "branch", "all", "branch to audit: all, 0 or -1")
	f.IntVar(&samples, "samples", accuracy.DefaultSamples, "random samples per evaluator")
	f.Uint64Var(&seed, "seed", 1, "PCG seed")
	f.BoolVar(&compare, "compare", false, "compare against the accurate tier on boundary grids")
	return cmd
}
