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

var tiers = []string{log.TierAccurate, log.TierFast, log.TierFloat32}

// findTarget returns the evaluator serving branch and tier.
func findTarget(branch int, tier string) (accuracy.Target, error) {
	if branch != 0 && branch != -1 {
		return accuracy.Target{}, errors.NewValidationError("branch", "must be 0 or -1", branch)
	}
	t, ok := lo.Find(accuracy.Targets(), func(t accuracy.Target) bool {
		return t.Branch == branch && t.Tier == tier
	})
	if !ok {
		return accuracy.Target{}, errors.NewValidationError("tier", "must be one of accurate, fast, float32", tier)
	}
	return t, nil
}

func newEvalCmd() *cobra.Command {
	var (
		branch int
		tier   string
	)
	cmd := &cobra.Command{
		Use:   "eval [flags] -- z...",
		Short: "Evaluate a real branch at one or more arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := findTarget(branch, tier)
			if err != nil {
				return err
			}
			logger := log.GetLogger().With(log.BranchKey, branch, log.TierKey, tier)

			var first error
			for _, arg := range args {
				z, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.NewValidationError("z", "not a number", arg)
				}
				w, err := target.Eval(z)
				if err != nil {
					logger.Warn("argument outside the branch", log.ArgumentKey, z, log.ErrAttrKey, err)
					if first == nil {
						first = err
					}
				}
				logger.Debug("evaluated", log.ArgumentKey, z, log.ResultKey, w)
				fmt.Fprintf(cmd.OutOrStdout(), "%s(%v) = %v\n", target.Name, z, w)
			}
			return first
		},
	}
	cmd.Flags().IntVar(&branch, "branch", 0, "real branch: 0 or -1")
	cmd.Flags().StringVar(&tier, "tier", log.TierAccurate, "approximation tier: accurate, fast or float32")
	return cmd
}
