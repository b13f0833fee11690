package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/bonus"
	"github.com/katalvlaran/refnet/internal/config"
	"github.com/katalvlaran/refnet/simulate"
)

type bonusResult struct {
	bonus.Result `yaml:",inline"`

	Days   int          `json:"days" yaml:"days"`
	Target int          `json:"target" yaml:"target"`
	Curve  config.Curve `json:"curve" yaml:"curve"`
}

func (a *app) bonusCmd() *cobra.Command {
	var (
		days, target int
		curve        config.Curve
	)
	cmd := &cobra.Command{
		Use:   "bonus",
		Short: "Find the smallest referral bonus that reaches a hiring target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cv := a.cfg.Bonus.Curve
			f := cmd.Flags()
			if f.Changed("curve") {
				cv.Kind = curve.Kind
			}
			if f.Changed("base") {
				cv.Base = curve.Base
			}
			if f.Changed("per-dollar") {
				cv.PerDollar = curve.PerDollar
			}
			if f.Changed("midpoint") {
				cv.Midpoint = curve.Midpoint
			}
			if f.Changed("steepness") {
				cv.Steepness = curve.Steepness
			}
			if f.Changed("ceiling") {
				cv.Ceiling = curve.Ceiling
			}
			if f.Changed("threshold") {
				cv.Threshold = curve.Threshold
			}
			if f.Changed("low") {
				cv.Low = curve.Low
			}
			if f.Changed("high") {
				cv.High = curve.High
			}
			c := a.cfg
			c.Bonus.Curve = cv
			if err := c.Validate(); err != nil {
				return err
			}

			opts := append(c.BonusOptions(), bonus.WithSimulator(simulate.New(c.SimulatorOptions()...)))
			op, err := bonus.New(opts...)
			if err != nil {
				return err
			}
			var res bonus.Result
			_ = a.metrics.Time("bonus", func() error {
				res = op.MinBonusForTarget(days, target, cv.AdoptionFunc())
				return nil
			})
			a.metrics.SimulationRuns.WithLabelValues("bonus_probe").Add(float64(res.Iterations))
			a.log.Info().Bool("found", res.Found).Float64("bonus", res.Bonus).
				Int("probes", res.Iterations).Msg("bonus search finished")
			return a.emit("bonus", bonusResult{Days: days, Target: target, Curve: cv, Result: res})
		},
	}
	fl := cmd.Flags()
	fl.IntVar(&days, "days", 30, "days to simulate per probe")
	fl.IntVar(&target, "target", 1000, "cumulative hires to reach by the last day")
	fl.StringVar(&curve.Kind, "curve", config.CurveLogistic, "adoption curve: linear, logistic or step")
	fl.Float64Var(&curve.Base, "base", 0, "linear: probability at $0")
	fl.Float64Var(&curve.PerDollar, "per-dollar", 0, "linear: probability gained per dollar")
	fl.Float64Var(&curve.Midpoint, "midpoint", 0, "logistic: bonus at half the ceiling")
	fl.Float64Var(&curve.Steepness, "steepness", 0, "logistic: slope at the midpoint")
	fl.Float64Var(&curve.Ceiling, "ceiling", 0, "logistic: maximum probability")
	fl.Float64Var(&curve.Threshold, "threshold", 0, "step: smallest bonus that gets the high probability")
	fl.Float64Var(&curve.Low, "low", 0, "step: probability below the threshold")
	fl.Float64Var(&curve.High, "high", 0, "step: probability at or above the threshold")
	return cmd
}
