package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/simulate"
)

type daysResult struct {
	Probability float64 `json:"probability" yaml:"probability"`
	Target      int     `json:"target" yaml:"target"`
	Reachable   bool    `json:"reachable" yaml:"reachable"`
	Days        int     `json:"days,omitempty" yaml:"days,omitempty"`
	MaxDays     int     `json:"max_days" yaml:"max_days"`
	Search      string  `json:"search" yaml:"search"`
}

func (a *app) daysCmd() *cobra.Command {
	var (
		prob   float64
		target int
	)
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Estimate the days needed to reach a cumulative referral target",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			sim := simulate.New(a.cfg.SimulatorOptions()...)
			res := daysResult{Probability: prob, Target: target, MaxDays: sim.MaxDays(), Search: a.cfg.Simulation.DaysSearch}
			_ = a.metrics.Time("days_to_target", func() error {
				res.Days, res.Reachable = sim.DaysToTarget(prob, target)
				return nil
			})
			// no single final series to observe; count the run only
			a.metrics.SimulationRuns.WithLabelValues("days_to_target").Inc()
			if !res.Reachable {
				a.log.Info().Float64("probability", prob).Int("target", target).Msg("target unreachable within max days")
			}
			return a.emit("days", res)
		},
	}
	cmd.Flags().Float64Var(&prob, "probability", 0.35, "daily success probability per referrer slot")
	cmd.Flags().IntVar(&target, "target", 1000, "cumulative referral target")
	return cmd
}
