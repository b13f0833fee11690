package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/refnet/simulate"
)

type scenarioSeries struct {
	Name        string  `json:"name" yaml:"name"`
	Probability float64 `json:"probability" yaml:"probability"`
	Cumulative  []int   `json:"cumulative" yaml:"cumulative"`
}

func (a *app) simulateCmd() *cobra.Command {
	var (
		days      int
		scenarios []string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Project cumulative referrals for named adoption scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := a.cfg.Simulation.Scenarios
			if len(scenarios) > 0 {
				var err error
				if list, err = parseScenarios(scenarios); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("days") {
				days = a.cfg.Simulation.Days
			}
			seed, ok := a.seedOrZero()
			if !ok {
				seed = time.Now().UnixNano()
			}

			sim := simulate.New(a.cfg.SimulatorOptions()...)
			var out []scenarioSeries
			err := a.metrics.Time("simulate", func() error {
				series, err := sim.RunScenarios(cmd.Context(), list, days, seed)
				if err != nil {
					return err
				}
				for _, sc := range list {
					v, _ := series.Get(sc.Name)
					a.metrics.RecordSimulation("scenario", v)
					out = append(out, scenarioSeries{Name: sc.Name, Probability: sc.Probability, Cumulative: v})
				}
				return nil
			})
			if err != nil {
				return err
			}
			a.log.Info().Int("scenarios", len(out)).Int("days", days).Int64("seed", seed).Msg("simulation finished")
			return a.emit("simulate", out)
		},
	}
	cmd.Flags().IntVar(&days, "days", 30, "days to simulate")
	cmd.Flags().StringArrayVar(&scenarios, "scenario", nil, "name=probability, repeatable (default: config scenarios)")
	return cmd
}

func parseScenarios(raw []string) ([]simulate.Scenario, error) {
	out := make([]simulate.Scenario, 0, len(raw))
	for _, r := range raw {
		name, p, ok := strings.Cut(r, "=")
		if !ok || name == "" {
			return nil, errors.Errorf("scenario %q: want name=probability", r)
		}
		prob, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "scenario %q", r)
		}
		out = append(out, simulate.Scenario{Name: name, Probability: prob})
	}
	return out, nil
}
