package simulate

import (
	"context"
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/errgroup"
)

// ErrDuplicateScenario is returned when two scenarios share a name.
var ErrDuplicateScenario = errors.New("simulate: duplicate scenario name")

// Scenario is a named adoption probability.
type Scenario struct {
	Name        string  `yaml:"name" json:"name"`
	Probability float64 `yaml:"probability" json:"probability"`
}

// DefaultScenarios are the conservative/moderate/aggressive projections
// charted by the dashboard.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "conservative", Probability: 0.2},
		{Name: "moderate", Probability: 0.35},
		{Name: "aggressive", Probability: 0.5},
	}
}

// RunScenarios simulates every scenario for days days in parallel and
// returns the cumulative series keyed by scenario name, in input order.
//
// Each scenario runs on its own Simulator with s's cohort, capacity and max
// days, seeded with seed+index, so results are reproducible for a fixed seed
// and independent of scheduling.
func (s *Simulator) RunScenarios(ctx context.Context, scenarios []Scenario, days int, seed int64) (*orderedmap.OrderedMap[string, []int], error) {
	seen := make(map[string]struct{}, len(scenarios))
	for _, sc := range scenarios {
		if _, dup := seen[sc.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScenario, sc.Name)
		}
		seen[sc.Name] = struct{}{}
	}

	series := make([][]int, len(scenarios))
	g, gCtx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			sim := New(
				WithCohort(s.cohort),
				WithCapacity(s.capacity),
				WithMaxDays(s.maxDays),
				WithSeed(seed+int64(i)),
			)
			series[i] = sim.Simulate(sc.Probability, days)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := orderedmap.New[string, []int]()
	for i, sc := range scenarios {
		out.Set(sc.Name, series[i])
	}

	return out, nil
}
