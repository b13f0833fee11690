// SPDX-License-Identifier: MIT
// Package: refnet/bonus
//
// optimizer.go - minimum-bonus search over simulator outputs.
//
// Search:
//   - Candidates are k·increment for k = 0..⌊upper/increment⌋, at most
//     MaxGridSteps+1 of them.
//   - Lower-bound binary search on k: a hit moves hi to mid-1 and records
//     mid, a miss moves lo to mid+1.
//   - Stops when the untested span (hi-lo+1)·increment drops below epsilon,
//     when the candidate range is exhausted, or after MaxIterations probes.

package bonus

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/refnet/simulate"
)

// ErrOptionViolation is returned by New for out-of-range options.
var ErrOptionViolation = errors.New("bonus: invalid option")

// Defaults for the search grid.
const (
	DefaultUpperBound    = 10000.0
	DefaultIncrement     = 10.0
	DefaultEpsilon       = 1e-3
	DefaultMaxIterations = 64

	// MaxGridSteps bounds ⌊UpperBound/Increment⌋ so grid indices fit an int
	// on every platform.
	MaxGridSteps = math.MaxInt32
)

// Result is the outcome of MinBonusForTarget.
type Result struct {
	// Bonus is the smallest tested bonus that met the target; 0 when !Found.
	Bonus float64 `json:"bonus" yaml:"bonus"`
	// Probability is the adoption probability at Bonus.
	Probability float64 `json:"probability" yaml:"probability"`
	// Found reports whether any tested bonus met the target.
	Found bool `json:"found" yaml:"found"`
	// Iterations is the number of simulator probes.
	Iterations int `json:"iterations" yaml:"iterations"`
}

// Options holds the search parameters.
type Options struct {
	UpperBound    float64
	Increment     float64
	Epsilon       float64
	MaxIterations int
	Simulator     *simulate.Simulator

	err error
}

// Option configures an Optimizer.
type Option func(*Options)

// DefaultOptions returns $10 steps up to $10000, epsilon 1e-3, 64 probes and
// no simulator (New creates an unseeded one).
func DefaultOptions() Options {
	return Options{
		UpperBound:    DefaultUpperBound,
		Increment:     DefaultIncrement,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
	}
}

// WithUpperBound sets the largest bonus considered. Must be >= 0.
func WithUpperBound(v float64) Option {
	return func(o *Options) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: upper bound %v", ErrOptionViolation, v)
			return
		}
		o.UpperBound = v
	}
}

// WithIncrement sets the bonus grid step. Must be > 0.
func WithIncrement(v float64) Option {
	return func(o *Options) {
		if !(v > 0) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: increment %v", ErrOptionViolation, v)
			return
		}
		o.Increment = v
	}
}

// WithEpsilon sets the minimum untested span worth probing. Must be >= 0.
func WithEpsilon(v float64) Option {
	return func(o *Options) {
		if v < 0 || math.IsNaN(v) {
			o.err = fmt.Errorf("%w: epsilon %v", ErrOptionViolation, v)
			return
		}
		o.Epsilon = v
	}
}

// WithMaxIterations caps the number of simulator probes. Must be > 0.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations %d", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithSimulator evaluates probes on s. A nil s is ignored.
func WithSimulator(s *simulate.Simulator) Option {
	return func(o *Options) {
		if s != nil {
			o.Simulator = s
		}
	}
}

// Optimizer runs bonus searches. It is not safe for concurrent use because it
// shares its Simulator's generator.
type Optimizer struct {
	opts Options
}

// New builds an Optimizer. It returns ErrOptionViolation if any option was
// out of range or the grid UpperBound/Increment has more than MaxGridSteps
// steps.
func New(opts ...Option) (*Optimizer, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if steps := math.Floor(o.UpperBound / o.Increment); steps > MaxGridSteps {
		return nil, fmt.Errorf("%w: %v/%v gives %.0f grid steps, max %d",
			ErrOptionViolation, o.UpperBound, o.Increment, steps, MaxGridSteps)
	}
	if o.Simulator == nil {
		o.Simulator = simulate.New()
	}

	return &Optimizer{opts: o}, nil
}

// Options returns a copy of the optimizer's settings.
func (op *Optimizer) Options() Options { return op.opts }

// MinBonusForTarget returns the smallest bonus on the grid whose simulated
// cumulative referrals after days days reach targetHires.
//
// For days <= 0 the simulated total is 0, so only a non-positive target can
// be met (at bonus 0). A nil fn is treated as p(b) = 0.
func (op *Optimizer) MinBonusForTarget(days, targetHires int, fn AdoptionFunc) Result {
	if fn == nil {
		fn = func(float64) float64 { return 0 }
	}
	inc := op.opts.Increment
	lo, hi := 0, int(math.Floor(op.opts.UpperBound/inc))
	best := -1
	var res Result

	for lo <= hi && res.Iterations < op.opts.MaxIterations {
		if float64(hi-lo+1)*inc < op.opts.Epsilon {
			break
		}
		mid := lo + (hi-lo)/2
		res.Iterations++
		if op.achieved(fn(float64(mid)*inc), days) >= targetHires {
			best = mid
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}

	if best >= 0 {
		res.Found = true
		res.Bonus = float64(best) * inc
		res.Probability = clamp01(fn(res.Bonus))
	}

	return res
}

// achieved is the cumulative count on the final day.
func (op *Optimizer) achieved(p float64, days int) int {
	if days <= 0 {
		return 0
	}
	series := op.opts.Simulator.Simulate(p, days)

	return series[days-1]
}
