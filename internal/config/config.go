// Package config loads refnet CLI settings from YAML with environment
// overrides.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/refnet/bonus"
	"github.com/katalvlaran/refnet/simulate"
	"github.com/katalvlaran/refnet/stats"
)

// Environment variables consulted by Load.
const (
	EnvConfig      = "REFNET_CONFIG"
	EnvLogLevel    = "REFNET_LOG_LEVEL"
	EnvSeed        = "REFNET_SEED"
	EnvMetricsFile = "REFNET_METRICS_FILE"
)

// DaysSearch modes for simulation.days_search.
const (
	SearchResimulate = "resimulate"
	SearchSingle     = "single"
)

// Bonus curve kinds for bonus.curve.kind.
const (
	CurveLinear   = "linear"
	CurveLogistic = "logistic"
	CurveStep     = "step"
)

// Config is the refnet configuration. Load fills it from defaults, an
// optional YAML file and REFNET_* environment overrides, then validates it.
// Each section maps onto one package: Simulation onto simulate options,
// Bonus onto bonus options and the adoption curve, Analytics onto stats.
type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	Simulation struct {
		Cohort     int                 `yaml:"cohort"`
		Capacity   int                 `yaml:"capacity"`
		MaxDays    int                 `yaml:"max_days"`
		Days       int                 `yaml:"days"`
		Seed       *int64              `yaml:"seed"`
		DaysSearch string              `yaml:"days_search"`
		Scenarios  []simulate.Scenario `yaml:"scenarios"`
	} `yaml:"simulation"`
	Bonus struct {
		UpperBound    float64 `yaml:"upper_bound"`
		Increment     float64 `yaml:"increment"`
		Epsilon       float64 `yaml:"epsilon"`
		MaxIterations int     `yaml:"max_iterations"`
		Curve         Curve   `yaml:"curve"`
	} `yaml:"bonus"`
	Analytics struct {
		TopK int `yaml:"top_k"`
	} `yaml:"analytics"`
	Metrics struct {
		File string `yaml:"file"`
	} `yaml:"metrics"`
}

// Curve describes the adoption function used by the bonus command.
type Curve struct {
	Kind      string  `yaml:"kind" json:"kind"`
	Base      float64 `yaml:"base,omitempty" json:"base,omitempty"`
	PerDollar float64 `yaml:"per_dollar,omitempty" json:"per_dollar,omitempty"`
	Midpoint  float64 `yaml:"midpoint,omitempty" json:"midpoint,omitempty"`
	Steepness float64 `yaml:"steepness,omitempty" json:"steepness,omitempty"`
	Ceiling   float64 `yaml:"ceiling,omitempty" json:"ceiling,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty" json:"threshold,omitempty"`
	Low       float64 `yaml:"low,omitempty" json:"low,omitempty"`
	High      float64 `yaml:"high,omitempty" json:"high,omitempty"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.Simulation.Cohort = simulate.DefaultCohort
	c.Simulation.Capacity = simulate.DefaultCapacity
	c.Simulation.MaxDays = simulate.DefaultMaxDays
	c.Simulation.Days = 30
	c.Simulation.DaysSearch = SearchResimulate
	c.Simulation.Scenarios = simulate.DefaultScenarios()
	c.Bonus.UpperBound = bonus.DefaultUpperBound
	c.Bonus.Increment = bonus.DefaultIncrement
	c.Bonus.Epsilon = bonus.DefaultEpsilon
	c.Bonus.MaxIterations = bonus.DefaultMaxIterations
	c.Bonus.Curve = Curve{Kind: CurveLogistic, Midpoint: 500, Steepness: 0.01, Ceiling: 0.6}
	c.Analytics.TopK = stats.DefaultTopK
	return c
}

// Default returns the built-in configuration.
func Default() Config { return defaultConfig() }

// Load reads path (or $REFNET_CONFIG when path is empty) over the defaults,
// then applies environment overrides and validates the result. A missing
// path is not an error; an unreadable or malformed file is.
func Load(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s=%q", EnvSeed, v)
		}
		c.Simulation.Seed = &seed
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.Metrics.File = v
	}
	return nil
}

// Validate rejects values the simulator and optimizer would refuse.
func (c Config) Validate() error {
	switch {
	case c.Simulation.Cohort <= 0:
		return errors.Errorf("simulation.cohort must be positive, got %d", c.Simulation.Cohort)
	case c.Simulation.Capacity <= 0:
		return errors.Errorf("simulation.capacity must be positive, got %d", c.Simulation.Capacity)
	case c.Simulation.MaxDays <= 0:
		return errors.Errorf("simulation.max_days must be positive, got %d", c.Simulation.MaxDays)
	case c.Simulation.DaysSearch != SearchResimulate && c.Simulation.DaysSearch != SearchSingle:
		return errors.Errorf("simulation.days_search must be %q or %q, got %q",
			SearchResimulate, SearchSingle, c.Simulation.DaysSearch)
	case c.Bonus.Curve.Kind != CurveLinear && c.Bonus.Curve.Kind != CurveLogistic && c.Bonus.Curve.Kind != CurveStep:
		return errors.Errorf("bonus.curve.kind must be %q, %q or %q, got %q",
			CurveLinear, CurveLogistic, CurveStep, c.Bonus.Curve.Kind)
	case c.Analytics.TopK < 0:
		return errors.Errorf("analytics.top_k must not be negative, got %d", c.Analytics.TopK)
	}
	seen := make(map[string]struct{}, len(c.Simulation.Scenarios))
	for _, s := range c.Simulation.Scenarios {
		if _, dup := seen[s.Name]; dup {
			return errors.Errorf("simulation.scenarios: duplicate name %q", s.Name)
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// SimulatorOptions translates the simulation section. The seed is applied
// only when set.
func (c Config) SimulatorOptions() []simulate.Option {
	opts := []simulate.Option{
		simulate.WithCohort(c.Simulation.Cohort),
		simulate.WithCapacity(c.Simulation.Capacity),
		simulate.WithMaxDays(c.Simulation.MaxDays),
	}
	if c.Simulation.Seed != nil {
		opts = append(opts, simulate.WithSeed(*c.Simulation.Seed))
	}
	if c.Simulation.DaysSearch == SearchSingle {
		opts = append(opts, simulate.WithSingleRunSearch())
	}
	return opts
}

// BonusOptions translates the bonus section; the caller adds WithSimulator.
func (c Config) BonusOptions() []bonus.Option {
	return []bonus.Option{
		bonus.WithUpperBound(c.Bonus.UpperBound),
		bonus.WithIncrement(c.Bonus.Increment),
		bonus.WithEpsilon(c.Bonus.Epsilon),
		bonus.WithMaxIterations(c.Bonus.MaxIterations),
	}
}

// AdoptionFunc builds the configured curve. Kinds other than linear and
// step yield the logistic curve; Validate rejects them first.
func (cv Curve) AdoptionFunc() bonus.AdoptionFunc {
	switch cv.Kind {
	case CurveLinear:
		return bonus.Linear(cv.Base, cv.PerDollar)
	case CurveStep:
		return bonus.Step(cv.Threshold, cv.Low, cv.High)
	default:
		return bonus.Logistic(cv.Midpoint, cv.Steepness, cv.Ceiling)
	}
}
