package perf

import (
	"runtime"

	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/sorting"
)

const (
	defaultSamples  = 10
	defaultMinSize  = 1000
	defaultStepSize = 1000
	defaultSeed     = 1
)

// Config describes a sampling run. Sample i of every algorithm sorts a
// shuffled permutation of MinSize + i*StepSize distinct integers; all
// algorithms sort the same permutation for a given sample.
type Config struct {
	Algorithms []sorting.Algorithm `yaml:"algorithms"`
	Samples    int                 `yaml:"samples"`
	MinSize    int                 `yaml:"min_size"`
	StepSize   int                 `yaml:"step_size"`
	Workers    int                 `yaml:"workers"`
	Seed       uint64              `yaml:"seed"`
}

// DefaultConfig samples every algorithm ten times over sizes 1000 to 10000,
// with one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Algorithms: sorting.Algorithms(),
		Samples:    defaultSamples,
		MinSize:    defaultMinSize,
		StepSize:   defaultStepSize,
		Workers:    runtime.GOMAXPROCS(0),
		Seed:       defaultSeed,
	}
}

// Size returns the number of elements sorted in the given sample.
func (c Config) Size(sample int) int {
	return c.MinSize + c.StepSize*sample
}

// Validate reports every invalid field. Each error wraps errors.ErrInvalidConfig.
func (c Config) Validate() error {
	var errs errors.Collection

	if len(c.Algorithms) == 0 {
		errs.Addf(errors.ErrInvalidConfig, "no algorithms selected")
	}

	seen := make(map[sorting.Algorithm]bool, len(c.Algorithms))

	for _, alg := range c.Algorithms {
		switch {
		case !alg.Valid():
			errs.Addf(errors.ErrInvalidConfig, "unknown algorithm %v", alg)
		case seen[alg]:
			errs.Addf(errors.ErrInvalidConfig, "algorithm %v selected twice", alg)
		}

		seen[alg] = true
	}

	if c.Samples < 1 {
		errs.Addf(errors.ErrInvalidConfig, "samples must be at least 1, got %d", c.Samples)
	}

	if c.MinSize < 0 {
		errs.Addf(errors.ErrInvalidConfig, "min size must not be negative, got %d", c.MinSize)
	}

	if c.StepSize < 0 {
		errs.Addf(errors.ErrInvalidConfig, "step size must not be negative, got %d", c.StepSize)
	}

	if c.Workers < 1 {
		errs.Addf(errors.ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	}

	return errs.GetError()
}
