// Package perf samples the running time of the sorting routines over
// growing input sizes.
//
// Every sample is verified: the sorted output must be in non-decreasing
// order and must be a permutation of the input. A sample failing either
// check aborts the run with an error wrapping errors.ErrSortFailed.
package perf

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/amp-labs/amp-algorithms/assert"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/hashing"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/sortable"
	"github.com/amp-labs/amp-algorithms/sorting"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// Sorter sorts s in place using alg.
type Sorter func(alg sorting.Algorithm, s []sortable.Int) error

// Option is a functional option for configuring a Runner.
type Option func(*Runner)

// WithLogger sets the logger for progress and summary lines. The default
// is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = l
	}
}

// WithRegisterer registers the sampler's metrics with reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Runner) {
		r.registerer = reg
	}
}

// WithSorter replaces the sorting routines under measurement.
func WithSorter(s Sorter) Option {
	return func(r *Runner) {
		r.sorter = s
	}
}

// Runner executes sampling runs for one Config.
type Runner struct {
	cfg        Config
	logger     *slog.Logger
	registerer prometheus.Registerer
	sorter     Sorter
	metrics    *metrics
}

// New validates cfg and returns a Runner for it.
func New(cfg Config, opts ...Option) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		cfg:    cfg,
		logger: slog.Default(),
		sorter: sortInts,
	}

	for _, opt := range opts {
		opt(r)
	}

	assert.NotNil(r.logger, "perf: nil logger")
	assert.True(r.sorter != nil, "perf: nil sorter")

	r.metrics = newMetrics(r.registerer)

	return r, nil
}

func sortInts(alg sorting.Algorithm, s []sortable.Int) error {
	return sorting.SortFunc(alg, s, sortable.Less[sortable.Int])
}

type sample struct {
	index       int
	input       []sortable.Int
	fingerprint hashing.Multiset
}

// Run sorts every sample with every configured algorithm on a pool of
// Config.Workers goroutines. Results come back grouped by algorithm in
// configuration order, then by sample. The first failing sample cancels the
// remaining work and its error is returned.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	assert.NonEmptySlice(r.cfg.Algorithms, "perf: no algorithms in a validated config")

	runID := uuid.New().String()
	log := r.logger.With("run_id", runID)

	samples := r.generate()
	total := len(r.cfg.Algorithms) * len(samples)
	completed := atomic.NewInt64(0)

	log.Info("Starting sort sampling",
		"algorithms", r.cfg.Algorithms,
		"samples", r.cfg.Samples,
		"workers", r.cfg.Workers)

	pool := pond.NewResultPool[Result](r.cfg.Workers)
	defer pool.StopAndWait()

	group := pool.NewGroupContext(ctx)

	for _, alg := range r.cfg.Algorithms {
		for _, smp := range samples {
			group.SubmitErr(func() (Result, error) {
				if err := ctx.Err(); err != nil {
					return Result{}, err
				}

				res, err := r.measure(alg, smp)
				if err != nil {
					r.metrics.failures.WithLabelValues(alg.String()).Inc()

					return Result{}, err
				}

				done := completed.Inc()
				log.Debug("Sorted sample",
					"algorithm", alg,
					"size", res.Size,
					"fingerprint", smp.fingerprint.Sum(),
					"duration", res.Duration,
					"progress", fmt.Sprintf("%d/%d", done, total))

				return res, nil
			})
		}
	}

	results, err := group.Wait()
	if err != nil {
		log.Error("Sort sampling failed", "error", err, "completed", completed.Load())

		return nil, err
	}

	report := &Report{RunID: runID, Config: r.cfg, Results: results}

	for _, s := range report.Summaries() {
		log.Info("Sampled algorithm",
			"algorithm", s.Algorithm,
			"elements", s.Elements,
			"total", s.Total,
			"per_element", s.PerElement())
	}

	return report, nil
}

// generate builds the shuffled inputs. Sample i is derived from the seed
// and i alone, so reruns with the same Config sort identical data.
func (r *Runner) generate() []sample {
	samples := make([]sample, r.cfg.Samples)

	for i := range samples {
		size := r.cfg.Size(i)
		input := make([]sortable.Int, size)

		for v := range input {
			input[v] = sortable.Int(v)
		}

		rng := rand.New(rand.NewPCG(r.cfg.Seed, uint64(i))) //nolint:gosec
		rng.Shuffle(size, func(a, b int) {
			input[a], input[b] = input[b], input[a]
		})

		samples[i] = sample{index: i, input: input, fingerprint: hashing.Ints(input)}
	}

	return samples
}

// measure sorts a private copy of smp and verifies the output.
func (r *Runner) measure(alg sorting.Algorithm, smp sample) (Result, error) {
	data := slices.Clone(smp.input)

	start := time.Now()
	err := r.sorter(alg, data)
	elapsed := time.Since(start)

	if err != nil {
		return Result{}, fmt.Errorf("sample %d with %v: %w", smp.index, alg, err)
	}

	switch {
	case !sorting.IsSorted(data):
		err = fmt.Errorf("%w: output is not in order", errors.ErrSortFailed)
	case !hashing.Ints(data).Equals(smp.fingerprint):
		err = fmt.Errorf("%w: output is not a permutation of the input", errors.ErrSortFailed)
	}

	if err != nil {
		return Result{}, logger.AnnotateError(
			fmt.Errorf("sample %d with %v: %w", smp.index, alg, err),
			"algorithm", alg.String(), "size", len(data))
	}

	r.metrics.duration.WithLabelValues(alg.String()).Observe(elapsed.Seconds())
	r.metrics.elements.WithLabelValues(alg.String()).Add(float64(len(data)))

	return Result{
		Algorithm: alg,
		Sample:    smp.index,
		Size:      len(data),
		Duration:  elapsed,
	}, nil
}
