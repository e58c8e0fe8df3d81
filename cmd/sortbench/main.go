// sortbench samples the running time of the sorting routines over growing
// input sizes and prints a YAML or text report.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	ampcli "github.com/amp-labs/amp-algorithms/cli"
	"github.com/amp-labs/amp-algorithms/errors"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/amp-labs/amp-algorithms/perf"
	"github.com/amp-labs/amp-algorithms/sorting"

	"github.com/carlmjohnson/versioninfo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
)

const (
	formatYAML = "yaml"
	formatText = "text"
)

func main() {
	if err := run(os.Args); err != nil {
		slog.Error("sortbench failed", "error", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newApp(os.Stdout, os.Stderr).RunContext(ctx, args)
}

func newApp(out, errOut io.Writer) *cli.App {
	defaults := perf.DefaultConfig()

	app := &cli.App{
		Name:      "sortbench",
		Usage:     "time the sorting routines over growing input sizes",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Before:    configureLogging,
		Action:    runBench,
	}

	app.Flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "algorithms",
			Aliases: []string{"a"},
			Usage:   "sorting routines to sample",
			Value:   cli.NewStringSlice(algorithmNames(defaults.Algorithms)...),
			EnvVars: []string{"SORTBENCH_ALGORITHMS"},
		},
		&cli.IntFlag{
			Name:    "samples",
			Aliases: []string{"n"},
			Usage:   "number of samples per algorithm",
			Value:   defaults.Samples,
			EnvVars: []string{"SORTBENCH_SAMPLES"},
		},
		&cli.IntFlag{
			Name:    "min-size",
			Usage:   "number of elements in the first sample",
			Value:   defaults.MinSize,
			EnvVars: []string{"SORTBENCH_MIN_SIZE"},
		},
		&cli.IntFlag{
			Name:    "step-size",
			Usage:   "elements added with every further sample",
			Value:   defaults.StepSize,
			EnvVars: []string{"SORTBENCH_STEP_SIZE"},
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "number of samples sorted in parallel",
			Value:   runtime.GOMAXPROCS(0),
			EnvVars: []string{"SORTBENCH_WORKERS"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "seed for the shuffled inputs",
			Value:   defaults.Seed,
			EnvVars: []string{"SORTBENCH_SEED"},
		},
		&cli.StringFlag{
			Name:    "format",
			Usage:   "report format: yaml or text",
			Value:   formatYAML,
			EnvVars: []string{"SORTBENCH_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "metrics-file",
			Usage:   "write the run's Prometheus metrics to this file",
			EnvVars: []string{"SORTBENCH_METRICS_FILE"},
		},
		&cli.BoolFlag{
			Name:  "interactive",
			Usage: "pick algorithms and sample count at a prompt",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "minimum log level",
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "log-json",
			Usage:   "log as JSON instead of text",
			EnvVars: []string{"LOG_JSON"},
		},
	}

	return app
}

func algorithmNames(algs []sorting.Algorithm) []string {
	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.String()
	}

	return names
}

func configureLogging(cctx *cli.Context) error {
	level, err := logger.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return err
	}

	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem:   "sortbench",
		JSON:        cctx.Bool("log-json"),
		MinLevel:    level,
		LegacyLevel: slog.LevelInfo,
		Output:      cctx.App.ErrWriter,
	})

	return nil
}

// configFromFlags builds the run configuration. Names in --algorithms may
// also be comma separated within a single value.
func configFromFlags(cctx *cli.Context) (perf.Config, error) {
	var names []string

	for _, value := range cctx.StringSlice("algorithms") {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}

	algs, err := sorting.ParseAlgorithms(names...)
	if err != nil {
		return perf.Config{}, err
	}

	cfg := perf.Config{
		Algorithms: algs,
		Samples:    cctx.Int("samples"),
		MinSize:    cctx.Int("min-size"),
		StepSize:   cctx.Int("step-size"),
		Workers:    cctx.Int("workers"),
		Seed:       cctx.Uint64("seed"),
	}

	if !cctx.Bool("interactive") {
		return cfg, nil
	}

	if cfg, err = promptConfig(cfg); err != nil {
		return cfg, err
	}

	label := fmt.Sprintf("Sort %d samples with %d algorithms", cfg.Samples, len(cfg.Algorithms))

	ok, err := ampcli.PromptConfirm(label)
	if err != nil {
		return cfg, err
	}

	if !ok {
		return cfg, errDeclined
	}

	return cfg, nil
}

func promptConfig(cfg perf.Config) (perf.Config, error) {
	picked, err := ampcli.MultiSelect("Algorithms", algorithmNames(sorting.Algorithms())...)
	if err != nil {
		return cfg, err
	}

	if len(picked) > 0 {
		if cfg.Algorithms, err = sorting.ParseAlgorithms(picked...); err != nil {
			return cfg, err
		}
	}

	if cfg.Samples, err = ampcli.PromptPositiveInt("Samples", cfg.Samples); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// errDeclined stops an interactive run the user did not confirm.
var errDeclined = stderrors.New("run declined") //nolint:gochecknoglobals

func runBench(cctx *cli.Context) error {
	format := strings.ToLower(cctx.String("format"))
	if format != formatYAML && format != formatText {
		return fmt.Errorf("%w: unknown format %q", errors.ErrInvalidConfig, format)
	}

	cfg, err := configFromFlags(cctx)
	if stderrors.Is(err, errDeclined) {
		return nil
	}

	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()

	runner, err := perf.New(cfg,
		perf.WithLogger(logger.Get(cctx.Context)),
		perf.WithRegisterer(registry))
	if err != nil {
		return err
	}

	report, err := runner.Run(cctx.Context)
	if err != nil {
		return err
	}

	if path := cctx.String("metrics-file"); path != "" {
		if err := prometheus.WriteToTextfile(path, registry); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	out := cctx.App.Writer

	if format == formatYAML {
		return report.WriteYAML(out)
	}

	title := fmt.Sprintf("sortbench %s\n%d algorithms, %d samples", cctx.App.Version, len(cfg.Algorithms), cfg.Samples)
	if _, err := fmt.Fprintln(out, ampcli.Banner(title, ampcli.DefaultTerminalWidth, ampcli.AlignCenter)); err != nil {
		return err
	}

	return report.WriteText(out)
}
