package perf

import (
	"io"
	"time"

	"github.com/amp-labs/amp-algorithms/sorting"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Result is the timing of one algorithm on one sample.
type Result struct {
	Algorithm sorting.Algorithm `yaml:"algorithm"`
	Sample    int               `yaml:"sample"`
	Size      int               `yaml:"size"`
	Duration  time.Duration     `yaml:"duration"`
}

// Report is the outcome of a sampling run.
type Report struct {
	RunID   string   `yaml:"run_id"`
	Config  Config   `yaml:"config"`
	Results []Result `yaml:"results"`
}

// Summary aggregates the results of one algorithm.
type Summary struct {
	Algorithm sorting.Algorithm
	Samples   int
	Elements  int
	Total     time.Duration
}

// PerElement returns the mean time spent per sorted element.
func (s Summary) PerElement() time.Duration {
	if s.Elements == 0 {
		return 0
	}

	return s.Total / time.Duration(s.Elements)
}

// Summaries returns one Summary per algorithm, in configuration order.
func (r *Report) Summaries() []Summary {
	index := make(map[sorting.Algorithm]int, len(r.Config.Algorithms))
	out := make([]Summary, 0, len(r.Config.Algorithms))

	for _, alg := range r.Config.Algorithms {
		index[alg] = len(out)
		out = append(out, Summary{Algorithm: alg})
	}

	for _, res := range r.Results {
		i, ok := index[res.Algorithm]
		if !ok {
			continue
		}

		out[i].Samples++
		out[i].Elements += res.Size
		out[i].Total += res.Duration
	}

	return out
}

// WriteYAML encodes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(r); err != nil {
		return err
	}

	return enc.Close()
}

// WriteText renders the report as an aligned table followed by one summary
// line per algorithm. Numbers use English digit grouping.
func (r *Report) WriteText(w io.Writer) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "run %s\n\n%-10s %8s %12s %14s\n",
		r.RunID, "algorithm", "sample", "size", "duration"); err != nil {
		return err
	}

	for _, res := range r.Results {
		if _, err := p.Fprintf(w, "%-10s %8d %12d %14v\n",
			res.Algorithm, res.Sample, res.Size, res.Duration); err != nil {
			return err
		}
	}

	for _, s := range r.Summaries() {
		if _, err := p.Fprintf(w, "\n%s: %d samples, %d elements in %v (%v per element)",
			s.Algorithm, s.Samples, s.Elements, s.Total, s.PerElement()); err != nil {
			return err
		}
	}

	_, err := p.Fprintln(w)

	return err
}
