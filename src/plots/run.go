// Package plots turns per-protocol completion-time traces into flow completion time
// and throughput charts.
//
// Two modes:
//  1. Single protocol: read <dir>/<protocol>/completion-times.txt and write two
//     single-series charts next to it.
//  2. All protocols (no filter): read every canonical protocol, aggregate each the
//     same way and write two overlay charts with a legend directly under <dir>.
//
// Every series, the randomized TcpDctcpPlus included, is reduced to the mean of its
// trials per flow count. Throughput is derived and both charts are rendered before
// the first file is written, so a parse, domain or rendering error leaves no
// partial output. Only a failing disk write can leave the first chart behind.
package plots

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/nseay/ns-3-DCTCP-plus/src/analysis"
	"github.com/nseay/ns-3-DCTCP-plus/src/logging"
	"github.com/nseay/ns-3-DCTCP-plus/src/render"
	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

const (
	completionTitle  = "Flow Completion Times"
	throughputTitle  = "Throughput"
	flowsLabel       = "Number of Flows"
	completionLabel  = "Time (ms)"
	throughputLabel  = "Throughput (Mbps)"
	completionPrefix = "flow-completion-times"
	throughputPrefix = "throughput"
)

// Options selects the trace directory and an optional protocol filter.
type Options struct {
	Dir string
	// Protocol restricts the run to one variant; empty means all of trace.Protocols.
	Protocol string
}

// Runner renders charts. The zero value is not usable; Renderer must be set.
type Runner struct {
	Renderer render.Renderer
	// Out receives one "Saving <path>" line per written chart; nil discards.
	Out io.Writer
	// Width and Height are passed to every chart; zero uses the render defaults.
	Width, Height int
	// Caption stamps the per-point trial range on each chart.
	Caption bool
}

// derived is one protocol's aggregated series with its throughput.
type derived struct {
	series     analysis.Series
	throughput []float64
}

// Run performs one invocation and returns the written paths in write order.
func (r *Runner) Run(opts Options) ([]string, error) {
	if r.Renderer == nil {
		return nil, fmt.Errorf("plots: no renderer configured")
	}
	defer logging.TimeTrack(time.Now(), "plots run")
	if opts.Protocol != "" {
		p, err := trace.ParseProtocol(opts.Protocol)
		if err != nil {
			return nil, err
		}
		d, err := load(opts.Dir, p)
		if err != nil {
			return nil, err
		}
		return r.renderPair(filepath.Join(opts.Dir, string(p)), []derived{d}, false)
	}

	all := make([]derived, 0, len(trace.Protocols))
	for _, p := range trace.Protocols {
		d, err := load(opts.Dir, p)
		if err != nil {
			return nil, err
		}
		all = append(all, d)
	}
	return r.renderPair(opts.Dir, all, true)
}

// load reads, aggregates and derives throughput for protocol p.
func load(dir string, p trace.Protocol) (derived, error) {
	trials, err := trace.ReadCompletionTimes(dir, p)
	if err != nil {
		return derived{}, err
	}
	s := analysis.Aggregate(p, trials)
	tp, err := analysis.SeriesThroughputs(s)
	if err != nil {
		return derived{}, err
	}
	lo, hi := s.TrialRange()
	logging.Infof("%s: %d records, %d flow counts (%v-%v), %d-%d trials per point", p, trials.Records(), len(s.Samples), s.First(), s.Last(), lo, hi)
	if logging.DebugEnabled() {
		for i, smp := range s.Samples {
			logging.Debugf("%s flows=%v trials=%d mean=%.3fms stddev=%.3fms throughput=%.3fMbps", p, smp.FlowCount, smp.Trials(), smp.Mean(), smp.StdDev(), tp[i])
		}
	}
	return derived{series: s, throughput: tp}, nil
}

// renderPair writes the completion time and throughput charts for ds under outDir.
func (r *Runner) renderPair(outDir string, ds []derived, legend bool) ([]string, error) {
	first, last := flowRange(ds)
	suffix := fmt.Sprintf("_%d-%d.png", int64(first), int64(last))
	caption := ""
	if r.Caption {
		caption = trialCaption(ds)
	}
	charts := []struct {
		path  string
		chart render.Chart
	}{
		{filepath.Join(outDir, completionPrefix+suffix), r.chart(completionTitle, completionLabel, ds, legend, caption, func(d derived) []float64 {
			return d.series.MeanCompletionTimes()
		})},
		{filepath.Join(outDir, throughputPrefix+suffix), r.chart(throughputTitle, throughputLabel, ds, legend, caption, func(d derived) []float64 {
			return d.throughput
		})},
	}
	encoded := make([][]byte, len(charts))
	for i, item := range charts {
		b, err := render.Encode(r.Renderer, item.chart)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(item.path), err)
		}
		encoded[i] = b
	}
	written := make([]string, 0, len(charts))
	for i, item := range charts {
		if err := os.WriteFile(item.path, encoded[i], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", item.path, err)
		}
		written = append(written, item.path)
		if r.Out != nil {
			fmt.Fprintln(r.Out, "Saving "+item.path)
		}
	}
	return written, nil
}

func (r *Runner) chart(title, ylabel string, ds []derived, legend bool, caption string, ys func(derived) []float64) render.Chart {
	c := render.Chart{
		Title:   title,
		XLabel:  flowsLabel,
		YLabel:  ylabel,
		Legend:  legend,
		Width:   r.Width,
		Height:  r.Height,
		Caption: caption,
	}
	for _, d := range ds {
		c.Series = append(c.Series, render.Series{
			Name:  string(d.series.Protocol),
			X:     d.series.FlowCounts(),
			Y:     ys(d),
			Style: trace.StyleFor(d.series.Protocol),
		})
	}
	return c
}

// flowRange returns the smallest first and largest last flow count across ds.
func flowRange(ds []derived) (float64, float64) {
	first, last := math.Inf(1), math.Inf(-1)
	for _, d := range ds {
		first = math.Min(first, d.series.First())
		last = math.Max(last, d.series.Last())
	}
	return first, last
}

func trialCaption(ds []derived) string {
	lo, hi := 0, 0
	for i, d := range ds {
		l, h := d.series.TrialRange()
		if i == 0 || l < lo {
			lo = l
		}
		if h > hi {
			hi = h
		}
	}
	if lo == hi {
		return fmt.Sprintf("trials per point: %d", lo)
	}
	return fmt.Sprintf("trials per point: %d-%d", lo, hi)
}
