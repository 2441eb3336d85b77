// Package analysis turns raw trace trials into per-flow-count samples and derived
// throughput.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

// Sample holds every trial observed for one flow count.
type Sample struct {
	FlowCount float64
	TimesMs   []int64
}

// Trials returns the number of trial runs behind the sample.
func (s Sample) Trials() int { return len(s.TimesMs) }

// Mean returns sum(times)/n; NaN for an empty sample.
func (s Sample) Mean() float64 {
	return stat.Mean(s.floats(), nil)
}

// StdDev returns the sample standard deviation, 0 when fewer than two trials.
func (s Sample) StdDev() float64 {
	if len(s.TimesMs) < 2 {
		return 0
	}
	return stat.StdDev(s.floats(), nil)
}

func (s Sample) floats() []float64 {
	xs := make([]float64, len(s.TimesMs))
	for i, v := range s.TimesMs {
		xs[i] = float64(v)
	}
	return xs
}

// Series is one protocol's samples sorted ascending by flow count.
type Series struct {
	Protocol trace.Protocol
	Samples  []Sample
}

// Aggregate groups trials by flow count and sorts them ascending.
func Aggregate(p trace.Protocol, trials trace.Trials) Series {
	keys := make([]float64, 0, len(trials))
	for k := range trials {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	samples := make([]Sample, len(keys))
	for i, k := range keys {
		times := make([]int64, len(trials[k]))
		copy(times, trials[k])
		samples[i] = Sample{FlowCount: k, TimesMs: times}
	}
	return Series{Protocol: p, Samples: samples}
}

// Means maps each flow count to its mean completion time.
func Means(trials trace.Trials) map[float64]float64 {
	out := make(map[float64]float64, len(trials))
	for k, times := range trials {
		out[k] = Sample{FlowCount: k, TimesMs: times}.Mean()
	}
	return out
}

// FlowCounts returns the sorted x values.
func (s Series) FlowCounts() []float64 {
	xs := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		xs[i] = smp.FlowCount
	}
	return xs
}

// MeanCompletionTimes returns the mean per flow count, parallel to FlowCounts.
func (s Series) MeanCompletionTimes() []float64 {
	ys := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		ys[i] = smp.Mean()
	}
	return ys
}

// First returns the smallest flow count; 0 for an empty series.
func (s Series) First() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Samples[0].FlowCount
}

// Last returns the largest flow count; 0 for an empty series.
func (s Series) Last() float64 {
	if len(s.Samples) == 0 {
		return 0
	}
	return s.Samples[len(s.Samples)-1].FlowCount
}

// TrialRange returns the fewest and most trials behind any single point.
func (s Series) TrialRange() (min, max int) {
	for i, smp := range s.Samples {
		n := smp.Trials()
		if i == 0 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	return min, max
}
