package analysis

import (
	"errors"
	"fmt"
)

// ThroughputFactor converts a completion time in ms for a 1 MB flow into Mbps:
// 1 MB/ms * 8 Mb/MB * 1000 ms/s.
const ThroughputFactor = 1000 * 8

// ErrZeroCompletionTime is returned when throughput would divide by a zero
// (or otherwise non-positive) completion time.
var ErrZeroCompletionTime = errors.New("completion time must be positive to derive throughput")

// Throughput returns ThroughputFactor/ms.
func Throughput(ms float64) (float64, error) {
	if !(ms > 0) {
		return 0, fmt.Errorf("%w: got %v ms", ErrZeroCompletionTime, ms)
	}
	return ThroughputFactor / ms, nil
}

// Throughputs converts a sequence of mean completion times, stopping at the first
// invalid value.
func Throughputs(meansMs []float64) ([]float64, error) {
	out := make([]float64, len(meansMs))
	for i, ms := range meansMs {
		v, err := Throughput(ms)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// SeriesThroughputs derives throughput for every sample of s, naming the flow count
// on failure.
func SeriesThroughputs(s Series) ([]float64, error) {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		v, err := Throughput(smp.Mean())
		if err != nil {
			return nil, fmt.Errorf("%s flow count %v: %w", s.Protocol, smp.FlowCount, err)
		}
		out[i] = v
	}
	return out, nil
}
