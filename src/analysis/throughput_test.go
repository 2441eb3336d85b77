package analysis

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

func TestThroughputFormula(t *testing.T) {
	means := []float64{200, 200, 1, 8000, 37.5}
	tp, err := Throughputs(means)
	if err != nil {
		t.Fatalf("throughputs: %v", err)
	}
	for i, ms := range means {
		if tp[i] != 8000/ms {
			t.Fatalf("index %d: %v != 8000/%v", i, tp[i], ms)
		}
	}
	if tp[0] != 40 {
		t.Fatalf("expected 40 Mbps for 200 ms got %v", tp[0])
	}
}

func TestThroughputDecreasesWithCompletionTime(t *testing.T) {
	prev := math.Inf(1)
	for ms := 1.0; ms < 5000; ms *= 1.7 {
		v, err := Throughput(ms)
		if err != nil {
			t.Fatalf("throughput(%v): %v", ms, err)
		}
		if !(v < prev) {
			t.Fatalf("throughput not strictly decreasing at %v ms: %v >= %v", ms, v, prev)
		}
		prev = v
	}
}

func TestThroughputRejectsZero(t *testing.T) {
	for _, ms := range []float64{0, -1, math.NaN()} {
		if _, err := Throughput(ms); !errors.Is(err, ErrZeroCompletionTime) {
			t.Fatalf("expected ErrZeroCompletionTime for %v got %v", ms, err)
		}
	}
	_, err := Throughputs([]float64{10, 0})
	if !errors.Is(err, ErrZeroCompletionTime) || !strings.Contains(err.Error(), "index 1") {
		t.Fatalf("expected indexed domain error got %v", err)
	}
}

func TestSeriesThroughputsZeroTrace(t *testing.T) {
	trials, err := trace.Parse(strings.NewReader("1.0:100\n3.0:0\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	s := Aggregate(trace.TcpDctcp, trials)
	_, err = SeriesThroughputs(s)
	if !errors.Is(err, ErrZeroCompletionTime) {
		t.Fatalf("expected domain error got %v", err)
	}
	if !strings.Contains(err.Error(), "flow count 3") {
		t.Fatalf("error should name the flow count: %v", err)
	}
}

func TestSeriesThroughputsExample(t *testing.T) {
	s := Aggregate(trace.TcpDctcp, trace.Trials{1: {100, 300}, 2: {200}})
	tp, err := SeriesThroughputs(s)
	if err != nil {
		t.Fatalf("throughputs: %v", err)
	}
	if len(tp) != 2 || tp[0] != 40 || tp[1] != 40 {
		t.Fatalf("unexpected throughputs %v", tp)
	}
}
