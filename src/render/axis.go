package render

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Every axis drawn here carries a flow count or a measurement derived from
// completion times. Neither is ever negative, so a scale over non-negative
// data never reaches below zero.

// stepMantissas are the leading digits a tick step may have.
var stepMantissas = []float64{1, 2, 2.5, 5}

// axisScale is an evenly stepped axis whose ends are the whole multiples
// first*step and last*step.
type axisScale struct {
	first, last int64
	step        float64
}

func (s axisScale) lo() float64 { return float64(s.first) * s.step }
func (s axisScale) hi() float64 { return float64(s.last) * s.step }

// scaleFor picks the smallest round step that splits [min,max] into at most
// intervals parts and snaps both ends outward to it. A data extreme sitting on
// a snapped end gets one extra step so its marker is not clipped. With
// fromZero set, a non-negative range starts at 0.
func scaleFor(min, max float64, intervals int, fromZero bool) axisScale {
	if intervals < 1 {
		intervals = 1
	}
	nonNegative := min >= 0
	if fromZero && nonNegative {
		min = 0
	}
	if max <= min {
		min, max = min-0.5, max+0.5
	}
	step := roundStep((max - min) / float64(intervals))
	eps := step * 1e-9
	s := axisScale{
		first: int64(math.Floor(min / step)),
		last:  int64(math.Ceil(max / step)),
		step:  step,
	}
	if min-s.lo() < eps {
		s.first--
	}
	if s.hi()-max < eps {
		s.last++
	}
	if nonNegative && s.first < 0 {
		s.first = 0
	}
	return s
}

func roundStep(raw float64) float64 {
	if !(raw > 0) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow10(int(math.Floor(math.Log10(raw))))
	for _, m := range stepMantissas {
		if m*mag >= raw*(1-1e-9) {
			return m * mag
		}
	}
	return 10 * mag
}

// ticks labels every step from lo to hi with the decimals the step needs.
func (s axisScale) ticks() []chart.Tick {
	prec := stepDecimals(s.step)
	out := make([]chart.Tick, 0, s.last-s.first+1)
	for i := s.first; i <= s.last; i++ {
		v := float64(i) * s.step
		out = append(out, chart.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', prec, 64)})
	}
	return out
}

func stepDecimals(step float64) int {
	for d := 0; d < 8; d++ {
		x := step * math.Pow(10, float64(d))
		if math.Abs(x-math.Round(x)) < 1e-6 {
			return d
		}
	}
	return 8
}

// buildAxis returns the go-chart range and ticks for about n ticks over
// [min,max].
func buildAxis(min, max float64, n int, fromZero bool) (*chart.ContinuousRange, []chart.Tick) {
	s := scaleFor(min, max, n-1, fromZero)
	return &chart.ContinuousRange{Min: s.lo(), Max: s.hi()}, s.ticks()
}

func gridLines(ticks []chart.Tick) []chart.GridLine {
	out := make([]chart.GridLine, len(ticks))
	for i, t := range ticks {
		out[i] = chart.GridLine{Value: t.Value}
	}
	return out
}
