package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

// GoChartRenderer draws charts with go-chart. go-chart only draws round dots, so
// every marker shape is shown as a dot; colors and dash patterns are kept.
type GoChartRenderer struct{}

var gridStyle = chart.Style{StrokeColor: drawing.ColorFromHex("d9d9d9"), StrokeWidth: 1}

// lineStyle returns a style that renders a stroked line with dots at each point.
func lineStyle(s trace.Style) chart.Style {
	col := drawingColor(s.Color)
	return chart.Style{
		StrokeColor:     col,
		StrokeWidth:     1.5,
		StrokeDashArray: goChartDashes(s.LineStyle),
		DotColor:        col,
		DotWidth:        3,
	}
}

func (GoChartRenderer) Render(c Chart) (image.Image, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	series := make([]chart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		xs, ys := s.X, s.Y
		// go-chart needs two points to lay out a line; repeat a lone point in place.
		if len(xs) == 1 {
			xs = []float64{xs[0], xs[0]}
			ys = []float64{ys[0], ys[0]}
		}
		st := lineStyle(s.Style)
		if len(s.X) == 1 {
			st.DotWidth = 5
		}
		series = append(series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}

	minX, maxX, minY, maxY := c.bounds()
	xRange, xTicks := buildAxis(minX, maxX, 8, false)
	yRange, yTicks := buildAxis(minY, maxY, 6, true)

	padBottom := 16
	if c.Caption != "" {
		padBottom += 18
	}
	w, h := c.size()
	ch := chart.Chart{
		Title:      c.Title,
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: padBottom}},
		XAxis: chart.XAxis{
			Name:           c.XLabel,
			Range:          xRange,
			Ticks:          xTicks,
			GridMajorStyle: gridStyle,
			GridLines:      gridLines(xTicks),
		},
		YAxis: chart.YAxis{
			Name:           c.YLabel,
			Range:          yRange,
			Ticks:          yTicks,
			GridMajorStyle: gridStyle,
			GridLines:      gridLines(yTicks),
		},
		Series: series,
	}
	if c.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("go-chart render %q: %w", c.Title, err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("go-chart decode %q: %w", c.Title, err)
	}
	return img, nil
}

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func goChartDashes(ls trace.LineStyle) []float64 {
	switch ls {
	case trace.LineDashed:
		return []float64{6, 3}
	case trace.LineDashDot:
		return []float64{6, 3, 1.5, 3}
	default:
		return nil
	}
}
