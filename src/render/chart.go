// Package render draws line charts of flow-count experiments and writes them as PNG
// files.
//
// A Chart is backend-neutral. A Renderer turns it into an image: gonum/plot (default)
// draws true marker glyphs and dash patterns, go-chart draws dots and dashes. Save
// validates, renders, optionally stamps a caption and writes the PNG.
package render

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"
	"strings"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

var (
	ErrInvalidChart    = errors.New("invalid chart")
	ErrUnknownRenderer = errors.New("unknown renderer")
)

// Series is one plotted line. X and Y are parallel.
type Series struct {
	Name  string
	X, Y  []float64
	Style trace.Style
}

// Chart describes a single line chart with grid lines. Legend entries follow the
// order of Series.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
	Legend bool
	// Width and Height are in pixels; zero selects the defaults.
	Width, Height int
	// Caption, if set, is stamped near the bottom-left corner of the image.
	Caption string
}

// Validate reports charts that no backend can draw.
func (c Chart) Validate() error {
	if len(c.Series) == 0 {
		return fmt.Errorf("%w: %q has no series", ErrInvalidChart, c.Title)
	}
	for i, s := range c.Series {
		if len(s.X) == 0 {
			return fmt.Errorf("%w: series %d (%s) is empty", ErrInvalidChart, i, s.Name)
		}
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("%w: series %d (%s) has %d x values and %d y values", ErrInvalidChart, i, s.Name, len(s.X), len(s.Y))
		}
		for j := range s.X {
			if !finite(s.X[j]) || !finite(s.Y[j]) {
				return fmt.Errorf("%w: series %d (%s) point %d is not finite", ErrInvalidChart, i, s.Name, j)
			}
		}
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidChart, c.Width, c.Height)
	}
	return nil
}

func (c Chart) size() (int, int) {
	w, h := c.Width, c.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	return w, h
}

// bounds returns the min/max over every series.
func (c Chart) bounds() (minX, maxX, minY, maxY float64) {
	minX, minY = math.MaxFloat64, math.MaxFloat64
	maxX, maxY = -math.MaxFloat64, -math.MaxFloat64
	for _, s := range c.Series {
		for i := range s.X {
			minX = math.Min(minX, s.X[i])
			maxX = math.Max(maxX, s.X[i])
			minY = math.Min(minY, s.Y[i])
			maxY = math.Max(maxY, s.Y[i])
		}
	}
	return
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Renderer draws a validated chart into an image.
type Renderer interface {
	Render(c Chart) (image.Image, error)
}

// DefaultRenderer is the backend used when none is configured.
const DefaultRenderer = "gonum"

var renderers = map[string]func() Renderer{
	"gonum":   func() Renderer { return GonumRenderer{} },
	"gochart": func() Renderer { return GoChartRenderer{} },
}

// New returns the named backend; "" selects DefaultRenderer.
func New(name string) (Renderer, error) {
	if name == "" {
		name = DefaultRenderer
	}
	mk, ok := renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownRenderer, name, strings.Join(Names(), ", "))
	}
	return mk(), nil
}

// Known reports whether New accepts name.
func Known(name string) bool {
	if name == "" {
		return true
	}
	_, ok := renderers[strings.ToLower(name)]
	return ok
}

// Names lists the backends in sorted order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for n := range renderers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
