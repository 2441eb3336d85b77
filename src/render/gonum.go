package render

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

const pixelDPI = 72

// GonumRenderer draws charts with gonum/plot.
type GonumRenderer struct{}

func (GonumRenderer) Render(c Chart) (image.Image, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Padding = 1 * vg.Millimeter

	for _, s := range c.Series {
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i].X = s.X[i]
			xys[i].Y = s.Y[i]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Name, err)
		}
		line.LineStyle.Color = s.Style.Color
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Dashes = gonumDashes(s.Style.LineStyle)
		points.GlyphStyle = draw.GlyphStyle{
			Color:  s.Style.Color,
			Radius: vg.Points(4),
			Shape:  gonumGlyph(s.Style.Marker),
		}
		p.Add(line, points)
		if c.Legend {
			p.Legend.Add(s.Name, line, points)
		}
	}

	// Chart sizes are pixels; at 72 dpi a point is exactly one pixel.
	w, h := c.size()
	canvas := vgimg.NewWith(vgimg.UseWH(vg.Length(w), vg.Length(h)), vgimg.UseDPI(pixelDPI))
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

func gonumDashes(ls trace.LineStyle) []vg.Length {
	switch ls {
	case trace.LineDashed:
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case trace.LineDashDot:
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1.5), vg.Points(3)}
	default:
		return nil
	}
}

func gonumGlyph(m trace.Marker) draw.GlyphDrawer {
	switch m {
	case trace.MarkerPlus:
		return draw.PlusGlyph{}
	case trace.MarkerStar:
		return starGlyph{}
	default:
		return draw.RingGlyph{}
	}
}

// starGlyph is an asterisk: a plus over a cross.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.PlusGlyph{}.DrawGlyph(c, sty, pt)
	draw.CrossGlyph{}.DrawGlyph(c, sty, pt)
}
