package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	captionInk   = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	captionPaper = color.RGBA{R: 245, G: 245, B: 245, A: 255}
)

const captionInset = 6

// Encode renders c with r, stamps its caption and returns the PNG bytes.
func Encode(r Renderer, c Chart) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	img, err := r.Render(c)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, stampCaption(img, c.Caption)); err != nil {
		return nil, fmt.Errorf("png encode %q: %w", c.Title, err)
	}
	return buf.Bytes(), nil
}

// Save encodes c and writes it to path. Nothing is written when validation or
// rendering fails.
func Save(r Renderer, c Chart, path string) error {
	b, err := Encode(r, c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// stampCaption returns a copy of img with text in its bottom-right corner on a
// light patch. The plot area and axis labels are centered, so the corner is
// free on both backends.
func stampCaption(img image.Image, text string) image.Image {
	text = strings.TrimSpace(text)
	if img == nil || text == "" {
		return img
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)

	face := basicfont.Face7x13
	d := font.Drawer{Dst: out, Src: image.NewUniform(captionInk), Face: face}
	m := face.Metrics()
	textW := d.MeasureString(text).Ceil()
	lineH := (m.Ascent + m.Descent).Ceil()

	b := out.Bounds()
	patch := image.Rect(b.Max.X-textW-2*captionInset, b.Max.Y-lineH-captionInset, b.Max.X, b.Max.Y).Intersect(b)
	draw.Draw(out, patch, image.NewUniform(captionPaper), image.Point{}, draw.Src)
	d.Dot = fixed.P(patch.Min.X+captionInset, b.Max.Y-captionInset/2-m.Descent.Ceil())
	d.DrawString(text)
	return out
}
