package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/noise"
)

// ErrInvalidSize indicates a scene with no drawable area.
var ErrInvalidSize = errors.New("render: scene width and height must be positive")

// Raster draws scenes with the gg software renderer.
type Raster struct {
	noise *noise.Cache
	font  *text.FontSource
}

// NewRaster returns a raster renderer. The noise seed fixes the overlay
// texture across frames.
func NewRaster(noiseSeed int64) (*Raster, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &Raster{noise: noise.NewCache(noiseSeed), font: src}, nil
}

// Close releases the font source.
func (r *Raster) Close() error {
	return r.font.Close()
}

// ggPath adapts a gg context to shape.Sink.
type ggPath struct{ dc *gg.Context }

func (p ggPath) MoveTo(x, y float32) { p.dc.MoveTo(float64(x), float64(y)) }
func (p ggPath) LineTo(x, y float32) { p.dc.LineTo(float64(x), float64(y)) }
func (p ggPath) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	p.dc.CubicTo(float64(x1), float64(y1), float64(x2), float64(y2), float64(x3), float64(y3))
}
func (p ggPath) Close() { p.dc.ClosePath() }

func rgba(c color.RGBA) gg.RGBA {
	return gg.FromColor(c)
}

// Backdrop renders the page colour and gradient spots only.
func (r *Raster) Backdrop(s background.Scene) (image.Image, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, ErrInvalidSize
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()
	if err := r.backdrop(dc, s); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

func (r *Raster) backdrop(dc *gg.Context, s background.Scene) error {
	dc.ClearWithColor(rgba(s.Background))
	w, h := float64(s.Width), float64(s.Height)
	for _, g := range s.Gradients {
		cx, cy := g.X*w, g.Y*h
		reach := g.Reach * math.Hypot(math.Max(cx, w-cx), math.Max(cy, h-cy))
		inner := rgba(g.Color)
		outer := inner
		outer.A = 0
		dc.SetFillBrush(gg.NewRadialGradientBrush(cx, cy, 0, reach).
			AddColorStop(0, inner).
			AddColorStop(1, outer))
		dc.DrawRectangle(0, 0, w, h)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: gradient: %w", err)
		}
	}
	return nil
}

// Render draws the full scene: backdrop, curves, noise overlay and the
// parameter listing.
func (r *Raster) Render(s background.Scene) (image.Image, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, ErrInvalidSize
	}
	dc := gg.NewContext(s.Width, s.Height)
	defer dc.Close()

	if err := r.backdrop(dc, s); err != nil {
		return nil, err
	}

	dc.Push()
	dc.Translate(s.Center.X, s.Center.Y)
	dc.SetLineWidth(s.Thickness)
	dc.SetLineCap(gg.LineCapButt)
	for _, c := range s.Curves {
		if len(c.Path) == 0 {
			continue
		}
		dc.SetColor(c.Color)
		c.Path.Replay(ggPath{dc})
		if err := dc.Stroke(); err != nil {
			dc.Pop()
			return nil, fmt.Errorf("render: curve %d: %w", c.Index, err)
		}
	}
	dc.Pop()

	if s.Props != nil {
		dc.SetFont(r.font.Face(config.PropsFontSize))
		dc.SetColor(color.Black)
		x := float64(s.Width - config.PropsRight)
		for i, line := range s.Props {
			dc.DrawStringAnchored(line, x, float64(config.PropsTop+config.PropsLine*(i+1)), 1, 0)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	if s.Noise != nil {
		draw.Draw(out, out.Bounds(), r.Overlay(*s.Noise), image.Point{}, draw.Over)
	}
	return out, nil
}

// Overlay returns the noise overlay for spec from the raster's cache, the
// same image Render composites.
func (r *Raster) Overlay(spec background.Noise) *image.NRGBA {
	return r.noise.Overlay(spec)
}

// WritePNG renders s and encodes it as PNG.
func (r *Raster) WritePNG(w io.Writer, s background.Scene) error {
	img, err := r.Render(s)
	if err != nil {
		return err
	}
	return encodePNG(w, img)
}
