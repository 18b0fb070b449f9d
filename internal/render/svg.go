package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
)

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

func rgbString(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// WriteSVG writes s as a standalone SVG document: page colour, gradient
// spots, one stroked path per curve, the noise filter and the listing.
func WriteSVG(w io.Writer, s background.Scene) error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrInvalidSize
	}
	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) {
		fmt.Fprintf(bw, format, args...)
	}

	p(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" style="background-color: %s">`+"\n",
		s.Width, s.Height, rgbString(s.Background))

	p("<defs>\n")
	wf, hf := float64(s.Width), float64(s.Height)
	for i, g := range s.Gradients {
		cx, cy := g.X*wf, g.Y*hf
		reach := g.Reach * math.Hypot(math.Max(cx, wf-cx), math.Max(cy, hf-cy))
		p(`<radialGradient id="spot%d" gradientUnits="userSpaceOnUse" cx="%g" cy="%g" r="%g">`+
			`<stop offset="0" stop-color="%s"/><stop offset="1" stop-color="%s" stop-opacity="0"/></radialGradient>`+"\n",
			i, cx, cy, reach, rgbString(g.Color), rgbString(g.Color))
	}
	if s.Noise != nil {
		p(`<filter id="noiseFilter" x="0" y="0" width="%d" height="%d">`+
			`<feTurbulence type="fractalNoise" baseFrequency="%g" numOctaves="%d" stitchTiles="stitch"/></filter>`+"\n",
			s.Noise.Width, s.Noise.Height, s.Noise.Frequency, s.Noise.Octaves)
	}
	p("</defs>\n")

	for i := range s.Gradients {
		p(`<rect width="%d" height="%d" fill="url(#spot%d)"/>`+"\n", s.Width, s.Height, i)
	}

	p(`<g class="lines">` + "\n")
	for _, c := range s.Curves {
		p(`<path class="door" fill="none" stroke="%s" stroke-width="%g" transform="translate(%g,%g)" d="%s"/>`+"\n",
			rgbString(c.Color), s.Thickness, s.Center.X, s.Center.Y, c.Data)
	}
	p("</g>\n")

	if s.Noise != nil {
		p(`<g class="rect"><rect class="noise" width="%d" height="%d" filter="url(#noiseFilter)"/></g>`+"\n",
			s.Noise.Width, s.Noise.Height)
	}

	for i, line := range s.Props {
		var esc strings.Builder
		if err := xml.EscapeText(&esc, []byte(line)); err != nil {
			return fmt.Errorf("render: escape listing: %w", err)
		}
		p(`<text class="details" x="%d" y="%d" font-size="%d" text-anchor="end">%s</text>`+"\n",
			s.Width-config.PropsRight, config.PropsTop+config.PropsLine*(i+1), config.PropsFontSize, esc.String())
	}

	p("</svg>\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write svg: %w", err)
	}
	return nil
}
