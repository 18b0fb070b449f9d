package background

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/iburimskiy/squarewave-background/internal/shape"
	"github.com/iburimskiy/squarewave-background/internal/wave"
)

// Curve is the render data for one curve.
type Curve struct {
	Index  int
	Points []wave.Point
	Path   shape.Path
	// Data is Path in SVG path-data form.
	Data  string
	Color color.RGBA
}

// Noise describes the fractal noise overlay.
type Noise struct {
	Width, Height int
	Frequency     float64
	Octaves       int
}

// Scene is everything a backend needs to draw one background state.
type Scene struct {
	Width, Height int
	// Center translates curve coordinates onto the canvas.
	Center     wave.Point
	Background color.RGBA
	Gradients  []Gradient
	Thickness  float64

	Period float64
	Data   []int
	Curves []Curve

	// Noise is nil when the overlay is hidden.
	Noise *Noise
	// Props is nil unless ShowProps is set.
	Props []string
}

// Oscillator derives the sampler settings for p.
func (p Params) Oscillator() wave.Oscillator {
	return wave.Oscillator{
		XAmplitude:  p.XAmplitude * p.AmplitudeMultiplier,
		YAmplitude:  p.YAmplitude * p.AmplitudeMultiplier,
		XMultiplier: p.XMultiplier,
		YMultiplier: p.YMultiplier,
		Omega:       wave.Omega(wave.Period(p.Frequency)),
		Harmonics:   p.Harmonics,
		Offset:      p.Offset,
	}
}

// CurveColor returns the stroke colour of curve index.
func (p Params) CurveColor(index int) color.RGBA {
	if p.Color == 0 {
		return p.Foreground
	}
	return wave.Spectrum(wave.SpectrumPosition(p.Color, index, p.Count))
}

// Compute derives the full scene from p. It has no side effects: equal
// params always produce equal scenes.
func Compute(p Params) Scene {
	count := max(p.Count, 0)
	s := Scene{
		Width:      p.Width,
		Height:     p.Height,
		Center:     wave.Point{X: float64(p.Width) / 2, Y: float64(p.Height) / 2},
		Background: p.Background,
		Gradients:  p.Gradients,
		Thickness:  p.Thickness,
		Period:     wave.Period(p.Frequency),
		Data:       make([]int, count),
		Curves:     make([]Curve, count),
	}

	osc := p.Oscillator()
	for i := range s.Data {
		s.Data[i] = i
		pts := osc.Curve(i)
		path := shape.Draw(pts, p.Linear)
		s.Curves[i] = Curve{
			Index:  i,
			Points: pts,
			Path:   path,
			Data:   path.Data(),
			Color:  p.CurveColor(i),
		}
	}

	if !p.HideNoise {
		s.Noise = &Noise{
			Width:     p.Width,
			Height:    p.Height,
			Frequency: p.NoiseFrequency,
			Octaves:   p.NoiseOctaves,
		}
	}
	if p.ShowProps {
		s.Props = p.Listing()
	}
	return s
}

// Listing formats every parameter as "key: value", derived values included.
func (p Params) Listing() []string {
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	harmonics := make([]string, len(p.Harmonics))
	for i, n := range p.Harmonics {
		harmonics[i] = strconv.Itoa(n)
	}
	bg := p.Background
	return []string{
		"height: " + strconv.Itoa(p.Height),
		"width: " + strconv.Itoa(p.Width),
		"count: " + strconv.Itoa(p.Count),
		"offset: " + num(p.Offset),
		"frequency: " + num(p.Frequency),
		"xAmplitude: " + num(p.XAmplitude),
		"yAmplitude: " + num(p.YAmplitude),
		"xMultiplier: " + num(p.XMultiplier),
		"yMultiplier: " + num(p.YMultiplier),
		"color: " + num(p.Color),
		"thickness: " + num(p.Thickness),
		"numbers: " + strings.Join(harmonics, ","),
		"curve: " + strconv.FormatBool(p.Linear),
		"noiseFreqOne: " + num(p.NoiseFrequency),
		"numOctaves: " + strconv.Itoa(p.NoiseOctaves),
		"hideNoise: " + strconv.FormatBool(p.HideNoise),
		"showProps: " + strconv.FormatBool(p.ShowProps),
		fmt.Sprintf("background: rgb(%d, %d, %d)", bg.R, bg.G, bg.B),
		"amplitudeMultiplier: " + num(p.AmplitudeMultiplier),
		"period: " + num(wave.Period(p.Frequency)),
	}
}
