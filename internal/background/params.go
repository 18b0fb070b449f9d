package background

import (
	"image/color"
	"math/rand/v2"
	"slices"

	"github.com/iburimskiy/squarewave-background/internal/config"
)

// Gradient is a radial colour spot fading to transparent. X and Y are
// fractions of the canvas size; Reach is the fraction of the distance to the
// farthest corner at which the spot is fully transparent.
type Gradient struct {
	X, Y  float64
	Reach float64
	Color color.RGBA
}

// Params is the complete configuration of one background state. Treat it as a
// value: use the With methods to derive a changed copy.
type Params struct {
	Width, Height int

	Count               int
	Frequency           float64
	XAmplitude          float64
	YAmplitude          float64
	AmplitudeMultiplier float64
	XMultiplier         float64
	YMultiplier         float64
	// Color seeds the spectrum. Zero draws every curve in Foreground.
	Color     float64
	Thickness float64
	Harmonics []int

	// Linear joins samples with straight segments instead of the basis spline.
	Linear    bool
	HideNoise bool
	ShowProps bool

	NoiseFrequency float64
	NoiseOctaves   int

	Offset float64

	Background color.RGBA
	Foreground color.RGBA
	Gradients  []Gradient
}

// DefaultBackground is the flat page colour under the gradients.
var DefaultBackground = color.RGBA{R: 255, G: 153, B: 233, A: 255}

// DefaultGradients returns the radial spots painted over the page colour.
func DefaultGradients() []Gradient {
	return []Gradient{
		{X: 0.32, Y: 0.33, Reach: 0.5, Color: color.RGBA{R: 252, G: 146, B: 194, A: 255}},
		{X: 0.72, Y: 0.16, Reach: 0.5, Color: color.RGBA{R: 249, G: 93, B: 106, A: 255}},
		{X: 0.26, Y: 0.44, Reach: 0.5, Color: color.RGBA{R: 95, G: 141, B: 227, A: 255}},
		{X: 0.74, Y: 0.60, Reach: 0.5, Color: color.RGBA{R: 56, G: 101, B: 250, A: 255}},
		{X: 0.18, Y: 0.76, Reach: 0.5, Color: color.RGBA{R: 239, G: 216, B: 123, A: 255}},
		{X: 0.89, Y: 0.65, Reach: 0.5, Color: color.RGBA{R: 234, G: 164, B: 72, A: 255}},
		{X: 0.65, Y: 0.72, Reach: 0.5, Color: color.RGBA{R: 165, G: 226, B: 116, A: 255}},
	}
}

// randomIn returns a + floor(r*b), i.e. an integer in [a, a+b-1].
func randomIn(r *rand.Rand, a, b int) int {
	return a + r.IntN(b)
}

// Defaults fills unset options with randomized values and returns the
// initial parameters for a width x height canvas.
//
// Ranges: count [50,149], frequency [1,15], xAmplitude [1000,2499],
// yAmplitude [600,1599], multipliers [1,15], color [3,2002],
// thickness [50,124].
func Defaults(opts config.Options, width, height int, r *rand.Rand) Params {
	pickInt := func(v *int, a, b int) int {
		if v != nil {
			return *v
		}
		return randomIn(r, a, b)
	}
	pick := func(v *float64, a, b int) float64 {
		if v != nil {
			return *v
		}
		return float64(randomIn(r, a, b))
	}

	return Params{
		Width:               width,
		Height:              height,
		Count:               pickInt(opts.Count, 50, 100),
		Frequency:           pick(opts.Frequency, 1, 15),
		XAmplitude:          pick(opts.XAmplitude, 1000, 1500),
		YAmplitude:          pick(opts.YAmplitude, 600, 1000),
		AmplitudeMultiplier: 1,
		XMultiplier:         pick(opts.XMultiplier, 1, 15),
		YMultiplier:         pick(opts.YMultiplier, 1, 15),
		Color:               pick(opts.Color, 3, 2000),
		Thickness:           pick(opts.Thickness, 50, 75),
		Harmonics:           slices.Clone(config.DefaultHarmonics),
		HideNoise:           true,
		ShowProps:           true,
		NoiseFrequency:      config.NoiseFrequency,
		NoiseOctaves:        config.NoiseOctaves,
		Background:          DefaultBackground,
		Foreground:          color.RGBA{A: 255},
		Gradients:           DefaultGradients(),
	}
}

// NewRand returns a seeded random source for Defaults.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Clone returns a deep copy of p.
func (p Params) Clone() Params {
	p.Harmonics = slices.Clone(p.Harmonics)
	p.Gradients = slices.Clone(p.Gradients)
	return p
}

// WithSize returns a copy of p for a width x height canvas.
func (p Params) WithSize(width, height int) Params {
	p = p.Clone()
	p.Width, p.Height = width, height
	return p
}

// WithOffset returns a copy of p with the phase offset replaced.
func (p Params) WithOffset(offset float64) Params {
	p = p.Clone()
	p.Offset = offset
	return p
}

// WithToggles returns a copy of p with the display toggles replaced.
func (p Params) WithToggles(linear, hideNoise, showProps bool) Params {
	p = p.Clone()
	p.Linear, p.HideNoise, p.ShowProps = linear, hideNoise, showProps
	return p
}
