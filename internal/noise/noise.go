// Package noise renders the fractal noise overlay texture.
package noise

import (
	"image"
	"image/color"

	"github.com/aquilax/go-perlin"
	"golang.org/x/image/draw"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
)

const (
	alpha = 2.0 // amplitude falloff per octave
	beta  = 2.0 // frequency growth per octave
)

// Generator produces fractal noise textures. Each channel uses its own
// seeded Perlin field, like an RGBA turbulence filter.
type Generator struct {
	channels [4]*perlin.Perlin
	opacity  float64
}

// NewGenerator returns a generator for the given octave count and seed.
func NewGenerator(octaves int, seed int64) *Generator {
	g := &Generator{opacity: config.NoiseOpacity}
	for i := range g.channels {
		g.channels[i] = perlin.NewPerlin(alpha, beta, max(octaves, 1), seed+int64(i))
	}
	return g
}

// sample maps a Perlin value from roughly [-1, 1] onto [0, 255].
func sample(p *perlin.Perlin, x, y float64) uint8 {
	v := (p.Noise2D(x, y) + 1) / 2
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	return uint8(v * 255)
}

// Texture renders a w x h tile. frequency is in cycles per pixel.
func (g *Generator) Texture(w, h int, frequency float64) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x)*frequency, float64(y)*frequency
			a := float64(sample(g.channels[3], fx, fy)) * g.opacity
			img.SetNRGBA(x, y, color.NRGBA{
				R: sample(g.channels[0], fx, fy),
				G: sample(g.channels[1], fx, fy),
				B: sample(g.channels[2], fx, fy),
				A: uint8(a),
			})
		}
	}
	return img
}

// Cache keeps the overlay for the last noise spec so repeated frames with an
// unchanged spec reuse it.
type Cache struct {
	seed  int64
	spec  background.Noise
	image *image.NRGBA
}

// NewCache returns an empty cache using seed for every texture.
func NewCache(seed int64) *Cache {
	return &Cache{seed: seed}
}

// Overlay returns a full-size overlay for spec, rendered at reduced
// resolution and scaled up.
func (c *Cache) Overlay(spec background.Noise) *image.NRGBA {
	if c.image != nil && c.spec == spec {
		return c.image
	}
	down := config.NoiseDownscale
	tw, th := max(spec.Width/down, 1), max(spec.Height/down, 1)
	tile := NewGenerator(spec.Octaves, c.seed).Texture(tw, th, spec.Frequency)

	full := image.NewNRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	draw.BiLinear.Scale(full, full.Bounds(), tile, tile.Bounds(), draw.Src, nil)

	c.spec, c.image = spec, full
	return full
}
