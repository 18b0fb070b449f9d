package wave

import (
	"image/color"
	"math"
)

// Spectrum maps a phase position onto a cyclic RGB spectrum. Channels are
// centred at 128 with amplitude 127, so every channel lies in [1, 255].
func Spectrum(p float64) color.RGBA {
	return color.RGBA{
		R: channel(math.Cos(p + 2*math.Pi)),
		G: channel(math.Sin(p + 2*math.Pi)),
		B: channel(math.Cos(p + math.Pi)),
		A: 255,
	}
}

// channel rounds half toward +Inf so that -0.5 maps to 0, not -1.
func channel(v float64) uint8 {
	return uint8(math.Floor(127*v+0.5) + 128)
}

// SpectrumPosition spreads curve hues over the spectrum by rank.
func SpectrumPosition(seed float64, index, count int) float64 {
	return seed + float64(index)/(float64(count)*0.4)
}
