package wave

import "math"

// Trig selects the trigonometric variant of a harmonic series.
type Trig int

const (
	Sin Trig = iota
	Cos
)

func (t Trig) eval(x float64) float64 {
	if t == Cos {
		return math.Cos(x)
	}
	return math.Sin(x)
}

// Term returns a single square-wave harmonic: (2/(n*Pi)) * trig(omega*t*n).
// n must be non-zero.
func Term(omega, t float64, n int, trig Trig) float64 {
	b := float64(n)
	return (2 / (b * math.Pi)) * trig.eval(omega*t*b)
}

// Sum evaluates amplitude * sum of Term over the given harmonic indices.
// Zero indices are skipped.
func Sum(amplitude, omega, t float64, harmonics []int, trig Trig) float64 {
	var acc float64
	for _, n := range harmonics {
		if n == 0 {
			continue
		}
		acc += Term(omega, t, n, trig)
	}
	return amplitude * acc
}

// Period converts a frequency to the series period. A zero frequency yields
// a zero period, which collapses every curve onto a constant point.
func Period(frequency float64) float64 {
	if frequency == 0 {
		return 0
	}
	return 1 / (frequency * 314.1)
}

// Omega is the angular frequency for a period.
func Omega(period float64) float64 {
	return 2 * math.Pi * period
}
