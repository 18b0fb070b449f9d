package wave_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/squarewave-background/internal/wave"
)

const eps = 1e-9

//----------------------------------------------------------------------------//
// Harmonic summation
//----------------------------------------------------------------------------//

// TestTerm_Periodic checks each harmonic repeats every 2*Pi/(omega*n).
func TestTerm_Periodic(t *testing.T) {
	omega := wave.Omega(wave.Period(7))
	for _, n := range []int{1, 3, 5, 7, 2, -3} {
		period := 2 * math.Pi / (omega * float64(n))
		for _, tm := range []float64{0, 0.37, 12.5, 314, 1e4} {
			for _, trig := range []wave.Trig{wave.Sin, wave.Cos} {
				a := wave.Term(omega, tm, n, trig)
				b := wave.Term(omega, tm+period, n, trig)
				assert.InDelta(t, a, b, 1e-6, "n=%d t=%v", n, tm)
			}
		}
	}
}

func TestSum_SkipsZeroHarmonic(t *testing.T) {
	omega := wave.Omega(wave.Period(3))
	with := wave.Sum(10, omega, 5, []int{0, 1, 3}, wave.Sin)
	without := wave.Sum(10, omega, 5, []int{1, 3}, wave.Sin)
	require.False(t, math.IsNaN(with))
	assert.InDelta(t, without, with, eps)
}

func TestSum_EmptyHarmonics(t *testing.T) {
	assert.Equal(t, 0.0, wave.Sum(100, 1, 1, nil, wave.Cos))
}

func TestPeriod(t *testing.T) {
	assert.Equal(t, 0.0, wave.Period(0))
	assert.InDelta(t, 1/314.1, wave.Period(1), eps)
	assert.InDelta(t, 1/(10*314.1), wave.Period(10), eps)
}

//----------------------------------------------------------------------------//
// Sampler
//----------------------------------------------------------------------------//

// TestCurve_HandComputed works through a single fundamental with amplitude 100:
// x_i = 100*(2/Pi)*sin(omega*314*i), y_i = 100*(2/Pi)*cos(omega*314*i).
func TestCurve_HandComputed(t *testing.T) {
	osc := wave.Oscillator{
		XAmplitude:  100,
		YAmplitude:  100,
		XMultiplier: 1,
		YMultiplier: 1,
		Omega:       wave.Omega(wave.Period(1)),
		Harmonics:   []int{1},
	}
	want := []wave.Point{
		{X: 0, Y: 63.66197723675813},
		{X: -0.12734789342023417, Y: 63.66184986479385},
		{X: -0.2546952772568193, Y: 63.66146774941066},
		{X: -0.38204164192814544, Y: 63.660830892137625},
	}
	got := osc.Curve(0)
	require.Len(t, got, wave.Samples)
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "x[%d]", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "y[%d]", i)
	}
}

func TestCurve_BatchShiftsPhase(t *testing.T) {
	osc := wave.Oscillator{
		XAmplitude: 1200, YAmplitude: 800,
		XMultiplier: 3, YMultiplier: 5,
		Omega:     wave.Omega(wave.Period(4)),
		Harmonics: []int{1, 3, 5, 7},
	}
	// Curve 2 starts where curve 1's second sample was.
	c1 := osc.Curve(1)
	c2 := osc.Curve(2)
	for i := 0; i < wave.Samples-1; i++ {
		assert.InDelta(t, c1[i+1].X, c2[i].X, eps)
		assert.InDelta(t, c1[i+1].Y, c2[i].Y, eps)
	}
}

func TestSampleTimes_Offset(t *testing.T) {
	base := wave.Oscillator{XMultiplier: 2, YMultiplier: 7}
	shifted := base
	shifted.Offset = 0.25
	for i := 0; i < wave.Samples; i++ {
		tx0, ty0 := base.SampleTimes(3, i)
		tx1, ty1 := shifted.SampleTimes(3, i)
		assert.InDelta(t, wave.PhaseStep*2*0.25, tx1-tx0, eps)
		assert.InDelta(t, wave.PhaseStep*7*0.25, ty1-ty0, eps)
	}
}

//----------------------------------------------------------------------------//
// Spectrum
//----------------------------------------------------------------------------//

func TestSpectrum_Zero(t *testing.T) {
	c := wave.Spectrum(0)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(128), c.G)
	assert.Equal(t, uint8(1), c.B)
	assert.Equal(t, uint8(255), c.A)
}

func TestSpectrum_PeriodicAndBounded(t *testing.T) {
	for p := -20.0; p < 20; p += 0.173 {
		c := wave.Spectrum(p)
		for _, ch := range []uint8{c.R, c.G, c.B} {
			assert.GreaterOrEqual(t, ch, uint8(1), "p=%v", p)
		}
		next := wave.Spectrum(p + 2*math.Pi)
		// A rounding boundary can straddle the shifted phase by one unit.
		assert.InDelta(t, float64(c.R), float64(next.R), 1, "p=%v", p)
		assert.InDelta(t, float64(c.G), float64(next.G), 1, "p=%v", p)
		assert.InDelta(t, float64(c.B), float64(next.B), 1, "p=%v", p)
	}
}

func TestSpectrumPosition(t *testing.T) {
	assert.InDelta(t, 5.0, wave.SpectrumPosition(5, 0, 10), eps)
	assert.InDelta(t, 5.25, wave.SpectrumPosition(5, 1, 10), eps)
	assert.InDelta(t, 5+9/4.0, wave.SpectrumPosition(5, 9, 10), eps)
}
