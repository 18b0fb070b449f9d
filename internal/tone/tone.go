// Package tone plays the background's square-wave series as sound: the sine
// series on the left channel and the cosine series on the right, so a stereo
// scope traces the same Lissajous figure as the curves.
package tone

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/wave"
)

// ErrToneFrequency indicates a voice whose highest harmonic reaches the
// Nyquist frequency.
var ErrToneFrequency = errors.New("tone: highest harmonic must stay below half the sample rate")

// Voice is the audible form of a parameter set.
type Voice struct {
	XHz, YHz  float64
	Harmonics []int
	Gain      float64
	// Phase is added to the time of every sample, in seconds.
	Phase float64
}

// VoiceFor maps background params onto a voice: the multipliers become the
// channel pitches and the scroll offset shifts the phase.
func VoiceFor(p background.Params) Voice {
	return Voice{
		XHz:       config.ToneBaseHz * p.XMultiplier,
		YHz:       config.ToneBaseHz * p.YMultiplier,
		Harmonics: slices.Clone(p.Harmonics),
		Gain:      config.ToneGain,
		Phase:     p.Offset / config.ToneBaseHz,
	}
}

func (v Voice) check(sr beep.SampleRate) error {
	top := 0
	for _, n := range v.Harmonics {
		top = max(top, abs(n))
	}
	nyquist := float64(sr) / 2
	if float64(top)*math.Max(v.XHz, v.YHz) >= nyquist {
		return fmt.Errorf("%w: %gHz x %d", ErrToneFrequency, math.Max(v.XHz, v.YHz), top)
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Tone is an endless beep.Streamer. Set may be called from any goroutine
// while the speaker streams.
type Tone struct {
	sr    beep.SampleRate
	voice atomic.Pointer[Voice]
	n     int64
}

// New returns a tone streaming v at sample rate sr.
func New(sr beep.SampleRate, v Voice) (*Tone, error) {
	t := &Tone{sr: sr}
	if err := t.Set(v); err != nil {
		return nil, err
	}
	return t, nil
}

// Set swaps the voice. The sample clock keeps running so the change does
// not restart the waveform.
func (t *Tone) Set(v Voice) error {
	if err := v.check(t.sr); err != nil {
		return err
	}
	v.Harmonics = slices.Clone(v.Harmonics)
	t.voice.Store(&v)
	return nil
}

// Stream implements beep.Streamer.
func (t *Tone) Stream(samples [][2]float64) (int, bool) {
	v := t.voice.Load()
	wx, wy := 2*math.Pi*v.XHz, 2*math.Pi*v.YHz
	for i := range samples {
		sec := float64(t.n)/float64(t.sr) + v.Phase
		samples[i][0] = wave.Sum(v.Gain, wx, sec, v.Harmonics, wave.Sin)
		samples[i][1] = wave.Sum(v.Gain, wy, sec, v.Harmonics, wave.Cos)
		t.n++
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Tone) Err() error { return nil }

// WriteWAV renders d of the voice for p into a 16-bit stereo WAV file.
func WriteWAV(w io.WriteSeeker, p background.Params, d time.Duration) error {
	sr := beep.SampleRate(config.ToneSampleRate)
	t, err := New(sr, VoiceFor(p))
	if err != nil {
		return err
	}
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, beep.Take(sr.N(d), t), format); err != nil {
		return fmt.Errorf("tone: encode wav: %w", err)
	}
	return nil
}
