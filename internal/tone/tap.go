package tone

import (
	"sync"

	"github.com/faiface/beep"
)

// Tap wraps a beep.Streamer and records the last N stereo frames into a ring
// buffer so the window can draw a scope of what is playing.
type Tap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    bool
	mu        sync.RWMutex
}

// NewTap returns a tap keeping the last ringSize frames of src.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	return &Tap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

// Stream pulls from Source and records what it returned.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	t.record(samples[:n])
	return n, ok
}

// record appends frames to the ring. Only the last len(buffer) frames of a
// long batch survive, so the older head is skipped before copying.
func (t *Tap) record(frames [][2]float64) {
	size := len(t.buffer)
	if size == 0 || len(frames) == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(frames) >= size {
		frames = frames[len(frames)-size:]
		t.nextIndex = 0
		t.filled = true
	}
	for len(frames) > 0 {
		c := copy(t.buffer[t.nextIndex:], frames)
		frames = frames[c:]
		t.nextIndex += c
		if t.nextIndex == size {
			t.nextIndex = 0
			t.filled = true
		}
	}
}

func (t *Tap) Err() error { return t.Source.Err() }

// Snapshot returns up to the last n recorded frames, oldest first.
func (t *Tap) Snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	have := t.nextIndex
	if t.filled {
		have = len(t.buffer)
	}
	n = min(n, have)
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
