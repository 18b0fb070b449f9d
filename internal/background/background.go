// Package background owns the current background parameters and their
// derived scene, and recomputes the scene whenever the parameters change.
package background

import (
	"log/slog"

	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/logx"
	"github.com/iburimskiy/squarewave-background/internal/throttle"
)

// Background holds one parameter set and its scene. It is driven from a
// single frame loop; only Scroll may be called from other goroutines.
type Background struct {
	// base is the last explicitly set params; scroll offsets are applied on
	// top of it.
	base   Params
	params Params
	scene  Scene

	scroll   throttle.Latest[float64]
	revision uint64
	logger   *slog.Logger
}

// New builds a background for p and computes its first scene.
func New(p Params) *Background {
	b := &Background{logger: logx.Logger().With("component", "background")}
	b.apply(p, p)
	return b
}

// SetOptions replaces the parameters wholesale and recomputes.
func (b *Background) SetOptions(p Params) {
	b.apply(p, p)
}

// Resize updates the canvas size and recomputes, keeping the current offset.
func (b *Background) Resize(width, height int) {
	if width == b.params.Width && height == b.params.Height {
		return
	}
	b.logger.Debug("resize", "width", width, "height", height)
	b.apply(b.base.WithSize(width, height), b.params.WithSize(width, height))
}

// Modify applies fn to both the base and the current parameters, so the
// change survives later scroll updates.
func (b *Background) Modify(fn func(Params) Params) {
	b.apply(fn(b.base.Clone()), fn(b.params.Clone()))
}

// Scroll records the latest scroll position in pixels. Any number of calls
// between two Ticks result in a single recompute using the last position.
func (b *Background) Scroll(position float64) {
	b.scroll.Post(position)
}

// Tick applies a pending scroll position, if any, and reports whether the
// scene changed. Call it once per frame.
func (b *Background) Tick() bool {
	pos, ok := b.scroll.Take()
	if !ok {
		return false
	}
	offset := b.base.Offset + pos*config.ScrollScale
	b.apply(b.base, b.base.WithOffset(offset))
	return true
}

// Params returns a copy of the current parameters.
func (b *Background) Params() Params {
	return b.params.Clone()
}

// Scene returns the current scene.
func (b *Background) Scene() Scene {
	return b.scene
}

// Revision counts recomputes.
func (b *Background) Revision() uint64 {
	return b.revision
}

func (b *Background) apply(base, p Params) {
	b.base = base.Clone()
	b.params = p.Clone()
	b.scene = Compute(b.params)
	b.revision++
	b.logger.Debug("recompute",
		"revision", b.revision,
		"curves", len(b.scene.Curves),
		"offset", b.params.Offset,
	)
}
