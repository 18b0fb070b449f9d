// Package viewport tracks the window-side input state that feeds the
// background: the virtual scroll position and the selected preset.
package viewport

import (
	"fmt"
	"slices"
	"time"

	"github.com/iburimskiy/squarewave-background/internal/config"
)

// Scroller turns wheel notches into an absolute scroll position, like the
// scrollTop of a page that cannot scroll above its start.
type Scroller struct {
	pos float64
}

// Wheel applies a vertical wheel delta and reports whether the position
// moved. Positive dy scrolls up.
func (s *Scroller) Wheel(dy float64) bool {
	if dy == 0 {
		return false
	}
	next := max(s.pos-dy*config.WheelStep, 0)
	if next == s.pos {
		return false
	}
	s.pos = next
	return true
}

// Position returns the scroll position in pixels.
func (s *Scroller) Position() float64 { return s.pos }

// Reset returns to the top.
func (s *Scroller) Reset() { s.pos = 0 }

// Cycle steps through preset names in sorted order.
type Cycle struct {
	names   []string
	current int
}

// NewCycle starts at start, or at the first name when start is unknown.
func NewCycle(p config.Presets, start string) *Cycle {
	c := &Cycle{names: p.Names()}
	c.current = max(slices.Index(c.names, start), 0)
	return c
}

// Current returns the selected name, "" when there are no presets.
func (c *Cycle) Current() string {
	if len(c.names) == 0 {
		return ""
	}
	return c.names[c.current]
}

// Next advances and returns the new name.
func (c *Cycle) Next() string {
	if len(c.names) == 0 {
		return ""
	}
	c.current = (c.current + 1) % len(c.names)
	return c.names[c.current]
}

// Reload replaces the preset set, keeping the current name when present.
func (c *Cycle) Reload(p config.Presets) {
	cur := c.Current()
	c.names = p.Names()
	c.current = max(slices.Index(c.names, cur), 0)
}

// RightAligned returns the x at which a line of n glyphs, each glyphWidth
// wide, ends margin pixels before the right edge.
func RightAligned(width, margin, n, glyphWidth int) int {
	return width - margin - n*glyphWidth
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
