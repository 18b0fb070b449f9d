package viewport_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/viewport"
)

func TestScroller(t *testing.T) {
	var s viewport.Scroller
	assert.False(t, s.Wheel(0))
	assert.False(t, s.Wheel(1), "cannot scroll above the top")
	assert.Equal(t, 0.0, s.Position())

	assert.True(t, s.Wheel(-3))
	assert.Equal(t, 3.0*config.WheelStep, s.Position())

	assert.True(t, s.Wheel(1))
	assert.Equal(t, 2.0*config.WheelStep, s.Position())

	assert.True(t, s.Wheel(10))
	assert.Equal(t, 0.0, s.Position())

	s.Wheel(-1)
	s.Reset()
	assert.Equal(t, 0.0, s.Position())
}

func TestCycle(t *testing.T) {
	c := viewport.NewCycle(config.Builtin(), "login")
	assert.Equal(t, "login", c.Current())
	assert.Equal(t, "random", c.Next())
	assert.Equal(t, "signup", c.Next())
	assert.Equal(t, "index", c.Next())

	c.Reload(config.Presets{"index": {}, "zeta": {}})
	assert.Equal(t, "index", c.Current())
	c.Reload(config.Presets{"zeta": {}})
	assert.Equal(t, "zeta", c.Current())
}

func TestCycle_Empty(t *testing.T) {
	c := viewport.NewCycle(config.Presets{}, "index")
	assert.Equal(t, "", c.Current())
	assert.Equal(t, "", c.Next())
}

func TestCycle_UnknownStart(t *testing.T) {
	c := viewport.NewCycle(config.Builtin(), "missing")
	assert.Equal(t, "index", c.Current())
}

func TestRightAligned(t *testing.T) {
	assert.Equal(t, 800-10-5*6, viewport.RightAligned(800, 10, 5, 6))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "00:00", viewport.FormatDuration(0))
	assert.Equal(t, "01:05", viewport.FormatDuration(65*time.Second))
}
