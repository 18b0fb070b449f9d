// Package game hosts the background in an ebiten window: window size drives
// Resize, the mouse wheel drives Scroll, and every frame draws the current
// scene.
package game

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/logx"
	"github.com/iburimskiy/squarewave-background/internal/render"
	"github.com/iburimskiy/squarewave-background/internal/tone"
	"github.com/iburimskiy/squarewave-background/internal/viewport"
)

const (
	// ebitenutil debug font metrics
	glyphWidth = 6
	lineHeight = 16

	scopeSize   = 120
	scopeFrames = 1024
	tapRingSize = 8192
)

// Game implements ebiten.Game.
type Game struct {
	bg      *background.Background
	raster  *render.Raster
	rng     *rand.Rand
	presets config.Presets
	cycle   *viewport.Cycle
	scroll  viewport.Scroller

	// cached layers
	backdrop     *ebiten.Image
	backdropSize image.Point
	noiseImage   *ebiten.Image
	noiseSpec    background.Noise
	white        *ebiten.Image
	vertices     []ebiten.Vertex
	indices      []uint16

	// audio
	tone       *tone.Tone
	tap        *tone.Tap
	ctrl       *beep.Ctrl
	initDone   bool
	paused     bool
	toneStart  time.Time
	tonePlayed time.Duration

	lastErr error
	logger  *slog.Logger
}

// Options configure a new Game.
type Options struct {
	Presets config.Presets
	Preset  string
	Seed    uint64
}

// NewGame builds the window state for the named preset.
func NewGame(opts Options) (*Game, error) {
	if opts.Presets == nil {
		opts.Presets = config.Builtin()
	}
	start, err := opts.Presets.Lookup(opts.Preset)
	if err != nil {
		return nil, err
	}
	raster, err := render.NewRaster(int64(opts.Seed))
	if err != nil {
		return nil, err
	}

	g := &Game{
		raster:  raster,
		rng:     background.NewRand(opts.Seed),
		presets: opts.Presets,
		cycle:   viewport.NewCycle(opts.Presets, opts.Preset),
		logger:  logx.Logger().With("component", "game"),
	}
	g.bg = background.New(background.Defaults(start, config.WindowWidth, config.WindowHeight, g.rng))
	g.logger.Info("background ready", "preset", opts.Preset, "curves", len(g.bg.Scene().Curves))
	return g, nil
}

// Close releases the renderer and stops audio.
func (g *Game) Close() error {
	if g.initDone {
		speaker.Clear()
	}
	return g.raster.Close()
}

func (g *Game) Update() error {
	justPressed := inpututil.IsKeyJustPressed

	// Scroll: every wheel event posts, the tick below applies at most one.
	if _, dy := ebiten.Wheel(); g.scroll.Wheel(dy) {
		g.bg.Scroll(g.scroll.Position())
	}

	switch {
	case justPressed(ebiten.KeyN):
		g.toggle(func(p background.Params) background.Params {
			return p.WithToggles(p.Linear, !p.HideNoise, p.ShowProps)
		})
	case justPressed(ebiten.KeyP):
		g.toggle(func(p background.Params) background.Params {
			return p.WithToggles(p.Linear, p.HideNoise, !p.ShowProps)
		})
	case justPressed(ebiten.KeyL):
		g.toggle(func(p background.Params) background.Params {
			return p.WithToggles(!p.Linear, p.HideNoise, p.ShowProps)
		})
	case justPressed(ebiten.KeyTab):
		g.setErr(g.selectPreset(g.cycle.Next()))
	case justPressed(ebiten.KeyR):
		g.setErr(g.selectPreset(g.cycle.Current()))
	case justPressed(ebiten.KeyS):
		g.setErr(g.saveFrameDialog())
	case justPressed(ebiten.KeyO):
		g.setErr(g.openPresetsDialog())
	case justPressed(ebiten.KeyM):
		g.setErr(g.toggleTone())
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.bg.Tick() {
		g.logger.Debug("scroll applied", "revision", g.bg.Revision(), "offset", g.bg.Params().Offset)
		g.syncTone()
	}
	return nil
}

func (g *Game) setErr(err error) {
	if err != nil {
		g.logger.Error("action failed", "err", err)
	}
	g.lastErr = err
}

func (g *Game) toggle(fn func(background.Params) background.Params) {
	g.bg.Modify(fn)
	g.syncTone()
}

// selectPreset rebuilds the params from a preset, keeping window size and
// display toggles. Unset preset fields are drawn fresh.
func (g *Game) selectPreset(name string) error {
	opts, err := g.presets.Lookup(name)
	if err != nil {
		return err
	}
	cur := g.bg.Params()
	next := background.Defaults(opts, cur.Width, cur.Height, g.rng).
		WithToggles(cur.Linear, cur.HideNoise, cur.ShowProps)
	g.scroll.Reset()
	g.bg.SetOptions(next)
	g.syncTone()
	g.logger.Info("preset", "name", name, "count", next.Count, "frequency", next.Frequency)
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.bg.Resize(outsideWidth, outsideHeight)
	}
	s := g.bg.Scene()
	return s.Width, s.Height
}

func (g *Game) Draw(screen *ebiten.Image) {
	s := g.bg.Scene()

	// Page colour and gradient spots
	g.drawBackdrop(screen, s)

	// Curves
	g.drawCurves(screen, s)

	// Noise overlay
	if s.Noise != nil {
		g.drawNoise(screen, *s.Noise)
	}

	// Parameter listing
	for i, line := range s.Props {
		x := viewport.RightAligned(s.Width, config.PropsRight, len(line), glyphWidth)
		ebitenutil.DebugPrintAt(screen, line, x, config.PropsTop+lineHeight*(i+1))
	}

	// Stereo scope of the tone
	if g.tap != nil && !g.paused {
		g.drawScope(screen, s)
	}

	// Draw help
	status := fmt.Sprintf("preset %s | wheel: scroll | Tab: next preset | N noise | P props | L lines | M tone | S save | O open",
		g.cycle.Current())
	if g.tone != nil {
		status += " | tone " + viewport.FormatDuration(g.toneElapsed())
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackdrop(screen *ebiten.Image, s background.Scene) {
	size := image.Pt(s.Width, s.Height)
	if g.backdrop == nil || g.backdropSize != size {
		img, err := g.raster.Backdrop(s)
		if err != nil {
			g.setErr(err)
			screen.Fill(s.Background)
			return
		}
		if g.backdrop != nil {
			g.backdrop.Deallocate()
		}
		g.backdrop = ebiten.NewImageFromImage(img)
		g.backdropSize = size
	}
	screen.DrawImage(g.backdrop, nil)
}

// offsetPath adapts a vector.Path to shape.Sink, translating every point.
type offsetPath struct {
	p      *vector.Path
	dx, dy float32
}

func (o offsetPath) MoveTo(x, y float32) { o.p.MoveTo(x+o.dx, y+o.dy) }
func (o offsetPath) LineTo(x, y float32) { o.p.LineTo(x+o.dx, y+o.dy) }
func (o offsetPath) CubicTo(x1, y1, x2, y2, x3, y3 float32) {
	o.p.CubicTo(x1+o.dx, y1+o.dy, x2+o.dx, y2+o.dy, x3+o.dx, y3+o.dy)
}
func (o offsetPath) Close() { o.p.Close() }

func (g *Game) drawCurves(screen *ebiten.Image, s background.Scene) {
	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}
	src := g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	stroke := &vector.StrokeOptions{
		Width:    float32(s.Thickness),
		LineJoin: vector.LineJoinRound,
	}
	for _, c := range s.Curves {
		if len(c.Path) == 0 {
			continue
		}
		var path vector.Path
		c.Path.Replay(offsetPath{p: &path, dx: float32(s.Center.X), dy: float32(s.Center.Y)})

		g.vertices, g.indices = path.AppendVerticesAndIndicesForStroke(g.vertices[:0], g.indices[:0], stroke)
		r, gr, b := float32(c.Color.R)/255, float32(c.Color.G)/255, float32(c.Color.B)/255
		for i := range g.vertices {
			g.vertices[i].SrcX = 1
			g.vertices[i].SrcY = 1
			g.vertices[i].ColorR = r
			g.vertices[i].ColorG = gr
			g.vertices[i].ColorB = b
			g.vertices[i].ColorA = 1
		}
		screen.DrawTriangles(g.vertices, g.indices, src, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	}
}

func (g *Game) drawNoise(screen *ebiten.Image, spec background.Noise) {
	if g.noiseImage == nil || g.noiseSpec != spec {
		if g.noiseImage != nil {
			g.noiseImage.Deallocate()
		}
		g.noiseImage = ebiten.NewImageFromImage(g.raster.Overlay(spec))
		g.noiseSpec = spec
	}
	screen.DrawImage(g.noiseImage, nil)
}

func (g *Game) drawScope(screen *ebiten.Image, s background.Scene) {
	frames := g.tap.Snapshot(scopeFrames)
	if len(frames) < 2 {
		return
	}
	// The tone peaks near gain * 1.07; scale that to the scope radius.
	scale := float64(scopeSize) / 2 / (config.ToneGain * 1.1)
	cx := float64(20 + scopeSize/2)
	cy := float64(s.Height - 20 - scopeSize/2)

	vector.StrokeRect(screen, 20, float32(s.Height-20-scopeSize), scopeSize, scopeSize, 1, color.RGBA{R: 60, G: 70, B: 90, A: 255}, false)
	for i := 1; i < len(frames); i++ {
		x1, y1 := cx+frames[i-1][0]*scale, cy+frames[i-1][1]*scale
		x2, y2 := cx+frames[i][0]*scale, cy+frames[i][1]*scale
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, color.RGBA{R: 255, G: 255, B: 255, A: 160}, false)
	}
}

func (g *Game) toneElapsed() time.Duration {
	if g.paused {
		return g.tonePlayed
	}
	return g.tonePlayed + time.Since(g.toneStart)
}

// syncTone pushes the current params to the playing tone.
func (g *Game) syncTone() {
	if g.tone == nil {
		return
	}
	if err := g.tone.Set(tone.VoiceFor(g.bg.Params())); err != nil {
		g.setErr(err)
	}
}

func (g *Game) toggleTone() error {
	if g.ctrl != nil {
		speaker.Lock()
		g.paused = !g.paused
		g.ctrl.Paused = g.paused
		speaker.Unlock()
		if g.paused {
			g.tonePlayed += time.Since(g.toneStart)
		} else {
			g.toneStart = time.Now()
		}
		return nil
	}

	sr := beep.SampleRate(config.ToneSampleRate)
	t, err := tone.New(sr, tone.VoiceFor(g.bg.Params()))
	if err != nil {
		return err
	}
	if !g.initDone {
		if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
			return fmt.Errorf("game: init speaker: %w", err)
		}
		g.initDone = true
	}

	g.tone = t
	g.tap = tone.NewTap(t, tapRingSize)
	g.ctrl = &beep.Ctrl{Streamer: g.tap, Paused: false}
	g.paused = false
	g.toneStart = time.Now()
	speaker.Play(g.ctrl)
	g.logger.Info("tone started", "sampleRate", int(sr))
	return nil
}

func (g *Game) saveFrameDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Background Frame"),
		zenity.Filename("background.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}
	return g.saveFrame(filename)
}

func (g *Game) saveFrame(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.raster.WritePNG(f, g.bg.Scene()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	g.logger.Info("frame saved", "path", path)
	return nil
}

func (g *Game) openPresetsDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Preset File"),
		zenity.FileFilters{{
			Name:     "Presets",
			Patterns: []string{"*.yaml", "*.yml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	presets, err := config.LoadPresets(filename)
	if err != nil {
		return err
	}
	g.presets = presets
	g.cycle.Reload(presets)
	g.logger.Info("presets loaded", "path", filename, "names", presets.Names())
	return g.selectPreset(g.cycle.Current())
}
