// Command bgrender renders one background frame to PNG or SVG, and can
// write the matching tone to a WAV file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/iburimskiy/squarewave-background/internal/background"
	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/logx"
	"github.com/iburimskiy/squarewave-background/internal/render"
	"github.com/iburimskiy/squarewave-background/internal/tone"
)

func main() {
	var (
		preset     = flag.String("preset", "index", "preset name")
		presetFile = flag.String("presets", "", "YAML file with extra presets")
		seed       = flag.Uint64("seed", 1, "seed for randomized defaults and noise")
		width      = flag.Int("width", config.WindowWidth, "canvas width")
		height     = flag.Int("height", config.WindowHeight, "canvas height")
		scroll     = flag.Float64("scroll", 0, "scroll position in pixels")
		linear     = flag.Bool("linear", false, "join samples with straight lines")
		withNoise  = flag.Bool("noise", false, "draw the noise overlay")
		props      = flag.Bool("props", true, "draw the parameter listing")
		out        = flag.String("o", "background.png", "output file (.png or .svg)")
		wavOut     = flag.String("wav", "", "also write the tone to this WAV file")
		wavLength  = flag.Duration("wav-duration", 5*time.Second, "length of the WAV file")
		dump       = flag.Bool("dump-presets", false, "print the available presets as YAML and exit")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logx.SetLogger(logx.Stderr(level))

	if *dump {
		if err := dumpPresets(os.Stdout, *presetFile); err != nil {
			fmt.Fprintln(os.Stderr, "bgrender:", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*preset, *presetFile, *seed, *width, *height, *scroll,
		*linear, *withNoise, *props, *out, *wavOut, *wavLength); err != nil {
		fmt.Fprintln(os.Stderr, "bgrender:", err)
		os.Exit(1)
	}
}

func run(preset, presetFile string, seed uint64, width, height int, scroll float64,
	linear, withNoise, props bool, out, wavOut string, wavLength time.Duration) error {
	log := logx.Logger()

	presets, err := loadPresets(presetFile)
	if err != nil {
		return err
	}
	opts, err := presets.Lookup(preset)
	if err != nil {
		return err
	}

	p := background.Defaults(opts, width, height, background.NewRand(seed)).
		WithToggles(linear, !withNoise, props)
	bg := background.New(p)
	if scroll != 0 {
		bg.Scroll(scroll)
		bg.Tick()
	}
	scene := bg.Scene()

	if err := writeFrame(out, scene, int64(seed)); err != nil {
		return err
	}
	log.Info("frame written", "path", out, "curves", len(scene.Curves), "offset", bg.Params().Offset)

	if wavOut != "" {
		if err := writeTone(wavOut, bg.Params(), wavLength); err != nil {
			return err
		}
		log.Info("tone written", "path", wavOut, "duration", wavLength)
	}
	return nil
}

// loadPresets returns the built-in presets, merged with path when set.
func loadPresets(path string) (config.Presets, error) {
	if path == "" {
		return config.Builtin(), nil
	}
	return config.LoadPresets(path)
}

func dumpPresets(w io.Writer, presetFile string) error {
	presets, err := loadPresets(presetFile)
	if err != nil {
		return err
	}
	return config.EncodePresets(w, presets)
}

func writeFrame(path string, scene background.Scene, seed int64) error {
	var encode func(io.Writer) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		encode = func(w io.Writer) error { return render.WriteSVG(w, scene) }
	case ".png":
		encode = func(w io.Writer) error {
			r, err := render.NewRaster(seed)
			if err != nil {
				return err
			}
			defer r.Close()
			return r.WritePNG(w, scene)
		}
	default:
		return fmt.Errorf("unsupported output type: %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = encode(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
	}
	return err
}

func writeTone(path string, p background.Params, d time.Duration) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := tone.WriteWAV(f, p, d); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
