package main

import (
	"errors"
	"flag"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/squarewave-background/internal/config"
	"github.com/iburimskiy/squarewave-background/internal/game"
	"github.com/iburimskiy/squarewave-background/internal/logx"
)

func main() {
	preset := flag.String("preset", "random", "preset name (index, login, signup, random or one from -presets)")
	presetFile := flag.String("presets", "", "YAML file with extra presets")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed for randomized defaults and noise")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logx.SetLogger(logx.Stderr(level))

	presets := config.Builtin()
	if *presetFile != "" {
		var err error
		if presets, err = config.LoadPresets(*presetFile); err != nil {
			panic(err)
		}
	}

	g, err := game.NewGame(game.Options{Presets: presets, Preset: *preset, Seed: *seed})
	if err != nil {
		panic(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Square-wave background - wheel: scroll, Tab: preset, Esc/Q: Quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
