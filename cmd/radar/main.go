//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"radar-sim/internal/app"
	"radar-sim/internal/pipeline"
	"radar-sim/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = cfg.Width
	sceneCfg.Height = cfg.Height
	sceneCfg.Seed = cfg.Seed
	sceneCfg.ObjectRadius = cfg.Radius
	sceneCfg.MaxObjects = cfg.MaxObjects
	sceneCfg.InitialObjects = cfg.InitialObjects
	sceneCfg.WrapNoise = cfg.WrapNoise
	if shapes := scene.ParseShapes(cfg.Shapes); len(shapes) > 0 {
		sceneCfg.Shapes = shapes
	}

	gen, err := scene.New(sceneCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid scene configuration")
	}

	game := app.New(gen, pipeline.New(log), cfg.Scale, cfg.Seed)
	size := gen.Size()

	ebiten.SetWindowTitle("radar-sim")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("viewer exited")
	}
}
