package main

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/04pril/imsweeper/internal/backend"
	"github.com/04pril/imsweeper/internal/config"
	"github.com/04pril/imsweeper/internal/fx"
	"github.com/04pril/imsweeper/internal/gui"
	"github.com/04pril/imsweeper/internal/i18n"
	"github.com/04pril/imsweeper/internal/minesweeper"
	"github.com/04pril/imsweeper/internal/sound"
	"github.com/04pril/imsweeper/internal/ui"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("minesweeper stopped")
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultSource())
	if errors.Is(err, config.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.Level())

	tr, err := i18n.Load(cfg.Language)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().
		Str("difficulty", cfg.Difficulty).
		Str("theme", cfg.Theme).
		Str("language", cfg.Language).
		Bool("sound", cfg.Sound).
		Int("scale", cfg.Scale).
		Int64("seed", seed).
		Msg("starting")

	app := ui.NewApp(ui.Options{
		Difficulty: cfg.Game(),
		Sound:      cfg.Sound,
		Dark:       cfg.Dark(),

		// The synth is always built so the Options menu can switch sound on.
		Audio:         sound.New(true),
		Exploder:      fx.NewRipple(),
		Translator:    tr,
		Measurer:      gui.DefaultMeasurer(),
		EngineOptions: []minesweeper.Option{minesweeper.WithRand(rand.New(rand.NewSource(seed)))},
	})
	return backend.Run(app, cfg.Scale)
}
