// Package config resolves the game settings. Later layers win: built-in
// defaults, MINESWEEPER_* variables (the process environment first, then a
// .env file), an optional YAML file, and finally flags given on the command
// line.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/04pril/imsweeper/internal/i18n"
	"github.com/04pril/imsweeper/internal/minesweeper"
)

const envPrefix = "MINESWEEPER_"

// ErrHelp is returned by Load when the user asked for --help; usage has
// already been printed.
var ErrHelp = pflag.ErrHelp

var Themes = []string{"classic", "dark"}

type Config struct {
	Difficulty string             `yaml:"difficulty"`
	Custom     minesweeper.Values `yaml:"custom"`
	Scale      int                `yaml:"scale"`
	Theme      string             `yaml:"theme"`
	Sound      bool               `yaml:"sound"`
	Seed       int64              `yaml:"seed"`
	LogLevel   string             `yaml:"log_level"`
	Language   string             `yaml:"language"`
}

func Default() Config {
	return Config{
		Difficulty: "beginner",
		Custom:     minesweeper.Values{Width: 24, Height: 20, Bombs: 99},
		Scale:      2,
		Theme:      "classic",
		Sound:      true,
		LogLevel:   "info",
		Language:   i18n.DefaultLanguage,
	}
}

// Source is where Load reads from.
type Source struct {
	Args    []string // without the program name
	EnvFile string   // a missing file is not an error
	Lookup  func(key string) (string, bool)
	Output  io.Writer // usage and flag errors
}

// DefaultSource reads the real command line and environment.
func DefaultSource() Source {
	return Source{Args: os.Args[1:], EnvFile: ".env", Lookup: os.LookupEnv, Output: os.Stderr}
}

type flagValues struct {
	config     string
	difficulty string
	width      int
	height     int
	bombs      int
	scale      int
	theme      string
	sound      bool
	seed       int64
	logLevel   string
	language   string
}

func newFlagSet(out io.Writer, v *flagValues) *pflag.FlagSet {
	flags := pflag.NewFlagSet("minesweeper", pflag.ContinueOnError)
	flags.SetOutput(out)
	flags.StringVarP(&v.config, "config", "c", "", "YAML settings file")
	flags.StringVarP(&v.difficulty, "difficulty", "d", "", "beginner, intermediate, expert or custom")
	flags.IntVar(&v.width, "width", 0, "custom board width")
	flags.IntVar(&v.height, "height", 0, "custom board height")
	flags.IntVar(&v.bombs, "bombs", 0, "custom bomb count")
	flags.IntVar(&v.scale, "scale", 0, "window scale, 1 to 6")
	flags.StringVar(&v.theme, "theme", "", "classic or dark")
	flags.BoolVar(&v.sound, "sound", true, "play sound effects")
	flags.Int64Var(&v.seed, "seed", 0, "mine placement seed, 0 for a random one")
	flags.StringVar(&v.logLevel, "log-level", "", "trace, debug, info, warn or error")
	flags.StringVar(&v.language, "language", "", "interface language ("+strings.Join(i18n.Languages(), ", ")+")")
	return flags
}

// Load resolves the settings from src.
func Load(src Source) (Config, error) {
	if src.Lookup == nil {
		src.Lookup = func(string) (string, bool) { return "", false }
	}
	if src.Output == nil {
		src.Output = io.Discard
	}

	var fv flagValues
	flags := newFlagSet(src.Output, &fv)
	if err := flags.Parse(src.Args); err != nil {
		return Config{}, err
	}
	if flags.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected argument %q", flags.Arg(0))
	}

	cfg := Default()

	lookup, err := envLookup(src)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	path := fv.config
	if path == "" {
		path, _ = lookup(envPrefix + "CONFIG")
	}
	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.applyFlags(flags, &fv)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envLookup prefers the process environment over the .env file, as
// godotenv.Load would.
func envLookup(src Source) (func(string) (string, bool), error) {
	var file map[string]string
	if src.EnvFile != "" {
		m, err := godotenv.Read(src.EnvFile)
		switch {
		case err == nil:
			file = m
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("read %s: %w", src.EnvFile, err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := src.Lookup(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	var errs []error
	num := func(name string, set func(int64)) {
		v, ok := lookup(envPrefix + name)
		if !ok || v == "" {
			return
		}
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", envPrefix, name, err))
			return
		}
		set(n)
	}

	str("DIFFICULTY", &c.Difficulty)
	str("THEME", &c.Theme)
	str("LOG_LEVEL", &c.LogLevel)
	str("LANGUAGE", &c.Language)
	num("CUSTOM_WIDTH", func(n int64) { c.Custom.Width = int(n) })
	num("CUSTOM_HEIGHT", func(n int64) { c.Custom.Height = int(n) })
	num("CUSTOM_BOMBS", func(n int64) { c.Custom.Bombs = int(n) })
	num("SCALE", func(n int64) { c.Scale = int(n) })
	num("SEED", func(n int64) { c.Seed = n })
	if v, ok := lookup(envPrefix + "SOUND"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSOUND: %w", envPrefix, err))
		}
		c.Sound = b
	}
	return errors.Join(errs...)
}

func (c *Config) applyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyFlags copies only the flags that were given, so their defaults do not
// mask the earlier layers.
func (c *Config) applyFlags(flags *pflag.FlagSet, v *flagValues) {
	set := func(name string, apply func()) {
		if flags.Changed(name) {
			apply()
		}
	}
	set("difficulty", func() { c.Difficulty = v.difficulty })
	set("width", func() { c.Custom.Width = v.width })
	set("height", func() { c.Custom.Height = v.height })
	set("bombs", func() { c.Custom.Bombs = v.bombs })
	set("scale", func() { c.Scale = v.scale })
	set("theme", func() { c.Theme = v.theme })
	set("sound", func() { c.Sound = v.sound })
	set("seed", func() { c.Seed = v.seed })
	set("log-level", func() { c.LogLevel = v.logLevel })
	set("language", func() { c.Language = v.language })
}

// Validate reports every setting that is out of range.
func (c Config) Validate() error {
	var errs []error
	d, err := minesweeper.ParseDifficulty(c.Difficulty, c.Custom)
	if err != nil {
		errs = append(errs, err)
	}
	if d.Level == minesweeper.LevelCustom && err == nil {
		v := c.Custom
		if v.Width < minesweeper.MinCustomWidth || v.Width > minesweeper.MaxCustomWidth {
			errs = append(errs, fmt.Errorf("custom width %d not in [%d, %d]", v.Width, minesweeper.MinCustomWidth, minesweeper.MaxCustomWidth))
		}
		if v.Height < minesweeper.MinCustomHeight || v.Height > minesweeper.MaxCustomHeight {
			errs = append(errs, fmt.Errorf("custom height %d not in [%d, %d]", v.Height, minesweeper.MinCustomHeight, minesweeper.MaxCustomHeight))
		}
		if v.Bombs < 0 {
			errs = append(errs, fmt.Errorf("custom bombs %d is negative", v.Bombs))
		}
	}
	if c.Scale < 1 || c.Scale > 6 {
		errs = append(errs, fmt.Errorf("scale %d not in [1, 6]", c.Scale))
	}
	if !slices.Contains(Themes, c.Theme) {
		errs = append(errs, fmt.Errorf("unknown theme %q", c.Theme))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	if !slices.Contains(i18n.Languages(), c.Language) {
		errs = append(errs, fmt.Errorf("unknown language %q", c.Language))
	}
	return errors.Join(errs...)
}

// Game is the difficulty to start with. Call it on a validated Config.
func (c Config) Game() minesweeper.Difficulty {
	d, err := minesweeper.ParseDifficulty(c.Difficulty, c.Custom)
	if err != nil {
		return minesweeper.Beginner
	}
	return d
}

// Level is the parsed log level, info when unset.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

// Dark reports whether the dark theme is selected.
func (c Config) Dark() bool { return c.Theme == "dark" }
