package minesweeper

import (
	"fmt"
	"strings"
)

// Values are the dimensions and bomb count of a board.
type Values struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Bombs  int `yaml:"bombs"`
}

// Level is a named difficulty preset, or LevelCustom.
type Level int

const (
	LevelBeginner Level = iota
	LevelIntermediate
	LevelExpert
	LevelCustom
)

var presets = map[Level]Values{
	LevelBeginner:     {Width: 9, Height: 9, Bombs: 10},
	LevelIntermediate: {Width: 16, Height: 16, Bombs: 40},
	LevelExpert:       {Width: 30, Height: 16, Bombs: 99},
}

var levelNames = map[Level]string{
	LevelBeginner:     "beginner",
	LevelIntermediate: "intermediate",
	LevelExpert:       "expert",
	LevelCustom:       "custom",
}

// Difficulty is a construction parameter for a new game. The engine does not
// keep it.
type Difficulty struct {
	Level  Level
	Custom Values
}

var (
	Beginner     = Difficulty{Level: LevelBeginner}
	Intermediate = Difficulty{Level: LevelIntermediate}
	Expert       = Difficulty{Level: LevelExpert}
)

// Custom returns a custom difficulty with the given values.
func Custom(v Values) Difficulty {
	return Difficulty{Level: LevelCustom, Custom: v}
}

// Values returns the board parameters of d.
func (d Difficulty) Values() Values {
	if v, ok := presets[d.Level]; ok {
		return v
	}
	return d.Custom
}

// Name is the lower-case name of d's level.
func (d Difficulty) Name() string {
	if n, ok := levelNames[d.Level]; ok {
		return n
	}
	return "unknown"
}

// ParseDifficulty resolves a level name. custom is used for "custom".
func ParseDifficulty(name string, custom Values) (Difficulty, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for level, n := range levelNames {
		if n != name {
			continue
		}
		if level == LevelCustom {
			return Custom(custom), nil
		}
		return Difficulty{Level: level}, nil
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty %q", name)
}

// NewGame builds a fresh engine for d.
func NewGame(d Difficulty, opts ...Option) *Engine {
	v := d.Values()
	return New(v.Width, v.Height, v.Bombs, opts...)
}

// Limits of a custom board.
const (
	MinCustomWidth  = 5
	MaxCustomWidth  = 60
	MinCustomHeight = 5
	MaxCustomHeight = 40
)

// MaxBombs is the most bombs a width x height board can hold around a
// safe zone.
func MaxBombs(width, height int) int {
	return max(width*height-safeZone, 0)
}

// Clamp brings v inside the custom board limits.
func (v Values) Clamp() Values {
	v.Width = min(max(v.Width, MinCustomWidth), MaxCustomWidth)
	v.Height = min(max(v.Height, MinCustomHeight), MaxCustomHeight)
	v.Bombs = min(max(v.Bombs, 0), MaxBombs(v.Width, v.Height))
	return v
}
