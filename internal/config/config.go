// Package config provides YAML-based tuning for the linker game: playfield
// bounds, entity sizes, speeds and timers.
package config

import (
	"errors"
	"fmt"
)

// LinkerConfig contains all tunable parameters of the simulation.
type LinkerConfig struct {
	Screen    ScreenConfig    `yaml:"screen"`
	TickRate  int             `yaml:"tick_rate"`
	Character CharacterConfig `yaml:"character"`
	Brick     SizeConfig      `yaml:"brick"`
	Pot       PotConfig       `yaml:"pot"`
	BrokenPot BrokenPotConfig `yaml:"broken_pot"`
	Boomerang BoomerangConfig `yaml:"boomerang"`
}

// ScreenConfig defines the playfield bounds in world pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// CharacterConfig defines the player character.
type CharacterConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Speed      int `yaml:"speed"`
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	AnimFrames int `yaml:"anim_frames"` // Sprite frames per facing
	AnimStep   int `yaml:"anim_step"`   // Ticks per sprite frame
}

// PotConfig defines pushable pots.
type PotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per tick once pushed
}

// BrokenPotConfig defines the rubble left by a broken pot.
type BrokenPotConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Life     int `yaml:"life"` // Ticks until the rubble disappears
	AnimStep int `yaml:"anim_step"`
}

// BoomerangConfig defines the thrown boomerang.
type BoomerangConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Speed      int `yaml:"speed"`
	AnimFrames int `yaml:"anim_frames"`
	AnimStep   int `yaml:"anim_step"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every size, speed and timer is usable.
func (c LinkerConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"screen.width", c.Screen.Width},
		{"screen.height", c.Screen.Height},
		{"tick_rate", c.TickRate},
		{"character.width", c.Character.Width},
		{"character.height", c.Character.Height},
		{"character.speed", c.Character.Speed},
		{"character.anim_frames", c.Character.AnimFrames},
		{"character.anim_step", c.Character.AnimStep},
		{"brick.width", c.Brick.Width},
		{"brick.height", c.Brick.Height},
		{"pot.width", c.Pot.Width},
		{"pot.height", c.Pot.Height},
		{"pot.speed", c.Pot.Speed},
		{"broken_pot.width", c.BrokenPot.Width},
		{"broken_pot.height", c.BrokenPot.Height},
		{"broken_pot.life", c.BrokenPot.Life},
		{"broken_pot.anim_step", c.BrokenPot.AnimStep},
		{"boomerang.width", c.Boomerang.Width},
		{"boomerang.height", c.Boomerang.Height},
		{"boomerang.speed", c.Boomerang.Speed},
		{"boomerang.anim_frames", c.Boomerang.AnimFrames},
		{"boomerang.anim_step", c.Boomerang.AnimStep},
	}

	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	if c.Character.Width > c.Screen.Width || c.Character.Height > c.Screen.Height {
		return fmt.Errorf("%w: character does not fit on a %dx%d screen", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	return nil
}
