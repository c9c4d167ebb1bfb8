package config

import (
	_ "embed"
)

//go:embed defaults/linker.yaml
var defaultLinkerYAML []byte

// DefaultLinkerConfig returns the default linker configuration.
func DefaultLinkerConfig() LinkerConfig {
	return LinkerConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
		},
		TickRate: 40,
		Character: CharacterConfig{
			Width:      50,
			Height:     50,
			Speed:      5,
			StartX:     100,
			StartY:     100,
			AnimFrames: 5,
			AnimStep:   2,
		},
		Brick: SizeConfig{
			Width:  50,
			Height: 50,
		},
		Pot: PotConfig{
			Width:  50,
			Height: 50,
			Speed:  10,
		},
		BrokenPot: BrokenPotConfig{
			Width:    50,
			Height:   50,
			Life:     20,
			AnimStep: 3,
		},
		Boomerang: BoomerangConfig{
			Width:      20,
			Height:     20,
			Speed:      10,
			AnimFrames: 4,
			AnimStep:   2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultLinkerYAML
}
