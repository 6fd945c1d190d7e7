package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetScale holds the multipliers applied by a preset.
type presetScale struct {
	count  float64
	health float64
	damage float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {count: 0.6, health: 0.5, damage: 0.5},
	DifficultyNormal: {count: 1, health: 1, damage: 1},
	DifficultyHard:   {count: 1.6, health: 2, damage: 2},
}

// ParsePreset parses a preset name. An empty name means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// IsFixedPreset returns true if the preset leaves the file values untouched.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyPreset scales enemy count, health and damage.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	cfg.Spawn.Count = int(math.Round(float64(cfg.Spawn.Count) * scale.count))
	cfg.Enemy.Health *= scale.health
	cfg.Enemy.DamagePerSecond *= scale.damage
}
