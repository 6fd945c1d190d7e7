package config

import (
	_ "embed"
)

//go:embed defaults/reblhell.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/reblhell.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
		},
		Player: PlayerConfig{
			Health: 10,
			Speed:  500,
			Size:   64,
		},
		Enemy: EnemyConfig{
			Health:          2,
			Speed:           200,
			Size:            64,
			DamagePerSecond: 1,
		},
		Spawn: SpawnConfig{
			Count:   10,
			Packing: 0.8,
			Jitter:  100,
		},
		Attack: AttackConfig{
			Period: 1.2,
		},
		Projectile: ProjectileConfig{
			Speed:      4.5,
			Damage:     2,
			Lifetime:   5.0,
			HalfExtent: 0.2,
		},
		Camera: CameraConfig{
			Smoothing: 0.1,
		},
		Physics: PhysicsConfig{
			CellSize: 128,
		},
		Rules: RulesConfig{
			GameOverOnDeath: false,
			DespawnDistance: 0,
		},
		Render: RenderConfig{
			CellWidth:  16,
			CellHeight: 32,
		},
		Input: InputConfig{
			HoldMillis: 150,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
