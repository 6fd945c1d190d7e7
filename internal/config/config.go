// Package config provides YAML-based configuration loading, environment
// overrides and difficulty presets for the simulation.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable of the simulation and its front-end.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Attack     AttackConfig     `yaml:"attack"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Camera     CameraConfig     `yaml:"camera"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Rules      RulesConfig      `yaml:"rules"`
	Render     RenderConfig     `yaml:"render"`
	Input      InputConfig      `yaml:"input"`
}

// WindowConfig is the logical window in world units. The player spawns at
// its centre and the camera starts there.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's starting stats.
type PlayerConfig struct {
	Health float64 `yaml:"health"`
	Speed  float64 `yaml:"speed"` // world units per second
	Size   float64 `yaml:"size"`  // diameter
}

// EnemyConfig defines enemy stats. Speed is shared by all enemies.
type EnemyConfig struct {
	Health          float64 `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	Size            float64 `yaml:"size"`
	DamagePerSecond float64 `yaml:"damage_per_second"`
}

// SpawnConfig defines the initial enemy ring.
type SpawnConfig struct {
	Count   int     `yaml:"count"`
	Packing float64 `yaml:"packing"` // fraction of a diameter of arc per enemy
	Jitter  float64 `yaml:"jitter"`  // radius spread above the safe radius
}

// AttackConfig defines the player's attack emitter.
type AttackConfig struct {
	Period float64 `yaml:"period"` // seconds between shots
}

// ProjectileConfig defines the projectiles fired by the emitter.
type ProjectileConfig struct {
	Speed      float64 `yaml:"speed"`
	Damage     float64 `yaml:"damage"`
	Lifetime   float64 `yaml:"lifetime"`    // seconds
	HalfExtent float64 `yaml:"half_extent"` // box collider half size
}

// CameraConfig defines the camera follower.
type CameraConfig struct {
	Smoothing float64 `yaml:"smoothing"` // lerp factor applied every frame
}

// PhysicsConfig defines the spatial service.
type PhysicsConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// RulesConfig toggles behaviour that is off in the base game.
type RulesConfig struct {
	GameOverOnDeath bool    `yaml:"game_over_on_death"`
	DespawnDistance float64 `yaml:"despawn_distance"` // 0 disables
}

// RenderConfig maps world units to terminal cells.
type RenderConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// InputConfig defines how key repeats become held directions.
type InputConfig struct {
	HoldMillis int `yaml:"hold_ms"`
}

// Validate checks that the config can drive a simulation.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("window.width", c.Window.Width)
	positive("window.height", c.Window.Height)
	positive("player.health", c.Player.Health)
	positive("player.speed", c.Player.Speed)
	positive("player.size", c.Player.Size)
	positive("enemy.health", c.Enemy.Health)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.size", c.Enemy.Size)
	positive("spawn.packing", c.Spawn.Packing)
	positive("attack.period", c.Attack.Period)
	positive("projectile.lifetime", c.Projectile.Lifetime)
	positive("projectile.half_extent", c.Projectile.HalfExtent)
	positive("render.cell_width", c.Render.CellWidth)
	positive("render.cell_height", c.Render.CellHeight)

	if c.Spawn.Count < 0 {
		errs = append(errs, fmt.Errorf("spawn.count must not be negative, got %d", c.Spawn.Count))
	}
	if c.Spawn.Jitter < 0 {
		errs = append(errs, fmt.Errorf("spawn.jitter must not be negative, got %v", c.Spawn.Jitter))
	}
	if c.Camera.Smoothing < 0 || c.Camera.Smoothing > 1 {
		errs = append(errs, fmt.Errorf("camera.smoothing must be within [0, 1], got %v", c.Camera.Smoothing))
	}
	if c.Rules.DespawnDistance < 0 {
		errs = append(errs, fmt.Errorf("rules.despawn_distance must not be negative, got %v", c.Rules.DespawnDistance))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
