package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides holds values read from REBLHELL_* variables. Unset pointer
// fields stay nil and leave the config alone.
type EnvOverrides struct {
	Seed            *int64   `env:"REBLHELL_SEED"`
	EnemyCount      *int     `env:"REBLHELL_ENEMY_COUNT"`
	GameOverOnDeath *bool    `env:"REBLHELL_GAME_OVER_ON_DEATH"`
	DespawnDistance *float64 `env:"REBLHELL_DESPAWN_DISTANCE"`
	LogLevel        string   `env:"REBLHELL_LOG_LEVEL"`
}

// LoadEnv parses overrides from the process environment.
func LoadEnv() (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.Parse(&o); err != nil {
		return EnvOverrides{}, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// LoadEnvFrom parses overrides from the given variables.
func LoadEnvFrom(environ map[string]string) (EnvOverrides, error) {
	var o EnvOverrides
	if err := env.ParseWithOptions(&o, env.Options{Environment: environ}); err != nil {
		return EnvOverrides{}, fmt.Errorf("config: parse env: %w", err)
	}
	return o, nil
}

// Apply writes the set overrides into cfg.
func (o EnvOverrides) Apply(cfg *Config) {
	if o.EnemyCount != nil {
		cfg.Spawn.Count = *o.EnemyCount
	}
	if o.GameOverOnDeath != nil {
		cfg.Rules.GameOverOnDeath = *o.GameOverOnDeath
	}
	if o.DespawnDistance != nil {
		cfg.Rules.DespawnDistance = *o.DespawnDistance
	}
}
