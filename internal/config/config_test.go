package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	got := embeddedConfig()
	want := DefaultConfig()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("embedded defaults drifted from DefaultConfig:\n got %+v\nwant %+v", got, want)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "spawn:\n  count: 3\nrules:\n  game_over_on_death: true\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spawn.Count != 3 {
		t.Errorf("spawn.count = %d, want 3", cfg.Spawn.Count)
	}
	if !cfg.Rules.GameOverOnDeath {
		t.Error("rules.game_over_on_death not applied")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Player.Health != 10 || cfg.Attack.Period != 1.2 {
		t.Errorf("defaults lost: player.health=%v attack.period=%v", cfg.Player.Health, cfg.Attack.Period)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "nope.yaml")},
		{"malformed", bad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Spawn.Count != 10 {
		t.Fatalf("spawn.count = %d, want embedded 10", cfg.Spawn.Count)
	}

	local := filepath.Join(work, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, FileName), []byte("spawn:\n  count: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.Count != 4 {
		t.Fatalf("spawn.count = %d, want local 4", cfg.Spawn.Count)
	}

	user := filepath.Join(home, ".reblhell", "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, FileName), []byte("spawn:\n  count: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Spawn.Count != 7 {
		t.Fatalf("spawn.count = %d, want user 7", cfg.Spawn.Count)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero period", func(c *Config) { c.Attack.Period = 0 }, "attack.period"},
		{"negative count", func(c *Config) { c.Spawn.Count = -1 }, "spawn.count"},
		{"zero player speed", func(c *Config) { c.Player.Speed = 0 }, "player.speed"},
		{"smoothing above one", func(c *Config) { c.Camera.Smoothing = 1.5 }, "camera.smoothing"},
		{"negative despawn", func(c *Config) { c.Rules.DespawnDistance = -1 }, "rules.despawn_distance"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name %s", err, tt.field)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Spawn.Count = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("zero enemies should be valid: %v", err)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Spawn.Count = 12
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("Parse(Marshal(cfg)) = %+v, want %+v", got, cfg)
	}
}
