package config

import "testing"

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{" Hard ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"fixed", DifficultyFixed, false},
		{"insane", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePreset(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePreset(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePreset(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		wantCount  int
		wantHealth float64
		wantDPS    float64
	}{
		{DifficultyEasy, 6, 1, 0.5},
		{DifficultyNormal, 10, 2, 1},
		{DifficultyHard, 16, 4, 2},
		{DifficultyFixed, 10, 2, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Spawn.Count != tt.wantCount {
				t.Errorf("count = %d, want %d", cfg.Spawn.Count, tt.wantCount)
			}
			if cfg.Enemy.Health != tt.wantHealth {
				t.Errorf("health = %v, want %v", cfg.Enemy.Health, tt.wantHealth)
			}
			if cfg.Enemy.DamagePerSecond != tt.wantDPS {
				t.Errorf("dps = %v, want %v", cfg.Enemy.DamagePerSecond, tt.wantDPS)
			}
		})
	}
}
