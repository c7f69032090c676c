// pkg/config/env_config_test.go
package config

import (
	"errors"
	"testing"
	"time"

	"github.com/opd-ai/go-lensing/pkg/validation"
)

func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	for _, name := range []string{EnvMaxMemoryMB, EnvMaxTrailPoints, EnvResourceCheckInterval, EnvTimeMultiplier} {
		t.Setenv(name, "")
	}

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.MaxMemoryMB != 500 {
		t.Errorf("MaxMemoryMB = %d, want 500", cfg.MaxMemoryMB)
	}
	if cfg.MaxTrailPoints != 1<<20 {
		t.Errorf("MaxTrailPoints = %d, want %d", cfg.MaxTrailPoints, 1<<20)
	}
	if cfg.ResourceCheckInterval != 10*time.Second {
		t.Errorf("ResourceCheckInterval = %v, want 10s", cfg.ResourceCheckInterval)
	}
	if cfg.TimeMultiplier != 0 {
		t.Errorf("TimeMultiplier = %v, want 0 (unset)", cfg.TimeMultiplier)
	}
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvMaxMemoryMB, "750")
	t.Setenv(EnvMaxTrailPoints, "4096")
	t.Setenv(EnvResourceCheckInterval, "2s")
	t.Setenv(EnvTimeMultiplier, "250")

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadConfigFromEnv() error = %v", err)
	}

	if cfg.MaxMemoryMB != 750 {
		t.Errorf("MaxMemoryMB = %d, want 750", cfg.MaxMemoryMB)
	}
	if cfg.MaxTrailPoints != 4096 {
		t.Errorf("MaxTrailPoints = %d, want 4096", cfg.MaxTrailPoints)
	}
	if cfg.ResourceCheckInterval != 2*time.Second {
		t.Errorf("ResourceCheckInterval = %v, want 2s", cfg.ResourceCheckInterval)
	}
	if cfg.TimeMultiplier != 250 {
		t.Errorf("TimeMultiplier = %v, want 250", cfg.TimeMultiplier)
	}
}

func TestLoadConfigFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"malformed_memory", EnvMaxMemoryMB, "lots"},
		{"negative_memory", EnvMaxMemoryMB, "-10"},
		{"malformed_interval", EnvResourceCheckInterval, "soon"},
		{"negative_trail_points", EnvMaxTrailPoints, "-1"},
		{"negative_time_multiplier", EnvTimeMultiplier, "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)

			_, err := LoadConfigFromEnv()
			if err == nil {
				t.Fatalf("LoadConfigFromEnv() accepted %s=%q", tt.env, tt.value)
			}
			if !errors.Is(err, validation.ErrInvalidConfiguration) {
				t.Errorf("error %v does not wrap ErrInvalidConfiguration", err)
			}
		})
	}
}
