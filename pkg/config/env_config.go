// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/opd-ai/go-lensing/pkg/validation"
)

// EnvironmentConfig contains deployment-level settings read from the
// environment rather than the scene file: resource limits for the
// monitoring loop and overrides for the simulation pacing.
type EnvironmentConfig struct {
	MaxMemoryMB           int64
	MaxTrailPoints        int64
	ResourceCheckInterval time.Duration
	TimeMultiplier        float64 // 0 means "use the scene value"
}

// Environment variable names.
const (
	EnvMaxMemoryMB           = "LENSING_MAX_MEMORY_MB"
	EnvMaxTrailPoints        = "LENSING_MAX_TRAIL_POINTS"
	EnvResourceCheckInterval = "LENSING_RESOURCE_CHECK_INTERVAL"
	EnvTimeMultiplier        = "LENSING_TIME_MULTIPLIER"
)

// LoadConfigFromEnv reads the environment configuration, applying safe
// defaults for anything unset.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		MaxMemoryMB:           500,
		MaxTrailPoints:        1 << 20,
		ResourceCheckInterval: 10 * time.Second,
	}

	var err error
	if cfg.MaxMemoryMB, err = getEnvInt64(EnvMaxMemoryMB, cfg.MaxMemoryMB); err != nil {
		return nil, err
	}
	if cfg.MaxTrailPoints, err = getEnvInt64(EnvMaxTrailPoints, cfg.MaxTrailPoints); err != nil {
		return nil, err
	}
	if cfg.ResourceCheckInterval, err = getEnvDuration(EnvResourceCheckInterval, cfg.ResourceCheckInterval); err != nil {
		return nil, err
	}
	if cfg.TimeMultiplier, err = getEnvFloat(EnvTimeMultiplier, 0); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the environment configuration bounds.
func (c *EnvironmentConfig) Validate() error {
	if c.MaxMemoryMB <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d",
			validation.ErrInvalidConfiguration, EnvMaxMemoryMB, c.MaxMemoryMB)
	}
	if c.MaxTrailPoints <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d",
			validation.ErrInvalidConfiguration, EnvMaxTrailPoints, c.MaxTrailPoints)
	}
	if c.ResourceCheckInterval <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v",
			validation.ErrInvalidConfiguration, EnvResourceCheckInterval, c.ResourceCheckInterval)
	}
	if c.TimeMultiplier < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v",
			validation.ErrInvalidConfiguration, EnvTimeMultiplier, c.TimeMultiplier)
	}
	return nil
}

func getEnvInt64(name string, fallback int64) (int64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", validation.ErrInvalidConfiguration, name, err)
	}
	return v, nil
}

func getEnvFloat(name string, fallback float64) (float64, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", validation.ErrInvalidConfiguration, name, err)
	}
	return v, nil
}

func getEnvDuration(name string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", validation.ErrInvalidConfiguration, name, err)
	}
	return v, nil
}
