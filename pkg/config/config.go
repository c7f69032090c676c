// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/opd-ai/go-lensing/pkg/validation"
)

// SimulationConfig contains the full configuration for a lensing run
type SimulationConfig struct {
	ScreenWidth   float64         `json:"screenWidth"`
	ScreenHeight  float64         `json:"screenHeight"`
	PhysicsConfig PhysicsConfig   `json:"physics"`
	BlackHole     BlackHoleConfig `json:"blackHole"`
	Rays          []RayConfig     `json:"rays"`
	Trail         TrailConfig     `json:"trail"`
}

// PhysicsConfig contains the physical constants and scale factors. They are
// configuration rather than package constants so tests can run the
// integrator with varied values.
type PhysicsConfig struct {
	SpeedOfLight          float64 `json:"speedOfLight"`          // m/s
	GravitationalConstant float64 `json:"gravitationalConstant"` // m^3 kg^-1 s^-2
	VisScale              float64 `json:"visScale"`              // visual units per meter
	TimeMultiplier        float64 `json:"timeMultiplier"`        // simulated seconds per real second
}

// BlackHoleConfig contains configuration for the gravitating body. The
// position is in visual space relative to the screen center.
type BlackHoleConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Mass float64 `json:"mass"` // kg
}

// RayConfig contains the starting state for one light ray, in visual space
// relative to the black hole.
type RayConfig struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	DirX float64 `json:"dirX"`
	DirY float64 `json:"dirY"`
}

// TrailConfig selects the path-history retention policy.
// Policy is one of "unbounded", "ring" or "decimated".
type TrailConfig struct {
	Policy   string `json:"policy"`
	Capacity int    `json:"capacity,omitempty"`
	Stride   int    `json:"stride,omitempty"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimulationConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimulationConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration before a simulation is built. All
// failures wrap validation.ErrInvalidConfiguration.
func (c *SimulationConfig) Validate() error {
	if err := validation.RequirePositive("screenWidth", c.ScreenWidth); err != nil {
		return err
	}
	if err := validation.RequirePositive("screenHeight", c.ScreenHeight); err != nil {
		return err
	}
	if err := validation.RequirePositive("physics.speedOfLight", c.PhysicsConfig.SpeedOfLight); err != nil {
		return err
	}
	if err := validation.RequirePositive("physics.gravitationalConstant", c.PhysicsConfig.GravitationalConstant); err != nil {
		return err
	}
	if err := validation.RequirePositive("physics.visScale", c.PhysicsConfig.VisScale); err != nil {
		return err
	}
	if err := validation.RequirePositive("physics.timeMultiplier", c.PhysicsConfig.TimeMultiplier); err != nil {
		return err
	}
	if err := validation.RequireFinite("blackHole.x", c.BlackHole.X); err != nil {
		return err
	}
	if err := validation.RequireFinite("blackHole.y", c.BlackHole.Y); err != nil {
		return err
	}
	if err := validation.RequirePositive("blackHole.mass", c.BlackHole.Mass); err != nil {
		return err
	}
	for i, ray := range c.Rays {
		name := fmt.Sprintf("rays[%d]", i)
		if err := validation.RequireFinite(name+".x", ray.X); err != nil {
			return err
		}
		if err := validation.RequireFinite(name+".y", ray.Y); err != nil {
			return err
		}
		if err := validation.RequireNonZeroVector(name+".dir", ray.DirX, ray.DirY); err != nil {
			return err
		}
	}
	switch c.Trail.Policy {
	case "", "unbounded", "ring", "decimated":
	default:
		return fmt.Errorf("%w: trail.policy must be unbounded, ring or decimated, got %q",
			validation.ErrInvalidConfiguration, c.Trail.Policy)
	}
	return nil
}

// DefaultConfig returns the default scene: a stellar-mass black hole at the
// screen center and a fan of parallel rays entering from the left across a
// span of impact parameters.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		ScreenWidth:  1600,
		ScreenHeight: 900,
		PhysicsConfig: PhysicsConfig{
			SpeedOfLight:          299792458,
			GravitationalConstant: 6.67430e-11,
			VisScale:              6e-9,
			TimeMultiplier:        100,
		},
		BlackHole: BlackHoleConfig{
			X:    0,
			Y:    0,
			Mass: 8.54e36,
		},
		Rays: ParallelFan(17, 50, -760),
		Trail: TrailConfig{
			Policy:   "ring",
			Capacity: 2048,
		},
	}
}
