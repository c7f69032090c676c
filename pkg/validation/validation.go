// Package validation provides input validation for simulation configuration.
// The integrator itself trusts its inputs; every malformed value must be
// rejected here, before a simulation is constructed.
package validation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is the sentinel all configuration validation
// failures wrap, so callers can classify them with errors.Is.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RequireFinite rejects NaN and infinite values.
func RequireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfiguration, name, v)
	}
	return nil
}

// RequirePositive rejects values that are not strictly greater than zero.
func RequirePositive(name string, v float64) error {
	if err := RequireFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfiguration, name, v)
	}
	return nil
}

// RequireNonNegative rejects values below zero.
func RequireNonNegative(name string, v float64) error {
	if err := RequireFinite(name, v); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidConfiguration, name, v)
	}
	return nil
}

// RequireNonZeroVector rejects vectors with zero length, which cannot be
// normalized into a direction.
func RequireNonZeroVector(name string, x, y float64) error {
	if err := RequireFinite(name+".x", x); err != nil {
		return err
	}
	if err := RequireFinite(name+".y", y); err != nil {
		return err
	}
	if x == 0 && y == 0 {
		return fmt.Errorf("%w: %s must have non-zero length", ErrInvalidConfiguration, name)
	}
	return nil
}
