// pkg/entity/blackhole.go
package entity

import (
	"github.com/opd-ai/go-lensing/pkg/physics"
)

// BlackHole represents the single gravitating body in the simulation. Its
// Schwarzschild radius is derived once at construction and never changes;
// the position is the fixed visual-space location the hole is drawn at.
type BlackHole struct {
	id       ID
	position physics.Vector2D
	mass     float64
	horizon  float64 // Schwarzschild radius, meters
	consts   physics.Constants
}

// NewBlackHole creates a black hole at the given visual-space position with
// the given mass in kilograms. Mass is trusted positive here; configuration
// validation happens before construction.
func NewBlackHole(position physics.Vector2D, mass float64, consts physics.Constants) *BlackHole {
	return &BlackHole{
		id:       GenerateID(),
		position: position,
		mass:     mass,
		horizon:  consts.SchwarzschildRadius(mass),
		consts:   consts,
	}
}

// GetID returns the entity's unique identifier
func (b *BlackHole) GetID() ID {
	return b.id
}

// GetPosition returns the hole's fixed visual-space position
func (b *BlackHole) GetPosition() physics.Vector2D {
	return b.position
}

// Mass returns the hole's mass in kilograms
func (b *BlackHole) Mass() float64 {
	return b.mass
}

// SchwarzschildRadius returns the event horizon radius in meters
func (b *BlackHole) SchwarzschildRadius() float64 {
	return b.horizon
}

// HorizonVisualRadius returns the event horizon radius in visual units,
// for drawing the hole's disc.
func (b *BlackHole) HorizonVisualRadius() float64 {
	return b.consts.ToVisual(b.horizon)
}

// Render implements Entity
func (b *BlackHole) Render(r Renderer) {
	r.RenderBlackHole(b)
}
