// pkg/entity/ray.go
package entity

import (
	"github.com/opd-ai/go-lensing/pkg/physics"
)

// RayStatus is the lifecycle state of a light ray. The transition from
// RayActive to RayAbsorbed happens at most once, on the first step that
// finds the ray inside the event horizon, and is never reversed.
type RayStatus int

const (
	RayActive RayStatus = iota
	RayAbsorbed
)

// LightRay is a photon traveling near the black hole. Position and
// direction live in visual space with the hole at the origin; the polar
// state is re-derived from the Cartesian position on every step.
type LightRay struct {
	id     ID
	state  physics.RayState
	status RayStatus
	trail  *Trail
	consts physics.Constants
}

// NewLightRay creates a ray at the given visual-space position (relative to
// the black hole) traveling along the given direction. Direction is
// normalized; the polar fields are derived from the starting position.
func NewLightRay(position, direction physics.Vector2D, trail TrailOptions, consts physics.Constants) *LightRay {
	return &LightRay{
		id: GenerateID(),
		state: physics.RayState{
			Position:  position,
			Direction: direction.Normalize(),
			Radius:    consts.ToPhysical(position.Length()),
			Angle:     position.Angle(),
		},
		trail:  NewTrail(trail),
		consts: consts,
	}
}

// Advance moves the ray along its geodesic by dt simulated seconds around a
// hole with the given horizon radius in meters. An absorbed ray is inert:
// nothing changes, nothing is appended. A ray found inside the horizon
// transitions to RayAbsorbed and stays there. A ray sitting exactly at the
// coordinate origin is skipped for the step without changing status.
func (r *LightRay) Advance(dt, horizonRadius float64) {
	if r.status == RayAbsorbed {
		return
	}
	switch physics.UpdateGeodesic(&r.state, dt, horizonRadius, r.consts) {
	case physics.StepAdvanced:
		r.trail.Append(r.state.Position)
	case physics.StepBelowHorizon:
		r.status = RayAbsorbed
	}
}

// GetID returns the entity's unique identifier
func (r *LightRay) GetID() ID {
	return r.id
}

// GetPosition returns the ray's current visual-space position relative to
// the black hole
func (r *LightRay) GetPosition() physics.Vector2D {
	return r.state.Position
}

// Direction returns the ray's current unit heading
func (r *LightRay) Direction() physics.Vector2D {
	return r.state.Direction
}

// State returns a copy of the ray's kinematic state
func (r *LightRay) State() physics.RayState {
	return r.state
}

// Status returns whether the ray is still propagating
func (r *LightRay) Status() RayStatus {
	return r.status
}

// Trail returns the ray's retained path history
func (r *LightRay) Trail() *Trail {
	return r.trail
}

// Render implements Entity
func (r *LightRay) Render(renderer Renderer) {
	renderer.RenderRay(r)
}
