// pkg/physics/constants.go
package physics

// Constants bundles the physical constants and scale factors a simulation
// runs with. They are plain values handed to whoever needs them, so tests
// can run with varied constants without touching package state.
type Constants struct {
	C              float64 // speed of light, m/s
	G              float64 // gravitational constant, m^3 kg^-1 s^-2
	VisScale       float64 // visual units per meter
	TimeMultiplier float64 // simulated seconds per real second
}

// DefaultConstants returns CODATA values for c and G and the scale factors
// the default scene is tuned for.
func DefaultConstants() Constants {
	return Constants{
		C:              299792458,
		G:              6.67430e-11,
		VisScale:       6e-9,
		TimeMultiplier: 100,
	}
}

// SchwarzschildRadius returns the event horizon radius 2Gm/c^2 in meters
// for a body of the given mass.
func (c Constants) SchwarzschildRadius(mass float64) float64 {
	return 2 * c.G * mass / (c.C * c.C)
}

// ToVisual converts a physical length in meters to visual units.
func (c Constants) ToVisual(meters float64) float64 {
	return meters * c.VisScale
}

// ToPhysical converts a visual-space length back to meters.
func (c Constants) ToPhysical(visual float64) float64 {
	return visual / c.VisScale
}
