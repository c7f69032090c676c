// pkg/physics/geodesic.go
package physics

// RayState tracks photon kinematics around a black hole. Position and
// Direction live in visual space with the black hole at the origin; the
// polar fields are in physical units and are re-derived from Position at
// the start of every step, never integrated independently of it.
type RayState struct {
	Position    Vector2D // visual units, relative to the black hole
	Direction   Vector2D // unit heading in visual space
	Radius      float64  // meters
	Angle       float64  // radians
	RadialRate  float64  // m/s
	AngularRate float64  // rad/s
}

// StepOutcome reports what a geodesic step did to a ray.
type StepOutcome int

const (
	// StepAdvanced means the ray moved and its state was updated.
	StepAdvanced StepOutcome = iota
	// StepDegenerate means the ray sat at the coordinate origin and the
	// step was skipped to avoid dividing by zero.
	StepDegenerate
	// StepBelowHorizon means the ray's radial distance was inside the
	// event horizon and the step was skipped.
	StepBelowHorizon
)

// UpdateGeodesic advances a photon state by dt seconds of coordinate time
// along a Schwarzschild light geodesic around a hole with the given horizon
// radius (meters). The scheme is semi-implicit Euler: rates are updated from
// the accelerations first, then radius and angle are advanced using the
// already-updated rates. Angular momentum per unit energy is recomputed from
// the instantaneous kinematics each step rather than carried as a conserved
// quantity, which trades long-horizon accuracy for frame-rate independence.
func UpdateGeodesic(state *RayState, dt, horizonRadius float64, consts Constants) StepOutcome {
	// The polar form is always re-derived from the Cartesian position.
	radius := consts.ToPhysical(state.Position.Length())
	angle := state.Position.Angle()

	if radius <= 0 {
		return StepDegenerate
	}
	if radius < horizonRadius {
		return StepBelowHorizon
	}

	// Project the physical velocity (direction scaled to light speed) onto
	// the radial/tangential basis at the current angle.
	radial, tangential := RadialBasis(angle)
	velocity := state.Direction.Scale(consts.C)
	radialRate := velocity.Dot(radial)
	angularRate := velocity.Dot(tangential) / radius

	// Instantaneous angular momentum per unit energy.
	l := radius * radius * angularRate / consts.C

	radialAccel := schwarzschildRadialAccel(radius, l, horizonRadius, consts.C)
	angularAccel := (-2 / radius) * radialRate * angularRate

	radialRate += radialAccel * dt
	angularRate += angularAccel * dt
	radius += radialRate * dt
	angle += angularRate * dt

	state.Radius = radius
	state.Angle = angle
	state.RadialRate = radialRate
	state.AngularRate = angularRate
	state.Position = FromAngle(angle, consts.ToVisual(radius))

	// Recompose the heading from the updated rates at the new angle. Speed
	// is implicit: only the heading matters downstream.
	newRadial, newTangential := RadialBasis(angle)
	heading := newRadial.Scale(radialRate).Add(newTangential.Scale(radius * angularRate))
	if heading.LengthSquared() > 0 {
		state.Direction = heading.Normalize()
	}

	return StepAdvanced
}

// schwarzschildRadialAccel evaluates the radial acceleration for a photon in
// the weak-field light-bending form: the Newtonian pull, the centrifugal
// term, and the relativistic correction responsible for the bending.
func schwarzschildRadialAccel(radius, l, rs, c float64) float64 {
	c2 := c * c
	r2 := radius * radius
	r3 := r2 * radius
	r4 := r3 * radius
	return -(rs*c2)/(2*r2) + (l*l*c2)/r3 - (3*rs*l*l*c2)/(2*r4)
}
