// pkg/config/templates.go
package config

import "math"

// ParallelFan generates count rays entering from x = startX, traveling in
// the +x direction, vertically centered on the black hole and spaced by
// spacing visual units. This is the classic lensing demo scene: rays with
// small impact parameters are captured, the rest are deflected.
func ParallelFan(count int, spacing, startX float64) []RayConfig {
	if count <= 0 {
		return nil
	}
	rays := make([]RayConfig, 0, count)
	offset := float64(count-1) / 2
	for i := 0; i < count; i++ {
		rays = append(rays, RayConfig{
			X:    startX,
			Y:    (float64(i) - offset) * spacing,
			DirX: 1,
			DirY: 0,
		})
	}
	return rays
}

// RadialBurst generates count rays on a circle of the given visual radius
// around the black hole, each traveling tangentially (counter-clockwise).
// Useful for probing the photon-sphere region.
func RadialBurst(count int, radius float64) []RayConfig {
	if count <= 0 {
		return nil
	}
	rays := make([]RayConfig, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		sin, cos := math.Sincos(angle)
		rays = append(rays, RayConfig{
			X:    radius * cos,
			Y:    radius * sin,
			DirX: -sin,
			DirY: cos,
		})
	}
	return rays
}
