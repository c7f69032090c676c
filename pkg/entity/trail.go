// pkg/entity/trail.go
package entity

import (
	"github.com/opd-ai/go-lensing/pkg/physics"
)

// TrailPolicy selects how much path history a ray retains for trail
// rendering. The trail only exists to draw a fading tail, so history can be
// capped without affecting the integration.
type TrailPolicy int

const (
	// TrailUnbounded keeps every point for the lifetime of the ray.
	// Memory grows linearly with run duration.
	TrailUnbounded TrailPolicy = iota
	// TrailRing keeps only the most recent Capacity points.
	TrailRing
	// TrailDecimated keeps every Stride-th point, unbounded.
	TrailDecimated
)

// TrailOptions configures a ray's path retention.
type TrailOptions struct {
	Policy   TrailPolicy
	Capacity int // TrailRing: points retained
	Stride   int // TrailDecimated: sampling interval
}

// DefaultTrailOptions retains the most recent 2048 points, enough for a
// full-screen tail at 60 FPS without unbounded growth.
func DefaultTrailOptions() TrailOptions {
	return TrailOptions{Policy: TrailRing, Capacity: 2048}
}

// Trail is an append-only sequence of past ray positions, oldest first,
// subject to the retention policy.
type Trail struct {
	opts     TrailOptions
	points   []physics.Vector2D
	start    int // ring mode: index of the oldest point
	appended uint64
}

// NewTrail creates an empty trail with the given retention options.
// Non-positive Capacity or Stride fall back to defaults.
func NewTrail(opts TrailOptions) *Trail {
	if opts.Policy == TrailRing && opts.Capacity <= 0 {
		opts.Capacity = DefaultTrailOptions().Capacity
	}
	if opts.Policy == TrailDecimated && opts.Stride <= 0 {
		opts.Stride = 1
	}
	return &Trail{opts: opts}
}

// Append records a position at the end of the trail.
func (t *Trail) Append(p physics.Vector2D) {
	t.appended++
	switch t.opts.Policy {
	case TrailRing:
		if len(t.points) < t.opts.Capacity {
			t.points = append(t.points, p)
			return
		}
		t.points[t.start] = p
		t.start = (t.start + 1) % t.opts.Capacity
	case TrailDecimated:
		if (t.appended-1)%uint64(t.opts.Stride) == 0 {
			t.points = append(t.points, p)
		}
	default:
		t.points = append(t.points, p)
	}
}

// Len returns the number of retained points.
func (t *Trail) Len() int {
	return len(t.points)
}

// Appended returns the total number of points ever appended, before any
// retention-policy drops.
func (t *Trail) Appended() uint64 {
	return t.appended
}

// Points copies the retained positions into a new slice, oldest first.
func (t *Trail) Points() []physics.Vector2D {
	out := make([]physics.Vector2D, len(t.points))
	if t.start == 0 {
		copy(out, t.points)
		return out
	}
	n := copy(out, t.points[t.start:])
	copy(out[n:], t.points[:t.start])
	return out
}
