// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/logging"
)

// NullRenderer is a simple implementation of entity.Renderer for headless
// runs: every call is logged at debug level and nothing is drawn.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements entity.Renderer.
func (d *NullRenderer) Clear() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Clear called")
}

// Present implements entity.Renderer.
func (d *NullRenderer) Present() {
	ctx := context.Background()
	d.logger.Debug(ctx, "Present called")
}

// RenderBlackHole implements entity.Renderer.
func (d *NullRenderer) RenderBlackHole(hole *entity.BlackHole) {
	ctx := context.Background()
	if hole == nil {
		d.logger.Debug(ctx, "RenderBlackHole called with nil hole")
		return
	}
	d.logger.Debug(ctx, "RenderBlackHole called",
		"hole_id", hole.GetID(),
		"mass_kg", hole.Mass(),
		"horizon_m", hole.SchwarzschildRadius(),
	)
}

// RenderRay implements entity.Renderer.
func (d *NullRenderer) RenderRay(ray *entity.LightRay) {
	ctx := context.Background()
	if ray == nil {
		d.logger.Debug(ctx, "RenderRay called with nil ray")
		return
	}
	d.logger.Debug(ctx, "RenderRay called",
		"ray_id", ray.GetID(),
		"status", ray.Status(),
		"trail_len", ray.Trail().Len(),
	)
}
