// pkg/render/engo/renderer.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/physics"
)

// trailSprites is the number of fading quads drawn per ray. The trail is
// resampled onto this many sprites each frame regardless of its length.
const trailSprites = 96

// holeVisual holds the drawable state for the black hole disc.
type holeVisual struct {
	basic  ecs.BasicEntity
	render common.RenderComponent
	space  common.SpaceComponent
	added  bool
}

// rayVisual holds the drawable state for one ray: a head dot and a fixed
// pool of trail quads whose alpha fades toward the tail.
type rayVisual struct {
	head      ecs.BasicEntity
	headRend  common.RenderComponent
	headSpace common.SpaceComponent

	trail      [trailSprites]ecs.BasicEntity
	trailRend  [trailSprites]common.RenderComponent
	trailSpace [trailSprites]common.SpaceComponent
}

// LensRenderer implements entity.Renderer using the Engo game engine.
type LensRenderer struct {
	world        *ecs.World
	renderSystem *common.RenderSystem

	hole   holeVisual
	rays   map[entity.ID]*rayVisual
	origin physics.Vector2D // hole position; ray coordinates are relative to it
}

// NewLensRenderer creates a new Engo-based renderer
func NewLensRenderer(world *ecs.World) *LensRenderer {
	return &LensRenderer{
		world: world,
		rays:  make(map[entity.ID]*rayVisual),
	}
}

// Initialize sets up the renderer's systems
func (r *LensRenderer) Initialize() {
	r.renderSystem = &common.RenderSystem{}
	r.world.AddSystem(r.renderSystem)
}

// RenderBlackHole implements entity.Renderer
func (r *LensRenderer) RenderBlackHole(hole *entity.BlackHole) {
	r.origin = hole.GetPosition()
	radius := float32(hole.HorizonVisualRadius())

	if !r.hole.added {
		r.hole.basic = ecs.NewBasic()
		r.hole.render = common.RenderComponent{
			Drawable: common.Circle{BorderWidth: 2, BorderColor: color.RGBA{255, 120, 0, 255}},
			Color:    color.RGBA{0, 0, 0, 255},
		}
		r.renderSystem.Add(&r.hole.basic, &r.hole.render, &r.hole.space)
		r.hole.added = true
	}

	pos := r.worldToScreen(hole.GetPosition())
	r.hole.space.Position = engo.Point{X: pos.X - radius, Y: pos.Y - radius}
	r.hole.space.Width = radius * 2
	r.hole.space.Height = radius * 2
}

// RenderRay implements entity.Renderer
func (r *LensRenderer) RenderRay(ray *entity.LightRay) {
	visual := r.getOrCreateRayVisual(ray.GetID())

	// Head dot, hidden once the ray is absorbed.
	headPos := r.worldToScreen(r.origin.Add(ray.GetPosition()))
	visual.headSpace.Position = engo.Point{X: headPos.X - 2, Y: headPos.Y - 2}
	if ray.Status() == entity.RayAbsorbed {
		visual.headRend.Hidden = true
	}

	// Resample the trail onto the sprite pool, fading toward the tail.
	points := ray.Trail().Points()
	for i := 0; i < trailSprites; i++ {
		rend := &visual.trailRend[i]
		if len(points) == 0 {
			rend.Hidden = true
			continue
		}
		idx := i * len(points) / trailSprites
		if idx >= len(points) {
			idx = len(points) - 1
		}
		alpha := uint8(40 + 215*i/trailSprites)
		pos := r.worldToScreen(r.origin.Add(points[idx]))
		visual.trailSpace[i].Position = engo.Point{X: pos.X - 1, Y: pos.Y - 1}
		rend.Hidden = false
		rend.Color = color.RGBA{255, 255, 255, alpha}
	}
}

// Clear implements entity.Renderer. Engo redraws every frame from the
// retained components, so there is nothing to wipe here.
func (r *LensRenderer) Clear() {}

// Present implements entity.Renderer. Presentation happens inside Engo's
// render system after all systems have updated.
func (r *LensRenderer) Present() {}

// getOrCreateRayVisual gets an existing ray visual or creates a new one
func (r *LensRenderer) getOrCreateRayVisual(id entity.ID) *rayVisual {
	if visual, exists := r.rays[id]; exists {
		return visual
	}

	visual := &rayVisual{}
	visual.head = ecs.NewBasic()
	visual.headRend = common.RenderComponent{
		Drawable: common.Circle{},
		Color:    color.RGBA{255, 255, 255, 255},
	}
	visual.headSpace = common.SpaceComponent{Width: 4, Height: 4}
	r.renderSystem.Add(&visual.head, &visual.headRend, &visual.headSpace)

	for i := 0; i < trailSprites; i++ {
		visual.trail[i] = ecs.NewBasic()
		visual.trailRend[i] = common.RenderComponent{
			Drawable: common.Rectangle{},
			Color:    color.RGBA{255, 255, 255, 0},
			Hidden:   true,
		}
		visual.trailSpace[i] = common.SpaceComponent{Width: 2, Height: 2}
		r.renderSystem.Add(&visual.trail[i], &visual.trailRend[i], &visual.trailSpace[i])
	}

	r.rays[id] = visual
	return visual
}

// worldToScreen converts simulation coordinates to screen coordinates. The
// simulation origin maps to the screen center.
func (r *LensRenderer) worldToScreen(worldPos physics.Vector2D) engo.Point {
	return engo.Point{
		X: float32(worldPos.X) + engo.GameWidth()/2,
		Y: float32(worldPos.Y) + engo.GameHeight()/2,
	}
}
