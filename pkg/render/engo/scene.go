// pkg/render/engo/scene.go
package engo

import (
	"image/color"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"

	"github.com/opd-ai/go-lensing/pkg/engine"
)

// LensScene is the single Engo scene: it steps the simulation from the
// frame delta and pushes the result through the Engo renderer.
type LensScene struct {
	world    *ecs.World
	sim      *engine.Simulation
	renderer *LensRenderer
}

// NewLensScene creates a scene around an already-constructed simulation.
func NewLensScene(sim *engine.Simulation) *LensScene {
	return &LensScene{sim: sim}
}

// Type returns the scene type (required by Engo)
func (scene *LensScene) Type() string {
	return "LensScene"
}

// Preload is called before the scene starts (required by Engo)
func (scene *LensScene) Preload() {
	// Shape drawables only, nothing to load
}

// Setup is called when the scene starts (required by Engo)
func (scene *LensScene) Setup(u engo.Updater) {
	scene.world = &ecs.World{}
	if w, ok := u.(*ecs.World); ok {
		scene.world = w
	}

	common.SetBackground(color.Black)

	scene.renderer = NewLensRenderer(scene.world)
	scene.renderer.Initialize()

	scene.world.AddSystem(&simulationSystem{
		sim:      scene.sim,
		renderer: scene.renderer,
	})

	scene.sim.Start()
}

// simulationSystem drives the physics from Engo's frame loop. dt is the
// elapsed real time of the frame; the simulation applies its own time
// multiplier.
type simulationSystem struct {
	sim      *engine.Simulation
	renderer *LensRenderer
}

// Update implements ecs.System
func (s *simulationSystem) Update(dt float32) {
	s.sim.Step(float64(dt))
	s.sim.Render(s.renderer)
}

// Remove implements ecs.System
func (s *simulationSystem) Remove(basic ecs.BasicEntity) {}
