// pkg/engine/simulation.go
package engine

import (
	"sync"
	"time"

	"github.com/opd-ai/go-lensing/pkg/config"
	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/event"
	"github.com/opd-ai/go-lensing/pkg/physics"
	"github.com/opd-ai/go-lensing/pkg/resource"
)

// SimulationStatus tracks the lifecycle of a run
type SimulationStatus int

const (
	StatusIdle SimulationStatus = iota
	StatusRunning
	StatusStopped
)

// Simulation owns the black hole and the rays and advances them once per
// rendered frame. Rays never interact with each other, only with the hole,
// so they are stepped independently. Renders must happen strictly between
// completed steps; EntityLock enforces that for callers that poll from
// another goroutine.
type Simulation struct {
	Config     *config.SimulationConfig
	Constants  physics.Constants
	BlackHole  *entity.BlackHole
	Rays       []*entity.LightRay
	Center     physics.Vector2D // screen-space origin for rendering
	EntityLock sync.RWMutex
	EventBus   *event.Bus

	Status      SimulationStatus
	CurrentTick uint64
	ElapsedTime float64 // simulated seconds
	StartTime   time.Time

	// Resource management
	ResourceManager *resource.Manager
}

// NewSimulation validates the configuration and builds the black hole and
// the initial ray set. Ray positions in the config are relative to the
// black hole, which sits at the configured offset from the screen center.
func NewSimulation(cfg *config.SimulationConfig) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	consts := physics.Constants{
		C:              cfg.PhysicsConfig.SpeedOfLight,
		G:              cfg.PhysicsConfig.GravitationalConstant,
		VisScale:       cfg.PhysicsConfig.VisScale,
		TimeMultiplier: cfg.PhysicsConfig.TimeMultiplier,
	}

	sim := &Simulation{
		Config:    cfg,
		Constants: consts,
		Center: physics.Vector2D{
			X: cfg.ScreenWidth / 2,
			Y: cfg.ScreenHeight / 2,
		},
		EventBus: event.NewEventBus(),
	}

	sim.BlackHole = entity.NewBlackHole(
		physics.Vector2D{X: cfg.BlackHole.X, Y: cfg.BlackHole.Y},
		cfg.BlackHole.Mass,
		consts,
	)

	trailOpts := trailOptions(cfg.Trail)
	for _, rayCfg := range cfg.Rays {
		ray := entity.NewLightRay(
			physics.Vector2D{X: rayCfg.X, Y: rayCfg.Y},
			physics.Vector2D{X: rayCfg.DirX, Y: rayCfg.DirY},
			trailOpts,
			consts,
		)
		sim.Rays = append(sim.Rays, ray)
	}

	return sim, nil
}

// trailOptions maps the config policy names onto entity.TrailOptions.
func trailOptions(cfg config.TrailConfig) entity.TrailOptions {
	switch cfg.Policy {
	case "unbounded":
		return entity.TrailOptions{Policy: entity.TrailUnbounded}
	case "decimated":
		return entity.TrailOptions{Policy: entity.TrailDecimated, Stride: cfg.Stride}
	case "ring":
		return entity.TrailOptions{Policy: entity.TrailRing, Capacity: cfg.Capacity}
	default:
		return entity.DefaultTrailOptions()
	}
}

// InitializeResourceManager wires up memory and trail-budget monitoring from
// environment configuration. Called separately so headless tests can run
// without the monitoring loop.
func (s *Simulation) InitializeResourceManager() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	if envConfig.TimeMultiplier > 0 {
		s.Constants.TimeMultiplier = envConfig.TimeMultiplier
	}
	s.ResourceManager = resource.NewManager(envConfig)
	return s.ResourceManager.Start()
}

// Start marks the simulation as running
func (s *Simulation) Start() {
	s.EntityLock.Lock()
	s.Status = StatusRunning
	s.StartTime = time.Now()
	s.EntityLock.Unlock()
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStarted,
		Source:    s,
	})
}

// Stop halts the simulation and the resource monitor
func (s *Simulation) Stop() {
	s.EntityLock.Lock()
	s.Status = StatusStopped
	s.EntityLock.Unlock()
	if s.ResourceManager != nil {
		s.ResourceManager.Stop()
	}
	s.EventBus.Publish(&event.BaseEvent{
		EventType: event.SimulationStopped,
		Source:    s,
	})
}

// Step advances every ray by the elapsed real time of one frame, scaled by
// the time multiplier. Rays are independent; order does not matter. A ray
// crossing the horizon this step publishes a single RayAbsorbed event.
func (s *Simulation) Step(elapsedRealSeconds float64) {
	if elapsedRealSeconds <= 0 {
		return
	}

	s.EntityLock.Lock()
	defer s.EntityLock.Unlock()

	dt := elapsedRealSeconds * s.Constants.TimeMultiplier
	horizon := s.BlackHole.SchwarzschildRadius()

	var trailPoints int64
	var absorbed []*entity.LightRay
	for _, ray := range s.Rays {
		wasActive := ray.Status() == entity.RayActive
		ray.Advance(dt, horizon)
		if wasActive && ray.Status() == entity.RayAbsorbed {
			absorbed = append(absorbed, ray)
		}
		trailPoints += int64(ray.Trail().Len())
	}

	s.CurrentTick++
	s.ElapsedTime += dt

	if s.ResourceManager != nil {
		s.ResourceManager.RecordTrailPoints(trailPoints)
	}

	for _, ray := range absorbed {
		s.EventBus.Publish(event.NewRayEvent(
			event.RayAbsorbed, s, uint64(ray.GetID()), ray.State().Radius, s.CurrentTick,
		))
	}
}

// Render draws the current state through the given renderer. Callers must
// not interleave Render with Step; the read lock makes a concurrent caller
// observe only completed steps.
func (s *Simulation) Render(r entity.Renderer) {
	s.EntityLock.RLock()
	defer s.EntityLock.RUnlock()

	r.Clear()
	s.BlackHole.Render(r)
	for _, ray := range s.Rays {
		ray.Render(r)
	}
	r.Present()
}

// ActiveRays returns the number of rays still propagating
func (s *Simulation) ActiveRays() int {
	s.EntityLock.RLock()
	defer s.EntityLock.RUnlock()

	count := 0
	for _, ray := range s.Rays {
		if ray.Status() == entity.RayActive {
			count++
		}
	}
	return count
}

// HorizonVisualRadius returns the Schwarzschild radius converted to visual
// units, for drawing the hole's disc.
func (s *Simulation) HorizonVisualRadius() float64 {
	return s.Constants.ToVisual(s.BlackHole.SchwarzschildRadius())
}
