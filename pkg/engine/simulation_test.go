// pkg/engine/simulation_test.go
package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/opd-ai/go-lensing/pkg/config"
	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/event"
	"github.com/opd-ai/go-lensing/pkg/physics"
	"github.com/opd-ai/go-lensing/pkg/validation"
)

// testConfig returns a small valid configuration: one hole, one far-out
// tangential ray.
func testConfig() *config.SimulationConfig {
	cfg := config.DefaultConfig()
	cfg.Rays = []config.RayConfig{
		{X: 600, Y: 0, DirX: 0, DirY: 1},
	}
	return cfg
}

// recordingRenderer counts render calls for boundary tests.
type recordingRenderer struct {
	clears, presents int
	holes, rays      int
}

func (r *recordingRenderer) Clear()                             { r.clears++ }
func (r *recordingRenderer) Present()                           { r.presents++ }
func (r *recordingRenderer) RenderBlackHole(*entity.BlackHole)  { r.holes++ }
func (r *recordingRenderer) RenderRay(ray *entity.LightRay)     { r.rays++ }

func TestNewSimulation_BuildsEntitiesFromConfig(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	if sim.BlackHole == nil {
		t.Fatal("simulation has no black hole")
	}
	if len(sim.Rays) != 1 {
		t.Fatalf("len(Rays) = %d, want 1", len(sim.Rays))
	}
	if sim.BlackHole.SchwarzschildRadius() <= 0 {
		t.Error("horizon radius must be positive for positive mass")
	}
	wantCenter := physics.Vector2D{X: cfg.ScreenWidth / 2, Y: cfg.ScreenHeight / 2}
	if sim.Center != wantCenter {
		t.Errorf("Center = %v, want %v", sim.Center, wantCenter)
	}
}

func TestNewSimulation_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.SimulationConfig)
	}{
		{
			name:   "non_positive_mass",
			mutate: func(c *config.SimulationConfig) { c.BlackHole.Mass = 0 },
		},
		{
			name:   "negative_mass",
			mutate: func(c *config.SimulationConfig) { c.BlackHole.Mass = -1e30 },
		},
		{
			name:   "zero_vis_scale",
			mutate: func(c *config.SimulationConfig) { c.PhysicsConfig.VisScale = 0 },
		},
		{
			name:   "zero_time_multiplier",
			mutate: func(c *config.SimulationConfig) { c.PhysicsConfig.TimeMultiplier = 0 },
		},
		{
			name:   "zero_direction_ray",
			mutate: func(c *config.SimulationConfig) { c.Rays[0].DirX, c.Rays[0].DirY = 0, 0 },
		},
		{
			name:   "nan_black_hole_position",
			mutate: func(c *config.SimulationConfig) { c.BlackHole.X = math.NaN() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			_, err := NewSimulation(cfg)
			if err == nil {
				t.Fatal("NewSimulation() accepted an invalid configuration")
			}
			if !errors.Is(err, validation.ErrInvalidConfiguration) {
				t.Errorf("error %v does not wrap ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestSimulation_StepScalesElapsedTime(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	// A standalone ray advanced by the pre-scaled dt must match the
	// simulation's ray stepped through the orchestrator.
	consts := sim.Constants
	reference := entity.NewLightRay(
		physics.Vector2D{X: 600, Y: 0},
		physics.Vector2D{X: 0, Y: 1},
		entity.TrailOptions{Policy: entity.TrailRing, Capacity: cfg.Trail.Capacity},
		consts,
	)

	elapsed := 1.0 / 60
	horizon := sim.BlackHole.SchwarzschildRadius()
	for i := 0; i < 10; i++ {
		sim.Step(elapsed)
		reference.Advance(elapsed*consts.TimeMultiplier, horizon)
	}

	got := sim.Rays[0].GetPosition()
	want := reference.GetPosition()
	if got.Distance(want) > 1e-9 {
		t.Errorf("stepped position = %v, want %v", got, want)
	}

	if sim.CurrentTick != 10 {
		t.Errorf("CurrentTick = %d, want 10", sim.CurrentTick)
	}
	wantElapsed := 10 * elapsed * consts.TimeMultiplier
	if math.Abs(sim.ElapsedTime-wantElapsed) > 1e-9 {
		t.Errorf("ElapsedTime = %v, want %v", sim.ElapsedTime, wantElapsed)
	}
}

func TestSimulation_StepIgnoresNonPositiveElapsed(t *testing.T) {
	sim, err := NewSimulation(testConfig())
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	sim.Step(0)
	sim.Step(-1)

	if sim.CurrentTick != 0 {
		t.Errorf("CurrentTick = %d, want 0 after non-positive elapsed times", sim.CurrentTick)
	}
}

func TestSimulation_PublishesRayAbsorbedOnce(t *testing.T) {
	cfg := testConfig()
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	// Replace the scene with a single ray already inside the horizon.
	horizon := sim.BlackHole.SchwarzschildRadius()
	inside := physics.FromAngle(0, sim.Constants.ToVisual(horizon*0.5))
	sim.Rays = []*entity.LightRay{
		entity.NewLightRay(inside, physics.Vector2D{X: 1, Y: 0}, entity.DefaultTrailOptions(), sim.Constants),
	}

	var absorbed int
	sim.EventBus.Subscribe(event.RayAbsorbed, func(e event.Event) {
		if _, ok := e.(*event.RayEvent); !ok {
			t.Errorf("RayAbsorbed payload has type %T, want *event.RayEvent", e)
		}
		absorbed++
	})

	for i := 0; i < 5; i++ {
		sim.Step(1.0 / 60)
	}

	if absorbed != 1 {
		t.Errorf("RayAbsorbed published %d times, want exactly once", absorbed)
	}
	if sim.ActiveRays() != 0 {
		t.Errorf("ActiveRays() = %d, want 0", sim.ActiveRays())
	}
}

func TestSimulation_RenderVisitsEveryEntity(t *testing.T) {
	cfg := testConfig()
	cfg.Rays = config.ParallelFan(5, 50, -600)
	sim, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	r := &recordingRenderer{}
	sim.Render(r)

	if r.clears != 1 || r.presents != 1 {
		t.Errorf("Clear/Present called %d/%d times, want 1/1", r.clears, r.presents)
	}
	if r.holes != 1 {
		t.Errorf("RenderBlackHole called %d times, want 1", r.holes)
	}
	if r.rays != 5 {
		t.Errorf("RenderRay called %d times, want 5", r.rays)
	}
}

func TestSimulation_StartStopLifecycle(t *testing.T) {
	sim, err := NewSimulation(testConfig())
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	var started, stopped int
	sim.EventBus.Subscribe(event.SimulationStarted, func(event.Event) { started++ })
	sim.EventBus.Subscribe(event.SimulationStopped, func(event.Event) { stopped++ })

	sim.Start()
	if sim.Status != StatusRunning {
		t.Errorf("Status = %v after Start, want StatusRunning", sim.Status)
	}
	sim.Stop()
	if sim.Status != StatusStopped {
		t.Errorf("Status = %v after Stop, want StatusStopped", sim.Status)
	}

	if started != 1 || stopped != 1 {
		t.Errorf("lifecycle events = %d/%d, want 1/1", started, stopped)
	}
}

func TestSimulation_HorizonVisualRadius(t *testing.T) {
	sim, err := NewSimulation(testConfig())
	if err != nil {
		t.Fatalf("NewSimulation() error = %v", err)
	}

	want := sim.Constants.ToVisual(sim.BlackHole.SchwarzschildRadius())
	if sim.HorizonVisualRadius() != want {
		t.Errorf("HorizonVisualRadius() = %v, want %v", sim.HorizonVisualRadius(), want)
	}
}

func TestTrailOptionsMapping(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.TrailConfig
		want entity.TrailOptions
	}{
		{
			name: "unbounded",
			cfg:  config.TrailConfig{Policy: "unbounded"},
			want: entity.TrailOptions{Policy: entity.TrailUnbounded},
		},
		{
			name: "ring",
			cfg:  config.TrailConfig{Policy: "ring", Capacity: 64},
			want: entity.TrailOptions{Policy: entity.TrailRing, Capacity: 64},
		},
		{
			name: "decimated",
			cfg:  config.TrailConfig{Policy: "decimated", Stride: 4},
			want: entity.TrailOptions{Policy: entity.TrailDecimated, Stride: 4},
		},
		{
			name: "empty_defaults",
			cfg:  config.TrailConfig{},
			want: entity.DefaultTrailOptions(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailOptions(tt.cfg); got != tt.want {
				t.Errorf("trailOptions(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}
