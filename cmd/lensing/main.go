// cmd/lensing/main.go
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-lensing/pkg/config"
	"github.com/opd-ai/go-lensing/pkg/engine"
	"github.com/opd-ai/go-lensing/pkg/entity"
	"github.com/opd-ai/go-lensing/pkg/event"
	"github.com/opd-ai/go-lensing/pkg/render"
	engorender "github.com/opd-ai/go-lensing/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'headless'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	duration := flag.Duration("duration", 0, "Stop after this much real time (terminal/headless only, 0 = run until interrupted)")
	flag.Parse()

	// Load configuration
	var simConfig *config.SimulationConfig

	if _, err := os.Stat(*configPath); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		simConfig = config.DefaultConfig()
	} else {
		var err error
		simConfig, err = config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}

	sim, err := engine.NewSimulation(simConfig)
	if err != nil {
		log.Fatalf("Invalid simulation configuration: %v", err)
	}

	if err := sim.InitializeResourceManager(); err != nil {
		log.Fatalf("Failed to start resource manager: %v", err)
	}

	sim.EventBus.Subscribe(event.RayAbsorbed, func(e event.Event) {
		if rayEvent, ok := e.(*event.RayEvent); ok {
			log.Printf("Ray %d absorbed at r=%.3e m (tick %d)",
				rayEvent.RayID, rayEvent.Radius, rayEvent.Tick)
		}
	})

	switch *renderer {
	case "terminal":
		runFrameLoop(sim, newTerminalRenderer(sim), *duration)
	case "headless":
		runFrameLoop(sim, render.NewNullRenderer(), *duration)
	case "engo":
		fallthrough
	default:
		runEngo(sim, simConfig, *fullscreen)
	}
}

// runEngo opens a window and hands the frame loop to Engo.
func runEngo(sim *engine.Simulation, cfg *config.SimulationConfig, fullscreen bool) {
	opts := engo.RunOptions{
		Title:      "Gravitational Lensing",
		Width:      int(cfg.ScreenWidth),
		Height:     int(cfg.ScreenHeight),
		Fullscreen: fullscreen,
		VSync:      true,
	}
	engo.Run(opts, engorender.NewLensScene(sim))
	sim.Stop()
}

// newTerminalRenderer sizes an ASCII view around the configured screen.
func newTerminalRenderer(sim *engine.Simulation) *render.TerminalRenderer {
	const cols, rows = 120, 40
	scale := sim.Config.ScreenWidth / cols
	return render.NewTerminalRenderer(cols, rows, scale)
}

// runFrameLoop drives the simulation at a fixed frame rate without a
// window, until interrupted or the duration elapses.
func runFrameLoop(sim *engine.Simulation, r entity.Renderer, duration time.Duration) {
	sim.Start()
	defer sim.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if duration > 0 {
		deadline = time.After(duration)
	}

	const frame = time.Second / 30
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-sigs:
			return
		case <-deadline:
			return
		case now := <-ticker.C:
			sim.Step(now.Sub(last).Seconds())
			last = now
			sim.Render(r)
		}
	}
}
