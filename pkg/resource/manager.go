// pkg/resource/manager.go
package resource

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/opd-ai/go-lensing/pkg/config"
	"github.com/opd-ai/go-lensing/pkg/logging"
)

// Manager watches the two resources a long simulation run can exhaust:
// process memory and retained trail points. Trails grow with run duration
// and ray count, so the engine reports the retained total each step and the
// monitoring loop warns when a budget is crossed.
type Manager struct {
	maxMemoryMB    int64
	maxTrailPoints int64
	checkInterval  time.Duration

	// Atomic gauge updated by the engine each step
	trailPoints int64

	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	mu      sync.Mutex
	running bool
	logger  *logging.Logger
}

// NewManager creates a resource manager with the given environment limits.
func NewManager(cfg *config.EnvironmentConfig) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		maxMemoryMB:    cfg.MaxMemoryMB,
		maxTrailPoints: cfg.MaxTrailPoints,
		checkInterval:  cfg.ResourceCheckInterval,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
		logger:         logging.NewLogger(),
	}
}

// Start begins the monitoring loop.
func (m *Manager) Start() error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return fmt.Errorf("resource manager already running")
	}
	m.running = true
	m.mu.Unlock()

	go m.monitoringLoop()

	m.logger.Info(m.ctx, "resource manager started",
		"max_memory_mb", m.maxMemoryMB,
		"max_trail_points", m.maxTrailPoints,
		"check_interval", m.checkInterval,
	)
	return nil
}

// Stop shuts the monitoring loop down and waits for it to exit.
func (m *Manager) Stop() {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return
	}
	m.running = false
	m.mu.Unlock()

	m.cancel()
	<-m.done
}

// RecordTrailPoints updates the retained trail-point gauge. Called by the
// engine after each completed step.
func (m *Manager) RecordTrailPoints(total int64) {
	atomic.StoreInt64(&m.trailPoints, total)
}

// TrailPoints returns the most recently recorded trail-point total.
func (m *Manager) TrailPoints() int64 {
	return atomic.LoadInt64(&m.trailPoints)
}

func (m *Manager) monitoringLoop() {
	defer close(m.done)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			m.checkMemory()
			m.checkTrailBudget()
		}
	}
}

func (m *Manager) checkMemory() {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	usedMB := int64(stats.Alloc / (1024 * 1024))
	if usedMB > m.maxMemoryMB {
		m.logger.Warn(m.ctx, "memory budget exceeded",
			"used_mb", usedMB,
			"limit_mb", m.maxMemoryMB,
		)
	}
}

func (m *Manager) checkTrailBudget() {
	total := m.TrailPoints()
	if total > m.maxTrailPoints {
		m.logger.Warn(m.ctx, "trail point budget exceeded, consider a ring or decimated trail policy",
			"trail_points", total,
			"limit", m.maxTrailPoints,
		)
	}
}
