// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-lensing/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Entity is the base interface for all simulated objects
type Entity interface {
	GetID() ID
	GetPosition() physics.Vector2D
	Render(r Renderer)
}

var nextID uint64

// GenerateID returns a process-unique entity ID
func GenerateID() ID {
	return ID(atomic.AddUint64(&nextID, 1))
}
