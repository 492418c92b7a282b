// Package world applies gravity and ground contact to a collection of
// creatures and steps their physics.
package world

import (
	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/vec2"
)

// Config holds the world-level physical parameters.
type Config struct {
	GroundY         float64
	GroundFriction  float64
	Gravity         float64
	ActiveThreshold float64
}

// World owns a set of creatures and the ground/gravity parameters they
// share. A World is never shared across worker goroutines — each worker
// owns its own.
type World struct {
	Creatures []*creature.Creature
	cfg       Config
}

// New creates an empty world.
func New(cfg Config) *World {
	return &World{cfg: cfg}
}

// AddCreature adds a creature to the world.
func (w *World) AddCreature(c *creature.Creature) {
	w.Creatures = append(w.Creatures, c)
}

// Reset empties the world's creature list, retaining its backing array.
func (w *World) Reset() {
	w.Creatures = w.Creatures[:0]
}

// Update advances every creature by dt: gravity, ground contact with
// friction, then the creature's own step. A particle at or below GroundY is
// in contact; after the step every particle is clamped back to GroundY, so
// no particle ends a step below the ground.
func (w *World) Update(dt float64) {
	gravity := vec2.Vec2{X: 0, Y: w.cfg.Gravity}

	for _, c := range w.Creatures {
		for i := range c.Particles {
			p := &c.Particles[i]
			p.Accelerate(gravity)

			if p.Position.Y >= w.cfg.GroundY {
				horizontalVelocity := p.Position.X - p.OldPosition.X
				p.Accelerate(vec2.Vec2{
					X: -w.cfg.GroundFriction * w.cfg.Gravity * horizontalVelocity,
					Y: 0,
				})
				// Clamp position AND old_position so the ground contact
				// doesn't inject a one-step vertical velocity via the
				// Verlet position/old_position difference.
				p.Position.Y = w.cfg.GroundY
				p.OldPosition.Y = w.cfg.GroundY
			}
		}

		c.Update(dt, w.cfg.ActiveThreshold)

		for i := range c.Particles {
			p := &c.Particles[i]
			if p.Position.Y > w.cfg.GroundY {
				p.Position.Y = w.cfg.GroundY
				p.OldPosition.Y = w.cfg.GroundY
			}
		}
	}
}
