// Package physics implements the Verlet-integrated particle and spring
// primitives that make up a creature's soft body.
package physics

import "github.com/Noxbuds/evolution-simulator/vec2"

// Particle is a Verlet-integrable point mass with damping.
type Particle struct {
	Position     vec2.Vec2
	OldPosition  vec2.Vec2
	Acceleration vec2.Vec2
	Mass         float64
	Damping      float64
}

// NewParticle creates a particle at rest at the given position.
func NewParticle(position vec2.Vec2, mass, damping float64) Particle {
	return Particle{
		Position:    position,
		OldPosition: position,
		Mass:        mass,
		Damping:     damping,
	}
}

// Integrate advances the particle by dt using Verlet integration, then
// resets the accumulated acceleration.
func (p *Particle) Integrate(dt float64) {
	velocity := p.Position.Sub(p.OldPosition)
	p.OldPosition = p.Position
	p.Position = p.Position.
		Add(velocity.Scale(1 - p.Damping)).
		Add(p.Acceleration.Scale(dt * dt))
	p.Acceleration = vec2.Zero
}

// Accelerate sums a into the particle's acceleration.
func (p *Particle) Accelerate(a vec2.Vec2) {
	p.Acceleration = p.Acceleration.Add(a)
}

// AddForce converts a force to an acceleration via the particle's mass and
// accumulates it.
func (p *Particle) AddForce(force vec2.Vec2) {
	p.Accelerate(force.Div(p.Mass))
}
