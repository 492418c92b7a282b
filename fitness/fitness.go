// Package fitness scores simulated creatures.
package fitness

import "github.com/Noxbuds/evolution-simulator/creature"

// Func scores a batch of creatures, one score per creature, in input order.
type Func func(creatures []*creature.Creature) []float64

// Distance is the provided fitness function: mean horizontal displacement of
// a creature's particles.
func Distance(creatures []*creature.Creature) []float64 {
	scores := make([]float64, len(creatures))
	for i, c := range creatures {
		if len(c.Particles) == 0 {
			continue
		}

		var sum float64
		for _, p := range c.Particles {
			sum += p.Position.X
		}
		scores[i] = sum / float64(len(c.Particles))
	}
	return scores
}
