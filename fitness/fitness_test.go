package fitness

import (
	"testing"

	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/dna"
)

func buildCreature(t *testing.T, xs []float64) *creature.Creature {
	t.Helper()
	cfg := creature.Config{
		Size:        1,
		CellSize:    10,
		NodeDamping: 0,
		NodeMass:    1,
		Charge: creature.ChargeConfig{
			PulseThreshold:     1.9,
			ChargeThreshold:    1.0,
			DischargeThreshold: 1.1,
			ChargeAccel:        300,
		},
	}
	c, err := creature.New(cfg, dna.CreatureDNA{{Toughness: 1500}})
	if err != nil {
		t.Fatalf("creature.New() error = %v", err)
	}
	for i := range c.Particles {
		if i < len(xs) {
			c.Particles[i].Position.X = xs[i]
		}
	}
	return c
}

func TestDistanceMeanOfParticleX(t *testing.T) {
	c := buildCreature(t, []float64{0, 10, 20, 30})
	scores := Distance([]*creature.Creature{c})

	want := (0.0 + 10 + 20 + 30) / 4
	if scores[0] != want {
		t.Errorf("Distance() = %v, want %v", scores[0], want)
	}
}

func TestDistanceEmptyCreatureListReturnsEmpty(t *testing.T) {
	scores := Distance(nil)
	if len(scores) != 0 {
		t.Errorf("Distance(nil) = %v, want empty", scores)
	}
}

func TestDistanceSkipsCreatureWithNoParticles(t *testing.T) {
	empty := &creature.Creature{}
	scores := Distance([]*creature.Creature{empty})

	if len(scores) != 1 || scores[0] != 0 {
		t.Errorf("Distance() for a particle-less creature = %v, want [0]", scores)
	}
}
