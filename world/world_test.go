package world

import (
	"math"
	"testing"

	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/dna"
)

func testWorldConfig() Config {
	return Config{
		GroundY:         100,
		GroundFriction:  200,
		Gravity:         800,
		ActiveThreshold: 0.2,
	}
}

func testCreature(t *testing.T) *creature.Creature {
	t.Helper()
	cfg := creature.Config{
		Size:        2,
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
	creatureDNA := make(dna.CreatureDNA, 4)
	for i := range creatureDNA {
		creatureDNA[i] = dna.CellDNA{Toughness: 1500}
	}
	c, err := creature.New(cfg, creatureDNA)
	if err != nil {
		t.Fatalf("creature.New() error = %v", err)
	}
	return c
}

func TestAddCreatureAndReset(t *testing.T) {
	w := New(testWorldConfig())
	w.AddCreature(testCreature(t))

	if len(w.Creatures) != 1 {
		t.Fatalf("len(Creatures) = %d, want 1", len(w.Creatures))
	}

	w.Reset()
	if len(w.Creatures) != 0 {
		t.Errorf("len(Creatures) after Reset = %d, want 0", len(w.Creatures))
	}
}

func TestUpdateAppliesGravity(t *testing.T) {
	cfg := testWorldConfig()
	cfg.GroundY = 1000 // keep particles off the ground for this test
	w := New(cfg)
	w.AddCreature(testCreature(t))

	before := w.Creatures[0].Particles[0].Position.Y
	w.Update(0.01)
	after := w.Creatures[0].Particles[0].Position.Y

	if after <= before {
		t.Errorf("expected particles to fall under gravity: before=%v after=%v", before, after)
	}
}

func TestUpdateClampsToGround(t *testing.T) {
	cfg := testWorldConfig()
	cfg.GroundY = 15 // particle rows start at y=0/10/20; the bottom row is already below ground
	w := New(cfg)
	w.AddCreature(testCreature(t))

	for i := 0; i < 20; i++ {
		w.Update(0.01)
	}

	for i, p := range w.Creatures[0].Particles {
		if p.Position.Y > cfg.GroundY+1e-9 {
			t.Errorf("particle %d: Position.Y = %v, should never exceed GroundY %v", i, p.Position.Y, cfg.GroundY)
		}
	}
}

func TestUpdateGroundContactDoesNotInjectVerticalVelocity(t *testing.T) {
	cfg := testWorldConfig()
	cfg.GroundY = 25 // below every particle row (y=0/10/20), so no two particles are clamped together
	w := New(cfg)
	w.AddCreature(testCreature(t))

	// Zero every spring's stiffness so gravity and ground contact are the
	// only forces on the particle.
	for i := range w.Creatures[0].Cells {
		for j := range w.Creatures[0].Cells[i].Springs {
			w.Creatures[0].Cells[i].Springs[j].K = 0
		}
	}

	// Push a particle below ground with no vertical velocity, then take one
	// substep: the clamp must not leave OldPosition.Y behind, which would
	// synthesize spurious upward velocity on the following substep.
	p := &w.Creatures[0].Particles[0]
	p.Position.Y = cfg.GroundY + 50
	p.OldPosition.Y = cfg.GroundY + 50

	w.Update(0.01)

	if math.Abs(p.Position.Y-cfg.GroundY) > 1e-9 {
		t.Fatalf("Position.Y = %v, want exactly GroundY %v", p.Position.Y, cfg.GroundY)
	}
	if math.Abs(p.OldPosition.Y-cfg.GroundY) > 1e-9 {
		t.Fatalf("OldPosition.Y = %v, want exactly GroundY %v (else a velocity is synthesized)", p.OldPosition.Y, cfg.GroundY)
	}
}
