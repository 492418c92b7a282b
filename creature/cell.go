// Package creature assembles the physics core and the charge core into the
// grid-of-cells soft body that the evolution pipeline simulates.
package creature

import (
	"github.com/Noxbuds/evolution-simulator/charge"
	"github.com/Noxbuds/evolution-simulator/dna"
	"github.com/Noxbuds/evolution-simulator/physics"
)

// springCount is the number of springs owned by one cell: 4 quad edges plus
// 2 diagonals.
const springCount = 6

// Cell is one quad of the creature grid: four particles (addressed by
// index into the owning creature's particle pool), six springs, one charge
// model, its DNA, and its (row, col) grid position.
type Cell struct {
	Row, Col int
	DNA      dna.CellDNA
	Springs  [springCount]physics.Spring
	Charge   charge.Model
}

// newCellSprings builds the 6 springs of a cell from its four vertex
// particle indices in pool order: top-left, top-right, bottom-right,
// bottom-left.
func newCellSprings(vertexIDs [4]int, restLength, stiffness float64) [springCount]physics.Spring {
	diagonal := restLength * 1.4142135623730951 // sqrt(2)

	return [springCount]physics.Spring{
		physics.NewSpring(vertexIDs[0], vertexIDs[1], stiffness, restLength),
		physics.NewSpring(vertexIDs[1], vertexIDs[2], stiffness, restLength),
		physics.NewSpring(vertexIDs[2], vertexIDs[3], stiffness, restLength),
		physics.NewSpring(vertexIDs[3], vertexIDs[0], stiffness, restLength),
		physics.NewSpring(vertexIDs[0], vertexIDs[2], stiffness, diagonal),
		physics.NewSpring(vertexIDs[3], vertexIDs[1], stiffness, diagonal),
	}
}

// newChargeModel picks the cell's charge model variant from its DNA: a Pulse
// above the configured threshold, an ActionPotential otherwise.
func newChargeModel(cellDNA dna.CellDNA, cfg ChargeConfig) charge.Model {
	if cellDNA.ChargeRate > cfg.PulseThreshold {
		return charge.NewPulse(cellDNA.ChargeRate*0.5, cfg.ChargeThreshold, cfg.DischargeThreshold)
	}
	return charge.NewActionPotential(cfg.ChargeThreshold, cfg.ChargeAccel, cellDNA.Conductivity)
}

// ChargeConfig holds the subset of creature configuration needed to select
// and parameterize a cell's charge model.
type ChargeConfig struct {
	PulseThreshold     float64
	ChargeThreshold    float64
	DischargeThreshold float64
	ChargeAccel        float64
}

// newCell constructs a cell at (row, col) over the given vertex particle
// indices, using toughness (DNA) as spring stiffness.
func newCell(row, col int, vertexIDs [4]int, restLength float64, cellDNA dna.CellDNA, cfg ChargeConfig) Cell {
	return Cell{
		Row:     row,
		Col:     col,
		DNA:     cellDNA,
		Springs: newCellSprings(vertexIDs, restLength, cellDNA.Toughness),
		Charge:  newChargeModel(cellDNA, cfg),
	}
}

// minRestFraction floors the spring rest-length multiplier so an extreme
// charge * reactivity never inverts the spring (see §4.3 of the spec).
const minRestFraction = 0.05

// updateGeometry rewrites each spring's current rest length from the
// charge model's output and reactivity, then applies the springs to the
// shared particle pool.
func (c *Cell) updateGeometry(particles []physics.Particle) {
	charge := c.Charge.GetCharge()
	factor := 1 + charge*c.DNA.Reactivity
	if factor < minRestFraction {
		factor = minRestFraction
	}

	for i := range c.Springs {
		c.Springs[i].Length = c.Springs[i].StartLength * factor
		c.Springs[i].Apply(particles)
	}
}
