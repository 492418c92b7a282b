package creature

import (
	"errors"
	"fmt"

	"github.com/Noxbuds/evolution-simulator/config"
	"github.com/Noxbuds/evolution-simulator/dna"
	"github.com/Noxbuds/evolution-simulator/physics"
	"github.com/Noxbuds/evolution-simulator/vec2"
)

// ErrInvalidDNA is returned by New when the supplied DNA's length does not
// match size*size.
var ErrInvalidDNA = errors.New("creature: dna length does not match size*size")

// Config holds the subset of configuration needed to build a creature.
type Config struct {
	Size        int
	CellSize    float64
	NodeDamping float64
	NodeMass    float64
	Charge      ChargeConfig
}

// ConfigFrom builds a creature Config from the loaded simulation config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		Size:        cfg.Creature.Size,
		CellSize:    cfg.Creature.CellSize,
		NodeDamping: cfg.Creature.NodeDamping,
		NodeMass:    cfg.Creature.NodeMass,
		Charge: ChargeConfig{
			PulseThreshold:     cfg.Creature.PulseThreshold,
			ChargeThreshold:    cfg.Creature.ChargeThreshold,
			DischargeThreshold: cfg.Creature.DischargeThreshold,
			ChargeAccel:        cfg.Creature.ChargeAccel,
		},
	}
}

// Creature is a grid of Size*Size cells sharing a (Size+1)^2 particle pool.
type Creature struct {
	Particles []physics.Particle
	Cells     []Cell
	Size      int
}

// vertexIndex returns the particle pool index of the grid vertex at
// (row, col), where the pool has sideLength columns of vertices per row.
func vertexIndex(row, col, sideLength int) int {
	return row*sideLength + col
}

// New builds a creature of cfg.Size x cfg.Size cells from DNA. DNA must have
// exactly Size*Size entries, one per cell in row-major order; otherwise New
// returns ErrInvalidDNA.
func New(cfg Config, creatureDNA dna.CreatureDNA) (*Creature, error) {
	size := cfg.Size
	if len(creatureDNA) != size*size {
		return nil, fmt.Errorf("%w: have %d want %d", ErrInvalidDNA, len(creatureDNA), size*size)
	}

	sideLength := size + 1
	particles := make([]physics.Particle, 0, sideLength*sideLength)
	for row := 0; row < sideLength; row++ {
		for col := 0; col < sideLength; col++ {
			pos := vec2.Vec2{X: float64(col) * cfg.CellSize, Y: float64(row) * cfg.CellSize}
			particles = append(particles, physics.NewParticle(pos, cfg.NodeMass, cfg.NodeDamping))
		}
	}

	cells := make([]Cell, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			vertexIDs := [4]int{
				vertexIndex(row, col, sideLength),
				vertexIndex(row, col+1, sideLength),
				vertexIndex(row+1, col+1, sideLength),
				vertexIndex(row+1, col, sideLength),
			}
			cellDNA := creatureDNA[row*size+col]
			cells = append(cells, newCell(row, col, vertexIDs, cfg.CellSize, cellDNA, cfg.Charge))
		}
	}

	return &Creature{Particles: particles, Cells: cells, Size: size}, nil
}

// dischargeEvent is a cell that discharged this step, collected before any
// delivery so propagation is strictly single-hop per step.
type dischargeEvent struct {
	row, col int
	amount   float64
}

// cellAt returns a pointer to the cell at (row, col), or nil if out of
// range. Signed arithmetic is used by callers so that row/col below zero or
// at the grid edge are rejected before ever being used as slice indices.
func (c *Creature) cellAt(row, col int) *Cell {
	if row < 0 || row >= c.Size || col < 0 || col >= c.Size {
		return nil
	}
	return &c.Cells[row*c.Size+col]
}

// propagateDischarge delivers each collected discharge event to its four
// von-Neumann neighbors, skipping neighbors that don't exist at grid edges,
// and gates propagation by the active_threshold open question: a cell only
// propagates if its DNA's Active field exceeds the configured threshold.
func (c *Creature) propagateDischarge(activeThreshold float64) {
	var events []dischargeEvent
	for _, cell := range c.Cells {
		if cell.DNA.Active <= activeThreshold {
			continue
		}
		if d := cell.Charge.GetDischarge(); d > 0 {
			events = append(events, dischargeEvent{row: cell.Row, col: cell.Col, amount: d})
		}
	}

	neighborOffsets := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, ev := range events {
		for _, off := range neighborOffsets {
			if n := c.cellAt(ev.row+off[0], ev.col+off[1]); n != nil {
				n.Charge.Charge(ev.amount)
			}
		}
	}
}

// Update advances the creature by dt: cell geometry and charge models,
// discharge propagation, then particle integration — this order is
// load-bearing for correctness of propagation (§5 of the spec).
func (c *Creature) Update(dt float64, activeThreshold float64) {
	for i := range c.Cells {
		c.Cells[i].updateGeometry(c.Particles)
		c.Cells[i].Charge.Update(dt)
	}

	c.propagateDischarge(activeThreshold)

	for i := range c.Particles {
		c.Particles[i].Integrate(dt)
	}
}
