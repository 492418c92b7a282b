// Package renderer draws a World through a thin, read-only raylib pass. It
// owns no simulation state and performs no mutation; window lifecycle is
// the CLI driver's responsibility.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/world"
)

// toughnessHue maps a toughness value in its configured mutation range to a
// hue in [0, 270] (red, soft springs, through blue, stiff springs).
func toughnessHue(toughness, min, max float64) float32 {
	if max <= min {
		return 0
	}
	t := (toughness - min) / (max - min)
	t = math.Min(1, math.Max(0, t))
	return float32(t) * 270
}

// cellColor derives a fill color from a cell's toughness (hue) and current
// charge (brightness): a resting cell is dim, a firing cell is bright.
func cellColor(toughness, toughnessMin, toughnessMax, charge float64) rl.Color {
	brightness := 0.35 + 0.65*math.Min(1, math.Max(0, charge))
	return rl.ColorFromHSV(toughnessHue(toughness, toughnessMin, toughnessMax), 0.65, float32(brightness))
}

// quadVertices returns the four particle indices of a cell's corners in
// top-left, top-right, bottom-right, bottom-left order, recovered from its
// perimeter springs.
func quadVertices(cell *creature.Cell) [4]int {
	return [4]int{
		cell.Springs[0].AID, // top-left
		cell.Springs[0].BID, // top-right
		cell.Springs[1].BID, // bottom-right
		cell.Springs[2].BID, // bottom-left
	}
}

// DrawWorld draws every creature's cells as filled quads, colored by
// toughness and charge. Must be called between rl.BeginDrawing and
// rl.EndDrawing. toughnessMin/Max should be the configured mutation range,
// used only to normalize hue.
func DrawWorld(w *world.World, toughnessMin, toughnessMax float64) {
	for _, c := range w.Creatures {
		for i := range c.Cells {
			drawCell(c, &c.Cells[i], toughnessMin, toughnessMax)
		}
	}
}

func drawCell(c *creature.Creature, cell *creature.Cell, toughnessMin, toughnessMax float64) {
	verts := quadVertices(cell)
	color := cellColor(cell.DNA.Toughness, toughnessMin, toughnessMax, cell.Charge.GetCharge())

	pos := func(i int) rl.Vector2 {
		p := c.Particles[verts[i]].Position
		return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
	}

	a, b, cc, d := pos(0), pos(1), pos(2), pos(3)
	rl.DrawTriangle(a, b, cc, color)
	rl.DrawTriangle(a, cc, d, color)
}
