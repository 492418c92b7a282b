package renderer

import (
	"testing"

	"github.com/Noxbuds/evolution-simulator/creature"
	"github.com/Noxbuds/evolution-simulator/physics"
)

func TestToughnessHueClampsToRange(t *testing.T) {
	tests := []struct {
		name             string
		toughness        float64
		min, max, want   float64
	}{
		{"at min", 1000, 1000, 2000, 0},
		{"at max", 2000, 1000, 2000, 270},
		{"midpoint", 1500, 1000, 2000, 135},
		{"below min clamps", 0, 1000, 2000, 0},
		{"above max clamps", 9000, 1000, 2000, 270},
		{"degenerate range", 1500, 1000, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toughnessHue(tt.toughness, tt.min, tt.max)
			if float64(got) != tt.want {
				t.Errorf("toughnessHue(%v, %v, %v) = %v, want %v", tt.toughness, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestQuadVerticesOrder(t *testing.T) {
	cell := creature.Cell{
		Springs: [6]physics.Spring{
			physics.NewSpring(0, 1, 1, 1),
			physics.NewSpring(1, 2, 1, 1),
			physics.NewSpring(2, 3, 1, 1),
			physics.NewSpring(3, 0, 1, 1),
			physics.NewSpring(0, 2, 1, 1),
			physics.NewSpring(3, 1, 1, 1),
		},
	}

	got := quadVertices(&cell)
	want := [4]int{0, 1, 2, 3}
	if got != want {
		t.Errorf("quadVertices() = %v, want %v", got, want)
	}
}
