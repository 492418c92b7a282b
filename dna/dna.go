// Package dna implements the genetic representation used by the evolution
// pipeline: per-cell trait vectors, random generation, and the single-field
// mutation operator.
package dna

import "math/rand"

// numFields is the number of mutable scalars in a CellDNA.
const numFields = 5

// Range is an inclusive [Min, Max] bound used both to generate a field and
// to clamp it after mutation.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// sample draws a uniform value in [r.Min, r.Max) from rng.
func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// FieldRanges holds the per-field generation/clamp ranges, one per CellDNA
// field, plus the mutation parameters shared across fields.
type FieldRanges struct {
	Conductivity Range
	Reactivity   Range
	Toughness    Range
	Active       Range
	ChargeRate   Range

	// Chance is the probability that Mutate returns the parent
	// unchanged (a clone); with probability 1-Chance exactly one field of
	// one cell is mutated.
	Chance float64
	// Strength bounds the magnitude of the signed mutation multiplier.
	Strength float64
}

// CellDNA is the five-scalar genetic encoding of one cell.
type CellDNA struct {
	Conductivity float64
	Reactivity   float64
	Toughness    float64
	Active       float64
	ChargeRate   float64
}

// CreatureDNA is the ordered sequence of CellDNA for one creature, of length
// exactly size*size. Position i encodes the cell at row i/size, col i%size.
type CreatureDNA []CellDNA

// Clone returns an independent copy of the DNA sequence.
func (d CreatureDNA) Clone() CreatureDNA {
	clone := make(CreatureDNA, len(d))
	copy(clone, d)
	return clone
}

func generateCell(ranges FieldRanges, rng *rand.Rand) CellDNA {
	return CellDNA{
		Conductivity: ranges.Conductivity.sample(rng),
		Reactivity:   ranges.Reactivity.sample(rng),
		Toughness:    ranges.Toughness.sample(rng),
		Active:       ranges.Active.sample(rng),
		ChargeRate:   ranges.ChargeRate.sample(rng),
	}
}

// Generate produces n independently-sampled CellDNA entries.
func Generate(n int, ranges FieldRanges, rng *rand.Rand) CreatureDNA {
	out := make(CreatureDNA, n)
	for i := range out {
		out[i] = generateCell(ranges, rng)
	}
	return out
}

func fieldRange(ranges FieldRanges, field int) Range {
	switch field {
	case 0:
		return ranges.Conductivity
	case 1:
		return ranges.Reactivity
	case 2:
		return ranges.Toughness
	case 3:
		return ranges.Active
	default:
		return ranges.ChargeRate
	}
}

func mutateField(cell *CellDNA, field int, multiplier float64, ranges FieldRanges) {
	switch field {
	case 0:
		cell.Conductivity = fieldRange(ranges, 0).Clamp(cell.Conductivity * multiplier)
	case 1:
		cell.Reactivity = fieldRange(ranges, 1).Clamp(cell.Reactivity * multiplier)
	case 2:
		cell.Toughness = fieldRange(ranges, 2).Clamp(cell.Toughness * multiplier)
	case 3:
		cell.Active = fieldRange(ranges, 3).Clamp(cell.Active * multiplier)
	default:
		cell.ChargeRate = fieldRange(ranges, 4).Clamp(cell.ChargeRate * multiplier)
	}
}

// Mutate returns a clone of dna with, with probability (1-ranges.Chance),
// exactly one field of one randomly chosen cell overwritten by
// value * m clamped to that field's range, where m is a signed zero-mean
// multiplier of magnitude up to ranges.Strength. With probability
// ranges.Chance the clone is returned unchanged.
func Mutate(parent CreatureDNA, ranges FieldRanges, rng *rand.Rand) CreatureDNA {
	child := parent.Clone()

	if len(child) == 0 || rng.Float64() <= ranges.Chance {
		return child
	}

	cellIdx := rng.Intn(len(child))
	field := rng.Intn(numFields)
	multiplier := (rng.Float64()*2 - 1) * ranges.Strength

	mutateField(&child[cellIdx], field, multiplier, ranges)
	return child
}
