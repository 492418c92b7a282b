package physics

// Spring is a Hookean spring between two particles, addressed by index into
// the owning creature's particle slice.
type Spring struct {
	AID, BID    int
	K           float64
	Length      float64
	StartLength float64
}

// NewSpring creates a spring at its natural rest length.
func NewSpring(aID, bID int, k, length float64) Spring {
	return Spring{
		AID:         aID,
		BID:         bID,
		K:           k,
		Length:      length,
		StartLength: length,
	}
}

// Apply computes the Hookean force from the spring's current rest length
// and accumulates it onto both endpoint particles.
//
// Callers must ensure the two particles never coincide — a zero-length
// direction vector is undefined here (see vec2.Vec2.Div).
func (s Spring) Apply(particles []Particle) {
	a := &particles[s.AID]
	b := &particles[s.BID]

	dir := a.Position.Sub(b.Position)
	dist := dir.Len()

	forceMag := s.K * (dist - s.Length)
	unit := dir.Div(dist)

	a.AddForce(unit.Scale(-forceMag))
	b.AddForce(unit.Scale(forceMag))
}
