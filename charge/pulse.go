package charge

// Pulse is a free-running oscillator that ignores incoming stimuli.
type Pulse struct {
	chargeRate     float64
	charge         float64
	threshold      float64
	resetThreshold float64
}

// NewPulse creates a Pulse model at rest.
func NewPulse(chargeRate, threshold, resetThreshold float64) *Pulse {
	return &Pulse{
		chargeRate:     chargeRate,
		threshold:      threshold,
		resetThreshold: resetThreshold,
	}
}

// Update advances the oscillator and wraps it back to zero once it passes
// the reset threshold.
func (p *Pulse) Update(dt float64) {
	p.charge += p.chargeRate * dt
	if p.charge > p.resetThreshold {
		p.charge = 0
	}
}

// GetCharge returns the current charge.
func (p *Pulse) GetCharge() float64 {
	return p.charge
}

// GetDischarge returns the excess of charge above threshold, or 0.
func (p *Pulse) GetDischarge() float64 {
	if p.charge > p.threshold {
		return p.charge - p.threshold
	}
	return 0
}

// Charge is a no-op: Pulse ignores stimuli.
func (p *Pulse) Charge(x float64) {}

// Clone returns an unaliased copy.
func (p *Pulse) Clone() Model {
	clone := *p
	return &clone
}
