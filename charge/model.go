// Package charge implements the two excitable per-cell charge models used
// to drive a creature's spring contraction and inter-cell signaling.
//
// The variant set is closed and small (Pulse, ActionPotential), so it is
// modeled as a plain interface satisfied by exactly those two types (whose
// fields are unexported) rather than a general plugin mechanism.
package charge

// Model is a per-cell excitable charge state machine.
type Model interface {
	// Update advances the model by dt.
	Update(dt float64)
	// GetCharge returns the current charge value.
	GetCharge() float64
	// GetDischarge returns the non-negative excess of charge above the
	// model's activation threshold.
	GetDischarge() float64
	// Charge delivers a stimulus of magnitude x.
	Charge(x float64)
	// Clone returns a deep, unaliased copy of the model.
	Clone() Model
}
