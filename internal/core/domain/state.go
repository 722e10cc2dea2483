package domain

// ConfigureState is the lifecycle state of the configure loop.
type ConfigureState string

const (
	// StateIdle means no pass has run yet or the previous result was consumed.
	StateIdle ConfigureState = "Idle"
	// StateRunning means the external configure process is in flight.
	StateRunning ConfigureState = "Running"
	// StateConverged means the last pass introduced no new entries.
	StateConverged ConfigureState = "Converged"
	// StateNeedsAnotherPass means the last pass surfaced new entries the
	// operator has not reviewed yet.
	StateNeedsAnotherPass ConfigureState = "NeedsAnotherPass"
	// StateFailed means the last pass failed. The failure is local to the
	// pass: the operator may edit entries and retry.
	StateFailed ConfigureState = "Failed"
)

// Terminal reports whether the state is a pass outcome rather than an
// intermediate phase.
func (s ConfigureState) Terminal() bool {
	return s == StateConverged || s == StateNeedsAnotherPass || s == StateFailed
}
