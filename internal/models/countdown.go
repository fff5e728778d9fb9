package models

// CountdownPhase is the state of a thaw countdown.
type CountdownPhase string

const (
	PhaseIdle       CountdownPhase = "idle" // no window armed
	PhaseNotStarted CountdownPhase = "notStarted"
	PhaseInProgress CountdownPhase = "inProgress"
	PhaseCompleted  CountdownPhase = "completed"
)

// rank orders phases so a ticking countdown never moves backwards.
func (p CountdownPhase) rank() int {
	switch p {
	case PhaseNotStarted:
		return 1
	case PhaseInProgress:
		return 2
	case PhaseCompleted:
		return 3
	default:
		return 0
	}
}

// Before reports whether p comes earlier than o in the countdown lifecycle.
func (p CountdownPhase) Before(o CountdownPhase) bool {
	return p.rank() < o.rank()
}

// CountdownState is recomputed on every tick; it is never persisted.
type CountdownState struct {
	SessionID        string         `json:"sessionId,omitempty"`
	Phase            CountdownPhase `json:"phase"`
	FractionElapsed  float64        `json:"fractionElapsed"`
	RemainingSeconds int64          `json:"remainingSeconds"`
	RemainingText    string         `json:"remainingText,omitempty"`
	Message          string         `json:"message,omitempty"`
}
