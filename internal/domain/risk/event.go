package risk

import (
	"time"

	"github.com/google/uuid"
)

// RiskEvent is an alert value emitted when a recomputation lands on a
// non-safe protection level. The engine never stores events; callers
// decide whether to persist or display them.
type RiskEvent struct {
	ID        uuid.UUID
	Timestamp time.Time
	Level     ProtectionLevel
	Severity  string // "warning" or "critical"
	Message   string
}

// NewRiskEvent builds an event for a classified drawdown state
func NewRiskEvent(state DrawdownState, at time.Time) *RiskEvent {
	if state.Level == LevelSafe {
		return nil
	}

	severity := "warning"
	if state.Level.Severity() >= LevelDanger.Severity() {
		severity = "critical"
	}

	return &RiskEvent{
		ID:        uuid.New(),
		Timestamp: at,
		Level:     state.Level,
		Severity:  severity,
		Message:   state.Message,
	}
}
