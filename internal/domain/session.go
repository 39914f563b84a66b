package domain

import (
	"fmt"
	"time"
)

// Session is a single committed placement produced only by the solver.
// Sessions are append-only.
type Session struct {
	TaskID    string
	SessionID string
	Start     time.Time
	End       time.Time
	Completed bool
}

// Duration returns the session's span.
func (s Session) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Validate checks the session-length invariant from spec section 3: the
// span must be at least 5 minutes and an exact multiple of the
// quantization unit.
func (s Session) Validate() error {
	if !s.Start.Before(s.End) {
		return fmt.Errorf("session %s: start (%s) must be before end (%s)", s.SessionID, s.Start, s.End)
	}
	d := s.Duration()
	if d < Quantum {
		return fmt.Errorf("session %s: duration %s is below the %s minimum", s.SessionID, d, Quantum)
	}
	if !OnGrid(d) {
		return fmt.Errorf("session %s: duration %s is not a multiple of %s", s.SessionID, d, Quantum)
	}
	return nil
}
