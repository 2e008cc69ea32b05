package episode

import (
	"sync"
	"time"
)

// #region state
// State is the shared mutable record for the current screen-off episode.
// One live instance exists per monitoring session; it is reset (with an epoch
// increment) at every observed display-off→on transition.
//
// handled is monotonic within an episode: once true, no detector may start a
// new countdown or win arbitration until the next reset. executing marks the
// window during which the corrective action runs and reactive listeners must
// stay suppressed.
type State struct {
	mu           sync.Mutex
	epoch        uint64
	handled      bool
	executing    bool
	proxArmed    bool
	darkArmed    bool
	idleBaseline time.Time
}

// NewState creates episode state for a fresh session. The idle baseline
// starts at now so idle duration never counts time before the monitor ran.
func NewState(now time.Time) *State {
	return &State{idleBaseline: now}
}

// #endregion state

// #region epoch
// Epoch returns the current episode epoch.
func (s *State) Epoch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch
}

// #endregion epoch

// #region handled
// Handled reports whether a detector already won arbitration this episode.
func (s *State) Handled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handled
}

// TryHandle is the sole mutual-exclusion point for arbitration: it atomically
// checks the request epoch against the current epoch and the handled flag,
// and claims the episode when both pass. Exactly one concurrent caller per
// epoch observes Admitted.
func (s *State) TryHandle(epoch uint64) AdmitResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return StaleEpoch
	}
	if s.handled {
		return AlreadyHandled
	}
	s.handled = true
	return Admitted
}

// #endregion handled

// #region executing
// Executing reports whether the corrective action protocol is running.
// External display/lock observers consult this as their suppression flag.
func (s *State) Executing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executing
}

// SetExecuting marks the protocol execution window. Only the arbiter calls
// this, and it guarantees the clear on every exit path.
func (s *State) SetExecuting(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executing = on
}

// #endregion executing

// #region armed
// Armed reports whether the given continuous detector currently believes its
// precondition holds. Idle has no arm phase and always reads false.
func (s *State) Armed(kind Kind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case KindProximity:
		return s.proxArmed
	case KindAmbientLight:
		return s.darkArmed
	}
	return false
}

// SetArmed records a continuous detector's armed belief. Arming is distinct
// from winning arbitration. Idle is ignored.
func (s *State) SetArmed(kind Kind, armed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case KindProximity:
		s.proxArmed = armed
	case KindAmbientLight:
		s.darkArmed = armed
	}
}

// AnyArmed reports whether any continuous detector is mid-countdown.
func (s *State) AnyArmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proxArmed || s.darkArmed
}

// #endregion armed

// #region idle-baseline
// IdleBaseline returns the last moment the display was observed interactive.
func (s *State) IdleBaseline() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idleBaseline
}

// TouchIdleBaseline records an interactive observation at now.
func (s *State) TouchIdleBaseline(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idleBaseline = now
}

// #endregion idle-baseline

// #region reset
// Reset starts a new episode: clears handled and armed flags, moves the idle
// baseline to now, and increments the epoch. The epoch increment is the only
// valid way to invalidate in-flight countdowns from the prior episode.
// Returns the new epoch.
func (s *State) Reset(now time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handled = false
	s.proxArmed = false
	s.darkArmed = false
	s.idleBaseline = now
	s.epoch++
	return s.epoch
}

// #endregion reset
