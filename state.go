package emptystate

import "time"

// State is the per-host placeholder state: current visibility, the vertical
// offset and fade duration applied on the last rebuild, and the load status.
// One State is created alongside each Wrapper and lives exactly as long as
// it; only the controller mutates it, during rebuild and invalidate.
type State struct {
	visible        bool
	verticalOffset float32
	fadeDuration   time.Duration
	status         Status
}

func newState() *State {
	return &State{status: StatusNone}
}

// Visible reports whether the placeholder is currently shown.
func (s *State) Visible() bool {
	return s.visible
}

// VerticalOffset returns the offset applied to the placeholder content on
// the last rebuild.
func (s *State) VerticalOffset() float32 {
	return s.verticalOffset
}

// FadeDuration returns the fade-in duration applied on the last rebuild.
func (s *State) FadeDuration() time.Duration {
	return s.fadeDuration
}

// Status returns the load status attached to the host.
func (s *State) Status() Status {
	return s.status
}
