// Package dash implements the timed dash ability: Ready, Dashing, Cooldown.
//
// Both phases are tracked as expiry timestamps measured from the dash start,
// so the machine stays correct under dropped frames or variable timesteps.
package dash

import "time"

const (
	DefaultDuration = 200 * time.Millisecond
	DefaultCooldown = 1500 * time.Millisecond
)

type Phase int

const (
	Ready Phase = iota
	Dashing
	Cooldown
)

func (p Phase) String() string {
	switch p {
	case Dashing:
		return "dashing"
	case Cooldown:
		return "cooldown"
	default:
		return "ready"
	}
}

// State is the per-player dash state.
type State struct {
	Duration time.Duration
	Cooldown time.Duration

	dashing       bool
	coolingDown   bool
	dashUntil     time.Time
	cooldownUntil time.Time
}

// New returns a Ready state with the given timings.
func New(duration, cooldown time.Duration) State {
	return State{Duration: duration, Cooldown: cooldown}
}

// Request starts a dash at now. It is a no-op returning false while a dash
// or its cooldown is still running.
func (s *State) Request(now time.Time) bool {
	s.Advance(now)
	if s.dashing || s.coolingDown {
		return false
	}
	s.dashing = true
	s.coolingDown = true
	s.dashUntil = now.Add(s.Duration)
	s.cooldownUntil = now.Add(s.Cooldown)
	return true
}

// Advance clears each flag whose expiry has been reached.
func (s *State) Advance(now time.Time) {
	if s.dashing && !now.Before(s.dashUntil) {
		s.dashing = false
	}
	if s.coolingDown && !now.Before(s.cooldownUntil) {
		s.coolingDown = false
	}
}

func (s State) IsDashing() bool {
	return s.dashing
}

func (s State) CooldownActive() bool {
	return s.coolingDown
}

func (s State) Phase() Phase {
	switch {
	case s.dashing:
		return Dashing
	case s.coolingDown:
		return Cooldown
	default:
		return Ready
	}
}

// DashUntil returns when the current dash ends; zero when never dashed.
func (s State) DashUntil() time.Time {
	return s.dashUntil
}
