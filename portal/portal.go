package portal

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNoConfigurations = errors.New("portal: no configurations")
	ErrOddEndpoints     = errors.New("portal: odd number of endpoints")
	ErrMissingPosition  = errors.New("portal: endpoint has no position")
	ErrInvalidRadius    = errors.New("portal: trigger radius must be a non-negative number")
)

// DefaultRadius is the trigger radius used when a configuration leaves it
// unset.
const DefaultRadius = 1.0

// ID addresses a portal inside a Registry. Ids are never reused, so an id
// from a discarded configuration resolves to nothing.
type ID uint32

// Endpoint is one side of a portal pair. Rotation is the yaw of the ring and
// the heading offset applied to anything arriving through its partner.
type Endpoint struct {
	Position *mgl64.Vec3
	Rotation float64
}

// Configuration is an ordered list of endpoints consumed two at a time.
type Configuration struct {
	Name      string
	Colors    [2]color.RGBA
	Radius    float64
	Endpoints []Endpoint
}

// Validate reports why c cannot be loaded.
func (c Configuration) Validate() error {
	if len(c.Endpoints)%2 != 0 {
		return ErrOddEndpoints
	}
	for _, ep := range c.Endpoints {
		if ep.Position == nil {
			return ErrMissingPosition
		}
	}
	if c.Radius < 0 || math.IsNaN(c.Radius) {
		return ErrInvalidRadius
	}
	return nil
}

func (c Configuration) radius() float64 {
	if c.Radius == 0 {
		return DefaultRadius
	}
	return c.Radius
}

// Portal is one live trigger of the current configuration.
type Portal struct {
	ID     ID
	Pair   ID
	Config int

	Position mgl64.Vec3
	Facing   float64
	Radius   float64
	Color    color.RGBA

	Destination         mgl64.Vec3
	DestinationRotation float64

	Active       bool
	LockoutUntil time.Time
}

// Contains reports whether p is strictly inside the trigger radius.
func (p *Portal) Contains(pos mgl64.Vec3) bool {
	return pos.Sub(p.Position).Len() < p.Radius
}

// Lock deactivates the portal until now+window.
func (p *Portal) Lock(now time.Time, window time.Duration) {
	p.Active = false
	p.LockoutUntil = now.Add(window)
}

// Release reactivates the portal once its lockout has elapsed. It reports
// whether the portal changed state.
func (p *Portal) Release(now time.Time) bool {
	if p.Active || now.Before(p.LockoutUntil) {
		return false
	}
	p.Active = true
	p.LockoutUntil = time.Time{}
	return true
}
