package system

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/portal"
)

// PortalLockoutSystem reactivates portals whose lockout has elapsed.
type PortalLockoutSystem struct {
	portals *portal.Registry
}

func NewPortalLockoutSystem(portals *portal.Registry) *PortalLockoutSystem {
	return &PortalLockoutSystem{portals: portals}
}

func (s *PortalLockoutSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.portals == nil {
		return
	}

	now := w.Now()
	portals := s.portals.Portals()
	for i := range portals {
		if portals[i].Release(now) {
			w.Events().Push(ecs.Event{Type: ecs.EventPortalReady, Data: portals[i].ID})
		}
	}
}
