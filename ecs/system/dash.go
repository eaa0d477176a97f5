package system

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
)

// DashSystem expires dash and cooldown phases against the frame time.
type DashSystem struct{}

func NewDashSystem() *DashSystem {
	return &DashSystem{}
}

func (s *DashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Now()
	ecs.ForEach(w, component.DashComponent, func(_ ecs.Entity, d *component.Dash) {
		d.State.Advance(now)
	})
}
