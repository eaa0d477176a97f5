package system

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/scene"
)

// TTLSystem destroys entities whose TTL has been reached, removing their
// render node first.
type TTLSystem struct {
	scene scene.Scene
}

func NewTTLSystem(sc scene.Scene) *TTLSystem {
	return &TTLSystem{scene: sc}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	now := w.Now()
	ecs.ForEach(w, component.TTLComponent, func(e ecs.Entity, ttl *component.TTL) {
		if now.Before(ttl.Until) {
			return
		}
		if rn, ok := ecs.Get(w, e, component.RenderNodeComponent); ok && s.scene != nil {
			s.scene.Remove(rn.Node)
		}
		w.DestroyEntity(e)
		w.Events().Push(ecs.Event{Type: ecs.EventExpired, Data: e})
	})
}
