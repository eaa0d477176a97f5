package system

import (
	"time"

	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/spawn"
)

const (
	DefaultPlayerLockout = 1000 * time.Millisecond
	DefaultObjectLockout = 500 * time.Millisecond
)

// Teleport is the payload of an ecs.EventTeleported event.
type Teleport struct {
	Entity ecs.Entity
	Portal portal.ID
	Player bool
}

// TeleportSystem relocates the player and pooled objects that enter an
// active portal, then locks that portal out for everyone.
type TeleportSystem struct {
	portals *portal.Registry
	engine  physics.Engine
	pool    *spawn.Pool

	PlayerLockout time.Duration
	ObjectLockout time.Duration
}

func NewTeleportSystem(portals *portal.Registry, engine physics.Engine, pool *spawn.Pool) *TeleportSystem {
	return &TeleportSystem{
		portals:       portals,
		engine:        engine,
		pool:          pool,
		PlayerLockout: DefaultPlayerLockout,
		ObjectLockout: DefaultObjectLockout,
	}
}

func (ts *TeleportSystem) Update(w *ecs.World) {
	if ts == nil || w == nil || ts.portals == nil || ts.engine == nil {
		return
	}

	portals := ts.portals.Portals()
	if len(portals) == 0 {
		return
	}

	if player, ok := w.First(component.PlayerTagComponent.ID()); ok {
		ts.scan(w, portals, player, true)
	}
	if ts.pool == nil {
		return
	}
	for _, entry := range ts.pool.Entries() {
		ts.scan(w, portals, entry.Entity, false)
	}
}

// scan relocates e through the first active portal it is inside, in
// configuration order. At most one relocation happens per call.
func (ts *TeleportSystem) scan(w *ecs.World, portals []portal.Portal, e ecs.Entity, isPlayer bool) {
	tf, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return
	}

	pos := tf.Position
	for i := range portals {
		p := &portals[i]
		if !p.Active || !p.Contains(pos) {
			continue
		}

		tf.Position = p.Destination
		window := ts.ObjectLockout
		if isPlayer {
			tf.Yaw += p.DestinationRotation
			window = ts.PlayerLockout
		}
		ts.engine.SetPosition(pb.Body, p.Destination)
		p.Lock(w.Now(), window)

		w.Events().Push(ecs.Event{
			Type: ecs.EventTeleported,
			Data: Teleport{Entity: e, Portal: p.ID, Player: isPlayer},
		})
		return
	}
}
