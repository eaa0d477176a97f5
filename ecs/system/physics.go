package system

import (
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
)

// FixedStep is the simulation timestep in seconds.
const FixedStep = 1.0 / 60.0

// PhysicsSystem advances the physics engine by a fixed step and copies body
// positions back into transforms. Contacts reported during the step ground
// any Jumper whose body was involved.
type PhysicsSystem struct {
	engine physics.Engine
	step   float64

	touched map[physics.BodyID]struct{}
}

func NewPhysicsSystem(engine physics.Engine, step float64) *PhysicsSystem {
	if step <= 0 {
		step = FixedStep
	}
	ps := &PhysicsSystem{
		engine:  engine,
		step:    step,
		touched: make(map[physics.BodyID]struct{}),
	}
	engine.SetContactListener(ps.onContact)
	return ps
}

func (ps *PhysicsSystem) onContact(a, b physics.BodyID) {
	ps.touched[a] = struct{}{}
	ps.touched[b] = struct{}{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.engine == nil {
		return
	}

	clear(ps.touched)
	ps.engine.Step(ps.step)

	ps.syncTransforms(w)
	ps.flushContacts(w)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.TransformComponent, component.PhysicsBodyComponent, func(_ ecs.Entity, tf *component.Transform, pb *component.PhysicsBody) {
		if pos, ok := ps.engine.Position(pb.Body); ok {
			tf.Position = pos
		}
	})
}

func (ps *PhysicsSystem) flushContacts(w *ecs.World) {
	if len(ps.touched) == 0 {
		return
	}
	ecs.ForEach2(w, component.JumperComponent, component.PhysicsBodyComponent, func(_ ecs.Entity, j *component.Jumper, pb *component.PhysicsBody) {
		if _, ok := ps.touched[pb.Body]; ok {
			j.Grounded = true
		}
	})
}
