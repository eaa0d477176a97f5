package entity

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/scene"
	"github.com/milk9111/portalarena/spawn"
)

type CubeSpec struct {
	Position mgl64.Vec3
	Edge     float64
	Mass     float64
	Damping  float64
	Color    color.RGBA
}

// NewCube creates a spawned cube and returns the pool entry that owns its
// resources.
func NewCube(w *ecs.World, engine physics.Engine, sc scene.Scene, spec CubeSpec) (spawn.Entry, error) {
	half := spec.Edge / 2
	shape := physics.Box(mgl64.Vec3{half, half, half})
	body := engine.AddBody(physics.BodySpec{
		Shape:          shape,
		Mass:           spec.Mass,
		Position:       spec.Position,
		LinearDamping:  spec.Damping,
		AngularDamping: spec.Damping,
	})
	node := sc.Add(scene.Node{
		Kind:     scene.NodeBox,
		Position: spec.Position,
		Size:     mgl64.Vec3{spec.Edge, spec.Edge, spec.Edge},
		Color:    spec.Color,
	})

	e := w.CreateEntity()
	entry := spawn.Entry{Entity: e, Body: body, Node: node}
	steps := []error{
		ecs.Add(w, e, component.SpawnedTagComponent, &component.SpawnedTag{}),
		ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: spec.Position}),
		ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Shape: shape}),
		ecs.Add(w, e, component.RenderNodeComponent, &component.RenderNode{Node: node}),
	}
	for _, err := range steps {
		if err != nil {
			Release(w, engine, sc, entry)
			return spawn.Entry{}, fmt.Errorf("cube: %w", err)
		}
	}
	return entry, nil
}

// Release frees everything a pool entry holds. Stale handles are ignored.
func Release(w *ecs.World, engine physics.Engine, sc scene.Scene, entry spawn.Entry) {
	engine.RemoveBody(entry.Body)
	sc.Remove(entry.Node)
	w.DestroyEntity(entry.Entity)
}
