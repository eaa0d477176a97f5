package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/portal"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func vecPtr(x, y, z float64) *mgl64.Vec3 {
	v := mgl64.Vec3{x, y, z}
	return &v
}

func mustRegistry(t *testing.T, configs ...portal.Configuration) *portal.Registry {
	t.Helper()
	r, err := portal.NewRegistry(configs)
	require.NoError(t, err)
	return r
}

func addMover(t *testing.T, w *ecs.World, engine physics.Engine, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	body := engine.AddBody(physics.BodySpec{Shape: physics.Sphere(0.5), Mass: 1, Position: pos})
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: pos}))
	require.NoError(t, ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body}))
	return e
}

func addPlayer(t *testing.T, w *ecs.World, engine physics.Engine, pos mgl64.Vec3) ecs.Entity {
	t.Helper()
	e := addMover(t, w, engine, pos)
	require.NoError(t, ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}))
	return e
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tf, ok := ecs.Get(w, e, component.TransformComponent)
	require.True(t, ok)
	return tf
}

func bodyOf(t *testing.T, w *ecs.World, e ecs.Entity) physics.BodyID {
	t.Helper()
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	require.True(t, ok)
	return pb.Body
}
