package entity

import (
	"fmt"
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/dash"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/scene"
)

type PlayerSpec struct {
	Position mgl64.Vec3
	Radius   float64
	Mass     float64
	Damping  float64
	Color    color.RGBA

	MoveSpeed       float64
	DashSpeed       float64
	JumpSpeed       float64
	LookSensitivity float64
	DashDuration    time.Duration
	DashCooldown    time.Duration
}

// NewPlayer creates the player sphere in the physics engine and the scene
// and the entity that links them.
func NewPlayer(w *ecs.World, engine physics.Engine, sc scene.Scene, spec PlayerSpec) (ecs.Entity, error) {
	shape := physics.Sphere(spec.Radius)
	body := engine.AddBody(physics.BodySpec{
		Shape:          shape,
		Mass:           spec.Mass,
		Position:       spec.Position,
		LinearDamping:  spec.Damping,
		AngularDamping: spec.Damping,
	})
	d := 2 * spec.Radius
	node := sc.Add(scene.Node{
		Kind:     scene.NodeSphere,
		Position: spec.Position,
		Size:     mgl64.Vec3{d, d, d},
		Color:    spec.Color,
	})

	e := w.CreateEntity()
	steps := []error{
		ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{}),
		ecs.Add(w, e, component.TransformComponent, &component.Transform{Position: spec.Position}),
		ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Body: body, Shape: shape}),
		ecs.Add(w, e, component.RenderNodeComponent, &component.RenderNode{Node: node}),
		ecs.Add(w, e, component.InputComponent, &component.Input{}),
		ecs.Add(w, e, component.JumperComponent, &component.Jumper{}),
		ecs.Add(w, e, component.DashComponent, &component.Dash{State: dash.New(spec.DashDuration, spec.DashCooldown)}),
		ecs.Add(w, e, component.PlayerComponent, &component.Player{
			MoveSpeed:       spec.MoveSpeed,
			DashSpeed:       spec.DashSpeed,
			JumpSpeed:       spec.JumpSpeed,
			LookSensitivity: spec.LookSensitivity,
		}),
	}
	for _, err := range steps {
		if err != nil {
			engine.RemoveBody(body)
			sc.Remove(node)
			w.DestroyEntity(e)
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}
