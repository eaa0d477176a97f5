package entity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/scene"
)

// groundExtent is the drawn size of the ground plane; physically it is
// unbounded.
const groundExtent = 100.0

// NewGround adds the static y=0 plane.
func NewGround(engine physics.Engine, sc scene.Scene, c color.RGBA) physics.BodyID {
	body := engine.AddBody(physics.BodySpec{Shape: physics.Plane()})
	sc.Add(scene.Node{
		Kind:  scene.NodeGround,
		Size:  mgl64.Vec3{groundExtent, 0, groundExtent},
		Color: c,
	})
	return body
}

// NewWall adds a static box.
func NewWall(engine physics.Engine, sc scene.Scene, pos, halfExtents mgl64.Vec3, c color.RGBA) physics.BodyID {
	body := engine.AddBody(physics.BodySpec{Shape: physics.Box(halfExtents), Position: pos})
	sc.Add(scene.Node{
		Kind:     scene.NodeWall,
		Position: pos,
		Size:     halfExtents.Mul(2),
		Color:    c,
	})
	return body
}
