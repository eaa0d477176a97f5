package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyID identifies a rigid body owned by an Engine. Zero is never issued.
type BodyID uint32

// Valid reports whether the id could refer to a body.
func (id BodyID) Valid() bool {
	return id > 0
}

type ShapeKind int

const (
	ShapeSphere ShapeKind = iota
	ShapeBox
	// ShapePlane is an infinite horizontal plane at the body's Y with an upward
	// normal. Planes are always static.
	ShapePlane
)

// Shape describes a collider. Boxes are axis aligned.
type Shape struct {
	Kind        ShapeKind
	Radius      float64
	HalfExtents mgl64.Vec3
}

func Sphere(radius float64) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func Box(halfExtents mgl64.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

func Plane() Shape {
	return Shape{Kind: ShapePlane}
}

// BodySpec configures a new body. A zero mass makes the body static.
type BodySpec struct {
	Shape          Shape
	Mass           float64
	Position       mgl64.Vec3
	LinearDamping  float64
	AngularDamping float64
}

// ContactListener is notified once per touching pair after each step.
type ContactListener func(a, b BodyID)

// Engine is the rigid-body collaborator driven by the game logic. Game code
// only holds BodyIDs; every call with an unknown id is a no-op.
type Engine interface {
	AddBody(spec BodySpec) BodyID
	RemoveBody(id BodyID)
	HasBody(id BodyID) bool

	Position(id BodyID) (mgl64.Vec3, bool)
	// SetPosition teleports the body. Velocity is left untouched.
	SetPosition(id BodyID, pos mgl64.Vec3) bool
	Velocity(id BodyID) (mgl64.Vec3, bool)
	SetVelocity(id BodyID, vel mgl64.Vec3) bool
	// ApplyForce accumulates a force for the next Step.
	ApplyForce(id BodyID, force mgl64.Vec3) bool

	SetContactListener(fn ContactListener)

	Gravity() mgl64.Vec3
	SetGravity(g mgl64.Vec3)

	Step(dt float64)
}
