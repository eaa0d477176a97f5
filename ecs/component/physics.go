package component

import "github.com/milk9111/portalarena/physics"

// PhysicsBody links an entity to its body in the physics engine. The engine
// owns the body; the entity only holds the handle.
type PhysicsBody struct {
	Body  physics.BodyID
	Shape physics.Shape
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
