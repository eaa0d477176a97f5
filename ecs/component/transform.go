package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is the logical pose. Pitch is only meaningful for the player and
// only feeds the camera.
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

var TransformComponent = NewComponent[Transform]()
