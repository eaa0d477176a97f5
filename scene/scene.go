package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeID identifies a renderable node. Zero is never issued.
type NodeID uint32

func (id NodeID) Valid() bool {
	return id > 0
}

type NodeKind int

const (
	NodeGround NodeKind = iota
	NodeWall
	NodeSphere
	NodeBox
	// NodeRing is a flat ring facing along Yaw (portals, dash effects).
	NodeRing
)

// Node is a renderable with a pose. Size is the full extent of the node.
type Node struct {
	Kind     NodeKind
	Position mgl64.Vec3
	Yaw      float64
	Size     mgl64.Vec3
	Color    color.RGBA
	Hidden   bool
}

// Camera is the first-person rig: a yaw parent with a pitch child.
type Camera struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
}

// Forward projects the camera-relative forward direction (-Z) into world
// space.
func (c Camera) Forward() mgl64.Vec3 {
	q := mgl64.QuatRotate(c.Yaw, mgl64.Vec3{0, 1, 0}).Mul(mgl64.QuatRotate(c.Pitch, mgl64.Vec3{1, 0, 0}))
	return q.Rotate(mgl64.Vec3{0, 0, -1})
}

// Heading returns the yaw that faces along dir on the horizontal plane.
func Heading(dir mgl64.Vec3) float64 {
	return math.Atan2(-dir.X(), -dir.Z())
}

// Scene is the rendering collaborator used by the game logic.
type Scene interface {
	Add(n Node) NodeID
	Remove(id NodeID)
	Node(id NodeID) (Node, bool)
	SetPose(id NodeID, pos mgl64.Vec3, yaw float64) bool
	Camera() Camera
	SetCamera(c Camera)
}
