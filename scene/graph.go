package scene

import "github.com/go-gl/mathgl/mgl64"

var _ Scene = (*Graph)(nil)

// Graph is an in-memory scene graph. Iteration follows insertion order.
type Graph struct {
	nodes  map[NodeID]*Node
	order  []NodeID
	nextID NodeID
	camera Camera
}

func NewGraph() *Graph {
	return &Graph{nodes: make(map[NodeID]*Node)}
}

func (g *Graph) Add(n Node) NodeID {
	g.nextID++
	node := n
	g.nodes[g.nextID] = &node
	g.order = append(g.order, g.nextID)
	return g.nextID
}

func (g *Graph) Remove(id NodeID) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	delete(g.nodes, id)
	for i, other := range g.order {
		if other == id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func (g *Graph) Node(id NodeID) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (g *Graph) SetPose(id NodeID, pos mgl64.Vec3, yaw float64) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.Position = pos
	n.Yaw = yaw
	return true
}

func (g *Graph) Camera() Camera {
	return g.camera
}

func (g *Graph) SetCamera(c Camera) {
	g.camera = c
}

// Len returns the number of live nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Each calls fn for every live node in insertion order.
func (g *Graph) Each(fn func(id NodeID, n Node)) {
	for _, id := range g.order {
		fn(id, *g.nodes[id])
	}
}
