package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var _ Engine = (*World)(nil)

type body struct {
	id             BodyID
	shape          Shape
	mass           float64
	invMass        float64
	pos            mgl64.Vec3
	vel            mgl64.Vec3
	force          mgl64.Vec3
	linearDamping  float64
	angularDamping float64
}

func (b *body) static() bool {
	return b.invMass == 0
}

// World is a small fixed-step 3D integrator: spheres, axis-aligned boxes and
// horizontal ground planes. Bodies do not rotate.
type World struct {
	gravity  mgl64.Vec3
	bodies   map[BodyID]*body
	order    []BodyID
	nextID   BodyID
	listener ContactListener
}

// NewWorld creates an empty world with the given gravity.
func NewWorld(gravity mgl64.Vec3) *World {
	return &World{
		gravity: gravity,
		bodies:  make(map[BodyID]*body),
	}
}

func (w *World) AddBody(spec BodySpec) BodyID {
	w.nextID++
	b := &body{
		id:             w.nextID,
		shape:          spec.Shape,
		mass:           spec.Mass,
		pos:            spec.Position,
		linearDamping:  clamp01(spec.LinearDamping),
		angularDamping: clamp01(spec.AngularDamping),
	}
	if spec.Mass > 0 && spec.Shape.Kind != ShapePlane {
		b.invMass = 1 / spec.Mass
	}
	w.bodies[b.id] = b
	w.order = append(w.order, b.id)
	return b.id
}

func (w *World) RemoveBody(id BodyID) {
	if _, ok := w.bodies[id]; !ok {
		return
	}
	delete(w.bodies, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) HasBody(id BodyID) bool {
	_, ok := w.bodies[id]
	return ok
}

// Len returns the number of bodies, static ones included.
func (w *World) Len() int {
	return len(w.bodies)
}

func (w *World) Position(id BodyID) (mgl64.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.pos, true
}

func (w *World) SetPosition(id BodyID, pos mgl64.Vec3) bool {
	b, ok := w.bodies[id]
	if !ok {
		return false
	}
	b.pos = pos
	return true
}

func (w *World) Velocity(id BodyID) (mgl64.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.vel, true
}

func (w *World) SetVelocity(id BodyID, vel mgl64.Vec3) bool {
	b, ok := w.bodies[id]
	if !ok || b.static() {
		return false
	}
	b.vel = vel
	return true
}

func (w *World) ApplyForce(id BodyID, force mgl64.Vec3) bool {
	b, ok := w.bodies[id]
	if !ok || b.static() {
		return false
	}
	b.force = b.force.Add(force)
	return true
}

func (w *World) SetContactListener(fn ContactListener) {
	w.listener = fn
}

func (w *World) Gravity() mgl64.Vec3 {
	return w.gravity
}

func (w *World) SetGravity(g mgl64.Vec3) {
	w.gravity = g
}

// Step integrates every dynamic body by dt, resolves overlaps and then
// notifies the contact listener. Forces are cleared afterwards.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, id := range w.order {
		b := w.bodies[id]
		if b.static() {
			continue
		}
		acc := w.gravity.Add(b.force.Mul(b.invMass))
		b.vel = b.vel.Add(acc.Mul(dt))
		if b.linearDamping > 0 {
			b.vel = b.vel.Mul(math.Pow(1-b.linearDamping, dt))
		}
		b.pos = b.pos.Add(b.vel.Mul(dt))
		b.force = mgl64.Vec3{}
	}

	contacts := w.resolve()
	if w.listener == nil {
		return
	}
	for _, c := range contacts {
		w.listener(c[0], c[1])
	}
}

func (w *World) resolve() [][2]BodyID {
	var contacts [][2]BodyID
	for i := 0; i < len(w.order); i++ {
		a := w.bodies[w.order[i]]
		for j := i + 1; j < len(w.order); j++ {
			b := w.bodies[w.order[j]]
			if a.static() && b.static() {
				continue
			}
			n, depth, ok := collide(a, b)
			if !ok {
				continue
			}
			separate(a, b, n, depth)
			contacts = append(contacts, [2]BodyID{a.id, b.id})
		}
	}
	return contacts
}

// separate pushes a and b apart along n (pointing from a to b) in proportion
// to their inverse masses and removes the approaching normal velocity.
func separate(a, b *body, n mgl64.Vec3, depth float64) {
	total := a.invMass + b.invMass
	if total == 0 {
		return
	}
	a.pos = a.pos.Sub(n.Mul(depth * a.invMass / total))
	b.pos = b.pos.Add(n.Mul(depth * b.invMass / total))

	vn := b.vel.Sub(a.vel).Dot(n)
	if vn >= 0 {
		return
	}
	j := -vn / total
	a.vel = a.vel.Sub(n.Mul(j * a.invMass))
	b.vel = b.vel.Add(n.Mul(j * b.invMass))
}

// collide returns the contact normal pointing from a to b and the
// penetration depth.
func collide(a, b *body) (mgl64.Vec3, float64, bool) {
	switch {
	case a.shape.Kind == ShapePlane && b.shape.Kind == ShapePlane:
		return mgl64.Vec3{}, 0, false
	case a.shape.Kind == ShapePlane:
		return collidePlane(a, b)
	case b.shape.Kind == ShapePlane:
		n, depth, ok := collidePlane(b, a)
		return n.Mul(-1), depth, ok
	case a.shape.Kind == ShapeSphere && b.shape.Kind == ShapeSphere:
		return collideSpheres(a, b)
	case a.shape.Kind == ShapeBox && b.shape.Kind == ShapeBox:
		return collideBoxes(a.pos, a.shape.HalfExtents, b.pos, b.shape.HalfExtents)
	case a.shape.Kind == ShapeBox:
		return collideBoxSphere(a, b)
	default:
		n, depth, ok := collideBoxSphere(b, a)
		return n.Mul(-1), depth, ok
	}
}

func collidePlane(plane, other *body) (mgl64.Vec3, float64, bool) {
	var bottom float64
	switch other.shape.Kind {
	case ShapeSphere:
		bottom = other.pos.Y() - other.shape.Radius
	case ShapeBox:
		bottom = other.pos.Y() - other.shape.HalfExtents.Y()
	default:
		return mgl64.Vec3{}, 0, false
	}
	depth := plane.pos.Y() - bottom
	if depth <= 0 {
		return mgl64.Vec3{}, 0, false
	}
	return mgl64.Vec3{0, 1, 0}, depth, true
}

func collideSpheres(a, b *body) (mgl64.Vec3, float64, bool) {
	delta := b.pos.Sub(a.pos)
	dist := delta.Len()
	radii := a.shape.Radius + b.shape.Radius
	if dist >= radii {
		return mgl64.Vec3{}, 0, false
	}
	if dist == 0 {
		return mgl64.Vec3{0, 1, 0}, radii, true
	}
	return delta.Mul(1 / dist), radii - dist, true
}

func collideBoxes(pa, ha, pb, hb mgl64.Vec3) (mgl64.Vec3, float64, bool) {
	delta := pb.Sub(pa)
	best := math.Inf(1)
	var n mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		overlap := ha[axis] + hb[axis] - math.Abs(delta[axis])
		if overlap <= 0 {
			return mgl64.Vec3{}, 0, false
		}
		if overlap < best {
			best = overlap
			n = mgl64.Vec3{}
			if delta[axis] < 0 {
				n[axis] = -1
			} else {
				n[axis] = 1
			}
		}
	}
	return n, best, true
}

func collideBoxSphere(box, sphere *body) (mgl64.Vec3, float64, bool) {
	lo := box.pos.Sub(box.shape.HalfExtents)
	hi := box.pos.Add(box.shape.HalfExtents)
	var closest mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		closest[axis] = math.Max(lo[axis], math.Min(sphere.pos[axis], hi[axis]))
	}
	delta := sphere.pos.Sub(closest)
	dist := delta.Len()
	r := sphere.shape.Radius
	if dist >= r {
		return mgl64.Vec3{}, 0, false
	}
	if dist == 0 {
		// center inside the box: fall back to box-vs-box on the sphere bounds
		return collideBoxes(box.pos, box.shape.HalfExtents, sphere.pos, mgl64.Vec3{r, r, r})
	}
	return delta.Mul(1 / dist), r - dist, true
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
