package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
)

var up = mgl64.Vec3{0, 1, 0}

// MovementForce turns held directions into a horizontal force. Forward is -Z
// at yaw 0; opposite keys cancel on their axis.
func MovementForce(in component.Input, yaw, speed float64) mgl64.Vec3 {
	var dir mgl64.Vec3
	if in.Right {
		dir[0]++
	}
	if in.Left {
		dir[0]--
	}
	if in.Backward {
		dir[2]++
	}
	if in.Forward {
		dir[2]--
	}
	if dir.Len() == 0 {
		return mgl64.Vec3{}
	}

	dir = mgl64.QuatRotate(yaw, up).Rotate(dir.Normalize())
	dir[1] = 0
	return dir.Mul(speed)
}

// LocomotionSystem applies the player's movement force for the next physics
// step.
type LocomotionSystem struct {
	engine physics.Engine
}

func NewLocomotionSystem(engine physics.Engine) *LocomotionSystem {
	return &LocomotionSystem{engine: engine}
}

func (ls *LocomotionSystem) Update(w *ecs.World) {
	if ls == nil || w == nil || ls.engine == nil {
		return
	}

	ecs.ForEach2(w, component.InputComponent, component.PlayerComponent, func(e ecs.Entity, in *component.Input, p *component.Player) {
		tf, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !ok {
			return
		}

		speed := p.MoveSpeed
		if d, ok := ecs.Get(w, e, component.DashComponent); ok && d.State.IsDashing() {
			speed = p.DashSpeed
		}

		force := MovementForce(*in, tf.Yaw, speed)
		if force.Len() == 0 {
			return
		}
		ls.engine.ApplyForce(pb.Body, force)
	})
}
