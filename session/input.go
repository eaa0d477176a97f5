package session

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/scene"
	"go.uber.org/zap"
)

// OnDirectionalIntent records a held or released movement key.
func (s *Session) OnDirectionalIntent(dir component.Direction, pressed bool) {
	in, ok := ecs.Get(s.world, s.player, component.InputComponent)
	if !ok {
		return
	}
	in.Set(dir, pressed)
}

// OnJumpRequest sets the vertical velocity when grounded. It reports whether
// the jump happened.
func (s *Session) OnJumpRequest() bool {
	j, ok := ecs.Get(s.world, s.player, component.JumperComponent)
	if !ok {
		return false
	}
	if !j.Grounded {
		s.log.Debug("jump denied", zap.String("reason", "airborne"))
		return false
	}
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent)
	if !ok {
		return false
	}

	vel, ok := s.engine.Velocity(s.playerBody)
	if !ok {
		return false
	}
	vel[1] = p.JumpSpeed
	s.engine.SetVelocity(s.playerBody, vel)
	j.Grounded = false
	return true
}

// OnDashRequest starts a dash unless one is running or cooling down, and
// drops a ring effect facing the camera direction.
func (s *Session) OnDashRequest() bool {
	d, ok := ecs.Get(s.world, s.player, component.DashComponent)
	if !ok {
		return false
	}
	now := s.clock.Now()
	if !d.State.Request(now) {
		s.log.Debug("dash denied", zap.Stringer("phase", d.State.Phase()))
		return false
	}

	tf := s.PlayerTransform()
	forward := scene.Camera{Yaw: tf.Yaw, Pitch: tf.Pitch}.Forward()
	s.spawnDashEffect(tf.Position, scene.Heading(forward), now.Add(d.State.Duration))
	return true
}

// OnLookDelta applies pointer motion: yaw around +Y, pitch clamped to
// straight up and straight down.
func (s *Session) OnLookDelta(dx, dy float64) {
	tf, ok := ecs.Get(s.world, s.player, component.TransformComponent)
	if !ok {
		return
	}
	sens := s.cfg.LookSensitivity
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent); ok {
		sens = p.LookSensitivity
	}
	tf.Yaw -= dx * sens
	tf.Pitch = mgl64.Clamp(tf.Pitch-dy*sens, -math.Pi/2, math.Pi/2)
}
