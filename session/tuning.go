package session

import (
	"math"

	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"go.uber.org/zap"
)

// ApplyTuning takes over the tunables of cfg that can change while running:
// speeds, look sensitivity, dash timings, lockouts, gravity magnitude and
// cube parameters. Geometry and pool capacity only apply to new sessions.
func (s *Session) ApplyTuning(cfg Config) {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent); ok {
		p.MoveSpeed = cfg.MoveSpeed
		p.DashSpeed = cfg.DashSpeed
		p.JumpSpeed = cfg.JumpSpeed
		p.LookSensitivity = cfg.LookSensitivity
	}
	if d, ok := ecs.Get(s.world, s.player, component.DashComponent); ok {
		d.State.Duration = cfg.DashDuration
		d.State.Cooldown = cfg.DashCooldown
	}
	s.teleport.PlayerLockout = cfg.PlayerLockout
	s.teleport.ObjectLockout = cfg.ObjectLockout

	// keep the current direction of gravity
	g := s.engine.Gravity()
	g[1] = math.Copysign(math.Abs(cfg.Gravity), g[1])
	s.engine.SetGravity(g)

	geometry := s.cfg
	s.cfg = cfg
	s.cfg.PlayerSpawn = geometry.PlayerSpawn
	s.cfg.PlayerRadius = geometry.PlayerRadius
	s.cfg.PlayerMass = geometry.PlayerMass
	s.cfg.PlayerDamping = geometry.PlayerDamping
	s.cfg.Step = geometry.Step
	s.cfg.PoolCapacity = geometry.PoolCapacity
	s.cfg.Walls = geometry.Walls

	s.log.Info("tuning applied",
		zap.Float64("move_speed", cfg.MoveSpeed),
		zap.Float64("dash_speed", cfg.DashSpeed),
		zap.Duration("dash", cfg.DashDuration),
		zap.Duration("cooldown", cfg.DashCooldown),
	)
}
