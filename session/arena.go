package session

import (
	"fmt"

	"github.com/milk9111/portalarena/dash"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/ecs/entity"
)

func (s *Session) buildArena() {
	entity.NewGround(s.engine, s.graph, s.cfg.GroundColor)
	for _, w := range s.cfg.Walls {
		entity.NewWall(s.engine, s.graph, w.Position, w.HalfExtents, s.cfg.WallColor)
	}
}

func (s *Session) spawnPlayer() error {
	e, err := entity.NewPlayer(s.world, s.engine, s.graph, entity.PlayerSpec{
		Position:        s.cfg.PlayerSpawn,
		Radius:          s.cfg.PlayerRadius,
		Mass:            s.cfg.PlayerMass,
		Damping:         s.cfg.PlayerDamping,
		Color:           s.cfg.PlayerColor,
		MoveSpeed:       s.cfg.MoveSpeed,
		DashSpeed:       s.cfg.DashSpeed,
		JumpSpeed:       s.cfg.JumpSpeed,
		LookSensitivity: s.cfg.LookSensitivity,
		DashDuration:    s.cfg.DashDuration,
		DashCooldown:    s.cfg.DashCooldown,
	})
	if err != nil {
		return fmt.Errorf("session: spawn %w", err)
	}
	pb, _ := ecs.Get(s.world, e, component.PhysicsBodyComponent)
	s.player = e
	s.playerBody = pb.Body
	return nil
}

// PlayerTransform returns the player's current logical pose.
func (s *Session) PlayerTransform() component.Transform {
	if tf, ok := ecs.Get(s.world, s.player, component.TransformComponent); ok {
		return *tf
	}
	return component.Transform{}
}

func (s *Session) DashPhase() dash.Phase {
	if d, ok := ecs.Get(s.world, s.player, component.DashComponent); ok {
		return d.State.Phase()
	}
	return dash.Ready
}

func (s *Session) Grounded() bool {
	j, ok := ecs.Get(s.world, s.player, component.JumperComponent)
	return ok && j.Grounded
}
