package session

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/entity"
	"github.com/milk9111/portalarena/spawn"
	"go.uber.org/zap"
)

// SpawnObjectNear drops a random cube just above pos and tracks it in the
// pool. The oldest cube is released once the pool is full.
func (s *Session) SpawnObjectNear(pos mgl64.Vec3) ecs.Entity {
	entry, err := entity.NewCube(s.world, s.engine, s.graph, entity.CubeSpec{
		Position: pos.Add(mgl64.Vec3{s.jitter(), 1, s.jitter()}),
		Edge:     s.cfg.CubeMin + s.rng.Float64()*(s.cfg.CubeMax-s.cfg.CubeMin),
		Mass:     s.cfg.CubeMass,
		Damping:  s.cfg.CubeDamping,
		Color:    s.randomColor(),
	})
	if err != nil {
		s.log.Error("spawn cube", zap.Error(err))
		return 0
	}

	if evicted, ok := s.pool.Push(entry); ok {
		s.release(evicted)
	}
	return entry.Entity
}

// SpawnCube spawns near the player, as the UI button does.
func (s *Session) SpawnCube() ecs.Entity {
	return s.SpawnObjectNear(s.PlayerTransform().Position)
}

func (s *Session) release(entry spawn.Entry) {
	entity.Release(s.world, s.engine, s.graph, entry)
	s.log.Debug("evicted spawned object", zap.Stringer("entity", entry.Entity))
}

func (s *Session) jitter() float64 {
	return (s.rng.Float64()*2 - 1) * s.cfg.SpawnJitter
}

func (s *Session) randomColor() color.RGBA {
	v := s.rng.Uint32()
	return color.RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 0xff}
}

func (s *Session) spawnDashEffect(pos mgl64.Vec3, yaw float64, until time.Time) {
	if _, err := entity.NewDashEffect(s.world, s.graph, pos, yaw, s.cfg.PlayerRadius*2, s.cfg.DashEffectColor, until); err != nil {
		s.log.Error("spawn dash effect", zap.Error(err))
	}
}
