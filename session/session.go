// Package session owns one running arena: the ECS world, the physics engine,
// the scene, the portal registry and the spawned-object pool. Every method is
// meant to be called from the host's update goroutine.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/milk9111/portalarena/clock"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/system"
	"github.com/milk9111/portalarena/logging"
	"github.com/milk9111/portalarena/physics"
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/scene"
	"github.com/milk9111/portalarena/spawn"
	"go.uber.org/zap"
)

// Option configures a Session.
type Option func(*Session)

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = logging.OrNop(l) }
}

// WithClock replaces the wall clock, typically with a clock.Manual in tests.
func WithClock(c clock.Clock) Option {
	return func(s *Session) { s.clock = c }
}

func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithEventHook receives every event drained at the end of a tick, after it
// has been logged.
func WithEventHook(fn func(ecs.Event)) Option {
	return func(s *Session) { s.hook = fn }
}

type Session struct {
	id  string
	cfg Config
	log *zap.Logger

	clock clock.Clock
	rng   *rand.Rand
	hook  func(ecs.Event)

	world     *ecs.World
	engine    *physics.World
	graph     *scene.Graph
	portals   *portal.Registry
	pool      *spawn.Pool
	scheduler *ecs.Scheduler
	teleport  *system.TeleportSystem

	player      ecs.Entity
	playerBody  physics.BodyID
	portalNodes []scene.NodeID
	ticks       uint64
}

// New builds the arena, spawns the player and loads portal configuration 0.
func New(cfg Config, configs []portal.Configuration, opts ...Option) (*Session, error) {
	portals, err := portal.NewRegistry(configs)
	if err != nil {
		return nil, fmt.Errorf("session: load portals: %w", err)
	}

	s := &Session{
		id:      uuid.NewString(),
		cfg:     cfg,
		log:     zap.NewNop(),
		clock:   clock.NewSystem(),
		world:   ecs.NewWorld(),
		engine:  physics.NewWorld(mgl64.Vec3{0, cfg.Gravity, 0}),
		graph:   scene.NewGraph(),
		portals: portals,
		pool:    spawn.NewPool(cfg.PoolCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	s.log = s.log.With(zap.String("session", s.id))

	s.teleport = system.NewTeleportSystem(s.portals, s.engine, s.pool)
	s.teleport.PlayerLockout = cfg.PlayerLockout
	s.teleport.ObjectLockout = cfg.ObjectLockout

	s.scheduler = ecs.NewScheduler(
		system.NewDashSystem(),
		system.NewPortalLockoutSystem(s.portals),
		system.NewTTLSystem(s.graph),
		system.NewPhysicsSystem(s.engine, cfg.Step),
		system.NewLocomotionSystem(s.engine),
		s.teleport,
		system.NewRenderSyncSystem(s.graph),
	)

	s.buildArena()
	if err := s.spawnPlayer(); err != nil {
		return nil, err
	}
	s.rebuildPortalNodes()
	s.world.SetTime(s.clock.Now())
	system.NewRenderSyncSystem(s.graph).Update(s.world)

	s.log.Info("session started",
		zap.String("configuration", s.portals.Configuration().Name),
		zap.Int("configurations", s.portals.Len()),
	)
	return s, nil
}

// Tick runs one frame: timers, physics, locomotion, teleports, render sync.
func (s *Session) Tick() {
	s.ticks++
	s.world.SetTime(s.clock.Now())
	s.scheduler.Update(s.world)
	s.logEvents()
}

func (s *Session) logEvents() {
	for _, evt := range s.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventTeleported:
			tp, _ := evt.Data.(system.Teleport)
			s.log.Debug("teleported",
				zap.Stringer("entity", tp.Entity),
				zap.Uint32("portal", uint32(tp.Portal)),
				zap.Bool("player", tp.Player),
			)
		case ecs.EventPortalReady:
			id, _ := evt.Data.(portal.ID)
			s.log.Debug("portal ready", zap.Uint32("portal", uint32(id)))
		case ecs.EventExpired:
			s.log.Debug("effect expired", zap.Any("entity", evt.Data))
		}
		if s.hook != nil {
			s.hook(evt)
		}
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Ticks() uint64 {
	return s.ticks
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) World() *ecs.World {
	return s.world
}

func (s *Session) Engine() *physics.World {
	return s.engine
}

func (s *Session) Scene() *scene.Graph {
	return s.graph
}

func (s *Session) Portals() *portal.Registry {
	return s.portals
}

func (s *Session) Pool() *spawn.Pool {
	return s.pool
}

func (s *Session) Player() ecs.Entity {
	return s.player
}

// Now returns the frame time of the last tick.
func (s *Session) Now() time.Time {
	return s.world.Now()
}
