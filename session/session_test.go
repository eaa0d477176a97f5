package session

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/clock"
	"github.com/milk9111/portalarena/dash"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/scene"
	"github.com/milk9111/portalarena/spawn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var start = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const frame = 16 * time.Millisecond

func vecPtr(x, y, z float64) *mgl64.Vec3 {
	v := mgl64.Vec3{x, y, z}
	return &v
}

func testConfigs() []portal.Configuration {
	return []portal.Configuration{
		{
			Name: "corridor",
			Endpoints: []portal.Endpoint{
				{Position: vecPtr(-10, 2, 0), Rotation: math.Pi},
				{Position: vecPtr(0, 2, 10), Rotation: math.Pi},
			},
		},
		{
			Name: "skyline",
			Endpoints: []portal.Endpoint{
				{Position: vecPtr(-5, 2, -5), Rotation: math.Pi / 2},
				{Position: vecPtr(-5, 10, -5), Rotation: -math.Pi / 2},
			},
		},
	}
}

func newTestSession(t *testing.T) (*Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(start)
	s, err := New(DefaultConfig(), testConfigs(),
		WithLogger(zaptest.NewLogger(t)),
		WithClock(clk),
		WithRand(rand.New(rand.NewPCG(1, 2))),
	)
	require.NoError(t, err)
	return s, clk
}

func step(s *Session, clk *clock.Manual, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(frame)
		s.Tick()
	}
}

func movePlayer(t *testing.T, s *Session, pos mgl64.Vec3) {
	t.Helper()
	tf, ok := ecs.Get(s.World(), s.Player(), component.TransformComponent)
	require.True(t, ok)
	tf.Position = pos
	require.True(t, s.Engine().SetPosition(s.playerBody, pos))
}

func TestNewBuildsArena(t *testing.T) {
	s, _ := newTestSession(t)

	assert.NotEmpty(t, s.ID())
	assert.Equal(t, mgl64.Vec3{0, 3, 0}, s.PlayerTransform().Position)
	assert.Equal(t, 0, s.Portals().Current())

	// ground, four walls, player, two portal rings
	assert.Equal(t, 8, s.Scene().Len())
	// ground, four walls, player
	assert.Equal(t, 6, s.Engine().Len())
	assert.Equal(t, mgl64.Vec3{0, 3, 0}, s.Scene().Camera().Position)
}

func TestNewRejectsBadConfigurations(t *testing.T) {
	_, err := New(DefaultConfig(), nil)
	assert.ErrorIs(t, err, portal.ErrNoConfigurations)

	_, err = New(DefaultConfig(), []portal.Configuration{{Endpoints: []portal.Endpoint{{Position: vecPtr(0, 0, 0)}}}})
	assert.ErrorIs(t, err, portal.ErrOddEndpoints)
}

func TestSpawnPoolEvictsOldest(t *testing.T) {
	s, _ := newTestSession(t)

	var spawned []ecs.Entity
	for i := 0; i < spawn.DefaultCapacity+1; i++ {
		spawned = append(spawned, s.SpawnCube())
	}

	require.Equal(t, spawn.DefaultCapacity, s.Pool().Len())
	first := spawned[0]
	assert.False(t, s.World().IsAlive(first))
	assert.True(t, s.World().IsAlive(spawned[1]))
	assert.Equal(t, spawned[1], s.Pool().Entries()[0].Entity)
	assert.Equal(t, spawned[spawn.DefaultCapacity], s.Pool().Entries()[spawn.DefaultCapacity-1].Entity)

	// static arena + player + 30 cubes
	assert.Equal(t, 6+spawn.DefaultCapacity, s.Engine().Len())
	assert.Equal(t, 8+spawn.DefaultCapacity, s.Scene().Len())
	assert.Len(t, s.World().Query(component.SpawnedTagComponent.ID()), spawn.DefaultCapacity)
}

func TestSpawnObjectNearGeometry(t *testing.T) {
	s, _ := newTestSession(t)
	origin := mgl64.Vec3{4, 2, -3}

	for i := 0; i < 20; i++ {
		e := s.SpawnObjectNear(origin)
		tf, ok := ecs.Get(s.World(), e, component.TransformComponent)
		require.True(t, ok)
		assert.InDelta(t, origin.X(), tf.Position.X(), 1)
		assert.InDelta(t, origin.Z(), tf.Position.Z(), 1)
		assert.Equal(t, origin.Y()+1, tf.Position.Y())

		pb, _ := ecs.Get(s.World(), e, component.PhysicsBodyComponent)
		edge := pb.Shape.HalfExtents.X() * 2
		assert.GreaterOrEqual(t, edge, 0.5)
		assert.Less(t, edge, 1.0)
	}
}

func TestAdvanceToNextPortalConfiguration(t *testing.T) {
	s, _ := newTestSession(t)
	oldPortals := append([]portal.Portal(nil), s.Portals().Portals()...)
	oldNodes := append([]scene.NodeID(nil), s.portalNodes...)

	idx := s.AdvanceToNextPortalConfiguration()

	assert.Equal(t, 1, idx)
	for _, p := range oldPortals {
		_, ok := s.Portals().Portal(p.ID)
		assert.False(t, ok, "portal %d from the previous configuration", p.ID)
	}
	for _, id := range oldNodes {
		_, ok := s.Scene().Node(id)
		assert.False(t, ok)
	}
	require.Len(t, s.portalNodes, 2)
	n, ok := s.Scene().Node(s.portalNodes[1])
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{-5, 10, -5}, n.Position)

	assert.Equal(t, 0, s.AdvanceToNextPortalConfiguration(), "wraps around")
}

func TestTickTeleportsPlayer(t *testing.T) {
	s, clk := newTestSession(t)
	movePlayer(t, s, mgl64.Vec3{-10, 2, 0})

	step(s, clk, 1)

	tf := s.PlayerTransform()
	assert.Equal(t, mgl64.Vec3{0, 2, 10}, tf.Position)
	assert.InDelta(t, math.Pi, tf.Yaw, 1e-12)
	pos, _ := s.Engine().Position(s.playerBody)
	assert.Equal(t, mgl64.Vec3{0, 2, 10}, pos)
	assert.Equal(t, mgl64.Vec3{0, 2, 10}, s.Scene().Camera().Position)

	entry := s.Portals().Portals()[0]
	assert.False(t, entry.Active)
	assert.Equal(t, clk.Now().Add(time.Second), entry.LockoutUntil)
}

func TestJumpNeedsGround(t *testing.T) {
	s, clk := newTestSession(t)

	assert.False(t, s.OnJumpRequest(), "spawned in the air")

	for i := 0; i < 200 && !s.Grounded(); i++ {
		step(s, clk, 1)
	}
	require.True(t, s.Grounded())

	require.True(t, s.OnJumpRequest())
	vel, _ := s.Engine().Velocity(s.playerBody)
	assert.Equal(t, 7.0, vel.Y())
	assert.False(t, s.Grounded())
	assert.False(t, s.OnJumpRequest(), "no double jump")
}

func TestDashRequests(t *testing.T) {
	s, clk := newTestSession(t)
	nodes := s.Scene().Len()

	require.True(t, s.OnDashRequest())
	assert.Equal(t, dash.Dashing, s.DashPhase())
	assert.Equal(t, nodes+1, s.Scene().Len(), "dash ring added")

	clk.Advance(100 * time.Millisecond)
	assert.False(t, s.OnDashRequest())

	clk.Advance(100 * time.Millisecond)
	s.Tick()
	assert.Equal(t, dash.Cooldown, s.DashPhase())
	assert.Equal(t, nodes, s.Scene().Len(), "dash ring expired")

	clk.Set(start.Add(300 * time.Millisecond))
	assert.False(t, s.OnDashRequest())

	clk.Set(start.Add(1500 * time.Millisecond))
	assert.True(t, s.OnDashRequest())
}

func TestDirectionalIntentMovesPlayer(t *testing.T) {
	s, clk := newTestSession(t)
	s.OnDirectionalIntent(component.DirectionForward, true)
	step(s, clk, 30)

	tf := s.PlayerTransform()
	assert.Less(t, tf.Position.Z(), 0.0)
	assert.InDelta(t, 0, tf.Position.X(), 1e-9)

	s.OnDirectionalIntent(component.DirectionForward, false)
	in, _ := ecs.Get(s.World(), s.Player(), component.InputComponent)
	assert.Equal(t, component.Input{}, *in)
}

func TestLookDeltaClampsPitch(t *testing.T) {
	s, _ := newTestSession(t)

	s.OnLookDelta(100, 0)
	assert.InDelta(t, -0.2, s.PlayerTransform().Yaw, 1e-12)

	s.OnLookDelta(0, -10000)
	assert.Equal(t, math.Pi/2, s.PlayerTransform().Pitch)
	s.OnLookDelta(0, 10000)
	assert.Equal(t, -math.Pi/2, s.PlayerTransform().Pitch)
}

func TestToggleGravityDirection(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, 9.82, s.ToggleGravityDirection())
	assert.Equal(t, -9.82, s.ToggleGravityDirection())
}

func TestReplacePortalConfigurations(t *testing.T) {
	s, _ := newTestSession(t)
	before := s.Portals().Portals()[0].ID

	err := s.ReplacePortalConfigurations([]portal.Configuration{{Endpoints: []portal.Endpoint{{}}}})
	require.ErrorIs(t, err, portal.ErrOddEndpoints)
	_, ok := s.Portals().Portal(before)
	assert.True(t, ok, "rejected reload keeps the portals")

	single := testConfigs()[1:]
	require.NoError(t, s.ReplacePortalConfigurations(single))
	assert.Equal(t, 0, s.Portals().Current())
	assert.Equal(t, "skyline", s.Portals().Configuration().Name)
	_, ok = s.Portals().Portal(before)
	assert.False(t, ok)
}

func TestApplyTuningKeepsGravityDirection(t *testing.T) {
	s, _ := newTestSession(t)
	s.ToggleGravityDirection()

	cfg := DefaultConfig()
	cfg.Gravity = -5
	cfg.MoveSpeed = 20
	cfg.DashDuration = 300 * time.Millisecond
	cfg.PlayerSpawn = mgl64.Vec3{9, 9, 9}
	s.ApplyTuning(cfg)

	assert.Equal(t, 5.0, s.Engine().Gravity().Y())
	p, _ := ecs.Get(s.World(), s.Player(), component.PlayerComponent)
	assert.Equal(t, 20.0, p.MoveSpeed)
	d, _ := ecs.Get(s.World(), s.Player(), component.DashComponent)
	assert.Equal(t, 300*time.Millisecond, d.State.Duration)
	assert.Equal(t, mgl64.Vec3{0, 3, 0}, s.Config().PlayerSpawn)
}

func TestTickSurvivesEvictedObjects(t *testing.T) {
	s, clk := newTestSession(t)
	for i := 0; i < 40; i++ {
		s.SpawnObjectNear(mgl64.Vec3{-10, 1, 0})
	}
	assert.NotPanics(t, func() { step(s, clk, 5) })
	assert.Equal(t, spawn.DefaultCapacity, s.Pool().Len())
}

func TestEventHookSeesTeleport(t *testing.T) {
	clk := clock.NewManual(start)
	var got []ecs.Event
	s, err := New(DefaultConfig(), testConfigs(),
		WithClock(clk),
		WithEventHook(func(evt ecs.Event) { got = append(got, evt) }),
	)
	require.NoError(t, err)
	movePlayer(t, s, mgl64.Vec3{-10, 2, 0})

	step(s, clk, 1)

	require.Len(t, got, 1)
	assert.Equal(t, ecs.EventTeleported, got[0].Type)
	assert.Zero(t, s.World().Events().Len())
}
