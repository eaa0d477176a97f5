package system

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/dash"
	"github.com/milk9111/portalarena/ecs"
	"github.com/milk9111/portalarena/ecs/component"
	"github.com/milk9111/portalarena/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementForce(t *testing.T) {
	cases := []struct {
		name  string
		in    component.Input
		yaw   float64
		speed float64
		want  mgl64.Vec3
	}{
		{"idle", component.Input{}, 0, 15, mgl64.Vec3{}},
		{"forward", component.Input{Forward: true}, 0, 15, mgl64.Vec3{0, 0, -15}},
		{"backward", component.Input{Backward: true}, 0, 15, mgl64.Vec3{0, 0, 15}},
		{"strafe_left", component.Input{Left: true}, 0, 15, mgl64.Vec3{-15, 0, 0}},
		{"opposites_cancel", component.Input{Forward: true, Backward: true}, 0, 15, mgl64.Vec3{}},
		{"cancel_one_axis", component.Input{Left: true, Right: true, Forward: true}, 0, 15, mgl64.Vec3{0, 0, -15}},
		{"quarter_turn", component.Input{Forward: true}, math.Pi / 2, 15, mgl64.Vec3{-15, 0, 0}},
		{"dash_speed", component.Input{Right: true}, 0, 50, mgl64.Vec3{50, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MovementForce(c.in, c.yaw, c.speed)
			for i := 0; i < 3; i++ {
				assert.InDelta(t, c.want[i], got[i], 1e-9, "axis %d", i)
			}
		})
	}
}

func TestMovementForceDiagonalIsNormalized(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, math.Pi / 4, -2.1} {
		got := MovementForce(component.Input{Forward: true, Right: true}, yaw, 15)
		assert.InDelta(t, 15, got.Len(), 1e-9)
		assert.Equal(t, 0.0, got.Y())
	}
}

func TestLocomotionUsesDashSpeed(t *testing.T) {
	cases := []struct {
		name    string
		dashing bool
		want    float64
	}{
		{"walking", false, 15},
		{"dashing", true, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			engine := physics.NewWorld(mgl64.Vec3{})
			w.SetTime(t0)

			player := addPlayer(t, w, engine, mgl64.Vec3{})
			require.NoError(t, ecs.Add(w, player, component.InputComponent, &component.Input{Right: true}))
			require.NoError(t, ecs.Add(w, player, component.PlayerComponent, &component.Player{MoveSpeed: 15, DashSpeed: 50}))
			d := &component.Dash{State: dash.New(dash.DefaultDuration, dash.DefaultCooldown)}
			if c.dashing {
				require.True(t, d.State.Request(t0))
			}
			require.NoError(t, ecs.Add(w, player, component.DashComponent, d))

			NewLocomotionSystem(engine).Update(w)
			engine.Step(1)

			// mass 1, no damping: one second of force F leaves velocity F.
			vel, _ := engine.Velocity(bodyOf(t, w, player))
			assert.InDelta(t, c.want, vel.X(), 1e-9)
			assert.InDelta(t, 0, vel.Z(), 1e-9)
		})
	}
}

func TestDashSystemExpiresPhases(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	d := &component.Dash{State: dash.New(dash.DefaultDuration, dash.DefaultCooldown)}
	require.True(t, d.State.Request(t0))
	require.NoError(t, ecs.Add(w, e, component.DashComponent, d))

	sys := NewDashSystem()

	w.SetTime(t0.Add(199 * time.Millisecond))
	sys.Update(w)
	assert.Equal(t, dash.Dashing, d.State.Phase())

	w.SetTime(t0.Add(200 * time.Millisecond))
	sys.Update(w)
	assert.Equal(t, dash.Cooldown, d.State.Phase())

	w.SetTime(t0.Add(1500 * time.Millisecond))
	sys.Update(w)
	assert.Equal(t, dash.Ready, d.State.Phase())
}
