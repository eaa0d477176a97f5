package dash

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashLifecycle(t *testing.T) {
	start := time.Unix(100, 0)
	at := func(ms int) time.Time { return start.Add(time.Duration(ms) * time.Millisecond) }

	s := New(DefaultDuration, DefaultCooldown)
	require.Equal(t, Ready, s.Phase())
	require.True(t, s.Request(at(0)))

	steps := []struct {
		ms       int
		dashing  bool
		cooldown bool
		phase    Phase
	}{
		{0, true, true, Dashing},
		{199, true, true, Dashing},
		{200, false, true, Cooldown},
		{1499, false, true, Cooldown},
		{1500, false, false, Ready},
	}
	for _, step := range steps {
		s.Advance(at(step.ms))
		assert.Equal(t, step.dashing, s.IsDashing(), "dashing at %dms", step.ms)
		assert.Equal(t, step.cooldown, s.CooldownActive(), "cooldown at %dms", step.ms)
		assert.Equal(t, step.phase, s.Phase(), "phase at %dms", step.ms)
	}
}

func TestDashRequestDuringDashOrCooldownIsIgnored(t *testing.T) {
	start := time.Unix(100, 0)
	s := New(DefaultDuration, DefaultCooldown)
	require.True(t, s.Request(start))

	cases := []struct {
		name string
		at   time.Duration
	}{
		{"while_dashing", 100 * time.Millisecond},
		{"inside_cooldown", 300 * time.Millisecond},
		{"just_before_ready", 1499 * time.Millisecond},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			before := s
			assert.False(t, s.Request(start.Add(c.at)))
			assert.Equal(t, before.dashUntil, s.dashUntil)
			assert.Equal(t, before.cooldownUntil, s.cooldownUntil)
		})
	}

	assert.True(t, s.Request(start.Add(1500*time.Millisecond)))
	assert.True(t, s.IsDashing())
	assert.Equal(t, start.Add(1700*time.Millisecond), s.DashUntil())
}

func TestDashSkippedFrames(t *testing.T) {
	start := time.Unix(0, 0)
	s := New(DefaultDuration, DefaultCooldown)
	require.True(t, s.Request(start))

	// a single late tick clears both phases at once
	s.Advance(start.Add(5 * time.Second))
	assert.Equal(t, Ready, s.Phase())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "dashing", Dashing.String())
	assert.Equal(t, "cooldown", Cooldown.String())
}
