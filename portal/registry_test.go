package portal

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(x, y, z float64) *mgl64.Vec3 {
	v := mgl64.Vec3{x, y, z}
	return &v
}

func testConfigs() []Configuration {
	return []Configuration{
		{
			Name:   "corridor",
			Colors: [2]color.RGBA{{R: 0x00, G: 0xaa, B: 0xff, A: 0xff}, {R: 0xff, G: 0x55, B: 0x00, A: 0xff}},
			Endpoints: []Endpoint{
				{Position: vec(-10, 2, 0), Rotation: math.Pi},
				{Position: vec(0, 2, 10), Rotation: math.Pi},
			},
		},
		{
			Name: "skyline",
			Endpoints: []Endpoint{
				{Position: vec(-5, 2, -5), Rotation: math.Pi / 2},
				{Position: vec(-5, 10, -5), Rotation: -math.Pi / 2},
				{Position: vec(8, 2, 8)},
				{Position: vec(-8, 2, 8)},
			},
		},
	}
}

func TestNewRegistryRejectsMalformedConfigurations(t *testing.T) {
	cases := []struct {
		name    string
		configs []Configuration
		want    error
	}{
		{"empty", nil, ErrNoConfigurations},
		{"odd_endpoints", []Configuration{{Endpoints: []Endpoint{{Position: vec(0, 0, 0)}}}}, ErrOddEndpoints},
		{"missing_destination", []Configuration{{Endpoints: []Endpoint{{Position: vec(0, 0, 0)}, {}}}}, ErrMissingPosition},
		{"negative_radius", []Configuration{{Radius: -1}}, ErrInvalidRadius},
		{"nan_radius", []Configuration{{Radius: math.NaN()}}, ErrInvalidRadius},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := NewRegistry(c.configs)
			require.ErrorIs(t, err, c.want)
			assert.Nil(t, r)
		})
	}
}

func TestRegistryBuildsLinkedPairs(t *testing.T) {
	r, err := NewRegistry(testConfigs())
	require.NoError(t, err)
	require.Equal(t, 0, r.Current())

	portals := r.Portals()
	require.Len(t, portals, 2)
	a, b := portals[0], portals[1]

	assert.Equal(t, b.ID, a.Pair)
	assert.Equal(t, a.ID, b.Pair)
	assert.Equal(t, mgl64.Vec3{-10, 2, 0}, a.Position)
	assert.Equal(t, b.Position, a.Destination)
	assert.Equal(t, a.Position, b.Destination)
	assert.Equal(t, math.Pi, a.DestinationRotation)
	assert.Equal(t, DefaultRadius, a.Radius)
	assert.Equal(t, uint8(0xaa), a.Color.G)
	assert.Equal(t, uint8(0x55), b.Color.G)
	assert.True(t, a.Active)
	assert.True(t, b.Active)
}

func TestRegistryLoadReplacesEveryPortal(t *testing.T) {
	r, err := NewRegistry(testConfigs())
	require.NoError(t, err)

	old := append([]Portal(nil), r.Portals()...)
	r.Load(1)

	require.Equal(t, 1, r.Current())
	require.Len(t, r.Portals(), 4)
	for _, p := range old {
		_, ok := r.Portal(p.ID)
		assert.False(t, ok, "portal %d from configuration 0 still reachable", p.ID)
	}
	for _, p := range r.Portals() {
		assert.Equal(t, 1, p.Config)
		got, ok := r.Portal(p.ID)
		require.True(t, ok)
		assert.Equal(t, p.Position, got.Position)
	}
}

func TestRegistryIndexWraps(t *testing.T) {
	r, err := NewRegistry(testConfigs())
	require.NoError(t, err)

	assert.Equal(t, 1, r.Next())
	assert.Equal(t, 0, r.Next())
	r.Load(5)
	assert.Equal(t, 1, r.Current())
	r.Load(-1)
	assert.Equal(t, 1, r.Current())
}

func TestRegistryPortalsLockIndependently(t *testing.T) {
	r, err := NewRegistry(testConfigs())
	require.NoError(t, err)
	now := time.Unix(0, 0)

	a := &r.Portals()[0]
	a.Lock(now, time.Second)

	b, ok := r.Portal(a.Pair)
	require.True(t, ok)
	assert.False(t, a.Active)
	assert.True(t, b.Active)

	assert.False(t, a.Release(now.Add(999*time.Millisecond)))
	assert.False(t, a.Active)
	assert.True(t, a.Release(now.Add(time.Second)))
	assert.True(t, a.Active)
	assert.True(t, a.LockoutUntil.IsZero())
}

func TestRegistryReplace(t *testing.T) {
	r, err := NewRegistry(testConfigs())
	require.NoError(t, err)
	r.Load(1)

	err = r.Replace([]Configuration{{Endpoints: []Endpoint{{Position: vec(1, 1, 1)}}}})
	require.ErrorIs(t, err, ErrOddEndpoints)
	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.Portals(), 4)

	only := testConfigs()[:1]
	require.NoError(t, r.Replace(only))
	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 0, r.Current())
	assert.Equal(t, "corridor", r.Configuration().Name)
}

func TestPortalContains(t *testing.T) {
	p := Portal{Position: mgl64.Vec3{0, 2, 0}, Radius: 1}
	assert.True(t, p.Contains(mgl64.Vec3{0.5, 2, 0}))
	assert.False(t, p.Contains(mgl64.Vec3{1, 2, 0}))
}
