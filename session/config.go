package session

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/dash"
	"github.com/milk9111/portalarena/ecs/system"
	"github.com/milk9111/portalarena/spawn"
	"golang.org/x/image/colornames"
)

// Wall is a static box of the arena.
type Wall struct {
	Position    mgl64.Vec3
	HalfExtents mgl64.Vec3
}

// Config holds the tunables of a session.
type Config struct {
	PlayerSpawn     mgl64.Vec3
	PlayerRadius    float64
	PlayerMass      float64
	PlayerDamping   float64
	PlayerColor     color.RGBA
	MoveSpeed       float64
	DashSpeed       float64
	JumpSpeed       float64
	LookSensitivity float64

	DashDuration    time.Duration
	DashCooldown    time.Duration
	DashEffectColor color.RGBA

	Gravity float64
	Step    float64

	PlayerLockout time.Duration
	ObjectLockout time.Duration

	PoolCapacity int
	CubeMin      float64
	CubeMax      float64
	CubeMass     float64
	CubeDamping  float64
	SpawnJitter  float64

	GroundColor color.RGBA
	WallColor   color.RGBA
	Walls       []Wall
}

func DefaultConfig() Config {
	return Config{
		PlayerSpawn:     mgl64.Vec3{0, 3, 0},
		PlayerRadius:    0.5,
		PlayerMass:      5,
		PlayerDamping:   0.7,
		PlayerColor:     colornames.White,
		MoveSpeed:       15,
		DashSpeed:       50,
		JumpSpeed:       7,
		LookSensitivity: 0.002,

		DashDuration:    dash.DefaultDuration,
		DashCooldown:    dash.DefaultCooldown,
		DashEffectColor: colornames.Lightskyblue,

		Gravity: -9.82,
		Step:    system.FixedStep,

		PlayerLockout: system.DefaultPlayerLockout,
		ObjectLockout: system.DefaultObjectLockout,

		PoolCapacity: spawn.DefaultCapacity,
		CubeMin:      0.5,
		CubeMax:      1.0,
		CubeMass:     1,
		CubeDamping:  0.1,
		SpawnJitter:  1,

		GroundColor: colornames.Darkslategray,
		WallColor:   colornames.Slategray,
		Walls: []Wall{
			{Position: mgl64.Vec3{15, 2.5, 0}, HalfExtents: mgl64.Vec3{0.5, 2.5, 10}},
			{Position: mgl64.Vec3{-15, 2.5, 0}, HalfExtents: mgl64.Vec3{0.5, 2.5, 10}},
			{Position: mgl64.Vec3{0, 2.5, 15}, HalfExtents: mgl64.Vec3{10, 2.5, 0.5}},
			{Position: mgl64.Vec3{0, 2.5, -15}, HalfExtents: mgl64.Vec3{10, 2.5, 0.5}},
		},
	}
}
