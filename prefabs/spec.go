package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/portalarena/portal"
	"github.com/milk9111/portalarena/session"
	"gopkg.in/yaml.v3"
)

const (
	ArenaFile   = "arena.yaml"
	PortalsFile = "portals.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec parses already loaded bytes, as the hot reload path has them.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

type Vec3Spec [3]float64

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

type PlayerSpec struct {
	Spawn           *Vec3Spec  `yaml:"spawn"`
	Radius          float64    `yaml:"radius"`
	Mass            float64    `yaml:"mass"`
	Damping         *float64   `yaml:"damping"`
	MoveSpeed       float64    `yaml:"move_speed"`
	DashSpeed       float64    `yaml:"dash_speed"`
	JumpSpeed       float64    `yaml:"jump_speed"`
	LookSensitivity float64    `yaml:"look_sensitivity"`
	Color           *YAMLColor `yaml:"color"`
}

type DashSpec struct {
	Duration    time.Duration `yaml:"duration"`
	Cooldown    time.Duration `yaml:"cooldown"`
	EffectColor *YAMLColor    `yaml:"effect_color"`
}

type PhysicsSpec struct {
	Gravity float64 `yaml:"gravity"`
	StepHz  float64 `yaml:"step_hz"`
}

type LockoutSpec struct {
	Player time.Duration `yaml:"player"`
	Object time.Duration `yaml:"object"`
}

type PoolSpec struct {
	Capacity int      `yaml:"capacity"`
	CubeMin  float64  `yaml:"cube_min"`
	CubeMax  float64  `yaml:"cube_max"`
	Mass     float64  `yaml:"mass"`
	Damping  *float64 `yaml:"damping"`
	Jitter   *float64 `yaml:"jitter"`
}

type WallSpec struct {
	Position    Vec3Spec `yaml:"position"`
	HalfExtents Vec3Spec `yaml:"half_extents"`
}

// ArenaSpec is the session tuning file. Omitted fields keep their defaults.
type ArenaSpec struct {
	Name        string      `yaml:"name"`
	Player      PlayerSpec  `yaml:"player"`
	Dash        DashSpec    `yaml:"dash"`
	Physics     PhysicsSpec `yaml:"physics"`
	Lockout     LockoutSpec `yaml:"lockout"`
	Pool        PoolSpec    `yaml:"pool"`
	GroundColor *YAMLColor  `yaml:"ground_color"`
	WallColor   *YAMLColor  `yaml:"wall_color"`
	Walls       []WallSpec  `yaml:"walls"`
}

func LoadArenaSpec() (ArenaSpec, error) {
	return LoadSpec[ArenaSpec](ArenaFile)
}

// Config overlays the arena file onto session.DefaultConfig.
func (s ArenaSpec) Config() (session.Config, error) {
	cfg := session.DefaultConfig()

	p := s.Player
	if p.Spawn != nil {
		cfg.PlayerSpawn = p.Spawn.Vec3()
	}
	setPositive(&cfg.PlayerRadius, p.Radius)
	setPositive(&cfg.PlayerMass, p.Mass)
	setPositive(&cfg.MoveSpeed, p.MoveSpeed)
	setPositive(&cfg.DashSpeed, p.DashSpeed)
	setPositive(&cfg.JumpSpeed, p.JumpSpeed)
	setPositive(&cfg.LookSensitivity, p.LookSensitivity)
	if p.Damping != nil {
		cfg.PlayerDamping = *p.Damping
	}
	if p.Color != nil {
		cfg.PlayerColor = p.Color.Color
	}

	if s.Dash.Duration > 0 {
		cfg.DashDuration = s.Dash.Duration
	}
	if s.Dash.Cooldown > 0 {
		cfg.DashCooldown = s.Dash.Cooldown
	}
	if s.Dash.EffectColor != nil {
		cfg.DashEffectColor = s.Dash.EffectColor.Color
	}

	if s.Physics.Gravity != 0 {
		cfg.Gravity = s.Physics.Gravity
	}
	if s.Physics.StepHz > 0 {
		cfg.Step = 1 / s.Physics.StepHz
	}

	if s.Lockout.Player > 0 {
		cfg.PlayerLockout = s.Lockout.Player
	}
	if s.Lockout.Object > 0 {
		cfg.ObjectLockout = s.Lockout.Object
	}

	pool := s.Pool
	if pool.Capacity < 0 {
		return session.Config{}, fmt.Errorf("prefabs: %s: pool capacity %d is negative", ArenaFile, pool.Capacity)
	}
	if pool.Capacity > 0 {
		cfg.PoolCapacity = pool.Capacity
	}
	setPositive(&cfg.CubeMin, pool.CubeMin)
	setPositive(&cfg.CubeMax, pool.CubeMax)
	setPositive(&cfg.CubeMass, pool.Mass)
	if pool.Damping != nil {
		cfg.CubeDamping = *pool.Damping
	}
	if pool.Jitter != nil {
		cfg.SpawnJitter = *pool.Jitter
	}
	if cfg.CubeMax < cfg.CubeMin {
		return session.Config{}, fmt.Errorf("prefabs: %s: cube_max %.2f below cube_min %.2f", ArenaFile, cfg.CubeMax, cfg.CubeMin)
	}

	if s.GroundColor != nil {
		cfg.GroundColor = s.GroundColor.Color
	}
	if s.WallColor != nil {
		cfg.WallColor = s.WallColor.Color
	}
	if s.Walls != nil {
		cfg.Walls = make([]session.Wall, 0, len(s.Walls))
		for _, w := range s.Walls {
			cfg.Walls = append(cfg.Walls, session.Wall{Position: w.Position.Vec3(), HalfExtents: w.HalfExtents.Vec3()})
		}
	}

	return cfg, nil
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

type EndpointSpec struct {
	Position    *Vec3Spec `yaml:"position"`
	RotationDeg float64   `yaml:"rotation_deg"`
}

type ConfigurationSpec struct {
	Name      string         `yaml:"name"`
	Colors    []YAMLColor    `yaml:"colors"`
	Radius    float64        `yaml:"radius"`
	Endpoints []EndpointSpec `yaml:"endpoints"`
}

type PortalsSpec struct {
	Configurations []ConfigurationSpec `yaml:"configurations"`
}

func LoadPortalsSpec() (PortalsSpec, error) {
	return LoadSpec[PortalsSpec](PortalsFile)
}

// Build converts and validates every configuration.
func (s PortalsSpec) Build() ([]portal.Configuration, error) {
	if len(s.Configurations) == 0 {
		return nil, fmt.Errorf("prefabs: %s: %w", PortalsFile, portal.ErrNoConfigurations)
	}

	out := make([]portal.Configuration, 0, len(s.Configurations))
	for i, cs := range s.Configurations {
		cfg := portal.Configuration{
			Name:      cs.Name,
			Colors:    defaultColors,
			Radius:    cs.Radius,
			Endpoints: make([]portal.Endpoint, 0, len(cs.Endpoints)),
		}
		if cfg.Name == "" {
			cfg.Name = "configuration-" + strconv.Itoa(i)
		}
		if len(cs.Colors) > 2 {
			return nil, fmt.Errorf("prefabs: %s: configuration %q has %d colors, want at most 2", PortalsFile, cfg.Name, len(cs.Colors))
		}
		for j, c := range cs.Colors {
			cfg.Colors[j] = c.Color
		}
		for _, ep := range cs.Endpoints {
			var pos *mgl64.Vec3
			if ep.Position != nil {
				v := ep.Position.Vec3()
				pos = &v
			}
			cfg.Endpoints = append(cfg.Endpoints, portal.Endpoint{
				Position: pos,
				Rotation: mgl64.DegToRad(ep.RotationDeg),
			})
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("prefabs: %s: configuration %q: %w", PortalsFile, cfg.Name, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

var defaultColors = [2]color.RGBA{
	{R: 0x00, G: 0xaa, B: 0xff, A: 0xff},
	{R: 0xff, G: 0x55, B: 0x00, A: 0xff},
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	Color color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.RGBA{R: r, G: g, B: b, A: a}
	return nil
}
