package factory

import (
	"image/color"
	"math"
	"time"

	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/emberforge/cinder/affectors"
	"github.com/emberforge/cinder/archetypes"
	"github.com/emberforge/cinder/assets"
	"github.com/emberforge/cinder/components"
	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/emitters"
	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/leveldata"
	"github.com/emberforge/cinder/particles"
	"github.com/emberforge/cinder/tags"
)

// CreateSpace creates the resolv space the arena walls live in.
func CreateSpace(e *ecs.ECS, width, height int) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	components.Space.Set(entry, &components.SpaceData{
		Space: resolv.NewSpace(width, height, 16, 16),
	})
	return entry
}

// CreateWalls spawns one wall entity per arena rect and registers each with
// the space.
func CreateWalls(e *ecs.ECS, space *resolv.Space, walls []leveldata.WallRect) {
	for _, w := range walls {
		obj := resolv.NewObject(w.X, w.Y, w.W, w.H, tags.ResolvSolid)
		space.Add(obj)

		entry := archetypes.Wall.Spawn(e)
		components.Object.Set(entry, &components.ObjectData{Object: obj})
	}
}

// CreateEffect spawns a particle effect entity for the given preset,
// anchored at anchor. Sparks collide with the walls in space.
func CreateEffect(e *ecs.ECS, preset cfg.Preset, anchor gamemath.Vec2, space *resolv.Space) *donburi.Entry {
	conf := cfg.Effects[preset]

	sys := particles.NewSystem(assets.ParticleTexture())
	u := emitters.NewUniversal(conf.EmissionRate, time.Second)
	u.Lifetime = emitters.UniformDuration(
		time.Duration(conf.MinLifetime*float64(time.Second)),
		time.Duration(conf.MaxLifetime*float64(time.Second)),
	)
	u.Position = emitters.PointInCircle(anchor, conf.SpreadRadius)
	u.Velocity = velocityDistribution(preset, conf)

	configurePreset(sys, u, preset, space)

	entry := archetypes.Effect.Spawn(e)
	components.Effect.Set(entry, &components.EffectData{
		System:      sys,
		Emitter:     u,
		Preset:      preset,
		EmitterConn: sys.AddEmitter(u.Emit, particles.Unlimited),
		Additive:    conf.Additive,
	})

	mover := &components.MoverData{Emitter: u, Origin: anchor, Radius: conf.SpreadRadius}
	if preset == cfg.PresetFire {
		// The torch sweeps back and forth under its smoke column.
		mover.Seq = gween.NewSequence(
			gween.New(0, 120, 3, ease.InOutSine),
			gween.New(120, -120, 6, ease.InOutSine),
			gween.New(-120, 0, 3, ease.InOutSine),
		)
	}
	components.Mover.Set(entry, mover)

	return entry
}

// velocityDistribution combines a direction cone with a uniform speed range.
func velocityDistribution(preset cfg.Preset, conf cfg.EffectConfig) emitters.Distribution[gamemath.Vec2] {
	speed := emitters.UniformFloat(conf.MinSpeed, conf.MaxSpeed)

	var dir emitters.Distribution[gamemath.Vec2]
	switch preset {
	case cfg.PresetSparks:
		// Full circle burst.
		dir = emitters.Deflect(gamemath.Vec2{X: 0, Y: -1}, 2*math.Pi)
	default:
		// Upward cone for fire and smoke.
		dir = emitters.Deflect(gamemath.Vec2{X: 0, Y: -1}, math.Pi/5)
	}

	return func() gamemath.Vec2 {
		return dir().Mul(speed())
	}
}

func configurePreset(sys *particles.System, u *emitters.Universal, preset cfg.Preset, space *resolv.Space) {
	switch preset {
	case cfg.PresetFire:
		u.Color = fireColor()
		u.Scale = emitters.Constant(gamemath.Vec2{X: 0.7, Y: 0.7})
		sys.AddAffector(affectors.Force(gamemath.Vec2{X: 0, Y: -60}), particles.Unlimited)
		sys.AddAffector(affectors.Grow(gamemath.Vec2{X: -0.35, Y: -0.35}), particles.Unlimited)
		sys.AddAffector(affectors.Fade(0.1, 0.6), particles.Unlimited)

	case cfg.PresetSmoke:
		u.Color = emitters.Constant(cfg.DimGray)
		u.Rotation = emitters.UniformFloat(0, 2*math.Pi)
		u.RotationSpeed = emitters.UniformFloat(-0.5, 0.5)
		sys.AddAffector(affectors.Force(gamemath.Vec2{X: 12, Y: -8}), particles.Unlimited) // drift with the wind
		sys.AddAffector(affectors.Grow(gamemath.Vec2{X: 0.6, Y: 0.6}), particles.Unlimited)
		sys.AddAffector(affectors.Fade(0.25, 0.5), particles.Unlimited)

	case cfg.PresetSparks:
		u.Color = sparkColor()
		u.Scale = emitters.Constant(gamemath.Vec2{X: 0.25, Y: 0.25})
		u.RotationSpeed = emitters.UniformFloat(-8, 8)
		sys.AddAffector(affectors.Force(gamemath.Vec2{X: 0, Y: 420}), particles.Unlimited) // gravity
		sys.AddAffector(Bounce(space, 0.55), particles.Unlimited)
		sys.AddAffector(affectors.Fade(0, 0.3), particles.Unlimited)
	}
}

// Bounce reflects particles off solid arena geometry, losing energy per
// bounce. A single probe object is moved around the space for the checks, so
// particle count does not grow the space.
func Bounce(space *resolv.Space, restitution float64) particles.Affector {
	probe := resolv.NewObject(0, 0, 2, 2)
	space.Add(probe)

	return func(p *particles.Particle, dt time.Duration) {
		probe.X, probe.Y = p.Position.X-1, p.Position.Y-1
		probe.Update()

		step := dt.Seconds()
		if check := probe.Check(p.Velocity.X*step, 0, tags.ResolvSolid); check != nil {
			p.Velocity.X = -p.Velocity.X * restitution
		}
		if check := probe.Check(0, p.Velocity.Y*step, tags.ResolvSolid); check != nil {
			p.Velocity.Y = -p.Velocity.Y * restitution
			p.RotationSpeed *= restitution
		}
	}
}

func fireColor() emitters.Distribution[color.RGBA] {
	base := emitters.UniformFloat(0, 1)
	return func() color.RGBA {
		t := base()
		return color.RGBA{
			R: 0xff,
			G: uint8(gamemath.Lerp(120, 220, t)),
			B: uint8(gamemath.Lerp(20, 60, t)),
			A: 0xff,
		}
	}
}

func sparkColor() emitters.Distribution[color.RGBA] {
	base := emitters.UniformFloat(0.7, 1)
	return func() color.RGBA {
		t := base()
		v := uint8(t * 0xff)
		return color.RGBA{R: v, G: v, B: uint8(t * 0xb0), A: 0xff}
	}
}
