// Package particles implements a CPU-simulated particle system rendered as a
// single batched triangle mesh. A System owns the particle population;
// pluggable emitter and affector callbacks drive it, and Draw submits one
// quad per live particle through ebiten's DrawTriangles.
package particles

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/emberforge/cinder/gamemath"
)

// Emitter injects new particles into the system. It is invoked once per
// Update with the frame delta and may call adder.AddParticle any number of
// times. It must not register or remove emitters on the system it runs in.
type Emitter func(adder ParticleAdder, dt time.Duration)

// Affector mutates a living particle. It is invoked once per particle per
// Update, in registration order, after the particle's kinematics have been
// advanced. It must not register or remove affectors on the system it runs in.
type Affector func(p *Particle, dt time.Duration)

// ParticleAdder accepts freshly emitted particles. A System is its own
// ParticleAdder; emitters receive it so they can stay decoupled from the
// rest of the System API.
type ParticleAdder interface {
	AddParticle(p Particle)
}

// System simulates a population of particles and renders them as textured
// quads. The bound texture is read-only and externally owned; it must
// outlive the System.
//
// A System is not safe for concurrent use. Update and Draw are meant to be
// called from the game loop, once each per frame, on a single goroutine.
type System struct {
	particles []Particle
	emitters  registry[Emitter]
	affectors registry[Affector]

	texture     *ebiten.Image
	textureRect image.Rectangle

	// Cached quad mesh, rebuilt lazily in Draw. Any mutation of the
	// particle population marks it stale.
	vertices     []ebiten.Vertex
	indices      []uint16
	needsRebuild bool
}

// NewSystem binds the full bounds of texture.
func NewSystem(texture *ebiten.Image) *System {
	return NewSystemWithRect(texture, texture.Bounds())
}

// NewSystemWithRect binds a sub-rectangle of texture, in pixel coordinates.
func NewSystemWithRect(texture *ebiten.Image, rect image.Rectangle) *System {
	return &System{
		texture:      texture,
		textureRect:  rect,
		needsRebuild: true,
	}
}

// AddParticle appends a fully specified particle. Typically called from an
// emitter through the ParticleAdder it receives.
func (s *System) AddParticle(p Particle) {
	s.particles = append(s.particles, p)
	s.needsRebuild = true
}

// ClearParticles removes every particle.
func (s *System) ClearParticles() {
	s.particles = s.particles[:0]
	s.needsRebuild = true
}

// ParticleCount returns the number of live particles.
func (s *System) ParticleCount() int {
	return len(s.particles)
}

// AddEmitter registers an emitter that is removed automatically once
// timeUntilRemoval has elapsed, or kept until disconnected if it is
// Unlimited. The returned Connection revokes the registration early.
func (s *System) AddEmitter(emit Emitter, timeUntilRemoval time.Duration) Connection {
	return s.emitters.add(emit, timeUntilRemoval)
}

// ClearEmitters removes every emitter. Outstanding Connections become inert.
func (s *System) ClearEmitters() {
	s.emitters.clear()
}

// AddAffector registers an affector; lifetime rules match AddEmitter.
func (s *System) AddAffector(affect Affector, timeUntilRemoval time.Duration) Connection {
	return s.affectors.add(affect, timeUntilRemoval)
}

// ClearAffectors removes every affector. Outstanding Connections become inert.
func (s *System) ClearAffectors() {
	s.affectors.clear()
}

// Update advances the simulation by dt: emitters fire, every particle moves
// and ages exactly once, dead particles are compacted out, and survivors run
// through the affector chain.
func (s *System) Update(dt time.Duration) {
	s.needsRebuild = true

	s.emitters.runAndExpire(dt, func(emit Emitter) {
		emit(s, dt)
	})

	// Advance, affect and compact in one forward pass. Survivors are copied
	// down to the write cursor, so relative order is preserved.
	seconds := dt.Seconds()
	w := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.PassedLifetime += dt
		p.Position = p.Position.Add(p.Velocity.Mul(seconds))
		p.Rotation += p.RotationSpeed * seconds

		if !p.Alive() {
			continue
		}
		for j := range s.affectors.entries {
			s.affectors.entries[j].fn(p, dt)
		}
		s.particles[w] = s.particles[i]
		w++
	}
	s.particles = s.particles[:w]

	// Affector expiry counts down once per frame, after the whole particle
	// pass, not once per particle.
	s.affectors.expire(dt)
}

// Draw submits the particle mesh and the bound texture to target in a single
// DrawTriangles call, rebuilding the mesh first if the population changed
// since the last Draw. A nil opts uses default blending.
func (s *System) Draw(target *ebiten.Image, opts *ebiten.DrawTrianglesOptions) {
	s.ensureMesh()
	if opts == nil {
		opts = &ebiten.DrawTrianglesOptions{}
	}
	target.DrawTriangles(s.vertices, s.indices, s.texture, opts)
}

func (s *System) ensureMesh() {
	if s.needsRebuild {
		s.rebuildMesh()
		s.needsRebuild = false
	}
}

// rebuildMesh refills the vertex and index buffers from the current
// particle population. The slices keep their capacity across rebuilds.
func (s *System) rebuildMesh() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]

	// Corner offsets around the particle origin, derived from half the
	// texture rect's pixel size via the rotate-90° operation so that
	// non-square rects stay consistent under rotation.
	half := gamemath.Vec2{
		X: float64(s.textureRect.Dx()) / 2,
		Y: float64(s.textureRect.Dy()) / 2,
	}
	offsets := [4]gamemath.Vec2{
		half.Neg(),
		half.Perp(),
		half,
		half.Perp().Neg(),
	}

	// Texture coordinates at the rect corners: top-left, top-right,
	// bottom-right, bottom-left.
	left := float32(s.textureRect.Min.X)
	right := float32(s.textureRect.Max.X)
	top := float32(s.textureRect.Min.Y)
	bottom := float32(s.textureRect.Max.Y)
	srcs := [4][2]float32{
		{left, top},
		{right, top},
		{right, bottom},
		{left, bottom},
	}

	for i := range s.particles {
		p := &s.particles[i]

		cr := float32(p.Color.R) / 0xff
		cg := float32(p.Color.G) / 0xff
		cb := float32(p.Color.B) / 0xff
		ca := float32(p.Color.A) / 0xff

		var geo ebiten.GeoM
		geo.Scale(p.Scale.X, p.Scale.Y)
		geo.Rotate(p.Rotation)
		geo.Translate(p.Position.X, p.Position.Y)

		base := uint16(len(s.vertices))
		for c := 0; c < 4; c++ {
			x, y := geo.Apply(offsets[c].X, offsets[c].Y)
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX: float32(x), DstY: float32(y),
				SrcX: srcs[c][0], SrcY: srcs[c][1],
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
			})
		}
		s.indices = append(s.indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}
}
