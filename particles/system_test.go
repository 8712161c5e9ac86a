package particles

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/emberforge/cinder/gamemath"
)

// testSystem builds a System without a texture; mesh rebuilds only read the
// texture rect, so simulation and geometry are fully testable headless.
func testSystem(rectW, rectH int) *System {
	return NewSystemWithRect(nil, image.Rect(0, 0, rectW, rectH))
}

func livingParticle(lifetime time.Duration) Particle {
	return NewParticle(lifetime)
}

func TestUpdate_Kinematics(t *testing.T) {
	s := testSystem(8, 8)

	p := NewParticle(10 * time.Second)
	p.Position = gamemath.Vec2{X: 100, Y: 50}
	p.Velocity = gamemath.Vec2{X: 10, Y: -20}
	p.Rotation = 1
	p.RotationSpeed = 0.5
	s.AddParticle(p)

	s.Update(500 * time.Millisecond)

	require.Equal(t, 1, s.ParticleCount())
	got := s.particles[0]
	require.InDelta(t, 105, got.Position.X, 1e-9)
	require.InDelta(t, 40, got.Position.Y, 1e-9)
	require.InDelta(t, 1.25, got.Rotation, 1e-9)
	require.Equal(t, 500*time.Millisecond, got.PassedLifetime)
}

func TestUpdate_DeathBoundary(t *testing.T) {
	// A particle whose passed lifetime reaches exactly its total lifetime is
	// dead: no affector runs on it and it is compacted out.
	s := testSystem(8, 8)
	s.AddParticle(NewParticle(time.Second))

	affected := 0
	s.AddAffector(func(p *Particle, dt time.Duration) {
		affected++
	}, Unlimited)

	s.Update(time.Second)

	require.Equal(t, 0, s.ParticleCount())
	require.Equal(t, 0, affected)
}

func TestUpdate_CompactionPreservesOrder(t *testing.T) {
	s := testSystem(8, 8)

	// Alternate doomed and surviving particles; Rotation doubles as a tag.
	lifetimes := []time.Duration{
		time.Millisecond, // dies
		time.Minute,      // survives
		time.Millisecond, // dies
		time.Minute,      // survives
		time.Minute,      // survives
		time.Millisecond, // dies
	}
	for i, lt := range lifetimes {
		p := NewParticle(lt)
		p.Rotation = float64(i)
		s.AddParticle(p)
	}

	s.Update(time.Second)

	require.Equal(t, 3, s.ParticleCount())
	require.Equal(t, 1.0, s.particles[0].Rotation)
	require.Equal(t, 3.0, s.particles[1].Rotation)
	require.Equal(t, 4.0, s.particles[2].Rotation)
}

func TestUpdate_AffectorsRunInRegistrationOrder(t *testing.T) {
	s := testSystem(8, 8)
	s.AddParticle(NewParticle(time.Minute))

	var order []int
	s.AddAffector(func(p *Particle, dt time.Duration) { order = append(order, 1) }, Unlimited)
	s.AddAffector(func(p *Particle, dt time.Duration) { order = append(order, 2) }, Unlimited)
	s.AddAffector(func(p *Particle, dt time.Duration) { order = append(order, 3) }, Unlimited)

	s.Update(time.Second)

	require.Equal(t, []int{1, 2, 3}, order)
}

func TestEmitter_Expiry(t *testing.T) {
	s := testSystem(8, 8)

	calls := 0
	s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {
		calls++
	}, 2500*time.Millisecond)

	// The emitter still fires on the frame its time runs out (frame 3),
	// and is gone afterwards.
	for i := 0; i < 5; i++ {
		s.Update(time.Second)
	}
	require.Equal(t, 3, calls)
}

func TestEmitter_UnlimitedNeverExpires(t *testing.T) {
	s := testSystem(8, 8)

	calls := 0
	s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {
		calls++
	}, Unlimited)

	for i := 0; i < 100; i++ {
		s.Update(time.Hour)
	}
	require.Equal(t, 100, calls)
}

func TestEmitter_AddsParticlesBeforeAdvance(t *testing.T) {
	// Particles emitted this frame are advanced this frame: they age by dt
	// immediately.
	s := testSystem(8, 8)
	s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {
		adder.AddParticle(NewParticle(time.Minute))
	}, Unlimited)

	s.Update(time.Second)

	require.Equal(t, 1, s.ParticleCount())
	require.Equal(t, time.Second, s.particles[0].PassedLifetime)
}

func TestAffector_ExpiryOncePerFrame(t *testing.T) {
	// The affector's countdown ticks once per frame, not once per particle:
	// with many particles and a one-frame lifetime it still affects every
	// particle on its single frame.
	s := testSystem(8, 8)
	for i := 0; i < 5; i++ {
		s.AddParticle(NewParticle(time.Minute))
	}

	affected := 0
	s.AddAffector(func(p *Particle, dt time.Duration) {
		affected++
	}, time.Second)

	s.Update(time.Second)
	require.Equal(t, 5, affected)

	s.Update(time.Second)
	require.Equal(t, 5, affected)
}

func TestConnection_DisconnectIsIdempotent(t *testing.T) {
	s := testSystem(8, 8)
	s.AddParticle(NewParticle(time.Minute))

	var first, second int
	c1 := s.AddAffector(func(p *Particle, dt time.Duration) { first++ }, Unlimited)
	s.AddAffector(func(p *Particle, dt time.Duration) { second++ }, Unlimited)

	c1.Disconnect()
	c1.Disconnect()

	s.Update(time.Second)
	require.Equal(t, 0, first)
	require.Equal(t, 1, second)
}

func TestConnection_InertAfterExpiry(t *testing.T) {
	s := testSystem(8, 8)

	c := s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {}, time.Second)
	keep := s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {}, Unlimited)

	s.Update(2 * time.Second) // expires c
	c.Disconnect()            // no-op, must not touch the surviving entry
	_ = keep

	require.Len(t, s.emitters.entries, 1)
}

func TestConnection_InertAfterClear(t *testing.T) {
	s := testSystem(8, 8)

	c := s.AddEmitter(func(adder ParticleAdder, dt time.Duration) {}, Unlimited)
	s.ClearEmitters()
	c.Disconnect()

	require.Empty(t, s.emitters.entries)

	var zero Connection
	zero.Disconnect() // zero value is inert too
}

func TestMesh_InvalidationAndReuse(t *testing.T) {
	s := testSystem(8, 8)
	require.True(t, s.needsRebuild, "a fresh system must build on first draw")

	s.AddParticle(NewParticle(time.Minute))
	s.ensureMesh()
	require.False(t, s.needsRebuild)
	require.Len(t, s.vertices, 4)
	require.Len(t, s.indices, 6)

	// No mutation: the cached mesh is reused verbatim.
	s.vertices[0].DstX = -12345
	s.ensureMesh()
	require.Equal(t, float32(-12345), s.vertices[0].DstX)

	// Each mutating operation marks the mesh stale again.
	s.AddParticle(NewParticle(time.Minute))
	require.True(t, s.needsRebuild)
	s.ensureMesh()
	require.Len(t, s.vertices, 8)

	s.Update(time.Millisecond)
	require.True(t, s.needsRebuild)

	s.ClearParticles()
	s.ensureMesh()
	require.Empty(t, s.vertices)
	require.Empty(t, s.indices)
}

func TestMesh_GeometryRoundTrip(t *testing.T) {
	// Unrotated, unscaled particle with a square 32x32 rect: the quad corners
	// sit at P ± 16 and the texture coordinates walk the rect's corners in
	// top-left, top-right, bottom-right, bottom-left order.
	s := testSystem(32, 32)

	p := NewParticle(time.Minute)
	p.Position = gamemath.Vec2{X: 100, Y: 50}
	s.AddParticle(p)
	s.ensureMesh()

	require.Len(t, s.vertices, 4)

	type corner struct{ dx, dy, sx, sy float32 }
	want := []corner{
		{-16, -16, 0, 0},
		{-16, 16, 32, 0},
		{16, 16, 32, 32},
		{16, -16, 0, 32},
	}
	for i, w := range want {
		v := s.vertices[i]
		require.InDelta(t, 100+w.dx, v.DstX, 1e-4, "vertex %d x", i)
		require.InDelta(t, 50+w.dy, v.DstY, 1e-4, "vertex %d y", i)
		require.Equal(t, w.sx, v.SrcX, "vertex %d src x", i)
		require.Equal(t, w.sy, v.SrcY, "vertex %d src y", i)
	}

	require.Equal(t, []uint16{0, 1, 2, 0, 2, 3}, s.indices)
}

func TestMesh_ScaleAndColor(t *testing.T) {
	s := testSystem(10, 10)

	p := NewParticle(time.Minute)
	p.Scale = gamemath.Vec2{X: 2, Y: 2}
	p.Color.A = 0x7f
	s.AddParticle(p)
	s.ensureMesh()

	// Scale doubles the corner offsets.
	require.InDelta(t, -10, s.vertices[0].DstX, 1e-4)
	require.InDelta(t, -10, s.vertices[0].DstY, 1e-4)
	require.InDelta(t, float32(0x7f)/0xff, s.vertices[0].ColorA, 1e-6)
}

func TestParticle_Ratios(t *testing.T) {
	p := livingParticle(4 * time.Second)
	p.PassedLifetime = time.Second

	require.InDelta(t, 0.25, p.ElapsedRatio(), 1e-9)
	require.InDelta(t, 0.75, p.RemainingRatio(), 1e-9)
	require.True(t, p.Alive())

	p.PassedLifetime = 4 * time.Second
	require.False(t, p.Alive())
	require.Equal(t, 1.0, p.ElapsedRatio())
}
