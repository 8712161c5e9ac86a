package affectors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"

	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/particles"
)

func TestForce(t *testing.T) {
	p := particles.NewParticle(time.Minute)
	p.Velocity = gamemath.Vec2{X: 1, Y: 0}

	gravity := Force(gamemath.Vec2{X: 0, Y: 100})
	gravity(&p, 500*time.Millisecond)

	require.InDelta(t, 1, p.Velocity.X, 1e-9)
	require.InDelta(t, 50, p.Velocity.Y, 1e-9)
}

func TestTorque(t *testing.T) {
	p := particles.NewParticle(time.Minute)

	spin := Torque(2)
	spin(&p, 250*time.Millisecond)

	require.InDelta(t, 0.5, p.RotationSpeed, 1e-9)
}

func TestGrow(t *testing.T) {
	p := particles.NewParticle(time.Minute)

	grow := Grow(gamemath.Vec2{X: 1, Y: -0.5})
	grow(&p, time.Second)

	require.InDelta(t, 2, p.Scale.X, 1e-9)
	require.InDelta(t, 0.5, p.Scale.Y, 1e-9)
}

func TestFade(t *testing.T) {
	fade := Fade(0.25, 0.25)

	at := func(elapsed float64) uint8 {
		p := particles.NewParticle(time.Second)
		p.PassedLifetime = time.Duration(elapsed * float64(time.Second))
		fade(&p, time.Millisecond)
		return p.Color.A
	}

	require.Equal(t, uint8(0), at(0))
	require.Equal(t, uint8(0xff), at(0.5))
	require.Less(t, at(0.1), at(0.2)) // ramping in
	require.Greater(t, at(0.8), at(0.9)) // ramping out
	require.Less(t, at(0.99), uint8(0x30))
}

func TestFade_NoRamps(t *testing.T) {
	fade := Fade(0, 0)
	p := particles.NewParticle(time.Second)
	p.Color.A = 0
	fade(&p, time.Millisecond)
	require.Equal(t, uint8(0xff), p.Color.A)
}

func TestEased(t *testing.T) {
	// Linear easing feeds the raw elapsed ratio through.
	var got float64
	aff := Eased(ease.Linear, func(p *particles.Particle, t float64) {
		got = t
	})

	p := particles.NewParticle(time.Second)
	p.PassedLifetime = 250 * time.Millisecond
	aff(&p, time.Millisecond)

	require.InDelta(t, 0.25, got, 1e-6)
}
