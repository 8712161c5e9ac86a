package particles

import (
	"image/color"
	"time"

	"github.com/emberforge/cinder/gamemath"
)

// Particle is a single simulated particle. Particles are plain values owned
// by a System; emitters create them, affectors mutate them, and the System
// drops them once their lifetime runs out.
type Particle struct {
	Position      gamemath.Vec2 // pixels
	Velocity      gamemath.Vec2 // pixels per second
	Rotation      float64       // radians
	RotationSpeed float64       // radians per second
	Scale         gamemath.Vec2
	Color         color.RGBA

	TotalLifetime  time.Duration
	PassedLifetime time.Duration
}

// NewParticle returns a white, unscaled particle that lives for lifetime.
func NewParticle(lifetime time.Duration) Particle {
	return Particle{
		Scale:         gamemath.Vec2{X: 1, Y: 1},
		Color:         color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		TotalLifetime: lifetime,
	}
}

// Alive reports whether the particle's lifetime has not yet run out.
func (p *Particle) Alive() bool {
	return p.PassedLifetime < p.TotalLifetime
}

// ElapsedRatio returns the fraction of the particle's lifetime that has
// passed, in [0, 1].
func (p *Particle) ElapsedRatio() float64 {
	if p.TotalLifetime <= 0 {
		return 1
	}
	r := float64(p.PassedLifetime) / float64(p.TotalLifetime)
	if r > 1 {
		return 1
	}
	return r
}

// RemainingRatio returns 1 - ElapsedRatio.
func (p *Particle) RemainingRatio() float64 {
	return 1 - p.ElapsedRatio()
}
