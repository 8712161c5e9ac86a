// Package emitters provides ready-made particle emitters built on
// per-property random distributions.
package emitters

import (
	"image/color"
	"math"
	"time"

	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/particles"
)

// Universal emits particles whose initial properties are each drawn from a
// distribution. Swap any field for a random distribution to vary that
// property per particle; the defaults from NewUniversal emit stationary
// white particles at the origin.
type Universal struct {
	// EmissionRate is the number of particles emitted per second. It does
	// not have to be a whole number per frame; fractional particles are
	// carried over to the next frame.
	EmissionRate float64

	Lifetime      Distribution[time.Duration]
	Position      Distribution[gamemath.Vec2]
	Velocity      Distribution[gamemath.Vec2]
	Rotation      Distribution[float64]
	RotationSpeed Distribution[float64]
	Scale         Distribution[gamemath.Vec2]
	Color         Distribution[color.RGBA]

	emissionDiff float64
}

// NewUniversal returns an emitter producing rate particles per second, each
// living for lifetime.
func NewUniversal(rate float64, lifetime time.Duration) *Universal {
	return &Universal{
		EmissionRate:  rate,
		Lifetime:      Constant(lifetime),
		Position:      Constant(gamemath.Vec2{}),
		Velocity:      Constant(gamemath.Vec2{}),
		Rotation:      Constant(0.0),
		RotationSpeed: Constant(0.0),
		Scale:         Constant(gamemath.Vec2{X: 1, Y: 1}),
		Color:         Constant(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	}
}

// Emit satisfies particles.Emitter; register it with System.AddEmitter.
func (u *Universal) Emit(adder particles.ParticleAdder, dt time.Duration) {
	for n := u.particleCount(dt); n > 0; n-- {
		adder.AddParticle(particles.Particle{
			Position:      u.Position(),
			Velocity:      u.Velocity(),
			Rotation:      u.Rotation(),
			RotationSpeed: u.RotationSpeed(),
			Scale:         u.Scale(),
			Color:         u.Color(),
			TotalLifetime: u.Lifetime(),
		})
	}
}

// particleCount converts the per-second rate into a whole emission count for
// this frame, carrying the fractional remainder forward.
func (u *Universal) particleCount(dt time.Duration) int {
	want := u.EmissionRate*dt.Seconds() + u.emissionDiff
	count := math.Floor(want)
	u.emissionDiff = want - count
	return int(count)
}
