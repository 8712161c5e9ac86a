// Package affectors provides ready-made particle affectors: constant forces,
// torque, scaling and lifetime-driven fades.
package affectors

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/particles"
)

// Force accelerates particles by a constant acceleration in pixels/s²,
// e.g. gravity or wind.
func Force(accel gamemath.Vec2) particles.Affector {
	return func(p *particles.Particle, dt time.Duration) {
		p.Velocity = p.Velocity.Add(accel.Mul(dt.Seconds()))
	}
}

// Torque applies a constant angular acceleration in radians/s².
func Torque(angularAccel float64) particles.Affector {
	return func(p *particles.Particle, dt time.Duration) {
		p.RotationSpeed += angularAccel * dt.Seconds()
	}
}

// Grow changes particle scale by factor per second. Negative components
// shrink.
func Grow(factor gamemath.Vec2) particles.Affector {
	return func(p *particles.Particle, dt time.Duration) {
		p.Scale = p.Scale.Add(factor.Mul(dt.Seconds()))
	}
}

// Fade ramps particle alpha in over the first inRatio of the lifetime and
// out over the last outRatio, with quadratic easing at both ends. The two
// ratios must sum to at most 1.
func Fade(inRatio, outRatio float64) particles.Affector {
	return func(p *particles.Particle, _ time.Duration) {
		elapsed := p.ElapsedRatio()
		switch {
		case inRatio > 0 && elapsed < inRatio:
			p.Color.A = alpha8(ease.OutQuad(float32(elapsed), 0, 1, float32(inRatio)))
		case outRatio > 0 && elapsed > 1-outRatio:
			p.Color.A = alpha8(ease.InQuad(float32(1-elapsed), 0, 1, float32(outRatio)))
		default:
			p.Color.A = 0xff
		}
	}
}

// Eased drives an arbitrary per-particle property from the particle's
// elapsed-lifetime ratio, shaped by a gween easing function. apply receives
// the eased ratio in [0, 1].
func Eased(fn ease.TweenFunc, apply func(p *particles.Particle, t float64)) particles.Affector {
	return func(p *particles.Particle, _ time.Duration) {
		apply(p, float64(fn(float32(p.ElapsedRatio()), 0, 1, 1)))
	}
}

func alpha8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xff
	default:
		return uint8(v * 0xff)
	}
}
