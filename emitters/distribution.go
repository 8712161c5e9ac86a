package emitters

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/emberforge/cinder/gamemath"
)

// Distribution produces a random sample each time it is called. Particle
// properties in a Universal emitter are all drawn from distributions, so a
// fixed value and a random range plug into the same slot.
type Distribution[T any] func() T

// Constant always yields v.
func Constant[T any](v T) Distribution[T] {
	return func() T { return v }
}

// UniformFloat samples uniformly from [min, max).
func UniformFloat(min, max float64) Distribution[float64] {
	return func() float64 {
		return min + rand.Float64()*(max-min)
	}
}

// UniformDuration samples uniformly from [min, max).
func UniformDuration(min, max time.Duration) Distribution[time.Duration] {
	return func() time.Duration {
		return min + time.Duration(rand.Float64()*float64(max-min))
	}
}

// PointInCircle samples uniformly from the disc of the given radius around
// center.
func PointInCircle(center gamemath.Vec2, radius float64) Distribution[gamemath.Vec2] {
	return func() gamemath.Vec2 {
		r := radius * math.Sqrt(rand.Float64())
		angle := rand.Float64() * 2 * math.Pi
		return center.Add(gamemath.PolarVec(r, angle))
	}
}

// Deflect yields direction rotated by a random angle in
// [-maxRotation/2, maxRotation/2], spreading emission into a cone.
func Deflect(direction gamemath.Vec2, maxRotation float64) Distribution[gamemath.Vec2] {
	return func() gamemath.Vec2 {
		return direction.Rotated((rand.Float64() - 0.5) * maxRotation)
	}
}
