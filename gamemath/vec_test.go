package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec2_Ops(t *testing.T) {
	v := Vec2{X: 3, Y: 4}

	require.Equal(t, Vec2{X: 4, Y: 6}, v.Add(Vec2{X: 1, Y: 2}))
	require.Equal(t, Vec2{X: 2, Y: 2}, v.Sub(Vec2{X: 1, Y: 2}))
	require.Equal(t, Vec2{X: 6, Y: 8}, v.Mul(2))
	require.Equal(t, Vec2{X: -3, Y: -4}, v.Neg())
	require.Equal(t, 5.0, v.Len())
}

func TestVec2_Perp(t *testing.T) {
	v := Vec2{X: 2, Y: 1}
	p := v.Perp()

	require.Equal(t, Vec2{X: -1, Y: 2}, p)
	// Perpendicular: dot product is zero, length preserved.
	require.Zero(t, v.X*p.X+v.Y*p.Y)
	require.Equal(t, v.Len(), p.Len())
}

func TestVec2_Rotated(t *testing.T) {
	v := Vec2{X: 1, Y: 0}

	r := v.Rotated(math.Pi / 2)
	require.InDelta(t, 0, r.X, 1e-12)
	require.InDelta(t, 1, r.Y, 1e-12)

	full := v.Rotated(2 * math.Pi)
	require.InDelta(t, 1, full.X, 1e-12)
	require.InDelta(t, 0, full.Y, 1e-12)
}

func TestPolarVec(t *testing.T) {
	v := PolarVec(2, math.Pi)
	require.InDelta(t, -2, v.X, 1e-12)
	require.InDelta(t, 0, v.Y, 1e-12)
}

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0, 10, 0.5))
	require.Equal(t, 0.0, Lerp(0, 10, 0))
	require.Equal(t, 10.0, Lerp(0, 10, 1))
}
