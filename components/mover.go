package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/emberforge/cinder/emitters"
	"github.com/emberforge/cinder/gamemath"
)

// MoverData sweeps an effect's emission point horizontally with a tween
// sequence, relative to the point the effect was spawned at.
type MoverData struct {
	Seq     *gween.Sequence
	Emitter *emitters.Universal
	Origin  gamemath.Vec2
	Radius  float64 // emission disc radius carried into the distribution
}

var Mover = donburi.NewComponentType[MoverData]()
