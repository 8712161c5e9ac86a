package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/emitters"
	"github.com/emberforge/cinder/particles"
)

// EffectData holds one particle effect instance: the simulation itself plus
// the handles needed to pause and retune it at runtime.
type EffectData struct {
	System  *particles.System
	Emitter *emitters.Universal
	Preset  cfg.Preset

	// EmitterConn revokes the universal emitter's registration when the
	// effect is paused; re-registering resumes it.
	EmitterConn particles.Connection
	Paused      bool

	Additive bool
}

var Effect = donburi.NewComponentType[EffectData]()
