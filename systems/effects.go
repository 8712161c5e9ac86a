package systems

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/emberforge/cinder/components"
	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/emitters"
	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/particles"
)

// FrameDelta is the fixed simulation step; ebiten ticks at cfg.TickRate.
const FrameDelta = time.Second / cfg.TickRate

// UpdateEffects advances every particle effect by one fixed step.
func UpdateEffects(e *ecs.ECS) {
	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.Effect.Get(entry)
		fx.System.Update(FrameDelta)
	})
}

// UpdateMovers advances emitter sweep tweens and repositions the effect's
// emission point accordingly.
func UpdateMovers(e *ecs.ECS) {
	components.Mover.Each(e.World, func(entry *donburi.Entry) {
		m := components.Mover.Get(entry)
		if m.Seq == nil {
			return
		}
		offset, _, done := m.Seq.Update(float32(FrameDelta.Seconds()))
		if done {
			m.Seq.Reset()
		}
		at := m.Origin.Add(gamemath.Vec2{X: float64(offset)})
		m.Emitter.Position = emitters.PointInCircle(at, m.Radius)
	})
}

// TogglePause stops or resumes an effect's emission by disconnecting and
// re-registering its emitter. Already-live particles finish out either way.
func TogglePause(entry *donburi.Entry) {
	fx := components.Effect.Get(entry)
	if fx.Paused {
		fx.EmitterConn = fx.System.AddEmitter(fx.Emitter.Emit, particles.Unlimited)
	} else {
		fx.EmitterConn.Disconnect()
	}
	fx.Paused = !fx.Paused
}
