package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/emberforge/cinder/components"
	cfg "github.com/emberforge/cinder/config"
)

var additiveOpts = &ebiten.DrawTrianglesOptions{
	Blend: ebiten.BlendLighter,
}

// DrawEffects submits every effect's particle mesh. Fire and sparks draw
// additively so overlapping particles glow.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		fx := components.Effect.Get(entry)
		if fx.Additive {
			fx.System.Draw(screen, additiveOpts)
			return
		}
		fx.System.Draw(screen, nil)
	})
}

// DrawWalls renders the arena geometry as flat rectangles.
func DrawWalls(e *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(o.X), float32(o.Y),
			float32(o.W), float32(o.H),
			cfg.WallGray, false)
	})
}
