package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/emberforge/cinder/components"
	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/fonts"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
)

// DrawHUD renders the active preset, live particle count and tick rate in
// the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Effect.First(e.World)
	if !ok {
		return
	}
	fx := components.Effect.Get(entry)

	state := ""
	if fx.Paused {
		state = "  [paused]"
	}

	lines := []string{
		fmt.Sprintf("%s%s", fx.Preset, state),
		fmt.Sprintf("particles: %d", fx.System.ParticleCount()),
		fmt.Sprintf("tps: %0.0f  fps: %0.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		"1-3 switch / space pause / c clear",
	}

	face := fonts.HUDSmall.Get()
	y := hudMargin + hudLineHeight
	for i, line := range lines {
		f := face
		if i == 0 {
			f = fonts.HUD.Get()
		}
		text.Draw(screen, line, f, hudMargin, y, cfg.White)
		y += hudLineHeight
	}
}
