package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/emberforge/cinder/assets"
	"github.com/emberforge/cinder/components"
	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/gamemath"
	"github.com/emberforge/cinder/leveldata"
	"github.com/emberforge/cinder/systems"
	"github.com/emberforge/cinder/systems/factory"
	"github.com/emberforge/cinder/ui"
)

// PlaygroundScene runs one particle effect in the TMX arena and lets the
// user switch presets, pause emission and clear particles.
type PlaygroundScene struct {
	ecs   *ecs.ECS
	panel *ui.Panel
	arena *leveldata.ArenaData

	effectEntry *donburi.Entry
	once        sync.Once
}

func NewPlaygroundScene() *PlaygroundScene {
	return &PlaygroundScene{}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.panel.Update()
	ps.handleInput()
	ps.ecs.Update()
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 12, B: 18, A: 0xff})
	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.panel.Draw(screen)
}

func (ps *PlaygroundScene) configure() {
	arena, err := leveldata.LoadArena(assets.FS, assets.ArenaPath)
	if err != nil {
		panic("failed to load arena: " + err.Error())
	}
	ps.arena = arena

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateMovers)
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawWalls)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ps.ecs = e

	spaceEntry := factory.CreateSpace(e, arena.Width, arena.Height)
	space := components.Space.Get(spaceEntry)
	factory.CreateWalls(e, space.Space, arena.Walls)

	systems.InitPersistence()

	preset := cfg.PresetFire
	if saved := systems.LoadSettings(); saved != nil {
		preset = cfg.Preset(saved.Preset)
	}
	ps.switchPreset(preset)

	ps.panel = ui.NewPanel(ps.switchPreset, ps.togglePause)
}

// switchPreset replaces the running effect with the given preset, anchored
// at the arena spawn matching it.
func (ps *PlaygroundScene) switchPreset(preset cfg.Preset) {
	if ps.effectEntry != nil && ps.effectEntry.Valid() {
		if fx := components.Effect.Get(ps.effectEntry); fx.Preset == preset {
			return
		}
		ps.effectEntry.Remove()
	}

	spaceEntry, _ := components.Space.First(ps.ecs.World)
	space := components.Space.Get(spaceEntry)

	ps.effectEntry = factory.CreateEffect(ps.ecs, preset, ps.anchorFor(preset), space.Space)
	systems.SaveSettings(&systems.SavedSettings{Preset: int(preset)})
}

// anchorFor finds the arena spawn point named for the preset, falling back
// to the arena center.
func (ps *PlaygroundScene) anchorFor(preset cfg.Preset) gamemath.Vec2 {
	want := map[cfg.Preset]string{
		cfg.PresetFire:   "fire",
		cfg.PresetSmoke:  "smoke",
		cfg.PresetSparks: "sparks",
	}[preset]

	for _, spawn := range ps.arena.Emitters {
		if spawn.Preset == want {
			return gamemath.Vec2{X: spawn.X, Y: spawn.Y}
		}
	}
	return gamemath.Vec2{X: float64(ps.arena.Width) / 2, Y: float64(ps.arena.Height) / 2}
}

func (ps *PlaygroundScene) togglePause() {
	if ps.effectEntry != nil && ps.effectEntry.Valid() {
		systems.TogglePause(ps.effectEntry)
	}
}

func (ps *PlaygroundScene) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		ps.switchPreset(cfg.PresetFire)
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		ps.switchPreset(cfg.PresetSmoke)
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		ps.switchPreset(cfg.PresetSparks)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		ps.togglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if ps.effectEntry != nil && ps.effectEntry.Valid() {
			components.Effect.Get(ps.effectEntry).System.ClearParticles()
		}
	}
}
