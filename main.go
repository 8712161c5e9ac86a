package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	cfg "github.com/emberforge/cinder/config"
	"github.com/emberforge/cinder/fonts"
	"github.com/emberforge/cinder/scenes"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	fonts.LoadDefaults()

	return &Game{
		scene: scenes.NewPlaygroundScene(),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.ScreenWidth, cfg.ScreenHeight
}

func main() {
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("cinder playground")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
