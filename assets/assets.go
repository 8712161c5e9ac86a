// Package assets holds the embedded arena layouts and the generated
// particle texture.
package assets

import (
	"embed"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed levels
var FS embed.FS

const ArenaPath = "levels/arena.tmx"

var particleTexture *ebiten.Image

// ParticleTexture returns the shared soft-disc texture all playground
// effects are rendered with. It is generated on first use, so the playground
// ships no binary image assets.
func ParticleTexture() *ebiten.Image {
	if particleTexture == nil {
		particleTexture = buildDisc(32)
	}
	return particleTexture
}

// buildDisc renders a radial falloff disc: opaque white at the center,
// fading to transparent at the edge.
func buildDisc(size int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := float64(size-1) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)-center, float64(y)-center) / center
			if d > 1 {
				continue
			}
			a := uint8((1 - d) * (1 - d) * 0xff)
			img.SetRGBA(x, y, color.RGBA{R: a, G: a, B: a, A: a})
		}
	}
	return ebiten.NewImageFromImage(img)
}
