package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all playground systems and renderers live on.
const Default ecs.LayerID = 0

const (
	ScreenWidth  = 960
	ScreenHeight = 540
	TickRate     = 60
)

// Preset identifies one of the built-in playground effects.
type Preset int

const (
	PresetFire Preset = iota
	PresetSmoke
	PresetSparks
	PresetCount
)

func (p Preset) String() string {
	switch p {
	case PresetFire:
		return "Fire"
	case PresetSmoke:
		return "Smoke"
	case PresetSparks:
		return "Sparks"
	default:
		return "Unknown"
	}
}

// EffectConfig tunes one playground preset.
type EffectConfig struct {
	EmissionRate float64 // particles per second
	MinLifetime  float64 // seconds
	MaxLifetime  float64 // seconds
	MinSpeed     float64 // pixels per second
	MaxSpeed     float64
	SpreadRadius float64 // emission disc radius in pixels
	Additive     bool    // additive blending on draw
}

var Effects = map[Preset]EffectConfig{
	PresetFire: {
		EmissionRate: 220,
		MinLifetime:  0.6,
		MaxLifetime:  1.4,
		MinSpeed:     30,
		MaxSpeed:     90,
		SpreadRadius: 10,
		Additive:     true,
	},
	PresetSmoke: {
		EmissionRate: 60,
		MinLifetime:  2.0,
		MaxLifetime:  4.5,
		MinSpeed:     15,
		MaxSpeed:     40,
		SpreadRadius: 14,
		Additive:     false,
	},
	PresetSparks: {
		EmissionRate: 140,
		MinLifetime:  1.2,
		MaxLifetime:  2.6,
		MinSpeed:     120,
		MaxSpeed:     260,
		SpreadRadius: 4,
		Additive:     true,
	},
}

var (
	White    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	DimGray  = color.RGBA{R: 40, G: 40, B: 40, A: 0xff}
	WallGray = color.RGBA{R: 70, G: 70, B: 85, A: 0xff}
	HUDGreen = color.RGBA{R: 40, G: 220, B: 40, A: 0xff}
)
