// Package leveldata parses TMX arena layouts into plain data, with no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

// ArenaData holds everything parsed from a TMX arena file.
type ArenaData struct {
	Walls    []WallRect
	Emitters []EmitterSpawn
	Width    int
	Height   int
}

// WallRect is a solid rectangle particles collide with.
type WallRect struct {
	X, Y, W, H float64
}

// EmitterSpawn is a named point an effect is anchored to.
type EmitterSpawn struct {
	Name   string
	X, Y   float64
	Preset string // "fire", "smoke", "sparks"; empty picks the default
}
