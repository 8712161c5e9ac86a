package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file and returns the arena layout (solid walls and
// emitter anchor points). It takes an fs.FS so callers can pass embed.FS or
// os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "walls":
			for _, o := range og.Objects {
				data.Walls = append(data.Walls, WallRect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "emitters":
			for _, o := range og.Objects {
				data.Emitters = append(data.Emitters, EmitterSpawn{
					Name:   o.Name,
					X:      o.X,
					Y:      o.Y,
					Preset: o.Properties.GetString("preset"),
				})
			}
		}
	}

	if len(data.Walls) == 0 {
		return nil, fmt.Errorf("arena %s has no walls object group", tmxPath)
	}
	return data, nil
}
