package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from an arena map.
const (
	GroupGround    = "Ground"
	GroupPlatforms = "Platforms"
	GroupSpawns    = "Spawns"
)

// LoadArena parses a TMX file into world-unit arena data. Pixel
// coordinates are divided by ppu and flipped so y grows upward. It takes an
// fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string, ppu float64) (*ArenaData, error) {
	if ppu <= 0 {
		return nil, fmt.Errorf("load arena %s: pixels per unit must be positive, got %v", tmxPath, ppu)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	data := &ArenaData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  mapW / ppu,
		Height: mapH / ppu,
		Spawns: make(map[string]Point),
	}

	toRect := func(o *tiled.Object) Rect {
		return Rect{
			X: o.X / ppu,
			Y: (mapH - (o.Y + o.Height)) / ppu,
			W: o.Width / ppu,
			H: o.Height / ppu,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				data.Ground = append(data.Ground, toRect(o))
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				period := float64(o.Properties.GetInt("period")) / 1000
				if period <= 0 {
					return nil, fmt.Errorf("load TMX %s: platform %d has no period", tmxPath, o.ID)
				}
				data.Platforms = append(data.Platforms, MovingPlatform{
					Rect:    toRect(o),
					TravelX: float64(o.Properties.GetInt("travelX")) / ppu,
					// TMX travel is y-down
					TravelY: -float64(o.Properties.GetInt("travelY")) / ppu,
					Period:  period,
				})
			}
		case GroupSpawns:
			for _, o := range og.Objects {
				if o.Name == "" {
					continue
				}
				data.Spawns[o.Name] = Point{X: o.X / ppu, Y: (mapH - o.Y) / ppu}
			}
		}
	}

	if len(data.Ground) == 0 && len(data.Platforms) == 0 {
		return nil, fmt.Errorf("load TMX %s: no %s objects", tmxPath, GroupGround)
	}
	for _, name := range []string{SpawnPlayer, SpawnEnemy} {
		if _, ok := data.Spawns[name]; !ok {
			return nil, fmt.Errorf("load TMX %s: missing %q spawn", tmxPath, name)
		}
	}

	// Left-to-right for stable entity creation order
	sort.Slice(data.Ground, func(i, j int) bool {
		return data.Ground[i].X < data.Ground[j].X
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys, loads each, and
// returns a map keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string, ppu float64) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path, ppu)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
