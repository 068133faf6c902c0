package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

// ErrNoSpawn is returned for maps without a PlayerSpawn object.
var ErrNoSpawn = errors.New("no player spawn point defined in map")

// Load parses a TMX file into a Level. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string, opts Options) (*Level, error) {
	if opts.PixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: pixels per unit must be positive", tmxPath)
	}
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	c := converter{
		ppu:      opts.PixelsPerUnit,
		heightPx: float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / c.ppu,
		Depth: c.heightPx / c.ppu,
	}
	level.Floor = Box{
		Name: "floor",
		Bounds: gamemath.AABB{
			Min: gamemath.Vec3{Y: -opts.FloorDepth},
			Max: gamemath.Vec3{X: level.Width, Z: level.Depth},
		},
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				base := o.Properties.GetFloat("base")
				height := floatOr(o.Properties, "height", opts.WallHeight)
				level.Solids = append(level.Solids, Box{
					Name:   o.Name,
					Bounds: c.box(o, base, height),
				})
			}
		case GroupDoors:
			for _, o := range og.Objects {
				level.Doors = append(level.Doors, DoorSpawn{
					Name:  o.Name,
					Hinge: c.point(o.X, o.Y, o.Properties.GetFloat("base")),
					Yaw:   gamemath.WrapAngle(o.Properties.GetFloat("yaw")),
				})
			}
		case GroupCameraZones:
			for _, o := range og.Objects {
				p := o.Properties
				level.CameraZones = append(level.CameraZones, CameraZone{
					Name:     o.Name,
					Bounds:   c.box(o, p.GetFloat("base"), floatOr(p, "height", opts.ZoneHeight)),
					Position: gamemath.V3(p.GetFloat("cameraX"), p.GetFloat("cameraY"), p.GetFloat("cameraZ")),
					Target:   gamemath.V3(p.GetFloat("targetX"), p.GetFloat("targetY"), p.GetFloat("targetZ")),
				})
			}
		case GroupPlayerSpawn:
			if spawned || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.Spawn = Spawn{
				Position: c.point(o.X, o.Y, o.Properties.GetFloat("base")),
				Yaw:      gamemath.WrapAngle(o.Properties.GetFloat("yaw")),
			}
			spawned = true
		}
	}
	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys, loads each, and
// returns them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string, opts Options) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := Load(fsys, path, opts)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// converter maps Tiled pixels to world units. Map Y grows downward, world Z
// grows away from the viewer, so Z is measured from the map's bottom edge.
type converter struct {
	ppu      float64
	heightPx float64
}

func (c converter) point(x, y, elevation float64) gamemath.Vec3 {
	return gamemath.Vec3{X: x / c.ppu, Y: elevation, Z: (c.heightPx - y) / c.ppu}
}

func (c converter) box(o *tiled.Object, base, height float64) gamemath.AABB {
	topLeft := c.point(o.X, o.Y, base)
	bottomRight := c.point(o.X+o.Width, o.Y+o.Height, base+height)
	return gamemath.BoundingPoints(topLeft, bottomRight)
}

func floatOr(p tiled.Properties, name string, fallback float64) float64 {
	if p.GetString(name) == "" {
		return fallback
	}
	return p.GetFloat(name)
}
