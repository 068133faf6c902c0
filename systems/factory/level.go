package factory

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelOptions converts the level config into loader options.
func LevelOptions() leveldata.Options {
	return leveldata.Options{
		PixelsPerUnit: cfg.Level.PixelsPerUnit,
		WallHeight:    cfg.Level.WallHeight,
		FloorDepth:    cfg.Level.FloorDepth,
		ZoneHeight:    cfg.Level.WallHeight,
	}
}

// LoadLevel reads the TMX file at path, or the embedded default level when
// path is empty.
func LoadLevel(path string) (*leveldata.Level, error) {
	var fsys fs.FS = assets.Levels()
	name := assets.DefaultLevel
	if path != "" {
		fsys = os.DirFS(filepath.Dir(path))
		name = filepath.Base(path)
	}
	level, err := leveldata.Load(fsys, name, LevelOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load level: %w", err)
	}
	return level, nil
}

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}
