// Package assets embeds the game's data files.
package assets

import (
	"embed"
	"io/fs"
)

// DefaultLevel is loaded when no level path is configured.
const DefaultLevel = "levels/courtyard.tmx"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded level files.
func Levels() fs.FS {
	return levelFS
}
