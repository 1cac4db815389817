package assets

import (
	"embed"
	"io/fs"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS
)

// ArenaFS returns the embedded arena maps rooted at the assets directory,
// so paths read "arenas/<name>.tmx".
func ArenaFS() fs.FS {
	return arenaFS
}
