// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/maze"
	"batteryrush/pkg/game/state"
)

// DumpMapToFile writes the current grid in maze file format to a
// timestamped file in dir, so the dump can be loaded again as a level.
// Returns the path written.
func DumpMapToFile(g *state.Game, dir string, now time.Time) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no level loaded")
	}
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, fmt.Sprintf("map-%s.txt", now.Format("20060102-150405")))
	if err := writeGrid(path, g.Grid); err != nil {
		return "", fmt.Errorf("map dump: %w", err)
	}
	return path, nil
}

func writeGrid(path string, grid *world.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := maze.Encode(f, grid); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
