package devtools

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"

	"batteryrush/pkg/game/generator"
)

// GenerateMazeFile writes a random maze from the named generator to path,
// ready to be listed in a campaign manifest.
func GenerateMazeFile(path, name string, seed int64, level int) error {
	gen, err := generator.ByName(name)
	if err != nil {
		return err
	}

	grid := gen.Generate(rand.New(rand.NewSource(seed)), level)
	if !generator.Solvable(grid) {
		return fmt.Errorf("%s produced an unsolvable maze for seed %d", gen.Name(), seed)
	}
	if err := writeGrid(path, grid); err != nil {
		return fmt.Errorf("write generated maze: %w", err)
	}

	log.WithFields(log.Fields{
		"path":      path,
		"generator": gen.Name(),
		"seed":      seed,
		"rows":      grid.Rows(),
		"cols":      grid.Cols(),
	}).Info("Maze generated")
	return nil
}
