// Package generator builds random mazes in the same symbol alphabet the maze
// files use: a wall border, carved floor, one player frame and one exit.
package generator

import (
	"fmt"
	"math/rand"
	"sort"

	"batteryrush/pkg/engine/world"
)

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rng *rand.Rand, level int) *world.Grid
	Name() string
}

// Available generators
var (
	LineWalker = &LineWalkerGenerator{}
	BSP        = &BSPGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = BSP

var byName = map[string]GridGenerator{
	"linewalker": LineWalker,
	"bsp":        BSP,
}

// ByName looks up a generator by its manifest name ("bsp" or "linewalker").
// An empty name selects DefaultGenerator.
func ByName(name string) (GridGenerator, error) {
	if name == "" {
		return DefaultGenerator, nil
	}
	if g, ok := byName[name]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("unknown generator %q (want one of %v)", name, Names())
}

// Names returns the manifest names of all generators, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// newWallGrid returns a grid made entirely of walls.
func newWallGrid(rows, cols int) *world.Grid {
	g := world.NewGrid(rows, cols)
	g.ForEachCell(func(row, col int, _ world.Symbol) {
		g.Set(row, col, world.SymbolWall)
	})
	return g
}

// isPlayable reports whether (row, col) lies inside the wall border.
func isPlayable(g *world.Grid, row, col int) bool {
	return row > 0 && col > 0 && row < g.Rows()-1 && col < g.Cols()-1
}

// carve turns a playable cell into floor.
func carve(g *world.Grid, row, col int) {
	if isPlayable(g, row, col) {
		g.Set(row, col, world.SymbolFloor)
	}
}

// placeStartAndExit puts the player on (row, col) facing down and the exit on
// the floor cell with the longest walk from there.
func placeStartAndExit(g *world.Grid, row, col int) {
	carve(g, row, col)
	exit, dist := Furthest(g, Cell{Row: row, Col: col})
	if dist == 0 {
		exit = Cell{Row: row, Col: col + 1}
		if !isPlayable(g, exit.Row, exit.Col) {
			exit.Col = col - 1
		}
	}
	g.Set(row, col, world.InitialFrame)
	g.Set(exit.Row, exit.Col, world.SymbolExit)
}

// level clamps level numbers below 1.
func level(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
