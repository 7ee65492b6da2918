package generator

import (
	"github.com/zyedidia/generic/mapset"

	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/maze"
)

// Cell is a grid coordinate.
type Cell struct {
	Row, Col int
}

func walkable(g *world.Grid, c Cell) bool {
	s, ok := g.Get(c.Row, c.Col)
	return ok && !s.IsBlocking()
}

// Reachable returns every cell the player could walk to from start by BFS.
func Reachable(g *world.Grid, start Cell) *mapset.Set[Cell] {
	reachable := mapset.New[Cell]()
	queue := []Cell{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !walkable(g, current) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		for _, dir := range world.AllDirections() {
			row, col, ok := g.Neighbor(current.Row, current.Col, dir)
			n := Cell{Row: row, Col: col}
			if ok && walkable(g, n) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// Furthest returns the floor cell with the longest path distance from start,
// along with that distance. It returns start and 0 when nothing else is
// reachable.
func Furthest(g *world.Grid, start Cell) (Cell, int) {
	type cellDist struct {
		cell Cell
		dist int
	}

	visited := mapset.New[Cell]()
	visited.Put(start)
	queue := []cellDist{{start, 0}}

	furthest, maxDist := start, 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if s, _ := g.Get(current.cell.Row, current.cell.Col); current.dist > maxDist && s == world.SymbolFloor {
			maxDist = current.dist
			furthest = current.cell
		}

		for _, dir := range world.AllDirections() {
			row, col, ok := g.Neighbor(current.cell.Row, current.cell.Col, dir)
			n := Cell{Row: row, Col: col}
			if ok && walkable(g, n) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, cellDist{n, current.dist + 1})
			}
		}
	}

	return furthest, maxDist
}

// Solvable reports whether the grid has exactly one player and an exit the
// player can walk to.
func Solvable(g *world.Grid) bool {
	row, col, err := maze.LocatePlayer(g)
	if err != nil {
		return false
	}
	found := false
	Reachable(g, Cell{Row: row, Col: col}).Each(func(c Cell) {
		if s, _ := g.Get(c.Row, c.Col); s.IsExit() {
			found = true
		}
	})
	return found
}
