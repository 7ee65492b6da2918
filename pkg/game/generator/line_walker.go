package generator

import (
	"math/rand"

	"batteryrush/pkg/engine/world"
)

// LineWalkerGenerator generates mazes by walking lines in random directions
// with branching probability
type LineWalkerGenerator struct{}

// Name returns the name of this generator
func (g *LineWalkerGenerator) Name() string {
	return "Line Walker"
}

// Generate creates a new grid for the given level
func (g *LineWalkerGenerator) Generate(rng *rand.Rand, lvl int) *world.Grid {
	lvl = level(lvl)

	// Scale grid size with level (add 2 extra for perimeter walls)
	// Level 1: 12x22 (10x20 playable), capped at 40x80
	rows := min(8+2+lvl*2, 40)
	cols := min(16+2+lvl*4, 80)

	grid := newWallGrid(rows, cols)

	// Start in the center (which is always in playable area)
	row, col := rows/2, cols/2

	// Scale branch probability with level (more complex layouts)
	// Level 1: 0.28, Level 10: 0.55
	branchProb := min(float32(0.25)+float32(lvl)*0.03, 0.65)

	// Scale corridor length with level
	// Level 1: 2-4, Level 10: 4-9
	w := walker{rng: rng, grid: grid, minDist: 2 + lvl/4, maxDist: 4 + lvl/2}

	// Build main corridors in all four directions
	for _, dir := range world.AllDirections() {
		w.line(row, col, dir, branchProb)
	}

	// Add extra corridors at higher levels, branching from carved floor
	for i := 0; i < lvl/2; i++ {
		randRow := row + rng.Intn(5) - 2
		randCol := col + rng.Intn(5) - 2
		if s, _ := grid.Get(randRow, randCol); s == world.SymbolFloor {
			w.line(randRow, randCol, w.randomDirection(), branchProb)
		}
	}

	placeStartAndExit(grid, row, col)
	return grid
}

type walker struct {
	rng              *rand.Rand
	grid             *world.Grid
	minDist, maxDist int
}

// randomDirection returns a random cardinal direction
func (w *walker) randomDirection() world.Direction {
	return world.Direction(w.rng.Intn(4))
}

// line carves a corridor starting from (row, col) in the given direction,
// branching off at random. Floor is only carved inside the wall border.
func (w *walker) line(row, col int, dir world.Direction, branchProbability float32) (int, int) {
	if !dir.IsValid() {
		dir = w.randomDirection()
	}

	rowDelta, colDelta := dir.Delta()
	distance := w.minDist + w.rng.Intn(w.maxDist-w.minDist+1)

	for segment := 0; segment < distance; segment++ {
		carve(w.grid, row, col)

		// If the next cell would be outside playable area, stop here
		if !isPlayable(w.grid, row+rowDelta, col+colDelta) {
			return row, col
		}

		if w.rng.Float32() < branchProbability {
			w.line(row, col, w.randomDirection(), branchProbability-.1)
		}

		row += rowDelta
		col += colDelta
	}

	carve(w.grid, row, col)
	return row, col
}
