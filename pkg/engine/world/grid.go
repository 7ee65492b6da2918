package world

import "fmt"

// Grid is a fixed size, row-major array of symbols.
type Grid struct {
	cells [][]Symbol
	rows  int
	cols  int
}

// NewGrid creates a grid of the given dimensions filled with floor.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	cells := make([][]Symbol, rows)
	for r := range cells {
		row := make([]Symbol, cols)
		for c := range row {
			row[c] = SymbolFloor
		}
		cells[r] = row
	}

	return &Grid{cells: cells, rows: rows, cols: cols}
}

// FromRows builds a grid from equally long strings, one per row.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid needs at least one non-empty row")
	}

	g := NewGrid(len(rows), len(rows[0]))
	for r, line := range rows {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has %d symbols, want %d", r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			g.cells[r][c] = Symbol(line[c])
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the symbol at row/col. ok is false when out of bounds.
func (g *Grid) Get(row, col int) (s Symbol, ok bool) {
	if !g.IsValidPosition(row, col) {
		return 0, false
	}
	return g.cells[row][col], true
}

// Set stores s at row/col. Returns false if out of bounds.
func (g *Grid) Set(row, col int, s Symbol) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[row][col] = s
	return true
}

// Neighbor returns the position one step from row/col in dir, and whether it is on the grid.
func (g *Grid) Neighbor(row, col int, dir Direction) (nRow, nCol int, ok bool) {
	if !dir.IsValid() {
		return row, col, false
	}
	dr, dc := dir.Delta()
	nRow, nCol = row+dr, col+dc
	return nRow, nCol, g.IsValidPosition(nRow, nCol)
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, s Symbol)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Count returns how many cells satisfy match.
func (g *Grid) Count(match func(Symbol) bool) int {
	n := 0
	g.ForEachCell(func(_, _ int, s Symbol) {
		if match(s) {
			n++
		}
	})
	return n
}

// Row returns a copy of row r as a string, or "" when out of range.
func (g *Grid) Row(r int) string {
	if r < 0 || r >= g.rows {
		return ""
	}
	b := make([]byte, g.cols)
	for c, s := range g.cells[r] {
		b[c] = byte(s)
	}
	return string(b)
}
