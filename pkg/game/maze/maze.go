// Package maze reads and writes the plain text maze format:
//
//	<width>
//	<height>
//	<height rows of exactly width symbols>
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"batteryrush/pkg/engine/world"
)

var (
	// ErrMissing is returned when the maze file cannot be opened.
	ErrMissing = errors.New("maze file missing")
	// ErrCorrupt is returned when the maze file cannot be parsed.
	ErrCorrupt = errors.New("maze file corrupt")
	// ErrNoPlayer is returned when no cell holds a player frame.
	ErrNoPlayer = errors.New("no player in maze")
	// ErrManyPlayers is returned when more than one cell holds a player frame.
	ErrManyPlayers = errors.New("more than one player in maze")
)

// Maze is a loaded level layout.
type Maze struct {
	Grid *world.Grid

	// Start position and facing of the player.
	StartRow   int
	StartCol   int
	StartFrame world.Symbol
}

// Load opens and parses the maze file at path.
func Load(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissing, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse reads a maze from r. All failures wrap ErrCorrupt.
func Parse(r io.Reader) (*Maze, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanLines)
	lineNo := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNo++
		return strings.TrimRight(scanner.Text(), "\r"), true
	}

	width, err := readDimension(next, "width")
	if err != nil {
		return nil, err
	}
	height, err := readDimension(next, "height")
	if err != nil {
		return nil, err
	}

	grid := world.NewGrid(height, width)
	for row := 0; row < height; row++ {
		line, ok := next()
		if !ok {
			return nil, corrupt("expected %d rows, found %d", height, row)
		}
		if len(line) != width {
			return nil, corrupt("line %d: row has %d symbols, want %d", lineNo, len(line), width)
		}
		for col := 0; col < width; col++ {
			s := world.Symbol(line[col])
			if !s.IsPrintable() {
				return nil, corrupt("line %d: unprintable symbol %q at column %d", lineNo, line[col], col)
			}
			grid.Set(row, col, s)
		}
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(line) != "" {
			return nil, corrupt("line %d: unexpected content after %d rows", lineNo, height)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, corrupt("read: %v", err)
	}

	return FromGrid(grid)
}

// FromGrid wraps a grid built in memory, such as a generated one, locating
// its player the same way Parse does.
func FromGrid(grid *world.Grid) (*Maze, error) {
	row, col, err := LocatePlayer(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	frame, _ := grid.Get(row, col)

	return &Maze{Grid: grid, StartRow: row, StartCol: col, StartFrame: frame}, nil
}

// MaxDimension is the largest width or height a maze file may declare.
const MaxDimension = 1000

func readDimension(next func() (string, bool), name string) (int, error) {
	line, ok := next()
	if !ok {
		return 0, corrupt("missing %s", name)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, corrupt("%s %q is not a number", name, line)
	}
	if n <= 0 {
		return 0, corrupt("%s must be positive, got %d", name, n)
	}
	if n > MaxDimension {
		return 0, corrupt("%s %d exceeds the limit of %d", name, n, MaxDimension)
	}
	return n, nil
}

func corrupt(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupt, fmt.Sprintf(format, a...))
}

// LocatePlayer scans the grid once and returns the position of the only
// player frame. It is meant for level setup, not per-frame use.
func LocatePlayer(g *world.Grid) (row, col int, err error) {
	found := 0
	row, col = -1, -1
	g.ForEachCell(func(r, c int, s world.Symbol) {
		if !s.IsFrame() {
			return
		}
		if found == 0 {
			row, col = r, c
		}
		found++
	})

	switch {
	case found == 0:
		return -1, -1, ErrNoPlayer
	case found > 1:
		return -1, -1, fmt.Errorf("%w: found %d", ErrManyPlayers, found)
	}
	return row, col, nil
}

// Encode writes g in the maze file format.
func Encode(w io.Writer, g *world.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.Cols(), g.Rows())
	for r := 0; r < g.Rows(); r++ {
		bw.WriteString(g.Row(r))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
