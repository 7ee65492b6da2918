package world

// Direction is one of the four arrow-key directions.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// AllDirections returns the directions in clockwise order starting at Up.
func AllDirections() []Direction {
	return []Direction{Up, Right, Down, Left}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four directions.
func (d Direction) IsValid() bool {
	return d >= Up && d <= Left
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 2) % 4
}

// Delta returns the row and column offsets of a single step.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 0
	}
}
