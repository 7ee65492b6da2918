package world

import "testing"

func TestNewGrid_FilledWithFloor(t *testing.T) {
	g := NewGrid(2, 3)
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("NewGrid(2, 3) dims = %dx%d, want 2x3", g.Rows(), g.Cols())
	}
	if n := g.Count(func(s Symbol) bool { return s == SymbolFloor }); n != 6 {
		t.Errorf("floor count = %d, want 6", n)
	}
}

func TestFromRows_RejectsRaggedRows(t *testing.T) {
	if _, err := FromRows("X-E", "-1"); err == nil {
		t.Error("FromRows with ragged rows returned nil error")
	}
	if _, err := FromRows(); err == nil {
		t.Error("FromRows() returned nil error")
	}
}

func TestGridGetSet_Bounds(t *testing.T) {
	g, err := FromRows("X-E", "-1-")
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	tests := []struct {
		row, col int
		want     Symbol
		ok       bool
	}{
		{0, 0, SymbolWall, true},
		{0, 2, SymbolExit, true},
		{1, 1, FrameDownA, true},
		{-1, 0, 0, false},
		{0, 3, 0, false},
		{2, 0, 0, false},
	}
	for _, tt := range tests {
		got, ok := g.Get(tt.row, tt.col)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Get(%d, %d) = (%q, %v), want (%q, %v)", tt.row, tt.col, got, ok, tt.want, tt.ok)
		}
	}

	if g.Set(2, 2, SymbolWall) {
		t.Error("Set out of bounds returned true")
	}
	if !g.Set(1, 0, SymbolWall) {
		t.Error("Set in bounds returned false")
	}
	if g.Row(1) != "X1-" {
		t.Errorf("Row(1) = %q, want %q", g.Row(1), "X1-")
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Errorf("Set changed dimensions to %dx%d", g.Rows(), g.Cols())
	}
}

func TestGridNeighbor(t *testing.T) {
	g := NewGrid(3, 3)
	for _, dir := range AllDirections() {
		r, c, ok := g.Neighbor(1, 1, dir)
		if !ok {
			t.Errorf("Neighbor(1, 1, %v) not on grid", dir)
		}
		dr, dc := dir.Delta()
		if r != 1+dr || c != 1+dc {
			t.Errorf("Neighbor(1, 1, %v) = (%d, %d)", dir, r, c)
		}
	}
	if _, _, ok := g.Neighbor(0, 0, Up); ok {
		t.Error("Neighbor(0, 0, Up) reported on grid")
	}
	if _, _, ok := g.Neighbor(0, 0, Direction(9)); ok {
		t.Error("Neighbor with invalid direction reported on grid")
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		if dr != -or || dc != -oc {
			t.Errorf("%v and its opposite deltas do not cancel", d)
		}
	}
}

func TestSymbolClasses(t *testing.T) {
	for s := Symbol('1'); s <= '8'; s++ {
		if !s.IsFrame() {
			t.Errorf("%q.IsFrame() = false", s)
		}
	}
	for _, s := range []Symbol{'0', '9', SymbolWall, SymbolFloor, SymbolExit} {
		if s.IsFrame() {
			t.Errorf("%q.IsFrame() = true", s)
		}
	}
	if !SymbolWall.IsBlocking() || SymbolFloor.IsBlocking() || SymbolExit.IsBlocking() {
		t.Error("only the wall symbol should block")
	}
	if !SymbolExit.IsExit() {
		t.Error("SymbolExit.IsExit() = false")
	}
}
