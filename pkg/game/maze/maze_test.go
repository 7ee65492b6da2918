package maze

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"batteryrush/pkg/engine/world"
)

const sample = "5\n4\nXXXXX\nX1--X\nX-X-E\nXXXXX\n"

func TestParse_Sample(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Grid.Cols() != 5 || m.Grid.Rows() != 4 {
		t.Errorf("dims = %dx%d, want 5 cols x 4 rows", m.Grid.Cols(), m.Grid.Rows())
	}
	if m.StartRow != 1 || m.StartCol != 1 || m.StartFrame != world.FrameDownA {
		t.Errorf("start = (%d, %d, %q), want (1, 1, '1')", m.StartRow, m.StartCol, m.StartFrame)
	}
	if got := m.Grid.Row(2); got != "X-X-E" {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestParse_CRLFAndTrailingBlankLines(t *testing.T) {
	in := "3\r\n2\r\nX-E\r\n-1-\r\n\r\n  \n"
	m, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Grid.Row(0) != "X-E" || m.Grid.Row(1) != "-1-" {
		t.Errorf("rows = %q, %q", m.Grid.Row(0), m.Grid.Row(1))
	}
}

func TestParse_StartFrameOtherThanInitial(t *testing.T) {
	m, err := Parse(strings.NewReader("2\n1\n7-\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.StartFrame != world.FrameRightA {
		t.Errorf("StartFrame = %q, want '7'", m.StartFrame)
	}
}

func TestParse_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		in   string
		also error
	}{
		{"empty", "", nil},
		{"missing height", "3\n", nil},
		{"width not a number", "three\n2\nX-E\n-1-\n", nil},
		{"zero height", "3\n0\n", nil},
		{"negative width", "-3\n2\nX-E\n-1-\n", nil},
		{"huge width", "1000000000000000\n1\nX1E\n", nil},
		{"huge height", "3\n1000000000000000\nX1E\n", nil},
		{"width just over limit", "1001\n1\nX1E\n", nil},
		{"short row", "3\n2\nX-E\n-1\n", nil},
		{"long row", "3\n2\nX-E\n-1--\n", nil},
		{"too few rows", "3\n2\nX-E\n", nil},
		{"extra row", "3\n2\nX-E\n-1-\nXXX\n", nil},
		{"space in row", "3\n2\nX E\n-1-\n", nil},
		{"no player", "3\n2\nX-E\n---\n", ErrNoPlayer},
		{"two players", "3\n2\nX1E\n-1-\n", ErrManyPlayers},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("Parse err = %v, want ErrCorrupt", err)
			}
			if tt.also != nil && !errors.Is(err, tt.also) {
				t.Errorf("Parse err = %v, want it to wrap %v", err, tt.also)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "maze.txt"))
	if !errors.Is(err, ErrMissing) {
		t.Errorf("Load err = %v, want ErrMissing", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Grid.Rows() != 4 {
		t.Errorf("Rows() = %d, want 4", m.Grid.Rows())
	}
}

func TestLocatePlayer_ExactlyOne(t *testing.T) {
	g, err := world.FromRows("X-E", "-1-")
	if err != nil {
		t.Fatal(err)
	}
	row, col, err := LocatePlayer(g)
	if err != nil {
		t.Fatalf("LocatePlayer: %v", err)
	}
	if row != 1 || col != 1 {
		t.Errorf("LocatePlayer = (%d, %d), want (1, 1)", row, col)
	}
	s, _ := g.Get(row, col)
	if s != world.InitialFrame {
		t.Errorf("cell at located position = %q, want %q", s, world.InitialFrame)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	m, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, m.Grid); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.String() != sample {
		t.Errorf("Encode = %q, want %q", buf.String(), sample)
	}
}
