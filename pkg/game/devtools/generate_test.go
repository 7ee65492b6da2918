package devtools

import (
	"path/filepath"
	"testing"

	"batteryrush/pkg/game/generator"
	"batteryrush/pkg/game/maze"
)

func TestGenerateMazeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.txt")
	if err := GenerateMazeFile(path, "linewalker", 3, 2); err != nil {
		t.Fatalf("GenerateMazeFile: %v", err)
	}

	m, err := maze.Load(path)
	if err != nil {
		t.Fatalf("generated maze does not load: %v", err)
	}
	if !generator.Solvable(m.Grid) {
		t.Error("generated maze is not solvable")
	}
}

func TestGenerateMazeFile_UnknownGenerator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.txt")
	if err := GenerateMazeFile(path, "drunkard", 1, 1); err == nil {
		t.Error("unknown generator accepted")
	}
}

func TestGenerateMazeFile_DefaultGenerator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.txt")
	if err := GenerateMazeFile(path, "", 5, 1); err != nil {
		t.Fatalf("GenerateMazeFile with default generator: %v", err)
	}
	if _, err := maze.Load(path); err != nil {
		t.Errorf("generated maze does not load: %v", err)
	}
}
