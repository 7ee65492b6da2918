package renderer

import (
	"path/filepath"
	"testing"

	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/levels"
	"batteryrush/pkg/game/state"
)

func makeGame(t *testing.T, screen state.Screen) *state.Game {
	t.Helper()
	grid, err := world.FromRows("X-E", "-1-")
	if err != nil {
		t.Fatal(err)
	}
	g := state.NewGame(levels.Default(), nil)
	g.Grid = grid
	g.Player = state.Player{Row: 1, Col: 1, Frame: world.FrameDownA}
	g.Screen = screen
	return g
}

func TestBuild_Playing(t *testing.T) {
	g := makeGame(t, state.ScreenPlaying)
	v := Build(g, Assets{Root: "assets"})

	if v.Kind != KindTiles {
		t.Fatalf("Kind = %v, want tiles", v.Kind)
	}
	if len(v.Tiles) != 6 || v.Rows != 2 || v.Cols != 3 {
		t.Fatalf("got %d tiles %dx%d, want 6 tiles 2x3", len(v.Tiles), v.Rows, v.Cols)
	}

	want := []struct {
		sym   world.Symbol
		image string
	}{
		{'X', filepath.Join("assets", "artwork", "X.png")},
		{'-', filepath.Join("assets", "artwork", "-.png")},
		{'E', filepath.Join("assets", "artwork", "E.png")},
		{'-', filepath.Join("assets", "artwork", "-.png")},
		{'1', filepath.Join("assets", "artwork", "player", "1.png")},
		{'-', filepath.Join("assets", "artwork", "-.png")},
	}
	for i, w := range want {
		tile := v.Tiles[i]
		if tile.Row != i/3 || tile.Col != i%3 {
			t.Errorf("tile %d at (%d, %d), want row-major order", i, tile.Row, tile.Col)
		}
		if tile.Symbol != w.sym || tile.Image != w.image {
			t.Errorf("tile %d = %q %q, want %q %q", i, tile.Symbol, tile.Image, w.sym, w.image)
		}
	}
}

func TestBuild_FullScreenImages(t *testing.T) {
	tests := []struct {
		screen state.Screen
		want   string
	}{
		{state.ScreenDialog, levels.DefaultLevel().Dialog},
		{state.ScreenVictory, levels.DefaultLevel().Victory},
	}
	for _, tt := range tests {
		v := Build(makeGame(t, tt.screen), Assets{Root: "."})
		if v.Kind != KindImage {
			t.Errorf("%s: Kind = %v, want image", tt.screen, v.Kind)
		}
		if v.Image != tt.want {
			t.Errorf("%s: Image = %q, want %q", tt.screen, v.Image, tt.want)
		}
		if len(v.Tiles) != 0 {
			t.Errorf("%s: image view carries tiles", tt.screen)
		}
	}
}

func TestBuild_Notice(t *testing.T) {
	g := makeGame(t, state.ScreenNotice)
	g.Grid = nil
	g.Notice = "maze.txt was corrupted or missing"

	v := Build(g, Assets{})
	if v.Kind != KindNotice || v.Message != g.Notice || v.Image != "" {
		t.Errorf("notice view = %+v", v)
	}
}

func TestBuild_DoesNotModifyGame(t *testing.T) {
	g := makeGame(t, state.ScreenPlaying)
	g.AddMessage("hello")
	v := Build(g, Assets{})
	v.Messages[0] = "changed"
	if g.Messages[0] != "hello" || g.Grid.Row(1) != "-1-" {
		t.Error("Build shares or modifies game state")
	}
}

func TestAssets_TilesShareArtworkDir(t *testing.T) {
	// The default asset root is the working directory.
	a := Assets{Root: "."}
	lvl := levels.DefaultLevel()

	artDir := filepath.Dir(a.Path(lvl.Dialog))
	if got := filepath.Dir(a.TilePath(world.SymbolWall)); got != artDir {
		t.Errorf("wall tile dir = %q, want %q like the dialog image", got, artDir)
	}
	if got := a.TilePath(world.SymbolWall); got != filepath.Join("artwork", "X.png") {
		t.Errorf("TilePath('X') = %q", got)
	}
	if got := a.TilePath(world.FrameRightB); got != filepath.Join("artwork", "player", "8.png") {
		t.Errorf("TilePath('8') = %q", got)
	}
}
