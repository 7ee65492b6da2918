package cellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"batteryrush/pkg/engine/input"
	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/renderer"
)

func newSimRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	r := NewWithScreen(sim)
	if err := r.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	sim.SetSize(20, 10)
	t.Cleanup(r.Close)
	return r, sim
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		sym  world.Symbol
		want rune
	}{
		{world.SymbolWall, '#'},
		{world.SymbolFloor, '.'},
		{world.SymbolExit, 'E'},
		{world.FrameDownB, 'v'},
		{world.FrameUpA, '^'},
		{world.FrameLeftB, '<'},
		{world.FrameRightA, '>'},
		{'B', 'B'},
	}
	for _, tt := range tests {
		if got, _ := glyph(tt.sym); got != tt.want {
			t.Errorf("glyph(%q) = %q, want %q", tt.sym, got, tt.want)
		}
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want string
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), "arrow_up"},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{tcell.NewEventKey(tcell.KeyF8, 0, tcell.ModNone), "f8"},
		{tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone), "q"},
		{tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), "d"},
	}
	for _, tt := range tests {
		if got := keyCode(tt.ev); got != tt.want {
			t.Errorf("keyCode(%v) = %q, want %q", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestRenderFrame_Tiles(t *testing.T) {
	r, sim := newSimRenderer(t)
	r.RenderFrame(renderer.View{
		Kind: renderer.KindTiles,
		Rows: 1,
		Cols: 3,
		Tiles: []renderer.Tile{
			{Row: 0, Col: 0, Symbol: world.SymbolWall},
			{Row: 0, Col: 1, Symbol: world.FrameRightA},
			{Row: 0, Col: 2, Symbol: world.SymbolExit},
		},
	})

	// 20 wide, 3 cols: left offset 8. 10 high, 3 lines: top offset 3.
	want := []rune{'#', '>', 'E'}
	for i, w := range want {
		got, _, _, _ := sim.GetContent(8+i, 3)
		if got != w {
			t.Errorf("cell %d = %q, want %q", i, got, w)
		}
	}
}

func TestRun_DeliversIntentsUntilQuit(t *testing.T) {
	r, sim := newSimRenderer(t)
	sim.InjectKey(tcell.KeyRight, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	var seen []input.Action
	err := r.Run(func(in input.Intent) (renderer.View, bool) {
		seen = append(seen, in.Action)
		return renderer.View{Kind: renderer.KindNotice, Message: "x"}, in.Action == input.ActionQuit
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := []input.Action{input.ActionMoveRight, input.ActionConfirm, input.ActionQuit}
	if len(seen) != len(want) {
		t.Fatalf("handler saw %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("intent %d = %s, want %s", i, input.ActionName(seen[i]), input.ActionName(want[i]))
		}
	}
}

var _ renderer.Renderer = (*Renderer)(nil)
