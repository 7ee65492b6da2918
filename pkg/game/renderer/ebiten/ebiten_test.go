package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "batteryrush/pkg/engine/input"
	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/config"
	"batteryrush/pkg/game/renderer"
)

func TestShouldRepeatKey(t *testing.T) {
	tests := []struct {
		ticks int
		want  bool
	}{
		{1, true},
		{2, false},
		{keyRepeatInitialDelay - 1, false},
		{keyRepeatInitialDelay, true},
		{keyRepeatInitialDelay + 1, false},
		{keyRepeatInitialDelay + keyRepeatInterval, true},
	}
	for _, tt := range tests {
		if got := shouldRepeatKey(tt.ticks); got != tt.want {
			t.Errorf("shouldRepeatKey(%d) = %v, want %v", tt.ticks, got, tt.want)
		}
	}
}

func TestKeyCodesMapToIntents(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		ctrl bool
		want engineinput.Action
	}{
		{ebiten.KeyArrowUp, false, engineinput.ActionMoveUp},
		{ebiten.KeyD, false, engineinput.ActionMoveRight},
		{ebiten.KeyEnter, false, engineinput.ActionConfirm},
		{ebiten.KeyEscape, false, engineinput.ActionQuit},
		{ebiten.KeyC, true, engineinput.ActionQuit},
		{ebiten.KeyC, false, engineinput.ActionNone},
		{ebiten.KeyF5, false, engineinput.ActionResetLevel},
		{ebiten.KeyEqual, false, engineinput.ActionZoomIn},
		{ebiten.KeyDigit0, false, engineinput.ActionZoomReset},
	}
	for _, tt := range tests {
		got := engineinput.IntentFor(engineinput.DeviceKeyboard, codeFor(tt.key, tt.ctrl)).Action
		if got != tt.want {
			t.Errorf("key %v ctrl=%v -> %s, want %s", tt.key, tt.ctrl, engineinput.ActionName(got), engineinput.ActionName(tt.want))
		}
	}
}

func TestFallbackColor(t *testing.T) {
	if fallbackColor(world.SymbolWall) != colorWall {
		t.Error("wall fallback color")
	}
	if fallbackColor(world.FrameRightB) != colorPlayer {
		t.Error("player fallback color")
	}
	if fallbackColor(world.SymbolExit) != colorExit {
		t.Error("exit fallback color")
	}
	if fallbackColor('B') != colorMarker {
		t.Error("marker fallback color")
	}
}

func TestNew_TileSizeFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.TileSize = 1000
	e := New(&cfg)
	if e.tileSize != config.MaxTileSize {
		t.Errorf("tileSize = %d, want %d", e.tileSize, config.MaxTileSize)
	}
	if New(nil).tileSize != config.DefaultTileSize {
		t.Error("New(nil) did not use the default tile size")
	}
}

func TestWindowSize(t *testing.T) {
	e := New(nil)
	if w, h := e.windowSize(); w != defaultWindowWidth || h != defaultWindowHeight {
		t.Errorf("windowSize without maze = %dx%d", w, h)
	}
	e.view = renderer.View{Kind: renderer.KindTiles, Rows: 2, Cols: 3}
	if w, h := e.windowSize(); w != 3*config.DefaultTileSize || h != 2*config.DefaultTileSize {
		t.Errorf("windowSize = %dx%d, want tile*cols x tile*rows", w, h)
	}
}

func TestFade(t *testing.T) {
	e := New(nil)
	e.startFade("artwork/dialog.jpg")
	if e.fadeAlpha != 0 {
		t.Fatalf("fadeAlpha = %v after start, want 0", e.fadeAlpha)
	}
	e.stepFade(fadeSeconds / 2)
	if e.fadeAlpha <= 0 || e.fadeAlpha >= 1 {
		t.Errorf("fadeAlpha mid-fade = %v", e.fadeAlpha)
	}
	e.stepFade(fadeSeconds)
	if e.fadeAlpha != 1 || e.fade != nil {
		t.Errorf("fade not finished: alpha %v", e.fadeAlpha)
	}
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
