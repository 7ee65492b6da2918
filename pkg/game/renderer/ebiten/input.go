package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	engineinput "batteryrush/pkg/engine/input"
	"batteryrush/pkg/game/config"
)

// keyCodes maps Ebiten keys to raw input codes.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:        "arrow_up",
	ebiten.KeyArrowDown:      "arrow_down",
	ebiten.KeyArrowLeft:      "arrow_left",
	ebiten.KeyArrowRight:     "arrow_right",
	ebiten.KeyW:              "w",
	ebiten.KeyA:              "a",
	ebiten.KeyS:              "s",
	ebiten.KeyD:              "d",
	ebiten.KeyEnter:          "enter",
	ebiten.KeyNumpadEnter:    "enter",
	ebiten.KeyEscape:         "escape",
	ebiten.KeyQ:              "q",
	ebiten.KeyF5:             "f5",
	ebiten.KeyF8:             "f8",
	ebiten.KeyEqual:          "=",
	ebiten.KeyNumpadAdd:      "numpad_add",
	ebiten.KeyMinus:          "-",
	ebiten.KeyNumpadSubtract: "numpad_subtract",
	ebiten.KeyDigit0:         "0",
	ebiten.KeyNumpad0:        "0",
}

// repeatKeys auto-repeat while held.
var repeatKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight,
	ebiten.KeyW, ebiten.KeyA, ebiten.KeyS, ebiten.KeyD,
}

// shouldRepeatKey reports whether a key held for d ticks fires this tick.
// The first tick always fires.
func shouldRepeatKey(d int) bool {
	if d == 1 {
		return true
	}
	if d < keyRepeatInitialDelay {
		return false
	}
	return (d-keyRepeatInitialDelay)%keyRepeatInterval == 0
}

// codeFor returns the raw code for key, taking modifiers into account.
func codeFor(key ebiten.Key, ctrl bool) string {
	if ctrl && key == ebiten.KeyC {
		return "ctrl_c"
	}
	return keyCodes[key]
}

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Infof("Main window opened successfully (%dx%d)", w, h)
	}

	e.stepFade(1 / float32(ebiten.TPS()))

	for _, code := range e.pressedCodes() {
		intent := engineinput.IntentFor(engineinput.DeviceKeyboard, code)
		if e.handleZoom(intent.Action) {
			continue
		}
		if intent.Action == engineinput.ActionNone || e.handler == nil {
			continue
		}
		view, quit := e.handler(intent)
		e.RenderFrame(view)
		if quit {
			e.quit = true
			break
		}
	}

	if e.quit {
		return ebiten.Termination
	}
	return nil
}

// pressedCodes returns the raw codes that fire this tick.
func (e *EbitenRenderer) pressedCodes() []string {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	var codes []string
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if code := codeFor(key, ctrl); code != "" {
			codes = append(codes, code)
		}
	}
	for _, key := range repeatKeys {
		d := inpututil.KeyPressDuration(key)
		if d > 1 && shouldRepeatKey(d) {
			codes = append(codes, keyCodes[key])
		}
	}
	return codes
}

// handleZoom applies zoom actions. Returns true if the action was a zoom.
func (e *EbitenRenderer) handleZoom(a engineinput.Action) bool {
	size := e.tileSize
	switch a {
	case engineinput.ActionZoomIn:
		size += config.TileSizeStep
	case engineinput.ActionZoomOut:
		size -= config.TileSizeStep
	case engineinput.ActionZoomReset:
		size = config.DefaultTileSize
	default:
		return false
	}
	size = config.ClampTileSize(size)
	if size == e.tileSize {
		return true
	}

	e.tileSize = size
	ebiten.SetWindowSize(e.windowSize())
	e.saveZoomPreference()
	return true
}

// saveZoomPreference saves the current tile size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	if e.cfg == nil {
		return
	}
	if err := e.cfg.SetTileSize(e.tileSize); err != nil {
		log.Warnf("Could not save preferences: %v", err)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.windowSize()
}
