package input

import (
	"sort"
	"strings"
	"time"

	"batteryrush/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta / UI
	ActionConfirm    // Enter: start the level, continue after victory
	ActionQuit       // Escape, q, Ctrl+C
	ActionResetLevel // Reload the current level (F5)
	ActionMapDump    // Write the current grid to a file (F8)
	ActionZoomIn     // Zoom in (increase tile size)
	ActionZoomOut    // Zoom out (decrease tile size)
	ActionZoomReset
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "enter", "q").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Every backend only reports fresh key presses, so this is a plain copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,

	"enter": ActionConfirm,

	"escape": ActionQuit,
	"q":      ActionQuit,
	"ctrl_c": ActionQuit,

	"f5": ActionResetLevel,
	"f8": ActionMapDump,

	"=":               ActionZoomIn,
	"+":               ActionZoomIn,
	"numpad_add":      ActionZoomIn,
	"-":               ActionZoomOut,
	"numpad_subtract": ActionZoomOut,
	"0":               ActionZoomReset,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a code from the given device through all layers.
func IntentFor(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// Direction returns the movement direction of a move action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	case ActionResetLevel:
		return "Reset Level"
	case ActionMapDump:
		return "Map Dump"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionZoomReset:
		return "Zoom Reset"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// ControlsHint lists the keys bound to each of actions in order, for example
// "Quit: ctrl_c/escape/q". Actions without bindings are skipped.
func ControlsHint(actions ...Action) string {
	byAction := GetBindingsByAction()
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		codes := byAction[a]
		if len(codes) == 0 {
			continue
		}
		parts = append(parts, ActionName(a)+": "+strings.Join(codes, "/"))
	}
	return strings.Join(parts, ", ")
}

// TerminalHintActions are the actions the terminal renderers list under the maze.
var TerminalHintActions = []Action{
	ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight,
	ActionResetLevel, ActionMapDump, ActionQuit,
}
