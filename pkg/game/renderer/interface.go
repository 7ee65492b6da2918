package renderer

import (
	engineinput "batteryrush/pkg/engine/input"
)

// Handler receives one intent, updates the game, and returns the next view
// to draw. quit ends the backend's Run loop.
type Handler func(intent engineinput.Intent) (view View, quit bool)

// Renderer defines the interface for game rendering backends
// Implementations include the ebiten window, a plain terminal and tcell.
type Renderer interface {
	// Init initializes the renderer (colors, window, terminal mode, etc.)
	Init() error

	// RenderFrame draws a complete view.
	RenderFrame(v View)

	// Run reads input until handler reports quit or input ends. The handler
	// is always called from the goroutine that called Run.
	Run(handler Handler) error

	// Close releases the window or restores the terminal.
	Close()
}
