package ebiten

import (
	"image/color"

	"batteryrush/pkg/engine/world"
)

// Color palette used when artwork is missing
var (
	colorBackground = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorWall       = color.RGBA{60, 60, 80, 255}    // Slate
	colorFloor      = color.RGBA{34, 80, 34, 255}    // Grass green
	colorExit       = color.RGBA{255, 220, 60, 255}  // Battery yellow
	colorPlayer     = color.RGBA{255, 140, 0, 255}   // Raichu orange
	colorMarker     = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText       = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorDenied     = color.RGBA{255, 100, 100, 255} // Bright red
)

// Default window size for screens without a maze
const (
	defaultWindowWidth  = 640
	defaultWindowHeight = 480
)

const (
	baseFontSize = 16.0
	fadeSeconds  = 0.4
)

// Key repeat in ticks at the default 60 TPS
const (
	keyRepeatInitialDelay = 30 // 500ms
	keyRepeatInterval     = 6  // 100ms
)

// fallbackColor returns the square drawn for s when its image is missing.
func fallbackColor(s world.Symbol) color.Color {
	switch {
	case s.IsFrame():
		return colorPlayer
	case s.IsBlocking():
		return colorWall
	case s.IsExit():
		return colorExit
	case s == world.SymbolFloor:
		return colorFloor
	}
	return colorMarker
}
