// Package ebiten provides an Ebiten-based 2D graphical renderer for Battery Rush.
package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"

	"batteryrush/pkg/game/config"
	"batteryrush/pkg/game/renderer"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	cfg *config.Config

	// Tile size in pixels (adjustable with =/-)
	tileSize int

	// View currently on screen (set by RenderFrame)
	view renderer.View

	// Called from Update for every intent the window produces
	handler renderer.Handler
	quit    bool

	// Decoded images by path. A nil entry marks a path that failed to load.
	images map[string]*ebiten.Image

	fontSource *text.GoTextFaceSource
	fontFace   *text.GoTextFace

	// Fade-in of full screen images
	fade      *gween.Tween
	fadeAlpha float32
	fadeImage string

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
