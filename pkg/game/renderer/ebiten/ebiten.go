package ebiten

import (
	"errors"
	_ "image/jpeg"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"batteryrush/pkg/game/config"
	"batteryrush/pkg/game/renderer"
)

// New creates a new Ebiten renderer. cfg supplies the tile size and receives
// zoom changes; it may be nil.
func New(cfg *config.Config) *EbitenRenderer {
	tileSize := config.DefaultTileSize
	if cfg != nil {
		tileSize = config.ClampTileSize(cfg.TileSize)
	}
	return &EbitenRenderer{
		cfg:       cfg,
		tileSize:  tileSize,
		images:    make(map[string]*ebiten.Image),
		fadeAlpha: 1,
	}
}

// Init loads the UI font and configures the window.
func (e *EbitenRenderer) Init() error {
	src, err := loadFontSource()
	if err != nil {
		return err
	}
	e.fontSource = src

	ebiten.SetWindowTitle(gotext.Get("WINDOW_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	w, h := e.windowSize()
	ebiten.SetWindowSize(w, h)
	return nil
}

// RenderFrame stores v to be drawn on the next Draw.
func (e *EbitenRenderer) RenderFrame(v renderer.View) {
	resize := v.Rows != e.view.Rows || v.Cols != e.view.Cols
	if v.Kind == renderer.KindImage && (e.view.Kind != renderer.KindImage || v.Image != e.view.Image) {
		e.startFade(v.Image)
	}
	e.view = v
	if resize {
		ebiten.SetWindowSize(e.windowSize())
	}
}

// Run starts the Ebiten game loop. It returns when the handler asks to quit
// or the window is closed.
func (e *EbitenRenderer) Run(handler renderer.Handler) error {
	e.handler = handler
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Close drops cached images.
func (e *EbitenRenderer) Close() {
	for path, img := range e.images {
		if img != nil {
			img.Deallocate()
		}
		delete(e.images, path)
	}
}

// windowSize returns the window size for the current view and tile size.
func (e *EbitenRenderer) windowSize() (int, int) {
	if e.view.Rows <= 0 || e.view.Cols <= 0 {
		return defaultWindowWidth, defaultWindowHeight
	}
	return e.view.Cols * e.tileSize, e.view.Rows * e.tileSize
}

// image returns the decoded image at path, or nil if it cannot be loaded.
// Failures are logged once.
func (e *EbitenRenderer) image(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	if img, ok := e.images[path]; ok {
		return img
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.WithField("path", path).Warnf("Could not load image, drawing placeholder: %v", err)
		img = nil
	}
	e.images[path] = img
	return img
}
