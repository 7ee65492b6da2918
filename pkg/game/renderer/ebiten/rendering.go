package ebiten

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"batteryrush/pkg/game/renderer"
	"batteryrush/pkg/game/state"
)

// Draw renders the current view (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	switch e.view.Kind {
	case renderer.KindTiles:
		e.drawTiles(screen)
	case renderer.KindImage:
		e.drawFullScreen(screen)
	case renderer.KindNotice:
		e.drawNotice(screen)
	}
}

func (e *EbitenRenderer) drawTiles(screen *ebiten.Image) {
	ts := float64(e.tileSize)
	for _, tile := range e.view.Tiles {
		x, y := float64(tile.Col)*ts, float64(tile.Row)*ts
		img := e.image(tile.Image)
		if img == nil {
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(ts), float32(ts), fallbackColor(tile.Symbol), false)
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(ts/float64(b.Dx()), ts/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}
}

func (e *EbitenRenderer) drawFullScreen(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	img := e.image(e.view.Image)
	if img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(b.Dx()), float64(sh)/float64(b.Dy()))
		op.ColorScale.ScaleAlpha(e.fadeAlpha)
		screen.DrawImage(img, op)
	}

	hint := "PRESS_ENTER_TO_START"
	if e.view.Screen == state.ScreenVictory {
		hint = "PRESS_ENTER_TO_CONTINUE"
		if img == nil {
			e.drawCentered(screen, gotext.Get("VICTORY"), float64(sh)/2, colorText)
		}
	}
	e.drawCentered(screen, gotext.Get(hint), float64(sh)-e.getFontSize()*2, colorText)
}

func (e *EbitenRenderer) drawNotice(screen *ebiten.Image) {
	sh := float64(screen.Bounds().Dy())
	lines := strings.Split(e.view.Message, "\n")
	y := sh/2 - float64(len(lines))*e.getFontSize()/2
	for _, line := range lines {
		e.drawCentered(screen, line, y, colorDenied)
		y += e.getFontSize() * 1.4
	}
}

// drawCentered draws str horizontally centered with its top at y.
func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, str string, y float64, col color.Color) {
	if e.fontSource == nil || str == "" {
		return
	}
	face := e.getFontFace()
	w, _ := text.Measure(str, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}
