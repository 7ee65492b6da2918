package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func loadFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
}

// getFontSize scales the UI font with the tile size
func (e *EbitenRenderer) getFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / 32.0
	if size < 10 {
		size = 10
	}
	return size
}

// getFontFace returns a cached font face for the current tile size
func (e *EbitenRenderer) getFontFace() *text.GoTextFace {
	size := e.getFontSize()
	if e.fontFace == nil || e.fontFace.Size != size {
		e.fontFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.fontFace
}
