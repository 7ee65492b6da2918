package ebiten

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// startFade begins fading in image from black.
func (e *EbitenRenderer) startFade(image string) {
	e.fadeImage = image
	e.fadeAlpha = 0
	e.fade = gween.New(0, 1, fadeSeconds, ease.OutQuad)
}

// stepFade advances the fade by dt seconds.
func (e *EbitenRenderer) stepFade(dt float32) {
	if e.fade == nil {
		e.fadeAlpha = 1
		return
	}
	alpha, done := e.fade.Update(dt)
	e.fadeAlpha = alpha
	if done {
		e.fade = nil
		e.fadeAlpha = 1
	}
}
