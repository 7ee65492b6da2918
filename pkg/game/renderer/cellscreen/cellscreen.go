// Package cellscreen draws the maze on a full-screen tcell terminal.
package cellscreen

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"batteryrush/pkg/engine/input"
	"batteryrush/pkg/engine/terminal"
	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/renderer"
	"batteryrush/pkg/game/state"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleWall    = styleDefault.Foreground(tcell.ColorDarkGray)
	styleFloor   = styleDefault.Foreground(tcell.ColorGreen)
	styleExit    = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	stylePlayer  = styleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleMarker  = styleDefault.Foreground(tcell.ColorTeal)
	styleTitle   = styleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleNotice  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSubtle  = styleDefault.Foreground(tcell.ColorGray)
)

// Renderer draws views onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// New creates a renderer on the real terminal.
func New() *Renderer {
	return &Renderer{}
}

// NewWithScreen uses s instead of the terminal. s must not be initialised yet.
func NewWithScreen(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

// Init opens the screen.
func (r *Renderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		r.screen = s
	}
	if err := r.screen.Init(); err != nil {
		return err
	}
	r.screen.SetStyle(styleDefault)
	r.screen.Clear()
	return nil
}

// Close finalizes the screen and restores terminal state.
func (r *Renderer) Close() {
	if r.screen != nil {
		r.screen.Fini()
	}
}

// Run polls key events until the handler asks to quit or the screen closes.
func (r *Renderer) Run(handler renderer.Handler) error {
	for {
		ev := r.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			code := keyCode(ev)
			intent := input.IntentFor(input.DeviceTerminal, code)
			if intent.Action == input.ActionNone {
				continue
			}
			view, quit := handler(intent)
			if quit {
				log.Debug("Quit from cell screen")
				return nil
			}
			r.RenderFrame(view)
		}
	}
}

// keyCode converts a tcell key event to a raw input code.
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyF5:
		return "f5"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyRune:
		return string(unicode.ToLower(ev.Rune()))
	}
	return ""
}

// RenderFrame draws v and flushes the screen.
func (r *Renderer) RenderFrame(v renderer.View) {
	r.screen.Clear()
	width, height := r.screen.Size()

	switch v.Kind {
	case renderer.KindTiles:
		left := terminal.CenterOffset(width, v.Cols)
		top := terminal.CenterOffset(height, v.Rows+len(v.Messages)+2)
		for _, tile := range v.Tiles {
			ch, style := glyph(tile.Symbol)
			r.screen.SetContent(left+tile.Col, top+tile.Row, ch, nil, style)
		}
		y := top + v.Rows + 1
		for _, m := range v.Messages {
			r.drawCentered(m, y, styleDefault)
			y++
		}
		r.drawCentered(gotext.Get("CONTROLS_HINT", input.ControlsHint(input.TerminalHintActions...)), height-1, styleSubtle)

	case renderer.KindImage:
		title, hint := gotext.Get("WINDOW_TITLE"), gotext.Get("PRESS_ENTER_TO_START")
		if v.Screen == state.ScreenVictory {
			title, hint = gotext.Get("VICTORY"), gotext.Get("PRESS_ENTER_TO_CONTINUE")
		}
		r.drawCentered(title, height/2-1, styleTitle)
		r.drawCentered(hint, height/2+1, styleSubtle)

	case renderer.KindNotice:
		lines := strings.Split(v.Message, "\n")
		y := terminal.CenterOffset(height, len(lines))
		for i, line := range lines {
			r.drawCentered(line, y+i, styleNotice)
		}
	}

	r.screen.Show()
}

func (r *Renderer) drawCentered(s string, y int, style tcell.Style) {
	width, _ := r.screen.Size()
	runes := []rune(s)
	x := terminal.CenterOffset(width, len(runes))
	for i, ch := range runes {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// glyph returns the rune and style for a map symbol.
func glyph(s world.Symbol) (rune, tcell.Style) {
	switch {
	case s.IsFrame():
		switch s {
		case world.FrameUpA, world.FrameUpB:
			return '^', stylePlayer
		case world.FrameLeftA, world.FrameLeftB:
			return '<', stylePlayer
		case world.FrameRightA, world.FrameRightB:
			return '>', stylePlayer
		}
		return 'v', stylePlayer
	case s.IsBlocking():
		return '#', styleWall
	case s.IsExit():
		return 'E', styleExit
	case s == world.SymbolFloor:
		return '.', styleFloor
	}
	return rune(s), styleMarker
}
