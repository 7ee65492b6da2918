// Package tui draws the maze as coloured glyphs in a raw-mode terminal.
package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"batteryrush/pkg/engine/input"
	"batteryrush/pkg/engine/terminal"
	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/renderer"
	"batteryrush/pkg/game/state"
)

// Glyphs for map symbols
const (
	IconWall   = "▒"
	IconFloor  = "·"
	IconExit   = "⌂"
	IconUnseen = " "
)

// playerIcons shows which way the player faces.
var playerIcons = map[world.Direction]string{
	world.Up:    "▲",
	world.Down:  "▼",
	world.Left:  "◀",
	world.Right: "▶",
}

// intentReader is satisfied by *input.Terminal.
type intentReader interface {
	ReadIntent() (input.Intent, error)
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorWall   color.Style
	colorFloor  color.Style
	colorExit   color.Style
	colorPlayer color.Style
	colorMarker color.Style
	colorTitle  color.Style
	colorDenied color.Style
	colorSubtle color.Style

	out   io.Writer
	clear func()

	term *input.Terminal
	keys intentReader
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, clear: clearScreen}
}

// Init sets up colours and puts the terminal into raw mode.
func (t *TUIRenderer) Init() error {
	t.initColors()
	if t.keys != nil {
		return nil
	}
	if !terminal.IsTerminal() {
		return errors.New("stdin is not a terminal")
	}
	term, err := input.OpenTerminal()
	if err != nil {
		return err
	}
	t.term = term
	t.keys = term
	return nil
}

func (t *TUIRenderer) initColors() {
	t.colorWall = color.Style{color.FgGray}
	t.colorFloor = color.Style{color.FgGreen}
	t.colorExit = color.Style{color.FgYellow, color.OpBold}
	t.colorPlayer = color.Style{color.FgLightYellow, color.BgBlack, color.OpBold}
	t.colorMarker = color.Style{color.FgCyan}
	t.colorTitle = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Close restores the terminal.
func (t *TUIRenderer) Close() {
	if t.term != nil {
		_ = t.term.Restore()
		t.term = nil
	}
	t.println(gotext.Get("GOODBYE"))
}

// Run reads keys until the handler asks to quit or input ends.
func (t *TUIRenderer) Run(handler renderer.Handler) error {
	for {
		intent, err := t.keys.ReadIntent()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if intent.Action == input.ActionNone {
			continue
		}
		view, quit := handler(intent)
		if quit {
			return nil
		}
		t.RenderFrame(view)
	}
}

// RenderFrame clears the terminal and draws v.
func (t *TUIRenderer) RenderFrame(v renderer.View) {
	if t.clear != nil {
		t.clear()
	}
	width, _ := terminal.GetSize()

	switch v.Kind {
	case renderer.KindTiles:
		t.printMap(v, width)
		t.printMessages(v)
		hint := controlsHint()
		t.printCentered(t.colorSubtle.Sprint(hint), utf8.RuneCountInString(hint), width)

	case renderer.KindImage:
		title, hint := gotext.Get("WINDOW_TITLE"), gotext.Get("PRESS_ENTER_TO_START")
		if v.Screen == state.ScreenVictory {
			title, hint = gotext.Get("VICTORY"), gotext.Get("PRESS_ENTER_TO_CONTINUE")
		}
		t.println("")
		t.printCentered(t.colorTitle.Sprint(title), len([]rune(title)), width)
		t.println("")
		t.printMessages(v)
		t.printCentered(t.colorSubtle.Sprint(hint), len(hint), width)

	case renderer.KindNotice:
		t.println("")
		for _, line := range strings.Split(v.Message, "\n") {
			t.printCentered(t.colorDenied.Sprint(line), len([]rune(line)), width)
		}
	}
}

func (t *TUIRenderer) printMap(v renderer.View, width int) {
	pad := strings.Repeat(" ", terminal.CenterOffset(width, v.Cols))
	var sb strings.Builder
	for i, tile := range v.Tiles {
		if tile.Col == 0 {
			sb.WriteString(pad)
		}
		sb.WriteString(t.renderSymbol(tile.Symbol))
		if tile.Col == v.Cols-1 || i == len(v.Tiles)-1 {
			t.println(sb.String())
			sb.Reset()
		}
	}
}

// renderSymbol returns the styled glyph for one cell.
func (t *TUIRenderer) renderSymbol(s world.Symbol) string {
	switch {
	case s.IsFrame():
		return t.colorPlayer.Sprint(playerIcon(s))
	case s.IsBlocking():
		return t.colorWall.Sprint(IconWall)
	case s.IsExit():
		return t.colorExit.Sprint(IconExit)
	case s == world.SymbolFloor:
		return t.colorFloor.Sprint(IconFloor)
	case s.IsPrintable():
		return t.colorMarker.Sprint(s.String())
	}
	return IconUnseen
}

// playerIcon returns the arrow for the direction a frame faces.
func playerIcon(s world.Symbol) string {
	switch s {
	case world.FrameUpA, world.FrameUpB:
		return playerIcons[world.Up]
	case world.FrameLeftA, world.FrameLeftB:
		return playerIcons[world.Left]
	case world.FrameRightA, world.FrameRightB:
		return playerIcons[world.Right]
	}
	return playerIcons[world.Down]
}

func (t *TUIRenderer) printMessages(v renderer.View) {
	t.println("")
	for _, m := range v.Messages {
		t.println(" " + m)
	}
	t.println("")
}

func (t *TUIRenderer) printCentered(styled string, visible, width int) {
	t.println(strings.Repeat(" ", terminal.CenterOffset(width, visible)) + styled)
}

// println ends lines with \r\n since the terminal is in raw mode.
func (t *TUIRenderer) println(s string) {
	fmt.Fprint(t.out, s+"\r\n")
}

func clearScreen() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

func controlsHint() string {
	return gotext.Get("CONTROLS_HINT", input.ControlsHint(input.TerminalHintActions...))
}
