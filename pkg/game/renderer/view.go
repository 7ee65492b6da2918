// Package renderer turns game state into a backend independent View and
// defines the interface drawing backends implement.
package renderer

import (
	"path/filepath"

	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/state"
)

// Kind says what a View contains.
type Kind int

const (
	KindImage  Kind = iota // one full screen image
	KindTiles              // the maze
	KindNotice             // text only
)

// Tile is one cell of the maze as drawn.
type Tile struct {
	Row    int
	Col    int
	Symbol world.Symbol
	Image  string
}

// View is everything a backend needs to draw one frame.
type View struct {
	Kind   Kind
	Screen state.Screen
	Rows   int
	Cols   int

	// Tiles in row-major order, only for KindTiles.
	Tiles []Tile
	// Image path, only for KindImage.
	Image string

	Message  string
	Messages []string
}

// TileDir is the directory under the asset root that holds tile images.
const TileDir = "artwork"

// Assets resolves artwork paths under Root, the directory holding artwork/
// and audio/.
type Assets struct {
	Root string
}

// TilePath returns the image for a symbol, artwork/<sym>.png. Player frames
// live in artwork/player/.
func (a Assets) TilePath(s world.Symbol) string {
	if s.IsFrame() {
		return filepath.Join(a.Root, TileDir, "player", s.String()+".png")
	}
	return filepath.Join(a.Root, TileDir, s.String()+".png")
}

// Path resolves a campaign asset path.
func (a Assets) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(a.Root, p)
}

// Build renders g into a View. It does not modify g.
func Build(g *state.Game, assets Assets) View {
	v := View{Screen: g.Screen}
	if len(g.Messages) > 0 {
		v.Messages = append([]string(nil), g.Messages...)
	}
	if g.Grid != nil {
		v.Rows, v.Cols = g.Grid.Rows(), g.Grid.Cols()
	}

	lvl := g.CurrentLevel()
	switch g.Screen {
	case state.ScreenDialog:
		v.Kind = KindImage
		v.Image = assets.Path(lvl.Dialog)

	case state.ScreenVictory:
		v.Kind = KindImage
		v.Image = assets.Path(lvl.Victory)

	case state.ScreenNotice:
		v.Kind = KindNotice
		v.Message = g.Notice

	case state.ScreenPlaying:
		v.Kind = KindTiles
		if g.Grid == nil {
			break
		}
		v.Tiles = make([]Tile, 0, v.Rows*v.Cols)
		g.Grid.ForEachCell(func(row, col int, s world.Symbol) {
			v.Tiles = append(v.Tiles, Tile{Row: row, Col: col, Symbol: s, Image: assets.TilePath(s)})
		})
	}
	return v
}
