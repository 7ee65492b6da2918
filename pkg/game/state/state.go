// Package state holds the mutable game model shared by the dispatcher and the
// view builder.
package state

import (
	"batteryrush/pkg/engine/audio"
	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/levels"
)

// Screen is the top level UI state.
type Screen int

const (
	ScreenDialog  Screen = iota // intro image, waiting for Enter
	ScreenPlaying               // maze on screen, accepting moves
	ScreenVictory               // exit reached, waiting for Enter
	ScreenNotice                // level could not be loaded
)

func (s Screen) String() string {
	switch s {
	case ScreenDialog:
		return "dialog"
	case ScreenPlaying:
		return "playing"
	case ScreenVictory:
		return "victory"
	case ScreenNotice:
		return "notice"
	}
	return "unknown"
}

// Player is the avatar's position and current sprite frame.
type Player struct {
	Row   int
	Col   int
	Frame world.Symbol
}

// Game represents the game state for Battery Rush
type Game struct {
	Grid   *world.Grid
	Player Player
	Screen Screen

	Campaign *levels.Campaign
	Level    int // index into Campaign.Levels

	// Seed of the generated maze in play. Reset reuses it.
	Seed int64

	Audio audio.Player

	// AssetDir is the root for artwork and audio paths.
	AssetDir string

	Messages []string

	// Notice is shown on ScreenNotice.
	Notice string

	Quit bool
}

// NewGame creates a new game instance on the dialog screen.
func NewGame(campaign *levels.Campaign, player audio.Player) *Game {
	if campaign == nil {
		campaign = levels.Default()
	}
	if player == nil {
		player = audio.Nop{}
	}
	return &Game{
		Campaign: campaign,
		Audio:    player,
		AssetDir: ".",
		Screen:   ScreenDialog,
		Messages: make([]string, 0),
	}
}

// CurrentLevel returns the campaign entry being played.
func (g *Game) CurrentLevel() levels.Level {
	lvl, ok := g.Campaign.Level(g.Level)
	if !ok {
		return levels.DefaultLevel()
	}
	return lvl
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// PlayerCellOK reports whether the grid cell at the player's position holds
// the player's frame.
func (g *Game) PlayerCellOK() bool {
	if g.Grid == nil {
		return false
	}
	s, ok := g.Grid.Get(g.Player.Row, g.Player.Col)
	return ok && s == g.Player.Frame && s.IsFrame()
}
