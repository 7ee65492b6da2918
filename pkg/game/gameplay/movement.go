// Package gameplay provides core game logic for player movement and level flow.
package gameplay

import (
	"fmt"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"batteryrush/pkg/engine/world"
	"batteryrush/pkg/game/state"
)

// MoveResult is the outcome of a single move attempt.
type MoveResult int

const (
	MoveBlocked  MoveResult = iota // wall or edge, nothing changed
	MoveAccepted                   // player stepped onto the target cell
	MoveExit                       // target was the exit, level complete
)

func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "blocked"
	case MoveAccepted:
		return "accepted"
	case MoveExit:
		return "exit"
	}
	return fmt.Sprintf("MoveResult(%d)", int(r))
}

// framePairs holds the two walking frames for each direction.
var framePairs = map[world.Direction][2]world.Symbol{
	world.Up:    {world.FrameUpA, world.FrameUpB},
	world.Down:  {world.FrameDownA, world.FrameDownB},
	world.Left:  {world.FrameLeftA, world.FrameLeftB},
	world.Right: {world.FrameRightA, world.FrameRightB},
}

// NextFrame returns the frame shown after a step in dir. Turning always shows
// the first frame of the new direction; repeated steps alternate the pair.
func NextFrame(dir world.Direction, current world.Symbol) world.Symbol {
	pair, ok := framePairs[dir]
	if !ok {
		return current
	}
	if current != pair[0] {
		return pair[0]
	}
	return pair[1]
}

// TryMove applies one step of the player in dir. Blocked moves leave the grid,
// position and frame untouched.
func TryMove(g *state.Game, dir world.Direction) MoveResult {
	if g.Grid == nil {
		return MoveBlocked
	}
	if !g.PlayerCellOK() {
		cell, _ := g.Grid.Get(g.Player.Row, g.Player.Col)
		log.WithFields(log.Fields{
			"row":   g.Player.Row,
			"col":   g.Player.Col,
			"frame": g.Player.Frame.String(),
			"cell":  cell.String(),
		}).Error("Player position does not match the grid, ignoring move")
		return MoveBlocked
	}

	row, col, ok := g.Grid.Neighbor(g.Player.Row, g.Player.Col, dir)
	if !ok {
		return MoveBlocked
	}
	target, _ := g.Grid.Get(row, col)
	if target.IsBlocking() {
		return MoveBlocked
	}

	g.Player.Frame = NextFrame(dir, g.Player.Frame)

	if target.IsExit() {
		// The player turns to face the exit but stays put.
		g.Grid.Set(g.Player.Row, g.Player.Col, g.Player.Frame)
		g.Screen = state.ScreenVictory
		g.Audio.PlayOnce(assetPath(g, g.CurrentLevel().VictorySound))
		logMessage(g, "LEVEL_COMPLETE")
		log.WithFields(log.Fields{
			"level": g.Level,
			"row":   g.Player.Row,
			"col":   g.Player.Col,
		}).Info("Exit reached")
		return MoveExit
	}

	g.Grid.Set(g.Player.Row, g.Player.Col, world.SymbolFloor)
	g.Grid.Set(row, col, g.Player.Frame)
	g.Player.Row, g.Player.Col = row, col
	return MoveAccepted
}

func assetPath(g *state.Game, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(g.AssetDir, p)
}

// tr translates key and formats it with a.
func tr(key string, a ...any) string {
	msg := gotext.Get(key)
	if len(a) > 0 {
		msg = fmt.Sprintf(msg, a...)
	}
	return msg
}

func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(tr(key, a...))
}
