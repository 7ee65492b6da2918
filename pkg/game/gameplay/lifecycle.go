package gameplay

import (
	"context"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"batteryrush/pkg/engine/audio"
	"batteryrush/pkg/engine/telemetry"
	"batteryrush/pkg/game/generator"
	"batteryrush/pkg/game/levels"
	"batteryrush/pkg/game/maze"
	"batteryrush/pkg/game/state"
)

// BuildGame creates a new game on the dialog screen with startLevel loaded.
// A level that fails to load leaves the game on the notice screen.
func BuildGame(campaign *levels.Campaign, player audio.Player, assetDir string, startLevel int) *state.Game {
	g := state.NewGame(campaign, player)
	if assetDir != "" {
		g.AssetDir = assetDir
	}
	if startLevel < 0 || startLevel >= g.Campaign.Len() {
		log.Warnf("Start level %d out of range, starting at 0", startLevel)
		startLevel = 0
	}

	if err := LoadLevel(context.Background(), g, startLevel); err != nil {
		return g
	}
	g.Screen = state.ScreenDialog
	return g
}

// LoadLevel reads the maze for campaign level index into g. On failure the
// game switches to the notice screen and the error is returned.
func LoadLevel(ctx context.Context, g *state.Game, index int) error {
	_, span := telemetry.Tracer("gameplay").Start(ctx, "level.load")
	defer span.End()

	lvl, ok := g.Campaign.Level(index)
	if !ok {
		lvl = levels.DefaultLevel()
	}
	span.SetAttributes(
		attribute.Int("level.index", index),
		attribute.String("level.maze", lvl.Source()),
	)

	m, seed, err := levelMaze(g, index, lvl)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.WithFields(log.Fields{
			"level": index,
			"path":  lvl.Source(),
		}).Errorf("Could not load maze: %v", err)

		g.Grid = nil
		g.Level = index
		g.Seed = 0
		g.Screen = state.ScreenNotice
		g.Notice = tr("MAZE_UNAVAILABLE", lvl.Source())
		g.Audio.Stop()
		return err
	}

	g.Grid = m.Grid
	g.Player = state.Player{Row: m.StartRow, Col: m.StartCol, Frame: m.StartFrame}
	g.Level = index
	g.Seed = seed
	g.Notice = ""

	span.SetAttributes(
		attribute.Int("maze.rows", m.Grid.Rows()),
		attribute.Int("maze.cols", m.Grid.Cols()),
		attribute.Int64("maze.seed", seed),
	)
	log.WithFields(log.Fields{
		"level": index,
		"path":  lvl.Source(),
		"seed":  seed,
		"rows":  m.Grid.Rows(),
		"cols":  m.Grid.Cols(),
	}).Info("Level loaded")

	g.ClearMessages()
	logMessage(g, "LEVEL_NAME", lvl.Name)
	return nil
}

// levelMaze reads the level's maze file, or generates one. A generated level
// without a fixed seed keeps the game's current seed when it is reloaded and
// draws a new one when it is entered from another level.
func levelMaze(g *state.Game, index int, lvl levels.Level) (*maze.Maze, int64, error) {
	if lvl.Generator == "" {
		m, err := maze.Load(lvl.Maze)
		return m, 0, err
	}

	gen, err := generator.ByName(lvl.Generator)
	if err != nil {
		return nil, 0, err
	}
	seed := lvl.Seed
	if seed == 0 {
		seed = g.Seed
		if index != g.Level || g.Grid == nil || seed == 0 {
			seed = now().UnixNano()
		}
	}

	m, err := maze.FromGrid(gen.Generate(rand.New(rand.NewSource(seed)), index+1))
	return m, seed, err
}

// StartLevel leaves the dialog screen and starts the level music.
func StartLevel(g *state.Game) {
	g.Screen = state.ScreenPlaying
	g.Audio.PlayLoop(assetPath(g, g.CurrentLevel().Music))
	logMessage(g, "FIND_THE_EXIT")
}

// ResetLevel reloads the current level from disk.
func ResetLevel(g *state.Game) {
	if err := LoadLevel(context.Background(), g, g.Level); err != nil {
		return
	}
	g.Screen = state.ScreenPlaying
	logMessage(g, "LEVEL_RESET")
}

// AdvanceLevel moves on to the next campaign level and starts playing it.
// Returns false, leaving the victory screen up, when there is no next level.
func AdvanceLevel(g *state.Game) bool {
	if !g.Campaign.HasNext(g.Level) {
		log.WithField("level", g.Level).Debug("Campaign complete")
		logMessage(g, "CAMPAIGN_COMPLETE")
		return false
	}
	if err := LoadLevel(context.Background(), g, g.Level+1); err != nil {
		return true
	}
	StartLevel(g)
	return true
}
