package gameplay

import (
	"time"

	log "github.com/sirupsen/logrus"

	engineinput "batteryrush/pkg/engine/input"
	"batteryrush/pkg/game/devtools"
	"batteryrush/pkg/game/state"
)

// Map dumps go here. Tests point it at a temp dir.
var (
	mapDumpDir = "."
	now        = time.Now
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It is the only place the model changes in response to input.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if intent.Action == engineinput.ActionQuit {
		log.Info("Quit requested")
		g.Quit = true
		return
	}

	switch g.Screen {
	case state.ScreenDialog:
		if intent.Action == engineinput.ActionConfirm {
			StartLevel(g)
		}

	case state.ScreenPlaying:
		processPlaying(g, intent)

	case state.ScreenVictory:
		if intent.Action == engineinput.ActionConfirm {
			AdvanceLevel(g)
		}

	case state.ScreenNotice:
		// Only quit is honoured.
	}
}

func processPlaying(g *state.Game, intent engineinput.Intent) {
	if dir, ok := intent.Action.Direction(); ok {
		result := TryMove(g, dir)
		log.WithFields(log.Fields{
			"dir":    dir,
			"result": result,
		}).Debug("Move")
		return
	}

	switch intent.Action {
	case engineinput.ActionResetLevel:
		ResetLevel(g)

	case engineinput.ActionMapDump:
		path, err := devtools.DumpMapToFile(g, mapDumpDir, now())
		if err != nil {
			log.Warnf("Map dump failed: %v", err)
			logMessage(g, "MAP_DUMP_FAILED", err)
			return
		}
		log.WithField("path", path).Info("Map dumped")
		logMessage(g, "MAP_DUMPED", path)
	}
}
