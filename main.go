package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/leonelquinteros/gotext"
	log "github.com/sirupsen/logrus"

	"batteryrush/pkg/engine/audio"
	engineinput "batteryrush/pkg/engine/input"
	"batteryrush/pkg/engine/logging"
	"batteryrush/pkg/engine/telemetry"
	"batteryrush/pkg/game/config"
	"batteryrush/pkg/game/devtools"
	"batteryrush/pkg/game/gameplay"
	"batteryrush/pkg/game/generator"
	"batteryrush/pkg/game/levels"
	"batteryrush/pkg/game/renderer"
	"batteryrush/pkg/game/renderer/cellscreen"
	ebitenrenderer "batteryrush/pkg/game/renderer/ebiten"
	"batteryrush/pkg/game/renderer/tui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "preferences file")
	rendererName := flag.String("renderer", "", "renderer backend: ebiten, tui or cell")
	campaignPath := flag.String("campaign", "", "campaign manifest (levels.yaml)")
	assetDir := flag.String("assets", "", "directory holding artwork/ and audio/")
	mute := flag.Bool("mute", false, "disable music and sound effects")
	startLevel := flag.Int("level", 1, "starting level number (for developer testing)")
	generateTo := flag.String("generate", "", "write a random maze to this file and exit")
	generatorName := flag.String("generator", "", "maze generator for -generate: "+strings.Join(generator.Names(), " or ")+
		" (default "+generator.DefaultGenerator.Name()+")")
	seed := flag.Int64("seed", 0, "seed for -generate (0 picks one from the clock)")
	flag.Parse()

	if *generateTo != "" {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		if err := devtools.GenerateMazeFile(*generateTo, *generatorName, *seed, *startLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Generate: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (seed %d)\n", *generateTo, *seed)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid preferences: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg, *rendererName, *campaignPath, *assetDir, *mute)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	// Terminal renderers own stdout, so their logs go to a file.
	logPath := cfg.LogPath
	if cfg.Renderer == config.RendererEbiten {
		logPath = ""
	}
	closeLog, err := logging.Setup(logPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx := context.Background()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Warnf("Telemetry setup failed, running without it: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warnf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")

	campaign, err := levels.Load(cfg.Campaign)
	if err != nil {
		log.Fatalf("Failed to load campaign: %v", err)
	}

	var player audio.Player = audio.Nop{}
	if !cfg.Muted {
		player = audio.NewEbitenPlayer(cfg.Volume)
	}
	defer player.Stop()

	r := newRenderer(&cfg)
	if err := r.Init(); err != nil {
		log.Fatalf("Failed to initialize %s renderer: %v", cfg.Renderer, err)
	}

	g := gameplay.BuildGame(campaign, player, cfg.AssetDir, *startLevel-1)
	assets := renderer.Assets{Root: cfg.AssetDir}

	log.WithFields(log.Fields{
		"renderer": cfg.Renderer,
		"levels":   campaign.Len(),
		"muted":    cfg.Muted,
	}).Info("Starting Battery Rush")

	r.RenderFrame(renderer.Build(g, assets))
	runErr := r.Run(func(intent engineinput.Intent) (renderer.View, bool) {
		gameplay.ProcessIntent(g, intent)
		return renderer.Build(g, assets), g.Quit
	})
	r.Close()

	if runErr != nil {
		log.Fatalf("Game error: %v", runErr)
	}
}

// applyFlags lets command line flags override preferences and environment.
func applyFlags(cfg *config.Config, rendererName, campaignPath, assetDir string, mute bool) {
	if rendererName != "" {
		cfg.Renderer = rendererName
	}
	if campaignPath != "" {
		cfg.Campaign = campaignPath
	}
	if assetDir != "" {
		cfg.AssetDir = assetDir
	}
	if mute {
		cfg.Muted = true
	}
}

func newRenderer(cfg *config.Config) renderer.Renderer {
	switch cfg.Renderer {
	case config.RendererTUI:
		return tui.New()
	case config.RendererCell:
		return cellscreen.New()
	}
	return ebitenrenderer.New(cfg)
}
