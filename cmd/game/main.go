package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"nova-arena/internal/commons/logger_config"
	"nova-arena/internal/config"
	"nova-arena/internal/game"
	"nova-arena/internal/script"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (or NOVA_CONFIG)")
	scriptPath := flag.String("script", "", "path to the tuning script (overrides config)")
	seed := flag.Int64("seed", 0, "simulation seed (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger_config.Errorf("load config: %v", err)
		os.Exit(1)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}
	if *scriptPath != "" {
		cfg.Script.Path = *scriptPath
	}
	if *seed != 0 {
		cfg.Sim.Seed = *seed
	}

	// A broken or missing script is not fatal: the manager stays usable for
	// later reloads and the world falls back to built-in defaults.
	provider, err := script.NewManager(cfg.Script.GetPath())
	if err != nil {
		logger_config.Warnf("tuning script %q unavailable, running on defaults: %v",
			cfg.Script.GetPath(), err)
	}

	g := game.New(game.Options{
		ArenaW:       cfg.Arena.GetWidth(),
		ArenaH:       cfg.Arena.GetHeight(),
		TickRate:     cfg.Sim.GetTickRate(),
		Seed:         cfg.Sim.Seed,
		Provider:     provider,
		AssetDir:     cfg.Assets.GetDir(),
		AssetWorkers: cfg.Assets.GetWorkers(),
	})
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.GetWidth(), cfg.Window.GetHeight())
	ebiten.SetWindowTitle(cfg.Window.GetTitle())

	if err := ebiten.RunGame(g); err != nil {
		logger_config.Errorf("run game: %v", err)
	}
}
