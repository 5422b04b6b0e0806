package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/phaseswap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := phaseswap.DefaultConfig()
	if *configPath != "" {
		loaded, err := phaseswap.LoadConfig(*configPath)
		if err != nil {
			phaseswap.NewDefaultLogger("phaseswap", false).Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Log.Debug = true
	}

	logger := phaseswap.NewDefaultLogger(cfg.Log.Prefix, cfg.Log.Debug)
	defer logger.Sync()

	window, err := phaseswap.NewWindowState(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	if err != nil {
		logger.Errorf("%v", err)
		logger.Sync()
		os.Exit(1)
	}
	defer window.Close()

	app := phaseswap.NewAppBuilder().
		UseStates(phaseswap.StateRunning, phaseswap.StateExit).
		UseModule(
			phaseswap.LoggingModule{Logger: logger},
			phaseswap.TimeModule{},
			phaseswap.PlatformWindowModule{Window: window},
			phaseswap.InputModule{},
			phaseswap.AssetServerModule{},
			phaseswap.CharacterModule{Controls: cfg.Controls.Controls()},
			phaseswap.SceneModule{Scene: phaseswap.DefaultScene(cfg)},
		).
		Build()

	app.Run()
}
