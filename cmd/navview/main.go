package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Scene-Walk/internal/config"
	"github.com/Garsondee/Scene-Walk/internal/scene"
	"github.com/Garsondee/Scene-Walk/internal/view"
)

func main() {
	var scenePath string
	var configPath string

	flag.StringVar(&scenePath, "scene", "", "scene YAML file to open")
	flag.StringVar(&configPath, "config", "", "optional TOML config file")
	flag.Parse()

	if scenePath == "" {
		log.Fatal("error: -scene is required")
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	f, err := scene.Load(scenePath)
	if err != nil {
		logger.Fatal("load scene", zap.Error(err))
	}
	if f.Grid.CellSize == 0 {
		f.Grid.CellSize = cfg.Grid.CellSize
	}
	if f.Grid.AgentRadius == 0 {
		f.Grid.AgentRadius = cfg.Grid.AgentRadius
	}

	nv, hm, err := scene.Build(f)
	if err != nil {
		logger.Fatal("build scene", zap.Error(err))
	}
	logger.Info("scene loaded",
		zap.String("name", f.Name),
		zap.Int("regions", len(f.Regions)),
		zap.Int("hotspots", hm.Count()))

	ebiten.SetWindowTitle("Scene Walk - " + f.Name)
	ebiten.SetWindowSize(cfg.Viewer.WindowWidth, cfg.Viewer.WindowHeight)
	if err := ebiten.RunGame(view.New(f, nv, hm, cfg.Viewer, logger)); err != nil {
		logger.Fatal("viewer exited", zap.Error(err))
	}
}
