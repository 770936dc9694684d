package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Garsondee/Scene-Walk/internal/config"
	"github.com/Garsondee/Scene-Walk/internal/inspect"
	"github.com/Garsondee/Scene-Walk/internal/nav"
	"github.com/Garsondee/Scene-Walk/internal/scene"
)

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

// loadScene reads the scene file and fills in grid defaults from config.
func loadScene(path string, cfg *config.Config) (*scene.File, error) {
	f, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	if f.Grid.CellSize == 0 {
		f.Grid.CellSize = cfg.Grid.CellSize
	}
	if f.Grid.AgentRadius == 0 {
		f.Grid.AgentRadius = cfg.Grid.AgentRadius
	}
	return f, nil
}

func printReport(rep *nav.Report) {
	for _, e := range rep.Errors {
		fmt.Printf("ERROR   %s\n", e)
	}
	for _, w := range rep.Warnings {
		fmt.Printf("warning %s\n", w)
	}
}

func runValidate(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := loadScene(path, cfg)
	if err != nil {
		return err
	}

	rep := scene.Validate(f)
	printReport(rep)
	fmt.Printf("%s: %d errors, %d warnings\n", f.Name, len(rep.Errors), len(rep.Warnings))
	if !rep.OK() {
		os.Exit(1)
	}
	return nil
}

func runStats(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	nv, hm, err := scene.Build(f)
	if err != nil {
		return err
	}
	nv.UpdateNavigation()

	g := nv.Grid()
	gs := g.Stats()
	fmt.Printf("scene    %s (%gx%g)\n", f.Name, f.Width, f.Height)
	fmt.Printf("grid     %dx%d cells at %g units (agent radius %g)\n",
		g.Cols(), g.Rows(), g.CellSize(), f.Grid.AgentRadius)
	fmt.Printf("cells    %d walkable / %d blocked / %d total (%.1f%% walkable)\n",
		gs.Walkable, gs.Blocked, gs.Total, 100*float64(gs.Walkable)/float64(gs.Total))

	hs := hm.Statistics()
	fmt.Printf("hotspots %d, total area %.0f, average area %.0f, %d overlapping pairs\n",
		hs.Count, hs.TotalArea, hs.AverageArea, hs.OverlapPairs)
	return nil
}

func runPath(path string, from, to []float64) error {
	if len(from) != 2 || len(to) != 2 {
		return fmt.Errorf("-from and -to each take exactly two values, e.g. --from 10,20")
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	nv, _, err := scene.Build(f)
	if err != nil {
		return err
	}
	nv.UpdateNavigation()

	waypoints := nv.FindPath(from[0], from[1], to[0], to[1])
	if waypoints == nil {
		return fmt.Errorf("no path from (%g, %g) to (%g, %g)", from[0], from[1], to[0], to[1])
	}
	total := 0.0
	for i, wp := range waypoints {
		fmt.Printf("%3d  (%.1f, %.1f)\n", i, wp.X, wp.Y)
		if i > 0 {
			total += waypoints[i-1].Dist(wp)
		}
	}
	fmt.Printf("%d waypoints, length %.1f\n", len(waypoints), total)
	return nil
}

func runExport(path, out string, hotspots bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	f, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	nv, hm, err := scene.Build(f)
	if err != nil {
		return err
	}

	var data []byte
	if hotspots {
		data, err = nav.MarshalHotspots(hm.Export())
	} else {
		nv.UpdateNavigation()
		data, err = nv.Grid().ExportJSON()
	}
	if err != nil {
		return err
	}

	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	return os.WriteFile(out, data, 0o644)
}

func runSchema() error {
	data, err := scene.Schema()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func runServe(path, addr string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Inspect.BindAddress
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	f, err := loadScene(path, cfg)
	if err != nil {
		return err
	}
	rep := scene.Validate(f)
	if !rep.OK() {
		printReport(rep)
		return fmt.Errorf("scene has validation errors; fix before serving")
	}
	nv, hm, err := scene.Build(f)
	if err != nil {
		return err
	}
	nv.UpdateNavigation()
	logger.Info("scene ready",
		zap.String("scene", f.Name),
		zap.Int("regions", len(f.Regions)),
		zap.Int("hotspots", hm.Count()))

	return inspect.NewServer(f.Name, nv, hm, logger).ListenAndServe(addr)
}
