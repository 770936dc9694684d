// Package view is the interactive scene viewer. It renders the walkable
// geometry, the rasterized grid, and the hotspots, and lets the author click
// around to exercise pathfinding the way a player character would.
package view

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/Garsondee/Scene-Walk/internal/config"
	"github.com/Garsondee/Scene-Walk/internal/nav"
	"github.com/Garsondee/Scene-Walk/internal/scene"
)

const (
	walkSpeed     = 2.5 // world units per tick at scale 1.0
	agentBaseSize = 24  // diameter at scale 1.0
	nearestRadius = 120
	nearestStep   = 4
)

type View struct {
	file   *scene.File
	nv     *nav.Navigator
	hm     *nav.HotspotManager
	logger *zap.Logger

	agent nav.Point
	path  []nav.Point
	// next waypoint index into path; len(path) means arrived
	pathIdx int

	showRegions  bool
	showGrid     bool
	showHotspots bool
	showHUD      bool

	hovered *nav.Hotspot
	status  string

	prevKeys       map[ebiten.Key]bool
	prevMouseLeft  bool
	prevMouseRight bool
}

func New(f *scene.File, nv *nav.Navigator, hm *nav.HotspotManager, cfg config.ViewerConfig, logger *zap.Logger) *View {
	if logger == nil {
		logger = zap.NewNop()
	}
	nv.UpdateNavigation()

	v := &View{
		file:         f,
		nv:           nv,
		hm:           hm,
		logger:       logger,
		showRegions:  true,
		showGrid:     cfg.ShowGrid,
		showHotspots: cfg.ShowHotspots,
		showHUD:      true,
		prevKeys:     map[ebiten.Key]bool{},
	}
	v.agent = v.spawnPoint()
	return v
}

// spawnPoint puts the agent at the scene centre, or the nearest walkable
// point when the centre is blocked.
func (v *View) spawnPoint() nav.Point {
	center := nav.Point{X: v.file.Width / 2, Y: v.file.Height / 2}
	if p, ok := nav.FindNearestWalkablePoint(center, v.nv.Area().Regions(), nearestRadius, nearestStep); ok {
		return p
	}
	return center
}

func (v *View) Update() error {
	currentKeys := map[ebiten.Key]bool{}
	justPressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !v.prevKeys[k]
	}

	if justPressed(ebiten.KeyG) {
		v.showGrid = !v.showGrid
	}
	if justPressed(ebiten.KeyH) {
		v.showHotspots = !v.showHotspots
	}
	if justPressed(ebiten.KeyR) {
		v.showRegions = !v.showRegions
	}
	if justPressed(ebiten.KeyTab) {
		v.showHUD = !v.showHUD
	}
	if justPressed(ebiten.KeyC) {
		v.copyGridExport()
	}
	if justPressed(ebiten.KeyX) {
		v.copyHotspotExport()
	}
	if justPressed(ebiten.KeyV) {
		rep := scene.Validate(v.file)
		if rep.OK() {
			v.status = fmt.Sprintf("validation passed (%d warnings)", len(rep.Warnings))
		} else {
			v.status = fmt.Sprintf("validation FAILED: %d errors, %d warnings", len(rep.Errors), len(rep.Warnings))
		}
		v.logger.Info("validation run",
			zap.Int("errors", len(rep.Errors)),
			zap.Int("warnings", len(rep.Warnings)))
	}
	v.prevKeys = currentKeys

	mx, my := ebiten.CursorPosition()
	cursor := nav.Point{X: float64(mx), Y: float64(my)}
	v.hovered = v.hm.HotspotAt(cursor)

	// Left click: walk there. Clicks on blocked ground recover to the
	// nearest walkable point first.
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if left && !v.prevMouseLeft {
		v.walkTo(cursor)
	}
	v.prevMouseLeft = left

	// Right click: teleport, constrained to walkable ground.
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if right && !v.prevMouseRight {
		v.agent = v.nv.Area().ConstrainToWalkable(v.agent, cursor)
		v.path = nil
		v.pathIdx = 0
	}
	v.prevMouseRight = right

	v.advanceAgent()
	return nil
}

func (v *View) walkTo(target nav.Point) {
	goal := target
	if !v.nv.IsPointWalkable(goal) {
		p, ok := nav.FindNearestWalkablePoint(goal, v.nv.Area().Regions(), nearestRadius, nearestStep)
		if !ok {
			v.status = fmt.Sprintf("no walkable ground near (%.0f, %.0f)", target.X, target.Y)
			return
		}
		goal = p
	}
	path := v.nv.FindPath(v.agent.X, v.agent.Y, goal.X, goal.Y)
	if path == nil {
		v.status = fmt.Sprintf("no path to (%.0f, %.0f)", goal.X, goal.Y)
		v.logger.Debug("path query failed",
			zap.Float64("goal_x", goal.X),
			zap.Float64("goal_y", goal.Y))
		return
	}
	v.path = path
	v.pathIdx = 0
	v.status = fmt.Sprintf("%d waypoints", len(path))
}

// advanceAgent walks the agent along the current path, slower when the
// scale zones shrink it toward the back of the scene.
func (v *View) advanceAgent() {
	if v.pathIdx >= len(v.path) {
		return
	}
	speed := walkSpeed * v.nv.Area().ScaleAtY(v.agent.Y)
	for speed > 0 && v.pathIdx < len(v.path) {
		wp := v.path[v.pathIdx]
		d := v.agent.Dist(wp)
		if d <= speed {
			v.agent = wp
			v.pathIdx++
			speed -= d
			continue
		}
		v.agent.X += (wp.X - v.agent.X) / d * speed
		v.agent.Y += (wp.Y - v.agent.Y) / d * speed
		return
	}
}

func (v *View) copyGridExport() {
	data, err := v.nv.Grid().ExportJSON()
	if err != nil {
		v.status = "grid export failed"
		v.logger.Warn("grid export failed", zap.Error(err))
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		v.status = "clipboard unavailable"
		v.logger.Warn("clipboard write failed", zap.Error(err))
		return
	}
	v.status = "grid JSON copied to clipboard"
}

func (v *View) copyHotspotExport() {
	data, err := nav.MarshalHotspots(v.hm.Export())
	if err != nil {
		v.status = "hotspot export failed"
		v.logger.Warn("hotspot export failed", zap.Error(err))
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		v.status = "clipboard unavailable"
		v.logger.Warn("clipboard write failed", zap.Error(err))
		return
	}
	v.status = "hotspot JSON copied to clipboard"
}

func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.file.Width), int(v.file.Height)
}
