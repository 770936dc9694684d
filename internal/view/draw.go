package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Scene-Walk/internal/nav"
)

var (
	bgCol         = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	walkableCol   = color.RGBA{R: 40, G: 90, B: 50, A: 120}
	blockedCol    = color.RGBA{R: 120, G: 40, B: 40, A: 120}
	regionEdge    = color.RGBA{R: 200, G: 200, B: 200, A: 90}
	gridLineCol   = color.RGBA{R: 255, G: 255, B: 255, A: 18}
	gridCellCol   = color.RGBA{R: 200, G: 60, B: 60, A: 70}
	pathCol       = color.RGBA{R: 255, G: 220, B: 80, A: 255}
	agentCol      = color.RGBA{R: 90, G: 170, B: 255, A: 255}
	behindCol     = color.RGBA{R: 80, G: 70, B: 120, A: 170}
	hotspotCol    = color.RGBA{R: 80, G: 200, B: 220, A: 255}
	hotspotDimCol = color.RGBA{R: 80, G: 200, B: 220, A: 70}
)

func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(bgCol)

	if v.showRegions {
		v.drawRegions(screen)
	}
	if v.showGrid {
		v.drawGrid(screen)
	}
	v.drawPath(screen)
	v.drawAgent(screen)
	v.drawWalkBehinds(screen)
	if v.showHotspots {
		v.drawHotspots(screen)
	}
	if v.showHUD {
		v.drawHUD(screen)
	}
}

func fillPolygon(screen *ebiten.Image, verts []nav.Point, col color.RGBA) {
	if len(verts) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(verts[0].X), float32(verts[0].Y))
	for _, p := range verts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(col)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}

func strokePolygon(screen *ebiten.Image, verts []nav.Point, width float32, col color.RGBA) {
	n := len(verts)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			width, col, false)
	}
}

func (v *View) drawRegions(screen *ebiten.Image) {
	for _, r := range v.nv.Area().Regions() {
		col := walkableCol
		if !r.Walkable {
			col = blockedCol
		}
		fillPolygon(screen, r.Vertices(), col)
		strokePolygon(screen, r.Vertices(), 1.0, regionEdge)
	}
}

func (v *View) drawGrid(screen *ebiten.Image) {
	g := v.nv.Grid()
	if g == nil {
		return
	}
	cs := float32(g.CellSize())
	for cy := 0; cy < g.Rows(); cy++ {
		for cx := 0; cx < g.Cols(); cx++ {
			if !g.Walkable(cx, cy) {
				vector.FillRect(screen, float32(cx)*cs, float32(cy)*cs, cs, cs, gridCellCol, false)
			}
		}
	}
	w := float32(g.Cols()) * cs
	h := float32(g.Rows()) * cs
	for cx := 0; cx <= g.Cols(); cx++ {
		x := float32(cx) * cs
		vector.StrokeLine(screen, x, 0, x, h, 1.0, gridLineCol, false)
	}
	for cy := 0; cy <= g.Rows(); cy++ {
		y := float32(cy) * cs
		vector.StrokeLine(screen, 0, y, w, y, 1.0, gridLineCol, false)
	}
}

func (v *View) drawPath(screen *ebiten.Image) {
	if len(v.path) == 0 {
		return
	}
	prev := v.agent
	for i := v.pathIdx; i < len(v.path); i++ {
		wp := v.path[i]
		vector.StrokeLine(screen,
			float32(prev.X), float32(prev.Y), float32(wp.X), float32(wp.Y),
			1.5, pathCol, true)
		vector.FillCircle(screen, float32(wp.X), float32(wp.Y), 2.0, pathCol, true)
		prev = wp
	}
}

func (v *View) drawAgent(screen *ebiten.Image) {
	scale := v.nv.Area().ScaleAtY(v.agent.Y)
	r := float32(agentBaseSize / 2 * scale)
	vector.FillCircle(screen, float32(v.agent.X), float32(v.agent.Y), r, agentCol, true)
	vector.StrokeCircle(screen, float32(v.agent.X), float32(v.agent.Y), r, 1.0, color.White, true)
}

// drawWalkBehinds paints overlay regions whose threshold sits below the
// agent, so the agent appears behind them.
func (v *View) drawWalkBehinds(screen *ebiten.Image) {
	for _, wb := range v.nv.Area().WalkBehindsAtY(v.agent.Y) {
		if wb.Region == nil {
			continue
		}
		fillPolygon(screen, wb.Region.Vertices(), behindCol)
	}
}

func (v *View) drawHotspots(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, h := range v.hm.Hotspots() {
		col := hotspotDimCol
		if h == v.hovered {
			col = hotspotCol
		}
		b := h.Bounds
		vector.StrokeRect(screen,
			float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
			1.0, col, false)
		if !h.Enabled {
			vector.StrokeLine(screen,
				float32(b.X), float32(b.Y), float32(b.Right()), float32(b.Bottom()),
				1.0, col, false)
		}
		text.Draw(screen, h.Name, face, int(b.X)+2, int(b.Y)-3, col)
	}
}

func (v *View) drawHUD(screen *ebiten.Image) {
	stats := ""
	if g := v.nv.Grid(); g != nil {
		s := g.Stats()
		stats = fmt.Sprintf("grid %dx%d  %d/%d walkable", g.Cols(), g.Rows(), s.Walkable, s.Total)
	}
	lines := []string{
		fmt.Sprintf("scene: %s  %s", v.file.Name, stats),
		fmt.Sprintf("agent (%.0f, %.0f)  scale %.2f", v.agent.X, v.agent.Y, v.nv.Area().ScaleAtY(v.agent.Y)),
		"[LMB] walk  [RMB] teleport  [G]rid [H]otspots [R]egions [V]alidate",
		"[C] copy grid JSON  [X] copy hotspot JSON  [Tab] HUD",
	}
	if v.hovered != nil {
		lines = append(lines, fmt.Sprintf("hotspot: %s  %s", v.hovered.Name, v.hovered.Description))
	}
	if v.status != "" {
		lines = append(lines, v.status)
	}
	y := 6
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 6, y)
		y += 14
	}
}
