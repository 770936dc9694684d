// Package scene reads and writes the YAML scene files the tools operate on,
// and builds the navigation model from them. The core library in
// internal/nav never touches files; the host engine hands it geometry, and
// this package is the tooling-side counterpart of that handoff.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Garsondee/Scene-Walk/internal/nav"
)

// File is the on-disk scene description.
type File struct {
	Name   string  `yaml:"name" json:"name"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`

	Grid        GridSettings    `yaml:"grid,omitempty" json:"grid,omitempty"`
	Regions     []RegionDef     `yaml:"regions,omitempty" json:"regions,omitempty"`
	ScaleZones  []ScaleZoneDef  `yaml:"scale_zones,omitempty" json:"scale_zones,omitempty"`
	WalkBehinds []WalkBehindDef `yaml:"walk_behinds,omitempty" json:"walk_behinds,omitempty"`
	Hotspots    []HotspotDef    `yaml:"hotspots,omitempty" json:"hotspots,omitempty"`
}

// GridSettings configure rasterization. Zero values fall back to the
// defaults in internal/nav and internal/config.
type GridSettings struct {
	CellSize    float64 `yaml:"cell_size,omitempty" json:"cell_size,omitempty"`
	AgentRadius float64 `yaml:"agent_radius,omitempty" json:"agent_radius,omitempty"`
}

type RegionDef struct {
	Name     string       `yaml:"name" json:"name"`
	Walkable bool         `yaml:"walkable" json:"walkable"`
	ZOrder   int          `yaml:"z_order,omitempty" json:"z_order,omitempty"`
	Vertices [][2]float64 `yaml:"vertices" json:"vertices"`
}

type ScaleZoneDef struct {
	MinY     float64 `yaml:"min_y" json:"min_y"`
	MaxY     float64 `yaml:"max_y" json:"max_y"`
	MinScale float64 `yaml:"min_scale,omitempty" json:"min_scale,omitempty"`
	MaxScale float64 `yaml:"max_scale,omitempty" json:"max_scale,omitempty"`
}

type WalkBehindDef struct {
	Name       string       `yaml:"name" json:"name"`
	Vertices   [][2]float64 `yaml:"vertices" json:"vertices"`
	YThreshold float64      `yaml:"y_threshold" json:"y_threshold"`
	ZOrder     int          `yaml:"z_order,omitempty" json:"z_order,omitempty"`
}

type HotspotDef struct {
	Name        string  `yaml:"name" json:"name"`
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	W           float64 `yaml:"w" json:"w"`
	H           float64 `yaml:"h" json:"h"`
	ZOrder      int     `yaml:"z_order,omitempty" json:"z_order,omitempty"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	// Enabled defaults to true when omitted.
	Enabled *bool `yaml:"enabled,omitempty" json:"enabled,omitempty"`
}

// Load reads a scene file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene file from YAML bytes.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing scene YAML: %w", err)
	}
	return &f, nil
}

// Save writes the scene file back to disk, for editor round-tripping.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encoding scene YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scene file: %w", err)
	}
	return nil
}

func points(verts [][2]float64) []nav.Point {
	out := make([]nav.Point, len(verts))
	for i, v := range verts {
		out[i] = nav.Point{X: v[0], Y: v[1]}
	}
	return out
}

// Build constructs the navigation model from a scene file. The grid is left
// unbuilt; callers decide when to pay for UpdateNavigation.
func Build(f *File) (*nav.Navigator, *nav.HotspotManager, error) {
	if f == nil {
		return nil, nil, fmt.Errorf("build scene: nil file")
	}
	if f.Width <= 0 || f.Height <= 0 {
		return nil, nil, fmt.Errorf("build scene %q: non-positive dimensions %gx%g", f.Name, f.Width, f.Height)
	}

	area := nav.NewArea()
	for _, rd := range f.Regions {
		r := nav.NewRegion(rd.Name, rd.Walkable, points(rd.Vertices))
		r.ZOrder = rd.ZOrder
		area.AddRegion(r)
	}
	for _, zd := range f.ScaleZones {
		z := nav.ScaleZone{MinY: zd.MinY, MaxY: zd.MaxY, MinScale: zd.MinScale, MaxScale: zd.MaxScale}
		if z.MinScale == 0 && z.MaxScale == 0 {
			z.MinScale = nav.DefaultMinScale
			z.MaxScale = nav.DefaultMaxScale
		}
		area.AddScaleZone(z)
	}
	for _, wd := range f.WalkBehinds {
		area.AddWalkBehind(nav.WalkBehind{
			Region:     nav.NewRegion(wd.Name, true, points(wd.Vertices)),
			YThreshold: wd.YThreshold,
			ZOrder:     wd.ZOrder,
		})
	}
	area.UpdateBounds()

	nv := nav.NewNavigator(area, f.Width, f.Height, f.Grid.CellSize, f.Grid.AgentRadius)

	hm := nav.NewHotspotManager()
	for _, hd := range f.Hotspots {
		enabled := true
		if hd.Enabled != nil {
			enabled = *hd.Enabled
		}
		hm.Add(&nav.Hotspot{
			Name:        hd.Name,
			Bounds:      nav.Rect{X: hd.X, Y: hd.Y, W: hd.W, H: hd.H},
			ZOrder:      hd.ZOrder,
			Description: hd.Description,
			Enabled:     enabled,
		})
	}

	return nv, hm, nil
}

// Validate runs every authoring check over the scene file and collects all
// findings in one report.
func Validate(f *File) *nav.Report {
	rep := nav.NewReport()
	if f == nil {
		rep.AddError("", "scene file is nil")
		return rep
	}
	if f.Name == "" {
		rep.AddWarning("name", "scene has no name")
	}
	if f.Width <= 0 || f.Height <= 0 {
		rep.AddError("", "non-positive scene dimensions %gx%g", f.Width, f.Height)
		return rep
	}
	if f.Grid.CellSize < 0 {
		rep.AddError("grid.cell_size", "negative cell size %g", f.Grid.CellSize)
	}
	if f.Grid.AgentRadius < 0 {
		rep.AddError("grid.agent_radius", "negative agent radius %g", f.Grid.AgentRadius)
	}

	nv, hm, err := Build(f)
	if err != nil {
		rep.AddError("", "%v", err)
		return rep
	}
	rep.Merge(nv.Area().Validate())
	rep.Merge(hm.Validate())
	return rep
}
