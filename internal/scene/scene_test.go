package scene

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Garsondee/Scene-Walk/internal/nav"
)

const kitchenYAML = `
name: kitchen
width: 800
height: 600
grid:
  cell_size: 10
  agent_radius: 6
regions:
  - name: floor
    walkable: true
    vertices: [[0, 0], [800, 0], [800, 600], [0, 600]]
  - name: table
    walkable: false
    vertices: [[300, 200], [500, 200], [500, 350], [300, 350]]
scale_zones:
  - min_y: 100
    max_y: 500
    min_scale: 0.6
    max_scale: 1.0
walk_behinds:
  - name: counter
    vertices: [[0, 400], [200, 400], [200, 480], [0, 480]]
    y_threshold: 440
    z_order: 3
hotspots:
  - name: door
    x: 700
    y: 100
    w: 60
    h: 180
    description: back door
  - name: broken-lamp
    x: 100
    y: 80
    w: 30
    h: 60
    enabled: false
`

func TestParse_FullScene(t *testing.T) {
	f, err := Parse([]byte(kitchenYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if f.Name != "kitchen" || f.Width != 800 || f.Height != 600 {
		t.Fatalf("header mismatch: %+v", f)
	}
	if len(f.Regions) != 2 || len(f.ScaleZones) != 1 || len(f.WalkBehinds) != 1 || len(f.Hotspots) != 2 {
		t.Fatal("section counts do not match the document")
	}
	if f.Grid.CellSize != 10 || f.Grid.AgentRadius != 6 {
		t.Fatalf("grid settings mismatch: %+v", f.Grid)
	}
}

func TestBuild_Queries(t *testing.T) {
	f, err := Parse([]byte(kitchenYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	nv, hm, err := Build(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if !nv.IsPointWalkable(nav.Point{X: 100, Y: 100}) {
		t.Fatal("floor point should be walkable")
	}
	if nv.IsPointWalkable(nav.Point{X: 400, Y: 300}) {
		t.Fatal("table point should not be walkable")
	}
	if got := nv.Area().ScaleAtY(300); math.Abs(got-0.8) > 1e-12 {
		t.Fatalf("scale at y=300 = %g, want 0.8", got)
	}
	if got := nv.Area().WalkBehindsAtY(470); len(got) != 1 || got[0].Region.Name != "counter" {
		t.Fatal("agent below the counter threshold should walk in front of it")
	}

	nv.UpdateNavigation()
	if path := nv.FindPath(100, 100, 700, 500); path == nil {
		t.Fatal("expected a path around the table")
	}

	door := hm.HotspotAt(nav.Point{X: 720, Y: 150})
	if door == nil || door.Name != "door" {
		t.Fatalf("click on the door should hit it, got %v", door)
	}
	if hm.HotspotAt(nav.Point{X: 110, Y: 100}) != nil {
		t.Fatal("disabled hotspot must not hit-test")
	}
}

func TestBuild_RejectsBadDimensions(t *testing.T) {
	if _, _, err := Build(&File{Name: "void", Width: 0, Height: 600}); err == nil {
		t.Fatal("zero width should be rejected")
	}
	if _, _, err := Build(nil); err == nil {
		t.Fatal("nil file should be rejected")
	}
}

func TestBuild_ScaleZoneDefaults(t *testing.T) {
	f := &File{
		Name: "s", Width: 100, Height: 100,
		ScaleZones: []ScaleZoneDef{{MinY: 0, MaxY: 100}},
	}
	nv, _, err := Build(f)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if got := nv.Area().ScaleAtY(0); got != nav.DefaultMinScale {
		t.Fatalf("zone without scales should default, got %g", got)
	}
}

func TestValidate_CollectsEverything(t *testing.T) {
	f := &File{
		Name:  "broken",
		Width: 800, Height: 600,
		Regions: []RegionDef{
			{Name: "floor", Walkable: true, Vertices: [][2]float64{{0, 0}, {800, 0}, {800, 600}, {0, 600}}},
			{Name: "floor", Walkable: true, Vertices: [][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		},
		ScaleZones: []ScaleZoneDef{{MinY: 300, MaxY: 100, MinScale: 0.5, MaxScale: 1}},
		Hotspots: []HotspotDef{
			{Name: "door", X: 10, Y: 10, W: 0, H: 50},
		},
	}
	rep := Validate(f)
	if rep.OK() {
		t.Fatal("validation should fail")
	}
	// Duplicate region, inverted zone, zero-width hotspot.
	if len(rep.Errors) != 3 {
		t.Fatalf("expected 3 collected errors, got %d: %v", len(rep.Errors), rep.Errors)
	}
}

func TestValidate_CleanScene(t *testing.T) {
	f, err := Parse([]byte(kitchenYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if rep := Validate(f); !rep.OK() {
		t.Fatalf("kitchen scene should validate:\n%s", rep)
	}
}

func TestLoadSave_RoundTrip(t *testing.T) {
	f, err := Parse([]byte(kitchenYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	path := filepath.Join(t.TempDir(), "kitchen.yaml")
	if err := Save(path, f); err != nil {
		t.Fatalf("save: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Name != f.Name || len(back.Regions) != len(f.Regions) || len(back.Hotspots) != len(f.Hotspots) {
		t.Fatal("scene did not survive the save/load round trip")
	}
	if back.Hotspots[1].Enabled == nil || *back.Hotspots[1].Enabled {
		t.Fatal("explicit enabled:false should survive the round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file should error")
	}
	if _, err := os.Stat("nope.yaml"); err == nil {
		t.Fatal("load must not create files")
	}
}

func TestSchema_MentionsSections(t *testing.T) {
	data, err := Schema()
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	s := string(data)
	for _, want := range []string{"regions", "scale_zones", "walk_behinds", "hotspots", "cell_size"} {
		if !strings.Contains(s, want) {
			t.Fatalf("schema missing %q section", want)
		}
	}
}
