package nav

import (
	"math/rand"
	"testing"
)

func hs(name string, x, y, w, h float64) *Hotspot {
	return &Hotspot{Name: name, Bounds: Rect{X: x, Y: y, W: w, H: h}, Enabled: true}
}

func TestHotspotAt_TopmostWins(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("h1", 0, 0, 100, 100))
	m.Add(hs("h2", 50, 50, 100, 100))

	got := m.HotspotAt(Point{75, 75})
	if got == nil || got.Name != "h2" {
		t.Fatalf("later-added hotspot should win inside the overlap, got %v", got)
	}
	got = m.HotspotAt(Point{25, 25})
	if got == nil || got.Name != "h1" {
		t.Fatalf("point only inside h1 should return h1, got %v", got)
	}
	if m.HotspotAt(Point{500, 500}) != nil {
		t.Fatal("point outside every hotspot should return nil")
	}
}

func TestHotspotAt_DisabledSkipped(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("h1", 0, 0, 100, 100))
	top := hs("h2", 0, 0, 100, 100)
	top.Enabled = false
	m.Add(top)

	got := m.HotspotAt(Point{50, 50})
	if got == nil || got.Name != "h1" {
		t.Fatalf("disabled topmost hotspot should be skipped, got %v", got)
	}
}

func TestHotspot_RemoveKeepsOrder(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("a", 0, 0, 100, 100))
	m.Add(hs("b", 0, 0, 100, 100))
	m.Add(hs("c", 0, 0, 100, 100))
	if !m.Remove("b") {
		t.Fatal("expected to remove b")
	}
	if m.Remove("b") {
		t.Fatal("second removal should report not found")
	}
	got := m.HotspotAt(Point{50, 50})
	if got == nil || got.Name != "c" {
		t.Fatalf("c is still topmost after removing b, got %v", got)
	}
}

func TestHotspotsInArea(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("left", 0, 0, 50, 50))
	m.Add(hs("right", 200, 0, 50, 50))

	got := m.HotspotsInArea(Rect{X: 40, Y: 0, W: 20, H: 20})
	if len(got) != 1 || got[0].Name != "left" {
		t.Fatalf("query rect overlaps only left, got %d results", len(got))
	}
	got = m.HotspotsInArea(Rect{X: 0, Y: 0, W: 300, H: 100})
	if len(got) != 2 {
		t.Fatalf("query rect covering both should return 2, got %d", len(got))
	}
}

func TestHotspotsInRadius(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("near", 100, 100, 20, 20))
	m.Add(hs("far", 400, 400, 20, 20))

	got := m.HotspotsInRadius(Point{90, 110}, 15)
	if len(got) != 1 || got[0].Name != "near" {
		t.Fatalf("circle touches only near, got %d results", len(got))
	}
	if got := m.HotspotsInRadius(Point{0, 0}, 5); len(got) != 0 {
		t.Fatalf("circle far from everything should return none, got %d", len(got))
	}
}

func TestHotspot_IndexedMatchesLinear(t *testing.T) {
	// Equivalence is a hard correctness requirement: for any mutation
	// sequence and any query point, the bucketed lookup must agree with
	// the linear scan.
	rng := rand.New(rand.NewSource(7))
	m := NewHotspotManager()
	m.EnableSpatialIndex(64)

	for i := 0; i < 60; i++ {
		h := hs(
			string(rune('a'+i%26))+string(rune('0'+i/26)),
			rng.Float64()*900,
			rng.Float64()*600,
			5+rng.Float64()*120,
			5+rng.Float64()*120,
		)
		if i%7 == 0 {
			h.Enabled = false
		}
		m.Add(h)
		if i%11 == 3 {
			m.Remove(m.hotspots[rng.Intn(len(m.hotspots))].Name)
		}
	}

	for i := 0; i < 2000; i++ {
		p := Point{X: rng.Float64()*1100 - 50, Y: rng.Float64()*750 - 50}
		lin := m.hotspotAtLinear(p)
		idx := m.hotspotAtIndexed(p)
		if lin != idx {
			t.Fatalf("query %+v: linear=%v indexed=%v", p, lin, idx)
		}
	}
}

func TestHotspot_Validate(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("door", 10, 10, 40, 80))
	m.Add(hs("door", 100, 10, 40, 80))      // duplicate name
	m.Add(hs("sliver", 200, 10, 0, 80))     // non-positive width
	m.Add(hs("offstage", -20, -10, 40, 80)) // negative position

	rep := m.Validate()
	if rep.OK() {
		t.Fatal("validation should fail")
	}
	if len(rep.Errors) != 3 {
		t.Fatalf("all three problems should be collected, got %d: %v", len(rep.Errors), rep.Errors)
	}
}

func TestHotspot_Statistics(t *testing.T) {
	m := NewHotspotManager()
	m.Add(hs("a", 0, 0, 10, 10))
	m.Add(hs("b", 5, 5, 10, 10))
	m.Add(hs("c", 100, 100, 20, 10))

	s := m.Statistics()
	if s.Count != 3 {
		t.Fatalf("count = %d, want 3", s.Count)
	}
	if s.TotalArea != 400 {
		t.Fatalf("total area = %g, want 400", s.TotalArea)
	}
	if s.AverageArea < 133.3 || s.AverageArea > 133.4 {
		t.Fatalf("average area = %g, want ~133.33", s.AverageArea)
	}
	if s.OverlapPairs != 1 {
		t.Fatalf("overlap pairs = %d, want 1 (a/b)", s.OverlapPairs)
	}
}

func TestHotspot_ExportImportRoundTrip(t *testing.T) {
	m := NewHotspotManager()
	m.Add(&Hotspot{Name: "door", Bounds: Rect{10, 20, 30, 40}, ZOrder: 2, Description: "kitchen door", Enabled: true})
	m.Add(&Hotspot{Name: "lamp", Bounds: Rect{50, 60, 7, 8}, Enabled: false})

	records := m.Export()
	back := NewHotspotManager()
	back.Import(records)

	if back.Count() != 2 {
		t.Fatalf("round-trip count = %d, want 2", back.Count())
	}
	door := back.Get("door")
	if door == nil || door.Bounds != (Rect{10, 20, 30, 40}) || door.ZOrder != 2 || door.Description != "kitchen door" || !door.Enabled {
		t.Fatalf("door did not survive the round trip: %+v", door)
	}
	lamp := back.Get("lamp")
	if lamp == nil || lamp.Enabled {
		t.Fatal("lamp's disabled flag did not survive the round trip")
	}
}

func TestHotspot_ImportReplacesAndReindexes(t *testing.T) {
	m := NewHotspotManager()
	m.EnableSpatialIndex(32)
	m.Add(hs("old", 0, 0, 50, 50))
	m.Import([]HotspotRecord{{Name: "new", X: 10, Y: 10, W: 30, H: 30, Enabled: true}})

	if got := m.HotspotAt(Point{20, 20}); got == nil || got.Name != "new" {
		t.Fatalf("import should replace the collection, got %v", got)
	}
	if m.Get("old") != nil {
		t.Fatal("old hotspot should be gone after import")
	}
}
