package inspect

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/Garsondee/Scene-Walk/internal/nav"
)

func testScene() (*nav.Navigator, *nav.HotspotManager) {
	area := nav.NewArea()
	area.AddRegion(nav.NewRegion("floor", true, []nav.Point{
		{X: 0, Y: 0}, {X: 400, Y: 0}, {X: 400, Y: 300}, {X: 0, Y: 300},
	}))
	area.AddRegion(nav.NewRegion("pit", false, []nav.Point{
		{X: 180, Y: 100}, {X: 220, Y: 100}, {X: 220, Y: 200}, {X: 180, Y: 200},
	}))
	area.AddScaleZone(nav.ScaleZone{MinY: 0, MaxY: 300, MinScale: 0.5, MaxScale: 1.0})
	area.UpdateBounds()

	nv := nav.NewNavigator(area, 400, 300, 10, 4)

	hm := nav.NewHotspotManager()
	hm.Add(&nav.Hotspot{
		Name:    "lever",
		Bounds:  nav.Rect{X: 50, Y: 50, W: 30, H: 30},
		Enabled: true,
	})
	return nv, hm
}

func TestAnswer_Walkable(t *testing.T) {
	nv, hm := testScene()
	s := NewServer("test", nv, hm, nil)

	resp := s.Answer(Request{ID: 1, Op: "walkable", X: 100, Y: 100})
	if resp.ID != 1 || resp.Walkable == nil || !*resp.Walkable {
		t.Fatalf("floor point should report walkable: %+v", resp)
	}
	resp = s.Answer(Request{Op: "walkable", X: 200, Y: 150})
	if resp.Walkable == nil || *resp.Walkable {
		t.Fatal("pit point should report blocked")
	}
}

func TestAnswer_PathAndStats(t *testing.T) {
	nv, hm := testScene()
	s := NewServer("test", nv, hm, nil)

	resp := s.Answer(Request{Op: "path", StartX: 50, StartY: 150, GoalX: 350, GoalY: 150})
	if resp.Error != "" || len(resp.Path) == 0 {
		t.Fatalf("path around the pit expected: %+v", resp)
	}

	resp = s.Answer(Request{Op: "stats"})
	if resp.Grid == nil || resp.Grid.Total != 40*30 {
		t.Fatalf("grid stats missing or wrong: %+v", resp.Grid)
	}
	if resp.Hotspots == nil || resp.Hotspots.Count != 1 {
		t.Fatalf("hotspot stats missing or wrong: %+v", resp.Hotspots)
	}
}

func TestAnswer_HotspotAndScale(t *testing.T) {
	nv, hm := testScene()
	s := NewServer("test", nv, hm, nil)

	resp := s.Answer(Request{Op: "hotspot", X: 60, Y: 60})
	if resp.Hotspot == nil || resp.Hotspot.Name != "lever" {
		t.Fatalf("lever expected at (60,60): %+v", resp.Hotspot)
	}
	if resp := s.Answer(Request{Op: "hotspot", X: 5, Y: 5}); resp.Hotspot != nil {
		t.Fatal("no hotspot expected at (5,5)")
	}

	resp = s.Answer(Request{Op: "scale", Y: 150})
	if resp.Scale == nil || *resp.Scale != 0.75 {
		t.Fatalf("scale at mid zone = %v, want 0.75", resp.Scale)
	}
}

func TestAnswer_UnknownOp(t *testing.T) {
	nv, hm := testScene()
	s := NewServer("test", nv, hm, nil)
	if resp := s.Answer(Request{Op: "teleport"}); resp.Error == "" {
		t.Fatal("unknown op should return an error frame")
	}
}

func TestServeHTTP_RoundTrip(t *testing.T) {
	nv, hm := testScene()
	s := NewServer("test", nv, hm, nil)

	srv := httptest.NewServer(s)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.WriteJSON(Request{ID: 7, Op: "walkable", X: 100, Y: 100}); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp Response
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp.ID != 7 || resp.Walkable == nil || !*resp.Walkable {
		t.Fatalf("unexpected frame: %+v", resp)
	}
}
