package nav

import "testing"

func TestFindNearestWalkablePoint_AlreadyWalkable(t *testing.T) {
	regions := []*Region{NewRegion("floor", true, square(0, 0, 500, 500))}
	target := Point{250, 250}
	got, found := FindNearestWalkablePoint(target, regions, 100, 10)
	if !found || got != target {
		t.Fatalf("walkable target should come back unchanged, got %+v found=%v", got, found)
	}
}

func TestFindNearestWalkablePoint_RecoversOntoFloor(t *testing.T) {
	regions := []*Region{NewRegion("floor", true, square(0, 0, 500, 500))}
	got, found := FindNearestWalkablePoint(Point{600, 250}, regions, 150, 10)
	if !found {
		t.Fatal("a floor edge 100 units away should be reachable within radius 150")
	}
	if !regionsWalkable(regions, got) {
		t.Fatalf("recovered point %+v must be walkable", got)
	}
	if d := got.Dist(Point{600, 250}); d > 110 {
		t.Fatalf("recovered point %+v is %.0f away, expected the nearest ring to win", got, d)
	}
}

func TestFindNearestWalkablePoint_OutOfObstacle(t *testing.T) {
	regions := []*Region{
		NewRegion("floor", true, square(0, 0, 500, 500)),
		NewRegion("crate", false, square(200, 200, 50, 50)),
	}
	got, found := FindNearestWalkablePoint(Point{225, 225}, regions, 100, 5)
	if !found {
		t.Fatal("expected recovery out of a 50-unit crate")
	}
	if !regionsWalkable(regions, got) {
		t.Fatalf("recovered point %+v must be walkable", got)
	}
}

func TestFindNearestWalkablePoint_FailOpen(t *testing.T) {
	regions := []*Region{NewRegion("island", true, square(0, 0, 10, 10))}
	target := Point{1000, 1000}
	got, found := FindNearestWalkablePoint(target, regions, 50, 10)
	if found {
		t.Fatal("nothing walkable within radius 50, found should be false")
	}
	if got != target {
		t.Fatalf("fail-open contract: original target must come back unchanged, got %+v", got)
	}
}

func TestFindNearestWalkablePoint_BadParameters(t *testing.T) {
	regions := []*Region{NewRegion("island", true, square(0, 0, 10, 10))}
	target := Point{100, 100}
	if got, found := FindNearestWalkablePoint(target, regions, 0, 10); found || got != target {
		t.Fatal("zero search radius should fail open immediately")
	}
	if got, found := FindNearestWalkablePoint(target, regions, 50, 0); found || got != target {
		t.Fatal("zero step should fail open rather than loop forever")
	}
}

func TestFindNearestWalkablePoint_Deterministic(t *testing.T) {
	regions := []*Region{
		NewRegion("floor", true, square(0, 0, 500, 500)),
		NewRegion("crate", false, square(200, 200, 80, 80)),
	}
	a, af := FindNearestWalkablePoint(Point{240, 240}, regions, 200, 7)
	b, bf := FindNearestWalkablePoint(Point{240, 240}, regions, 200, 7)
	if a != b || af != bf {
		t.Fatal("identical queries must return identical candidates")
	}
}

func TestConstrainToWalkable_RegionList(t *testing.T) {
	regions := []*Region{NewRegion("floor", true, square(0, 0, 500, 500))}
	from := Point{250, 250}
	got := ConstrainToWalkable(from, Point{250, 600}, regions)
	if !regionsWalkable(regions, got) {
		t.Fatalf("constrained point %+v must be walkable", got)
	}
	if got.Y > 500 {
		t.Fatalf("constrained point %+v should not pass the floor edge", got)
	}
}

func TestConstrainToWalkable_EmptyRegionsIsOpen(t *testing.T) {
	to := Point{900, 900}
	if got := ConstrainToWalkable(Point{0, 0}, to, nil); got != to {
		t.Fatalf("with no regions everything is walkable, got %+v", got)
	}
}
