package nav

import "sort"

// constrainStep is the world-unit resolution used when backing an invalid
// destination along a movement segment toward a valid one.
const constrainStep = 2.0

// collisionMargin pulls footprint sample points slightly inward so exact
// boundary contact does not produce false negatives.
const collisionMargin = 1.0

// Area aggregates the Regions, ScaleZones, and WalkBehinds of one scene and
// answers point, scale, and depth queries over them. Membership is mutated
// only by scene setup code; the cached bounds are recomputed on demand via
// UpdateBounds, not kept in sync automatically.
type Area struct {
	regions     []*Region
	scaleZones  []ScaleZone
	walkBehinds []WalkBehind
	bounds      Rect
}

func NewArea() *Area {
	return &Area{}
}

// AddRegion appends a region. Callers must UpdateBounds afterwards.
func (a *Area) AddRegion(r *Region) {
	a.regions = append(a.regions, r)
}

// RemoveRegion removes the first region with the given name and reports
// whether one was found. Callers must UpdateBounds afterwards.
func (a *Area) RemoveRegion(name string) bool {
	for i, r := range a.regions {
		if r.Name == name {
			a.regions = append(a.regions[:i], a.regions[i+1:]...)
			return true
		}
	}
	return false
}

// Regions returns the region list. Callers must not modify it.
func (a *Area) Regions() []*Region { return a.regions }

func (a *Area) AddScaleZone(z ScaleZone) {
	a.scaleZones = append(a.scaleZones, z)
}

func (a *Area) ScaleZones() []ScaleZone { return a.scaleZones }

func (a *Area) AddWalkBehind(w WalkBehind) {
	a.walkBehinds = append(a.walkBehinds, w)
}

func (a *Area) WalkBehinds() []WalkBehind { return a.walkBehinds }

// UpdateBounds recomputes the cached bounding rectangle from the current
// region membership.
func (a *Area) UpdateBounds() {
	sets := make([][]Point, 0, len(a.regions))
	for _, r := range a.regions {
		sets = append(sets, r.Vertices())
	}
	a.bounds = CombinedBounds(sets)
}

// Bounds returns the cached bounding rectangle. Stale until UpdateBounds is
// called after a membership change.
func (a *Area) Bounds() Rect { return a.bounds }

// regionsWalkable is the single walkability rule shared by Area and the
// region-list helpers in nearest.go:
//
//  1. no regions at all → everything is open,
//  2. inside any non-walkable region → blocked (obstacles carve holes
//     regardless of floor declarations underneath),
//  3. otherwise walkable iff inside at least one walkable region.
func regionsWalkable(regions []*Region, p Point) bool {
	if len(regions) == 0 {
		return true
	}
	inWalkable := false
	for _, r := range regions {
		if !r.Contains(p) {
			continue
		}
		if !r.Walkable {
			return false
		}
		inWalkable = true
	}
	return inWalkable
}

// IsPointWalkable reports whether an agent's centre may occupy p.
func (a *Area) IsPointWalkable(p Point) bool {
	return regionsWalkable(a.regions, p)
}

// IsAreaWalkable reports whether an agent footprint of the given size,
// scaled and centred on p, fits in walkable space. It samples 9 points —
// 4 corners, 4 edge midpoints, centre — each pulled inward by a small
// collision margin.
func (a *Area) IsAreaWalkable(center Point, size Point, scale float64) bool {
	hw := size.X*scale/2 - collisionMargin
	hh := size.Y*scale/2 - collisionMargin
	if hw < 0 {
		hw = 0
	}
	if hh < 0 {
		hh = 0
	}
	for _, dx := range [3]float64{-hw, 0, hw} {
		for _, dy := range [3]float64{-hh, 0, hh} {
			if !a.IsPointWalkable(Point{X: center.X + dx, Y: center.Y + dy}) {
				return false
			}
		}
	}
	return true
}

// ScaleAtY returns the sprite scale for an agent at the given Y. Outside
// every zone the scale is 1.0.
func (a *Area) ScaleAtY(y float64) float64 {
	for _, z := range a.scaleZones {
		if z.Contains(y) {
			return z.ScaleAt(y)
		}
	}
	return 1.0
}

// WalkBehindsAtY returns every walk-behind whose threshold lies above the
// agent (threshold < y): the agent is in front of those and should draw over
// their artwork. Results are ordered by ZOrder for the renderer.
func (a *Area) WalkBehindsAtY(y float64) []WalkBehind {
	var out []WalkBehind
	for _, w := range a.walkBehinds {
		if w.YThreshold < y {
			out = append(out, w)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ZOrder < out[j].ZOrder })
	return out
}

// ConstrainToWalkable clamps a movement request so the agent never crosses
// into non-walkable space. If to is walkable it is returned unchanged;
// otherwise the segment is sampled from to back toward from and the first
// walkable sample wins. If nothing on the segment is walkable, from is
// returned.
func (a *Area) ConstrainToWalkable(from, to Point) Point {
	return ConstrainToWalkable(from, to, a.regions)
}

// Validate checks the area's authoring for mistakes: degenerate polygons,
// duplicate region names, inverted or overlapping scale zones. All problems
// are collected before reporting.
func (a *Area) Validate() *Report {
	rep := NewReport()

	seen := make(map[string]bool, len(a.regions))
	for i, r := range a.regions {
		path := "regions." + r.Name
		if r.Name == "" {
			path = "regions"
			rep.AddError(path, "region at index %d has an empty name", i)
		} else if seen[r.Name] {
			rep.AddError(path, "duplicate region name %q", r.Name)
		}
		seen[r.Name] = true
		if len(r.Vertices()) < 3 {
			rep.AddWarning(path, "degenerate polygon with %d vertices (inert, never contains a point)", len(r.Vertices()))
		}
	}

	for i, z := range a.scaleZones {
		path := "scale_zones"
		if z.MinY >= z.MaxY {
			rep.AddError(path, "zone %d: min_y (%.1f) must be less than max_y (%.1f)", i, z.MinY, z.MaxY)
		}
		for j := i + 1; j < len(a.scaleZones); j++ {
			o := a.scaleZones[j]
			if z.MinY <= o.MaxY && o.MinY <= z.MaxY {
				rep.AddError(path, "zones %d and %d overlap in Y ([%.1f, %.1f] vs [%.1f, %.1f])",
					i, j, z.MinY, z.MaxY, o.MinY, o.MaxY)
			}
		}
	}

	for i, w := range a.walkBehinds {
		if w.Region == nil {
			rep.AddError("walk_behinds", "walk-behind %d has no region", i)
			continue
		}
		if len(w.Region.Vertices()) < 3 {
			rep.AddWarning("walk_behinds."+w.Region.Name, "degenerate polygon with %d vertices", len(w.Region.Vertices()))
		}
	}

	return rep
}
