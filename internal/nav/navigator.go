package nav

// Navigator ties an Area to its derived grid cache and is the surface the
// host engine calls for multi-step queries. Cheap per-frame checks go
// straight to the Area; the grid is built only on explicit request (scene
// load or UpdateNavigation), never implicitly inside a query.
type Navigator struct {
	area        *Area
	grid        *Grid
	sceneW      float64
	sceneH      float64
	cellSize    float64
	agentRadius float64
}

// NewNavigator wraps an area for a sceneW × sceneH scene. The grid starts
// unbuilt; call UpdateNavigation before pathfinding.
func NewNavigator(area *Area, sceneW, sceneH, cellSize, agentRadius float64) *Navigator {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	return &Navigator{
		area:        area,
		sceneW:      sceneW,
		sceneH:      sceneH,
		cellSize:    cellSize,
		agentRadius: agentRadius,
	}
}

// Area returns the wrapped walkable area.
func (n *Navigator) Area() *Area { return n.area }

// SceneSize returns the scene dimensions the grid rasterizes.
func (n *Navigator) SceneSize() (float64, float64) { return n.sceneW, n.sceneH }

// UpdateNavigation rebuilds the grid from the current area. This is the one
// expensive step (O(cells × samples)); callers invoke it on scene load or
// after mutating regions, never per frame.
func (n *Navigator) UpdateNavigation() {
	n.area.UpdateBounds()
	n.grid = BuildGrid(n.area, n.sceneW, n.sceneH, n.cellSize, n.agentRadius)
}

// ClearNavigation drops the grid cache.
func (n *Navigator) ClearNavigation() {
	n.grid = nil
}

// HasNavigation reports whether the grid has been built.
func (n *Navigator) HasNavigation() bool { return n.grid != nil }

// Grid returns the derived grid, or nil when navigation was never built.
// The grid is read-only from the caller's perspective.
func (n *Navigator) Grid() *Grid { return n.grid }

// FindPath answers "how do I get from A to B" over the grid. Calling it
// before UpdateNavigation is structural misuse by the host engine and fails
// loudly rather than silently returning a misleading result.
func (n *Navigator) FindPath(x1, y1, x2, y2 float64) []Point {
	if n.grid == nil {
		panic("nav: FindPath called before UpdateNavigation built the grid")
	}
	return n.grid.FindPath(x1, y1, x2, y2)
}

// IsPointWalkable is a pass-through to the area's point query.
func (n *Navigator) IsPointWalkable(p Point) bool {
	return n.area.IsPointWalkable(p)
}
