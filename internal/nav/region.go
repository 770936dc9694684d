package nav

// Region is a named polygon tagged walkable or non-walkable. It is the atomic
// unit of the walkability model. Vertices are only ever replaced wholesale
// via SetVertices, never mutated in place.
type Region struct {
	Name     string
	Walkable bool
	ZOrder   int

	vertices []Point
}

// NewRegion creates a region. Polygons with fewer than 3 vertices are inert:
// they never contain any point, but they are kept so validation can report
// them.
func NewRegion(name string, walkable bool, verts []Point) *Region {
	r := &Region{Name: name, Walkable: walkable}
	r.SetVertices(verts)
	return r
}

// SetVertices replaces the region's vertex list wholesale.
func (r *Region) SetVertices(verts []Point) {
	r.vertices = make([]Point, len(verts))
	copy(r.vertices, verts)
}

// Vertices returns the region's vertex list. Callers must not modify it.
func (r *Region) Vertices() []Point { return r.vertices }

// Contains reports whether p lies inside the region's polygon, edges included.
func (r *Region) Contains(p Point) bool {
	return ContainsPoint(r.vertices, p)
}

// Bounds returns the region's axis-aligned bounding rectangle.
func (r *Region) Bounds() Rect {
	return VertexBounds(r.vertices)
}

// Default scale ramp endpoints for zones authored without explicit scales.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 1.0
)

// ScaleZone is a horizontal band that maps an agent's Y position to a sprite
// scale factor, simulating perspective depth. MinY < MaxY is required for a
// valid zone; MinScale > MaxScale is allowed and inverts the ramp.
type ScaleZone struct {
	MinY     float64
	MaxY     float64
	MinScale float64
	MaxScale float64
}

// NewScaleZone creates a zone with the default 0.5→1.0 scale ramp.
func NewScaleZone(minY, maxY float64) ScaleZone {
	return ScaleZone{MinY: minY, MaxY: maxY, MinScale: DefaultMinScale, MaxScale: DefaultMaxScale}
}

// Contains reports whether y falls inside the zone, endpoints included.
func (z ScaleZone) Contains(y float64) bool {
	return y >= z.MinY && y <= z.MaxY
}

// ScaleAt returns the linearly interpolated scale for y. Callers are expected
// to have checked Contains first; out-of-band values extrapolate.
func (z ScaleZone) ScaleAt(y float64) float64 {
	if z.MaxY == z.MinY {
		return z.MinScale
	}
	t := (y - z.MinY) / (z.MaxY - z.MinY)
	return z.MinScale + t*(z.MaxScale-z.MinScale)
}

// WalkBehind is a depth-sorting band: a piece of scenery the agent can pass
// behind. The threshold decides, for a given agent Y, whether the agent draws
// in front of the region's artwork. Composition keeps the polygon logic in
// Region rather than a subtype.
type WalkBehind struct {
	Region     *Region
	YThreshold float64
	ZOrder     int
}
