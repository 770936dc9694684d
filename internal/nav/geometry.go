package nav

import "math"

// Point is a position in world space (scene pixels).
type Point struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance to q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Area returns the rectangle's area, or 0 for degenerate rectangles.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Intersects reports whether two rectangles overlap. Shared edges count.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.Right() && o.X <= r.Right() &&
		r.Y <= o.Bottom() && o.Y <= r.Bottom()
}

// boundaryEpsilon is the tolerance for treating a point as lying exactly
// on a polygon edge. Scene coordinates are pixels, so this is far below
// any authorable precision.
const boundaryEpsilon = 1e-9

// ContainsPoint reports whether p lies inside the polygon described by verts.
// Fewer than 3 vertices never contain anything. Points exactly on an edge
// count as inside; corridor-edge walkability depends on that, so every caller
// gets the same inclusive behaviour.
func ContainsPoint(verts []Point, p Point) bool {
	n := len(verts)
	if n < 3 {
		return false
	}
	// Inclusive boundary: the crossing test below is ambiguous for points
	// exactly on an edge, so test edges explicitly first.
	for i := 0; i < n; i++ {
		if pointOnSegment(p, verts[i], verts[(i+1)%n]) {
			return true
		}
	}
	// Standard even-odd crossing test; handles concave polygons.
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := verts[i]
		vj := verts[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// pointOnSegment reports whether p lies on the segment a-b within
// boundaryEpsilon.
func pointOnSegment(p, a, b Point) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < boundaryEpsilon {
		return p.Dist(a) <= boundaryEpsilon
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 || t > 1 {
		return false
	}
	cx := a.X + t*dx
	cy := a.Y + t*dy
	return math.Hypot(p.X-cx, p.Y-cy) <= boundaryEpsilon
}

// PointInBounds reports whether p lies inside r, edges included.
// Rectangles with non-positive width or height contain nothing.
func PointInBounds(p Point, r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// VertexBounds returns the axis-aligned bounding rectangle of a vertex list.
// An empty list yields the zero rectangle.
func VertexBounds(verts []Point) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// CombinedBounds returns the bounding rectangle enclosing every vertex set.
// Empty sets are skipped; no vertices at all yields the zero rectangle.
func CombinedBounds(sets [][]Point) Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, verts := range sets {
		for _, v := range verts {
			if first {
				minX, minY, maxX, maxY = v.X, v.Y, v.X, v.Y
				first = false
				continue
			}
			if v.X < minX {
				minX = v.X
			}
			if v.Y < minY {
				minY = v.Y
			}
			if v.X > maxX {
				maxX = v.X
			}
			if v.Y > maxY {
				maxY = v.Y
			}
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
