package nav

import (
	"encoding/json"
	"fmt"
	"math"
)

// Hotspot is a named interactive rectangle used for cursor and click
// hit-testing, independent of the walkability model. Bounds use the
// top-left + size convention.
type Hotspot struct {
	Name        string
	Bounds      Rect
	ZOrder      int
	Description string
	Enabled     bool
}

// Contains reports whether the hotspot is active and its bounds contain p.
func (h *Hotspot) Contains(p Point) bool {
	return h.Enabled && PointInBounds(p, h.Bounds)
}

type bucketKey struct {
	bx int
	by int
}

// HotspotManager keeps an insertion-ordered hotspot collection; later
// entries stack on top for hit-testing. An optional uniform-grid bucket
// index accelerates point queries and is required to return exactly the
// same results as the linear scan for every query.
type HotspotManager struct {
	hotspots []*Hotspot

	// Spatial index state. buckets maps a coarse grid cell to the indices
	// of hotspots overlapping it; rebuilt wholesale on every mutation since
	// hotspot counts are small.
	indexed    bool
	bucketSize float64
	buckets    map[bucketKey][]int
}

func NewHotspotManager() *HotspotManager {
	return &HotspotManager{}
}

// EnableSpatialIndex turns on bucketed point lookup with the given bucket
// edge length. A non-positive size disables the index.
func (m *HotspotManager) EnableSpatialIndex(bucketSize float64) {
	if bucketSize <= 0 {
		m.indexed = false
		m.buckets = nil
		return
	}
	m.indexed = true
	m.bucketSize = bucketSize
	m.rebuildIndex()
}

func (m *HotspotManager) bucketCoord(v float64) int {
	return int(math.Floor(v / m.bucketSize))
}

func (m *HotspotManager) rebuildIndex() {
	if !m.indexed {
		return
	}
	m.buckets = make(map[bucketKey][]int)
	for i, h := range m.hotspots {
		if h.Bounds.W <= 0 || h.Bounds.H <= 0 {
			continue
		}
		bx0 := m.bucketCoord(h.Bounds.X)
		by0 := m.bucketCoord(h.Bounds.Y)
		bx1 := m.bucketCoord(h.Bounds.Right())
		by1 := m.bucketCoord(h.Bounds.Bottom())
		for by := by0; by <= by1; by++ {
			for bx := bx0; bx <= bx1; bx++ {
				k := bucketKey{bx: bx, by: by}
				m.buckets[k] = append(m.buckets[k], i)
			}
		}
	}
}

// Add appends a hotspot on top of the stack.
func (m *HotspotManager) Add(h *Hotspot) {
	m.hotspots = append(m.hotspots, h)
	m.rebuildIndex()
}

// Remove deletes the first hotspot with the given name, preserving the
// stacking order of the rest. Reports whether one was found.
func (m *HotspotManager) Remove(name string) bool {
	for i, h := range m.hotspots {
		if h.Name == name {
			m.hotspots = append(m.hotspots[:i], m.hotspots[i+1:]...)
			m.rebuildIndex()
			return true
		}
	}
	return false
}

// Get returns the first hotspot with the given name, or nil.
func (m *HotspotManager) Get(name string) *Hotspot {
	for _, h := range m.hotspots {
		if h.Name == name {
			return h
		}
	}
	return nil
}

// Hotspots returns the collection in stacking order. Callers must not
// modify it.
func (m *HotspotManager) Hotspots() []*Hotspot { return m.hotspots }

// Count returns the number of hotspots, active or not.
func (m *HotspotManager) Count() int { return len(m.hotspots) }

// HotspotAt returns the topmost active hotspot containing p, or nil.
func (m *HotspotManager) HotspotAt(p Point) *Hotspot {
	if m.indexed {
		return m.hotspotAtIndexed(p)
	}
	return m.hotspotAtLinear(p)
}

func (m *HotspotManager) hotspotAtLinear(p Point) *Hotspot {
	for i := len(m.hotspots) - 1; i >= 0; i-- {
		if m.hotspots[i].Contains(p) {
			return m.hotspots[i]
		}
	}
	return nil
}

func (m *HotspotManager) hotspotAtIndexed(p Point) *Hotspot {
	k := bucketKey{bx: m.bucketCoord(p.X), by: m.bucketCoord(p.Y)}
	top := -1
	for _, i := range m.buckets[k] {
		if i > top && m.hotspots[i].Contains(p) {
			top = i
		}
	}
	if top < 0 {
		return nil
	}
	return m.hotspots[top]
}

// HotspotsInArea returns every active hotspot whose bounds intersect r, in
// stacking order.
func (m *HotspotManager) HotspotsInArea(r Rect) []*Hotspot {
	var out []*Hotspot
	for _, h := range m.hotspots {
		if h.Enabled && h.Bounds.W > 0 && h.Bounds.H > 0 && h.Bounds.Intersects(r) {
			out = append(out, h)
		}
	}
	return out
}

// HotspotsInRadius returns every active hotspot whose bounds touch the
// circle around center, in stacking order.
func (m *HotspotManager) HotspotsInRadius(center Point, radius float64) []*Hotspot {
	var out []*Hotspot
	for _, h := range m.hotspots {
		if h.Enabled && h.Bounds.W > 0 && h.Bounds.H > 0 && rectCircleTouch(h.Bounds, center, radius) {
			out = append(out, h)
		}
	}
	return out
}

// rectCircleTouch tests circle/rectangle intersection by clamping the centre
// to the rectangle.
func rectCircleTouch(r Rect, c Point, radius float64) bool {
	nx := math.Max(r.X, math.Min(c.X, r.Right()))
	ny := math.Max(r.Y, math.Min(c.Y, r.Bottom()))
	return math.Hypot(c.X-nx, c.Y-ny) <= radius
}

// Validate reports authoring mistakes across the whole collection:
// non-positive dimensions, negative positions, duplicate names.
func (m *HotspotManager) Validate() *Report {
	rep := NewReport()
	seen := make(map[string]bool, len(m.hotspots))
	for i, h := range m.hotspots {
		path := "hotspots." + h.Name
		if h.Name == "" {
			path = "hotspots"
			rep.AddError(path, "hotspot at index %d has an empty name", i)
		} else if seen[h.Name] {
			rep.AddError(path, "duplicate hotspot name %q", h.Name)
		}
		seen[h.Name] = true
		if h.Bounds.W <= 0 || h.Bounds.H <= 0 {
			rep.AddError(path, "non-positive dimensions %.1fx%.1f", h.Bounds.W, h.Bounds.H)
		}
		if h.Bounds.X < 0 || h.Bounds.Y < 0 {
			rep.AddError(path, "negative position (%.1f, %.1f)", h.Bounds.X, h.Bounds.Y)
		}
	}
	return rep
}

// HotspotStats summarizes the collection for diagnostics. OverlapPairs is an
// O(n²) pairwise count, fine for the tens of hotspots a scene carries.
type HotspotStats struct {
	Count        int     `json:"count"`
	TotalArea    float64 `json:"total_area"`
	AverageArea  float64 `json:"average_area"`
	OverlapPairs int     `json:"overlap_pairs"`
}

// Statistics computes counts, areas, and the number of overlapping pairs.
func (m *HotspotManager) Statistics() HotspotStats {
	s := HotspotStats{Count: len(m.hotspots)}
	for _, h := range m.hotspots {
		s.TotalArea += h.Bounds.Area()
	}
	if s.Count > 0 {
		s.AverageArea = s.TotalArea / float64(s.Count)
	}
	for i := 0; i < len(m.hotspots); i++ {
		for j := i + 1; j < len(m.hotspots); j++ {
			a, b := m.hotspots[i].Bounds, m.hotspots[j].Bounds
			if a.W > 0 && a.H > 0 && b.W > 0 && b.H > 0 && a.Intersects(b) {
				s.OverlapPairs++
			}
		}
	}
	return s
}

// HotspotRecord is the flat name→value shape used for level-editor
// round-tripping.
type HotspotRecord struct {
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	W           float64 `json:"w"`
	H           float64 `json:"h"`
	ZOrder      int     `json:"z_order"`
	Description string  `json:"description,omitempty"`
	Enabled     bool    `json:"enabled"`
}

// Export snapshots every hotspot as a plain record, in stacking order.
func (m *HotspotManager) Export() []HotspotRecord {
	out := make([]HotspotRecord, len(m.hotspots))
	for i, h := range m.hotspots {
		out[i] = HotspotRecord{
			Name:        h.Name,
			X:           h.Bounds.X,
			Y:           h.Bounds.Y,
			W:           h.Bounds.W,
			H:           h.Bounds.H,
			ZOrder:      h.ZOrder,
			Description: h.Description,
			Enabled:     h.Enabled,
		}
	}
	return out
}

// MarshalHotspots renders records as indented JSON.
func MarshalHotspots(records []HotspotRecord) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// UnmarshalHotspots parses records produced by MarshalHotspots.
func UnmarshalHotspots(data []byte) ([]HotspotRecord, error) {
	var records []HotspotRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("hotspot records: %w", err)
	}
	return records, nil
}

// Import replaces the collection with the given records, preserving their
// order as the stacking order.
func (m *HotspotManager) Import(records []HotspotRecord) {
	m.hotspots = make([]*Hotspot, 0, len(records))
	for _, r := range records {
		m.hotspots = append(m.hotspots, &Hotspot{
			Name:        r.Name,
			Bounds:      Rect{X: r.X, Y: r.Y, W: r.W, H: r.H},
			ZOrder:      r.ZOrder,
			Description: r.Description,
			Enabled:     r.Enabled,
		})
	}
	m.rebuildIndex()
}
