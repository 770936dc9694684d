package nav

import (
	"encoding/json"
	"fmt"
	"math"
)

// DefaultCellSize is the grid resolution used when the scene does not
// configure one.
const DefaultCellSize = 10.0

// Grid is a rasterized cache of an Area at a fixed cell resolution, eroded
// by an agent radius so agents can be treated as points in grid space. It is
// derived once from an Area snapshot and keeps no back-reference: any change
// to the regions requires a full rebuild, since partial updates cannot be
// proven consistent with the erosion-based construction.
type Grid struct {
	cols     int
	rows     int
	cellSize float64
	walkable []bool // row-major: index = row*cols + col
}

// BuildGrid rasterizes area into a grid covering a sceneW × sceneH scene.
// Each cell is walkable only if its centre and a ring of four radius-offset
// samples are all walkable; the effective radius never shrinks below half a
// cell, so cells straddling a region boundary err toward blocked and thin
// barriers cannot leak paths. A non-positive cellSize falls back to
// DefaultCellSize.
func BuildGrid(area *Area, sceneW, sceneH, cellSize, agentRadius float64) *Grid {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	cols := int(math.Ceil(sceneW / cellSize))
	rows := int(math.Ceil(sceneH / cellSize))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g := &Grid{
		cols:     cols,
		rows:     rows,
		cellSize: cellSize,
		walkable: make([]bool, cols*rows),
	}

	r := agentRadius
	if r < cellSize/2 {
		r = cellSize / 2
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			c := g.GridToWorld(cx, cy)
			g.walkable[cy*cols+cx] = area.IsPointWalkable(c) &&
				area.IsPointWalkable(Point{X: c.X - r, Y: c.Y}) &&
				area.IsPointWalkable(Point{X: c.X + r, Y: c.Y}) &&
				area.IsPointWalkable(Point{X: c.X, Y: c.Y - r}) &&
				area.IsPointWalkable(Point{X: c.X, Y: c.Y + r})
		}
	}
	return g
}

// Cols returns the cell count along X.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the cell count along Y.
func (g *Grid) Rows() int { return g.rows }

// CellSize returns the world units covered by one cell edge.
func (g *Grid) CellSize() float64 { return g.cellSize }

// Walkable reports whether the cell at (cx, cy) is walkable. Out-of-range
// cells are always blocked.
func (g *Grid) Walkable(cx, cy int) bool {
	if cx < 0 || cy < 0 || cx >= g.cols || cy >= g.rows {
		return false
	}
	return g.walkable[cy*g.cols+cx]
}

// WorldToGrid converts world coordinates to the containing cell.
func (g *Grid) WorldToGrid(x, y float64) (int, int) {
	return int(math.Floor(x / g.cellSize)), int(math.Floor(y / g.cellSize))
}

// GridToWorld returns the world-space centre of cell (cx, cy).
func (g *Grid) GridToWorld(cx, cy int) Point {
	return Point{
		X: (float64(cx) + 0.5) * g.cellSize,
		Y: (float64(cy) + 0.5) * g.cellSize,
	}
}

// clampCell clamps grid coordinates into range. No-op on an empty grid.
func (g *Grid) clampCell(cx, cy int) (int, int) {
	if g.cols > 0 {
		if cx < 0 {
			cx = 0
		} else if cx >= g.cols {
			cx = g.cols - 1
		}
	}
	if g.rows > 0 {
		if cy < 0 {
			cy = 0
		} else if cy >= g.rows {
			cy = g.rows - 1
		}
	}
	return cx, cy
}

// GridStats are aggregate cell counts for diagnostics.
type GridStats struct {
	Total    int `json:"total"`
	Walkable int `json:"walkable"`
	Blocked  int `json:"blocked"`
}

// Stats counts walkable and blocked cells.
func (g *Grid) Stats() GridStats {
	s := GridStats{Total: len(g.walkable)}
	for _, w := range g.walkable {
		if w {
			s.Walkable++
		} else {
			s.Blocked++
		}
	}
	return s
}

// GridExport is the JSON shape of a grid for tooling and debugging. The
// bitmap holds one string per row: '.' for walkable, '#' for blocked.
type GridExport struct {
	Cols     int      `json:"cols"`
	Rows     int      `json:"rows"`
	CellSize float64  `json:"cell_size"`
	Bitmap   []string `json:"bitmap"`
}

// Export snapshots the grid's dimensions, cell size, and bitmap.
func (g *Grid) Export() GridExport {
	e := GridExport{
		Cols:     g.cols,
		Rows:     g.rows,
		CellSize: g.cellSize,
		Bitmap:   make([]string, g.rows),
	}
	row := make([]byte, g.cols)
	for cy := 0; cy < g.rows; cy++ {
		for cx := 0; cx < g.cols; cx++ {
			if g.walkable[cy*g.cols+cx] {
				row[cx] = '.'
			} else {
				row[cx] = '#'
			}
		}
		e.Bitmap[cy] = string(row)
	}
	return e
}

// ExportJSON renders the grid export as indented JSON.
func (g *Grid) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(g.Export(), "", "  ")
}

// ImportGrid rebuilds a grid from an export, validating the bitmap shape.
func ImportGrid(e GridExport) (*Grid, error) {
	if e.Cols < 0 || e.Rows < 0 {
		return nil, fmt.Errorf("import grid: negative dimensions %dx%d", e.Cols, e.Rows)
	}
	if e.CellSize <= 0 {
		return nil, fmt.Errorf("import grid: non-positive cell size %g", e.CellSize)
	}
	if len(e.Bitmap) != e.Rows {
		return nil, fmt.Errorf("import grid: bitmap has %d rows, want %d", len(e.Bitmap), e.Rows)
	}
	g := &Grid{
		cols:     e.Cols,
		rows:     e.Rows,
		cellSize: e.CellSize,
		walkable: make([]bool, e.Cols*e.Rows),
	}
	for cy, row := range e.Bitmap {
		if len(row) != e.Cols {
			return nil, fmt.Errorf("import grid: bitmap row %d has %d cells, want %d", cy, len(row), e.Cols)
		}
		for cx := 0; cx < e.Cols; cx++ {
			switch row[cx] {
			case '.':
				g.walkable[cy*e.Cols+cx] = true
			case '#':
			default:
				return nil, fmt.Errorf("import grid: bitmap row %d has invalid cell %q", cy, row[cx])
			}
		}
	}
	return g, nil
}

// ImportGridJSON parses JSON produced by ExportJSON.
func ImportGridJSON(data []byte) (*Grid, error) {
	var e GridExport
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("import grid: %w", err)
	}
	return ImportGrid(e)
}
