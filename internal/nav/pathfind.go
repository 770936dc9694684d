package nav

import (
	"container/heap"
	"math"
)

type pathNode struct {
	cx, cy int
	g, h   float64
	parent *pathNode
	index  int // heap index
}

type openList []*pathNode

func (ol openList) Len() int           { return len(ol) }
func (ol openList) Less(i, j int) bool { return (ol[i].g + ol[i].h) < (ol[j].g + ol[j].h) }
func (ol openList) Swap(i, j int) {
	ol[i], ol[j] = ol[j], ol[i]
	ol[i].index = i
	ol[j].index = j
}
func (ol *openList) Push(x any) {
	n := x.(*pathNode)
	n.index = len(*ol)
	*ol = append(*ol, n)
}
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

var pathDirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// octile is the diagonal-aware heuristic over 8-connected cells.
func octile(ax, ay, bx, by int) float64 {
	dx := math.Abs(float64(ax - bx))
	dy := math.Abs(float64(ay - by))
	return dx + dy + (math.Sqrt2-2)*math.Min(dx, dy)
}

// FindPath runs A* from (sx, sy) to (gx, gy) in world coordinates and
// returns the waypoint list of cell centres, or nil when no path exists.
// Endpoints outside the grid are clamped into range rather than rejected;
// a start cell equal to the goal cell always yields a single-waypoint path.
// Orthogonal steps cost 1, diagonal steps √2, and diagonals may not cut a
// corner past a blocked orthogonal neighbour.
func (g *Grid) FindPath(sx, sy, gx, gy float64) []Point {
	if len(g.walkable) == 0 {
		return nil
	}
	scx, scy := g.WorldToGrid(sx, sy)
	gcx, gcy := g.WorldToGrid(gx, gy)
	scx, scy = g.clampCell(scx, scy)
	gcx, gcy = g.clampCell(gcx, gcy)

	if !g.Walkable(scx, scy) || !g.Walkable(gcx, gcy) {
		return nil
	}
	if scx == gcx && scy == gcy {
		return []Point{g.GridToWorld(scx, scy)}
	}

	key := func(cx, cy int) int { return cy*g.cols + cx }

	start := &pathNode{cx: scx, cy: scy, h: octile(scx, scy, gcx, gcy)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[int]bool)
	best := make(map[int]*pathNode)
	best[key(scx, scy)] = start

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if cur.cx == gcx && cur.cy == gcy {
			return g.buildPath(cur)
		}
		k := key(cur.cx, cur.cy)
		if closed[k] {
			continue
		}
		closed[k] = true

		for _, d := range pathDirs {
			nx, ny := cur.cx+d[0], cur.cy+d[1]
			if !g.Walkable(nx, ny) {
				continue
			}
			// Prevent diagonal corner-cutting through blocked cells.
			if d[0] != 0 && d[1] != 0 {
				if !g.Walkable(cur.cx+d[0], cur.cy) || !g.Walkable(cur.cx, cur.cy+d[1]) {
					continue
				}
			}
			nk := key(nx, ny)
			if closed[nk] {
				continue
			}
			cost := 1.0
			if d[0] != 0 && d[1] != 0 {
				cost = math.Sqrt2
			}
			ng := cur.g + cost
			if prev, ok := best[nk]; ok && ng >= prev.g {
				continue
			}
			node := &pathNode{cx: nx, cy: ny, g: ng, h: octile(nx, ny, gcx, gcy), parent: cur}
			best[nk] = node
			heap.Push(ol, node)
		}
	}
	return nil
}

// buildPath walks the came-from chain back to the start, reverses it, and
// converts every cell to its world-space centre.
func (g *Grid) buildPath(end *pathNode) []Point {
	var cells [][2]int
	for n := end; n != nil; n = n.parent {
		cells = append(cells, [2]int{n.cx, n.cy})
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	path := make([]Point, len(cells))
	for i, c := range cells {
		path[i] = g.GridToWorld(c[0], c[1])
	}
	return path
}
