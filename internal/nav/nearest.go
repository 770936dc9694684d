package nav

import "math"

// ringSamples is the number of candidate points tested on each concentric
// ring, in a fixed angular order so results are deterministic.
const ringSamples = 16

// FindNearestWalkablePoint recovers from an invalid destination: it searches
// concentric rings of increasing radius around target and returns the first
// walkable candidate found. It operates on the region list in continuous
// space, independent of any grid, so there are no quantization artifacts.
//
// The contract is fail-open: when the whole search radius is exhausted the
// original target comes back unchanged with found == false. Callers that
// need a hard guarantee must check found (or re-test walkability) before
// moving an agent, otherwise an unwalkable "nearest point" can let the agent
// clip through geometry.
func FindNearestWalkablePoint(target Point, regions []*Region, searchRadius, step float64) (Point, bool) {
	if regionsWalkable(regions, target) {
		return target, true
	}
	if step <= 0 || searchRadius <= 0 {
		return target, false
	}
	for r := step; r <= searchRadius; r += step {
		for i := 0; i < ringSamples; i++ {
			angle := 2 * math.Pi * float64(i) / ringSamples
			cand := Point{
				X: target.X + r*math.Cos(angle),
				Y: target.Y + r*math.Sin(angle),
			}
			if regionsWalkable(regions, cand) {
				return cand, true
			}
		}
	}
	return target, false
}

// ConstrainToWalkable steps from to back toward from at a fixed resolution
// and returns the first walkable sample, so a movement request can never
// teleport an agent through a wall. Returns from when no walkable point
// exists along the segment at all.
func ConstrainToWalkable(from, to Point, regions []*Region) Point {
	if regionsWalkable(regions, to) {
		return to
	}
	dist := to.Dist(from)
	if dist <= boundaryEpsilon {
		return from
	}
	dx := (from.X - to.X) / dist
	dy := (from.Y - to.Y) / dist
	for d := constrainStep; d < dist; d += constrainStep {
		cand := Point{X: to.X + dx*d, Y: to.Y + dy*d}
		if regionsWalkable(regions, cand) {
			return cand
		}
	}
	return from
}
