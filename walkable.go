package parlor

import (
	"fmt"
	"math"
)

// Region is a named polygon area within a scene's walkable-area model.
// Walkable regions grant passage; non-walkable regions deny it and always
// win over overlapping walkable ones. Vertices are in insertion order and
// define the polygon boundary; a valid region has at least 3.
type Region struct {
	Name     string
	Walkable bool
	Vertices []Vec2
}

// NewRegion creates a region from a vertex list.
func NewRegion(name string, walkable bool, vertices []Vec2) *Region {
	return &Region{Name: name, Walkable: walkable, Vertices: vertices}
}

// Contains reports whether the point lies inside the region's polygon.
func (r *Region) Contains(p Vec2) bool {
	return polygonContains(r.Vertices, p.X, p.Y)
}

// Bounds returns the region's axis-aligned bounding rect.
func (r *Region) Bounds() Rect {
	return polygonBounds(r.Vertices)
}

// constrainSteps is the number of bisection steps used when searching for
// the furthest walkable point along a movement segment. 16 steps resolve
// the boundary to well under a hundredth of a pixel on scene-sized moves.
const constrainSteps = 16

// WalkableArea owns a scene's polygon regions and answers containment and
// movement-constraint queries. With no regions defined every point is
// walkable, so a scene without authored geometry degrades to free movement.
type WalkableArea struct {
	regions []*Region
	bounds  Rect
}

// NewWalkableArea creates an empty walkable area.
func NewWalkableArea() *WalkableArea {
	return &WalkableArea{}
}

// AddRegion appends a region and recomputes the combined bounds.
func (w *WalkableArea) AddRegion(r *Region) {
	w.regions = append(w.regions, r)
	w.bounds = combinedBounds(w.regions)
}

// RemoveRegion removes the first region with the given name and recomputes
// the combined bounds. Removing an unknown name is a no-op.
func (w *WalkableArea) RemoveRegion(name string) {
	for i, r := range w.regions {
		if r.Name == name {
			w.regions = append(w.regions[:i], w.regions[i+1:]...)
			w.bounds = combinedBounds(w.regions)
			return
		}
	}
}

// ClearRegions removes every region.
func (w *WalkableArea) ClearRegions() {
	w.regions = w.regions[:0]
	w.bounds = Rect{}
}

// Regions returns the region list. The returned slice MUST NOT be mutated.
func (w *WalkableArea) Regions() []*Region {
	return w.regions
}

// Bounds returns the axis-aligned rect enclosing all regions.
func (w *WalkableArea) Bounds() Rect {
	return w.bounds
}

// IsWalkable reports whether p is a legal standing position.
//
// With no regions defined every point is walkable. Otherwise a point must be
// inside at least one walkable region, and any containing non-walkable
// region vetoes it regardless of insertion order.
func (w *WalkableArea) IsWalkable(p Vec2) bool {
	if len(w.regions) == 0 {
		return true
	}
	if !w.bounds.Empty() && !w.bounds.Contains(p.X, p.Y) {
		return false
	}
	walkable := false
	for _, r := range w.regions {
		if !r.Contains(p) {
			continue
		}
		if !r.Walkable {
			return false
		}
		walkable = true
	}
	return walkable
}

// ConstrainMovement returns the furthest point along the segment from-to
// that is still walkable. If to is already walkable it is returned
// unchanged; if no point past from is walkable, from is returned. The
// result is never a non-walkable point when from itself is walkable.
func (w *WalkableArea) ConstrainMovement(from, to Vec2) Vec2 {
	if w.IsWalkable(to) {
		return to
	}
	if !w.IsWalkable(from) {
		// Lost position (teleport, bad spawn): recover to the nearest
		// walkable point rather than stranding the character.
		return w.NearestWalkablePoint(from)
	}

	// Bisect the segment for the walkable/non-walkable boundary. lo always
	// holds a walkable parameter, hi a non-walkable one.
	lo, hi := 0.0, 1.0
	for i := 0; i < constrainSteps; i++ {
		mid := (lo + hi) / 2
		p := Vec2{
			X: from.X + (to.X-from.X)*mid,
			Y: from.Y + (to.Y-from.Y)*mid,
		}
		if w.IsWalkable(p) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return Vec2{
		X: from.X + (to.X-from.X)*lo,
		Y: from.Y + (to.Y-from.Y)*lo,
	}
}

// NearestWalkablePoint returns target if it is walkable, otherwise the
// closest point on any walkable region's boundary. Exact-distance ties go
// to the first region in storage order. With no walkable regions at all the
// target is returned unchanged.
func (w *WalkableArea) NearestWalkablePoint(target Vec2) Vec2 {
	if w.IsWalkable(target) {
		return target
	}
	best := target
	bestDistSq := math.Inf(1)
	for _, r := range w.regions {
		if !r.Walkable || len(r.Vertices) < 3 {
			continue
		}
		candidate, distSq := nearestBoundaryPoint(r.Vertices, target)
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = candidate
		}
	}
	return best
}

// Validate returns non-fatal diagnostics for authoring defects: degenerate
// polygons and duplicate region names. An empty slice means the model is
// clean. Diagnostics never interrupt gameplay; they exist for preflight
// tooling.
func (w *WalkableArea) Validate() []string {
	var diags []string
	seen := make(map[string]bool, len(w.regions))
	for _, r := range w.regions {
		if len(r.Vertices) < 3 {
			diags = append(diags, fmt.Sprintf("region %q has %d vertices, need at least 3", r.Name, len(r.Vertices)))
		}
		if seen[r.Name] {
			diags = append(diags, fmt.Sprintf("duplicate region name %q", r.Name))
		}
		seen[r.Name] = true
	}
	return diags
}
