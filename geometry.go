package parlor

import "math"

// polygonContains reports whether (x, y) is inside the polygon described by
// verts, using the even-odd crossing rule over the ordered vertex list.
// Degenerate polygons (fewer than 3 vertices) contain nothing.
//
// Edge policy: half-open comparisons mean boundary points are counted on
// exactly one side — for an axis-aligned rectangle the left and top edges
// test inside, the right and bottom edges outside. Shared vertices are never
// double-counted.
func polygonContains(verts []Vec2, x, y float64) bool {
	if len(verts) < 3 {
		return false
	}
	inside := false
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		vi, vj := verts[i], verts[j]
		if (vi.Y > y) != (vj.Y > y) {
			cross := (vj.X-vi.X)*(y-vi.Y)/(vj.Y-vi.Y) + vi.X
			if x < cross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// polygonBounds returns the axis-aligned bounding rect of verts.
// An empty vertex list yields a zero rect at the origin.
func polygonBounds(verts []Vec2) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX, minY := verts[0].X, verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range verts[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// combinedBounds returns the union of each region's bounding rect.
// Empty input yields a zero rect at the origin.
func combinedBounds(regions []*Region) Rect {
	first := true
	var minX, minY, maxX, maxY float64
	for _, r := range regions {
		if len(r.Vertices) == 0 {
			continue
		}
		b := polygonBounds(r.Vertices)
		if first {
			minX, minY = b.X, b.Y
			maxX, maxY = b.X+b.Width, b.Y+b.Height
			first = false
			continue
		}
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.X+b.Width)
		maxY = math.Max(maxY, b.Y+b.Height)
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// nearestPointOnSegment projects p onto the segment a-b and returns the
// closest point on the segment. Degenerate segments (a == b) return a.
func nearestPointOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*ab.X + (p.Y-a.Y)*ab.Y) / lenSq
	t = clamp(t, 0, 1)
	return Vec2{a.X + ab.X*t, a.Y + ab.Y*t}
}

// nearestBoundaryPoint returns the point on the polygon's boundary closest
// to p, walking every edge segment. The second return is the squared
// distance from p; callers comparing across polygons can avoid the sqrt.
// Degenerate polygons (fewer than 2 vertices) return p itself with an
// infinite distance.
func nearestBoundaryPoint(verts []Vec2, p Vec2) (Vec2, float64) {
	if len(verts) < 2 {
		return p, math.Inf(1)
	}
	best := p
	bestDistSq := math.Inf(1)
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		candidate := nearestPointOnSegment(p, verts[j], verts[i])
		dx, dy := candidate.X-p.X, candidate.Y-p.Y
		distSq := dx*dx + dy*dy
		if distSq < bestDistSq {
			bestDistSq = distSq
			best = candidate
		}
		j = i
	}
	return best, bestDistSq
}
