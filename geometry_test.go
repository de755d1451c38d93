package parlor

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func squareVerts() []Vec2 {
	return []Vec2{{0, 0}, {100, 0}, {100, 100}, {0, 100}}
}

func TestPolygonContains_Square(t *testing.T) {
	verts := squareVerts()
	if !polygonContains(verts, 50, 50) {
		t.Error("(50,50) should be inside the square")
	}
	if polygonContains(verts, 150, 50) {
		t.Error("(150,50) should be outside the square")
	}
	if polygonContains(verts, -1, 50) {
		t.Error("(-1,50) should be outside the square")
	}
}

func TestPolygonContains_EdgePolicy(t *testing.T) {
	// Half-open rule: left and top edges inside, right and bottom outside.
	verts := squareVerts()
	if !polygonContains(verts, 0, 50) {
		t.Error("left edge should test inside")
	}
	if !polygonContains(verts, 50, 0) {
		t.Error("top edge should test inside")
	}
	if polygonContains(verts, 100, 50) {
		t.Error("right edge should test outside")
	}
	if polygonContains(verts, 50, 100) {
		t.Error("bottom edge should test outside")
	}
}

func TestPolygonContains_Degenerate(t *testing.T) {
	if polygonContains(nil, 0, 0) {
		t.Error("empty vertex list should contain nothing")
	}
	if polygonContains([]Vec2{{0, 0}, {10, 0}}, 5, 0) {
		t.Error("2-vertex polygon should contain nothing")
	}
}

func TestPolygonContains_Triangle(t *testing.T) {
	verts := []Vec2{{0, 0}, {100, 0}, {50, 100}}
	if !polygonContains(verts, 50, 30) {
		t.Error("(50,30) should be inside the triangle")
	}
	if polygonContains(verts, 10, 90) {
		t.Error("(10,90) should be outside the triangle")
	}
}

func TestPolygonContains_Concave(t *testing.T) {
	// L-shape: a 100x100 square with its top-right 50x50 corner removed.
	verts := []Vec2{{0, 0}, {50, 0}, {50, 50}, {100, 50}, {100, 100}, {0, 100}}
	if !polygonContains(verts, 25, 25) {
		t.Error("(25,25) should be inside the L")
	}
	if !polygonContains(verts, 75, 75) {
		t.Error("(75,75) should be inside the L")
	}
	if polygonContains(verts, 75, 25) {
		t.Error("(75,25) is in the notch, should be outside")
	}
}

// referenceContains is an independently written even-odd test used to
// cross-check polygonContains on a sample grid.
func referenceContains(verts []Vec2, x, y float64) bool {
	if len(verts) < 3 {
		return false
	}
	crossings := 0
	for i := 0; i < len(verts); i++ {
		a := verts[i]
		b := verts[(i+1)%len(verts)]
		if (a.Y > y) == (b.Y > y) {
			continue
		}
		// Solve the edge for its X at height y; multiply through to avoid
		// the division in the implementation under test.
		if (x-a.X)*(b.Y-a.Y) < (b.X-a.X)*(y-a.Y) == (b.Y > a.Y) {
			crossings++
		}
	}
	return crossings%2 == 1
}

func TestPolygonContains_GridAgreement(t *testing.T) {
	polys := [][]Vec2{
		squareVerts(),
		{{0, 0}, {100, 0}, {50, 100}},
		{{0, 0}, {50, 0}, {50, 50}, {100, 50}, {100, 100}, {0, 100}},
	}
	for pi, verts := range polys {
		for x := -10.0; x <= 110; x += 7.5 {
			for y := -10.0; y <= 110; y += 7.5 {
				got := polygonContains(verts, x, y)
				want := referenceContains(verts, x, y)
				if got != want {
					t.Errorf("polygon %d: contains(%g,%g) = %v, reference says %v", pi, x, y, got, want)
				}
			}
		}
	}
}

func TestPolygonBounds(t *testing.T) {
	b := polygonBounds([]Vec2{{10, 20}, {110, 20}, {60, 80}})
	if !approxEqual(b.X, 10, epsilon) || !approxEqual(b.Y, 20, epsilon) {
		t.Errorf("bounds origin = (%f,%f), want (10,20)", b.X, b.Y)
	}
	if !approxEqual(b.Width, 100, epsilon) || !approxEqual(b.Height, 60, epsilon) {
		t.Errorf("bounds size = (%f,%f), want (100,60)", b.Width, b.Height)
	}
}

func TestPolygonBounds_Empty(t *testing.T) {
	b := polygonBounds(nil)
	if b != (Rect{}) {
		t.Errorf("empty bounds = %v, want zero rect", b)
	}
}

func TestCombinedBounds(t *testing.T) {
	regions := []*Region{
		NewRegion("a", true, []Vec2{{0, 0}, {50, 0}, {50, 50}, {0, 50}}),
		NewRegion("b", true, []Vec2{{100, 100}, {200, 100}, {200, 150}, {100, 150}}),
	}
	b := combinedBounds(regions)
	if !approxEqual(b.X, 0, epsilon) || !approxEqual(b.Y, 0, epsilon) {
		t.Errorf("combined origin = (%f,%f), want (0,0)", b.X, b.Y)
	}
	if !approxEqual(b.Width, 200, epsilon) || !approxEqual(b.Height, 150, epsilon) {
		t.Errorf("combined size = (%f,%f), want (200,150)", b.Width, b.Height)
	}
}

func TestCombinedBounds_Empty(t *testing.T) {
	if b := combinedBounds(nil); b != (Rect{}) {
		t.Errorf("combined bounds of no regions = %v, want zero rect", b)
	}
}

func TestNearestPointOnSegment(t *testing.T) {
	a, b := Vec2{0, 0}, Vec2{100, 0}

	p := nearestPointOnSegment(Vec2{50, 30}, a, b)
	if !approxEqual(p.X, 50, epsilon) || !approxEqual(p.Y, 0, epsilon) {
		t.Errorf("projection = %v, want (50,0)", p)
	}

	// Beyond the segment ends, the nearest point clamps to the endpoint.
	p = nearestPointOnSegment(Vec2{-10, 10}, a, b)
	if !approxEqual(p.X, 0, epsilon) || !approxEqual(p.Y, 0, epsilon) {
		t.Errorf("clamped projection = %v, want (0,0)", p)
	}

	// Degenerate segment.
	p = nearestPointOnSegment(Vec2{5, 5}, a, a)
	if p != a {
		t.Errorf("degenerate segment projection = %v, want %v", p, a)
	}
}

func TestNearestBoundaryPoint(t *testing.T) {
	p, distSq := nearestBoundaryPoint(squareVerts(), Vec2{150, 50})
	if !approxEqual(p.X, 100, epsilon) || !approxEqual(p.Y, 50, epsilon) {
		t.Errorf("nearest boundary point = %v, want (100,50)", p)
	}
	if !approxEqual(distSq, 2500, epsilon) {
		t.Errorf("distSq = %f, want 2500", distSq)
	}
}

func TestNearestBoundaryPoint_Degenerate(t *testing.T) {
	target := Vec2{5, 5}
	p, distSq := nearestBoundaryPoint([]Vec2{{0, 0}}, target)
	if p != target {
		t.Errorf("degenerate polygon nearest = %v, want target back", p)
	}
	if !math.IsInf(distSq, 1) {
		t.Errorf("degenerate polygon distSq = %f, want +Inf", distSq)
	}
}

func BenchmarkPolygonContains(b *testing.B) {
	verts := []Vec2{{0, 0}, {50, 0}, {50, 50}, {100, 50}, {100, 100}, {0, 100}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = polygonContains(verts, 75, 75)
	}
}
