package parlor

import (
	"fmt"
	"sort"
)

// WalkBehind is a scene layer region that composites in front of a
// character once the character's feet pass its Y threshold, faking depth
// against a flat background (a table the character can stand behind, a
// doorway arch). ZOrder orders overlapping layers: lower draws further
// back.
type WalkBehind struct {
	Region
	YThreshold float64
	ZOrder     int
}

// WalkBehinds owns a scene's walk-behind layers and answers draw-order
// queries by character depth.
type WalkBehinds struct {
	regions []*WalkBehind
}

// NewWalkBehinds creates an empty walk-behind set.
func NewWalkBehinds() *WalkBehinds {
	return &WalkBehinds{}
}

// Add appends a walk-behind region.
func (w *WalkBehinds) Add(r *WalkBehind) {
	w.regions = append(w.regions, r)
}

// Clear removes every region.
func (w *WalkBehinds) Clear() {
	w.regions = w.regions[:0]
}

// Len returns the number of regions.
func (w *WalkBehinds) Len() int {
	return len(w.regions)
}

// RegionsAt returns every region whose threshold is at or above a character
// standing at y (YThreshold <= y), ordered by ZOrder ascending so the
// renderer can composite back-to-front. Regions with equal ZOrder keep
// their insertion order.
func (w *WalkBehinds) RegionsAt(y float64) []*WalkBehind {
	var active []*WalkBehind
	for _, r := range w.regions {
		if r.YThreshold <= y {
			active = append(active, r)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].ZOrder < active[j].ZOrder
	})
	return active
}

// Validate returns non-fatal diagnostics: degenerate polygons and
// thresholds outside the region's own vertical extent, which usually means
// a mis-authored layer that is always (or never) in front.
func (w *WalkBehinds) Validate() []string {
	var diags []string
	for _, r := range w.regions {
		if len(r.Vertices) < 3 {
			diags = append(diags, fmt.Sprintf("walk-behind %q has %d vertices, need at least 3", r.Name, len(r.Vertices)))
			continue
		}
		b := polygonBounds(r.Vertices)
		if r.YThreshold < b.Y || r.YThreshold > b.Y+b.Height {
			diags = append(diags, fmt.Sprintf("walk-behind %q threshold %g outside region Y extent [%g, %g]", r.Name, r.YThreshold, b.Y, b.Y+b.Height))
		}
	}
	return diags
}
