package parlor

import "fmt"

// ScaleZone maps a vertical band of the scene to a character scale range,
// giving flat 2D backgrounds a depth illusion: characters shrink as they
// walk toward the horizon. Scale is interpolated linearly from MinScale at
// MinY to MaxScale at MaxY.
type ScaleZone struct {
	MinY, MinScale float64
	MaxY, MaxScale float64
}

// scaleAt interpolates the zone's scale for y. Callers must ensure the zone
// contains y and has a non-inverted range.
func (z ScaleZone) scaleAt(y float64) float64 {
	t := (y - z.MinY) / (z.MaxY - z.MinY)
	return z.MinScale + (z.MaxScale-z.MinScale)*t
}

// contains reports whether y falls within the zone's band, inclusive at
// both ends.
func (z ScaleZone) contains(y float64) bool {
	return y >= z.MinY && y <= z.MaxY
}

// ScaleZones is an ordered collection of scale zones. Zones are evaluated
// in storage order and the first zone containing a query Y wins; overlaps
// are flagged by Validate but never auto-corrected.
type ScaleZones struct {
	zones []ScaleZone
}

// NewScaleZones creates an empty scale-zone set.
func NewScaleZones() *ScaleZones {
	return &ScaleZones{}
}

// Add appends a zone.
func (s *ScaleZones) Add(z ScaleZone) {
	s.zones = append(s.zones, z)
}

// Clear removes every zone.
func (s *ScaleZones) Clear() {
	s.zones = s.zones[:0]
}

// Len returns the number of zones.
func (s *ScaleZones) Len() int {
	return len(s.zones)
}

// ScaleAt returns the render scale for a character standing at y. Outside
// every zone the neutral scale 1.0 is returned; zones are never
// extrapolated past their edges.
func (s *ScaleZones) ScaleAt(y float64) float64 {
	for _, z := range s.zones {
		if z.MaxY == z.MinY {
			// Degenerate band. Validate flags it; treat as a hard step.
			if y == z.MinY {
				return z.MinScale
			}
			continue
		}
		if z.contains(y) {
			return z.scaleAt(y)
		}
	}
	return 1.0
}

// Validate returns non-fatal diagnostics: inverted Y ranges, non-positive
// scales, and overlapping zones (which make ScaleAt order-dependent).
func (s *ScaleZones) Validate() []string {
	var diags []string
	for i, z := range s.zones {
		if z.MinY >= z.MaxY {
			diags = append(diags, fmt.Sprintf("scale zone %d has inverted Y range [%g, %g]", i, z.MinY, z.MaxY))
		}
		if z.MinScale <= 0 || z.MaxScale <= 0 {
			diags = append(diags, fmt.Sprintf("scale zone %d has non-positive scale [%g, %g]", i, z.MinScale, z.MaxScale))
		}
		for j := i + 1; j < len(s.zones); j++ {
			o := s.zones[j]
			if z.MinY <= o.MaxY && z.MaxY >= o.MinY {
				diags = append(diags, fmt.Sprintf("scale zones %d and %d overlap; zone %d wins in the overlap", i, j, i))
			}
		}
	}
	return diags
}
