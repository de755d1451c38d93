package parlor

import "testing"

func TestNewSceneEmpty(t *testing.T) {
	s := NewScene(Rect{Width: 800, Height: 600})
	if !s.IsWalkable(Vec2{400, 300}) {
		t.Error("empty scene should be fully walkable")
	}
	if got := s.ScaleAt(300); got != 1.0 {
		t.Errorf("ScaleAt on empty scene = %f, want 1.0", got)
	}
	if got := s.WalkBehindsAt(300); len(got) != 0 {
		t.Errorf("WalkBehindsAt on empty scene = %v, want none", got)
	}
	if diags := s.Validate(); len(diags) != 0 {
		t.Errorf("Validate on empty scene = %v, want clean", diags)
	}
}

func TestSceneUpdateDrivesDirector(t *testing.T) {
	s := NewScene(Rect{Width: 800, Height: 600})
	e := s.Director.ZoomTo(2.0, 1.0)
	e.Easing = EaseLinear

	s.Update(0.5, 400, 300)
	if !approxEqual(s.Director.View().Zoom, 1.5, 1e-5) {
		t.Errorf("view zoom after Update = %f, want 1.5", s.Director.View().Zoom)
	}
}

// A character walking toward furniture: the scene clamps the path, scales
// the sprite by depth, and reports which layers draw in front.
func TestSceneWalkthrough(t *testing.T) {
	s := NewScene(Rect{Width: 800, Height: 600})
	s.Walkable.AddRegion(NewRegion("floor", true, []Vec2{
		{0, 200}, {800, 200}, {800, 600}, {0, 600},
	}))
	s.Walkable.AddRegion(NewRegion("table", false, []Vec2{
		{300, 350}, {500, 350}, {500, 450}, {300, 450},
	}))
	s.ScaleZones.Add(ScaleZone{MinY: 200, MaxY: 600, MinScale: 0.4, MaxScale: 1.0})
	s.WalkBehinds.Add(&WalkBehind{
		Region:     Region{Name: "table-top", Walkable: true, Vertices: []Vec2{{300, 300}, {500, 300}, {500, 450}, {300, 450}}},
		YThreshold: 400,
		ZOrder:     1,
	})

	from := Vec2{200, 400}
	got := s.ConstrainMovement(from, Vec2{400, 400})
	if !s.IsWalkable(got) {
		t.Errorf("constrained position %v is not walkable", got)
	}
	if got.X >= 300 {
		t.Errorf("constrained X = %f, walked into the table (blocked from 300)", got.X)
	}

	if scale := s.ScaleAt(400); !approxEqual(scale, 0.7, 1e-9) {
		t.Errorf("ScaleAt(400) = %f, want 0.7 midway through the zone", scale)
	}

	if layers := names(s.WalkBehindsAt(450)); len(layers) != 1 || layers[0] != "table-top" {
		t.Errorf("WalkBehindsAt(450) = %v, want [table-top]", layers)
	}
	if layers := s.WalkBehindsAt(399); len(layers) != 0 {
		t.Errorf("WalkBehindsAt(399) = %v, want none above the threshold", layers)
	}
}

func TestSceneValidateAggregates(t *testing.T) {
	s := NewScene(Rect{Width: 800, Height: 600})
	s.Walkable.AddRegion(NewRegion("sliver", true, []Vec2{{0, 0}, {1, 1}}))
	s.ScaleZones.Add(ScaleZone{MinY: 100, MaxY: 50, MinScale: 1, MaxScale: 1})
	s.WalkBehinds.Add(&WalkBehind{
		Region: Region{Name: "dot", Walkable: true, Vertices: []Vec2{{0, 0}}},
	})

	diags := s.Validate()
	if len(diags) < 3 {
		t.Errorf("Validate = %v, want one diagnostic per defective model", diags)
	}
}
