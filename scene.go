package parlor

// Scene owns the geometry models and camera direction for one room of the
// game: where characters may walk, how large they draw at each depth, which
// layers composite in front of them, and how the camera frames it all. The
// surrounding engine drives it with Update once per frame and reads the
// query methods; rendering and input stay outside.
type Scene struct {
	Walkable    *WalkableArea
	ScaleZones  *ScaleZones
	WalkBehinds *WalkBehinds
	Director    *Director
}

// NewScene creates an empty scene whose Director covers the given viewport.
func NewScene(viewport Rect) *Scene {
	return &Scene{
		Walkable:    NewWalkableArea(),
		ScaleZones:  NewScaleZones(),
		WalkBehinds: NewWalkBehinds(),
		Director:    NewDirector(viewport),
	}
}

// Update advances the camera direction for this frame. Geometry models are
// pure queries and need no per-frame work. pointerX and pointerY are the
// pointer's screen position, used for camera edge scrolling when enabled.
func (s *Scene) Update(dt, pointerX, pointerY float64) {
	s.Director.Update(dt, pointerX, pointerY)
}

// IsWalkable reports whether p is a legal standing position.
func (s *Scene) IsWalkable(p Vec2) bool {
	return s.Walkable.IsWalkable(p)
}

// ConstrainMovement clamps a proposed move so it ends on walkable ground.
func (s *Scene) ConstrainMovement(from, to Vec2) Vec2 {
	return s.Walkable.ConstrainMovement(from, to)
}

// NearestWalkablePoint returns target or the closest walkable position to it.
func (s *Scene) NearestWalkablePoint(target Vec2) Vec2 {
	return s.Walkable.NearestWalkablePoint(target)
}

// ScaleAt returns the character render scale at depth y.
func (s *Scene) ScaleAt(y float64) float64 {
	return s.ScaleZones.ScaleAt(y)
}

// WalkBehindsAt returns the layers that composite in front of a character
// standing at depth y, back to front.
func (s *Scene) WalkBehindsAt(y float64) []*WalkBehind {
	return s.WalkBehinds.RegionsAt(y)
}

// Validate collects authoring diagnostics from every geometry model. An
// empty result means the scene data is clean. Defects degrade behavior
// (permissive walkability, neutral scale) but never crash, so this exists
// for preflight tooling rather than runtime enforcement.
func (s *Scene) Validate() []string {
	var diags []string
	diags = append(diags, s.Walkable.Validate()...)
	diags = append(diags, s.ScaleZones.Validate()...)
	diags = append(diags, s.WalkBehinds.Validate()...)
	return diags
}
