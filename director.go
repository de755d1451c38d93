package parlor

import (
	"fmt"

	"github.com/tanema/gween"
)

// transitionPhase tracks whether a camera-to-camera transition is running.
type transitionPhase uint8

const (
	transitionIdle transitionPhase = iota
	transitionActive
)

// cameraTransition holds the state of an in-flight switch between named
// cameras: tweens from the outgoing camera's position to the incoming
// one's. The phase field, not a nil check, decides whether a transition is
// in progress.
type cameraTransition struct {
	phase   transitionPhase
	target  string
	tweenX  *gween.Tween
	tweenY  *gween.Tween
	doneX   bool
	doneY   bool
	current Vec2
}

// EdgeScroll configures pointer-driven scrolling: when the pointer rests
// within Margin pixels of the viewport edge, the active camera drifts that
// way at Speed world units per second. The classic adventure-game way to
// explore a scene wider than the screen.
type EdgeScroll struct {
	Enabled bool
	Margin  float64
	Speed   float64
}

// Director owns the named cameras for a scene, runs transitions between
// them, and composes the active camera effects into a final view transform
// each tick. It is the single writer of the composed view; the renderer
// reads View or the coordinate-conversion helpers.
type Director struct {
	cameras    map[string]*Camera
	active     *Camera
	activeName string

	effects []Effect

	basePos      Vec2
	baseZoom     float64
	baseRotation float64

	effectOffset   Vec2
	effectZoom     float64
	effectRotation float64

	transition cameraTransition
	view       *Camera

	// EdgeScroll may be set directly; disabled by default.
	EdgeScroll EdgeScroll
}

// DefaultCameraName is the name of the camera a Director starts with.
const DefaultCameraName = "main"

// NewDirector creates a Director with a single default camera covering the
// given viewport.
func NewDirector(viewport Rect) *Director {
	main := NewCamera(viewport)
	d := &Director{
		cameras:    map[string]*Camera{DefaultCameraName: main},
		active:     main,
		activeName: DefaultCameraName,
		baseZoom:   1,
		effectZoom: 1,
		view:       NewCamera(viewport),
	}
	d.captureBase()
	d.compose()
	return d
}

// AddCamera registers a camera under a name, replacing any camera already
// registered under it. Replacing the active camera's name keeps the old
// camera active until the next SwitchTo.
func (d *Director) AddCamera(name string, cam *Camera) {
	d.cameras[name] = cam
}

// Camera returns the camera registered under name.
func (d *Director) Camera(name string) (*Camera, bool) {
	cam, ok := d.cameras[name]
	return cam, ok
}

// ActiveCamera returns the camera the Director is currently composing from.
// During a transition this is still the outgoing camera; the pointer swaps
// when the transition completes.
func (d *Director) ActiveCamera() *Camera {
	return d.active
}

// ActiveName returns the active camera's registered name.
func (d *Director) ActiveName() string {
	return d.activeName
}

// SwitchTo starts a transition to the named camera, interpolating position
// over duration seconds with the given easing. A non-positive duration
// swaps immediately. Switching to an unknown name returns an error and
// leaves the current camera in place; switching to the already-active
// camera is a no-op.
func (d *Director) SwitchTo(name string, duration float64, easing Easing) error {
	target, ok := d.cameras[name]
	if !ok {
		return fmt.Errorf("director: no camera named %q", name)
	}
	if target == d.active && d.transition.phase == transitionIdle {
		return nil
	}
	if duration <= 0 {
		d.active = target
		d.activeName = name
		d.transition = cameraTransition{}
		if len(d.effects) == 0 {
			d.captureBase()
			d.compose()
		}
		return nil
	}

	from := d.restPosition()
	d.transition = cameraTransition{
		phase:   transitionActive,
		target:  name,
		tweenX:  gween.New(float32(from.X), float32(target.X), float32(duration), easing.Func()),
		tweenY:  gween.New(float32(from.Y), float32(target.Y), float32(duration), easing.Func()),
		current: from,
	}
	return nil
}

// Transitioning reports whether a camera transition is in progress.
func (d *Director) Transitioning() bool {
	return d.transition.phase == transitionActive
}

// --- Effects ---

// Apply activates an effect. For exclusive kinds (Zoom, Pan, Follow,
// Rotation) any existing effect of the same kind is removed first; stacking
// kinds (Shake, Sway) accumulate.
func (d *Director) Apply(e Effect) {
	if !e.Kind().Stacks() {
		d.RemoveEffect(e.Kind())
	}
	d.effects = append(d.effects, e)
}

// Shake starts a decaying camera shake.
func (d *Director) Shake(intensity, frequency, duration float64) *ShakeEffect {
	e := NewShakeEffect(intensity, frequency, duration)
	d.Apply(e)
	return e
}

// ZoomTo eases the view zoom toward target.
func (d *Director) ZoomTo(target, duration float64) *ZoomEffect {
	e := NewZoomEffect(target, duration)
	d.Apply(e)
	return e
}

// PanTo eases the view to an absolute world position.
func (d *Director) PanTo(x, y, duration float64) *PanEffect {
	e := NewPanEffect(x, y, duration)
	d.Apply(e)
	return e
}

// Follow keeps the view trained on a moving entity until removed.
func (d *Director) Follow(target Positioner, smooth bool, deadzone, speed float64) *FollowEffect {
	e := NewFollowEffect(target, smooth, deadzone, speed)
	d.Apply(e)
	return e
}

// Sway starts a drifting wave motion.
func (d *Director) Sway(amplitude, frequency, verticalFactor, rotationAmplitude, duration float64) *SwayEffect {
	e := NewSwayEffect(amplitude, frequency, verticalFactor, rotationAmplitude, duration)
	d.Apply(e)
	return e
}

// RotateTo eases the view rotation toward target radians.
func (d *Director) RotateTo(target, duration float64) *RotationEffect {
	e := NewRotationEffect(target, duration)
	d.Apply(e)
	return e
}

// RemoveEffect removes every active effect of the given kind. Removing a
// kind with no active instance is a no-op.
func (d *Director) RemoveEffect(kind EffectKind) {
	kept := d.effects[:0]
	for _, e := range d.effects {
		if e.Kind() != kind {
			kept = append(kept, e)
		}
	}
	d.effects = kept
}

// ClearEffects removes every active effect.
func (d *Director) ClearEffects() {
	d.effects = d.effects[:0]
}

// HasEffect reports whether any effect of the given kind is active.
func (d *Director) HasEffect(kind EffectKind) bool {
	for _, e := range d.effects {
		if e.Kind() == kind {
			return true
		}
	}
	return false
}

// Effects returns the active effect list. The returned slice MUST NOT be
// mutated.
func (d *Director) Effects() []Effect {
	return d.effects
}

// --- Per-tick composition ---

// Update advances transitions, edge scrolling, and every active effect,
// then recomposes the final view transform. pointerX and pointerY are the
// pointer's screen position, used only for edge scrolling.
func (d *Director) Update(dt, pointerX, pointerY float64) {
	d.updateTransition(dt)
	d.updateEdgeScroll(dt, pointerX, pointerY)

	// With no effects the view tracks the camera's rest transform exactly,
	// and the rest transform becomes the baseline effects perturb. While
	// effects run the baseline stays frozen so finished effects return the
	// view to where it started.
	if len(d.effects) == 0 {
		d.captureBase()
	}

	d.effectOffset = Vec2{}
	d.effectZoom = 1
	d.effectRotation = 0

	view := EffectView{BasePosition: d.basePos, Viewport: d.active.Viewport}
	kept := d.effects[:0]
	for _, e := range d.effects {
		e.Update(dt, view)
		if e.Done() {
			continue
		}
		kept = append(kept, e)
		c := e.Contribution(view)
		d.effectOffset = d.effectOffset.Add(c.Offset)
		d.effectZoom *= c.Zoom
		d.effectRotation += c.Rotation
	}
	d.effects = kept

	d.compose()
}

// updateTransition advances an in-flight camera switch and swaps the active
// pointer on completion.
func (d *Director) updateTransition(dt float64) {
	if d.transition.phase != transitionActive {
		return
	}
	t := &d.transition
	if !t.doneX {
		v, done := t.tweenX.Update(float32(dt))
		t.current.X = float64(v)
		t.doneX = done
	}
	if !t.doneY {
		v, done := t.tweenY.Update(float32(dt))
		t.current.Y = float64(v)
		t.doneY = done
	}
	if t.doneX && t.doneY {
		d.active = d.cameras[t.target]
		d.activeName = t.target
		d.transition = cameraTransition{}
	}
}

// updateEdgeScroll drifts the active camera when the pointer sits in the
// viewport's edge margin. Suspended during transitions so a scripted switch
// can't be fought by the player's pointer.
func (d *Director) updateEdgeScroll(dt, pointerX, pointerY float64) {
	es := d.EdgeScroll
	if !es.Enabled || d.transition.phase == transitionActive {
		return
	}
	vp := d.active.Viewport
	if !vp.Contains(pointerX, pointerY) {
		return
	}
	step := es.Speed * dt
	if pointerX < vp.X+es.Margin {
		d.active.X -= step
	} else if pointerX > vp.X+vp.Width-es.Margin {
		d.active.X += step
	}
	if pointerY < vp.Y+es.Margin {
		d.active.Y -= step
	} else if pointerY > vp.Y+vp.Height-es.Margin {
		d.active.Y += step
	}
	d.active.ClampToBounds()
	d.active.Invalidate()
}

// restPosition returns the camera position effects perturb: the transition
// interpolation while switching, otherwise the active camera's own
// position.
func (d *Director) restPosition() Vec2 {
	if d.transition.phase == transitionActive {
		return d.transition.current
	}
	return d.active.Position()
}

// captureBase snapshots the rest transform the effect accumulators apply
// on top of.
func (d *Director) captureBase() {
	d.basePos = d.restPosition()
	d.baseZoom = d.active.Zoom
	d.baseRotation = d.active.Rotation
}

// compose writes the final transform into the view camera.
func (d *Director) compose() {
	d.view.Viewport = d.active.Viewport
	d.view.Bounds = d.active.Bounds
	d.view.BoundsEnabled = d.active.BoundsEnabled
	d.view.SetPosition(d.basePos.X+d.effectOffset.X, d.basePos.Y+d.effectOffset.Y)
	d.view.SetZoom(d.baseZoom * d.effectZoom)
	d.view.SetRotation(d.baseRotation + d.effectRotation)
	if len(d.effects) == 0 {
		// Only clamp at rest: a shake is allowed to peek past the scene
		// edge, but an idle camera must not drift out of it.
		d.view.ClampToBounds()
	}
}

// View returns the composed camera: rest transform plus effects. The
// renderer should draw through it (via GeoM or WorldToScreen). The returned
// camera is owned by the Director; mutations are overwritten every tick.
func (d *Director) View() *Camera {
	return d.view
}

// EffectOffset returns the summed positional offset of the active effects
// for the current tick.
func (d *Director) EffectOffset() Vec2 {
	return d.effectOffset
}

// EffectZoom returns the combined zoom multiplier of the active effects for
// the current tick.
func (d *Director) EffectZoom() float64 {
	return d.effectZoom
}

// EffectRotation returns the summed rotation offset of the active effects
// for the current tick.
func (d *Director) EffectRotation() float64 {
	return d.effectRotation
}

// WorldToScreen converts world coordinates to screen coordinates through
// the composed view.
func (d *Director) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return d.view.WorldToScreen(wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates through
// the composed view. It is the exact algebraic inverse of WorldToScreen.
func (d *Director) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return d.view.ScreenToWorld(sx, sy)
}
