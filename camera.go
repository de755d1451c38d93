package parlor

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Camera is a view into the scene: a world-space center position, zoom,
// rotation, and the screen-space viewport it renders into. Cameras are
// registered with a Director under a name; the Director layers effects on
// top of the camera's resting transform.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	// Bounds is the world-space rectangle the camera is clamped to when
	// BoundsEnabled is true. Typically the scene background's extent.
	Bounds Rect

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool
}

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:     1.0,
		Viewport: viewport,
		dirty:    true,
	}
}

// Position returns the camera center as a vector.
func (c *Camera) Position() Vec2 {
	return Vec2{c.X, c.Y}
}

// SetPosition moves the camera center and invalidates the view matrix.
func (c *Camera) SetPosition(x, y float64) {
	c.X = x
	c.Y = y
	c.dirty = true
}

// SetZoom sets the zoom factor and invalidates the view matrix.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = zoom
	c.dirty = true
}

// SetRotation sets the rotation in radians and invalidates the view matrix.
func (c *Camera) SetRotation(r float64) {
	c.Rotation = r
	c.dirty = true
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// ClampToBounds immediately clamps the camera position so the visible area
// stays within Bounds. Call this after modifying X/Y directly to prevent a
// single frame where the camera sees outside the bounds. No-op if
// BoundsEnabled is false.
func (c *Camera) ClampToBounds() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	prevX, prevY := c.X, c.Y

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}

	if c.X != prevX || c.Y != prevY {
		c.dirty = true
	}
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	cos := math.Cos(-c.Rotation)
	sin := math.Sin(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	c.computeViewMatrix()
	sx, sy = transformPoint(c.viewMatrix, wx, wy)
	return
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.computeViewMatrix()
	wx, wy = transformPoint(c.invViewMatrix, sx, sy)
	return
}

// VisibleBounds returns the axis-aligned bounding rect of the camera's
// visible area in world space.
func (c *Camera) VisibleBounds() Rect {
	c.computeViewMatrix()
	inv := c.invViewMatrix

	vx := c.Viewport.X
	vy := c.Viewport.Y
	vr := vx + c.Viewport.Width
	vb := vy + c.Viewport.Height

	// Transform the four viewport corners to world space.
	x0, y0 := transformPoint(inv, vx, vy)
	x1, y1 := transformPoint(inv, vr, vy)
	x2, y2 := transformPoint(inv, vr, vb)
	x3, y3 := transformPoint(inv, vx, vb)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// GeoM returns the camera's view matrix as an ebiten.GeoM, ready to pass to
// DrawImageOptions for world-space rendering.
func (c *Camera) GeoM() ebiten.GeoM {
	m := c.computeViewMatrix()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Invalidate forces a recomputation of the view matrix.
func (c *Camera) Invalidate() {
	c.dirty = true
}
