package parlor

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug overlay colors.
var (
	debugWalkableColor   = color.RGBA{G: 0xcc, A: 0xff}
	debugBlockedColor    = color.RGBA{R: 0xcc, A: 0xff}
	debugWalkBehindColor = color.RGBA{R: 0xcc, G: 0xcc, A: 0xff}
	debugBoundsColor     = color.RGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
)

// debugMode enables stderr diagnostics from scene queries and loads.
var debugMode bool

// SetDebugMode toggles stderr diagnostics. When enabled, Scene validation
// warnings are printed at load time and DebugDraw shows live geometry.
func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// debugLogDiagnostics prints validation diagnostics to stderr when debug
// mode is on.
func debugLogDiagnostics(diags []string) {
	if !debugMode {
		return
	}
	for _, d := range diags {
		_, _ = fmt.Fprintf(os.Stderr, "[parlor] warning: %s\n", d)
	}
}

// DebugDraw strokes the scene's geometry onto screen through the Director's
// composed view: walkable regions in green, blocked regions in red,
// walk-behind layers in yellow, and the active camera's bounds in blue.
// Intended for authoring builds; it draws nothing useful without geometry.
func DebugDraw(screen *ebiten.Image, s *Scene) {
	view := s.Director.View()

	for _, r := range s.Walkable.Regions() {
		c := debugWalkableColor
		if !r.Walkable {
			c = debugBlockedColor
		}
		strokePolygon(screen, view, r.Vertices, c)
	}
	for _, wb := range s.WalkBehinds.regions {
		strokePolygon(screen, view, wb.Vertices, debugWalkBehindColor)
		// Threshold line across the region's horizontal extent.
		b := polygonBounds(wb.Vertices)
		x0, y0 := view.WorldToScreen(b.X, wb.YThreshold)
		x1, y1 := view.WorldToScreen(b.X+b.Width, wb.YThreshold)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, debugWalkBehindColor, true)
	}

	cam := s.Director.ActiveCamera()
	if cam.BoundsEnabled {
		b := cam.Bounds
		strokePolygon(screen, view, []Vec2{
			{b.X, b.Y},
			{b.X + b.Width, b.Y},
			{b.X + b.Width, b.Y + b.Height},
			{b.X, b.Y + b.Height},
		}, debugBoundsColor)
	}
}

// strokePolygon draws the closed outline of verts in screen space.
func strokePolygon(screen *ebiten.Image, view *Camera, verts []Vec2, c color.Color) {
	if len(verts) < 2 {
		return
	}
	j := len(verts) - 1
	for i := 0; i < len(verts); i++ {
		x0, y0 := view.WorldToScreen(verts[j].X, verts[j].Y)
		x1, y1 := view.WorldToScreen(verts[i].X, verts[i].Y)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
		j = i
	}
}
