package parlor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene files are declarative YAML describing a room's geometry and
// cameras. The loader fills a Scene from them; authoring defects that are
// survivable (degenerate polygons, overlapping zones) load anyway and
// surface through Scene.Validate, while structural problems (unparseable
// YAML, a zero-size viewport, duplicate camera names) fail the load with an
// error.

// SceneData mirrors the scene file's top-level document.
type SceneData struct {
	Name        string           `yaml:"name"`
	Viewport    *RectData        `yaml:"viewport"`
	Regions     []RegionData     `yaml:"regions"`
	ScaleZones  []ScaleZoneData  `yaml:"scaleZones"`
	WalkBehinds []WalkBehindData `yaml:"walkBehinds"`
	Cameras     []CameraData     `yaml:"cameras"`
	EdgeScroll  *EdgeScrollData  `yaml:"edgeScroll"`
}

// RectData is a rectangle in scene-file form.
type RectData struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (r RectData) rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// PointData is a vertex in scene-file form.
type PointData struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// RegionData is a walkable-area polygon in scene-file form. Walkable
// defaults to true when omitted; authors mostly write regions people walk
// in and mark the exceptions.
type RegionData struct {
	Name     string      `yaml:"name"`
	Walkable *bool       `yaml:"walkable"`
	Vertices []PointData `yaml:"vertices"`
}

// ScaleZoneData is a depth-scale band in scene-file form.
type ScaleZoneData struct {
	MinY     float64 `yaml:"minY"`
	MaxY     float64 `yaml:"maxY"`
	MinScale float64 `yaml:"minScale"`
	MaxScale float64 `yaml:"maxScale"`
}

// WalkBehindData is a walk-behind layer in scene-file form.
type WalkBehindData struct {
	Name       string      `yaml:"name"`
	YThreshold float64     `yaml:"yThreshold"`
	ZOrder     int         `yaml:"zOrder"`
	Vertices   []PointData `yaml:"vertices"`
}

// CameraData is a named camera in scene-file form. Zoom defaults to 1.
type CameraData struct {
	Name   string    `yaml:"name"`
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Zoom   float64   `yaml:"zoom"`
	Bounds *RectData `yaml:"bounds"`
}

// EdgeScrollData configures pointer edge scrolling in scene-file form.
type EdgeScrollData struct {
	Enabled bool    `yaml:"enabled"`
	Margin  float64 `yaml:"margin"`
	Speed   float64 `yaml:"speed"`
}

// defaultViewport is used when a scene file does not declare one.
var defaultViewport = Rect{Width: 800, Height: 600}

// LoadSceneFile reads and parses a scene file into a ready-to-use Scene.
func LoadSceneFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("invalid scene file %s: %w", path, err)
	}
	return scene, nil
}

// ParseScene parses scene YAML into a Scene.
func ParseScene(data []byte) (*Scene, error) {
	var sd SceneData
	if err := yaml.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("failed to parse scene YAML: %w", err)
	}
	applySceneDefaults(&sd)
	if err := validateSceneData(&sd); err != nil {
		return nil, err
	}
	scene := buildScene(&sd)
	debugLogDiagnostics(scene.Validate())
	return scene, nil
}

// applySceneDefaults fills omitted optional fields so older scene files
// keep loading unchanged.
func applySceneDefaults(sd *SceneData) {
	if sd.Viewport == nil {
		sd.Viewport = &RectData{Width: defaultViewport.Width, Height: defaultViewport.Height}
	}
	for i := range sd.Regions {
		if sd.Regions[i].Walkable == nil {
			walkable := true
			sd.Regions[i].Walkable = &walkable
		}
	}
	for i := range sd.Cameras {
		if sd.Cameras[i].Zoom == 0 {
			sd.Cameras[i].Zoom = 1
		}
		if sd.Cameras[i].Name == "" {
			sd.Cameras[i].Name = DefaultCameraName
		}
	}
}

// validateSceneData rejects structurally unusable data. Survivable
// authoring defects are deliberately not checked here; Scene.Validate
// reports those after the load.
func validateSceneData(sd *SceneData) error {
	if sd.Viewport.Width <= 0 || sd.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must have positive size, got %gx%g", sd.Viewport.Width, sd.Viewport.Height)
	}
	seen := make(map[string]bool, len(sd.Cameras))
	for _, cd := range sd.Cameras {
		if seen[cd.Name] {
			return fmt.Errorf("duplicate camera name %q", cd.Name)
		}
		seen[cd.Name] = true
		if cd.Zoom <= 0 {
			return fmt.Errorf("camera %q has non-positive zoom %g", cd.Name, cd.Zoom)
		}
	}
	return nil
}

func buildScene(sd *SceneData) *Scene {
	scene := NewScene(sd.Viewport.rect())

	for _, rd := range sd.Regions {
		scene.Walkable.AddRegion(NewRegion(rd.Name, *rd.Walkable, points(rd.Vertices)))
	}
	for _, zd := range sd.ScaleZones {
		scene.ScaleZones.Add(ScaleZone{
			MinY: zd.MinY, MaxY: zd.MaxY,
			MinScale: zd.MinScale, MaxScale: zd.MaxScale,
		})
	}
	for _, wd := range sd.WalkBehinds {
		scene.WalkBehinds.Add(&WalkBehind{
			Region:     Region{Name: wd.Name, Walkable: true, Vertices: points(wd.Vertices)},
			YThreshold: wd.YThreshold,
			ZOrder:     wd.ZOrder,
		})
	}
	for _, cd := range sd.Cameras {
		cam := NewCamera(sd.Viewport.rect())
		cam.SetPosition(cd.X, cd.Y)
		cam.SetZoom(cd.Zoom)
		if cd.Bounds != nil {
			cam.SetBounds(cd.Bounds.rect())
		}
		scene.Director.AddCamera(cd.Name, cam)
		if cd.Name == DefaultCameraName {
			// Replace the Director's default camera outright.
			_ = scene.Director.SwitchTo(DefaultCameraName, 0, EaseLinear)
		}
	}
	if sd.EdgeScroll != nil {
		scene.Director.EdgeScroll = EdgeScroll{
			Enabled: sd.EdgeScroll.Enabled,
			Margin:  sd.EdgeScroll.Margin,
			Speed:   sd.EdgeScroll.Speed,
		}
	}
	return scene
}

func points(pds []PointData) []Vec2 {
	verts := make([]Vec2, len(pds))
	for i, pd := range pds {
		verts[i] = Vec2{pd.X, pd.Y}
	}
	return verts
}
