package parlor

import (
	"math"
	"math/rand/v2"
)

// EffectKind identifies a camera effect variant.
type EffectKind uint8

const (
	EffectShake    EffectKind = iota // random positional jolt, stacking
	EffectZoom                       // eased zoom toward a target factor, exclusive
	EffectPan                        // eased move to an absolute position, exclusive
	EffectFollow                     // track an entity, exclusive, infinite by default
	EffectSway                       // slow drifting wave, stacking
	EffectRotation                   // eased rotation to a target angle, exclusive
)

// Stacks reports whether multiple instances of this kind may be active at
// once. Stacking kinds sum their contributions; exclusive kinds replace any
// prior instance when a new one is applied.
func (k EffectKind) Stacks() bool {
	return k == EffectShake || k == EffectSway
}

// String returns the kind's scene-file name.
func (k EffectKind) String() string {
	switch k {
	case EffectShake:
		return "shake"
	case EffectZoom:
		return "zoom"
	case EffectPan:
		return "pan"
	case EffectFollow:
		return "follow"
	case EffectSway:
		return "sway"
	case EffectRotation:
		return "rotation"
	default:
		return "unknown"
	}
}

// Contribution is a single effect's output for one tick. Offset and
// Rotation are additive, Zoom is multiplicative; the neutral contribution
// is {Offset: (0,0), Zoom: 1, Rotation: 0}.
type Contribution struct {
	Offset   Vec2
	Zoom     float64
	Rotation float64
}

// neutralContribution is the identity contribution.
func neutralContribution() Contribution {
	return Contribution{Zoom: 1}
}

// EffectView is the camera state an effect may read while updating or
// computing its contribution: the resting position effects perturb and the
// viewport the scene renders into.
type EffectView struct {
	BasePosition Vec2
	Viewport     Rect
}

// Effect is a time-based camera perturbation. Update advances the effect's
// clock each tick; Contribution reports its current output. Finite effects
// report Done once elapsed reaches their duration and are then dropped by
// the Director.
type Effect interface {
	Kind() EffectKind
	Update(dt float64, view EffectView)
	Done() bool
	Contribution(view EffectView) Contribution
}

// effectTimer carries the elapsed/duration/easing state shared by every
// effect variant. A Duration of 0 means the effect never expires.
type effectTimer struct {
	elapsed  float64
	Duration float64
	Easing   Easing
}

// Update advances the effect's clock.
func (t *effectTimer) Update(dt float64, _ EffectView) {
	t.elapsed += dt
}

// Done reports whether a finite effect has run its course.
func (t *effectTimer) Done() bool {
	return t.Duration > 0 && t.elapsed >= t.Duration
}

// progress returns elapsed/duration clamped to [0, 1]. Infinite effects
// report 0: they have no notion of completion.
func (t *effectTimer) progress() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return clamp(t.elapsed/t.Duration, 0, 1)
}

// easedTarget returns the eased progress used by target-seeking effects.
// Infinite variants hold at 1 (fully applied).
func (t *effectTimer) easedTarget() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return t.Easing.Apply(t.progress())
}

// --- Shake ---

// ShakeEffect jolts the camera with two sine waves at offset frequencies.
// Each instance gets random wave phases, so simultaneous shakes do not move
// in lockstep; output magnitude is bounded by Intensity but not otherwise
// deterministic. With Decay the amplitude falls off linearly over the
// effect's duration.
type ShakeEffect struct {
	effectTimer
	Intensity float64 // peak offset per axis, world units
	Frequency float64 // oscillations per second
	Decay     bool
	phaseX    float64
	phaseY    float64
}

// NewShakeEffect creates a decaying shake. A duration of 0 shakes until
// removed (and never decays).
func NewShakeEffect(intensity, frequency, duration float64) *ShakeEffect {
	return &ShakeEffect{
		effectTimer: effectTimer{Duration: duration},
		Intensity:   intensity,
		Frequency:   frequency,
		Decay:       true,
		phaseX:      rand.Float64() * 2 * math.Pi,
		phaseY:      rand.Float64() * 2 * math.Pi,
	}
}

func (e *ShakeEffect) Kind() EffectKind { return EffectShake }

func (e *ShakeEffect) Contribution(_ EffectView) Contribution {
	amp := e.Intensity
	if e.Decay && e.Duration > 0 {
		amp *= 1 - e.progress()
	}
	w := e.elapsed * e.Frequency * 2 * math.Pi
	c := neutralContribution()
	c.Offset = Vec2{
		X: math.Sin(w+e.phaseX) * amp,
		Y: math.Cos(w*1.3+e.phaseY) * amp,
	}
	return c
}

// --- Zoom ---

// ZoomEffect eases the camera's zoom multiplier from neutral toward Target.
// Exclusive: applying a new zoom replaces any active one.
type ZoomEffect struct {
	effectTimer
	Target float64
}

// NewZoomEffect creates a zoom toward target (1.0 = neutral) over duration
// seconds. A duration of 0 holds the target until removed.
func NewZoomEffect(target, duration float64) *ZoomEffect {
	return &ZoomEffect{
		effectTimer: effectTimer{Duration: duration, Easing: EaseInOut},
		Target:      target,
	}
}

func (e *ZoomEffect) Kind() EffectKind { return EffectZoom }

func (e *ZoomEffect) Contribution(_ EffectView) Contribution {
	c := neutralContribution()
	c.Zoom = 1 + (e.Target-1)*e.easedTarget()
	return c
}

// --- Pan ---

// PanEffect eases the camera from wherever it is to an absolute world
// position. The start position is captured on the first evaluation rather
// than at construction, so queuing a pan while other effects settle does
// not bake in a stale baseline. Exclusive.
type PanEffect struct {
	effectTimer
	Target  Vec2
	start   Vec2
	started bool
}

// NewPanEffect creates a pan to (x, y) over duration seconds. A duration of
// 0 snaps immediately.
func NewPanEffect(x, y, duration float64) *PanEffect {
	return &PanEffect{
		effectTimer: effectTimer{Duration: duration, Easing: EaseInOut},
		Target:      Vec2{x, y},
	}
}

func (e *PanEffect) Kind() EffectKind { return EffectPan }

func (e *PanEffect) Contribution(view EffectView) Contribution {
	if !e.started {
		e.start = view.BasePosition
		e.started = true
	}
	t := e.easedTarget()
	pos := Vec2{
		X: e.start.X + (e.Target.X-e.start.X)*t,
		Y: e.start.Y + (e.Target.Y-e.start.Y)*t,
	}
	c := neutralContribution()
	c.Offset = pos.Sub(view.BasePosition)
	return c
}

// --- Follow ---

// FollowEffect keeps the camera trained on a moving entity. Inside Deadzone
// the camera holds still; past it the camera snaps to the target, or, when
// Smooth, steps toward it at most Speed units per second. Infinite by
// default: it persists until removed. Exclusive.
type FollowEffect struct {
	effectTimer
	Target   Positioner
	Smooth   bool
	Deadzone float64
	Speed    float64 // world units per second, used when Smooth
	// Offset shifts the aim point away from the target's position, for
	// framing a character off-center or leading their movement.
	Offset Vec2

	offset Vec2
}

// NewFollowEffect creates an infinite follow on target. Set Duration for a
// timed follow (a scripted tracking shot that releases on its own).
func NewFollowEffect(target Positioner, smooth bool, deadzone, speed float64) *FollowEffect {
	return &FollowEffect{
		Target:   target,
		Smooth:   smooth,
		Deadzone: deadzone,
		Speed:    speed,
	}
}

func (e *FollowEffect) Kind() EffectKind { return EffectFollow }

// Update steps the follow offset toward the target. The step happens here
// rather than in Contribution so that Contribution stays a pure read.
func (e *FollowEffect) Update(dt float64, view EffectView) {
	e.effectTimer.Update(dt, view)
	if e.Target == nil {
		return
	}
	aim := e.Target.Position().Add(e.Offset)
	eye := view.BasePosition.Add(e.offset)
	delta := aim.Sub(eye)
	dist := delta.Length()
	if dist <= e.Deadzone || dist == 0 {
		return
	}
	if !e.Smooth {
		e.offset = aim.Sub(view.BasePosition)
		return
	}
	step := e.Speed * dt
	if step > dist {
		step = dist
	}
	e.offset = e.offset.Add(delta.Scale(step / dist))
}

func (e *FollowEffect) Contribution(_ EffectView) Contribution {
	c := neutralContribution()
	c.Offset = e.offset
	return c
}

// --- Sway ---

// SwayEffect drifts the camera like a slow breath: a horizontal sine wave,
// a faster secondary vertical wave, and a gentle rotational wobble. Used
// for dream sequences and seasickness beats. Stacking.
type SwayEffect struct {
	effectTimer
	Amplitude         float64 // horizontal peak, world units
	Frequency         float64 // horizontal oscillations per second
	VerticalFactor    float64 // vertical amplitude as a fraction of Amplitude
	RotationAmplitude float64 // rotational wobble peak, radians
}

// swayVerticalRate is the vertical wave's frequency multiplier. Slightly
// off an integer ratio so the combined motion doesn't visibly loop.
const swayVerticalRate = 2.1

// NewSwayEffect creates a sway. A duration of 0 sways until removed.
func NewSwayEffect(amplitude, frequency, verticalFactor, rotationAmplitude, duration float64) *SwayEffect {
	return &SwayEffect{
		effectTimer:       effectTimer{Duration: duration},
		Amplitude:         amplitude,
		Frequency:         frequency,
		VerticalFactor:    verticalFactor,
		RotationAmplitude: rotationAmplitude,
	}
}

func (e *SwayEffect) Kind() EffectKind { return EffectSway }

func (e *SwayEffect) Contribution(_ EffectView) Contribution {
	w := e.elapsed * e.Frequency * 2 * math.Pi
	c := neutralContribution()
	c.Offset = Vec2{
		X: math.Sin(w) * e.Amplitude,
		Y: math.Sin(w*swayVerticalRate) * e.Amplitude * e.VerticalFactor,
	}
	c.Rotation = math.Sin(w*0.5) * e.RotationAmplitude
	return c
}

// --- Rotation ---

// RotationEffect eases the camera's rotation offset toward Target radians.
// Exclusive, like Zoom.
type RotationEffect struct {
	effectTimer
	Target float64
}

// NewRotationEffect creates a rotation toward target radians over duration
// seconds. A duration of 0 holds the target until removed.
func NewRotationEffect(target, duration float64) *RotationEffect {
	return &RotationEffect{
		effectTimer: effectTimer{Duration: duration, Easing: EaseInOut},
		Target:      target,
	}
}

func (e *RotationEffect) Kind() EffectKind { return EffectRotation }

func (e *RotationEffect) Contribution(_ EffectView) Contribution {
	c := neutralContribution()
	c.Rotation = e.Target * e.easedTarget()
	return c
}
