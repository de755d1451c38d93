package parlor

import "github.com/tanema/gween/ease"

// Easing selects the curve applied to an effect's or transition's progress.
// The zero value is EaseLinear.
type Easing uint8

const (
	EaseLinear    Easing = iota // constant rate
	EaseIn                      // quadratic, slow start
	EaseOut                     // quadratic, slow finish
	EaseInOut                   // quadratic blend, slow at both ends
	EaseBounce                  // bounces to rest at the target
	EaseElastic                 // overshoots and oscillates to rest
)

// Func returns the ease.TweenFunc backing this easing, usable directly with
// gween tweens.
func (e Easing) Func() ease.TweenFunc {
	switch e {
	case EaseIn:
		return ease.InQuad
	case EaseOut:
		return ease.OutQuad
	case EaseInOut:
		return ease.InOutQuad
	case EaseBounce:
		return ease.OutBounce
	case EaseElastic:
		return ease.OutElastic
	default:
		return ease.Linear
	}
}

// Apply evaluates the easing at normalized progress t. Input is clamped to
// [0, 1]; Apply(0) == 0 and Apply(1) == 1 for every easing, including the
// elastic singularities.
func (e Easing) Apply(t float64) float64 {
	t = clamp(t, 0, 1)
	return float64(e.Func()(float32(t), 0, 1, 1))
}

// String returns the easing's scene-file name.
func (e Easing) String() string {
	switch e {
	case EaseIn:
		return "easeIn"
	case EaseOut:
		return "easeOut"
	case EaseInOut:
		return "easeInOut"
	case EaseBounce:
		return "bounce"
	case EaseElastic:
		return "elastic"
	default:
		return "linear"
	}
}

// ParseEasing maps a scene-file easing name to its Easing. Unknown names
// fall back to EaseLinear with ok=false so loaders can report them as
// diagnostics rather than errors.
func ParseEasing(name string) (Easing, bool) {
	switch name {
	case "linear", "":
		return EaseLinear, true
	case "easeIn":
		return EaseIn, true
	case "easeOut":
		return EaseOut, true
	case "easeInOut":
		return EaseInOut, true
	case "bounce":
		return EaseBounce, true
	case "elastic":
		return EaseElastic, true
	default:
		return EaseLinear, false
	}
}
