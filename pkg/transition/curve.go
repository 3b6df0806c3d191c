package transition

import (
	"fmt"
	"math"
)

// Curve maps an elapsed-time fraction in [0,1] to an eased progress
// fraction. Curves must be monotonic and satisfy f(0)=0, f(1)=1.
type Curve func(t float64) float64

// Linear applies no easing.
func Linear(t float64) float64 { return t }

// EaseInQuad accelerates from rest.
func EaseInQuad(t float64) float64 { return t * t }

// EaseOutQuad decelerates to rest.
func EaseOutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// EaseInOutCubic accelerates through the first half and decelerates
// through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// CurveByName resolves a configuration string to a timing curve.
func CurveByName(name string) (Curve, error) {
	switch name {
	case "", "ease-in-out":
		return EaseInOutCubic, nil
	case "linear":
		return Linear, nil
	case "ease-in":
		return EaseInQuad, nil
	case "ease-out":
		return EaseOutQuad, nil
	default:
		return nil, fmt.Errorf("unknown timing curve %q", name)
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
