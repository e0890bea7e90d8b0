package deck

import "math"

// Point is a 2D offset in surface distance units.
type Point struct {
	X, Y float64
}

// Visual is the per-sample presentation of the top card. Rotation is not
// stored; it follows the offset.
type Visual struct {
	Offset Point
	Scale  float64
	Shadow float64
}

// Neutral is the resting presentation.
func Neutral() Visual {
	return Visual{Scale: 1}
}

// Rotation returns the tilt in degrees for this visual.
func (v Visual) Rotation(cfg Config) float64 {
	return v.Offset.X * cfg.RotationRatio
}

// Gesture is the classifier's output for one drag sample.
type Gesture struct {
	Action Action
	Visual Visual
}

// Classify maps a drag translation to an action and the card's visuals.
// Only dx decides the action; visuals are continuous and not gated by the
// threshold.
func Classify(cfg Config, t Point) Gesture {
	return Gesture{
		Action: classifyAction(cfg.SwipeThreshold, t.X),
		Visual: visualFor(cfg, t),
	}
}

func classifyAction(threshold, dx float64) Action {
	switch {
	case dx > threshold:
		return ActionAccept
	case dx < -threshold:
		return ActionReject
	default:
		return ActionNone
	}
}

func visualFor(cfg Config, t Point) Visual {
	d := math.Max(math.Abs(t.X), math.Abs(t.Y))
	return Visual{
		Offset: t,
		Scale:  math.Min(cfg.MaxCardScale, 1+d*cfg.ScaleAdjustmentFactor),
		Shadow: d * cfg.ShadowRadiusScalingFactor,
	}
}

// Size is the render surface's bounding box.
type Size struct {
	Width, Height float64
}

// ExitTarget extends the release offset along its own angle to the edge of
// the surface. A none outcome springs back to the origin.
func ExitTarget(release Point, outcome Action, surface Size) Point {
	if outcome == ActionNone {
		return Point{}
	}
	angle := math.Atan2(release.Y, release.X)
	return Point{
		X: math.Cos(angle) * surface.Width,
		Y: math.Sin(angle) * surface.Height,
	}
}
