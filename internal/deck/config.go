package deck

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the tuning parameters for one controller. It is a plain
// value; controllers keep their own copy.
type Config struct {
	// RotationRatio is degrees of tilt per unit of horizontal offset.
	RotationRatio float64 `validate:"gte=0"`
	// SwipeThreshold is the horizontal distance past which a drag counts.
	SwipeThreshold float64 `validate:"gt=0"`
	// AnimationDuration is the length of every animation step.
	AnimationDuration time.Duration `validate:"gt=0"`
	MaxCardScale      float64       `validate:"gte=1"`
	// ScaleAdjustmentFactor grows the card per unit of drag distance.
	ScaleAdjustmentFactor float64 `validate:"gte=0"`
	// ShadowRadiusScalingFactor grows the shadow per unit of drag distance.
	ShadowRadiusScalingFactor float64 `validate:"gte=0"`
}

// DefaultConfig returns parameters tuned for point-based surfaces.
func DefaultConfig() Config {
	return Config{
		RotationRatio:             0.05,
		SwipeThreshold:            100,
		AnimationDuration:         250 * time.Millisecond,
		MaxCardScale:              1.1,
		ScaleAdjustmentFactor:     0.0005,
		ShadowRadiusScalingFactor: 0.05,
	}
}

var validate = validator.New()

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("deck config: %w", err)
	}
	return nil
}
