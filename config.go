package pinchzoom

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for Config.
const (
	DefaultMinScale           = 1.0
	DefaultMaxScale           = 4.0
	DefaultOvershoot          = 0.2
	DefaultSettleRange        = 0.001
	DefaultAnimationSpeed     = 0.04
	DefaultResetSpeed         = 0.08
	DefaultDoubleTapThreshold = 300 * time.Millisecond
	DefaultWheelStep          = 1.1
	DefaultTPS                = 60
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the construction-time settings of a Viewport. Width and
// Height are the base (unscaled) viewport dimensions used by all clamping
// and zoom math.
type Config struct {
	Width  float64 `toml:"width" envconfig:"WIDTH"`
	Height float64 `toml:"height" envconfig:"HEIGHT"`

	MinScale float64 `toml:"min_scale" envconfig:"MIN_SCALE"`
	MaxScale float64 `toml:"max_scale" envconfig:"MAX_SCALE"`
	// Overshoot is how far a pinch may push past MinScale/MaxScale before
	// it is clamped. The excess is animated away on release.
	Overshoot float64 `toml:"overshoot" envconfig:"OVERSHOOT"`

	// SettleRange is the distance under which an animated value snaps
	// exactly onto its target.
	SettleRange    float64 `toml:"settle_range" envconfig:"SETTLE_RANGE"`
	AnimationSpeed float64 `toml:"animation_speed" envconfig:"ANIMATION_SPEED"`
	ResetSpeed     float64 `toml:"reset_speed" envconfig:"RESET_SPEED"`

	DoubleTapThreshold time.Duration `toml:"double_tap_threshold" envconfig:"DOUBLE_TAP_THRESHOLD"`
	WheelStep          float64       `toml:"wheel_step" envconfig:"WHEEL_STEP"`

	// TPS is the frame rate assumed by eased animations (AnimateTo) to
	// advance their tweens by 1/TPS seconds per frame.
	TPS int `toml:"tps" envconfig:"TPS"`
}

// DefaultConfig returns a Config for a viewport of the given size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:              width,
		Height:             height,
		MinScale:           DefaultMinScale,
		MaxScale:           DefaultMaxScale,
		Overshoot:          DefaultOvershoot,
		SettleRange:        DefaultSettleRange,
		AnimationSpeed:     DefaultAnimationSpeed,
		ResetSpeed:         DefaultResetSpeed,
		DoubleTapThreshold: DefaultDoubleTapThreshold,
		WheelStep:          DefaultWheelStep,
		TPS:                DefaultTPS,
	}
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: viewport size %vx%v must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.MinScale <= 0:
		return fmt.Errorf("%w: min_scale %v must be positive", ErrInvalidConfig, c.MinScale)
	case c.MinScale > c.MaxScale:
		return fmt.Errorf("%w: min_scale %v exceeds max_scale %v", ErrInvalidConfig, c.MinScale, c.MaxScale)
	case c.Overshoot < 0 || c.Overshoot >= c.MinScale:
		return fmt.Errorf("%w: overshoot %v must be in [0, min_scale)", ErrInvalidConfig, c.Overshoot)
	case c.SettleRange <= 0:
		return fmt.Errorf("%w: settle_range %v must be positive", ErrInvalidConfig, c.SettleRange)
	case c.AnimationSpeed <= 0 || c.AnimationSpeed > 1:
		return fmt.Errorf("%w: animation_speed %v must be in (0, 1]", ErrInvalidConfig, c.AnimationSpeed)
	case c.ResetSpeed <= 0 || c.ResetSpeed > 1:
		return fmt.Errorf("%w: reset_speed %v must be in (0, 1]", ErrInvalidConfig, c.ResetSpeed)
	case c.DoubleTapThreshold < 0:
		return fmt.Errorf("%w: double_tap_threshold %v is negative", ErrInvalidConfig, c.DoubleTapThreshold)
	case c.WheelStep <= 1:
		return fmt.Errorf("%w: wheel_step %v must be greater than 1", ErrInvalidConfig, c.WheelStep)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.TPS)
	}
	return nil
}
