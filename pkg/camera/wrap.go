package camera

import (
	"fmt"
	"math"
)

// WrapMode selects how yaw is brought back into [0,360) after a mouse delta.
type WrapMode int

const (
	// WrapStep adds or subtracts 360 once. A single delta larger than a full
	// turn is left partially unnormalized.
	WrapStep WrapMode = iota
	// WrapModulo fully normalizes yaw for any delta.
	WrapModulo
)

// String returns the config spelling of the mode.
func (m WrapMode) String() string {
	switch m {
	case WrapStep:
		return "step"
	case WrapModulo:
		return "modulo"
	}
	return fmt.Sprintf("WrapMode(%d)", int(m))
}

// ParseWrapMode parses "step" or "modulo". The empty string means WrapStep.
func ParseWrapMode(s string) (WrapMode, error) {
	switch s {
	case "", "step":
		return WrapStep, nil
	case "modulo":
		return WrapModulo, nil
	}
	return WrapStep, fmt.Errorf("unknown yaw wrap mode %q", s)
}

func wrapYaw(yaw float32, mode WrapMode) float32 {
	switch mode {
	case WrapModulo:
		yaw = float32(math.Mod(float64(yaw), 360))
		if yaw < 0 {
			yaw += 360
		}
	default:
		if yaw >= 360 {
			yaw -= 360
		} else if yaw < 0 {
			yaw += 360
		}
	}

	// float32 rounding of a tiny negative yaw lands on 360
	if yaw == 360 {
		yaw = 0
	}
	return yaw
}
