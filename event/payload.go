package event

import "github.com/marchenkojuri1981-crypto/MAGNIFIER/core"

// PointPayload carries a screen-space position
type PointPayload struct {
	Point core.Point
}

// RectPayload carries a screen-space rectangle
type RectPayload struct {
	Rect core.Rect
}

// WheelPayload carries wheel rotation in platform units (120 per notch)
type WheelPayload struct {
	Delta int
	// Modified is true when the zoom modifier chord was held
	Modified bool
}

// ModePayload selects a tracking mode
type ModePayload struct {
	Mode core.TrackingMode
}

// ZoomStepPayload carries signed zoom steps; fractional values come from the wheel
type ZoomStepPayload struct {
	Steps float64
}

// FramePayload describes a reloaded source frame
type FramePayload struct {
	Source string
	Size   core.Size
	// Distance is the perceptual hash distance from the previous frame
	Distance int
}
