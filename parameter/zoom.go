package parameter

// Zoom limits
const (
	MinZoom     = 1.0
	MaxZoom     = 12.0
	DefaultZoom = 2.0

	// ZoomStep is applied per hotkey press and per wheel notch
	ZoomStep = 0.25

	// WheelDelta is one wheel notch in platform units
	WheelDelta = 120

	// ZoomEpsilon ignores zoom requests that do not change the value
	ZoomEpsilon = 0.001
)
