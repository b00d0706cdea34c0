package parameter

import "time"

// Status badge timing
const (
	// StatusBadgeDuration is how long mode/invert/time badges stay visible
	StatusBadgeDuration = 2 * time.Second

	// ZoomBadgeDuration is how long the zoom percentage stays visible
	ZoomBadgeDuration = 1 * time.Second
)

// Simulated attention sources used by the terminal front end
const (
	// CaretStepX is the horizontal caret advance per typed character (screen px)
	CaretStepX = 9

	// CaretStepY is the caret line height (screen px)
	CaretStepY = 18

	// FocusColumns and FocusRows lay out the simulated focusable widgets
	FocusColumns = 4
	FocusRows    = 6
)
