package parameter

import "time"

// Signal freshness windows
// A signal drives the viewport only while now-last <= timeout
const (
	CaretFollowTimeout = 600 * time.Millisecond
	MouseFollowTimeout = 160 * time.Millisecond
	FocusFollowTimeout = 900 * time.Millisecond
)

// Movement shaping
const (
	// DeadZonePixels suppresses glide moves toward targets this close to the center
	DeadZonePixels = 16.0

	// SmoothingFactor is the fraction of the remaining distance covered per glide tick
	SmoothingFactor = 0.45

	// CaretOffsetX shifts caret targets right so the character after the caret is centered
	CaretOffsetX = 4.0
)

// Jump history
const (
	// PreviousCenterThreshold is the minimum jump distance that records the pre-move center
	PreviousCenterThreshold = 160.0

	// PreviousCenterCooldown rate-limits history recording
	PreviousCenterCooldown = 500 * time.Millisecond
)

// Click lock
const (
	// ClickLimitPixelsPerSecond is the growth rate of the allowed radius around a click anchor
	ClickLimitPixelsPerSecond = 50.0
)

// Messenger input-box zone
const (
	// MessengerStripRatio is the bottom fraction of monitor height that arms the zone
	MessengerStripRatio = 0.10

	// MessengerLeftRatio is the left fraction of monitor width excluded from the zone
	MessengerLeftRatio = 0.25

	// MessengerReleaseDistance is the pointer travel (screen px, per axis) that disarms the zone
	MessengerReleaseDistance = 10
)

// Terminal bottom-left anchoring
const (
	// AnchorHoldThreshold is how long the anchor key must be held before alignment engages
	AnchorHoldThreshold = 1000 * time.Millisecond

	// AnchorReleaseIgnore suppresses signal tracking after the anchor key is released
	AnchorReleaseIgnore = 500 * time.Millisecond
)

// Default window patterns used by the zone overrides
var (
	DefaultTerminalPatterns  = []string{"putty"}
	DefaultMessengerPatterns = []string{"whatsapp", "telegram"}
)
