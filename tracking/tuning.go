package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// Tuning holds every timing and distance knob of the tracking pipeline
type Tuning struct {
	CaretTimeout time.Duration
	MouseTimeout time.Duration
	FocusTimeout time.Duration
	CaretOffsetX float64

	DeadZone  float64
	Smoothing float64

	HistoryThreshold float64
	HistoryCooldown  time.Duration

	// ClickSpeed is the click-lock radius growth in frame px per second
	ClickSpeed float64

	AnchorHold       time.Duration
	AnchorIgnore     time.Duration
	TerminalPatterns []string

	MessengerStrip    float64
	MessengerLeft     float64
	MessengerRelease  int
	MessengerPatterns []string
}

// DefaultTuning returns the stock tracking behavior
func DefaultTuning() Tuning {
	return Tuning{
		CaretTimeout:      parameter.CaretFollowTimeout,
		MouseTimeout:      parameter.MouseFollowTimeout,
		FocusTimeout:      parameter.FocusFollowTimeout,
		CaretOffsetX:      parameter.CaretOffsetX,
		DeadZone:          parameter.DeadZonePixels,
		Smoothing:         parameter.SmoothingFactor,
		HistoryThreshold:  parameter.PreviousCenterThreshold,
		HistoryCooldown:   parameter.PreviousCenterCooldown,
		ClickSpeed:        parameter.ClickLimitPixelsPerSecond,
		AnchorHold:        parameter.AnchorHoldThreshold,
		AnchorIgnore:      parameter.AnchorReleaseIgnore,
		TerminalPatterns:  append([]string(nil), parameter.DefaultTerminalPatterns...),
		MessengerStrip:    parameter.MessengerStripRatio,
		MessengerLeft:     parameter.MessengerLeftRatio,
		MessengerRelease:  parameter.MessengerReleaseDistance,
		MessengerPatterns: append([]string(nil), parameter.DefaultMessengerPatterns...),
	}
}

// Arbitrator derives the target selection settings
func (t Tuning) Arbitrator() Arbitrator {
	return Arbitrator{
		CaretTimeout: t.CaretTimeout,
		MouseTimeout: t.MouseTimeout,
		FocusTimeout: t.FocusTimeout,
		CaretOffsetX: t.CaretOffsetX,
	}
}

// Smoother derives the movement settings
func (t Tuning) Smoother() Smoother {
	return Smoother{
		DeadZone:         t.DeadZone,
		Factor:           t.Smoothing,
		HistoryThreshold: t.HistoryThreshold,
		HistoryCooldown:  t.HistoryCooldown,
		ClickSpeed:       t.ClickSpeed,
	}
}
