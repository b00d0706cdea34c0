package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// TargetKind identifies which signal produced a movement target
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetCaret
	TargetMouse
	TargetFocus
)

func (k TargetKind) String() string {
	switch k {
	case TargetCaret:
		return "caret"
	case TargetMouse:
		return "mouse"
	case TargetFocus:
		return "focus"
	default:
		return "none"
	}
}

// Target is a frame-space point the viewport should move toward this tick
type Target struct {
	Point core.FloatPoint
	Kind  TargetKind
}

// Inputs is the signal snapshot the arbitrator selects from
type Inputs struct {
	Caret Sample[core.Point]
	Mouse Sample[core.Point]
	Focus Sample[core.Rect]

	// CaretTargetAt is when a caret target last won; zero when cleared by the mouse
	CaretTargetAt time.Time

	// Suppressed blocks every signal (terminal alignment or its release window)
	Suppressed bool
}

// Arbitrator picks at most one target per tick according to the tracking mode
type Arbitrator struct {
	CaretTimeout time.Duration
	MouseTimeout time.Duration
	FocusTimeout time.Duration
	CaretOffsetX float64
}

// Select returns the winning target, if any
// Auto tries caret, then mouse, then focus. Manual never moves.
func (a Arbitrator) Select(mode core.TrackingMode, in Inputs, now time.Time, m Mapper) (Target, bool) {
	if in.Suppressed {
		return Target{}, false
	}

	switch mode {
	case core.ModeAuto:
		if t, ok := a.caret(in, now, m); ok {
			return t, true
		}
		if t, ok := a.mouse(in, now, m, true); ok {
			return t, true
		}
		return a.focus(in, now, m)
	case core.ModeCaret:
		return a.caret(in, now, m)
	case core.ModeMouse:
		return a.mouse(in, now, m, false)
	case core.ModeFocus:
		return a.focus(in, now, m)
	default:
		return Target{}, false
	}
}

func (a Arbitrator) caret(in Inputs, now time.Time, m Mapper) (Target, bool) {
	p, ok := in.Caret.Read(now, a.CaretTimeout)
	if !ok {
		return Target{}, false
	}
	src, ok := m.ScreenToSource(p)
	if !ok {
		return Target{}, false
	}
	src.X += a.CaretOffsetX
	return Target{Point: src, Kind: TargetCaret}, true
}

func (a Arbitrator) mouse(in Inputs, now time.Time, m Mapper, auto bool) (Target, bool) {
	p, ok := in.Mouse.Read(now, a.MouseTimeout)
	if !ok {
		return Target{}, false
	}
	// Pointer samples older than the last caret target lose in Auto
	if auto && !in.Mouse.At.After(in.CaretTargetAt) {
		return Target{}, false
	}
	src, ok := m.ScreenToSource(p)
	if !ok {
		return Target{}, false
	}
	return Target{Point: src, Kind: TargetMouse}, true
}

func (a Arbitrator) focus(in Inputs, now time.Time, m Mapper) (Target, bool) {
	r, ok := in.Focus.Read(now, a.FocusTimeout)
	if !ok {
		return Target{}, false
	}
	src, ok := m.RectCenterToSource(r)
	if !ok {
		return Target{}, false
	}
	return Target{Point: src, Kind: TargetFocus}, true
}
