package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// WindowProbe answers best-effort questions about the foreground window
// Implementations must not block
type WindowProbe interface {
	// ForegroundRect returns the foreground window rectangle if it matches any pattern
	ForegroundRect(patterns []string) (core.Rect, bool)
	// ForegroundMatches reports whether the foreground window matches any pattern
	ForegroundMatches(patterns []string) bool
}

// TerminalAnchor pins the view's bottom-left corner to a terminal window
// while the anchor key is held
type TerminalAnchor struct {
	Source      core.FloatPoint
	HasAnchor   bool
	KeyDown     bool
	Aligned     bool
	PressedAt   time.Time
	IgnoreUntil time.Time
}

// Press starts a hold; repeats while held are ignored
func (a TerminalAnchor) Press(at time.Time) TerminalAnchor {
	if a.KeyDown {
		return a
	}
	return TerminalAnchor{KeyDown: true, PressedAt: at}
}

// Release ends the hold and suppresses signals for ignore
func (a TerminalAnchor) Release(at time.Time, ignore time.Duration) TerminalAnchor {
	if !a.KeyDown {
		return a
	}
	a.KeyDown = false
	a.Aligned = false
	a.IgnoreUntil = at.Add(ignore)
	return a
}

// Expire forgets the anchor once the key is up and the ignore window has passed
func (a TerminalAnchor) Expire(now time.Time) TerminalAnchor {
	if !a.KeyDown && !now.Before(a.IgnoreUntil) {
		a.HasAnchor = false
	}
	return a
}

// Suppressed reports whether signal tracking is paused
func (a TerminalAnchor) Suppressed(now time.Time) bool {
	return now.Before(a.IgnoreUntil) || a.Aligned
}

// Resample captures the bottom-left corner of a matching foreground window
func (a TerminalAnchor) Resample(probe WindowProbe, patterns []string, m Mapper) TerminalAnchor {
	if probe == nil || !(a.KeyDown || a.Aligned) {
		return a
	}
	r, ok := probe.ForegroundRect(patterns)
	if !ok {
		return a
	}
	corner := core.Point{X: r.Left, Y: max(r.Top, r.Bottom-1)}
	if src, ok := m.ScreenToSource(corner); ok {
		a.Source, a.HasAnchor = src, true
	}
	return a
}

// Engage turns alignment on after a long enough hold with an anchor
func (a TerminalAnchor) Engage(now time.Time, hold time.Duration) TerminalAnchor {
	if a.KeyDown {
		if !a.Aligned && a.HasAnchor && now.Sub(a.PressedAt) >= hold {
			a.Aligned = true
		}
	} else {
		a.Aligned = false
	}
	return a
}

// Align derives the center from the anchored left and bottom edges
func (a TerminalAnchor) Align(e Extent) (core.FloatPoint, bool) {
	if !a.Aligned || !a.HasAnchor {
		return core.FloatPoint{}, false
	}
	left := core.Clamp(a.Source.X, 0, float64(e.Frame.Width)-e.Width)
	bottom := core.Clamp(a.Source.Y, e.Height, float64(e.Frame.Height))
	return core.FloatPoint{X: left + e.HalfW, Y: bottom - e.HalfH}, true
}
