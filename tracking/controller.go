package tracking

import (
	"log/slog"
	"math"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// Controller turns attention signals into one view rectangle per tick
// Not safe for concurrent use; the owning scheduler serializes every call
type Controller struct {
	tuning     Tuning
	arbitrator Arbitrator
	smoother   Smoother
	probe      WindowProbe
	logger     *slog.Logger

	mapper Mapper
	mode   core.TrackingMode
	zoom   float64
	invert bool

	caret         Sample[core.Point]
	mouse         Sample[core.Point]
	focus         Sample[core.Rect]
	caretTargetAt time.Time

	// Last known pointer position, including click-only updates
	pointer    core.Point
	hasPointer bool

	state State
	view  ViewState
	frame core.Size
}

// New creates a controller with no center, Auto mode and default zoom
func New(t Tuning, probe WindowProbe) *Controller {
	return &Controller{
		tuning:     t,
		arbitrator: t.Arbitrator(),
		smoother:   t.Smoother(),
		probe:      probe,
		logger:     slog.New(slog.DiscardHandler),
		mode:       core.ModeAuto,
		zoom:       parameter.DefaultZoom,
	}
}

// SetLogger routes state transition logs; nil restores the discard logger
func (c *Controller) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	c.logger = l
}

// --- Signal intake ---

// CaretMoved records the text caret position in screen space
func (c *Controller) CaretMoved(p core.Point, at time.Time) {
	c.caret = Observe(p, at)
}

// PointerMoved records the pointer; real movement releases the click lock
// and may release the messenger zone
func (c *Controller) PointerMoved(p core.Point, at time.Time) {
	if p != c.pointer {
		c.state.Click.Active = false
	}
	c.pointer, c.hasPointer = p, true
	c.mouse = Observe(p, at)

	wasActive := c.state.Zone.Active
	c.state.Zone = c.state.Zone.Release(p, c.tuning.MessengerRelease)
	if wasActive && !c.state.Zone.Active {
		c.logger.Debug("messenger zone released", "x", p.X, "y", p.Y)
	}
}

// FocusChanged records the keyboard focus rectangle
func (c *Controller) FocusChanged(r core.Rect, at time.Time) {
	c.focus = Observe(r, at)
}

// LeftClick arms the click lock and re-evaluates the messenger zone
func (c *Controller) LeftClick(p core.Point, at time.Time) {
	c.pointer, c.hasPointer = p, true
	c.state.Click = NewClickLock(p, at, c.mapper)
	c.state.Zone = MessengerZone{}

	if c.probe == nil || !c.mapper.Usable() || !c.probe.ForegroundMatches(c.tuning.MessengerPatterns) {
		return
	}
	if z, ok := ArmMessengerZone(p, c.mapper, c.tuning.MessengerStrip, c.tuning.MessengerLeft); ok {
		c.state.Zone = z
		c.logger.Debug("messenger zone armed",
			"left", z.Rect.Left, "top", z.Rect.Top, "right", z.Rect.Right, "bottom", z.Rect.Bottom)
	}
}

// AnchorKeyDown starts a terminal alignment hold
func (c *Controller) AnchorKeyDown(at time.Time) {
	c.state.Anchor = c.state.Anchor.Press(at)
}

// AnchorKeyUp ends a terminal alignment hold
func (c *Controller) AnchorKeyUp(at time.Time) {
	wasAligned := c.state.Anchor.Aligned
	c.state.Anchor = c.state.Anchor.Release(at, c.tuning.AnchorIgnore)
	if wasAligned {
		c.logger.Debug("terminal alignment released")
	}
}

// --- Application state ---

// SetMapper installs the source monitor geometry and clears center history
func (c *Controller) SetMapper(m Mapper) {
	c.mapper = m
	c.Reset()
}

// Mapper returns the current source monitor geometry
func (c *Controller) Mapper() Mapper {
	return c.mapper
}

// SetMode switches tracking mode, dropping click lock and messenger zone
// The center is kept so switching never jumps the view
func (c *Controller) SetMode(m core.TrackingMode) bool {
	if m == c.mode {
		return false
	}
	c.mode = m
	c.state.Click.Active = false
	c.state.Zone.Active = false
	c.logger.Debug("tracking mode changed", "mode", m.String())
	return true
}

// Mode returns the active tracking mode
func (c *Controller) Mode() core.TrackingMode {
	return c.mode
}

// SetZoom clamps z to the supported range; any change recenters from scratch
func (c *Controller) SetZoom(z float64) bool {
	z = core.Clamp(z, parameter.MinZoom, parameter.MaxZoom)
	if math.Abs(z-c.zoom) < parameter.ZoomEpsilon {
		return false
	}
	c.zoom = z
	c.state.HasCenter = false
	c.logger.Debug("zoom changed", "zoom", z)
	return true
}

// Zoom returns the current zoom factor
func (c *Controller) Zoom() float64 {
	return c.zoom
}

// SetInvert toggles color inversion in the produced view state
func (c *Controller) SetInvert(on bool) {
	c.invert = on
	c.view.InvertColors = on
}

// Invert reports whether colors are inverted
func (c *Controller) Invert() bool {
	return c.invert
}

// Reset forgets the center, jump history, click lock and messenger zone
func (c *Controller) Reset() {
	anchor := c.state.Anchor
	c.state = State{Anchor: anchor}
}

// --- Explicit recentering ---

// CenterOnCaret snaps straight to the last caret position, ignoring the click lock
// No-op in Manual mode, before the first frame, or when the caret is off-monitor
func (c *Controller) CenterOnCaret(now time.Time) bool {
	if c.mode == core.ModeManual || c.frame.Zero() || !c.caret.Seen {
		return false
	}
	src, ok := c.mapper.ScreenToSource(c.caret.Value)
	if !ok {
		return false
	}
	src.X += c.tuning.CaretOffsetX

	c.state = c.smoother.Snap(c.state, src, false, now, c.mapper)
	c.caretTargetAt = now
	c.state.Center = NewExtent(c.frame, c.zoom).ClampCenter(c.state.Center)
	return true
}

// RestorePrevious swaps the center with the jump history slot
func (c *Controller) RestorePrevious(now time.Time) bool {
	h := &c.state.History
	if !h.Valid {
		return false
	}
	if !c.state.HasCenter {
		c.state.Center, c.state.HasCenter = h.Center, true
	} else {
		c.state.Center, h.Center = h.Center, c.state.Center
	}
	h.SavedAt = now
	return true
}

// --- Tick ---

// Tick runs the full pipeline for one frame
// A zero frame or unusable mapper leaves the previous view in place and returns false
func (c *Controller) Tick(now time.Time, frame core.Size) (ViewState, bool) {
	if frame.Zero() || !c.mapper.Usable() {
		return c.view, false
	}
	c.frame = frame

	st := c.state
	wasAligned, wasZone := st.Anchor.Aligned, st.Zone.Active

	st.Anchor = st.Anchor.Expire(now)

	view := ViewState{Zoom: c.zoom, InvertColors: c.invert}
	if c.hasPointer {
		if cur, ok := c.mapper.ScreenToSource(c.pointer); ok {
			view.CursorVisible = true
			view.CursorX, view.CursorY = cur.X, cur.Y
		}
	}

	in := Inputs{
		Caret:         c.caret,
		Mouse:         c.mouse,
		Focus:         c.focus,
		CaretTargetAt: c.caretTargetAt,
		Suppressed:    st.Anchor.Suppressed(now),
	}
	target, have := c.arbitrator.Select(c.mode, in, now, c.mapper)
	if have {
		switch target.Kind {
		case TargetCaret:
			c.caretTargetAt = now
		case TargetMouse:
			if c.mode == core.ModeAuto {
				c.caretTargetAt = time.Time{}
			}
		}
	}

	ext := NewExtent(frame, c.zoom)

	st.Anchor = st.Anchor.Resample(c.probe, c.tuning.TerminalPatterns, c.mapper)
	st.Anchor = st.Anchor.Engage(now, c.tuning.AnchorHold)

	if center, ok := st.Anchor.Align(ext); ok {
		st.Center, st.HasCenter = center, true
		st.Zone.Active = false
	} else {
		fallback := core.FloatPoint{X: float64(frame.Width) / 2, Y: float64(frame.Height) / 2}
		st = c.smoother.Step(st, target, have, fallback, now, c.mapper)
	}

	st.Center, st.Zone = st.Zone.Clamp(st.Center, ext)
	st.Center = ext.ClampCenter(st.Center)
	view.SourceRegion = ext.Region(st.Center)

	if st.Anchor.Aligned != wasAligned {
		c.logger.Debug("terminal alignment", "active", st.Anchor.Aligned,
			"anchor_x", st.Anchor.Source.X, "anchor_y", st.Anchor.Source.Y)
	}
	if wasZone && !st.Zone.Active {
		c.logger.Debug("messenger zone deactivated")
	}

	c.state = st
	c.view = view
	return view, true
}

// --- Accessors ---

// Center returns the current center in frame space
func (c *Controller) Center() (core.FloatPoint, bool) {
	return c.state.Center, c.state.HasCenter
}

// Previous returns the jump history slot
func (c *Controller) Previous() (core.FloatPoint, bool) {
	return c.state.History.Center, c.state.History.Valid
}

// View returns the last produced view state
func (c *Controller) View() ViewState {
	return c.view
}

// State returns a copy of the pipeline state
func (c *Controller) State() State {
	return c.state
}
