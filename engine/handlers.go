package engine

import (
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
)

// SignalHandler feeds attention signals into the controller
type SignalHandler struct{}

func (h *SignalHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCaretMoved,
		event.EventPointerMoved,
		event.EventFocusChanged,
		event.EventLeftClick,
		event.EventAnchorKeyDown,
		event.EventAnchorKeyUp,
	}
}

func (h *SignalHandler) HandleEvent(a *App, ev event.Event) {
	c := a.Controller
	at := a.stamp(ev)

	switch ev.Type {
	case event.EventCaretMoved:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			c.CaretMoved(p.Point, at)
		}
	case event.EventPointerMoved:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			c.PointerMoved(p.Point, at)
		}
	case event.EventFocusChanged:
		if p, ok := ev.Payload.(*event.RectPayload); ok {
			c.FocusChanged(p.Rect, at)
		}
	case event.EventLeftClick:
		if p, ok := ev.Payload.(*event.PointPayload); ok {
			c.LeftClick(p.Point, at)
		}
	case event.EventAnchorKeyDown:
		c.AnchorKeyDown(at)
	case event.EventAnchorKeyUp:
		c.AnchorKeyUp(at)
	}
}

// ActionHandler applies user commands
type ActionHandler struct{}

func (h *ActionHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWheel,
		event.EventRecenterCaret,
		event.EventModeSet,
		event.EventModeCycle,
		event.EventZoomStep,
		event.EventRestorePrevious,
		event.EventToggleInvert,
		event.EventToggleMagnifier,
		event.EventSwapMonitors,
		event.EventShowTime,
		event.EventReset,
	}
}

func (h *ActionHandler) HandleEvent(a *App, ev event.Event) {
	now := a.stamp(ev)

	switch ev.Type {
	case event.EventWheel:
		if p, ok := ev.Payload.(*event.WheelPayload); ok {
			a.Wheel(p.Delta, p.Modified, now)
		}
	case event.EventRecenterCaret:
		a.RecenterCaret(now)
	case event.EventModeSet:
		if p, ok := ev.Payload.(*event.ModePayload); ok {
			a.SetMode(p.Mode, now)
		}
	case event.EventModeCycle:
		a.SetMode(a.Controller.Mode().Next(), now)
	case event.EventZoomStep:
		if p, ok := ev.Payload.(*event.ZoomStepPayload); ok {
			a.StepZoom(p.Steps, now)
		}
	case event.EventRestorePrevious:
		a.RestorePrevious(now)
	case event.EventToggleInvert:
		a.ToggleInvert(now)
	case event.EventToggleMagnifier:
		a.ToggleMagnifier(now)
	case event.EventSwapMonitors:
		a.SwapMonitors(now)
	case event.EventShowTime:
		a.ShowTime(now)
	case event.EventReset:
		a.Controller.Reset()
	}
}

// SystemHandler reacts to capture, terminal and lifecycle notices
type SystemHandler struct{}

func (h *SystemHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFrameReloaded,
		event.EventResize,
		event.EventQuit,
	}
}

func (h *SystemHandler) HandleEvent(a *App, ev event.Event) {
	switch ev.Type {
	case event.EventFrameReloaded:
		if p, ok := ev.Payload.(*event.FramePayload); ok {
			a.Status.Ints.Get("capture.reloads").Add(1)
			a.Logger.Debug("frame reloaded", "source", p.Source, "distance", p.Distance)
		}
	case event.EventResize:
		if a.Presenter != nil {
			size := a.Presenter.Size()
			a.Logger.Debug("output resized", "width", size.Width, "height", size.Height)
		}
	case event.EventQuit:
		a.RequestQuit()
	}
}
