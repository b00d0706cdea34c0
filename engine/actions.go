package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/audio"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/status"
)

// stamp returns the event time, or the clock when the producer left it unset
func (a *App) stamp(ev event.Event) time.Time {
	if ev.At.IsZero() {
		return a.Clock.Now()
	}
	return ev.At
}

// ToggleMagnifier starts or stops magnification
func (a *App) ToggleMagnifier(now time.Time) {
	if a.active {
		a.Deactivate(now)
		a.cue(audio.CueToggle)
		return
	}
	if err := a.Activate(now); err != nil {
		a.Logger.Warn("cannot start magnifier", "error", err)
		return
	}
	a.cue(audio.CueToggle)
}

// SetMode switches tracking mode and announces it
func (a *App) SetMode(m core.TrackingMode, now time.Time) {
	if !a.Controller.SetMode(m) {
		return
	}
	a.Badge.Show(m.String(), parameter.StatusBadgeDuration, now)
	a.cue(audio.CueMode)
	a.persist()
}

// StepZoom changes zoom by steps increments, clamped to the supported range
func (a *App) StepZoom(steps float64, now time.Time) {
	before := a.Controller.Zoom()
	if !a.Controller.SetZoom(before + steps*parameter.ZoomStep) {
		return
	}
	after := a.Controller.Zoom()
	a.Badge.Show(ZoomLabel(after), parameter.ZoomBadgeDuration, now)
	if after > before {
		a.cue(audio.CueZoomIn)
	} else {
		a.cue(audio.CueZoomOut)
	}
	a.persist()
}

// Wheel zooms by whole notches when the zoom modifier is held
func (a *App) Wheel(delta int, modified bool, now time.Time) {
	if !modified || delta == 0 {
		return
	}
	a.StepZoom(float64(delta)/parameter.WheelDelta, now)
}

// ToggleInvert flips color inversion
func (a *App) ToggleInvert(now time.Time) {
	on := !a.Controller.Invert()
	a.Controller.SetInvert(on)
	a.Badge.Show(InvertLabel(on), parameter.StatusBadgeDuration, now)
	a.persist()
}

// SwapMonitors exchanges the source and magnifier monitors
// If the new source cannot be bound the previous pair is restored
func (a *App) SwapMonitors(now time.Time) {
	if err := a.Layout.Swap(); err != nil {
		a.Logger.Warn("monitor swap failed", "error", err)
		return
	}
	if err := a.bindMonitors(); err != nil {
		a.Logger.Warn("binding swapped monitors failed, restoring", "error", err)
		if rerr := a.Layout.Swap(); rerr == nil {
			if berr := a.bindMonitors(); berr != nil {
				a.Logger.Error("restoring monitors failed", "error", berr)
			}
		}
		return
	}
	src, _ := a.Layout.Source()
	a.Badge.Show(src.Label(), parameter.StatusBadgeDuration, now)
	a.Logger.Info("monitors swapped", "source", src.DeviceName)
	a.persist()
}

// ShowTime displays the clock badge
func (a *App) ShowTime(now time.Time) {
	a.Badge.Show(status.ClockLabel(now), parameter.StatusBadgeDuration, now)
}

// RecenterCaret jumps to the caret immediately
func (a *App) RecenterCaret(now time.Time) {
	if !a.active {
		return
	}
	a.Controller.CenterOnCaret(now)
}

// RestorePrevious jumps back to the remembered view
func (a *App) RestorePrevious(now time.Time) {
	if !a.active {
		return
	}
	a.Controller.RestorePrevious(now)
}

// ZoomLabel formats zoom as a whole percentage
func ZoomLabel(zoom float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(zoom*100)))
}

// InvertLabel names the inversion state
func InvertLabel(on bool) string {
	if on {
		return "Invert On"
	}
	return "Invert Off"
}
