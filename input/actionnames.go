package input

import (
	"strings"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
)

// actionRegistry maps action names used in the hotkey config to bindings
var actionRegistry = map[string]Binding{
	// Unbind sentinel
	"none": {},

	"toggle_magnifier": {Type: event.EventToggleMagnifier},
	"zoom_in":          {Type: event.EventZoomStep, Steps: 1},
	"zoom_out":         {Type: event.EventZoomStep, Steps: -1},
	"cycle_mode":       {Type: event.EventModeCycle},
	"toggle_invert":    {Type: event.EventToggleInvert},
	"show_time":        {Type: event.EventShowTime},
	"swap_monitors":    {Type: event.EventSwapMonitors},
	"restore_previous": {Type: event.EventRestorePrevious},
	"recenter_caret":   {Type: event.EventRecenterCaret},
	"reset":            {Type: event.EventReset},
	"quit":             {Type: event.EventQuit},

	"mode_auto":   {Type: event.EventModeSet, Mode: core.ModeAuto},
	"mode_caret":  {Type: event.EventModeSet, Mode: core.ModeCaret},
	"mode_mouse":  {Type: event.EventModeSet, Mode: core.ModeMouse},
	"mode_focus":  {Type: event.EventModeSet, Mode: core.ModeFocus},
	"mode_manual": {Type: event.EventModeSet, Mode: core.ModeManual},
}

// payloadFree lists the event types a hotkey may name directly
var payloadFree = map[event.EventType]bool{
	event.EventRecenterCaret:   true,
	event.EventModeCycle:       true,
	event.EventRestorePrevious: true,
	event.EventToggleInvert:    true,
	event.EventToggleMagnifier: true,
	event.EventSwapMonitors:    true,
	event.EventShowTime:        true,
	event.EventReset:           true,
	event.EventQuit:            true,
}

// ActionBinding resolves an action name, falling back to a payload-free event name
func ActionBinding(name string) (Binding, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if b, ok := actionRegistry[name]; ok {
		return b, true
	}
	event.InitRegistry()
	if et, ok := event.GetEventType(name); ok && payloadFree[et] {
		return Binding{Type: et}, true
	}
	return Binding{}, false
}
