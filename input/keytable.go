package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
)

// Binding is the message a hotkey produces
type Binding struct {
	Type event.EventType
	// Steps is the zoom delta for EventZoomStep
	Steps float64
	// Mode is the target for EventModeSet
	Mode core.TrackingMode
}

// None reports an unbind sentinel
func (b Binding) None() bool {
	return b.Type == event.EventNone
}

// Event builds the queued event for this binding
func (b Binding) Event() event.Event {
	ev := event.Event{Type: b.Type}
	switch b.Type {
	case event.EventZoomStep:
		ev.Payload = &event.ZoomStepPayload{Steps: b.Steps}
	case event.EventModeSet:
		ev.Payload = &event.ModePayload{Mode: b.Mode}
	}
	return ev
}

// KeyTable maps hotkeys to bindings
// Runes fire with the Alt modifier so plain typing reaches the simulated editor
type KeyTable struct {
	Runes map[rune]Binding
	Keys  map[tcell.Key]Binding
}

// DefaultKeyTable returns the default hotkeys
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Binding{
			'm': {Type: event.EventToggleMagnifier},
			'+': {Type: event.EventZoomStep, Steps: 1},
			'=': {Type: event.EventZoomStep, Steps: 1},
			'-': {Type: event.EventZoomStep, Steps: -1},
			't': {Type: event.EventModeCycle},
			'i': {Type: event.EventToggleInvert},
			'x': {Type: event.EventShowTime},
			'c': {Type: event.EventShowTime},
			's': {Type: event.EventSwapMonitors},
			'b': {Type: event.EventRestorePrevious},
			'r': {Type: event.EventReset},
			'z': {Type: event.EventQuit},
		},
		Keys: map[tcell.Key]Binding{
			tcell.KeyCtrlC: {Type: event.EventQuit},
			tcell.KeyF2:    {Type: event.EventModeCycle},
			tcell.KeyF5:    {Type: event.EventReset},
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Runes: maps.Clone(kt.Runes),
		Keys:  maps.Clone(kt.Keys),
	}
}

// Lookup returns the binding for a key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Binding, bool) {
	if ev.Key() == tcell.KeyRune {
		if ev.Modifiers()&tcell.ModAlt == 0 {
			return Binding{}, false
		}
		b, ok := kt.Runes[lowerRune(ev.Rune())]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

func lowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
