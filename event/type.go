package event

import "time"

// EventType identifies a message consumed by the tick loop
type EventType int

const (
	// EventNone is the zero value and never routed
	EventNone EventType = iota

	// === Attention Signals ===

	// EventCaretMoved reports the text caret position
	// Trigger: input translator (typing, arrow keys)
	// Consumer: SignalHandler | Payload: *PointPayload
	EventCaretMoved

	// EventPointerMoved reports the pointer position
	// Trigger: input translator (mouse motion)
	// Consumer: SignalHandler | Payload: *PointPayload
	EventPointerMoved

	// EventFocusChanged reports the keyboard focus rectangle
	// Trigger: input translator (Tab)
	// Consumer: SignalHandler | Payload: *RectPayload
	EventFocusChanged

	// EventLeftClick reports a primary button press
	// Trigger: input translator
	// Consumer: SignalHandler | Payload: *PointPayload
	EventLeftClick

	// EventWheel reports wheel rotation; only modifier wheels change zoom
	// Trigger: input translator
	// Consumer: ActionHandler | Payload: *WheelPayload
	EventWheel

	// EventAnchorKeyDown starts a terminal alignment hold
	// Trigger: input translator (End)
	// Consumer: SignalHandler | Payload: nil
	EventAnchorKeyDown

	// EventAnchorKeyUp ends a terminal alignment hold
	// Trigger: input translator (End, second press)
	// Consumer: SignalHandler | Payload: nil
	EventAnchorKeyUp

	// === User Actions ===

	// EventRecenterCaret jumps straight to the caret
	// Trigger: any non-modifier key press
	// Consumer: ActionHandler | Payload: nil
	EventRecenterCaret

	// EventModeSet selects a tracking mode
	// Trigger: config reload, tests
	// Consumer: ActionHandler | Payload: *ModePayload
	EventModeSet

	// EventModeCycle advances to the next tracking mode
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventModeCycle

	// EventZoomStep changes zoom by Steps * zoom step
	// Trigger: hotkey, modifier wheel
	// Consumer: ActionHandler | Payload: *ZoomStepPayload
	EventZoomStep

	// EventRestorePrevious swaps the view with the jump history slot
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventRestorePrevious

	// EventToggleInvert flips color inversion
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventToggleInvert

	// EventToggleMagnifier starts or stops magnification
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventToggleMagnifier

	// EventSwapMonitors exchanges source and magnifier monitors
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventSwapMonitors

	// EventShowTime shows the clock badge
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventShowTime

	// EventReset forgets the center and jump history
	// Trigger: hotkey
	// Consumer: ActionHandler | Payload: nil
	EventReset

	// === System ===

	// EventFrameReloaded signals a new source image
	// Trigger: capture file watcher
	// Consumer: ActionHandler | Payload: *FramePayload
	EventFrameReloaded

	// EventResize signals the magnifier surface changed size
	// Trigger: input translator
	// Consumer: ActionHandler | Payload: nil
	EventResize

	// EventQuit stops the application
	// Trigger: hotkey, Ctrl+C
	// Consumer: ActionHandler | Payload: nil
	EventQuit
)

// Event is one queued message; At is the arrival time stamped by the producer
type Event struct {
	Type    EventType
	Payload any
	At      time.Time
}
