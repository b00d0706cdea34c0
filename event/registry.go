package event

import (
	"reflect"
	"strings"
	"sync"
)

var (
	nameToType    = make(map[string]EventType)
	typeToName    = make(map[EventType]string)
	typeToPayload = make(map[EventType]reflect.Type)
	registryOnce  sync.Once
)

// RegisterType maps a string name to an EventType and its payload struct type
// payloadInstance should be a pointer to the payload struct; nil if the event has none
func RegisterType(name string, et EventType, payloadInstance any) {
	nameToType[strings.ToLower(name)] = et
	typeToName[et] = name
	if payloadInstance != nil {
		t := reflect.TypeOf(payloadInstance)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		typeToPayload[et] = t
	}
}

// GetEventType returns the EventType for a case-insensitive name
// The "Event" prefix is optional
func GetEventType(name string) (EventType, bool) {
	InitRegistry()
	key := strings.ToLower(strings.TrimSpace(name))
	if et, ok := nameToType[key]; ok {
		return et, true
	}
	et, ok := nameToType["event"+key]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "EventUnknown"
}

// NewPayloadStruct returns a new pointer to a zero-value payload struct for the event type
// Returns nil if no payload is registered
func NewPayloadStruct(et EventType) any {
	InitRegistry()
	t, ok := typeToPayload[et]
	if !ok {
		return nil
	}
	return reflect.New(t).Interface()
}

// InitRegistry populates the registry with all events; safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventNone", EventNone, nil)

		// Attention signals
		RegisterType("EventCaretMoved", EventCaretMoved, &PointPayload{})
		RegisterType("EventPointerMoved", EventPointerMoved, &PointPayload{})
		RegisterType("EventFocusChanged", EventFocusChanged, &RectPayload{})
		RegisterType("EventLeftClick", EventLeftClick, &PointPayload{})
		RegisterType("EventWheel", EventWheel, &WheelPayload{})
		RegisterType("EventAnchorKeyDown", EventAnchorKeyDown, nil)
		RegisterType("EventAnchorKeyUp", EventAnchorKeyUp, nil)

		// User actions
		RegisterType("EventRecenterCaret", EventRecenterCaret, nil)
		RegisterType("EventModeSet", EventModeSet, &ModePayload{})
		RegisterType("EventModeCycle", EventModeCycle, nil)
		RegisterType("EventZoomStep", EventZoomStep, &ZoomStepPayload{})
		RegisterType("EventRestorePrevious", EventRestorePrevious, nil)
		RegisterType("EventToggleInvert", EventToggleInvert, nil)
		RegisterType("EventToggleMagnifier", EventToggleMagnifier, nil)
		RegisterType("EventSwapMonitors", EventSwapMonitors, nil)
		RegisterType("EventShowTime", EventShowTime, nil)
		RegisterType("EventReset", EventReset, nil)

		// System
		RegisterType("EventFrameReloaded", EventFrameReloaded, &FramePayload{})
		RegisterType("EventResize", EventResize, nil)
		RegisterType("EventQuit", EventQuit, nil)
	})
}

func (t EventType) String() string {
	return GetEventName(t)
}
