package event

import (
	"testing"
)

type recordingHandler struct {
	types []EventType
	seen  []EventType
}

func (h *recordingHandler) HandleEvent(log *[]string, ev Event) {
	h.seen = append(h.seen, ev.Type)
	*log = append(*log, ev.Type.String())
}

func (h *recordingHandler) EventTypes() []EventType {
	return h.types
}

func TestRouterDispatchOrder(t *testing.T) {
	q := NewEventQueue()
	r := NewRouter[*[]string](q)

	signals := &recordingHandler{types: []EventType{EventCaretMoved, EventPointerMoved}}
	actions := &recordingHandler{types: []EventType{EventZoomStep, EventCaretMoved}}
	r.Register(signals)
	r.Register(actions)

	if r.HandlerCount(EventCaretMoved) != 2 {
		t.Errorf("Expected 2 caret handlers, got %d", r.HandlerCount(EventCaretMoved))
	}
	if r.HasHandlers(EventQuit) {
		t.Error("Expected no quit handlers")
	}

	Emit(q, EventPointerMoved, base)
	EmitZoomStep(q, 1, base)
	Emit(q, EventCaretMoved, base)
	Emit(q, EventQuit, base)

	var log []string
	if n := r.DispatchAll(&log); n != 4 {
		t.Errorf("Expected 4 events consumed, got %d", n)
	}

	want := []string{"EventPointerMoved", "EventZoomStep", "EventCaretMoved", "EventCaretMoved"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	tests := []struct {
		name string
		want EventType
		ok   bool
	}{
		{"EventModeCycle", EventModeCycle, true},
		{"modecycle", EventModeCycle, true},
		{" ZoomStep ", EventZoomStep, true},
		{"EventToggleInvert", EventToggleInvert, true},
		{"nope", EventNone, false},
	}
	for _, tt := range tests {
		got, ok := GetEventType(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("%q: expected %v ok=%v, got %v ok=%v", tt.name, tt.want, tt.ok, got, ok)
		}
	}

	if _, ok := NewPayloadStruct(EventWheel).(*WheelPayload); !ok {
		t.Error("Expected wheel payload struct")
	}
	if NewPayloadStruct(EventQuit) != nil {
		t.Error("Expected nil payload for quit")
	}
	if EventType(999).String() != "EventUnknown" {
		t.Errorf("Expected EventUnknown, got %s", EventType(999).String())
	}
}
