package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
)

var (
	t0     = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	fullHD = core.Rect{Right: 1920, Bottom: 1080}
)

func newTestTranslator(bounds core.Rect, ok bool) (*Translator, *event.EventQueue) {
	q := event.NewEventQueue()
	tr := NewTranslator(q, nil, func() (core.Rect, bool) { return bounds, ok }, func() time.Time { return t0 })
	tr.Resize(80, 24)
	return tr, q
}

func types(events []event.Event) []event.EventType {
	out := make([]event.EventType, len(events))
	for i, ev := range events {
		out[i] = ev.Type
	}
	return out
}

func expectTypes(t *testing.T, got []event.Event, want ...event.EventType) {
	t.Helper()
	gt := types(got)
	if len(gt) != len(want) {
		t.Fatalf("Expected events %v, got %v", want, gt)
	}
	for i := range want {
		if gt[i] != want[i] {
			t.Fatalf("Expected events %v, got %v", want, gt)
		}
	}
}

func pointOf(t *testing.T, ev event.Event) core.Point {
	t.Helper()
	p, ok := ev.Payload.(*event.PointPayload)
	if !ok {
		t.Fatalf("Expected *PointPayload for %v, got %T", ev.Type, ev.Payload)
	}
	return p.Point
}

func TestTypingMovesCaret(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)

	if !tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatal("Expected rune to be handled")
	}
	evs := q.Consume()
	expectTypes(t, evs, event.EventCaretMoved, event.EventRecenterCaret)
	if p := pointOf(t, evs[0]); p != (core.Point{X: 45, Y: 72}) {
		t.Errorf("Expected caret (45,72), got %v", p)
	}
	if !evs[0].At.Equal(t0) {
		t.Errorf("Expected event stamped %v, got %v", t0, evs[0].At)
	}

	tr.Translate(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	evs = q.Consume()
	expectTypes(t, evs, event.EventCaretMoved, event.EventRecenterCaret)
	if p := pointOf(t, evs[0]); p != (core.Point{X: 36, Y: 90}) {
		t.Errorf("Expected caret at line start (36,90), got %v", p)
	}

	if p, ok := tr.Caret(); !ok || p != (core.Point{X: 36, Y: 90}) {
		t.Errorf("Expected Caret() (36,90), got %v ok=%v", p, ok)
	}
}

func TestBackspaceStopsAtLineStart(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	tr.Translate(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	tr.Translate(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	q.Consume()

	if p, _ := tr.Caret(); p.X != 36 {
		t.Errorf("Expected caret X clamped at 36, got %d", p.X)
	}
}

func TestCaretWrapsAtRightEdge(t *testing.T) {
	narrow := core.Rect{Right: 100, Bottom: 200}
	tr, q := newTestTranslator(narrow, true)

	for range 7 {
		tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	}
	q.Consume()

	// 36 + 9*7 = 99 passes Right-9 and wraps
	p, _ := tr.Caret()
	if p.X != 36 || p.Y != 90 {
		t.Errorf("Expected wrapped caret (36,90), got %v", p)
	}
}

func TestHotkeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want event.EventType
	}{
		{"alt t cycles mode", tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModAlt), event.EventModeCycle},
		{"alt upper T cycles mode", tcell.NewEventKey(tcell.KeyRune, 'T', tcell.ModAlt), event.EventModeCycle},
		{"alt m toggles", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModAlt), event.EventToggleMagnifier},
		{"alt z quits", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModAlt), event.EventQuit},
		{"f2 cycles mode", tcell.NewEventKey(tcell.KeyF2, 0, tcell.ModNone), event.EventModeCycle},
		{"f5 resets", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), event.EventReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, q := newTestTranslator(fullHD, true)
			if !tr.Translate(tt.ev) {
				t.Fatal("Expected hotkey to be handled")
			}
			expectTypes(t, q.Consume(), tt.want)
			if _, ok := tr.Caret(); ok {
				t.Error("Expected hotkey not to move the caret")
			}
		})
	}
}

func TestZoomHotkeyPayload(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)
	tr.Translate(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModAlt))

	evs := q.Consume()
	expectTypes(t, evs, event.EventZoomStep)
	p, ok := evs[0].Payload.(*event.ZoomStepPayload)
	if !ok || p.Steps != -1 {
		t.Errorf("Expected zoom step -1, got %+v", evs[0].Payload)
	}
}

func TestUnboundAltRuneIgnored(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)
	if tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt)) {
		t.Error("Expected unbound Alt rune to be ignored")
	}
	if n := q.Len(); n != 0 {
		t.Errorf("Expected empty queue, got %d events", n)
	}
}

func TestEndTogglesAnchorHold(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)
	end := tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone)

	tr.Translate(end)
	expectTypes(t, q.Consume(), event.EventAnchorKeyDown)
	tr.Translate(end)
	expectTypes(t, q.Consume(), event.EventAnchorKeyUp)
	tr.Translate(end)
	expectTypes(t, q.Consume(), event.EventAnchorKeyDown)
}

func TestTabCyclesFocus(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)

	tr.Translate(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	evs := q.Consume()
	expectTypes(t, evs, event.EventFocusChanged, event.EventRecenterCaret)
	first := evs[0].Payload.(*event.RectPayload).Rect
	want := core.Rect{Left: 60, Top: 45, Right: 420, Bottom: 135}
	if first != want {
		t.Errorf("Expected first widget %v, got %v", want, first)
	}

	// Backtab from the first widget wraps to the last
	tr.Translate(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	evs = q.Consume()
	last := evs[0].Payload.(*event.RectPayload).Rect
	want = core.Rect{Left: 1500, Top: 945, Right: 1860, Bottom: 1035}
	if last != want {
		t.Errorf("Expected last widget %v, got %v", want, last)
	}
}

func TestMouseMapsOntoSource(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)

	tr.Translate(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))
	evs := q.Consume()
	expectTypes(t, evs, event.EventPointerMoved)
	if p := pointOf(t, evs[0]); p != (core.Point{X: 972, Y: 562}) {
		t.Errorf("Expected (972,562), got %v", p)
	}

	// Press in place: click only
	tr.Translate(tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone))
	expectTypes(t, q.Consume(), event.EventLeftClick)

	// Drag with the button held: motion only
	tr.Translate(tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone))
	expectTypes(t, q.Consume(), event.EventPointerMoved)

	// Release then press again: a second click
	tr.Translate(tcell.NewEventMouse(41, 12, tcell.ButtonNone, tcell.ModNone))
	tr.Translate(tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone))
	expectTypes(t, q.Consume(), event.EventLeftClick)
}

func TestMouseOffsetMonitor(t *testing.T) {
	second := core.Rect{Left: 1920, Right: 3840, Bottom: 1080}
	tr, q := newTestTranslator(second, true)

	tr.Translate(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	p := pointOf(t, q.Consume()[0])
	if p != (core.Point{X: 1932, Y: 22}) {
		t.Errorf("Expected (1932,22), got %v", p)
	}
}

func TestWheel(t *testing.T) {
	tests := []struct {
		name     string
		buttons  tcell.ButtonMask
		mods     tcell.ModMask
		delta    int
		modified bool
	}{
		{"ctrl up", tcell.WheelUp, tcell.ModCtrl, 120, true},
		{"alt down", tcell.WheelDown, tcell.ModAlt, -120, true},
		{"plain up", tcell.WheelUp, tcell.ModNone, 120, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, q := newTestTranslator(fullHD, true)
			tr.Translate(tcell.NewEventMouse(10, 10, tt.buttons, tt.mods))
			evs := q.Consume()
			expectTypes(t, evs, event.EventWheel)
			p := evs[0].Payload.(*event.WheelPayload)
			if p.Delta != tt.delta || p.Modified != tt.modified {
				t.Errorf("Expected delta=%d modified=%v, got %+v", tt.delta, tt.modified, *p)
			}
		})
	}
}

func TestNoSourceMonitor(t *testing.T) {
	tr, q := newTestTranslator(core.Rect{}, false)

	if tr.Translate(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone)) {
		t.Error("Expected mouse to be ignored without a source monitor")
	}
	if tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Error("Expected typing to be ignored without a source monitor")
	}
	// Hotkeys still work
	if !tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModAlt)) {
		t.Error("Expected hotkey to be handled without a source monitor")
	}
	expectTypes(t, q.Consume(), event.EventToggleMagnifier)
}

func TestResize(t *testing.T) {
	tr, q := newTestTranslator(fullHD, true)
	tr.Translate(tcell.NewEventResize(160, 48))
	expectTypes(t, q.Consume(), event.EventResize)

	// Cell 80,24 on a 160x48 grid maps like 40,12 did on 80x24
	tr.Translate(tcell.NewEventMouse(80, 24, tcell.ButtonNone, tcell.ModNone))
	p := pointOf(t, q.Consume()[0])
	if p != (core.Point{X: 966, Y: 551}) {
		t.Errorf("Expected (966,551), got %v", p)
	}
}

func TestCellToScreenClamps(t *testing.T) {
	p := cellToScreen(500, -3, 80, 24, fullHD)
	want := core.Point{X: 159 * 1920 / 160, Y: 1080 / 48}
	if p != want {
		t.Errorf("Expected %v, got %v", want, p)
	}
}
