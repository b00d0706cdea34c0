// Package input turns terminal events into magnifier messages.
//
// The terminal stands in for system-wide hooks: the mouse maps proportionally
// onto the source monitor, typing drives a simulated caret, Tab walks a grid of
// simulated focusable widgets and End toggles the terminal anchor hold.
package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

// BoundsFunc returns the current source monitor rectangle in screen space
type BoundsFunc func() (core.Rect, bool)

// Translator converts tcell events into queued events
// Safe for use from one polling goroutine plus concurrent Resize callers
type Translator struct {
	queue  *event.EventQueue
	keys   *KeyTable
	bounds BoundsFunc
	now    func() time.Time

	mu         sync.Mutex
	cols, rows int
	lineStart  int
	caret      core.Point
	hasCaret   bool
	focus      int
	buttons    tcell.ButtonMask
	lastMouse  core.Point
	anchorDown bool
}

// NewTranslator creates a translator for a cols x rows terminal
func NewTranslator(queue *event.EventQueue, keys *KeyTable, bounds BoundsFunc, now func() time.Time) *Translator {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	if now == nil {
		now = time.Now
	}
	return &Translator{
		queue:  queue,
		keys:   keys,
		bounds: bounds,
		now:    now,
		focus:  -1,
	}
}

// Resize records the terminal size used for pointer mapping
func (t *Translator) Resize(cols, rows int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cols, t.rows = cols, rows
}

// Caret returns the simulated caret position
func (t *Translator) Caret() (core.Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.caret, t.hasCaret
}

// Translate handles one terminal event; returns false for events it ignores
func (t *Translator) Translate(ev tcell.Event) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev)
	case *tcell.EventMouse:
		return t.mouse(ev)
	case *tcell.EventResize:
		t.cols, t.rows = ev.Size()
		event.Emit(t.queue, event.EventResize, t.now())
		return true
	}
	return false
}

// --- Mouse ---

func (t *Translator) mouse(ev *tcell.EventMouse) bool {
	src, ok := t.bounds()
	if !ok || t.cols <= 0 || t.rows <= 0 {
		return false
	}
	x, y := ev.Position()
	p := cellToScreen(x, y, t.cols, t.rows, src)
	at := t.now()
	buttons := ev.Buttons()

	if delta := wheelDelta(buttons); delta != 0 {
		mods := ev.Modifiers()
		t.queue.Push(event.Event{
			Type:    event.EventWheel,
			Payload: &event.WheelPayload{Delta: delta, Modified: mods&(tcell.ModCtrl|tcell.ModAlt) != 0},
			At:      at,
		})
		return true
	}

	prev := t.buttons
	t.buttons = buttons

	if p != t.lastMouse {
		t.lastMouse = p
		event.EmitPoint(t.queue, event.EventPointerMoved, p, at)
	}
	if buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		event.EmitPoint(t.queue, event.EventLeftClick, p, at)
	}
	return true
}

// cellToScreen maps the center of a terminal cell proportionally onto src
func cellToScreen(x, y, cols, rows int, src core.Rect) core.Point {
	x = max(0, min(x, cols-1))
	y = max(0, min(y, rows-1))
	return core.Point{
		X: src.Left + (2*x+1)*src.Width()/(2*cols),
		Y: src.Top + (2*y+1)*src.Height()/(2*rows),
	}
}

// wheelDelta converts the vertical wheel mask to platform units
func wheelDelta(mask tcell.ButtonMask) int {
	delta := 0
	if mask&tcell.WheelUp != 0 {
		delta += parameter.WheelDelta
	}
	if mask&tcell.WheelDown != 0 {
		delta -= parameter.WheelDelta
	}
	return delta
}

// --- Keyboard ---

func (t *Translator) key(ev *tcell.EventKey) bool {
	at := t.now()

	if b, ok := t.keys.Lookup(ev); ok {
		e := b.Event()
		e.At = at
		t.queue.Push(e)
		return true
	}

	// Terminals report no key release, so End toggles the hold
	if ev.Key() == tcell.KeyEnd {
		t.anchorDown = !t.anchorDown
		if t.anchorDown {
			event.Emit(t.queue, event.EventAnchorKeyDown, at)
		} else {
			event.Emit(t.queue, event.EventAnchorKeyUp, at)
		}
		return true
	}

	src, ok := t.bounds()
	if !ok {
		return false
	}

	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		step := 1
		if ev.Key() == tcell.KeyBacktab {
			step = -1
		}
		n := parameter.FocusColumns * parameter.FocusRows
		t.focus = ((t.focus+step)%n + n) % n
		event.EmitRect(t.queue, event.EventFocusChanged, focusRect(t.focus, src), at)

	default:
		if !t.moveCaret(ev, src) {
			return false
		}
		event.EmitPoint(t.queue, event.EventCaretMoved, t.caret, at)
	}

	// Any real key press jumps straight to the caret
	event.Emit(t.queue, event.EventRecenterCaret, at)
	return true
}

// moveCaret applies an editing key to the simulated caret
func (t *Translator) moveCaret(ev *tcell.EventKey, src core.Rect) bool {
	if !t.hasCaret || !src.Contains(t.caret) {
		t.lineStart = src.Left + 4*parameter.CaretStepX
		t.caret = core.Point{X: t.lineStart, Y: src.Top + 4*parameter.CaretStepY}
		t.hasCaret = true
	}

	c := t.caret
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return false
		}
		c.X += parameter.CaretStepX
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.X = max(t.lineStart, c.X-parameter.CaretStepX)
	case tcell.KeyEnter:
		c.X = t.lineStart
		c.Y += parameter.CaretStepY
	case tcell.KeyLeft:
		c.X -= parameter.CaretStepX
	case tcell.KeyRight:
		c.X += parameter.CaretStepX
	case tcell.KeyUp:
		c.Y -= parameter.CaretStepY
	case tcell.KeyDown:
		c.Y += parameter.CaretStepY
	case tcell.KeyHome:
		c.X = t.lineStart
	default:
		return false
	}

	// Wrap like an editor at the right edge
	if c.X >= src.Right-parameter.CaretStepX {
		c.X = t.lineStart
		c.Y += parameter.CaretStepY
	}
	c.X = max(src.Left, min(c.X, src.Right-1))
	c.Y = max(src.Top, min(c.Y, src.Bottom-1))
	t.caret = c
	return true
}

// focusRect returns the i-th widget of a grid laid over src
func focusRect(i int, src core.Rect) core.Rect {
	col := i % parameter.FocusColumns
	row := i / parameter.FocusColumns
	w := src.Width() / parameter.FocusColumns
	h := src.Height() / parameter.FocusRows
	left := src.Left + col*w
	top := src.Top + row*h
	// Inset so neighbouring widgets do not touch
	return core.Rect{Left: left + w/8, Top: top + h/4, Right: left + w*7/8, Bottom: top + h*3/4}
}
