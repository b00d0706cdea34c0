package event

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// Emit pushes a payload-free event stamped with at
func Emit(q *EventQueue, et EventType, at time.Time) {
	q.Push(Event{Type: et, At: at})
}

// EmitPoint pushes a point-carrying signal
func EmitPoint(q *EventQueue, et EventType, p core.Point, at time.Time) {
	q.Push(Event{Type: et, Payload: &PointPayload{Point: p}, At: at})
}

// EmitRect pushes a rectangle-carrying signal
func EmitRect(q *EventQueue, et EventType, r core.Rect, at time.Time) {
	q.Push(Event{Type: et, Payload: &RectPayload{Rect: r}, At: at})
}

// EmitZoomStep pushes a zoom change of steps * zoom step
func EmitZoomStep(q *EventQueue, steps float64, at time.Time) {
	q.Push(Event{Type: EventZoomStep, Payload: &ZoomStepPayload{Steps: steps}, At: at})
}
