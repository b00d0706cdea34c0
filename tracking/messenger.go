package tracking

import (
	"math"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// MessengerZone keeps the view on a chat input box after a click into it
// Anchor is the arming click in screen space
type MessengerZone struct {
	Rect   core.FloatRect
	Anchor core.Point
	Active bool
}

// ArmMessengerZone builds a zone when click lands in the bottom strip of the monitor
// The strip is stripRatio of the height (at least 1 px) minus the leftRatio of the width
func ArmMessengerZone(click core.Point, m Mapper, stripRatio, leftRatio float64) (MessengerZone, bool) {
	b := m.Bounds
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return MessengerZone{}, false
	}

	strip := max(int(math.Round(float64(h)*stripRatio)), 1)
	top := max(b.Bottom-strip, b.Top)
	left := b.Left + int(math.Round(float64(w)*leftRatio))
	left = min(max(left, b.Left), b.Right-1)

	zone := core.Rect{Left: left, Top: top, Right: b.Right, Bottom: b.Bottom}
	if zone.Empty() || !zone.Contains(click) {
		return MessengerZone{}, false
	}

	tl, ok := m.ScreenToSource(core.Point{X: zone.Left, Y: zone.Top})
	if !ok {
		return MessengerZone{}, false
	}
	br, ok := m.ScreenToSource(core.Point{X: zone.Right - 1, Y: zone.Bottom - 1})
	if !ok {
		return MessengerZone{}, false
	}

	return MessengerZone{
		Rect:   core.FloatRect{Left: tl.X, Top: tl.Y, Right: br.X, Bottom: br.Y},
		Anchor: click,
		Active: true,
	}, true
}

// Release disarms the zone once the pointer strays more than dist px on either axis
func (z MessengerZone) Release(p core.Point, dist int) MessengerZone {
	if !z.Active {
		return z
	}
	if abs(p.X-z.Anchor.X) > dist || abs(p.Y-z.Anchor.Y) > dist {
		z.Active = false
	}
	return z
}

// Clamp confines c to the zone intersected with the valid center range
// An empty intersection on either axis disarms the zone and leaves c alone
func (z MessengerZone) Clamp(c core.FloatPoint, e Extent) (core.FloatPoint, MessengerZone) {
	if !z.Active {
		return c, z
	}

	b := e.CenterBounds()
	minX, maxX := max(z.Rect.Left, b.Left), min(z.Rect.Right, b.Right)
	minY, maxY := max(z.Rect.Top, b.Top), min(z.Rect.Bottom, b.Bottom)
	if minX > maxX || minY > maxY {
		z.Active = false
		return c, z
	}

	return core.FloatPoint{
		X: core.Clamp(c.X, minX, maxX),
		Y: core.Clamp(c.Y, minY, maxY),
	}, z
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
