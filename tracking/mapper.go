package tracking

import "github.com/marchenkojuri1981-crypto/MAGNIFIER/core"

// Mapper converts source-monitor screen coordinates into frame pixel coordinates
// Bounds is the monitor rectangle in virtual-desktop space, Scale is dpi/96
type Mapper struct {
	Bounds core.Rect
	Scale  float64
}

// Usable reports whether the mapper can convert any point at all
func (m Mapper) Usable() bool {
	return !m.Bounds.Empty() && m.Scale > 0
}

// ScreenToSource maps p into frame space; points outside the monitor have no mapping
func (m Mapper) ScreenToSource(p core.Point) (core.FloatPoint, bool) {
	if !m.Usable() || !m.Bounds.Contains(p) {
		return core.FloatPoint{}, false
	}
	return core.FloatPoint{
		X: float64(p.X-m.Bounds.Left) * m.Scale,
		Y: float64(p.Y-m.Bounds.Top) * m.Scale,
	}, true
}

// RectCenterToSource maps the integer midpoint of r
func (m Mapper) RectCenterToSource(r core.Rect) (core.FloatPoint, bool) {
	return m.ScreenToSource(r.Center())
}
