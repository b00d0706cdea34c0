package tracking

import (
	"math"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// Extent is the view size for one frame size and zoom
type Extent struct {
	Frame         core.Size
	Width, Height float64
	HalfW, HalfH  float64
}

// NewExtent computes view = min(frame/zoom, frame) per axis
func NewExtent(frame core.Size, zoom float64) Extent {
	if zoom <= 0 {
		zoom = 1
	}
	fw, fh := float64(frame.Width), float64(frame.Height)
	w := min(fw/zoom, fw)
	h := min(fh/zoom, fh)
	return Extent{Frame: frame, Width: w, Height: h, HalfW: w / 2, HalfH: h / 2}
}

// CenterBounds returns the valid center range [half, dim-half] per axis
func (e Extent) CenterBounds() core.FloatRect {
	return core.FloatRect{
		Left:   e.HalfW,
		Top:    e.HalfH,
		Right:  float64(e.Frame.Width) - e.HalfW,
		Bottom: float64(e.Frame.Height) - e.HalfH,
	}
}

// ClampCenter keeps the view fully on the frame
func (e Extent) ClampCenter(c core.FloatPoint) core.FloatPoint {
	b := e.CenterBounds()
	return core.FloatPoint{
		X: core.Clamp(c.X, b.Left, b.Right),
		Y: core.Clamp(c.Y, b.Top, b.Bottom),
	}
}

// Region returns the integer pixel rectangle covering the view around c
func (e Extent) Region(c core.FloatPoint) core.Rect {
	left := c.X - e.HalfW
	top := c.Y - e.HalfH
	r := core.Rect{
		Left:   int(math.Floor(left)),
		Top:    int(math.Floor(top)),
		Right:  int(math.Ceil(left + e.Width)),
		Bottom: int(math.Ceil(top + e.Height)),
	}
	// Float rounding at the far edge must not push the cover off the frame
	r.Left = max(r.Left, 0)
	r.Top = max(r.Top, 0)
	r.Right = min(r.Right, e.Frame.Width)
	r.Bottom = min(r.Bottom, e.Frame.Height)
	return r
}
