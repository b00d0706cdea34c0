package tracking

import (
	"math"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

var (
	t0      = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fullHD  = core.Size{Width: 1920, Height: 1080}
	unitMap = Mapper{Bounds: core.Rect{Right: 1920, Bottom: 1080}, Scale: 1}
)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func nearPoint(a, b core.FloatPoint) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

// stubProbe reports a fixed foreground window
type stubProbe struct {
	rect    core.Rect
	hasRect bool
	matches bool
}

func (p *stubProbe) ForegroundRect(patterns []string) (core.Rect, bool) {
	return p.rect, p.hasRect
}

func (p *stubProbe) ForegroundMatches(patterns []string) bool {
	return p.matches
}

func newController(probe WindowProbe) *Controller {
	c := New(DefaultTuning(), probe)
	c.SetMapper(unitMap)
	return c
}
