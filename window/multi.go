package window

import (
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

// MultiProbe asks each probe in order and reports the first match
type MultiProbe []tracking.WindowProbe

func (m MultiProbe) ForegroundRect(patterns []string) (core.Rect, bool) {
	for _, p := range m {
		if p == nil {
			continue
		}
		if r, ok := p.ForegroundRect(patterns); ok {
			return r, true
		}
	}
	return core.Rect{}, false
}

func (m MultiProbe) ForegroundMatches(patterns []string) bool {
	for _, p := range m {
		if p != nil && p.ForegroundMatches(patterns) {
			return true
		}
	}
	return false
}
