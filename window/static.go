package window

import (
	"strings"
	"sync"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

var _ tracking.WindowProbe = (*StaticProbe)(nil)

// StaticProbe serves a fixed window list with a switchable foreground entry
type StaticProbe struct {
	mu         sync.RWMutex
	windows    []Window
	foreground int
}

// NewStaticProbe creates a probe whose foreground is the first window
func NewStaticProbe(windows []Window) *StaticProbe {
	return &StaticProbe{windows: append([]Window(nil), windows...)}
}

// Foreground returns the current foreground window
func (p *StaticProbe) Foreground() (Window, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.foreground < 0 || p.foreground >= len(p.windows) {
		return Window{}, false
	}
	return p.windows[p.foreground], true
}

// Focus brings the first window whose title contains title to the foreground
func (p *StaticProbe) Focus(title string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	title = strings.ToLower(title)
	for i, w := range p.windows {
		if strings.Contains(strings.ToLower(w.Title), title) {
			p.foreground = i
			return true
		}
	}
	return false
}

// Cycle moves the foreground to the next window and returns it
func (p *StaticProbe) Cycle() (Window, bool) {
	p.mu.Lock()
	if len(p.windows) > 0 {
		p.foreground = (p.foreground + 1) % len(p.windows)
	}
	p.mu.Unlock()
	return p.Foreground()
}

func (p *StaticProbe) ForegroundRect(patterns []string) (core.Rect, bool) {
	w, ok := p.Foreground()
	if !ok || !w.Matches(patterns) || w.Rect.Empty() {
		return core.Rect{}, false
	}
	return w.Rect, true
}

func (p *StaticProbe) ForegroundMatches(patterns []string) bool {
	w, ok := p.Foreground()
	return ok && w.Matches(patterns)
}
