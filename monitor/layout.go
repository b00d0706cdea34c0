package monitor

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrNeedTwoMonitors is returned when the layout cannot host a separate magnifier
	ErrNeedTwoMonitors = errors.New("at least two monitors are required")
	// ErrNotSelected is returned when no source/magnifier pair is active
	ErrNotSelected = errors.New("monitors not selected")
)

// Layout holds the known monitors and the active source/magnifier pair
type Layout struct {
	mu        sync.RWMutex
	monitors  []Monitor
	source    int
	magnifier int
}

// NewLayout creates a layout with nothing selected
func NewLayout(monitors []Monitor) *Layout {
	l := &Layout{source: -1, magnifier: -1}
	l.Refresh(monitors)
	return l
}

// Refresh replaces the monitor list and drops the current selection
func (l *Layout) Refresh(monitors []Monitor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.monitors = append([]Monitor(nil), monitors...)
	l.source, l.magnifier = -1, -1
}

// Monitors returns a copy of the known monitors
func (l *Layout) Monitors() []Monitor {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Monitor(nil), l.monitors...)
}

// Select picks the magnifier and source monitors by device name
// Magnifier: named monitor, else the first non-primary one
// Source: named monitor if different from magnifier, else the primary, else any other
func (l *Layout) Select(sourceName, magnifierName string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.monitors) < 2 {
		return ErrNeedTwoMonitors
	}

	mag := l.find(magnifierName)
	if mag < 0 {
		for i, m := range l.monitors {
			if !m.Primary {
				mag = i
				break
			}
		}
	}
	if mag < 0 {
		mag = len(l.monitors) - 1
	}

	src := l.find(sourceName)
	if src == mag {
		src = -1
	}
	if src < 0 {
		for i, m := range l.monitors {
			if i != mag && m.Primary {
				src = i
				break
			}
		}
	}
	if src < 0 {
		for i := range l.monitors {
			if i != mag {
				src = i
				break
			}
		}
	}
	if src < 0 {
		return fmt.Errorf("no capture monitor besides %s: %w", l.monitors[mag].DeviceName, ErrNeedTwoMonitors)
	}

	l.source, l.magnifier = src, mag
	return nil
}

// Swap exchanges source and magnifier; the previous pair is restored on failure
func (l *Layout) Swap() error {
	src, mag, err := l.Pair()
	if err != nil {
		return err
	}
	if err := l.Select(mag.DeviceName, src.DeviceName); err != nil {
		if rerr := l.Select(src.DeviceName, mag.DeviceName); rerr != nil {
			return fmt.Errorf("swap failed: %w (restore: %v)", err, rerr)
		}
		return fmt.Errorf("swap failed: %w", err)
	}
	return nil
}

// Pair returns the active source and magnifier monitors
func (l *Layout) Pair() (Monitor, Monitor, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.source < 0 || l.magnifier < 0 {
		return Monitor{}, Monitor{}, ErrNotSelected
	}
	return l.monitors[l.source], l.monitors[l.magnifier], nil
}

// Source returns the capture monitor
func (l *Layout) Source() (Monitor, bool) {
	src, _, err := l.Pair()
	return src, err == nil
}

// Magnifier returns the presentation monitor
func (l *Layout) Magnifier() (Monitor, bool) {
	_, mag, err := l.Pair()
	return mag, err == nil
}

func (l *Layout) find(name string) int {
	if name == "" {
		return -1
	}
	for i, m := range l.monitors {
		if m.DeviceName == name {
			return i
		}
	}
	return -1
}
