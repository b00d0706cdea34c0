package window

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

var _ tracking.WindowProbe = (*ProcessProbe)(nil)

// maxAncestry bounds the parent walk
const maxAncestry = 16

// ProcessProbe treats the terminal hosting this process as the foreground window
// Process names come from the ancestry of the current process; the screen rectangle
// of the hosting terminal is configured since a process has no geometry
type ProcessProbe struct {
	mu    sync.RWMutex
	names []string
	rect  core.Rect
}

// NewProcessProbe creates a probe for a terminal occupying rect
func NewProcessProbe(rect core.Rect) *ProcessProbe {
	return &ProcessProbe{rect: rect}
}

// Refresh re-reads the process ancestry; probe queries never touch the OS
func (p *ProcessProbe) Refresh(ctx context.Context) error {
	names, err := Ancestry(ctx, int32(os.Getpid()), maxAncestry)
	if err != nil && len(names) == 0 {
		return err
	}
	p.mu.Lock()
	p.names = names
	p.mu.Unlock()
	return nil
}

// Names returns the cached ancestry, nearest process first
func (p *ProcessProbe) Names() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.names...)
}

// SetRect updates the hosting terminal rectangle
func (p *ProcessProbe) SetRect(r core.Rect) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rect = r
}

func (p *ProcessProbe) ForegroundRect(patterns []string) (core.Rect, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.rect.Empty() || !MatchAny(patterns, p.names...) {
		return core.Rect{}, false
	}
	return p.rect, true
}

func (p *ProcessProbe) ForegroundMatches(patterns []string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return MatchAny(patterns, p.names...)
}

// Ancestry returns process names from pid up through its parents
// A partial walk is returned alongside the error that stopped it
func Ancestry(ctx context.Context, pid int32, depth int) ([]string, error) {
	var names []string
	seen := make(map[int32]bool)

	for i := 0; i < depth && pid > 0 && !seen[pid]; i++ {
		seen[pid] = true

		proc, err := process.NewProcessWithContext(ctx, pid)
		if err != nil {
			return names, fmt.Errorf("process %d: %w", pid, err)
		}
		name, err := proc.NameWithContext(ctx)
		if err != nil {
			return names, fmt.Errorf("process %d name: %w", pid, err)
		}
		names = append(names, name)

		parent, err := proc.ParentWithContext(ctx)
		if err != nil {
			// Reaching init or a foreign session ends the walk
			return names, nil
		}
		pid = parent.Pid
	}
	return names, nil
}
