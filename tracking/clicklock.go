package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// ClickLock rate-limits center movement away from a recent click
// The allowed radius around the click grows linearly with time
type ClickLock struct {
	Screen    core.Point
	Source    core.FloatPoint
	HasSource bool
	At        time.Time
	Active    bool
}

// NewClickLock arms a lock at p, resolving its frame position when possible
func NewClickLock(p core.Point, at time.Time, m Mapper) ClickLock {
	c := ClickLock{Screen: p, At: at, Active: true}
	c.Source, c.HasSource = m.ScreenToSource(p)
	return c
}

// Limit clamps candidate per axis to Source ± speed*elapsed
// An anchor that cannot be mapped deactivates the lock instead
func (c ClickLock) Limit(candidate core.FloatPoint, now time.Time, m Mapper, speed float64) (core.FloatPoint, ClickLock) {
	if !c.Active {
		return candidate, c
	}

	if !c.HasSource {
		src, ok := m.ScreenToSource(c.Screen)
		if !ok {
			c.Active = false
			return candidate, c
		}
		c.Source, c.HasSource = src, true
	}

	elapsed := max(now.Sub(c.At), 0)
	limit := speed * elapsed.Seconds()
	if limit <= 0 {
		return c.Source, c
	}

	return core.FloatPoint{
		X: core.Clamp(candidate.X, c.Source.X-limit, c.Source.X+limit),
		Y: core.Clamp(candidate.Y, c.Source.Y-limit, c.Source.Y+limit),
	}, c
}
