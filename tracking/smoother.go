package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// State is the center-of-view state threaded through the tick pipeline
type State struct {
	Center    core.FloatPoint
	HasCenter bool
	History   History
	Click     ClickLock
	Zone      MessengerZone
	Anchor    TerminalAnchor
}

// Smoother moves the center toward a target
// Caret targets and the first target snap; everything else glides with a dead zone
type Smoother struct {
	DeadZone         float64
	Factor           float64
	HistoryThreshold float64
	HistoryCooldown  time.Duration
	ClickSpeed       float64
}

// Step applies one tick of movement
// Without a center the view snaps to target, or to fallback when there is no target
func (s Smoother) Step(st State, target Target, have bool, fallback core.FloatPoint, now time.Time, m Mapper) State {
	if !st.HasCenter {
		to := fallback
		if have {
			to = target.Point
		}
		return s.Snap(st, to, true, now, m)
	}
	if !have {
		return st
	}
	if target.Kind == TargetCaret {
		return s.Snap(st, target.Point, true, now, m)
	}
	return s.Glide(st, target.Point, now, m)
}

// Snap jumps the center to the destination, optionally through the click lock
func (s Smoother) Snap(st State, to core.FloatPoint, limited bool, now time.Time, m Mapper) State {
	if limited {
		to, st.Click = st.Click.Limit(to, now, m, s.ClickSpeed)
	}
	if !st.HasCenter {
		st.Center, st.HasCenter = to, true
		return st
	}

	st.History = st.History.Record(st.Center, st.Center.Dist(to), now, s.HistoryThreshold, s.HistoryCooldown)
	st.Center = to
	return st
}

// Glide covers Factor of the remaining distance unless the target is inside the dead zone
func (s Smoother) Glide(st State, to core.FloatPoint, now time.Time, m Mapper) State {
	distance := st.Center.Dist(to)
	if distance <= s.DeadZone {
		return st
	}

	st.History = st.History.Record(st.Center, distance, now, s.HistoryThreshold, s.HistoryCooldown)

	next := core.FloatPoint{
		X: st.Center.X + (to.X-st.Center.X)*s.Factor,
		Y: st.Center.Y + (to.Y-st.Center.Y)*s.Factor,
	}
	st.Center, st.Click = st.Click.Limit(next, now, m, s.ClickSpeed)
	return st
}
