package tracking

import (
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// History is a one-slot undo buffer of the center before the last large jump
type History struct {
	Center  core.FloatPoint
	Valid   bool
	SavedAt time.Time
}

// Record saves center when a move of distance reaches threshold and the cooldown has passed
func (h History) Record(center core.FloatPoint, distance float64, now time.Time, threshold float64, cooldown time.Duration) History {
	if distance < threshold {
		return h
	}
	if h.Valid && now.Sub(h.SavedAt) < cooldown {
		return h
	}
	return History{Center: center, Valid: true, SavedAt: now}
}
