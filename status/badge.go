package status

import (
	"sync"
	"time"
)

// Badge sequences short overlay messages on the magnifier
// A new message replaces the current one; a queued message follows it
type Badge struct {
	mu      sync.Mutex
	text    string
	until   time.Time
	queued  string
	qDur    time.Duration
	hasNext bool
}

// NewBadge creates an empty badge
func NewBadge() *Badge {
	return &Badge{}
}

// Show replaces the current message; a zero duration clears the badge
func (b *Badge) Show(text string, d time.Duration, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if d <= 0 || text == "" {
		b.text, b.until = "", time.Time{}
		return
	}
	b.text, b.until = text, now.Add(d)
}

// Queue schedules text to appear once the current message expires
func (b *Badge) Queue(text string, d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queued, b.qDur, b.hasNext = text, d, true
}

// Clear drops both the current and queued message
func (b *Badge) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text, b.until = "", time.Time{}
	b.queued, b.qDur, b.hasNext = "", 0, false
}

// Text returns the message visible at now, promoting the queued one on expiry
func (b *Badge) Text(now time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.text != "" && now.Before(b.until) {
		return b.text
	}
	if b.hasNext {
		b.text, b.until = b.queued, now.Add(b.qDur)
		b.queued, b.qDur, b.hasNext = "", 0, false
		return b.text
	}
	b.text = ""
	return ""
}

// ClockLabel formats the time badge as HH:MM
func ClockLabel(now time.Time) string {
	return now.Format("15:04")
}
