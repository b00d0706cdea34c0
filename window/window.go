// Package window describes foreground windows and matches them against
// user-configured name patterns.
package window

import (
	"strings"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

// Window is a top-level window in screen coordinates
type Window struct {
	Title   string    `toml:"title"`
	Class   string    `toml:"class"`
	Process string    `toml:"process"`
	Rect    core.Rect `toml:"rect"`
}

// Matches reports whether any pattern occurs in the title, class or process name
func (w Window) Matches(patterns []string) bool {
	return MatchAny(patterns, w.Title, w.Class, w.Process)
}

// MatchAny reports whether any non-empty pattern is a case-insensitive substring of any text
func MatchAny(patterns []string, texts ...string) bool {
	for _, text := range texts {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, p := range patterns {
			p = strings.TrimSpace(p)
			if p != "" && strings.Contains(lower, strings.ToLower(p)) {
				return true
			}
		}
	}
	return false
}
