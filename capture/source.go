package capture

import (
	"log/slog"
	"strings"
)

// SyntheticName selects the built-in test pattern
const SyntheticName = "synthetic"

// NewSource returns the pattern source for "synthetic" or "", else a file source
func NewSource(name string, logger *slog.Logger) Source {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, SyntheticName) {
		return NewSyntheticSource()
	}
	return NewFileSource(name, logger)
}
