package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"plus":      '+',
	"minus":     '-',
	"equal":     '=',
	"backslash": '\\',
}

// keysByName indexes tcell key names case-insensitively ("ctrl-c", "f2", "enter")
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses key -> action bindings into a sparse override table
// Single characters and aliases bind Alt+rune; other names bind special keys
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Runes: make(map[rune]Binding),
		Keys:  make(map[tcell.Key]Binding),
	}

	for keyStr, action := range bindings {
		b, ok := ActionBinding(action)
		if !ok {
			return nil, fmt.Errorf("hotkey %q: unknown action: %q", keyStr, action)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[lowerRune(r)] = b
			continue
		}

		name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(keyStr)), "+", "-")
		k, ok := keysByName[name]
		if !ok {
			return nil, fmt.Errorf("hotkey %q: unknown key name", keyStr)
		}
		kt.Keys[k] = b
	}

	return kt, nil
}

// resolveRune converts a config key to a rune; accepts single characters and aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// MergeKeyTable returns base overridden by override; "none" bindings delete the key
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}

	for k, v := range override.Runes {
		if v.None() {
			delete(result.Runes, k)
		} else {
			result.Runes[k] = v
		}
	}
	for k, v := range override.Keys {
		if v.None() {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = v
		}
	}
	return result
}
