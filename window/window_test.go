package window

import (
	"context"
	"os"
	"testing"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/parameter"
)

var desk = []Window{
	{Title: "notes.txt - Editor", Class: "Notepad", Process: "notepad.exe", Rect: core.Rect{Left: 100, Top: 100, Right: 900, Bottom: 700}},
	{Title: "root@host: ~", Class: "PuTTY", Process: "putty.exe", Rect: core.Rect{Left: 200, Top: 500, Right: 1200, Bottom: 1000}},
	{Title: "Family chat", Class: "Chrome_WidgetWin_1", Process: "WhatsApp.exe"},
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		texts    []string
		want     bool
	}{
		{"case insensitive", []string{"PUTTY"}, []string{"putty.exe"}, true},
		{"substring", []string{"tele"}, []string{"Telegram Desktop"}, true},
		{"any text", []string{"whatsapp"}, []string{"", "WhatsApp.exe"}, true},
		{"blank pattern ignored", []string{"  "}, []string{"anything"}, false},
		{"no patterns", nil, []string{"putty"}, false},
		{"no match", parameter.DefaultMessengerPatterns, []string{"notepad.exe"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchAny(tt.patterns, tt.texts...); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStaticProbe(t *testing.T) {
	p := NewStaticProbe(desk)
	terms := parameter.DefaultTerminalPatterns

	if p.ForegroundMatches(terms) {
		t.Error("Expected editor not to match terminal patterns")
	}

	if !p.Focus("ROOT@") {
		t.Fatal("Expected Focus to find the terminal")
	}
	r, ok := p.ForegroundRect(terms)
	if !ok || r != desk[1].Rect {
		t.Errorf("Expected terminal rect %+v, got %+v ok=%v", desk[1].Rect, r, ok)
	}

	w, _ := p.Cycle()
	if w.Process != "WhatsApp.exe" {
		t.Errorf("Expected messenger after cycle, got %q", w.Process)
	}
	if !p.ForegroundMatches(parameter.DefaultMessengerPatterns) {
		t.Error("Expected messenger match")
	}
	if _, ok := p.ForegroundRect(parameter.DefaultMessengerPatterns); ok {
		t.Error("Expected no rect for a window without geometry")
	}

	w, _ = p.Cycle()
	if w.Class != "Notepad" {
		t.Errorf("Expected cycle to wrap, got %q", w.Class)
	}

	if p.Focus("missing") {
		t.Error("Expected Focus to fail for unknown title")
	}
}

func TestEmptyStaticProbe(t *testing.T) {
	p := NewStaticProbe(nil)
	if _, ok := p.Foreground(); ok {
		t.Error("Expected no foreground window")
	}
	if _, ok := p.Cycle(); ok {
		t.Error("Expected cycle on empty probe to fail")
	}
}

func TestProcessProbeMatching(t *testing.T) {
	rect := core.Rect{Left: 0, Top: 540, Right: 960, Bottom: 1080}
	p := NewProcessProbe(rect)
	p.names = []string{"magnifier", "bash", "putty"}

	if got, ok := p.ForegroundRect([]string{"PuTTY"}); !ok || got != rect {
		t.Errorf("Expected terminal rect, got %+v ok=%v", got, ok)
	}
	if p.ForegroundMatches([]string{"telegram"}) {
		t.Error("Expected no messenger match")
	}

	p.SetRect(core.Rect{})
	if _, ok := p.ForegroundRect([]string{"putty"}); ok {
		t.Error("Expected no rect without geometry")
	}
}

func TestAncestry(t *testing.T) {
	names, err := Ancestry(context.Background(), int32(os.Getpid()), maxAncestry)
	if len(names) == 0 {
		t.Skipf("process table unavailable: %v", err)
	}
	if len(names) > maxAncestry {
		t.Errorf("Expected at most %d names, got %d", maxAncestry, len(names))
	}

	p := NewProcessProbe(core.Rect{})
	if err := p.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if got := p.Names(); len(got) == 0 || got[0] != names[0] {
		t.Errorf("Expected cached ancestry starting with %q, got %v", names[0], got)
	}
}

func TestMultiProbe(t *testing.T) {
	static := NewStaticProbe(desk)
	proc := NewProcessProbe(core.Rect{Right: 10, Bottom: 10})
	proc.names = []string{"putty"}

	m := MultiProbe{nil, static, proc}
	r, ok := m.ForegroundRect([]string{"putty"})
	if !ok || r != proc.rect {
		t.Errorf("Expected process probe rect, got %+v ok=%v", r, ok)
	}
	if !m.ForegroundMatches([]string{"notepad"}) {
		t.Error("Expected static probe match")
	}
	if m.ForegroundMatches([]string{"telegram"}) {
		t.Error("Expected no match")
	}
}
