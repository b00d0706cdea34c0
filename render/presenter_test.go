package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gdamore/tcell/v2"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/capture"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/tracking"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func newTestPresenter(t *testing.T, opts Options, w, h int) (*Presenter, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	p := NewPresenter(screen, opts, nil)
	if err := p.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(func() { _ = p.Stop() })
	return p, screen
}

// splitFrame is red on the left half and blue on the right
func splitFrame() *capture.Frame {
	img := imaging.New(64, 32, blue)
	img = imaging.Paste(img, imaging.New(32, 32, red), image.Pt(0, 0))
	return &capture.Frame{Image: img, Seq: 1}
}

func fullView() tracking.ViewState {
	return tracking.ViewState{SourceRegion: core.Rect{Right: 64, Bottom: 32}, Zoom: 1}
}

func cellColors(s tcell.Screen, x, y int) (rune, tcell.Color, tcell.Color) {
	ch, _, style, _ := s.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return ch, fg, bg
}

func TestPresentHalfBlocks(t *testing.T) {
	p, screen := newTestPresenter(t, DefaultOptions(), 40, 13)

	if err := p.Present(splitFrame(), fullView(), ""); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	ch, fg, bg := cellColors(screen, 0, 0)
	if ch != halfBlock {
		t.Errorf("Expected half block, got %q", ch)
	}
	if fg != rgb(red) || bg != rgb(red) {
		t.Errorf("Expected red cell on the left, got fg=%v bg=%v", fg, bg)
	}
	if _, fg, _ := cellColors(screen, 39, 11); fg != rgb(blue) {
		t.Errorf("Expected blue cell on the right, got %v", fg)
	}

	// Status line on the last row
	if ch, _, _ := cellColors(screen, 1, 12); ch != '1' {
		t.Errorf("Expected zoom in status line, got %q", ch)
	}
}

func TestPresentRegionAndInvert(t *testing.T) {
	p, screen := newTestPresenter(t, DefaultOptions(), 20, 11)

	view := tracking.ViewState{
		SourceRegion: core.Rect{Left: 32, Right: 64, Bottom: 32},
		Zoom:         2,
		InvertColors: true,
	}
	if err := p.Present(splitFrame(), view, ""); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	// Right half only, inverted blue is yellow
	yellow := tcell.NewRGBColor(255, 255, 0)
	if _, fg, _ := cellColors(screen, 0, 0); fg != yellow {
		t.Errorf("Expected inverted blue, got %v", fg)
	}
}

func TestPresentCursorAndBadge(t *testing.T) {
	p, screen := newTestPresenter(t, Options{BlockCursor: true}, 40, 12)

	view := fullView()
	view.CursorVisible = true
	view.CursorX, view.CursorY = 32, 16

	if err := p.Present(splitFrame(), view, "225%"); err != nil {
		t.Fatalf("Present failed: %v", err)
	}

	if ch, _, _ := cellColors(screen, 20, 6); ch != blockCursor {
		t.Errorf("Expected block cursor at (20,6), got %q", ch)
	}
	if ch, _, _ := cellColors(screen, 17, 1); ch != ' ' {
		t.Errorf("Expected badge padding at (17,1), got %q", ch)
	}
	if ch, _, _ := cellColors(screen, 18, 1); ch != '2' {
		t.Errorf("Expected badge text at (18,1), got %q", ch)
	}
}

func TestPresentStopped(t *testing.T) {
	p, screen := newTestPresenter(t, DefaultOptions(), 40, 10)

	if err := p.Present(nil, tracking.ViewState{}, "12:30"); err != nil {
		t.Fatalf("Present failed: %v", err)
	}
	if ch, _, _ := cellColors(screen, 11, 4); ch != 'm' {
		t.Errorf("Expected stopped message, got %q", ch)
	}
}

func TestPresentRegionOutsideFrame(t *testing.T) {
	p, _ := newTestPresenter(t, DefaultOptions(), 10, 5)
	view := tracking.ViewState{SourceRegion: core.Rect{Left: 100, Top: 100, Right: 200, Bottom: 200}}
	if err := p.Present(splitFrame(), view, ""); err == nil {
		t.Error("Expected error for region outside frame")
	}
}

func TestCursorCell(t *testing.T) {
	view := tracking.ViewState{SourceRegion: core.Rect{Left: 100, Top: 100, Right: 300, Bottom: 200}, CursorVisible: true}

	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
		ok     bool
	}{
		{"top left", 100, 100, 0, 0, true},
		{"center", 200, 150, 40, 12, true},
		{"right edge excluded", 300, 150, 0, 0, false},
		{"outside", 50, 150, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view.CursorX, view.CursorY = tt.x, tt.y
			cx, cy, ok := CursorCell(view, 80, 24)
			if ok != tt.ok || (ok && (cx != tt.cx || cy != tt.cy)) {
				t.Errorf("Expected (%d,%d,%v), got (%d,%d,%v)", tt.cx, tt.cy, tt.ok, cx, cy, ok)
			}
		})
	}
}

func TestSize(t *testing.T) {
	p, _ := newTestPresenter(t, DefaultOptions(), 33, 9)
	if got := p.Size(); got != (core.Size{Width: 33, Height: 9}) {
		t.Errorf("Expected 33x9, got %+v", got)
	}
}
