package capture

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
	"github.com/marchenkojuri1981-crypto/MAGNIFIER/event"
)

func TestSyntheticSource(t *testing.T) {
	s := NewSyntheticSource()
	if _, ok := s.Acquire(); ok {
		t.Fatal("Expected no frame before Configure")
	}

	size := core.Size{Width: 320, Height: 200}
	if err := s.Configure(size); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}
	f, ok := s.Acquire()
	if !ok || f.Size() != size {
		t.Fatalf("Expected %v frame, got %v ok=%v", size, f.Size(), ok)
	}

	// Same size keeps the frame
	_ = s.Configure(size)
	again, _ := s.Acquire()
	if again != f {
		t.Error("Expected frame reused for unchanged size")
	}

	_ = s.Configure(core.Size{Width: 640, Height: 400})
	bigger, _ := s.Acquire()
	if bigger.Seq <= f.Seq {
		t.Errorf("Expected new sequence, got %d after %d", bigger.Seq, f.Seq)
	}
}

func TestPatternTaskbar(t *testing.T) {
	img := Pattern(core.Size{Width: 400, Height: 300})
	if got := img.NRGBAAt(1, 299); got != patternTaskbar {
		t.Errorf("Expected taskbar color at bottom left, got %v", got)
	}
	if got := img.NRGBAAt(0, 0); got != patternGrid {
		t.Errorf("Expected grid line at origin, got %v", got)
	}
}

func TestFrameSizeNil(t *testing.T) {
	var f *Frame
	if !f.Size().Zero() {
		t.Error("Expected nil frame to be zero-sized")
	}
}

func writeImage(t *testing.T, path string, c color.Color) {
	t.Helper()
	if err := imaging.Save(imaging.New(64, 48, c), path); err != nil {
		t.Fatalf("save: %v", err)
	}
}

func TestFileSourceReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "desk.png")
	writeImage(t, path, color.NRGBA{R: 200, A: 255})

	s := NewFileSource(path, nil)
	var reloads []event.FramePayload
	s.OnReload = func(p event.FramePayload) { reloads = append(reloads, p) }

	if err := s.Configure(core.Size{Width: 32, Height: 24}); err != ErrNoImage {
		t.Errorf("Expected ErrNoImage before Init, got %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := s.Configure(core.Size{Width: 32, Height: 24}); err != nil {
		t.Fatalf("Configure failed: %v", err)
	}

	f, ok := s.Acquire()
	if !ok || f.Size() != (core.Size{Width: 32, Height: 24}) {
		t.Fatalf("Expected 32x24 frame, got %v ok=%v", f.Size(), ok)
	}

	// Identical content is filtered by the perceptual hash
	changed, err := s.Reload()
	if err != nil || changed {
		t.Errorf("Expected unchanged reload, got changed=%v err=%v", changed, err)
	}
	if len(reloads) != 0 {
		t.Errorf("Expected no reload callback, got %d", len(reloads))
	}

	// A half/half image hashes differently from a flat one
	img := imaging.New(64, 48, color.White)
	img = imaging.Paste(img, imaging.New(32, 48, color.Black), image.Pt(0, 0))
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	changed, err = s.Reload()
	if err != nil || !changed {
		t.Fatalf("Expected changed reload, got changed=%v err=%v", changed, err)
	}
	if len(reloads) != 1 || reloads[0].Distance == 0 {
		t.Errorf("Expected one reload with a hash distance, got %+v", reloads)
	}
	next, _ := s.Acquire()
	if next.Seq <= f.Seq {
		t.Error("Expected a newer frame after reload")
	}
}

func TestFileSourceMissing(t *testing.T) {
	s := NewFileSource(filepath.Join(t.TempDir(), "missing.png"), nil)
	if err := s.Init(); err == nil {
		t.Error("Expected error for missing file")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected Stop without Start to succeed, got %v", err)
	}
}

func TestNewSource(t *testing.T) {
	if _, ok := NewSource("", nil).(*SyntheticSource); !ok {
		t.Error("Expected synthetic source for empty name")
	}
	if _, ok := NewSource("Synthetic", nil).(*SyntheticSource); !ok {
		t.Error("Expected synthetic source by name")
	}
	if _, ok := NewSource("/tmp/x.png", nil).(*FileSource); !ok {
		t.Error("Expected file source for a path")
	}
}
