package tracking

import (
	"testing"
	"time"

	"github.com/marchenkojuri1981-crypto/MAGNIFIER/core"
)

func TestMessengerClamp(t *testing.T) {
	zone := MessengerZone{Rect: core.FloatRect{Left: 800, Top: 900, Right: 1900, Bottom: 1070}, Active: true}
	candidate := core.FloatPoint{X: 2000, Y: 1100}

	t.Run("range empty at zoom 2", func(t *testing.T) {
		// Valid y range is [270,810], which misses the zone entirely
		got, z := zone.Clamp(candidate, NewExtent(fullHD, 2))
		if z.Active {
			t.Error("Expected zone to deactivate")
		}
		if got != candidate {
			t.Errorf("Expected candidate untouched, got %v", got)
		}
	})

	t.Run("clamped to zone edge", func(t *testing.T) {
		got, z := zone.Clamp(candidate, NewExtent(core.Size{Width: 3840, Height: 2160}, 2))
		if !z.Active {
			t.Fatal("Expected zone to stay active")
		}
		if got != (core.FloatPoint{X: 1900, Y: 1070}) {
			t.Errorf("Expected (1900,1070), got %v", got)
		}
	})

	t.Run("clamped to view range", func(t *testing.T) {
		// View 240x135: x limited by frame at 1800, y by frame at 1012.5
		got, z := zone.Clamp(candidate, NewExtent(fullHD, 8))
		if !z.Active {
			t.Fatal("Expected zone to stay active")
		}
		if got != (core.FloatPoint{X: 1800, Y: 1012.5}) {
			t.Errorf("Expected (1800,1012.5), got %v", got)
		}
	})
}

func TestArmMessengerZone(t *testing.T) {
	tests := []struct {
		name  string
		click core.Point
		armed bool
	}{
		{"input box", core.Point{X: 1000, Y: 1000}, true},
		{"strip top row", core.Point{X: 1000, Y: 972}, true},
		{"above strip", core.Point{X: 1000, Y: 971}, false},
		{"left quarter", core.Point{X: 479, Y: 1000}, false},
		{"off monitor", core.Point{X: 2000, Y: 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := ArmMessengerZone(tt.click, unitMap, 0.1, 0.25)
			if ok != tt.armed || z.Active != tt.armed {
				t.Fatalf("Expected armed=%v, got ok=%v active=%v", tt.armed, ok, z.Active)
			}
			if !ok {
				return
			}
			want := core.FloatRect{Left: 480, Top: 972, Right: 1919, Bottom: 1079}
			if z.Rect != want {
				t.Errorf("Expected rect %v, got %v", want, z.Rect)
			}
			if z.Anchor != tt.click {
				t.Errorf("Expected anchor %v, got %v", tt.click, z.Anchor)
			}
		})
	}
}

func TestArmMessengerZoneTinyMonitor(t *testing.T) {
	m := Mapper{Bounds: core.Rect{Right: 8, Bottom: 4}, Scale: 1}
	// round(0.4) is 0, so the strip falls back to 1 px
	z, ok := ArmMessengerZone(core.Point{X: 5, Y: 3}, m, 0.1, 0.25)
	if !ok {
		t.Fatal("Expected zone on a 1 px strip")
	}
	if z.Rect != (core.FloatRect{Left: 2, Top: 3, Right: 7, Bottom: 3}) {
		t.Errorf("Unexpected rect %v", z.Rect)
	}
}

func TestMessengerRelease(t *testing.T) {
	z := MessengerZone{Anchor: core.Point{X: 1000, Y: 1000}, Active: true}

	if got := z.Release(core.Point{X: 1010, Y: 990}, 10); !got.Active {
		t.Error("Expected zone kept within 10 px")
	}
	if got := z.Release(core.Point{X: 1011, Y: 1000}, 10); got.Active {
		t.Error("Expected zone released past 10 px on x")
	}
	if got := z.Release(core.Point{X: 1000, Y: 989}, 10); got.Active {
		t.Error("Expected zone released past 10 px on y")
	}
}

func TestTerminalAnchorLifecycle(t *testing.T) {
	probe := &stubProbe{rect: core.Rect{Left: 100, Top: 500, Right: 900, Bottom: 1001}, hasRect: true}
	ext := NewExtent(fullHD, 2)

	a := TerminalAnchor{}.Press(at(0))
	a = a.Resample(probe, []string{"putty"}, unitMap)
	if !a.HasAnchor || a.Source != (core.FloatPoint{X: 100, Y: 1000}) {
		t.Fatalf("Expected anchor (100,1000), got %+v", a)
	}

	a = a.Engage(at(999), time.Second)
	if a.Aligned {
		t.Fatal("Expected no alignment before the hold threshold")
	}

	a = a.Engage(at(1200), time.Second)
	center, ok := a.Align(ext)
	if !ok {
		t.Fatal("Expected alignment after 1200ms")
	}
	if center != (core.FloatPoint{X: 580, Y: 730}) {
		t.Errorf("Expected (580,730), got %v", center)
	}
	if !a.Suppressed(at(1200)) {
		t.Error("Expected signals suppressed while aligned")
	}

	a = a.Release(at(1300), 500*time.Millisecond)
	if a.Aligned || a.KeyDown {
		t.Fatal("Expected release to disengage")
	}
	if !a.Suppressed(at(1799)) {
		t.Error("Expected signals suppressed during the ignore window")
	}
	if a.Suppressed(at(1800)) {
		t.Error("Expected suppression to end at the ignore deadline")
	}

	if a = a.Expire(at(1500)); !a.HasAnchor {
		t.Error("Expected anchor kept inside the ignore window")
	}
	if a = a.Expire(at(1800)); a.HasAnchor {
		t.Error("Expected anchor forgotten after the ignore window")
	}
}

func TestTerminalAlignClampsEdges(t *testing.T) {
	ext := NewExtent(fullHD, 2)
	a := TerminalAnchor{Source: core.FloatPoint{X: 1800, Y: 100}, HasAnchor: true, Aligned: true}

	center, ok := a.Align(ext)
	if !ok {
		t.Fatal("Expected alignment")
	}
	// left clamps to 960, bottom clamps to 540
	if center != (core.FloatPoint{X: 1440, Y: 270}) {
		t.Errorf("Expected (1440,270), got %v", center)
	}
}

func TestTerminalNeedsMatchingWindow(t *testing.T) {
	probe := &stubProbe{}
	a := TerminalAnchor{}.Press(at(0))
	a = a.Resample(probe, []string{"putty"}, unitMap)
	a = a.Engage(at(5000), time.Second)
	if a.Aligned {
		t.Error("Expected no alignment without a terminal window")
	}
}

func TestExtentRegion(t *testing.T) {
	ext := NewExtent(fullHD, 2)
	got := ext.Region(core.FloatPoint{X: 504, Y: 500})
	want := core.Rect{Left: 24, Top: 230, Right: 984, Bottom: 770}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	full := NewExtent(fullHD, 1)
	if got := full.Region(full.ClampCenter(core.FloatPoint{X: 3, Y: 3})); got != (core.Rect{Right: 1920, Bottom: 1080}) {
		t.Errorf("Expected full frame at zoom 1, got %v", got)
	}
}

func TestRegionAlwaysInsideFrame(t *testing.T) {
	frames := []core.Size{{Width: 1920, Height: 1080}, {Width: 1366, Height: 768}, {Width: 7, Height: 5}}
	zooms := []float64{1, 1.25, 2.25, 3.7, 7.75, 12}
	centers := []core.FloatPoint{
		{X: -500, Y: -500}, {X: 0, Y: 0}, {X: 0.3, Y: 1079.9},
		{X: 683.5, Y: 384.25}, {X: 1919.99, Y: 0.01}, {X: 5000, Y: 5000},
	}

	for _, f := range frames {
		for _, z := range zooms {
			ext := NewExtent(f, z)
			for _, c := range centers {
				r := ext.Region(ext.ClampCenter(c))
				if r.Left < 0 || r.Top < 0 || r.Right > f.Width || r.Bottom > f.Height {
					t.Errorf("frame %v zoom %v center %v: region %v escapes frame", f, z, c, r)
				}
				if r.Width() < int(ext.Width)-1 || r.Height() < int(ext.Height)-1 {
					t.Errorf("frame %v zoom %v center %v: region %v smaller than view", f, z, c, r)
				}
			}
		}
	}
}
