package grid

import (
	"testing"

	"github.com/lixenwraith/housegen/core"
)

func TestFillRectClamps(t *testing.T) {
	m := NewMask(4, 3)
	m.FillRect(-2, -1, 4, 3, true)
	if got := m.Count(); got != 4 {
		t.Fatalf("Count() = %d, want 4", got)
	}
	if !m.Get(0, 0) || !m.Get(1, 1) || m.Get(2, 0) {
		t.Errorf("unexpected fill:\n%s", m)
	}
	m.FillRect(3, 2, 10, 10, true)
	if !m.Get(3, 2) || m.Count() != 5 {
		t.Errorf("corner fill failed:\n%s", m)
	}
	if m.Get(-1, 0) || m.Get(4, 2) {
		t.Error("out-of-range Get must be false")
	}
}

func TestComponents(t *testing.T) {
	m := NewMask(6, 3)
	m.FillRect(0, 0, 2, 2, true) // 4 cells
	m.FillRect(3, 0, 3, 3, true) // 9 cells
	m.Set(5, 0, false)           // 8 cells

	if m.IsConnected() {
		t.Fatal("two islands reported connected")
	}
	if n := m.ComponentCount(); n != 2 {
		t.Fatalf("ComponentCount() = %d, want 2", n)
	}
	removed := m.KeepLargest()
	if removed != 4 {
		t.Errorf("KeepLargest removed %d, want 4", removed)
	}
	if !m.IsConnected() || m.Count() != 8 {
		t.Errorf("after repair: connected=%v count=%d", m.IsConnected(), m.Count())
	}
}

func TestDiagonalIsNotConnected(t *testing.T) {
	m := NewMask(2, 2)
	m.Set(0, 0, true)
	m.Set(1, 1, true)
	if m.IsConnected() {
		t.Error("diagonal cells must not be 4-connected")
	}
	if NewMask(3, 3).ComponentCount() != 0 {
		t.Error("empty mask must have no components")
	}
}

func TestEdgeRuns(t *testing.T) {
	m := NewMask(8, 4)
	m.FillRect(0, 0, 8, 2, true)
	m.FillRect(1, 2, 2, 2, true)
	m.FillRect(5, 3, 3, 1, true)

	edge, runs, ok := m.EdgeRuns(North)
	if !ok || edge != 3 {
		t.Fatalf("north edge = %d ok=%v", edge, ok)
	}
	want := []Run{{1, 2}, {5, 3}}
	if len(runs) != len(want) || runs[0] != want[0] || runs[1] != want[1] {
		t.Fatalf("runs = %v, want %v", runs, want)
	}
	if w, _ := Widest(runs); w != (Run{5, 3}) {
		t.Errorf("Widest = %v", w)
	}

	edge, runs, ok = m.EdgeRuns(West)
	if !ok || edge != 0 || len(runs) != 1 || runs[0] != (Run{0, 2}) {
		t.Errorf("west edge=%d runs=%v", edge, runs)
	}

	if _, _, ok := NewMask(3, 3).EdgeRuns(South); ok {
		t.Error("empty mask has no edge")
	}
}

func TestWidestTieKeepsFirst(t *testing.T) {
	w, ok := Widest([]Run{{0, 2}, {4, 2}})
	if !ok || w.Start != 0 {
		t.Errorf("Widest = %v", w)
	}
}

func TestPerimeter(t *testing.T) {
	m := NewMask(3, 3)
	m.FillRect(0, 0, 3, 3, true)
	if m.IsPerimeter(1, 1) {
		t.Error("center of a 3x3 block is interior")
	}
	if !m.IsPerimeter(0, 1) || !m.IsPerimeter(2, 2) {
		t.Error("edge cells on the grid boundary are perimeter")
	}
}

func TestBounds(t *testing.T) {
	m := NewMask(6, 6)
	if _, ok := m.Bounds(); ok {
		t.Fatal("empty mask has no bounds")
	}
	m.Set(1, 4, true)
	m.Set(3, 2, true)
	got, _ := m.Bounds()
	if got != (core.Area{X: 1, Z: 2, Width: 3, Height: 3}) {
		t.Errorf("Bounds() = %+v", got)
	}
}

func TestParseRowsRoundTrip(t *testing.T) {
	rows := []string{
		"..##",
		"#WD#",
	}
	g, err := ParseRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 4 || g.Height() != 2 {
		t.Fatalf("size = %dx%d", g.Width(), g.Height())
	}
	// first row is north (z = 1)
	if g.Get(2, 1) != Wall || g.Get(0, 1) != Empty {
		t.Error("north row misplaced")
	}
	if g.Get(1, 0) != Window || g.Get(2, 0) != Door {
		t.Error("south row misplaced")
	}
	got := g.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
	if _, err := ParseRows([]string{"#x"}); err == nil {
		t.Error("expected unknown glyph error")
	}
}

func TestResizedPreservesOverlap(t *testing.T) {
	g := NewFeatureGrid(3, 3)
	g.Set(0, 0, Wall)
	g.Set(2, 2, Door)
	r := g.Resized(2, 4)
	if r.Get(0, 0) != Wall {
		t.Error("overlap lost")
	}
	if r.Count(Door) != 0 {
		t.Error("cropped cell survived")
	}
	if r.Width() != 2 || r.Height() != 4 {
		t.Errorf("size = %dx%d", r.Width(), r.Height())
	}
}

func TestSideOpposite(t *testing.T) {
	for _, s := range []Side{North, South, East, West} {
		if s.Opposite().Opposite() != s {
			t.Errorf("%v opposite not involutive", s)
		}
	}
	if s, err := ParseSide("east"); err != nil || s != East {
		t.Errorf("ParseSide(east) = %v, %v", s, err)
	}
	if _, err := ParseSide("up"); err == nil {
		t.Error("expected error")
	}
}
