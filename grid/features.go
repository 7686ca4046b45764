package grid

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/housegen/core"
)

// FeatureGrid is one floor's authored cell content, flat arena z*W + x
type FeatureGrid struct {
	size  core.Size
	cells []Feature
}

func NewFeatureGrid(w, h int) *FeatureGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &FeatureGrid{size: core.Size{W: w, H: h}, cells: make([]Feature, w*h)}
}

// FromMask builds a grid with f on every occupied cell
func FromMask(m *Mask, f Feature) *FeatureGrid {
	g := NewFeatureGrid(m.Width(), m.Height())
	for i, c := range m.cells {
		if c {
			g.cells[i] = f
		}
	}
	return g
}

func (g *FeatureGrid) Size() core.Size { return g.size }
func (g *FeatureGrid) Width() int      { return g.size.W }
func (g *FeatureGrid) Height() int     { return g.size.H }

// Get returns Empty outside the grid
func (g *FeatureGrid) Get(x, z int) Feature {
	if !g.size.InBounds(x, z) {
		return Empty
	}
	return g.cells[z*g.size.W+x]
}

func (g *FeatureGrid) Set(x, z int, f Feature) {
	if !g.size.InBounds(x, z) {
		return
	}
	g.cells[z*g.size.W+x] = f
}

// Occupied reports feature != Empty
func (g *FeatureGrid) Occupied(x, z int) bool {
	return g.Get(x, z) != Empty
}

// Mask derives the occupancy mask
func (g *FeatureGrid) Mask() *Mask {
	m := NewMask(g.size.W, g.size.H)
	for i, f := range g.cells {
		m.cells[i] = f != Empty
	}
	return m
}

// Count returns cells holding f
func (g *FeatureGrid) Count(f Feature) int {
	n := 0
	for _, c := range g.cells {
		if c == f {
			n++
		}
	}
	return n
}

func (g *FeatureGrid) Clone() *FeatureGrid {
	c := &FeatureGrid{size: g.size, cells: make([]Feature, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

func (g *FeatureGrid) Equal(o *FeatureGrid) bool {
	if o == nil || g.size != o.size {
		return false
	}
	for i, c := range g.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Clear sets every cell to Empty
func (g *FeatureGrid) Clear() {
	clear(g.cells)
}

// Resized returns a w×h copy keeping the overlapping region
func (g *FeatureGrid) Resized(w, h int) *FeatureGrid {
	r := NewFeatureGrid(w, h)
	for z := 0; z < min(h, g.size.H); z++ {
		for x := 0; x < min(w, g.size.W); x++ {
			r.cells[z*w+x] = g.cells[z*g.size.W+x]
		}
	}
	return r
}

// Rows renders the grid as glyph rows, north (high z) first
func (g *FeatureGrid) Rows() []string {
	rows := make([]string, 0, g.size.H)
	for z := g.size.H - 1; z >= 0; z-- {
		var b strings.Builder
		for x := 0; x < g.size.W; x++ {
			b.WriteRune(g.Get(x, z).Glyph())
		}
		rows = append(rows, b.String())
	}
	return rows
}

func (g *FeatureGrid) String() string {
	return strings.Join(g.Rows(), "\n") + "\n"
}

// ParseRows builds a grid from glyph rows, first row north.
// Short rows are padded with Empty; width is the longest row.
func ParseRows(rows []string) (*FeatureGrid, error) {
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	h := len(rows)
	g := NewFeatureGrid(w, h)
	for i, r := range rows {
		z := h - 1 - i
		for x, ch := range []rune(r) {
			f, ok := ParseGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("row %d col %d: unknown glyph %q", i, x, ch)
			}
			g.Set(x, z, f)
		}
	}
	return g, nil
}
