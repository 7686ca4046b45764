package grid

import (
	"strings"

	"github.com/lixenwraith/housegen/core"
)

// Mask is a flat occupancy arena indexed z*W + x
type Mask struct {
	size  core.Size
	cells []bool
}

func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{size: core.Size{W: w, H: h}, cells: make([]bool, w*h)}
}

func (m *Mask) Size() core.Size { return m.size }
func (m *Mask) Width() int      { return m.size.W }
func (m *Mask) Height() int     { return m.size.H }

// Get returns false outside the grid
func (m *Mask) Get(x, z int) bool {
	if !m.size.InBounds(x, z) {
		return false
	}
	return m.cells[z*m.size.W+x]
}

// Set ignores out-of-range coordinates
func (m *Mask) Set(x, z int, v bool) {
	if !m.size.InBounds(x, z) {
		return
	}
	m.cells[z*m.size.W+x] = v
}

// FillRect sets every in-grid cell of the rectangle; the rest is clipped
func (m *Mask) FillRect(x0, z0, w, h int, v bool) {
	for z := max(z0, 0); z < min(z0+h, m.size.H); z++ {
		row := z * m.size.W
		for x := max(x0, 0); x < min(x0+w, m.size.W); x++ {
			m.cells[row+x] = v
		}
	}
}

// Count returns the number of occupied cells
func (m *Mask) Count() int {
	n := 0
	for _, c := range m.cells {
		if c {
			n++
		}
	}
	return n
}

func (m *Mask) Clone() *Mask {
	c := &Mask{size: m.size, cells: make([]bool, len(m.cells))}
	copy(c.cells, m.cells)
	return c
}

func (m *Mask) Equal(o *Mask) bool {
	if o == nil || m.size != o.size {
		return false
	}
	for i, c := range m.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Clear empties the mask
func (m *Mask) Clear() {
	clear(m.cells)
}

// Neighbors counts occupied 4-neighbors
func (m *Mask) Neighbors(x, z int) int {
	n := 0
	for _, d := range core.Neighbor4 {
		if m.Get(x+d.X, z+d.Z) {
			n++
		}
	}
	return n
}

// IsPerimeter reports an occupied cell with at least one unoccupied 4-neighbor.
// The grid boundary counts as unoccupied.
func (m *Mask) IsPerimeter(x, z int) bool {
	return m.Get(x, z) && m.Neighbors(x, z) < 4
}

// Bounds returns the bounding box of occupied cells
func (m *Mask) Bounds() (core.Area, bool) {
	minX, minZ := m.size.W, m.size.H
	maxX, maxZ := -1, -1
	for z := 0; z < m.size.H; z++ {
		for x := 0; x < m.size.W; x++ {
			if !m.cells[z*m.size.W+x] {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minZ, maxZ = min(minZ, z), max(maxZ, z)
		}
	}
	if maxX < 0 {
		return core.Area{}, false
	}
	return core.Area{X: minX, Z: minZ, Width: maxX - minX + 1, Height: maxZ - minZ + 1}, true
}

// String renders rows north (high z) first
func (m *Mask) String() string {
	var b strings.Builder
	for z := m.size.H - 1; z >= 0; z-- {
		for x := 0; x < m.size.W; x++ {
			if m.Get(x, z) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
