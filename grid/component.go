package grid

import "github.com/lixenwraith/housegen/core"

// Labels assigns a component id to every occupied cell via 4-connected flood fill.
// Unoccupied cells get -1. Ids follow row-major discovery order.
func (m *Mask) Labels() (labels []int, sizes []int) {
	w, h := m.size.W, m.size.H
	labels = make([]int, len(m.cells))
	for i := range labels {
		labels[i] = -1
	}

	qx := make([]int, 0, len(m.cells))
	qz := make([]int, 0, len(m.cells))

	id := 0
	for z := range h {
		for x := range w {
			idx := z*w + x
			if !m.cells[idx] || labels[idx] != -1 {
				continue
			}
			labels[idx] = id
			size := 0
			qx = append(qx[:0], x)
			qz = append(qz[:0], z)

			for len(qx) > 0 {
				cx, cz := qx[0], qz[0]
				qx, qz = qx[1:], qz[1:]
				size++

				for _, d := range core.Neighbor4 {
					nx, nz := cx+d.X, cz+d.Z
					if !m.size.InBounds(nx, nz) {
						continue
					}
					nidx := nz*w + nx
					if m.cells[nidx] && labels[nidx] == -1 {
						labels[nidx] = id
						qx = append(qx, nx)
						qz = append(qz, nz)
					}
				}
			}
			sizes = append(sizes, size)
			id++
		}
	}
	return labels, sizes
}

// ComponentCount returns the number of 4-connected components
func (m *Mask) ComponentCount() int {
	_, sizes := m.Labels()
	return len(sizes)
}

// IsConnected reports at most one component; an empty mask is connected
func (m *Mask) IsConnected() bool {
	return m.ComponentCount() <= 1
}

// KeepLargest clears every component except the largest (first found on ties).
// Returns the number of cells removed.
func (m *Mask) KeepLargest() int {
	labels, sizes := m.Labels()
	if len(sizes) <= 1 {
		return 0
	}
	best := 0
	for i, s := range sizes {
		if s > sizes[best] {
			best = i
		}
	}
	removed := 0
	for i, l := range labels {
		if l >= 0 && l != best {
			m.cells[i] = false
			removed++
		}
	}
	return removed
}
