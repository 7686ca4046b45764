package grid

// Run is a maximal contiguous span of occupied cells along a row or column
type Run struct {
	Start, Len int
}

// End is the exclusive end of the run
func (r Run) End() int { return r.Start + r.Len }

// Mid is the midpoint cell index
func (r Run) Mid() int { return r.Start + r.Len/2 }

// ExtremeZ returns the highest (north) or lowest occupied row
func (m *Mask) ExtremeZ(north bool) (int, bool) {
	if north {
		for z := m.size.H - 1; z >= 0; z-- {
			if m.rowOccupied(z) {
				return z, true
			}
		}
		return 0, false
	}
	for z := 0; z < m.size.H; z++ {
		if m.rowOccupied(z) {
			return z, true
		}
	}
	return 0, false
}

// ExtremeX returns the highest (east) or lowest occupied column
func (m *Mask) ExtremeX(east bool) (int, bool) {
	if east {
		for x := m.size.W - 1; x >= 0; x-- {
			if m.colOccupied(x) {
				return x, true
			}
		}
		return 0, false
	}
	for x := 0; x < m.size.W; x++ {
		if m.colOccupied(x) {
			return x, true
		}
	}
	return 0, false
}

// RowRuns lists occupied spans along X in row z, west to east
func (m *Mask) RowRuns(z int) []Run {
	return collectRuns(m.size.W, func(i int) bool { return m.Get(i, z) })
}

// ColRuns lists occupied spans along Z in column x, south to north
func (m *Mask) ColRuns(x int) []Run {
	return collectRuns(m.size.H, func(i int) bool { return m.Get(x, i) })
}

// EdgeRuns finds the extreme occupied row/column on side s and its runs.
// edge is the z (north/south) or x (east/west) of that line.
func (m *Mask) EdgeRuns(s Side) (edge int, runs []Run, ok bool) {
	switch s {
	case North, South:
		edge, ok = m.ExtremeZ(s == North)
		if ok {
			runs = m.RowRuns(edge)
		}
	case East, West:
		edge, ok = m.ExtremeX(s == East)
		if ok {
			runs = m.ColRuns(edge)
		}
	}
	return edge, runs, ok && len(runs) > 0
}

// Widest returns the longest run, first on ties
func Widest(runs []Run) (Run, bool) {
	if len(runs) == 0 {
		return Run{}, false
	}
	best := runs[0]
	for _, r := range runs[1:] {
		if r.Len > best.Len {
			best = r
		}
	}
	return best, true
}

func (m *Mask) rowOccupied(z int) bool {
	for x := 0; x < m.size.W; x++ {
		if m.cells[z*m.size.W+x] {
			return true
		}
	}
	return false
}

func (m *Mask) colOccupied(x int) bool {
	for z := 0; z < m.size.H; z++ {
		if m.cells[z*m.size.W+x] {
			return true
		}
	}
	return false
}

func collectRuns(n int, occupied func(int) bool) []Run {
	var runs []Run
	start := -1
	for i := 0; i <= n; i++ {
		on := i < n && occupied(i)
		switch {
		case on && start < 0:
			start = i
		case !on && start >= 0:
			runs = append(runs, Run{Start: start, Len: i - start})
			start = -1
		}
	}
	return runs
}
