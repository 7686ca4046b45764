package roof

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
)

// TopmostMask marks cells of floor f with nothing occupied directly above
func TopmostMask(floors []*grid.FeatureGrid, f int) *grid.Mask {
	if f < 0 || f >= len(floors) {
		return grid.NewMask(0, 0)
	}
	cur := floors[f]
	m := cur.Mask()
	if f == len(floors)-1 {
		return m
	}
	above := floors[f+1]
	for z := 0; z < m.Height(); z++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, z) && above.Occupied(x, z) {
				m.Set(x, z, false)
			}
		}
	}
	return m
}

// Partition splits mask into disjoint rectangles whose union is exactly the mask.
// No filtering is applied; mask is not modified.
func Partition(mask *grid.Mask, floor int, strategy Strategy) []Rect {
	var areas []core.Area
	switch strategy {
	case Greedy:
		areas = greedy(mask)
	default:
		areas = carveLargest(mask)
	}
	out := make([]Rect, len(areas))
	for i, a := range areas {
		out[i] = Rect{Floor: floor, Bounds: a, RidgeAlongX: a.Width >= a.Height}
	}
	return out
}

// Decompose partitions every floor's topmost surface, drops rectangles below
// the size filters, marks one main per floor, and sorts by area descending.
// The sort is stable, so equal areas keep floor then extraction order.
func Decompose(floors []*grid.FeatureGrid, opts Options) []Rect {
	log := Logger()
	var out []Rect
	for f := range floors {
		top := TopmostMask(floors, f)
		if top.Count() == 0 {
			continue
		}
		for _, r := range Partition(top, f, opts.Strategy) {
			spanX := float64(r.Bounds.Width) * opts.CellSize.X
			spanZ := float64(r.Bounds.Height) * opts.CellSize.Z
			if r.Area() < opts.MinCells || min(spanX, spanZ) < opts.MinWorldSpan {
				log.Debug("roof rect filtered", "rect", r.Name())
				continue
			}
			out = append(out, r)
		}
	}
	MarkMains(out)
	slices.SortStableFunc(out, func(a, b Rect) int {
		return cmp.Compare(b.Area(), a.Area())
	})
	return out
}

// MarkMains flags the first largest rectangle of each floor and clears the rest
func MarkMains(rects []Rect) {
	best := map[int]int{}
	for i := range rects {
		rects[i].IsMain = false
		j, ok := best[rects[i].Floor]
		if !ok || rects[i].Area() > rects[j].Area() {
			best[rects[i].Floor] = i
		}
	}
	for _, i := range best {
		rects[i].IsMain = true
	}
}

// carveLargest repeatedly removes the largest all-true rectangle
func carveLargest(mask *grid.Mask) []core.Area {
	work := mask.Clone()
	var out []core.Area
	for work.Count() > 0 {
		a, ok := largestRect(work)
		if !ok {
			break
		}
		work.FillRect(a.X, a.Z, a.Width, a.Height, false)
		out = append(out, a)
	}
	return out
}

// largestRect finds the maximal-area all-true rectangle with the per-row
// histogram and monotonic stack. The first maximum in row-major order wins.
func largestRect(m *grid.Mask) (core.Area, bool) {
	w, h := m.Width(), m.Height()
	heights := make([]int, w)
	stack := make([]int, 0, w+1)

	var best core.Area
	bestArea := 0
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			if m.Get(x, z) {
				heights[x]++
			} else {
				heights[x] = 0
			}
		}

		stack = stack[:0]
		for i := 0; i <= w; i++ {
			cur := 0
			if i < w {
				cur = heights[i]
			}
			for len(stack) > 0 && cur < heights[stack[len(stack)-1]] {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				height := heights[top]
				left := 0
				if len(stack) > 0 {
					left = stack[len(stack)-1] + 1
				}
				width := i - left
				if area := width * height; area > bestArea {
					bestArea = area
					best = core.Area{X: left, Z: z - height + 1, Width: width, Height: height}
				}
			}
			stack = append(stack, i)
		}
	}
	return best, bestArea > 0
}

// greedy grows rectangles right, then down while rows stay available
func greedy(mask *grid.Mask) []core.Area {
	w, h := mask.Width(), mask.Height()
	used := grid.NewMask(w, h)
	free := func(x, z int) bool { return mask.Get(x, z) && !used.Get(x, z) }

	var out []core.Area
	for z := 0; z < h; z++ {
		for x := 0; x < w; x++ {
			if !free(x, z) {
				continue
			}
			width := 0
			for x+width < w && free(x+width, z) {
				width++
			}
			height := 1
			for zi := z + 1; zi < h; zi++ {
				row := 0
				for row < width && free(x+row, zi) {
					row++
				}
				if row == 0 {
					break
				}
				width = min(width, row)
				height++
			}
			used.FillRect(x, z, width, height, true)
			out = append(out, core.Area{X: x, Z: z, Width: width, Height: height})
		}
	}
	return out
}
