package roof

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/vmath"
)

// Edge describes how rectangle a touches rectangle b
type Edge struct {
	Axis    Axis    // axis across which they touch
	Sign    int     // +1 when b lies on a's positive side
	Overlap float64 // shared length in world units, measured along the edge
	Cells   int     // shared length in cells
}

// SharedEdge reports whether a and b on the same floor touch with positive overlap
func SharedEdge(a, b Rect, cellSize vmath.Vec3F) (Edge, bool) {
	if a.Floor != b.Floor {
		return Edge{}, false
	}
	ab, bb := a.Bounds, b.Bounds

	if ab.MaxZ() == bb.Z || bb.MaxZ() == ab.Z {
		if n := overlap(ab.X, ab.Width, bb.X, bb.Width); n > 0 {
			sign := -1
			if ab.MaxZ() == bb.Z {
				sign = 1
			}
			return Edge{Axis: AxisZ, Sign: sign, Overlap: float64(n) * cellSize.X, Cells: n}, true
		}
	}
	if ab.MaxX() == bb.X || bb.MaxX() == ab.X {
		if n := overlap(ab.Z, ab.Height, bb.Z, bb.Height); n > 0 {
			sign := -1
			if ab.MaxX() == bb.X {
				sign = 1
			}
			return Edge{Axis: AxisX, Sign: sign, Overlap: float64(n) * cellSize.Z, Cells: n}, true
		}
	}
	return Edge{}, false
}

// edgeLength is r's own extent along an edge crossed on axis
func edgeLength(r Rect, axis Axis, cellSize vmath.Vec3F) float64 {
	if axis == AxisZ {
		return float64(r.Bounds.Width) * cellSize.X
	}
	return float64(r.Bounds.Height) * cellSize.Z
}

// ResolveJoins sets ridge orientation and join descriptors in place.
// tops[f] is floor f's topmost mask, used for the global ridge bias; a missing
// entry falls back to the main rectangle's own aspect.
func ResolveJoins(rects []Rect, tops []*grid.Mask, opts Options) {
	for _, idx := range byFloor(rects) {
		if len(idx) == 0 {
			continue
		}

		main := &rects[idx[0]]
		main.RidgeAlongX = main.Bounds.Width >= main.Bounds.Height
		main.HasJoin, main.JoinAxis, main.JoinSign = false, AxisX, 0
		if opts.PreferGlobalRidge && main.Floor < len(tops) && tops[main.Floor] != nil {
			if longX, ok := floorLongX(tops[main.Floor], opts); ok {
				main.RidgeAlongX = longX
			}
		}

		for i := 1; i < len(idx); i++ {
			small := &rects[idx[i]]
			small.RidgeAlongX = small.Bounds.Width >= small.Bounds.Height
			small.HasJoin, small.JoinAxis, small.JoinSign = false, AxisX, 0

			bestJ := -1
			var best Edge
			bestScore := -1.0
			for j := 0; j < i; j++ {
				big := rects[idx[j]]
				e, ok := SharedEdge(*small, big, opts.CellSize)
				if !ok {
					continue
				}
				score := e.Overlap
				if big.IsMain {
					score *= 10
				}
				if score > bestScore {
					bestJ, best, bestScore = idx[j], e, score
				}
			}
			if bestJ < 0 {
				continue
			}

			ratio := 0.0
			if l := edgeLength(*small, best.Axis, opts.CellSize); l > 1e-5 {
				ratio = best.Overlap / l
			}
			if best.Overlap < opts.MinSharedEdgeWorld || ratio < opts.MinJoinOverlapRatio {
				Logger().Debug("join rejected", "rect", small.Name(), "overlap", best.Overlap, "ratio", ratio)
				continue
			}

			small.HasJoin, small.JoinAxis, small.JoinSign = true, best.Axis, best.Sign
			// edge runs along the other axis; ridge turns perpendicular to a shared long edge
			if opts.OrientPerpendicular && best.Axis.Other() == rects[bestJ].LongAxis() {
				small.RidgeAlongX = best.Axis == AxisX
			}
		}
	}
}

// Layout runs Decompose then ResolveJoins
func Layout(floors []*grid.FeatureGrid, opts Options) []Rect {
	rects := Decompose(floors, opts)
	tops := make([]*grid.Mask, len(floors))
	for f := range floors {
		tops[f] = TopmostMask(floors, f)
	}
	ResolveJoins(rects, tops, opts)
	return rects
}

// byFloor groups indices per floor, each group stable-sorted by area descending,
// groups in ascending floor order
func byFloor(rects []Rect) [][]int {
	maxFloor := -1
	for _, r := range rects {
		maxFloor = max(maxFloor, r.Floor)
	}
	groups := make([][]int, maxFloor+1)
	for i, r := range rects {
		if r.Floor < 0 {
			continue
		}
		groups[r.Floor] = append(groups[r.Floor], i)
	}
	for _, g := range groups {
		slices.SortStableFunc(g, func(a, b int) int {
			return cmp.Compare(rects[b].Area(), rects[a].Area())
		})
	}
	return groups
}

// floorLongX picks the long axis of the mask's bounding box with hysteresis
func floorLongX(top *grid.Mask, opts Options) (bool, bool) {
	b, ok := top.Bounds()
	if !ok {
		return true, false
	}
	spanX := float64(b.Width) * opts.CellSize.X
	spanZ := float64(b.Height) * opts.CellSize.Z
	switch {
	case spanX >= spanZ*opts.GlobalAxisBias:
		return true, true
	case spanZ >= spanX*opts.GlobalAxisBias:
		return false, true
	default:
		return spanX >= spanZ, true
	}
}

func overlap(a0, aLen, b0, bLen int) int {
	return max(0, min(a0+aLen, b0+bLen)-max(a0, b0))
}
