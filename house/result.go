package house

import (
	"fmt"

	"github.com/lixenwraith/housegen/classify"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/mesh"
	"github.com/lixenwraith/housegen/roof"
	"github.com/lixenwraith/housegen/vmath"
)

// Result is one complete generation. Pieces[i] is built from Rects[i];
// pieces may be shared between structurally identical rectangles.
type Result struct {
	Seed     int64
	CellSize vmath.Vec3F
	Floors   []*grid.FeatureGrid
	Cells    [][]classify.CellDescriptor
	Rects    []roof.Rect
	Pieces   []*mesh.Piece
}

// Report returns one line per rectangle in result order
func (r *Result) Report() []string {
	lines := make([]string, len(r.Rects))
	for i, rect := range r.Rects {
		lines[i] = fmt.Sprintf("[%d] %s", i, rect)
	}
	return lines
}

// Placements flattens every instantiable cell into a piece placement, ground
// floor first
func (r *Result) Placements() []classify.Placement {
	var out []classify.Placement
	for _, floor := range r.Cells {
		for _, c := range floor {
			if p, ok := classify.Place(c, r.CellSize); ok {
				out = append(out, p)
			}
		}
	}
	return out
}
