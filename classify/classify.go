// Package classify derives per-cell structural roles and outward directions
// from floor feature grids.
package classify

import (
	"github.com/lixenwraith/housegen/core"
	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/vmath"
)

// CellDescriptor is the classification of one occupied cell.
// Neighbors holds coordinates of occupied 4-neighbors in W, S, N, E order.
type CellDescriptor struct {
	Cell      core.Cell
	Floor     int
	World     vmath.Vec3F
	Direction vmath.Vec3F
	Role      Role
	Feature   grid.Feature
	Neighbors []core.Cell
}

// Instantiable reports whether the cell receives a wall piece
func (c CellDescriptor) Instantiable() bool {
	return c.Role != Internal && c.Role != Empty
}

// Classify computes role and outward direction of cell (x, z).
// Direction sums unit vectors toward each missing neighbor; corners use the diagonal.
func Classify(g *grid.FeatureGrid, x, z int) (Role, vmath.Vec3F) {
	n := g.Occupied(x, z+1)
	s := g.Occupied(x, z-1)
	e := g.Occupied(x+1, z)
	w := g.Occupied(x-1, z)

	count := 0
	for _, b := range [4]bool{n, s, e, w} {
		if b {
			count++
		}
	}

	var dir vmath.Vec3F
	if !e {
		dir = dir.Add(vmath.V3FRight)
	}
	if !w {
		dir = dir.Add(vmath.V3FLeft)
	}
	if !n {
		dir = dir.Add(vmath.V3FForward)
	}
	if !s {
		dir = dir.Add(vmath.V3FBack)
	}

	role := Empty
	switch count {
	case 4:
		role = Internal
	case 3:
		role = Bridge
	case 2:
		if (n && s) || (e && w) {
			role = Straight
		} else {
			role = Corner
		}
	case 1:
		role = Peninsula
	case 0:
		role = Empty
	}

	if role == Corner {
		switch {
		case !e && !n:
			dir = vmath.Vec3F{X: 1, Z: 1}
		case !e && !s:
			dir = vmath.Vec3F{X: 1, Z: -1}
		case !w && !n:
			dir = vmath.Vec3F{X: -1, Z: 1}
		case !w && !s:
			dir = vmath.Vec3F{X: -1, Z: -1}
		}
	}
	return role, dir
}

// Floor classifies every occupied cell of floor f in row-major (z, then x) order
func Floor(f int, g *grid.FeatureGrid, cellSize vmath.Vec3F) []CellDescriptor {
	var out []CellDescriptor
	for z := 0; z < g.Height(); z++ {
		for x := 0; x < g.Width(); x++ {
			feat := g.Get(x, z)
			if feat == grid.Empty {
				continue
			}
			role, dir := Classify(g, x, z)
			c := CellDescriptor{
				Cell:      core.Cell{X: x, Z: z},
				Floor:     f,
				World:     vmath.Vec3F{X: float64(x) * cellSize.X, Y: float64(f) * cellSize.Y, Z: float64(z) * cellSize.Z},
				Direction: dir,
				Role:      role,
				Feature:   feat,
			}
			for _, d := range core.Neighbor4 {
				if g.Occupied(x+d.X, z+d.Z) {
					c.Neighbors = append(c.Neighbors, core.Cell{X: x + d.X, Z: z + d.Z})
				}
			}
			out = append(out, c)
		}
	}
	return out
}

// Building classifies every floor
func Building(floors []*grid.FeatureGrid, cellSize vmath.Vec3F) [][]CellDescriptor {
	out := make([][]CellDescriptor, len(floors))
	for f, g := range floors {
		out[f] = Floor(f, g, cellSize)
	}
	return out
}

// OfRole collects the cells of the given role across all floors, floor order preserved
func OfRole(cells [][]CellDescriptor, role Role) []CellDescriptor {
	var out []CellDescriptor
	for _, floor := range cells {
		for _, c := range floor {
			if c.Role == role {
				out = append(out, c)
			}
		}
	}
	return out
}
