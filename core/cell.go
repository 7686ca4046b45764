package core

// Cell is a grid coordinate; X grows east, Z grows north
type Cell struct {
	X, Z int
}

// Add returns the cell offset by (dx, dz)
func (c Cell) Add(dx, dz int) Cell {
	return Cell{c.X + dx, c.Z + dz}
}

// Neighbor4 offsets in W, S, N, E order
var Neighbor4 = [4]Cell{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}

// Size is a grid dimension pair
type Size struct {
	W, H int
}

// InBounds reports 0 <= x < W, 0 <= z < H
func (s Size) InBounds(x, z int) bool {
	return x >= 0 && z >= 0 && x < s.W && z < s.H
}

// Len is W*H, the flat arena length
func (s Size) Len() int {
	return s.W * s.H
}
