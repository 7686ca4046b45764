package classify

import (
	"math"

	"github.com/lixenwraith/housegen/grid"
	"github.com/lixenwraith/housegen/vmath"
)

// PieceKind selects which wall piece family a cell uses
type PieceKind uint8

const (
	PieceWall PieceKind = iota
	PieceWindow
	PieceDoor
	PieceCorner
)

func (k PieceKind) String() string {
	switch k {
	case PieceWindow:
		return "window"
	case PieceDoor:
		return "door"
	case PieceCorner:
		return "corner"
	default:
		return "wall"
	}
}

// Placement is the transform hint for the external instantiation layer.
// Position is in building-local space; Yaw is degrees about +Y.
type Placement struct {
	Kind     PieceKind
	Ground   bool
	Position vmath.Vec3F
	Yaw      float64
	Forward  vmath.Vec3F // zero for corners, which are oriented by Yaw alone
}

// Place computes the piece kind and transform for a classified cell.
// Returns false for cells that receive no piece.
func Place(c CellDescriptor, cellSize vmath.Vec3F) (Placement, bool) {
	if !c.Instantiable() {
		return Placement{}, false
	}
	p := Placement{Ground: c.Floor == 0, Position: c.World}

	switch {
	case c.Role == Corner:
		p.Kind = PieceCorner
	case c.Feature == grid.Door:
		p.Kind = PieceDoor
	case c.Feature == grid.Window:
		p.Kind = PieceWindow
	default:
		p.Kind = PieceWall
	}

	var offset vmath.Vec3F
	d := c.Direction
	switch d {
	case vmath.Vec3F{X: 1, Z: 1}:
		offset = vmath.Vec3F{X: cellSize.X, Z: cellSize.Z}
		p.Yaw = -90
	case vmath.Vec3F{X: 1, Z: -1}:
		offset = vmath.Vec3F{X: cellSize.X}
	case vmath.Vec3F{X: -1, Z: -1}:
		p.Yaw = 90
	case vmath.Vec3F{X: -1, Z: 1}:
		offset = vmath.Vec3F{Z: cellSize.Z}
		p.Yaw = 180
	case vmath.V3FRight:
		offset = vmath.Vec3F{X: cellSize.X}
	case vmath.V3FLeft:
		offset = vmath.Vec3F{Z: cellSize.Z}
	case vmath.V3FForward:
		offset = vmath.Vec3F{X: cellSize.X, Z: cellSize.Z}
	}
	p.Position = p.Position.Add(offset)

	if p.Kind != PieceCorner {
		fwd := d
		if fwd.IsZero() {
			fwd = vmath.V3FForward
		}
		p.Forward = fwd.Unit()
		p.Yaw = math.Atan2(p.Forward.X, p.Forward.Z) * 180 / math.Pi
	}
	return p, true
}
