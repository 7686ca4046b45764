// Package roof partitions each floor's exposed top surface into rectangles and
// resolves ridge orientation and joins between neighboring rectangles.
package roof

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/housegen/core"
)

// Axis is a horizontal world axis
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

func (a Axis) String() string {
	if a == AxisZ {
		return "Z"
	}
	return "X"
}

// Other returns the perpendicular horizontal axis
func (a Axis) Other() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

// Rect is one roof rectangle on one floor.
// JoinAxis is the axis across which the rectangle touches its joined neighbor;
// JoinSign is +1 when that neighbor lies on the positive side.
type Rect struct {
	Floor  int
	Bounds core.Area

	RidgeAlongX bool
	HasJoin     bool
	JoinAxis    Axis
	JoinSign    int
	IsMain      bool
}

// Area is the cell count
func (r Rect) Area() int {
	return r.Bounds.Cells()
}

// LongAxis is X when Width >= Height
func (r Rect) LongAxis() Axis {
	if r.Bounds.Width >= r.Bounds.Height {
		return AxisX
	}
	return AxisZ
}

// Name is the stable piece identifier Roof_F{floor}_{x}_{z}_{w}x{h}
func (r Rect) Name() string {
	b := r.Bounds
	return fmt.Sprintf("Roof_F%d_%d_%d_%dx%d", r.Floor, b.X, b.Z, b.Width, b.Height)
}

// String renders the one-line debug description
func (r Rect) String() string {
	b := r.Bounds
	var sb strings.Builder
	fmt.Fprintf(&sb, "F%d X:%d..%d Z:%d..%d %dx%d Ridge %s",
		r.Floor, b.X, b.MaxX()-1, b.Z, b.MaxZ()-1, b.Width, b.Height, r.ridgeAxis())
	if r.HasJoin {
		sign := "-"
		if r.JoinSign > 0 {
			sign = "+"
		}
		fmt.Fprintf(&sb, " join:%s %s", r.JoinAxis, sign)
	}
	if r.IsMain {
		sb.WriteString(" MAIN")
	}
	fmt.Fprintf(&sb, " Area:%d", r.Area())
	return sb.String()
}

func (r Rect) ridgeAxis() Axis {
	if r.RidgeAlongX {
		return AxisX
	}
	return AxisZ
}
