package roof

import (
	"github.com/lixenwraith/housegen/parameter"
	"github.com/lixenwraith/housegen/vmath"
)

// Strategy selects the rectangle extraction algorithm
type Strategy uint8

const (
	// Largest repeatedly carves the maximal-area rectangle
	Largest Strategy = iota
	// Greedy scans row-major and grows each rectangle right then down
	Greedy
)

func (s Strategy) String() string {
	if s == Greedy {
		return "greedy"
	}
	return "largest"
}

// Options controls decomposition and join resolution
type Options struct {
	CellSize vmath.Vec3F

	Strategy     Strategy
	MinCells     int
	MinWorldSpan float64

	OrientPerpendicular bool // ridge perpendicular to a shared long edge
	MinSharedEdgeWorld  float64
	MinJoinOverlapRatio float64

	PreferGlobalRidge bool // main ridge follows the floor's overall long axis
	GlobalAxisBias    float64
}

func DefaultOptions() Options {
	return Options{
		CellSize:            vmath.Vec3F{X: parameter.CellSizeX, Y: parameter.CellSizeY, Z: parameter.CellSizeZ},
		Strategy:            Largest,
		MinCells:            parameter.MinRectCells,
		MinWorldSpan:        parameter.MinRectWorldSpan,
		OrientPerpendicular: true,
		MinSharedEdgeWorld:  parameter.MinSharedEdgeWorld,
		MinJoinOverlapRatio: parameter.MinJoinOverlapRatio,
		PreferGlobalRidge:   true,
		GlobalAxisBias:      parameter.GlobalAxisBias,
	}
}
