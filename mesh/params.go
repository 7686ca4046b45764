package mesh

import (
	"github.com/lixenwraith/housegen/parameter"
	"github.com/lixenwraith/housegen/vmath"
)

// Params shapes every roof piece. Lengths are world units.
type Params struct {
	CellSize vmath.Vec3F

	Pitch    float64 // rise per unit of horizontal run
	Overhang float64

	ExtendIntoMain bool // push joined edges into the neighbor instead of overhanging
	MergeExtension float64
	MergeDrop      float64

	RidgeCap      bool
	RidgeCapWidth float64
	RidgeCapDrop  float64

	Fascia      bool
	FasciaDepth float64

	SlopeUV  vmath.Vec2F
	EndCapUV vmath.Vec2F
}

func DefaultParams() Params {
	return Params{
		CellSize:       vmath.Vec3F{X: parameter.CellSizeX, Y: parameter.CellSizeY, Z: parameter.CellSizeZ},
		Pitch:          parameter.RoofPitch,
		Overhang:       parameter.RoofOverhang,
		ExtendIntoMain: true,
		MergeExtension: parameter.MergeExtension,
		MergeDrop:      parameter.MergeDrop,
		RidgeCap:       true,
		RidgeCapWidth:  parameter.RidgeCapWidth,
		RidgeCapDrop:   parameter.RidgeCapDrop,
		Fascia:         true,
		FasciaDepth:    parameter.FasciaDepth,
		SlopeUV:        vmath.V2F(parameter.SlopeUVScaleU, parameter.SlopeUVScaleV),
		EndCapUV:       vmath.V2F(parameter.EndCapUVScaleU, parameter.EndCapUVScaleV),
	}
}
