package parameter

// Roof shape defaults
const (
	RoofPitch    = 0.5
	RoofOverhang = 0.12

	MergeExtension = 0.25
	MergeDrop      = 0.005

	RidgeCapWidth = 0.18
	RidgeCapDrop  = 0.01

	FasciaDepth = 0.05

	SlopeUVScaleU  = 0.25
	SlopeUVScaleV  = 0.25
	EndCapUVScaleU = 1.0
	EndCapUVScaleV = 1.0
)

// Roof layout defaults
const (
	MinSharedEdgeWorld  = 0.25
	MinJoinOverlapRatio = 0.3
	GlobalAxisBias      = 1.15

	MinRectCells     = 1
	MinRectWorldSpan = 0.0

	// Entries in the roof piece geometry cache
	MeshCacheSize = 256
)
