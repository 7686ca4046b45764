package parameter

// Layout defaults
const (
	Floors     = 1
	GridWidth  = 10
	GridHeight = 8

	// World size of one cell (X, floor height Y, Z)
	CellSizeX = 1.0
	CellSizeY = 1.0
	CellSizeZ = 1.0

	DefaultSeed = 12345
)

// Footprint synthesis defaults
const (
	BaseWidthMin  = 5
	BaseHeightMin = 4
	BaseWidthMax  = 7
	BaseHeightMax = 6

	OffshootCountMin = 1
	OffshootCountMax = 3
	OffshootWidthMin = 2
	OffshootDepthMin = 2
	OffshootWidthMax = 5
	OffshootDepthMax = 4

	NotchCountMin = 0
	NotchCountMax = 1
	NotchWidthMin = 2
	NotchDepthMin = 2
	NotchWidthMax = 4
	NotchDepthMax = 3

	// Offshoot count reduction range per re-synthesized upper floor
	UpperVarianceMin = 0
	UpperVarianceMax = 1

	// Attempts per offshoot/notch before it is silently dropped
	PlacementAttempts = 12

	WindowSpacing = 2
)
