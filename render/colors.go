package render

import (
	"github.com/lixenwraith/housegen/grid"
)

var (
	RgbBackground = RGB{26, 27, 38}    // Tokyo Night background
	RgbBlack      = RGB{0, 0, 0}       // Empty cell tint
	RgbWall       = RGB{128, 128, 128} // Mid gray
	RgbWindow     = RGB{255, 255, 0}   // Yellow
	RgbDoor       = RGB{153, 77, 0}    // Brown
	RgbMainRect   = RGB{255, 255, 0}   // Main roof outline
	RgbRect       = RGB{0, 255, 255}   // Secondary roof outline
	RgbLabel      = RGB{230, 230, 230} // Floor captions
	RgbStatusText = RGB{180, 180, 180} // Brighter gray
)

// EmptyAlpha is the coverage of the empty-cell tint over the background
const EmptyAlpha = 0.3

// FeatureColor returns the fill for a cell feature, composited over the background
func FeatureColor(f grid.Feature) RGB {
	switch f {
	case grid.Wall:
		return RgbWall
	case grid.Window:
		return RgbWindow
	case grid.Door:
		return RgbDoor
	default:
		return Alpha(RgbBackground, RgbBlack, EmptyAlpha)
	}
}

// RectColor is yellow for the main rectangle of a floor, cyan otherwise
func RectColor(main bool) RGB {
	if main {
		return RgbMainRect
	}
	return RgbRect
}
