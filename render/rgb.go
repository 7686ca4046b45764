package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// RGB is an opaque 8-bit color shared by the PNG and terminal outputs
type RGB struct {
	R, G, B uint8
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

func lerpChannel(d, s uint8, a float64) uint8 {
	df := float64(d)
	return clamp(df + (float64(s)-df)*a)
}

// Alpha composites src over dst with coverage a in [0, 1]
func Alpha(dst, src RGB, a float64) RGB {
	return RGB{
		R: lerpChannel(dst.R, src.R, a),
		G: lerpChannel(dst.G, src.G, a),
		B: lerpChannel(dst.B, src.B, a),
	}
}

// Scale darkens or brightens by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
