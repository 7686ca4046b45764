package vmath

// Vec2F is a float64 2D vector, used for texture coordinates
type Vec2F struct {
	X, Y float64
}

func V2F(x, y float64) Vec2F {
	return Vec2F{X: x, Y: y}
}
