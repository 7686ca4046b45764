package core

// Area is an axis-aligned cell rectangle on the XZ plane
type Area struct {
	X, Z          int // Min corner
	Width, Height int // Extent along X and Z
}

// Cells returns Width*Height
func (a Area) Cells() int {
	return a.Width * a.Height
}

// MaxX is the exclusive X bound
func (a Area) MaxX() int { return a.X + a.Width }

// MaxZ is the exclusive Z bound
func (a Area) MaxZ() int { return a.Z + a.Height }

// Contains reports whether c lies inside the area
func (a Area) Contains(c Cell) bool {
	return c.X >= a.X && c.X < a.MaxX() && c.Z >= a.Z && c.Z < a.MaxZ()
}

// Overlaps reports a non-empty intersection
func (a Area) Overlaps(b Area) bool {
	return a.X < b.MaxX() && b.X < a.MaxX() && a.Z < b.MaxZ() && b.Z < a.MaxZ()
}
