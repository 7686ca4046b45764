package mesh

import (
	"math"

	"github.com/lixenwraith/housegen/vmath"
)

// Buffer is an indexed triangle list with one UV per vertex
type Buffer struct {
	Vertices []vmath.Vec3F `json:"vertices"`
	UVs      []vmath.Vec2F `json:"uvs"`
	Indices  []uint32      `json:"indices"` // 3 per triangle
}

// VertexCount returns the number of vertices
func (b *Buffer) VertexCount() int {
	if b == nil {
		return 0
	}
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles
func (b *Buffer) TriangleCount() int {
	if b == nil {
		return 0
	}
	return len(b.Indices) / 3
}

// IsEmpty reports a buffer without geometry
func (b *Buffer) IsEmpty() bool {
	return b.VertexCount() == 0
}

// Add appends a vertex and returns its index
func (b *Buffer) Add(p vmath.Vec3F, uv vmath.Vec2F) uint32 {
	b.Vertices = append(b.Vertices, p)
	b.UVs = append(b.UVs, uv)
	return uint32(len(b.Vertices) - 1)
}

// AddTri appends triangle (a, b, c), flipped to (a, c, b) when its
// cross-product normal points away from hint. Degenerate triangles keep (a, b, c).
func (b *Buffer) AddTri(i0, i1, i2 uint32, hint vmath.Vec3F) {
	n := triNormal(b.Vertices[i0], b.Vertices[i1], b.Vertices[i2])
	if n.Dot(hint) >= 0 {
		b.Indices = append(b.Indices, i0, i1, i2)
	} else {
		b.Indices = append(b.Indices, i0, i2, i1)
	}
}

// AddQuad appends (a, b, c) and (a, c, d), each oriented toward hint
func (b *Buffer) AddQuad(i0, i1, i2, i3 uint32, hint vmath.Vec3F) {
	b.AddTri(i0, i1, i2, hint)
	b.AddTri(i0, i2, i3, hint)
}

// Normal returns the unnormalized face normal of triangle t
func (b *Buffer) Normal(t int) vmath.Vec3F {
	i := t * 3
	return triNormal(b.Vertices[b.Indices[i]], b.Vertices[b.Indices[i+1]], b.Vertices[b.Indices[i+2]])
}

// Bounds returns the axis-aligned extent of all vertices
func (b *Buffer) Bounds() (lo, hi vmath.Vec3F) {
	if b.IsEmpty() {
		return
	}
	lo = vmath.Vec3F{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)}
	hi = vmath.Vec3F{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)}
	for _, v := range b.Vertices {
		lo = vmath.Vec3F{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = vmath.Vec3F{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Clone deep-copies the buffer
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}
	return &Buffer{
		Vertices: append([]vmath.Vec3F(nil), b.Vertices...),
		UVs:      append([]vmath.Vec2F(nil), b.UVs...),
		Indices:  append([]uint32(nil), b.Indices...),
	}
}

func triNormal(a, b, c vmath.Vec3F) vmath.Vec3F {
	return b.Sub(a).Cross(c.Sub(a))
}
