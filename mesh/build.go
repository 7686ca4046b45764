// Package mesh turns resolved roof rectangles into gable-roof geometry:
// two slopes, two gable end caps, an optional ridge cap and eave fascia.
package mesh

import (
	"github.com/lixenwraith/housegen/roof"
	"github.com/lixenwraith/housegen/vmath"
)

// Piece is the geometry of one roof rectangle. RidgeCap and Fascia may be nil.
type Piece struct {
	Name     string  `json:"name"`
	Slopes   *Buffer `json:"slopes"`
	EndCaps  *Buffer `json:"endCaps"`
	RidgeCap *Buffer `json:"ridgeCap,omitempty"`
	Fascia   *Buffer `json:"fascia,omitempty"`
}

// Buffers lists the non-nil buffers with their part suffixes
func (p *Piece) Buffers() []Named {
	var out []Named
	for _, n := range []Named{
		{"Slopes", p.Slopes},
		{"EndCaps", p.EndCaps},
		{"RidgeCap", p.RidgeCap},
		{"Fascia", p.Fascia},
	} {
		if n.Buffer != nil {
			out = append(out, n)
		}
	}
	return out
}

// Named pairs a buffer with its part name
type Named struct {
	Part   string
	Buffer *Buffer
}

// frame is the expanded footprint and ridge of one piece
type frame struct {
	xMin, xMax, zMin, zMax float64
	baseY, ridgeH          float64
	a, b, c, d             vmath.Vec3F // (xMin,zMin) (xMax,zMin) (xMin,zMax) (xMax,zMax)
	ra, rb                 vmath.Vec3F
	ridgeX                 bool
}

// joinSide identifies which footprint edge faces the joined neighbor
type joinSide uint8

const (
	sideNone joinSide = iota
	sideXNeg
	sideXPos
	sideZNeg
	sideZPos
)

func joinedSide(r roof.Rect) joinSide {
	if !r.HasJoin || r.JoinSign == 0 {
		return sideNone
	}
	switch {
	case r.JoinAxis == roof.AxisX && r.JoinSign > 0:
		return sideXPos
	case r.JoinAxis == roof.AxisX:
		return sideXNeg
	case r.JoinSign > 0:
		return sideZPos
	default:
		return sideZNeg
	}
}

func newFrame(r roof.Rect, p Params) frame {
	cs := p.CellSize
	b := r.Bounds

	xNeg, xPos, zNeg, zPos := p.Overhang, p.Overhang, p.Overhang, p.Overhang
	side := sideNone
	if p.ExtendIntoMain {
		side = joinedSide(r)
	}
	switch side {
	case sideXNeg:
		xNeg = p.MergeExtension
	case sideXPos:
		xPos = p.MergeExtension
	case sideZNeg:
		zNeg = p.MergeExtension
	case sideZPos:
		zPos = p.MergeExtension
	}

	f := frame{
		xMin:   float64(b.X)*cs.X - xNeg,
		xMax:   float64(b.MaxX())*cs.X + xPos,
		zMin:   float64(b.Z)*cs.Z - zNeg,
		zMax:   float64(b.MaxZ())*cs.Z + zPos,
		baseY:  float64(r.Floor+1) * cs.Y,
		ridgeX: r.RidgeAlongX,
	}

	span := f.xMax - f.xMin
	if f.ridgeX {
		span = f.zMax - f.zMin
	}
	f.ridgeH = p.Pitch * span * 0.5

	f.a = vmath.Vec3F{X: f.xMin, Y: f.baseY, Z: f.zMin}
	f.b = vmath.Vec3F{X: f.xMax, Y: f.baseY, Z: f.zMin}
	f.c = vmath.Vec3F{X: f.xMin, Y: f.baseY, Z: f.zMax}
	f.d = vmath.Vec3F{X: f.xMax, Y: f.baseY, Z: f.zMax}

	// Lower the two corners on the joined side so the piece tucks under its neighbor
	if p.MergeDrop > 0 {
		switch side {
		case sideZPos:
			f.c.Y -= p.MergeDrop
			f.d.Y -= p.MergeDrop
		case sideZNeg:
			f.a.Y -= p.MergeDrop
			f.b.Y -= p.MergeDrop
		case sideXPos:
			f.b.Y -= p.MergeDrop
			f.d.Y -= p.MergeDrop
		case sideXNeg:
			f.a.Y -= p.MergeDrop
			f.c.Y -= p.MergeDrop
		}
	}

	top := f.baseY + f.ridgeH
	xMid, zMid := (f.xMin+f.xMax)*0.5, (f.zMin+f.zMax)*0.5
	if f.ridgeX {
		f.ra = vmath.Vec3F{X: f.xMin, Y: top, Z: zMid}
		f.rb = vmath.Vec3F{X: f.xMax, Y: top, Z: zMid}
	} else {
		f.ra = vmath.Vec3F{X: xMid, Y: top, Z: f.zMin}
		f.rb = vmath.Vec3F{X: xMid, Y: top, Z: f.zMax}
	}
	return f
}

// Build generates the geometry for one resolved rectangle.
// It is a pure function of r and p.
func Build(r roof.Rect, p Params) *Piece {
	f := newFrame(r, p)
	piece := &Piece{
		Name:    r.Name(),
		Slopes:  slopes(f, p),
		EndCaps: endCaps(f, p),
	}
	if p.RidgeCap && p.RidgeCapWidth > 0 {
		piece.RidgeCap = ridgeCap(f, p)
	}
	if p.Fascia && p.FasciaDepth > 0 {
		// the joined edge gets no fascia, with or without extension
		if fb := fascia(f, p, joinedSide(r)); !fb.IsEmpty() {
			piece.Fascia = fb
		}
	}
	return piece
}

func planarUV(v vmath.Vec3F, scale vmath.Vec2F) vmath.Vec2F {
	return vmath.Vec2F{X: v.X * scale.X, Y: v.Z * scale.Y}
}

// corners adds A, B, C, D, RA, RB (indices 0..5) with the given UVs
func (f frame) corners(buf *Buffer, uv func(i int, v vmath.Vec3F) vmath.Vec2F) {
	for i, v := range [6]vmath.Vec3F{f.a, f.b, f.c, f.d, f.ra, f.rb} {
		buf.Add(v, uv(i, v))
	}
}

func slopes(f frame, p Params) *Buffer {
	buf := &Buffer{}
	f.corners(buf, func(_ int, v vmath.Vec3F) vmath.Vec2F { return planarUV(v, p.SlopeUV) })
	if f.ridgeX {
		buf.AddQuad(0, 1, 5, 4, vmath.V3FUp)
		buf.AddQuad(2, 3, 5, 4, vmath.V3FUp)
	} else {
		buf.AddQuad(0, 2, 5, 4, vmath.V3FUp)
		buf.AddQuad(1, 3, 5, 4, vmath.V3FUp)
	}
	return buf
}

func endCaps(f frame, p Params) *Buffer {
	buf := &Buffer{}
	vScale := vmath.SafeDiv(p.EndCapUV.Y, f.ridgeH)
	if f.ridgeX {
		uScale := vmath.SafeDiv(p.EndCapUV.X, f.zMax-f.zMin)
		f.corners(buf, func(i int, v vmath.Vec3F) vmath.Vec2F {
			if i < 4 {
				return vmath.Vec2F{X: (v.Z - f.zMin) * uScale}
			}
			return vmath.Vec2F{X: (v.Z - f.zMin) * uScale, Y: (v.Y - f.baseY) * vScale}
		})
		buf.AddTri(0, 2, 4, vmath.V3FLeft)
		buf.AddTri(1, 3, 5, vmath.V3FRight)
	} else {
		uScale := vmath.SafeDiv(p.EndCapUV.X, f.xMax-f.xMin)
		f.corners(buf, func(i int, v vmath.Vec3F) vmath.Vec2F {
			if i < 4 {
				return vmath.Vec2F{X: (v.X - f.xMin) * uScale}
			}
			return vmath.Vec2F{X: (v.X - f.xMin) * uScale, Y: (v.Y - f.baseY) * vScale}
		})
		buf.AddTri(0, 1, 4, vmath.V3FBack)
		buf.AddTri(2, 3, 5, vmath.V3FForward)
	}
	return buf
}

func ridgeCap(f frame, p Params) *Buffer {
	half := p.RidgeCapWidth * 0.5
	y := (f.ra.Y+f.rb.Y)*0.5 - p.RidgeCapDrop

	var a1, a2, b1, b2 vmath.Vec3F
	if f.ridgeX {
		z := (f.zMin + f.zMax) * 0.5
		a1 = vmath.Vec3F{X: f.ra.X, Y: y, Z: z + half}
		a2 = vmath.Vec3F{X: f.ra.X, Y: y, Z: z - half}
		b1 = vmath.Vec3F{X: f.rb.X, Y: y, Z: z + half}
		b2 = vmath.Vec3F{X: f.rb.X, Y: y, Z: z - half}
	} else {
		x := (f.xMin + f.xMax) * 0.5
		a1 = vmath.Vec3F{X: x + half, Y: y, Z: f.ra.Z}
		a2 = vmath.Vec3F{X: x - half, Y: y, Z: f.ra.Z}
		b1 = vmath.Vec3F{X: x + half, Y: y, Z: f.rb.Z}
		b2 = vmath.Vec3F{X: x - half, Y: y, Z: f.rb.Z}
	}

	buf := &Buffer{}
	for _, v := range [4]vmath.Vec3F{a1, b1, b2, a2} {
		buf.Add(v, planarUV(v, p.SlopeUV))
	}
	buf.AddQuad(0, 1, 2, 3, vmath.V3FUp)
	return buf
}

func fascia(f frame, p Params, joined joinSide) *Buffer {
	buf := &Buffer{}
	y2 := f.baseY - p.FasciaDepth

	edge := func(p0, p1, out vmath.Vec3F) {
		i := buf.Add(p0, planarUV(p0, p.SlopeUV))
		buf.Add(p1, planarUV(p1, p.SlopeUV))
		buf.Add(vmath.Vec3F{X: p1.X, Y: y2, Z: p1.Z}, planarUV(p1, p.SlopeUV))
		buf.Add(vmath.Vec3F{X: p0.X, Y: y2, Z: p0.Z}, planarUV(p0, p.SlopeUV))
		buf.AddQuad(i, i+1, i+2, i+3, out)
	}

	if joined != sideZNeg {
		edge(f.a, f.b, vmath.V3FBack)
	}
	if joined != sideZPos {
		edge(f.c, f.d, vmath.V3FForward)
	}
	if joined != sideXNeg {
		edge(f.a, f.c, vmath.V3FLeft)
	}
	if joined != sideXPos {
		edge(f.b, f.d, vmath.V3FRight)
	}
	return buf
}
